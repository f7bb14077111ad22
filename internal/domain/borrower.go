package domain

// A registered library member who can hold loans.
// Borrowers are immutable after creation; the loan manager never mutates them.
type Borrower struct {
	Name string
	ID   string
}

func NewBorrower(name string, id string) *Borrower {
	return &Borrower{
		Name: name,
		ID:   id,
	}
}
