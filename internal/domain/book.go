package domain

// Represents a single physical copy of a title in the collection.
// A Book is identified by its ISBN and carries an availability flag.
// Availability is mutated only by the loan manager when a loan starts
// (available → false) or ends (available → true).
type Book struct {
	Title     string
	Author    string
	ISBN      string
	Available bool
}

func NewBook(title string, author string, isbn string) *Book {
	return &Book{
		Title:     title,
		Author:    author,
		ISBN:      isbn,
		Available: true,
	}
}
