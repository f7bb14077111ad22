package domain

import (
	"time"

	"github.com/google/uuid"
)

// DayLength is the fixed duration of one day used for lateness arithmetic.
// All timestamps are instants; no calendar or timezone day-boundary rules
// apply.
const DayLength = 24 * time.Hour

// Represents one book lent to one borrower for a bounded period.
// A Loan holds shared references to the manager-owned Book and Borrower
// instances, not copies. Loans are created exclusively by the loan manager
// on checkout, closed at most once on return, and never deleted: the manager
// retains every loan in its history for the duration of the run.
type Loan struct {
	LoanID       uuid.UUID
	Book         *Book
	Borrower     *Borrower
	CheckedOutAt time.Time
	// Fixed at creation as checkout + loan period. May be overwritten
	// directly to simulate lateness, but is never recomputed.
	DueAt      time.Time
	Returned   bool
	ReturnedAt *time.Time
}

// Whole days the loan is overdue at the given instant.
// Floor division over the fixed 24-hour day; an on-time or early instant
// yields 0.
func (l *Loan) DaysLate(at time.Time) int {
	late := at.Sub(l.DueAt)
	if late <= 0 {
		return 0
	}
	return int(late / DayLength)
}
