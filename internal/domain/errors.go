package domain

import "errors"

// Expected, recoverable circulation failures. Services wrap these with
// operation context; callers match them with errors.Is.
var (
	// The book is currently on loan and cannot be checked out.
	ErrBookUnavailable = errors.New("book is not available")

	// The loan was already closed; a second return changes nothing.
	ErrLoanAlreadyReturned = errors.New("loan is already returned")
)
