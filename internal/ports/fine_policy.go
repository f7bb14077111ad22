package ports

// Contract for mapping days overdue to a monetary penalty.
type FinePolicy interface {
	// Return the fine for the given number of whole days late.
	// Must be a pure function: deterministic, no side effects, total over
	// all non-negative inputs, result never negative.
	ComputeFine(daysLate int) int
}
