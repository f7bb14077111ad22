package fines

// DefaultStandardRate is the per-day fine applied to regular borrowers.
const DefaultStandardRate = 10

// Standard tier: a fixed rate per day late.
type StandardPolicy struct {
	RatePerDay int
}

func NewStandardPolicy(ratePerDay int) *StandardPolicy {
	if ratePerDay <= 0 {
		ratePerDay = DefaultStandardRate
	}
	return &StandardPolicy{RatePerDay: ratePerDay}
}

func (p *StandardPolicy) ComputeFine(daysLate int) int {
	if daysLate <= 0 {
		return 0
	}
	return daysLate * p.RatePerDay
}
