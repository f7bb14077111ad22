package fines

// DefaultDiscountedRate is the per-day fine applied to discounted tiers
// such as students.
const DefaultDiscountedRate = 5

// Discounted tier: same linear shape as the standard policy, lower slope.
type DiscountedPolicy struct {
	RatePerDay int
}

func NewDiscountedPolicy(ratePerDay int) *DiscountedPolicy {
	if ratePerDay <= 0 {
		ratePerDay = DefaultDiscountedRate
	}
	return &DiscountedPolicy{RatePerDay: ratePerDay}
}

func (p *DiscountedPolicy) ComputeFine(daysLate int) int {
	if daysLate <= 0 {
		return 0
	}
	return daysLate * p.RatePerDay
}
