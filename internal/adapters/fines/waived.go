package fines

// Waived tier (e.g. VIP members): no fine regardless of lateness.
type WaivedPolicy struct{}

func NewWaivedPolicy() *WaivedPolicy {
	return &WaivedPolicy{}
}

func (p *WaivedPolicy) ComputeFine(daysLate int) int {
	return 0
}
