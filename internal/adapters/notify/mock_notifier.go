package notify

import "context"

// A single recorded delivery attempt.
type MockDelivery struct {
	Recipient string
	Message   string
}

// MockNotifier records every delivery attempt and fails on demand.
// Used by service tests to observe notifications without any output medium.
type MockNotifier struct {
	Deliveries []MockDelivery
	FailWith   error
}

func NewMockNotifier() *MockNotifier {
	return &MockNotifier{}
}

func (n *MockNotifier) Notify(ctx context.Context, recipient string, message string) error {
	n.Deliveries = append(n.Deliveries, MockDelivery{Recipient: recipient, Message: message})
	return n.FailWith
}
