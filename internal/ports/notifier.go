package ports

import "context"

// Port: a boundary for delivering a human-readable message to a borrower
// through one channel. Implementations differ only in formatting and medium;
// the calling convention never changes. A nil error means the message was
// delivered.
type Notifier interface {
	Notify(ctx context.Context, recipient string, message string) error
}
