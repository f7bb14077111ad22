package notify

import (
	"context"
	"fmt"
	"io"
	"os"
)

// Direct-message channel: renders the full message addressed to the
// recipient. Presentational delivery; a real messaging backend can replace
// it behind the same port.
type DirectMessage struct {
	out io.Writer
}

func NewDirectMessage(out io.Writer) *DirectMessage {
	if out == nil {
		out = os.Stdout
	}
	return &DirectMessage{out: out}
}

func (n *DirectMessage) Notify(ctx context.Context, recipient string, message string) error {
	if _, err := fmt.Fprintf(n.out, "[dm] to=%s: %s\n", recipient, message); err != nil {
		return fmt.Errorf("direct message: deliver to %q: %w", recipient, err)
	}
	return nil
}
