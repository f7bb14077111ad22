package notify

import (
	"context"
	"fmt"
	"io"
	"os"
)

// Short texts are capped the way SMS segments are.
const maxShortTextLen = 160

// Short-text channel: same contract as DirectMessage, but the body is
// truncated to a single text-message segment.
type ShortText struct {
	out io.Writer
}

func NewShortText(out io.Writer) *ShortText {
	if out == nil {
		out = os.Stdout
	}
	return &ShortText{out: out}
}

func (n *ShortText) Notify(ctx context.Context, recipient string, message string) error {
	body := message
	if len(body) > maxShortTextLen {
		body = body[:maxShortTextLen-3] + "..."
	}

	if _, err := fmt.Fprintf(n.out, "[sms] to=%s: %s\n", recipient, body); err != nil {
		return fmt.Errorf("short text: deliver to %q: %w", recipient, err)
	}
	return nil
}
