package presenter

import (
	"fmt"
	"io"
	"os"
)

// Console presenter: writes each message as one plain line.
type Console struct {
	out io.Writer
}

func NewConsole(out io.Writer) *Console {
	if out == nil {
		out = os.Stdout
	}
	return &Console{out: out}
}

func (p *Console) Display(message string) {
	fmt.Fprintln(p.out, message)
}
