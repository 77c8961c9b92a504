package executor

import (
	"context"
	"fmt"
	"io"
)

// Printer writes commands to Out instead of running them.
type Printer struct {
	Out io.Writer
}

func (p Printer) Execute(_ context.Context, c *Command) (string, error) {
	if c == nil || len(c.Args) == 0 {
		return "", ErrEmptyCommand
	}

	if _, err := fmt.Fprintln(p.Out, c.String()); err != nil {
		return "", fmt.Errorf("failed to print command: %w", err)
	}

	return "", nil
}
