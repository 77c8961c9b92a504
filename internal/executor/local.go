package executor

import (
	"context"
	"os/exec"
)

// Local runs commands directly on the host without an intermediate shell.
type Local struct{}

func (Local) Execute(ctx context.Context, c *Command) (string, error) {
	if c == nil || len(c.Args) == 0 {
		return "", ErrEmptyCommand
	}

	cmd := exec.CommandContext(ctx, c.Args[0], c.Args[1:]...)
	return run(cmd, c.Redacted(), c.Stdin)
}
