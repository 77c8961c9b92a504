package executor

import (
	"context"
	"os/exec"
)

// DefaultShell is the shell used when Shell.Path is empty.
const DefaultShell = "/bin/sh"

// Shell runs commands as a single line through the host shell. Values in the
// line are quoted by Command.String, but raw lines passed to Run are not.
type Shell struct {
	Path string
}

func (s Shell) Execute(ctx context.Context, c *Command) (string, error) {
	if c == nil || len(c.Args) == 0 {
		return "", ErrEmptyCommand
	}
	return s.run(ctx, c.String(), c.Redacted())
}

// Run executes an arbitrary shell line, pipes and redirections included.
func (s Shell) Run(ctx context.Context, line string) (string, error) {
	return s.run(ctx, line, line)
}

func (s Shell) run(ctx context.Context, line, display string) (string, error) {
	path := s.Path
	if path == "" {
		path = DefaultShell
	}

	cmd := exec.CommandContext(ctx, path, "-c", line)
	return run(cmd, display, "")
}
