package dbengine

import (
	"context"
	"fmt"
	"io"
	"time"

	"github.com/foreverhost/dbengine/internal/clpctl"
	"github.com/foreverhost/dbengine/internal/config"
	"github.com/foreverhost/dbengine/internal/executor"
)

// NewExecutor returns the executor selected by cfg. In dry-run mode commands
// are written to out instead of being run.
func NewExecutor(cfg *config.Config, dryRun bool, out io.Writer) (executor.Executor, error) {
	var exec executor.Executor

	switch {
	case dryRun:
		exec = executor.Printer{Out: out}
	case cfg.Executor.Mode == config.ModeShell:
		exec = executor.Shell{Path: cfg.Executor.Shell}
	case cfg.Executor.Mode == config.ModeExec:
		exec = executor.Local{}
	default:
		return nil, fmt.Errorf("unknown executor mode: %q", cfg.Executor.Mode)
	}

	timeout, err := cfg.Executor.TimeoutDuration()
	if err != nil {
		return nil, err
	}
	if timeout > 0 {
		exec = Timeout{Executor: exec, Timeout: timeout}
	}

	return exec, nil
}

// NewEngine builds a clpctl engine from cfg around exec.
func NewEngine(cfg *config.Config, exec executor.Executor) *clpctl.Engine {
	return clpctl.New(exec,
		clpctl.WithBinary(cfg.Tool.Binary),
		clpctl.WithSudo(cfg.Tool.SudoCommand()),
		clpctl.WithDomainSuffix(cfg.Domain.Suffix),
		clpctl.WithPasswordLength(cfg.Password.Length),
		clpctl.WithConfirmAnswer(cfg.Delete.Confirm),
	)
}

// Timeout bounds every command run through Executor.
type Timeout struct {
	Executor executor.Executor
	Timeout  time.Duration
}

func (t Timeout) Execute(ctx context.Context, cmd *executor.Command) (string, error) {
	ctx, cancel := context.WithTimeout(ctx, t.Timeout)
	defer cancel()

	return t.Executor.Execute(ctx, cmd)
}
