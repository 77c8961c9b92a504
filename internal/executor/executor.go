package executor

import (
	"bytes"
	"context"
	"errors"
	"fmt"
	"os/exec"
	"strings"
	"time"

	"github.com/charmbracelet/log"
)

// ErrEmptyCommand is returned when a command has no program to run.
var ErrEmptyCommand = errors.New("command has no arguments")

// WaitDelay is how long a cancelled command may keep its output pipes open
// after its process group was sent SIGTERM before Wait gives up on it.
const WaitDelay = 5 * time.Second

// Executor runs commands and returns their standard output.
type Executor interface {
	// Execute runs cmd to completion. A non-zero exit status or a failure to
	// start the process is reported as an *ExecutionError.
	Execute(ctx context.Context, cmd *Command) (string, error)
}

// ExecutionError describes a command that could not be started or exited
// with a non-zero status.
type ExecutionError struct {
	Command  string
	ExitCode int
	Stderr   string
	Err      error
}

func (e *ExecutionError) Error() string {
	return fmt.Sprintf("%s\n%s", e.Err.Error(), e.Stderr)
}

func (e *ExecutionError) Unwrap() error {
	return e.Err
}

func newExecutionError(command string, stderr []byte, err error) *ExecutionError {
	exitCode := 1

	var exitErr *exec.ExitError
	var execErr *exec.Error
	switch {
	case errors.As(err, &exitErr):
		exitCode = exitErr.ExitCode()
	case errors.As(err, &execErr):
		exitCode = 127
	}

	return &ExecutionError{
		Command:  command,
		ExitCode: exitCode,
		Stderr:   string(stderr),
		Err:      err,
	}
}

// run starts cmd, waits for it and collects its output. display is the
// rendering of the command used in logs and errors.
func run(cmd *exec.Cmd, display string, stdin string) (string, error) {
	var stdout, stderr bytes.Buffer
	cmd.Stdout = &stdout
	cmd.Stderr = &stderr
	if stdin != "" {
		cmd.Stdin = strings.NewReader(stdin)
	}

	// Cancellation signals the whole process group so children such as the
	// clpctl behind sudo, or every stage of a shell pipeline, stop too.
	setProcessGroup(cmd)
	cmd.Cancel = func() error {
		return terminate(cmd.Process)
	}
	cmd.WaitDelay = WaitDelay

	start := time.Now()
	logger := log.With("command", display)
	logger.Debug("Running command")

	if err := cmd.Run(); err != nil {
		execErr := newExecutionError(display, stderr.Bytes(), err)
		logger.Debug("Command failed", "exit", execErr.ExitCode, "duration", time.Since(start))
		return stdout.String(), execErr
	}

	logger.Debug("Command finished", "duration", time.Since(start))
	return stdout.String(), nil
}
