package workflows

import (
	"errors"
	"fmt"
)

// ErrOperationFailed is wrapped by Report.Err when any operation failed or was skipped.
var ErrOperationFailed = errors.New("database operation failed")

type Operation string

const (
	OperationCreate Operation = "create"
	OperationExport Operation = "export"
	OperationImport Operation = "import"
	OperationDelete Operation = "delete"
)

// Result is the outcome of a single queued operation.
type Result struct {
	Operation Operation
	GDPSID    string
	Path      string
	Password  string
	OK        bool
	Skipped   bool
}

// Report collects the results of a flow run.
type Report struct {
	Results []Result
}

// Succeeded returns the number of operations that succeeded.
func (r *Report) Succeeded() int {
	n := 0
	for _, res := range r.Results {
		if res.OK {
			n++
		}
	}
	return n
}

// Failed returns the number of operations that ran and failed.
func (r *Report) Failed() int {
	n := 0
	for _, res := range r.Results {
		if !res.OK && !res.Skipped {
			n++
		}
	}
	return n
}

// Skipped returns the number of operations that never ran.
func (r *Report) Skipped() int {
	n := 0
	for _, res := range r.Results {
		if res.Skipped {
			n++
		}
	}
	return n
}

// Err returns nil when every operation succeeded.
func (r *Report) Err() error {
	failed, skipped := r.Failed(), r.Skipped()
	if failed == 0 && skipped == 0 {
		return nil
	}
	return fmt.Errorf("%w: %d failed, %d skipped", ErrOperationFailed, failed, skipped)
}
