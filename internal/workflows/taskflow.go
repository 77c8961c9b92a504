package workflows

import (
	"context"
	"fmt"
	"sync"
	"sync/atomic"

	"github.com/charmbracelet/log"
	"github.com/foreverhost/dbengine/internal/clpctl"
	flow "github.com/noneback/go-taskflow"
)

// executorConcurrency only sizes the worker pool; chained tasks still run one at a time.
const executorConcurrency = 4

// TaskFlow wraps go-taskflow's TaskFlow with clpctl operations. Every task
// added runs after the previous one, so operations never overlap.
type TaskFlow struct {
	*flow.TaskFlow

	ctx           context.Context
	engine        *clpctl.Engine
	stopOnFailure bool

	last   *flow.Task
	steps  int
	failed atomic.Bool

	mu      sync.Mutex
	results []Result
}

// NewTaskFlow creates a new flow. With stopOnFailure set, operations queued
// after a failed one are skipped.
func NewTaskFlow(ctx context.Context, name string, engine *clpctl.Engine, stopOnFailure bool) *TaskFlow {
	return &TaskFlow{
		TaskFlow:      flow.NewTaskFlow(name),
		ctx:           ctx,
		engine:        engine,
		stopOnFailure: stopOnFailure,
	}
}

// Create queues a db:add for the tenant on node.
func (tf *TaskFlow) Create(node, gdpsID string) *flow.Task {
	return tf.step(fmt.Sprintf("create-%s", gdpsID), Result{Operation: OperationCreate, GDPSID: gdpsID}, func(r *Result) {
		r.OK, r.Password = tf.engine.Create(tf.ctx, node, gdpsID)
	})
}

// Export queues a db:export of the tenant database to path.
func (tf *TaskFlow) Export(gdpsID, path string) *flow.Task {
	return tf.step(fmt.Sprintf("export-%s", gdpsID), Result{Operation: OperationExport, GDPSID: gdpsID, Path: path}, func(r *Result) {
		r.OK = tf.engine.ExportDatabase(tf.ctx, gdpsID, path)
	})
}

// Import queues a db:import of path into the tenant database.
func (tf *TaskFlow) Import(gdpsID, path string) *flow.Task {
	return tf.step(fmt.Sprintf("import-%s", gdpsID), Result{Operation: OperationImport, GDPSID: gdpsID, Path: path}, func(r *Result) {
		r.OK = tf.engine.ImportDatabase(tf.ctx, gdpsID, path)
	})
}

// Delete queues a db:delete of the tenant database.
func (tf *TaskFlow) Delete(gdpsID string) *flow.Task {
	return tf.step(fmt.Sprintf("delete-%s", gdpsID), Result{Operation: OperationDelete, GDPSID: gdpsID}, func(r *Result) {
		r.OK = tf.engine.DeleteDatabase(tf.ctx, gdpsID)
	})
}

// Run executes the queued operations and returns their results in order.
func (tf *TaskFlow) Run() *Report {
	if tf.last == nil {
		return &Report{}
	}

	flow.NewExecutor(executorConcurrency).Run(tf.TaskFlow).Wait()

	tf.mu.Lock()
	defer tf.mu.Unlock()

	return &Report{Results: append([]Result(nil), tf.results...)}
}

func (tf *TaskFlow) step(name string, result Result, run func(r *Result)) *flow.Task {
	tf.steps++
	name = fmt.Sprintf("%02d-%s", tf.steps, name)

	task := tf.NewTask(name, func() {
		r := result

		switch {
		case tf.stopOnFailure && tf.failed.Load():
			log.Warn("Skipping operation after earlier failure", "task", name)
			r.Skipped = true
		case tf.ctx.Err() != nil:
			log.Warn("Skipping operation, context is done", "task", name, "error", tf.ctx.Err())
			r.Skipped = true
		default:
			run(&r)
			if !r.OK {
				tf.failed.Store(true)
			}
		}

		tf.mu.Lock()
		tf.results = append(tf.results, r)
		tf.mu.Unlock()
	})

	if tf.last != nil {
		tf.last.Precede(task)
	}
	tf.last = task

	return task
}
