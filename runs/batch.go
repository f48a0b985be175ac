package runs

import (
	"context"
	"errors"
	"fmt"
	"sync"
	"sync/atomic"

	"probelab/cmds"
	"probelab/configs"
	"probelab/reports"
	"probelab/syncs"
	"probelab/tasks"
)

var (
	modelFlags  = cmds.Collect[string]("-model")
	taskFlags   = cmds.Collect[string]("-task")
	methodFlags = cmds.Collect[string]("-method")
	workersFlag = cmds.Var[int]("-workers")
)

type Workers int

func (Module) Workers(
	loader configs.Loader,
) Workers {
	if *workersFlag > 0 {
		return Workers(*workersFlag)
	}
	if n := configs.First[int](loader, "workers"); n > 0 {
		return Workers(n)
	}
	return 5
}

// Batch is the cross product of the selected models, tasks and
// methods.
type Batch struct {
	Models  []string
	TaskIDs []string
	Methods []string
	Runs    []*ExperimentRun
}

type ExpandBatch func() (*Batch, error)

func (Module) ExpandBatch(
	taskIDs tasks.TaskIDs,
	methodNames tasks.MethodNames,
) ExpandBatch {
	return func() (*Batch, error) {
		batch := &Batch{
			Models:  *modelFlags,
			TaskIDs: *taskFlags,
			Methods: *methodFlags,
		}
		if len(batch.Models) == 0 {
			batch.Models = []string{"haiku"}
		}
		if len(batch.TaskIDs) == 0 {
			ids, err := taskIDs()
			if err != nil {
				return nil, err
			}
			batch.TaskIDs = ids
		}
		if len(batch.Methods) == 0 {
			names, err := methodNames()
			if err != nil {
				return nil, err
			}
			batch.Methods = names
		}

		for _, model := range batch.Models {
			for _, method := range batch.Methods {
				for _, taskID := range batch.TaskIDs {
					batch.Runs = append(batch.Runs,
						NewExperimentRun(model, taskID, method),
					)
				}
			}
		}
		return batch, nil
	}
}

// BatchSummary accumulates completions across concurrent runs. Only
// successful runs count.
type BatchSummary struct {
	completed atomic.Int64
}

func (b *BatchSummary) Completed() int {
	return int(b.completed.Load())
}

// RunBatch executes a batch with a bounded worker pool. A failed run
// surfaces in the returned error but does not cancel its siblings.
type RunBatch func(ctx context.Context, batch *Batch) (*BatchSummary, error)

func (Module) RunBatch(
	runOne RunOne,
	workers Workers,
	reportPhase reports.ReportPhase,
) RunBatch {
	return func(ctx context.Context, batch *Batch) (*BatchSummary, error) {
		reportPhase(batch.Models, batch.TaskIDs, batch.Methods, len(batch.Runs))

		summary := new(BatchSummary)
		semaphore := syncs.NewSemaphore(int(workers))

		var wg sync.WaitGroup
		var errsMutex sync.Mutex
		var errs []error

		for _, run := range batch.Runs {
			semaphore.Acquire()
			wg.Add(1)
			go func() {
				defer wg.Done()
				defer semaphore.Release()
				if err := runOne(ctx, run); err != nil {
					errsMutex.Lock()
					errs = append(errs, fmt.Errorf(
						"%s %s %s: %w",
						run.Model, run.TaskID, run.Method, err,
					))
					errsMutex.Unlock()
					return
				}
				summary.completed.Add(1)
			}()
		}
		wg.Wait()

		if len(errs) > 0 {
			return summary, fmt.Errorf("%d experiments failed: %w",
				len(errs), errors.Join(errs...))
		}
		return summary, nil
	}
}
