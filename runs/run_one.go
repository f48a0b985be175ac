package runs

import (
	"context"
	"time"

	"probelab/generators"
	"probelab/logs"
	"probelab/procs"
	"probelab/reports"
	"probelab/results"
	"probelab/tasks"
)

// RunOne drives a single experiment through resolve, generate and
// write, reporting the outcome. The returned error is the stage error;
// the run carries the stage name.
type RunOne func(ctx context.Context, run *ExperimentRun) error

func (Module) RunOne(
	resolve tasks.Resolve,
	getGenerator generators.GetGenerator,
	pathFor results.PathFor,
	write results.Write,
	reportDone reports.ReportDone,
	reportFailed reports.ReportFailed,
	newSpan logs.NewSpan,
	logger logs.Logger,
) RunOne {

	type C = context.Context

	return func(ctx context.Context, run *ExperimentRun) error {
		ctx, _ = newSpan(ctx, "")

		run.Status = StatusRunning
		run.StartTime = time.Now()

		fail := func(stage string, err error) error {
			run.Elapsed = time.Since(run.StartTime)
			run.Status = StatusFailed
			run.Stage = stage
			run.Err = err
			reportFailed(run.Elapsed, stage, err)
			return logs.WrapSpan(ctx, err)
		}

		var resolved tasks.ResolvedTask

		steps := procs.Procs[C]{

			// resolve
			procs.ProcFunc[C](func(ctx C) (procs.Proc[C], error) {
				var err error
				resolved, err = resolve(run.TaskID, run.Method)
				if err != nil {
					return nil, fail("resolve", err)
				}
				return nil, nil
			}),

			// generate
			procs.ProcFunc[C](func(ctx C) (procs.Proc[C], error) {
				generator, err := getGenerator(run.Model)
				if err != nil {
					return nil, fail("resolve", err)
				}
				logger.InfoContext(ctx, "experiment",
					"model", run.Model,
					"task", run.TaskID,
					"method", run.Method,
				)
				prompt := resolved.Prompt()
				if run.ExtraInput != "" {
					prompt = prompt + "\n\n" + run.ExtraInput
				}
				result, err := generator.Generate(ctx, prompt)
				if err != nil {
					return nil, fail("generate", err)
				}
				run.OutputText = result.Text
				run.Usage = result.Usage
				return nil, nil
			}),

			// write
			procs.ProcFunc[C](func(ctx C) (procs.Proc[C], error) {
				path := pathFor(run.Model, run.Method, run.TaskID)
				writeResult, err := write(path, run.OutputText)
				if err != nil {
					return nil, fail("write", err)
				}
				run.OutputPath = writeResult.Path
				run.LineCount = writeResult.LineCount
				return nil, nil
			}),
		}

		if err := procs.RunAll(ctx, steps); err != nil {
			return err
		}

		run.Elapsed = time.Since(run.StartTime)
		run.Status = StatusDone
		reportDone(run.Elapsed, run.LineCount, run.OutputPath)
		return nil
	}
}
