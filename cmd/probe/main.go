package main

import (
	"context"
	"fmt"
	"io"
	"os"

	"github.com/reusee/dscope"
	"golang.org/x/term"

	"probelab/cmds"
	"probelab/modes"
	"probelab/reports"
	"probelab/results"
	"probelab/runs"
	"probelab/signals"
)

type invocation struct {
	kind   string
	model  string
	taskID string
	method string
}

var inv invocation

func init() {
	cmds.Define("run", cmds.Func(func(model string, taskID string, method string) {
		inv = invocation{
			kind:   "run",
			model:  model,
			taskID: taskID,
			method: method,
		}
	}).Desc("run one experiment: run <model> <task_id> <method>"))

	cmds.Define("batch", cmds.Func(func() {
		inv.kind = "batch"
	}).Desc("run the cross product of -model, -task and -method"))
}

func main() {
	cmds.Execute(os.Args[1:])

	if inv.kind == "" {
		cmds.GlobalExecutor.PrintUsage()
		os.Exit(2)
	}

	ctx := context.Background()
	scope := dscope.New(
		new(Module),
		modes.ForProduction(),
	)

	var failed bool
	scope.Call(func(
		runOne runs.RunOne,
		expandBatch runs.ExpandBatch,
		runBatch runs.RunBatch,
		reportSummary reports.ReportSummary,
		outputDir results.OutputDir,
		signalsEnabled signals.Enabled,
		printMatrix signals.PrintMatrix,
	) {

		switch inv.kind {

		case "run":
			run := runs.NewExperimentRun(inv.model, inv.taskID, inv.method)
			run.ExtraInput = string(getStdinContent())
			if err := runOne(ctx, run); err != nil {
				// the failure line is already on stderr
				failed = true
				return
			}
			reportSummary(1, string(outputDir))
			if signalsEnabled {
				printMatrix(matrixRows([]*runs.ExperimentRun{run}))
			}

		case "batch":
			batch, err := expandBatch()
			if err != nil {
				fmt.Fprintln(os.Stderr, err)
				failed = true
				return
			}
			if extra := getStdinContent(); len(extra) > 0 {
				for _, run := range batch.Runs {
					run.ExtraInput = string(extra)
				}
			}
			summary, err := runBatch(ctx, batch)
			reportSummary(summary.Completed(), string(outputDir))
			if signalsEnabled {
				printMatrix(matrixRows(batch.Runs))
			}
			if err != nil {
				failed = true
			}

		}

	})

	if failed {
		os.Exit(1)
	}
}

func getStdinContent() (ret []byte) {
	if term.IsTerminal(int(os.Stdin.Fd())) {
		return nil
	}
	ret, err := io.ReadAll(os.Stdin)
	if err != nil {
		return nil
	}
	return
}

func matrixRows(experimentRuns []*runs.ExperimentRun) (rows []signals.Row) {
	for _, run := range experimentRuns {
		if run.Status != runs.StatusDone {
			continue
		}
		rows = append(rows, signals.Row{
			Model:  run.Model,
			TaskID: run.TaskID,
			Method: run.Method,
			Counts: signals.Detect(run.OutputText),
		})
	}
	return
}
