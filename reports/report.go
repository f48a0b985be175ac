package reports

import (
	"fmt"
	"strings"
	"time"
)

// ReportDone prints the per-run success line:
//
//	-> Done (105s) -> 176 lines -> output/round25/....md
type ReportDone func(elapsed time.Duration, lineCount int, path string)

func (Module) ReportDone(
	stdout Stdout,
) ReportDone {
	return func(elapsed time.Duration, lineCount int, path string) {
		fmt.Fprintf(stdout, "-> Done (%ds) -> %d lines -> %s\n",
			int(elapsed.Seconds()),
			lineCount,
			path,
		)
	}
}

// ReportFailed prints the per-run failure line to stderr, naming the
// stage that failed so a failed run never looks like a zero-output
// success.
type ReportFailed func(elapsed time.Duration, stage string, err error)

func (Module) ReportFailed(
	stderr Stderr,
) ReportFailed {
	return func(elapsed time.Duration, stage string, err error) {
		fmt.Fprintf(stderr, "-> FAILED (%ds) -> %s: %v\n",
			int(elapsed.Seconds()),
			stage,
			err,
		)
	}
}

// ReportSummary prints the end-of-batch block.
type ReportSummary func(completed int, outputDir string)

func (Module) ReportSummary(
	stdout Stdout,
) ReportSummary {
	return func(completed int, outputDir string) {
		banner := strings.Repeat("=", 40)
		fmt.Fprintf(stdout, "%s\n", banner)
		fmt.Fprintf(stdout, " Completed %d experiments\n", completed)
		fmt.Fprintf(stdout, " Results in: %s/\n", outputDir)
		fmt.Fprintf(stdout, "%s\n", banner)
		fmt.Fprintf(stdout, "\n")
		fmt.Fprintf(stdout, " Examples:\n")
		fmt.Fprintf(stdout, "   bash run.sh sonnet task_H L8_generative_v2\n")
		fmt.Fprintf(stdout, "   bash run.sh opus task_D1 L8_generative_v2\n")
		fmt.Fprintf(stdout, "   bash run.sh sonnet task_H L7_diagnostic\n")
	}
}

// ReportPhase prints the banner ahead of a multi-run batch.
type ReportPhase func(models []string, taskIDs []string, methods []string, total int)

func (Module) ReportPhase(
	stdout Stdout,
) ReportPhase {
	return func(models []string, taskIDs []string, methods []string, total int) {
		banner := strings.Repeat("=", 80)
		fmt.Fprintf(stdout, "\n%s\n", banner)
		fmt.Fprintf(stdout, "  PHASE: %s: %d experiments\n",
			strings.ToUpper(strings.Join(models, ", ")),
			total,
		)
		fmt.Fprintf(stdout, "  Methods: %s\n", strings.Join(methods, ", "))
		fmt.Fprintf(stdout, "  Tasks: %s\n", strings.Join(taskIDs, ", "))
		fmt.Fprintf(stdout, "%s\n\n", banner)
	}
}
