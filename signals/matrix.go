package signals

import (
	"fmt"
	"sort"
	"strings"

	"probelab/reports"
)

type Row struct {
	Model  string
	TaskID string
	Method string
	Counts Counts
}

// PrintMatrix renders the signal counts for a batch, one row per
// successful run, sorted by method then task.
type PrintMatrix func(rows []Row)

func (Module) PrintMatrix(
	stdout reports.Stdout,
) PrintMatrix {
	return func(rows []Row) {
		banner := strings.Repeat("=", 80)
		fmt.Fprintf(stdout, "\n%s\n", banner)
		fmt.Fprintf(stdout, "  SIGNAL DETECTION MATRIX\n")
		fmt.Fprintf(stdout, "%s\n\n", banner)

		fmt.Fprintf(stdout, "  %-22s %-10s %6s %6s %6s %7s %6s %6s\n",
			"Method", "Task", "Branch", "GenOps", "Voice", "Predict", "Meta", "TOTAL")
		fmt.Fprintf(stdout, "  %s %s %s %s %s %s %s %s\n",
			strings.Repeat("-", 22),
			strings.Repeat("-", 10),
			strings.Repeat("-", 6),
			strings.Repeat("-", 6),
			strings.Repeat("-", 6),
			strings.Repeat("-", 7),
			strings.Repeat("-", 6),
			strings.Repeat("-", 6),
		)

		sorted := make([]Row, len(rows))
		copy(sorted, rows)
		sort.Slice(sorted, func(i, j int) bool {
			if sorted[i].Method != sorted[j].Method {
				return sorted[i].Method < sorted[j].Method
			}
			return sorted[i].TaskID < sorted[j].TaskID
		})

		for _, row := range sorted {
			fmt.Fprintf(stdout, "  %-22s %-10s %6d %6d %6d %7d %6d %6d\n",
				row.Method,
				row.TaskID,
				row.Counts.AdaptiveBranching,
				row.Counts.OperationGeneration,
				row.Counts.MultiVoice,
				row.Counts.SelfPrediction,
				row.Counts.MetaReasoning,
				row.Counts.Total(),
			)
		}
	}
}
