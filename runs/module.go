package runs

import (
	"github.com/reusee/dscope"

	"probelab/generators"
	"probelab/reports"
	"probelab/results"
	"probelab/tasks"
)

type Module struct {
	dscope.Module
	Tasks      tasks.Module
	Generators generators.Module
	Results    results.Module
	Reports    reports.Module
}
