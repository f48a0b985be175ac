package runs

import (
	"time"

	"probelab/generators"
)

type Status string

const (
	StatusPending Status = "pending"
	StatusRunning Status = "running"
	StatusDone    Status = "done"
	StatusFailed  Status = "failed"
)

// ExperimentRun is one execution of a task against a model profile.
// The written file is the durable record; this value lives only for
// the duration of the invocation.
type ExperimentRun struct {
	Model  string
	TaskID string
	Method string

	// ExtraInput is appended to the assembled prompt, typically piped
	// in on stdin.
	ExtraInput string

	StartTime  time.Time
	Elapsed    time.Duration
	Usage      generators.Usage
	OutputText string
	OutputPath string
	LineCount  int

	Status Status
	// Stage and Err identify the failing step when Status is
	// StatusFailed.
	Stage string
	Err   error
}

func NewExperimentRun(model string, taskID string, method string) *ExperimentRun {
	return &ExperimentRun{
		Model:  model,
		TaskID: taskID,
		Method: method,
		Status: StatusPending,
	}
}
