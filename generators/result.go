package generators

import "time"

type Usage struct {
	InputTokens  int `json:"input_tokens"`
	OutputTokens int `json:"output_tokens"`
}

// Result is one backend call's outcome. Elapsed covers the full call,
// including connection setup, so it matches what a stopwatch around the
// invocation would read.
type Result struct {
	Text    string
	Elapsed time.Duration
	Usage   Usage
}
