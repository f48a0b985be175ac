package tasks

// Task is one analysis subject: an artifact plus the question asked
// about it.
type Task struct {
	ID     string `json:"id"`
	Prompt string `json:"prompt"`
}

// Method is one level/method identifier mapping to the instructions
// prepended to a task prompt.
type Method struct {
	Name   string `json:"name"`
	Prompt string `json:"prompt"`
}
