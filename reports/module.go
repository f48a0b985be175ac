package reports

import (
	"io"
	"os"

	"github.com/reusee/dscope"
)

type Module struct {
	dscope.Module
}

// Stdout and Stderr are the reporter's sinks, injectable so tests can
// capture the exact output.
type (
	Stdout io.Writer
	Stderr io.Writer
)

func (Module) Stdout() Stdout {
	return os.Stdout
}

func (Module) Stderr() Stderr {
	return os.Stderr
}
