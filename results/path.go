package results

import (
	"fmt"
	"path/filepath"
)

// OutputDir is the directory all of one round's artifacts land in.
type OutputDir string

func (Module) OutputDir(
	root OutputRoot,
	round RoundCounter,
) OutputDir {
	return OutputDir(filepath.Join(
		string(root),
		fmt.Sprintf("round%d", round),
	))
}

// PathFor computes the artifact path for one experiment. Pure in the
// triple: the same (model, method, task) always maps to the same path
// within a round, so re-running an experiment overwrites its artifact.
type PathFor func(model string, method string, taskID string) string

func (Module) PathFor(
	dir OutputDir,
) PathFor {
	return func(model string, method string, taskID string) string {
		return filepath.Join(
			string(dir),
			fmt.Sprintf("%s_%s_%s.md", model, method, taskID),
		)
	}
}
