package results

import (
	"os"
	"strconv"

	"probelab/configs"
	"probelab/logs"
)

// RoundCounter is the outer session number in the output directory
// name. Each process invocation reads it fresh; nothing in-process
// increments it.
type RoundCounter int

func (Module) RoundCounter(
	loader configs.Loader,
	logger logs.Logger,
) RoundCounter {
	if str := os.Getenv("PROBE_ROUND"); str != "" {
		n, err := strconv.Atoi(str)
		if err != nil || n < 1 {
			logger.Warn("bad PROBE_ROUND", "value", str)
		} else {
			return RoundCounter(n)
		}
	}
	if n := configs.First[int](loader, "round"); n > 0 {
		return RoundCounter(n)
	}
	return 1
}

type OutputRoot string

func (Module) OutputRoot(
	loader configs.Loader,
) OutputRoot {
	if root := configs.First[string](loader, "output_root"); root != "" {
		return OutputRoot(root)
	}
	return "output"
}
