package generators

import (
	"time"

	"probelab/cmds"
	"probelab/configs"
	"probelab/logs"
)

var timeoutFlag = cmds.Var[time.Duration]("-timeout")

// GenerateTimeout bounds a single backend call. Runs report a single
// duration, so the deadline lives here rather than in the runner.
type GenerateTimeout time.Duration

func (Module) GenerateTimeout(
	loader configs.Loader,
	logger logs.Logger,
) GenerateTimeout {
	if *timeoutFlag != 0 {
		return GenerateTimeout(*timeoutFlag)
	}
	if str := configs.First[string](loader, "timeout"); str != "" {
		d, err := time.ParseDuration(str)
		if err != nil {
			logger.Warn("bad timeout in config", "value", str, "error", err)
		} else {
			return GenerateTimeout(d)
		}
	}
	return GenerateTimeout(10 * time.Minute)
}

func timeoutFor(args GeneratorArgs, global GenerateTimeout) time.Duration {
	if args.Timeout != "" {
		if d, err := time.ParseDuration(args.Timeout); err == nil {
			return d
		}
	}
	return time.Duration(global)
}
