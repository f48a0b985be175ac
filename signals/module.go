package signals

import (
	"github.com/reusee/dscope"

	"probelab/cmds"
	"probelab/reports"
)

type Module struct {
	dscope.Module
	Reports reports.Module
}

var signalsFlag = cmds.Switch("-signals")

// Enabled reports whether the signal matrix was requested.
type Enabled bool

func (Module) Enabled() Enabled {
	return Enabled(*signalsFlag)
}
