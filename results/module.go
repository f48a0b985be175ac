package results

import (
	"github.com/reusee/dscope"

	"probelab/configs"
	"probelab/logs"
)

type Module struct {
	dscope.Module
	Configs configs.Module
	Logs    logs.Module
}
