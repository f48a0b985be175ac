package generators

import (
	"github.com/reusee/dscope"

	"probelab/configs"
	"probelab/debugs"
	"probelab/logs"
	"probelab/nets"
)

type Module struct {
	dscope.Module
	Configs configs.Module
	Nets    nets.Module
	Logs    logs.Module
	Debugs  debugs.Module
}
