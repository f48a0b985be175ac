package debugs

import (
	"github.com/reusee/dscope"

	"probelab/logs"
)

type Module struct {
	dscope.Module
	Logs logs.Module
}
