package tasks

import (
	"github.com/reusee/dscope"

	"probelab/configs"
)

type Module struct {
	dscope.Module
	Configs configs.Module
}
