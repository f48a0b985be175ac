package main

import (
	"github.com/reusee/dscope"

	"probelab/labconfigs"
	"probelab/runs"
	"probelab/signals"
)

type Module struct {
	dscope.Module
	Configs labconfigs.Module
	Runs    runs.Module
	Signals signals.Module
}
