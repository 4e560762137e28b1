package main

import (
	"github.com/reusee/dscope"
	"github.com/ssokolow/snakebyte/configs"
	"github.com/ssokolow/snakebyte/debugs"
	"github.com/ssokolow/snakebyte/logs"
)

type Module struct {
	dscope.Module
	Configs configs.Module
	Logs    logs.Module
	Debugs  debugs.Module
}
