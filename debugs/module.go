package debugs

import (
	"github.com/reusee/dscope"
	"github.com/ssokolow/snakebyte/logs"
)

type Module struct {
	dscope.Module
	Logs logs.Module
}
