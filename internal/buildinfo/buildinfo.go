package buildinfo

import (
	"runtime/debug"
)

// BuildInfo is nil when the binary was built without module support.
var BuildInfo *debug.BuildInfo

func init() {
	if bi, ok := debug.ReadBuildInfo(); ok {
		BuildInfo = bi
	}
}

func Version() string {
	if BuildInfo == nil || BuildInfo.Main.Version == "" {
		return "(devel)"
	}
	return BuildInfo.Main.Version
}
