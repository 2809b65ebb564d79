package version

import "runtime/debug"

// Set at link time: -ldflags "-X calmnetconfig/internal/pkg/version.version=v1.2.0"
var version = ""

type buildInfo struct {
	Version   string
	Commit    string
	Dirty     bool
	GoVersion string
}

// GetBuildInfo returns version and VCS metadata recorded by the Go toolchain.
func GetBuildInfo() buildInfo {
	info := buildInfo{Version: version, Commit: "unknown"}

	bi, ok := debug.ReadBuildInfo()
	if !ok {
		if info.Version == "" {
			info.Version = "(devel)"
		}
		return info
	}

	info.GoVersion = bi.GoVersion
	if info.Version == "" {
		info.Version = bi.Main.Version
	}
	if info.Version == "" {
		info.Version = "(devel)"
	}
	for _, s := range bi.Settings {
		switch s.Key {
		case "vcs.revision":
			info.Commit = s.Value
		case "vcs.modified":
			info.Dirty = s.Value == "true"
		}
	}
	return info
}
