package app

import (
	"fmt"
	"runtime/debug"
)

// Version, Commit, and BuildTime are set via ldflags at build time:
//
//	go build -ldflags "-X github.com/istpublications/intake-backend/internal/app.Version=1.0.0"
var (
	Version   = "dev"
	Commit    = "unknown"
	BuildTime = "unknown"
)

// BuildVersion returns the version string reported in startup logs and
// GET /api/health. Without ldflags the commit falls back to the VCS
// revision stamped by the Go toolchain.
func BuildVersion() string {
	return formatVersion(Version, commit(), BuildTime)
}

func formatVersion(version, commit, built string) string {
	return fmt.Sprintf("%s (commit: %s, built: %s)", version, commit, built)
}

func commit() string {
	if Commit != "unknown" {
		return Commit
	}
	info, ok := debug.ReadBuildInfo()
	if !ok {
		return Commit
	}
	for _, s := range info.Settings {
		if s.Key == "vcs.revision" && s.Value != "" {
			if len(s.Value) > 12 {
				return s.Value[:12]
			}
			return s.Value
		}
	}
	return Commit
}
