package app

import (
	"fmt"
	"runtime/debug"
)

// Build-time variables set via ldflags.
var (
	Version   = "dev"
	GitCommit = "unknown"
	GitTag    = ""
	BuildTime = "unknown"
)

// VersionInfo contains version information for the application.
type VersionInfo struct {
	Version   string
	GitCommit string
	GitTag    string
	BuildTime string
}

// GetVersionInfo returns the current version information. Values not injected
// through ldflags are taken from the module build info when available.
func GetVersionInfo() VersionInfo {
	v := VersionInfo{
		Version:   Version,
		GitCommit: GitCommit,
		GitTag:    GitTag,
		BuildTime: BuildTime,
	}
	if info, ok := debug.ReadBuildInfo(); ok {
		v = v.withBuildInfo(info)
	}
	return v
}

func (v VersionInfo) withBuildInfo(info *debug.BuildInfo) VersionInfo {
	if v.Version == "dev" && info.Main.Version != "" && info.Main.Version != "(devel)" {
		v.Version = info.Main.Version
	}
	for _, s := range info.Settings {
		switch s.Key {
		case "vcs.revision":
			if v.GitCommit == "unknown" {
				v.GitCommit = s.Value
			}
		case "vcs.time":
			if v.BuildTime == "unknown" {
				v.BuildTime = s.Value
			}
		}
	}
	return v
}

// FullString returns a detailed version string for logging.
func (v VersionInfo) FullString() string {
	version := v.Version
	if v.GitTag != "" {
		version = v.GitTag
	}
	return fmt.Sprintf("goindicators %s (commit: %s, built: %s)", version, v.GitCommit, v.BuildTime)
}
