package edfmeta

import (
	"runtime"
	"runtime/debug"
)

// Version is the semantic version of the edfmeta library.
const Version = "0.1.0"

// GetVersion returns the current version string.
func GetVersion() string {
	return Version
}

// VersionInfo describes the build of the running binary.
type VersionInfo struct {
	Version   string `json:"version" yaml:"version"`
	GitCommit string `json:"git_commit" yaml:"git_commit"`
	BuildTime string `json:"build_time" yaml:"build_time"`
	GoVersion string `json:"go_version" yaml:"go_version"`
}

// GetVersionInfo returns detailed version information.
//
// GitCommit and BuildTime come from -ldflags when set, and otherwise from
// the VCS stamp the Go toolchain embeds in module builds:
//
//	go build -ldflags="-X github.com/simonhull/edfmeta.gitCommit=$(git rev-parse HEAD) \
//	  -X github.com/simonhull/edfmeta.buildTime=$(date -u +%Y-%m-%dT%H:%M:%SZ)" ./cmd/edfinfo
func GetVersionInfo() VersionInfo {
	info := VersionInfo{
		Version:   Version,
		GitCommit: gitCommit,
		BuildTime: buildTime,
		GoVersion: runtime.Version(),
	}

	bi, ok := debug.ReadBuildInfo()
	if !ok {
		return info
	}
	for _, s := range bi.Settings {
		switch {
		case s.Key == "vcs.revision" && info.GitCommit == unknown:
			info.GitCommit = s.Value
		case s.Key == "vcs.time" && info.BuildTime == unknown:
			info.BuildTime = s.Value
		}
	}

	return info
}

const unknown = "unknown"

// Set via -ldflags.
var (
	gitCommit = unknown
	buildTime = unknown
)
