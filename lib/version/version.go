// Copyright 2026 The Bureau Authors
// SPDX-License-Identifier: Apache-2.0

package version

import (
	"fmt"
	"runtime"
	"runtime/debug"
)

// Release builds set these with -ldflags. Values left at their defaults
// are filled from the VCS stamp the go command embeds in the binary.
var (
	// GitCommit is the short git SHA of the build.
	GitCommit = "unknown"

	// GitDirty is "true" when the tree had uncommitted changes.
	GitDirty = "false"

	// BuildTime is the UTC timestamp of the build.
	BuildTime = "unknown"

	// Version is the semantic version of the vdf tool.
	Version = "0.1.0-dev"
)

const (
	unknown        = "unknown"
	developVersion = "0.1.0-dev"
	shortCommit    = 12
)

// build is the resolved version stamp of the running binary.
type build struct {
	version string
	commit  string
	dirty   bool
	time    string
}

func current() build {
	stamp := build{
		version: Version,
		commit:  GitCommit,
		dirty:   GitDirty == "true",
		time:    BuildTime,
	}
	if info, ok := debug.ReadBuildInfo(); ok {
		stamp = stamp.fill(info)
	}
	return stamp
}

// fill takes the fields ldflags left unset from info. The dirty flag
// follows the commit it describes.
func (b build) fill(info *debug.BuildInfo) build {
	if b.version == developVersion && info.Main.Version != "" && info.Main.Version != "(devel)" {
		b.version = info.Main.Version
	}
	commitFromStamp := b.commit == unknown
	for _, setting := range info.Settings {
		switch setting.Key {
		case "vcs.revision":
			if commitFromStamp {
				b.commit = setting.Value
				if len(b.commit) > shortCommit {
					b.commit = b.commit[:shortCommit]
				}
			}
		case "vcs.modified":
			if commitFromStamp {
				b.dirty = setting.Value == "true"
			}
		case "vcs.time":
			if b.time == unknown {
				b.time = setting.Value
			}
		}
	}
	return b
}

func (b build) String() string {
	dirty := ""
	if b.dirty {
		dirty = "-dirty"
	}
	return fmt.Sprintf("%s (%s%s, %s)", b.version, b.commit, dirty, b.time)
}

// Info returns a formatted version string suitable for --version output.
func Info() string {
	return current().String()
}

// Full returns Info followed by the Go toolchain and platform.
func Full() string {
	return fmt.Sprintf("%s\n  Go: %s\n  Platform: %s/%s",
		Info(), runtime.Version(), runtime.GOOS, runtime.GOARCH)
}
