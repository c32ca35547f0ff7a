// Package version reports build information.
package version

import (
	"fmt"
	"runtime"
	"runtime/debug"
)

// Set via ldflags.
var (
	Version   string
	BuildDate string
)

// GetVersion returns [Version], or the VCS revision when it is unset.
func GetVersion() string {
	if Version != "" {
		return Version
	}

	return revision()
}

// String returns a one-line description of the build.
func String() string {
	s := fmt.Sprintf("chatwin %s (%s, %s/%s)", GetVersion(), runtime.Version(), runtime.GOOS, runtime.GOARCH)
	if BuildDate != "" {
		s += " built " + BuildDate
	}

	return s
}

func revision() string {
	info, ok := debug.ReadBuildInfo()
	if !ok {
		return "unknown"
	}

	rev, dirty := "unknown", false

	for _, s := range info.Settings {
		switch s.Key {
		case "vcs.revision":
			rev = s.Value[:min(7, len(s.Value))]
		case "vcs.modified":
			dirty = s.Value == "true"
		}
	}

	if dirty {
		return rev + "-dirty"
	}

	return rev
}
