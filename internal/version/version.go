// Package version reports build information for todo.
package version

import (
	"fmt"
	"runtime"
	"runtime/debug"
)

// Info contains version information about todo.
type Info struct {
	Version string `json:"version"`
	Commit  string `json:"commit"`
	Date    string `json:"date"`
	GoVer   string `json:"go_version"`
	OS      string `json:"os"`
	Arch    string `json:"arch"`
}

// NewInfo creates a new Info from the build variables.
func NewInfo(version, commit, date string) *Info {
	return &Info{
		Version: version,
		Commit:  commit,
		Date:    date,
		GoVer:   runtime.Version(),
		OS:      runtime.GOOS,
		Arch:    runtime.GOARCH,
	}
}

// FromBuildInfo fills in fields left at their ldflags defaults from the
// module build info, so "go install" builds still report a version.
func (i *Info) FromBuildInfo(bi *debug.BuildInfo) *Info {
	if bi == nil {
		return i
	}
	if i.Version == "dev" && bi.Main.Version != "" && bi.Main.Version != "(devel)" {
		i.Version = bi.Main.Version
	}
	for _, s := range bi.Settings {
		switch s.Key {
		case "vcs.revision":
			if i.Commit == "none" && s.Value != "" {
				i.Commit = shortCommit(s.Value)
			}
		case "vcs.time":
			if i.Date == "unknown" && s.Value != "" {
				i.Date = s.Value
			}
		}
	}
	return i
}

// Current returns Info for the running binary.
func Current(version, commit, date string) *Info {
	info := NewInfo(version, commit, date)
	if bi, ok := debug.ReadBuildInfo(); ok {
		info.FromBuildInfo(bi)
	}
	return info
}

func shortCommit(rev string) string {
	if len(rev) > 7 {
		return rev[:7]
	}
	return rev
}

// String returns a formatted version string.
func (i *Info) String() string {
	return fmt.Sprintf("todo %s (commit: %s, built: %s)", i.Version, i.Commit, i.Date)
}

// FullString returns a detailed version string.
func (i *Info) FullString() string {
	return fmt.Sprintf(`todo %s
  Commit:   %s
  Built:    %s
  Go:       %s
  OS/Arch:  %s/%s`, i.Version, i.Commit, i.Date, i.GoVer, i.OS, i.Arch)
}
