package version

import (
	"fmt"

	"github.com/carlmjohnson/versioninfo"
)

// Set with -ldflags "-X github.com/dogeorg/wifi-app/pkg/version.release=..."
var release string

type Info struct {
	Release string
	Commit  string
	Dirty   bool
}

func GetRelease() Info {
	info := Info{
		Release: release,
		Commit:  versioninfo.Revision,
		Dirty:   versioninfo.DirtyBuild,
	}

	if info.Release == "" {
		info.Release = "unknown"
	}

	return info
}

// String renders "release", or "release (commit)" when the binary carries
// VCS information.
func (i Info) String() string {
	if i.Commit == "" || i.Commit == "unknown" {
		return i.Release
	}

	commit := i.Commit
	if len(commit) > 12 {
		commit = commit[:12]
	}
	if i.Dirty {
		commit += "-dirty"
	}

	return fmt.Sprintf("%s (%s)", i.Release, commit)
}
