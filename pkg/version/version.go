// Package version provides build information for the srclist CLI.
package version

import (
	"fmt"
	"runtime"
)

// Set at build time, e.g.
// go build -ldflags "-X srclist/pkg/version.Version=1.2.3 -X srclist/pkg/version.Commit=abcdefg"
var (
	Version   = "dev"
	Commit    = "none"
	BuildTime = "unknown"
)

// Info describes the running binary.
type Info struct {
	Version   string
	GitCommit string
	BuildTime string
	GoVersion string
	Platform  string
}

// Get returns the current version information.
func Get() Info {
	return Info{
		Version:   Version,
		GitCommit: Commit,
		BuildTime: BuildTime,
		GoVersion: runtime.Version(),
		Platform:  runtime.GOOS + "/" + runtime.GOARCH,
	}
}

// LogFields returns the fields stamped on every log entry, so a list file
// that surprises a build can be traced back to the generator that wrote it.
func (i Info) LogFields() map[string]interface{} {
	return map[string]interface{}{
		"appName":    "srclist",
		"appVersion": i.Version,
		"gitCommit":  i.GitCommit,
	}
}

func (i Info) String() string {
	return fmt.Sprintf("srclist version %s (commit: %s) built at %s with %s on %s",
		i.Version, i.GitCommit, i.BuildTime, i.GoVersion, i.Platform)
}
