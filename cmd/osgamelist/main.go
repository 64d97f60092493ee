package main

import (
	"os"
	"runtime/debug"

	"github.com/jokarl/osgamelist/internal/cli"
)

// Version information, set via ldflags or read from build info
var (
	version = "dev"
	commit  = "none"
	date    = "unknown"
)

func main() {
	if info, ok := debug.ReadBuildInfo(); ok {
		// go install module@version
		if version == "dev" && info.Main.Version != "" && info.Main.Version != "(devel)" {
			version = info.Main.Version
		}
		if commit == "none" {
			commit, date = vcsInfo(info, date)
		}
	}

	cli.SetVersionInfo(version, commit, date)
	if err := cli.Execute(); err != nil {
		os.Exit(1)
	}
}

func vcsInfo(info *debug.BuildInfo, date string) (string, string) {
	commit := "none"
	for _, setting := range info.Settings {
		switch setting.Key {
		case "vcs.revision":
			commit = setting.Value
			if len(commit) > 7 {
				commit = commit[:7]
			}
		case "vcs.time":
			date = setting.Value
		}
	}
	return commit, date
}
