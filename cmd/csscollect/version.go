package main

import (
	"fmt"
	"runtime/debug"

	"github.com/spf13/cobra"
)

// version is set at build time via ldflags:
//
//	go build -ldflags "-X main.version=1.0.0" ./cmd/csscollect
//
// Binaries installed with "go install ...@vX" report the module version instead.
var version = "dev"

var versionCmd = &cobra.Command{
	Use:   "version",
	Short: "Print the version of csscollect",
	Run: func(_ *cobra.Command, _ []string) {
		fmt.Printf("csscollect %s\n", resolveVersion(version, debug.ReadBuildInfo))
	},
}

func resolveVersion(v string, buildInfo func() (*debug.BuildInfo, bool)) string {
	if v != "dev" {
		return v
	}
	if info, ok := buildInfo(); ok && info.Main.Version != "" && info.Main.Version != "(devel)" {
		return info.Main.Version
	}
	return v
}
