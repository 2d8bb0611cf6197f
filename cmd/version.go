package cmd

import (
	"fmt"
	"runtime"
)

// Set via -ldflags at release time.
var (
	version   = "dev"
	commit    = ""
	buildDate = ""
)

// versionTemplate renders build information for --version.
func versionTemplate() string {
	return fmt.Sprintf("Version:    %s\n", version) +
		fmt.Sprintf("Commit:     %s\n", emptyAsNA(commit)) +
		fmt.Sprintf("Build Date: %s\n", emptyAsNA(buildDate)) +
		fmt.Sprintf("Go Version: %s\n", runtime.Version()) +
		fmt.Sprintf("OS/Arch:    %s/%s\n", runtime.GOOS, runtime.GOARCH)
}

func emptyAsNA(s string) string {
	if s == "" {
		return "n/a"
	}
	return s
}
