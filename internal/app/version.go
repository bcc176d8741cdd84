// Package app provides application-level functionality for roxl.
package app

import (
	"fmt"
	"runtime"
)

var (
	// Version is the application version (set at build time).
	Version = "dev"
	// Commit is the git commit hash (set at build time).
	Commit = "unknown"
	// Date is the build date (set at build time).
	Date = "unknown"
	// Creator is the application creator.
	Creator = "Kannan"
)

// GetVersion returns the full version string.
func GetVersion() string {
	return fmt.Sprintf("%s (%s)", Version, Commit[:min(7, len(Commit))])
}

// GetVersionInfo returns detailed version information.
func GetVersionInfo() string {
	return fmt.Sprintf(`roxl v%s
Commit: %s
Built:  %s
Go:     %s
OS:     %s/%s
Creator: %s`,
		Version, Commit, Date, runtime.Version(), runtime.GOOS, runtime.GOARCH, Creator)
}

// GetSmallBanner returns a small ASCII art banner.
func GetSmallBanner() string {
	return `
╭──────────────────────────────────╮
│  ┏━┓┏━┓╻ ╻╻                      │
│  ┣┳┛┃ ┃┏╋┛┃     rotating titles  │
│  ╹┗╸┗━┛╹ ╹┗━╸   v` + fmt.Sprintf("%-16s", Version) + `│
╰──────────────────────────────────╯
`
}
