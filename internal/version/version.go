// Package version holds the build version shown by the TUI header and the
// version command. Overridden at release time via -ldflags.
package version

var Version = "1.2.0"
