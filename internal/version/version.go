package version

import "github.com/fatih/color"

// Version information for the maze CLI.
// These variables can be overridden at build time via -ldflags.

var (
	majorColor = color.New(color.FgYellow, color.Bold)
	minorColor = color.New(color.FgGreen, color.Bold)
	patchColor = color.New(color.FgBlue, color.Bold)

	// Major, Minor and Patch make up the semantic version.
	Major = "0"
	Minor = "2"
	Patch = "0"

	// Suffix is appended after the patch number, e.g. "-dev".
	Suffix = "-dev"

	// GitCommit is an optional git commit hash.
	GitCommit = ""

	// BuildDate is an optional build date in ISO-8601.
	BuildDate = ""
)

// Plain returns the version without color.
func Plain() string {
	return Major + "." + Minor + "." + Patch + Suffix
}

// Colored returns the version with each part colored. fatih/color drops
// the escapes when output is not a terminal or NO_COLOR is set.
func Colored() string {
	return majorColor.Sprint(Major) + "." + minorColor.Sprint(Minor) + "." + patchColor.Sprint(Patch) + Suffix
}
