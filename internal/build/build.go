// Package build provides build information that is linked into the application. Other
// packages within the project can use this information in logs etc..
package build

var (
	// Version is the build version of the application, set with -ldflags.
	Version = "dev"

	// Commit is the sha of the git commit the application was built from.
	Commit = "none"

	// Date is the date the application was built.
	Date = "unknown"
)
