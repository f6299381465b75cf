// Package version carries build metadata injected via ldflags for release
// binaries. Values default to empty for local/dev builds.
package version

var (
	Version = ""
	Commit  = ""
	Date    = ""
)

// String returns a human-readable version line.
func String() string {
	v := Version
	if v == "" {
		v = "dev"
	}
	if Commit != "" {
		v += " (" + Commit + ")"
	}
	return v
}
