// Package buildinfo carries the version stamped in with
// -ldflags "-X lcdgfx/internal/buildinfo.Version=...".
package buildinfo

var (
	Version = "dev"
	Commit  = "unknown"
	Date    = "unknown"
)

// Short is the version, else the commit, else "dev". It goes in window
// titles.
func Short() string {
	if Version != "" && Version != "dev" {
		return Version
	}
	if Commit != "" && Commit != "unknown" {
		return Commit
	}
	return "dev"
}

// Attrs are the build fields as slog key-value pairs.
func Attrs() []any {
	return []any{"version", Version, "commit", Commit, "built", Date}
}
