// Package buildinfo exposes version identity stamped at link time.
package buildinfo

// Set via -ldflags at build time.
var (
	// Version is the module release version.
	Version = "dev"
	// Commit is the full git commit hash.
	Commit = "unknown"
	// Branch is the git branch the build came from.
	Branch = "unknown"
)

// ShortCommit returns the commit truncated to 8 characters.
func ShortCommit() string {
	if len(Commit) > 8 {
		return Commit[:8]
	}
	return Commit
}
