// Package shared holds the context passed to all CLI commands.
package shared

// Context carries global CLI state (flags set on the root command).
type Context struct {
	// BookHome overrides the book home directory.
	// When empty, resolution falls through to BLUEBOOK_HOME env var → persisted config → ~/.bluebook.
	BookHome string
	// Format overrides the configured store format ("json" or "yaml").
	Format string
}
