// Package scan finds development-project roots under a directory tree
// and accounts for the disk space held by their build artifacts.
package scan

import "time"

// Options controls directory traversal. The zero value does not follow
// symlinks, crosses filesystem boundaries, applies no age filter and
// excludes nothing.
type Options struct {
	// FollowSymlinks descends into symlinked directories. Cycles are
	// guarded by tracking resolved paths.
	FollowSymlinks bool

	// SameFilesystem prunes directories that live on a different
	// device than the scan root. No-op on Windows.
	SameFilesystem bool

	// MinAge skips projects modified more recently than this.
	MinAge time.Duration

	// Exclude lists directory names (case-insensitive) to skip.
	Exclude []string
}
