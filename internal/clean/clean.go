// Package clean deletes a project's build-artifact directories and
// reports how much space was reclaimed.
package clean

import (
	"fmt"
	"os"

	"github.com/extrise/devdust/internal/scan"
)

// PathError records a single artifact directory that could not be
// removed.
type PathError struct {
	Path string
	Err  error
}

func (e PathError) Error() string {
	return fmt.Sprintf("%s: %v", e.Path, e.Err)
}

// Result is the outcome of cleaning one project. Freed counts bytes
// actually removed (or, in a dry run, that would be removed); Errors
// holds per-directory failures. A partially failed clean still reports
// the bytes it managed to free.
type Result struct {
	Freed  int64
	Errors []PathError
}

// Partial reports whether some directories failed while others were
// removed.
func (r Result) Partial() bool {
	return len(r.Errors) > 0 && r.Freed > 0
}

// Project removes every existing artifact directory of p. Each
// directory is sized immediately before removal so Freed is accurate
// even when later directories fail. Failures never abort the remaining
// directories and nothing is rolled back.
func Project(p *scan.Project, opts *scan.Options, dryRun bool) Result {
	var res Result

	for _, path := range p.ArtifactPaths() {
		size := scan.DirSize(path, opts)

		if dryRun {
			res.Freed += size
			continue
		}

		if err := os.RemoveAll(path); err != nil {
			res.Errors = append(res.Errors, PathError{Path: path, Err: err})
			continue
		}
		res.Freed += size
	}

	return res
}
