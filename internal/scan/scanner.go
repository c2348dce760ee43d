package scan

import (
	"fmt"
	"io/fs"
	"os"
	"path/filepath"
	"strings"
	"time"

	"github.com/extrise/devdust/internal/rules"
)

// maxWarnings caps the warning list so a badly-permissioned tree
// cannot balloon memory.
const maxWarnings = 500

// Scanner walks directory trees and detects project roots against a
// rule table. A Scanner is good for multiple Scan calls; warnings and
// counters accumulate across them.
type Scanner struct {
	table         rules.Table
	opts          *Options
	exclude       map[string]bool
	warnings      []string
	scanned       int64
	skippedMounts int64
}

// NewScanner creates a scanner over the given rule table. opts may be
// nil for defaults.
func NewScanner(table rules.Table, opts *Options) *Scanner {
	if opts == nil {
		opts = &Options{}
	}
	exclude := make(map[string]bool, len(opts.Exclude))
	for _, e := range opts.Exclude {
		exclude[strings.ToLower(e)] = true
	}
	return &Scanner{
		table:   table,
		opts:    opts,
		exclude: exclude,
	}
}

// Warnings returns the warnings accumulated so far.
func (s *Scanner) Warnings() []string {
	return append([]string(nil), s.warnings...)
}

// ScannedCount returns the number of directories visited so far.
func (s *Scanner) ScannedCount() int64 {
	return s.scanned
}

// SkippedMounts returns how many directories were pruned for living on
// a different filesystem than the scan root.
func (s *Scanner) SkippedMounts() int64 {
	return s.skippedMounts
}

func (s *Scanner) addWarning(msg string) {
	if len(s.warnings) < maxWarnings {
		s.warnings = append(s.warnings, msg)
	}
}

// Scan walks root and returns every detected project, in walk order.
// Filesystem errors below the root become warnings, not failures.
func (s *Scanner) Scan(root string) ([]Project, error) {
	root = filepath.Clean(root)

	info, err := os.Stat(root)
	if err != nil {
		return nil, err
	}
	if !info.IsDir() {
		return nil, fmt.Errorf("not a directory: %s", root)
	}

	rootDev, devOK := deviceID(root)

	var visited map[string]bool
	if s.opts.FollowSymlinks {
		visited = make(map[string]bool)
		if resolved, err := filepath.EvalSymlinks(root); err == nil {
			visited[resolved] = true
		}
	}

	var projects []Project

	var walk func(dir string)
	walk = func(dir string) {
		s.scanned++

		entries, err := os.ReadDir(dir)
		if err != nil {
			s.addWarning("cannot read " + dir + ": " + err.Error())
			return
		}

		// Detect before descending so a project's own artifact
		// directories can be pruned from the walk. node_modules and
		// friends are full of nested manifests that are not projects
		// of their own.
		pruned := map[string]bool{}
		if rule := s.table.DetectEntries(dir, entries); rule != nil {
			project := Project{Rule: rule, Path: dir}
			if s.includeByAge(&project) {
				projects = append(projects, project)
			}
			for _, p := range project.ArtifactPaths() {
				pruned[filepath.Base(p)] = true
			}
		}

		for _, e := range entries {
			name := e.Name()
			path := filepath.Join(dir, name)

			isDir := e.IsDir()
			if !isDir && e.Type()&fs.ModeSymlink != 0 && s.opts.FollowSymlinks {
				if target, err := os.Stat(path); err == nil && target.IsDir() {
					isDir = true
				}
			}
			if !isDir {
				continue
			}

			if strings.HasPrefix(name, ".") {
				continue
			}
			if s.exclude[strings.ToLower(name)] || pruned[name] {
				continue
			}

			if s.opts.SameFilesystem && devOK {
				if dev, ok := deviceID(path); ok && dev != rootDev {
					// Intended pruning, not a problem: counted, not warned,
					// so a mount-heavy root does not flood the warning list.
					s.skippedMounts++
					continue
				}
			}

			if visited != nil {
				resolved, err := filepath.EvalSymlinks(path)
				if err != nil {
					s.addWarning("cannot resolve " + path + ": " + err.Error())
					continue
				}
				if visited[resolved] {
					continue
				}
				visited[resolved] = true
			}

			walk(path)
		}
	}

	walk(root)
	return projects, nil
}

// includeByAge applies the MinAge filter. A project whose newest file
// is younger than MinAge is considered in active use and skipped.
func (s *Scanner) includeByAge(p *Project) bool {
	if s.opts.MinAge <= 0 {
		return true
	}
	last, err := p.LastModified(s.opts)
	if err != nil {
		s.addWarning("cannot stat " + p.Path + ": " + err.Error())
		return true
	}
	return time.Since(last) >= s.opts.MinAge
}
