package scan

import (
	"io/fs"
	"os"
	"path/filepath"
	"strings"
	"time"

	"github.com/extrise/devdust/internal/rules"
)

// Project is a detected development project: its rule and its root
// directory. Immutable after detection.
type Project struct {
	Rule *rules.Rule
	Path string
}

// Name returns the project's display name, usually the directory name.
func (p *Project) Name() string {
	if name := filepath.Base(p.Path); name != "." && name != string(filepath.Separator) {
		return name
	}
	return p.Path
}

// Type returns the human-readable project type.
func (p *Project) Type() string {
	return p.Rule.Name
}

// ArtifactPaths resolves the rule's artifact entries against the
// project root and returns the ones that currently exist. Glob entries
// are expanded. Existence is checked at call time so the result stays
// honest under concurrent external changes.
func (p *Project) ArtifactPaths() []string {
	var paths []string
	for _, a := range p.Rule.Artifacts {
		full := filepath.Join(p.Path, a)
		if strings.ContainsAny(a, "*?[") {
			matches, err := filepath.Glob(full)
			if err != nil {
				continue
			}
			paths = append(paths, matches...)
			continue
		}
		if _, err := os.Lstat(full); err == nil {
			paths = append(paths, full)
		}
	}
	return paths
}

// ArtifactSize sums the file sizes under every existing artifact
// directory.
func (p *Project) ArtifactSize(opts *Options) int64 {
	var total int64
	for _, path := range p.ArtifactPaths() {
		total += DirSize(path, opts)
	}
	return total
}

// LastModified returns the most recent modification time anywhere in
// the project tree, including artifacts.
func (p *Project) LastModified(opts *Options) (time.Time, error) {
	info, err := os.Stat(p.Path)
	if err != nil {
		return time.Time{}, err
	}

	newest := info.ModTime()
	walkFiles(p.Path, opts, func(_ string, fi fs.FileInfo) {
		if mt := fi.ModTime(); mt.After(newest) {
			newest = mt
		}
	})

	return newest, nil
}

// DirSize returns the total size in bytes of the files under path, or
// the file's own size when path is a plain file. Errors are skipped;
// unreadable subtrees count as zero. When path itself is a symlink and
// FollowSymlinks is off, the target is not sized: deleting the
// artifact removes only the link, so the target's bytes are not
// reclaimable.
func DirSize(path string, opts *Options) int64 {
	fi, err := os.Lstat(path)
	if err != nil {
		return 0
	}
	if fi.Mode().IsRegular() {
		return fi.Size()
	}
	if fi.Mode()&fs.ModeSymlink != 0 && (opts == nil || !opts.FollowSymlinks) {
		return 0
	}

	var total int64
	walkFiles(path, opts, func(_ string, fi fs.FileInfo) {
		if fi.Mode().IsRegular() {
			total += fi.Size()
		}
	})
	return total
}

// walkFiles visits every file and directory under root, honoring the
// symlink and filesystem-boundary options. fn sees each entry's
// FileInfo; traversal errors are silently skipped.
func walkFiles(root string, opts *Options, fn func(path string, fi fs.FileInfo)) {
	rootDev, devOK := deviceID(root)

	var visited map[string]bool
	if opts != nil && opts.FollowSymlinks {
		visited = make(map[string]bool)
		if resolved, err := filepath.EvalSymlinks(root); err == nil {
			visited[resolved] = true
		}
	}

	var walk func(dir string)
	walk = func(dir string) {
		entries, err := os.ReadDir(dir)
		if err != nil {
			return
		}

		for _, e := range entries {
			path := filepath.Join(dir, e.Name())

			isDir := e.IsDir()
			if !isDir && e.Type()&fs.ModeSymlink != 0 && opts != nil && opts.FollowSymlinks {
				if target, err := os.Stat(path); err == nil && target.IsDir() {
					isDir = true
				}
			}

			if isDir {
				if opts != nil && opts.SameFilesystem && devOK {
					if dev, ok := deviceID(path); ok && dev != rootDev {
						continue
					}
				}
				if visited != nil {
					resolved, err := filepath.EvalSymlinks(path)
					if err != nil || visited[resolved] {
						continue
					}
					visited[resolved] = true
				}
				if fi, err := e.Info(); err == nil {
					fn(path, fi)
				}
				walk(path)
				continue
			}

			fi, err := e.Info()
			if err != nil {
				continue
			}
			fn(path, fi)
		}
	}

	walk(root)
}
