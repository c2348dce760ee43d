package rules

import (
	"io/fs"
	"os"
	"path/filepath"
	"strings"
)

// Detect classifies a directory by reading its immediate children and
// matching them against the table. It returns nil when the directory
// is not a recognized project root or cannot be read.
func (t Table) Detect(dir string) *Rule {
	entries, err := os.ReadDir(dir)
	if err != nil {
		return nil
	}
	return t.DetectEntries(dir, entries)
}

// DetectEntries is Detect for callers that already hold the directory
// listing. Entries are checked in order; for each entry, exact marker
// names are tried before extension matches, and the first hit wins.
func (t Table) DetectEntries(dir string, entries []fs.DirEntry) *Rule {
	markers := t.markerIndex()

	for _, e := range entries {
		name := e.Name()

		if r, ok := markers[name]; ok {
			return r
		}

		ext := filepath.Ext(name)
		if ext == "" {
			continue
		}

		// Shared extensions need a second look at the directory:
		// Unity and Godot projects also carry .csproj files.
		switch ext {
		case ".csproj", ".fsproj":
			if hasFile(dir, "project.godot") {
				return t.Find("Godot")
			}
			if hasFile(dir, "Assembly-CSharp.csproj") {
				return t.Find("Unity")
			}
			return t.Find(".NET")
		case ".py":
			// Loose .py files are everywhere; only a directory that
			// already carries Python build litter counts as a project.
			py := t.Find("Python")
			if py != nil && hasAnyArtifact(dir, py.Artifacts) {
				return py
			}
			continue
		}

		if r := t.findExt(ext); r != nil {
			return r
		}
	}

	return nil
}

// markerIndex builds the exact-filename lookup. Earlier rules win on
// duplicate marker names.
func (t Table) markerIndex() map[string]*Rule {
	idx := make(map[string]*Rule)
	for i := range t {
		for _, m := range t[i].Markers {
			if _, ok := idx[m]; !ok {
				idx[m] = &t[i]
			}
		}
	}
	return idx
}

func (t Table) findExt(ext string) *Rule {
	for i := range t {
		for _, e := range t[i].Exts {
			if e == ext {
				return &t[i]
			}
		}
	}
	return nil
}

func hasFile(dir, name string) bool {
	_, err := os.Stat(filepath.Join(dir, name))
	return err == nil
}

// hasAnyArtifact reports whether any artifact entry exists under dir.
// Glob entries match if they have at least one hit.
func hasAnyArtifact(dir string, artifacts []string) bool {
	for _, a := range artifacts {
		if strings.ContainsAny(a, "*?[") {
			matches, err := filepath.Glob(filepath.Join(dir, a))
			if err == nil && len(matches) > 0 {
				return true
			}
			continue
		}
		if hasFile(dir, a) {
			return true
		}
	}
	return false
}
