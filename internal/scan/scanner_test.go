package scan

import (
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/extrise/devdust/internal/rules"
)

func projectTypes(projects []Project) map[string]string {
	m := make(map[string]string, len(projects))
	for _, p := range projects {
		m[filepath.Base(p.Path)] = p.Rule.Name
	}
	return m
}

func TestScanFindsProjects(t *testing.T) {
	root := t.TempDir()
	writeFile(t, filepath.Join(root, "rusty", "Cargo.toml"), 10)
	writeFile(t, filepath.Join(root, "rusty", "target", "app"), 100)
	writeFile(t, filepath.Join(root, "webby", "package.json"), 10)
	writeFile(t, filepath.Join(root, "webby", "node_modules", "left-pad", "index.js"), 100)
	writeFile(t, filepath.Join(root, "docs", "notes.md"), 10)

	scanner := NewScanner(rules.Builtin(), &Options{})
	projects, err := scanner.Scan(root)
	if err != nil {
		t.Fatal(err)
	}

	types := projectTypes(projects)
	if len(types) != 2 {
		t.Fatalf("found %d projects (%v), want 2", len(types), types)
	}
	if types["rusty"] != "Rust" {
		t.Errorf("rusty = %q, want Rust", types["rusty"])
	}
	if types["webby"] != "Node.js" {
		t.Errorf("webby = %q, want Node.js", types["webby"])
	}
}

func TestScanPrunesArtifactDirs(t *testing.T) {
	root := t.TempDir()
	writeFile(t, filepath.Join(root, "app", "package.json"), 10)
	// Nested manifests inside node_modules must not surface as projects.
	writeFile(t, filepath.Join(root, "app", "node_modules", "dep", "package.json"), 10)
	writeFile(t, filepath.Join(root, "app", "node_modules", "dep2", "Cargo.toml"), 10)

	scanner := NewScanner(rules.Builtin(), &Options{})
	projects, err := scanner.Scan(root)
	if err != nil {
		t.Fatal(err)
	}

	if len(projects) != 1 {
		t.Fatalf("found %d projects (%v), want 1", len(projects), projectTypes(projects))
	}
	if filepath.Base(projects[0].Path) != "app" {
		t.Errorf("project = %s, want app", projects[0].Path)
	}
}

func TestScanSkipsHiddenDirs(t *testing.T) {
	root := t.TempDir()
	writeFile(t, filepath.Join(root, ".cache", "proj", "Cargo.toml"), 10)
	writeFile(t, filepath.Join(root, "visible", "Cargo.toml"), 10)

	scanner := NewScanner(rules.Builtin(), &Options{})
	projects, err := scanner.Scan(root)
	if err != nil {
		t.Fatal(err)
	}

	types := projectTypes(projects)
	if len(types) != 1 || types["visible"] != "Rust" {
		t.Errorf("projects = %v, want only visible", types)
	}
}

func TestScanExclude(t *testing.T) {
	root := t.TempDir()
	writeFile(t, filepath.Join(root, "keep", "Cargo.toml"), 10)
	writeFile(t, filepath.Join(root, "Vendor", "Cargo.toml"), 10)

	scanner := NewScanner(rules.Builtin(), &Options{Exclude: []string{"vendor"}})
	projects, err := scanner.Scan(root)
	if err != nil {
		t.Fatal(err)
	}

	types := projectTypes(projects)
	if len(types) != 1 || types["keep"] != "Rust" {
		t.Errorf("projects = %v, want only keep (exclude is case-insensitive)", types)
	}
}

func TestScanMinAge(t *testing.T) {
	root := t.TempDir()
	proj := filepath.Join(root, "dormant")
	writeFile(t, filepath.Join(proj, "Cargo.toml"), 10)
	writeFile(t, filepath.Join(proj, "target", "app"), 10)

	old := time.Now().Add(-72 * time.Hour)
	for _, f := range []string{
		filepath.Join(proj, "Cargo.toml"),
		filepath.Join(proj, "target", "app"),
		filepath.Join(proj, "target"),
		proj,
		root,
	} {
		if err := os.Chtimes(f, old, old); err != nil {
			t.Fatal(err)
		}
	}

	// Older than a day: included.
	scanner := NewScanner(rules.Builtin(), &Options{MinAge: 24 * time.Hour})
	projects, err := scanner.Scan(root)
	if err != nil {
		t.Fatal(err)
	}
	if len(projects) != 1 {
		t.Fatalf("with 1d min age: %d projects, want 1", len(projects))
	}

	// Minimum age of a week: too recent, skipped.
	scanner = NewScanner(rules.Builtin(), &Options{MinAge: 7 * 24 * time.Hour})
	projects, err = scanner.Scan(root)
	if err != nil {
		t.Fatal(err)
	}
	if len(projects) != 0 {
		t.Fatalf("with 7d min age: %d projects, want 0", len(projects))
	}
}

func TestScanRootMustBeDir(t *testing.T) {
	root := t.TempDir()
	file := filepath.Join(root, "file.txt")
	writeFile(t, file, 1)

	scanner := NewScanner(rules.Builtin(), nil)
	if _, err := scanner.Scan(file); err == nil {
		t.Error("Scan of a file should fail")
	}
	if _, err := scanner.Scan(filepath.Join(root, "missing")); err == nil {
		t.Error("Scan of a missing path should fail")
	}
}

func TestScanSymlinks(t *testing.T) {
	root := t.TempDir()
	outside := t.TempDir()
	writeFile(t, filepath.Join(outside, "linked", "Cargo.toml"), 10)

	if err := os.Symlink(filepath.Join(outside, "linked"), filepath.Join(root, "linked")); err != nil {
		t.Skipf("symlinks unavailable: %v", err)
	}

	// Not followed by default.
	scanner := NewScanner(rules.Builtin(), &Options{})
	projects, err := scanner.Scan(root)
	if err != nil {
		t.Fatal(err)
	}
	if len(projects) != 0 {
		t.Errorf("without FollowSymlinks: %d projects, want 0", len(projects))
	}

	// Followed on request.
	scanner = NewScanner(rules.Builtin(), &Options{FollowSymlinks: true})
	projects, err = scanner.Scan(root)
	if err != nil {
		t.Fatal(err)
	}
	if len(projects) != 1 {
		t.Errorf("with FollowSymlinks: %d projects, want 1", len(projects))
	}
}

func TestScanSymlinkCycle(t *testing.T) {
	root := t.TempDir()
	writeFile(t, filepath.Join(root, "proj", "Cargo.toml"), 10)
	if err := os.Symlink(root, filepath.Join(root, "proj", "loop")); err != nil {
		t.Skipf("symlinks unavailable: %v", err)
	}

	scanner := NewScanner(rules.Builtin(), &Options{FollowSymlinks: true})
	projects, err := scanner.Scan(root)
	if err != nil {
		t.Fatal(err)
	}
	if len(projects) != 1 {
		t.Errorf("cycle scan found %d projects, want 1", len(projects))
	}
}

func TestScannedCountAndWarnings(t *testing.T) {
	root := t.TempDir()
	writeFile(t, filepath.Join(root, "a", "x"), 1)
	writeFile(t, filepath.Join(root, "b", "x"), 1)

	scanner := NewScanner(rules.Builtin(), &Options{})
	if _, err := scanner.Scan(root); err != nil {
		t.Fatal(err)
	}

	if scanner.ScannedCount() != 3 {
		t.Errorf("ScannedCount = %d, want 3", scanner.ScannedCount())
	}
	if len(scanner.Warnings()) != 0 {
		t.Errorf("Warnings = %v, want none", scanner.Warnings())
	}
}

func TestScanSameFilesystemQuietPruning(t *testing.T) {
	root := t.TempDir()
	writeFile(t, filepath.Join(root, "proj", "Cargo.toml"), 10)
	writeFile(t, filepath.Join(root, "other", "x"), 1)

	scanner := NewScanner(rules.Builtin(), &Options{SameFilesystem: true})
	projects, err := scanner.Scan(root)
	if err != nil {
		t.Fatal(err)
	}

	// Same device throughout: nothing pruned, and filesystem pruning
	// never writes warnings either way.
	if len(projects) != 1 {
		t.Errorf("found %d projects, want 1", len(projects))
	}
	if scanner.SkippedMounts() != 0 {
		t.Errorf("SkippedMounts = %d, want 0", scanner.SkippedMounts())
	}
	if len(scanner.Warnings()) != 0 {
		t.Errorf("Warnings = %v, want none", scanner.Warnings())
	}
}
