package output

import (
	"bytes"
	"encoding/json"
	"os"
	"path/filepath"
	"strings"
	"testing"
	"time"

	"github.com/extrise/devdust/internal/rules"
	"github.com/extrise/devdust/internal/scan"
)

func testEntry(t *testing.T) Entry {
	t.Helper()
	dir := t.TempDir()
	for _, f := range []string{"Cargo.toml", filepath.Join("target", "app")} {
		path := filepath.Join(dir, f)
		if err := os.MkdirAll(filepath.Dir(path), 0o755); err != nil {
			t.Fatal(err)
		}
		if err := os.WriteFile(path, []byte("x"), 0o644); err != nil {
			t.Fatal(err)
		}
	}
	return Entry{
		Project:  scan.Project{Rule: rules.Builtin().Find("Rust"), Path: dir},
		Size:     1024,
		Modified: time.Now().Add(-48 * time.Hour),
	}
}

func TestReportAdd(t *testing.T) {
	var r Report
	r.Add(Entry{Size: 100})
	r.Add(Entry{Size: 250})

	if len(r.Entries) != 2 {
		t.Fatalf("Entries = %d, want 2", len(r.Entries))
	}
	if r.TotalBytes != 350 {
		t.Errorf("TotalBytes = %d, want 350", r.TotalBytes)
	}
}

func TestPrintJSON(t *testing.T) {
	r := &Report{Warnings: []string{"cannot read /x"}}
	r.Add(testEntry(t))

	var buf bytes.Buffer
	opts := &scan.Options{SameFilesystem: true, MinAge: 24 * time.Hour}
	if err := PrintJSON(&buf, r, opts); err != nil {
		t.Fatal(err)
	}

	var out JSONReport
	if err := json.Unmarshal(buf.Bytes(), &out); err != nil {
		t.Fatalf("output is not valid JSON: %v", err)
	}

	if len(out.Projects) != 1 {
		t.Fatalf("projects = %d, want 1", len(out.Projects))
	}
	p := out.Projects[0]
	if p.Type != "Rust" {
		t.Errorf("type = %q, want Rust", p.Type)
	}
	if p.ArtifactBytes != 1024 {
		t.Errorf("artifactBytes = %d, want 1024", p.ArtifactBytes)
	}
	if len(p.ArtifactDirs) != 1 || p.ArtifactDirs[0] != "target" {
		t.Errorf("artifactDirs = %v, want [target]", p.ArtifactDirs)
	}
	if p.LastModified == "" {
		t.Error("lastModified missing")
	}
	if !out.Options.SameFilesystem {
		t.Error("options.sameFilesystem not echoed")
	}
	if out.Options.MinAgeSeconds != 86400 {
		t.Errorf("options.minAgeSeconds = %d, want 86400", out.Options.MinAgeSeconds)
	}
	if out.TotalBytes != 1024 {
		t.Errorf("totalBytes = %d, want 1024", out.TotalBytes)
	}
	if len(out.Warnings) != 1 {
		t.Errorf("warnings = %v, want 1 entry", out.Warnings)
	}
}

func TestPrintPlain(t *testing.T) {
	r := &Report{}
	r.Add(testEntry(t))

	var buf bytes.Buffer
	PrintPlain(&buf, r)
	got := buf.String()

	for _, want := range []string{
		"Found 1 projects holding 1.0 KB",
		"(Rust)",
		"artifacts: 1.0 KB",
		"modified: 2 days ago",
		"- target",
		"Total: 1.0 KB",
	} {
		if !strings.Contains(got, want) {
			t.Errorf("plain output missing %q:\n%s", want, got)
		}
	}
}

func TestPrintPlainEmpty(t *testing.T) {
	var buf bytes.Buffer
	PrintPlain(&buf, &Report{})

	if !strings.Contains(buf.String(), "No projects with build artifacts found.") {
		t.Errorf("empty report output = %q", buf.String())
	}
}

func TestPrintTable(t *testing.T) {
	r := &Report{}
	r.Add(testEntry(t))

	var buf bytes.Buffer
	PrintTable(&buf, r)
	got := buf.String()

	for _, want := range []string{"Rust", "1.0 KB", "Total"} {
		if !strings.Contains(got, want) {
			t.Errorf("table output missing %q:\n%s", want, got)
		}
	}
}

func TestPrintTypes(t *testing.T) {
	var buf bytes.Buffer
	PrintTypes(&buf, rules.Builtin())
	got := buf.String()

	for _, want := range []string{"Rust", "Cargo.toml", "node_modules", "*.uproject"} {
		if !strings.Contains(got, want) {
			t.Errorf("types output missing %q", want)
		}
	}
}
