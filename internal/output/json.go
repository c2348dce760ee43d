package output

import (
	"encoding/json"
	"fmt"
	"io"
	"time"

	"github.com/extrise/devdust/internal/scan"
)

// JSONReport is the complete JSON output structure.
type JSONReport struct {
	GeneratedAt string        `json:"generatedAt"`
	Options     OptionsInfo   `json:"options"`
	Projects    []JSONProject `json:"projects"`
	TotalBytes  int64         `json:"totalBytes"`
	Warnings    []string      `json:"warnings,omitempty"`
}

// OptionsInfo echoes the scan options that produced the report.
type OptionsInfo struct {
	FollowSymlinks bool     `json:"followSymlinks"`
	SameFilesystem bool     `json:"sameFilesystem"`
	MinAgeSeconds  int64    `json:"minAgeSeconds"`
	Exclude        []string `json:"exclude,omitempty"`
}

// JSONProject represents one detected project in JSON output.
type JSONProject struct {
	Name          string   `json:"name"`
	Type          string   `json:"type"`
	Path          string   `json:"path"`
	ArtifactBytes int64    `json:"artifactBytes"`
	ArtifactDirs  []string `json:"artifactDirs"`
	LastModified  string   `json:"lastModified,omitempty"`
}

// PrintJSON writes the report as indented JSON.
func PrintJSON(w io.Writer, r *Report, opts *scan.Options) error {
	out := JSONReport{
		GeneratedAt: time.Now().UTC().Format(time.RFC3339),
		Options: OptionsInfo{
			FollowSymlinks: opts.FollowSymlinks,
			SameFilesystem: opts.SameFilesystem,
			MinAgeSeconds:  int64(opts.MinAge.Seconds()),
			Exclude:        opts.Exclude,
		},
		Projects:   make([]JSONProject, 0, len(r.Entries)),
		TotalBytes: r.TotalBytes,
		Warnings:   r.Warnings,
	}

	for _, e := range r.Entries {
		p := JSONProject{
			Name:          e.Project.Name(),
			Type:          e.Project.Type(),
			Path:          e.Project.Path,
			ArtifactBytes: e.Size,
			ArtifactDirs:  make([]string, 0),
		}
		for _, a := range e.Project.ArtifactPaths() {
			p.ArtifactDirs = append(p.ArtifactDirs, relArtifact(e.Project.Path, a))
		}
		if !e.Modified.IsZero() {
			p.LastModified = e.Modified.UTC().Format(time.RFC3339)
		}
		out.Projects = append(out.Projects, p)
	}

	data, err := json.MarshalIndent(out, "", "  ")
	if err != nil {
		return fmt.Errorf("marshaling JSON: %w", err)
	}

	fmt.Fprintln(w, string(data))
	return nil
}
