package output

import (
	"fmt"
	"io"
	"path/filepath"
	"strings"
	"time"

	"github.com/charmbracelet/lipgloss"

	"github.com/extrise/devdust/internal/ui"
)

// PrintPretty writes a styled per-project report.
func PrintPretty(w io.Writer, r *Report) {
	if len(r.Entries) == 0 {
		printEmpty(w)
		return
	}

	header := ui.TitleStyle().Render(fmt.Sprintf("Found %d projects holding %s of build artifacts",
		len(r.Entries), ui.FormatSize(r.TotalBytes)))
	fmt.Fprintln(w, header)
	fmt.Fprintln(w)

	dim := lipgloss.NewStyle().Foreground(ui.ColorTextDim)
	muted := lipgloss.NewStyle().Foreground(ui.ColorMuted)
	size := lipgloss.NewStyle().Foreground(ui.ColorWarning).Bold(true)
	name := lipgloss.NewStyle().Foreground(ui.ColorText).Bold(true)

	for _, e := range r.Entries {
		fmt.Fprintf(w, "%s %s %s\n",
			lipgloss.NewStyle().Foreground(ui.ColorPrimary).Render(ui.IconBullet),
			name.Render(e.Project.Name()),
			muted.Render("("+e.Project.Type()+")"))
		fmt.Fprintf(w, "  %s %s\n", dim.Render("Path:"), e.Project.Path)
		fmt.Fprintf(w, "  %s %s\n", dim.Render("Artifacts:"), size.Render(ui.FormatSize(e.Size)))
		if !e.Modified.IsZero() {
			fmt.Fprintf(w, "  %s %s\n", dim.Render("Modified:"),
				muted.Render(ui.FormatElapsed(time.Since(e.Modified))))
		}
		for _, p := range e.Project.ArtifactPaths() {
			fmt.Fprintf(w, "    %s %s\n", muted.Render(ui.IconFolder),
				muted.Render(relArtifact(e.Project.Path, p)))
		}
		fmt.Fprintln(w)
	}
}

// PrintPlain writes the same report without styling, for logs and
// dumb terminals.
func PrintPlain(w io.Writer, r *Report) {
	if len(r.Entries) == 0 {
		fmt.Fprintln(w, "No projects with build artifacts found.")
		return
	}

	fmt.Fprintf(w, "Found %d projects holding %s of build artifacts\n",
		len(r.Entries), ui.FormatSize(r.TotalBytes))
	fmt.Fprintln(w, strings.Repeat("-", 58))

	for _, e := range r.Entries {
		PrintEntry(w, e)
	}

	fmt.Fprintln(w, strings.Repeat("-", 58))
	fmt.Fprintf(w, "Total: %s\n", ui.FormatSize(r.TotalBytes))
}

// PrintEntry writes one project block without styling. Used by the
// prompt-driven clean flow.
func PrintEntry(w io.Writer, e Entry) {
	fmt.Fprintf(w, "%s (%s)\n", e.Project.Name(), e.Project.Type())
	fmt.Fprintf(w, "  path: %s\n", e.Project.Path)
	fmt.Fprintf(w, "  artifacts: %s\n", ui.FormatSize(e.Size))
	if !e.Modified.IsZero() {
		fmt.Fprintf(w, "  modified: %s\n", ui.FormatElapsed(time.Since(e.Modified)))
	}
	for _, p := range e.Project.ArtifactPaths() {
		fmt.Fprintf(w, "    - %s\n", relArtifact(e.Project.Path, p))
	}
}

func printEmpty(w io.Writer) {
	muted := lipgloss.NewStyle().Foreground(ui.ColorMuted)
	fmt.Fprintln(w, ui.TitleStyle().Render("Scan finished."))
	fmt.Fprintln(w, "No projects with build artifacts found.")
	fmt.Fprintln(w, muted.Render("  "+ui.IconBullet+" no development projects in the scanned directories"))
	fmt.Fprintln(w, muted.Render("  "+ui.IconBullet+" all projects are already clean"))
	fmt.Fprintln(w, muted.Render("  "+ui.IconBullet+" projects are too new (when using --older)"))
}

// relArtifact renders an artifact path relative to its project root.
func relArtifact(root, path string) string {
	if rel, err := filepath.Rel(root, path); err == nil {
		return rel
	}
	return path
}
