package output

import (
	"io"
	"strings"
	"time"

	"github.com/olekukonko/tablewriter"

	"github.com/extrise/devdust/internal/rules"
	"github.com/extrise/devdust/internal/ui"
)

// PrintTable formats the report as an ASCII table.
func PrintTable(w io.Writer, r *Report) {
	if len(r.Entries) == 0 {
		PrintPlain(w, r)
		return
	}

	table := tablewriter.NewWriter(w)
	table.Header("Project", "Type", "Artifacts", "Modified", "Path")

	for _, e := range r.Entries {
		modified := "-"
		if !e.Modified.IsZero() {
			modified = ui.FormatElapsed(time.Since(e.Modified))
		}
		table.Append(
			e.Project.Name(),
			e.Project.Type(),
			ui.FormatSize(e.Size),
			modified,
			e.Project.Path,
		)
	}
	table.Footer("Total", "", ui.FormatSize(r.TotalBytes), "", "")

	table.Render()
}

// PrintTypes lists the rule table: every supported project type with
// its markers and artifact directories.
func PrintTypes(w io.Writer, t rules.Table) {
	table := tablewriter.NewWriter(w)
	table.Header("Type", "Markers", "Artifact directories")

	for _, rule := range t {
		markers := strings.Join(rule.Markers, ", ")
		if len(rule.Exts) > 0 {
			if markers != "" {
				markers += ", "
			}
			markers += "*" + strings.Join(rule.Exts, ", *")
		}
		table.Append(rule.Name, markers, strings.Join(rule.Artifacts, ", "))
	}

	table.Render()
}
