package tui

import (
	"fmt"
	"path/filepath"
	"strings"
	"time"

	"github.com/charmbracelet/lipgloss"

	"github.com/extrise/devdust/internal/ui"
)

func (m Model) renderView() string {
	if m.phase == phaseDone && m.aborted {
		return ""
	}

	w := m.width
	if w < 40 {
		w = 40
	}

	var s strings.Builder
	s.WriteString(m.renderHeader(w))
	s.WriteString("\n")

	switch m.phase {
	case phaseDecide:
		s.WriteString(m.renderDecide(w))
	case phaseClean:
		s.WriteString(m.renderProgress(w))
	case phaseDone:
		s.WriteString(m.renderSummary(w))
	}

	s.WriteString("\n")
	s.WriteString(m.renderFooter())
	return s.String()
}

// ─── Header ──────────────────────────────────────────────────────────────────

func (m Model) renderHeader(w int) string {
	title := ui.TitleStyle().Render("  devdust " + ui.IconBullet + " Clean build artifacts")

	var total int64
	for _, e := range m.entries {
		total += e.Size
	}
	sub := lipgloss.NewStyle().Foreground(ui.ColorTextDim).
		Render(fmt.Sprintf("  %d projects  %s  %s reclaimable",
			len(m.entries), ui.IconPipe, ui.FormatSize(total)))

	inner := lipgloss.JoinVertical(lipgloss.Left, title, sub)

	return lipgloss.NewStyle().
		Border(lipgloss.RoundedBorder()).
		BorderForeground(ui.ColorPrimary).
		Width(w - 2).
		Render(inner)
}

// ─── Decision phase ──────────────────────────────────────────────────────────

func (m Model) renderDecide(w int) string {
	if m.index >= len(m.entries) {
		return ""
	}
	e := m.entries[m.index]

	dim := lipgloss.NewStyle().Foreground(ui.ColorTextDim)
	muted := lipgloss.NewStyle().Foreground(ui.ColorMuted)
	name := lipgloss.NewStyle().Foreground(ui.ColorText).Bold(true)
	size := lipgloss.NewStyle().Foreground(ui.ColorWarning).Bold(true)

	var s strings.Builder
	s.WriteString(muted.Render(fmt.Sprintf("  project %d/%d", m.index+1, len(m.entries))))
	s.WriteString("\n\n")
	s.WriteString(fmt.Sprintf("  %s %s\n", name.Render(e.Project.Name()),
		muted.Render("("+e.Project.Type()+")")))
	s.WriteString(fmt.Sprintf("  %s %s\n", dim.Render("Path:"), e.Project.Path))
	s.WriteString(fmt.Sprintf("  %s %s\n", dim.Render("Artifacts:"), size.Render(ui.FormatSize(e.Size))))
	if !e.Modified.IsZero() {
		s.WriteString(fmt.Sprintf("  %s %s\n", dim.Render("Modified:"),
			muted.Render(ui.FormatElapsed(time.Since(e.Modified)))))
	}
	for _, p := range e.Project.ArtifactPaths() {
		rel := p
		if r, err := filepath.Rel(e.Project.Path, p); err == nil {
			rel = r
		}
		s.WriteString(muted.Render(fmt.Sprintf("    %s %s", ui.IconFolder, rel)))
		s.WriteString("\n")
	}

	prompt := lipgloss.NewStyle().Foreground(ui.ColorPrimary).Bold(true).
		Render("  " + ui.IconPrompt + " Clean this project?")
	s.WriteString("\n")
	s.WriteString(prompt)

	return s.String()
}

// ─── Cleaning phase ──────────────────────────────────────────────────────────

func (m Model) renderProgress(w int) string {
	var s strings.Builder

	for _, d := range m.done {
		e := m.entries[d.index]
		mark := lipgloss.NewStyle().Foreground(ui.ColorSuccess).Render(ui.IconCheck)
		if len(d.res.Errors) > 0 {
			mark = lipgloss.NewStyle().Foreground(ui.ColorError).Render(ui.IconCross)
		}
		s.WriteString(fmt.Sprintf("  %s %s  %s\n", mark, e.Project.Name(),
			ui.FormatSize(d.res.Freed)))
	}

	if m.current >= 0 && m.current < len(m.entries) {
		verb := "Cleaning"
		if m.dryRun {
			verb = "Measuring"
		}
		s.WriteString(fmt.Sprintf("  %s %s %s…\n", m.spinner.View(), verb,
			m.entries[m.current].Project.Name()))
	}

	return s.String()
}

// ─── Summary ─────────────────────────────────────────────────────────────────

func (m Model) renderSummary(w int) string {
	var s strings.Builder

	for _, d := range m.done {
		e := m.entries[d.index]
		mark := lipgloss.NewStyle().Foreground(ui.ColorSuccess).Render(ui.IconCheck)
		if len(d.res.Errors) > 0 {
			mark = lipgloss.NewStyle().Foreground(ui.ColorError).Render(ui.IconCross)
		}
		s.WriteString(fmt.Sprintf("  %s %s  %s\n", mark, e.Project.Name(),
			ui.FormatSize(d.res.Freed)))
	}

	verb := "freed"
	if m.dryRun {
		verb = "would be freed"
	}
	s.WriteString("\n")
	s.WriteString(ui.TitleStyle().
		Render(fmt.Sprintf("  %d projects cleaned, %s %s", m.cleaned, ui.FormatSize(m.freed), verb)))
	s.WriteString("\n")

	for _, e := range m.errs {
		s.WriteString(lipgloss.NewStyle().Foreground(ui.ColorError).
			Render(fmt.Sprintf("  %s %s", ui.IconWarning, e.Error())))
		s.WriteString("\n")
	}

	return s.String()
}

// ─── Footer ──────────────────────────────────────────────────────────────────

func (m Model) renderFooter() string {
	var hints []string
	switch m.phase {
	case phaseDecide:
		hints = []string{"y yes", "n no", "a all remaining", "⌫ back", "q quit"}
	case phaseClean:
		hints = []string{"ctrl+c stop after current"}
	case phaseDone:
		hints = []string{"any key to exit"}
	}
	return ui.HintBarStyle().Render("  " + strings.Join(hints, " "+ui.IconPipe+" "))
}
