// Package tui implements the interactive clean flow: step through each
// detected project with y/n/a/q, then delete the accepted ones and show
// a summary.
package tui

import (
	"github.com/charmbracelet/bubbles/spinner"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"

	"github.com/extrise/devdust/internal/clean"
	"github.com/extrise/devdust/internal/output"
	"github.com/extrise/devdust/internal/scan"
	"github.com/extrise/devdust/internal/ui"
)

type phase int

const (
	phaseDecide phase = iota
	phaseClean
	phaseDone
)

// ─── Messages ────────────────────────────────────────────────────────────────

type cleanResultMsg struct {
	index int
	res   clean.Result
}

func cleanProject(index int, p *scan.Project, opts *scan.Options, dryRun bool) tea.Cmd {
	return func() tea.Msg {
		return cleanResultMsg{index: index, res: clean.Project(p, opts, dryRun)}
	}
}

// ─── Model ───────────────────────────────────────────────────────────────────

// Model is the bubbletea model for the interactive clean session.
type Model struct {
	entries []output.Entry
	opts    *scan.Options
	dryRun  bool

	phase   phase
	index   int    // project awaiting a decision
	marked  []bool // accepted for cleaning
	queue   []int  // indexes left to clean
	current int    // index being cleaned, -1 when idle

	spinner spinner.Model
	width   int
	height  int

	freed   int64
	cleaned int
	errs    []clean.PathError
	aborted bool
	done    []doneEntry
}

type doneEntry struct {
	index int
	res   clean.Result
}

// NewModel creates the interactive session over the scanned entries.
func NewModel(entries []output.Entry, opts *scan.Options, dryRun bool) Model {
	sp := spinner.New()
	sp.Spinner = spinner.Dot
	sp.Style = lipgloss.NewStyle().Foreground(ui.ColorPrimary)

	return Model{
		entries: entries,
		opts:    opts,
		dryRun:  dryRun,
		marked:  make([]bool, len(entries)),
		current: -1,
		spinner: sp,
		width:   80,
		height:  24,
	}
}

// Freed returns the bytes reclaimed (or, for dry runs, measured).
func (m Model) Freed() int64 { return m.freed }

// Cleaned returns how many projects were cleaned.
func (m Model) Cleaned() int { return m.cleaned }

// Errors returns every per-directory deletion failure.
func (m Model) Errors() []clean.PathError { return m.errs }

// Aborted reports whether the user quit before cleaning.
func (m Model) Aborted() bool { return m.aborted }

func (m Model) Init() tea.Cmd {
	return nil
}

func (m Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {

	case tea.WindowSizeMsg:
		m.width = msg.Width
		m.height = msg.Height
		return m, nil

	case tea.KeyMsg:
		switch m.phase {
		case phaseDecide:
			return m.updateDecide(msg)
		case phaseClean:
			if msg.String() == "ctrl+c" {
				// Let the in-flight delete finish; drop the rest.
				m.queue = nil
			}
			return m, nil
		case phaseDone:
			return m, tea.Quit
		}

	case spinner.TickMsg:
		if m.phase == phaseClean {
			var cmd tea.Cmd
			m.spinner, cmd = m.spinner.Update(msg)
			return m, cmd
		}
		return m, nil

	case cleanResultMsg:
		m.done = append(m.done, doneEntry{index: msg.index, res: msg.res})
		m.freed += msg.res.Freed
		m.errs = append(m.errs, msg.res.Errors...)
		if len(msg.res.Errors) == 0 || msg.res.Partial() {
			m.cleaned++
		}
		return m.cleanNext()
	}

	return m, nil
}

func (m Model) updateDecide(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch msg.String() {
	case "y", "Y", "enter":
		m.marked[m.index] = true
		return m.advance()

	case "n", "N", "s":
		m.marked[m.index] = false
		return m.advance()

	case "a", "A":
		for i := m.index; i < len(m.entries); i++ {
			m.marked[i] = true
		}
		m.index = len(m.entries)
		return m.startCleaning()

	case "backspace", "left":
		if m.index > 0 {
			m.index--
		}
		return m, nil

	case "q", "Q", "esc", "ctrl+c":
		m.aborted = true
		m.phase = phaseDone
		return m, tea.Quit
	}

	return m, nil
}

// advance moves to the next undecided project, or starts cleaning when
// every project has an answer.
func (m Model) advance() (tea.Model, tea.Cmd) {
	m.index++
	if m.index < len(m.entries) {
		return m, nil
	}
	return m.startCleaning()
}

func (m Model) startCleaning() (tea.Model, tea.Cmd) {
	for i, marked := range m.marked {
		if marked {
			m.queue = append(m.queue, i)
		}
	}
	if len(m.queue) == 0 {
		m.phase = phaseDone
		return m, nil
	}

	m.phase = phaseClean
	model, cmd := m.cleanNext()
	return model, tea.Batch(m.spinner.Tick, cmd)
}

// cleanNext pops the queue and starts deleting that project. Deletes
// run one at a time so the view can attribute progress.
func (m Model) cleanNext() (Model, tea.Cmd) {
	if len(m.queue) == 0 {
		m.current = -1
		m.phase = phaseDone
		return m, nil
	}

	m.current = m.queue[0]
	m.queue = m.queue[1:]
	e := m.entries[m.current]
	return m, cleanProject(m.current, &e.Project, m.opts, m.dryRun)
}

// View delegates to view.go.
func (m Model) View() string {
	return m.renderView()
}
