package ui

import "github.com/charmbracelet/lipgloss"

// ─── Palette ─────────────────────────────────────────────────────────────────

var (
	ColorPrimary = lipgloss.AdaptiveColor{Light: "#0d9488", Dark: "#2dd4bf"}
	ColorText    = lipgloss.AdaptiveColor{Light: "#1f2937", Dark: "#e5e7eb"}
	ColorTextDim = lipgloss.AdaptiveColor{Light: "#4b5563", Dark: "#9ca3af"}
	ColorMuted   = lipgloss.AdaptiveColor{Light: "#9ca3af", Dark: "#6b7280"}
	ColorWarning = lipgloss.AdaptiveColor{Light: "#ca8a04", Dark: "#facc15"}
	ColorError   = lipgloss.AdaptiveColor{Light: "#dc2626", Dark: "#f87171"}
	ColorSuccess = lipgloss.AdaptiveColor{Light: "#16a34a", Dark: "#4ade80"}
)

// ─── Icons ───────────────────────────────────────────────────────────────────

const (
	IconBullet  = "•"
	IconFolder  = "▸"
	IconBlock   = "█"
	IconPipe    = "│"
	IconCheck   = "✓"
	IconCross   = "✗"
	IconWarning = "!"
	IconPrompt  = "?"
)

// ─── Shared styles ───────────────────────────────────────────────────────────

// TitleStyle renders section headers in the pretty report and TUI.
func TitleStyle() lipgloss.Style {
	return lipgloss.NewStyle().Bold(true).Foreground(ColorPrimary)
}

// HintBarStyle renders the keybinding hint bar at the bottom of the TUI.
func HintBarStyle() lipgloss.Style {
	return lipgloss.NewStyle().Foreground(ColorMuted)
}
