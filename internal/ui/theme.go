package ui

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/lipgloss"
)

// Forest Log theme (CLI + TUI).
// Kept intentionally small: reusable styles and a few emojis.

const (
	IconForest  = "🌲"
	IconSeed    = "🌱"
	IconLeaf    = "🍃"
	IconChart   = "📊"
	IconScroll  = "📜"
	IconSparkle = "✨"
	IconFlame   = "🔥"
	IconWarn    = "⚠️"
	IconError   = "🧨"
	IconBlossom = "🌸"
)

var (
	cGreen = lipgloss.Color("107") // moss green
	cDeep  = lipgloss.Color("65")  // deep forest
	cGold  = lipgloss.Color("220") // gold
	cWarn  = lipgloss.Color("214") // orange
	cBad   = lipgloss.Color("196") // red
	cMuted = lipgloss.Color("244") // gray
)

var (
	Title = lipgloss.NewStyle().Bold(true).Foreground(cGreen)
	H2    = lipgloss.NewStyle().Bold(true).Foreground(cDeep)
	Muted = lipgloss.NewStyle().Foreground(cMuted)
	Key   = lipgloss.NewStyle().Bold(true).Foreground(cDeep)
	Good  = lipgloss.NewStyle().Bold(true).Foreground(cGreen)
	Warn  = lipgloss.NewStyle().Bold(true).Foreground(cWarn)
	Bad   = lipgloss.NewStyle().Bold(true).Foreground(cBad)
	Gold  = lipgloss.NewStyle().Bold(true).Foreground(cGold)

	Panel      = lipgloss.NewStyle().BorderStyle(lipgloss.RoundedBorder()).BorderForeground(cDeep).Padding(0, 1)
	ActiveTab  = lipgloss.NewStyle().Bold(true).Foreground(cGold).Background(cDeep).Padding(0, 1)
	Tab        = lipgloss.NewStyle().Foreground(cMuted).Padding(0, 1)
	Bar        = lipgloss.NewStyle().Foreground(cGreen)
	BadgeLevel = lipgloss.NewStyle().Bold(true).Foreground(cGold).Render("LEVEL UP")
)

func Heading(icon string, title string) string {
	icon = strings.TrimSpace(icon)
	if icon != "" {
		icon += " "
	}
	return Title.Render(icon + title)
}

func LabelValue(label string, value any) string {
	return fmt.Sprintf("%s %v", Key.Render(label+":"), value)
}

// Points renders a point amount the way the archive shows rewards.
func Points(n int) string {
	return Gold.Render(fmt.Sprintf("+%d", n))
}
