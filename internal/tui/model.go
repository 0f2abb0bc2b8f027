package tui

import (
	"fmt"
	"strings"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"

	"forestlog/internal/engine"
	"forestlog/internal/ui"
)

const (
	tabDashboard = iota
	tabForest
	tabArchive
	tabCount
)

var tabNames = [tabCount]string{"🌱 Dashboard", "🌳 My Forest", "📜 Archive"}

type boardModel struct {
	svc *engine.Service

	width  int
	height int

	tab      int
	selected int
}

func newBoardModel(svc *engine.Service) boardModel {
	return boardModel{svc: svc}
}

func (m boardModel) Init() tea.Cmd {
	return nil
}

func (m boardModel) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		m.width = msg.Width
		m.height = msg.Height
		return m, nil
	case tea.KeyMsg:
		switch msg.String() {
		case "ctrl+c", "q":
			return m, tea.Quit
		case "tab", "right", "l":
			m.tab = (m.tab + 1) % tabCount
			m.selected = 0
			return m, nil
		case "shift+tab", "left", "h":
			m.tab = (m.tab + tabCount - 1) % tabCount
			m.selected = 0
			return m, nil
		case "1":
			m.tab = tabDashboard
			return m, nil
		case "2":
			m.tab = tabForest
			return m, nil
		case "3":
			m.tab = tabArchive
			return m, nil
		case "up", "k":
			if m.tab == tabArchive && m.selected > 0 {
				m.selected--
			}
			return m, nil
		case "down", "j":
			if m.tab == tabArchive && m.selected < len(m.svc.Archive())-1 {
				m.selected++
			}
			return m, nil
		}
	}
	return m, nil
}

func (m boardModel) View() string {
	header := m.renderHeader()
	tabs := m.renderTabs()

	var body string
	switch m.tab {
	case tabForest:
		body = m.renderForest()
	case tabArchive:
		body = m.renderArchive()
	default:
		body = m.renderDashboard()
	}

	footer := ui.Muted.Render("tab/1-3: switch  j/k: scroll  q: quit")
	return header + "\n" + tabs + "\n" + body + "\n\n" + footer + "\n"
}

func (m boardModel) renderHeader() string {
	p := m.svc.Profile()
	level := m.svc.Level()
	floor := engine.PointsForLevel(level)
	next := engine.PointsForLevel(level + 1)
	bar := renderBar(p.TotalPoints-floor, next-floor, 24)
	return fmt.Sprintf("%s  %s  %s  %s %s",
		ui.Heading(ui.IconForest, "Forest Done Log"),
		ui.LabelValue("Points", p.TotalPoints),
		ui.LabelValue("Level", level),
		ui.LabelValue("Streak", fmt.Sprintf("%d days", p.Streak)),
		ui.Muted.Render(bar))
}

func (m boardModel) renderTabs() string {
	var out []string
	for i, name := range tabNames {
		if i == m.tab {
			out = append(out, ui.ActiveTab.Render(name))
		} else {
			out = append(out, ui.Tab.Render(name))
		}
	}
	return lipgloss.JoinHorizontal(lipgloss.Top, out...)
}

func (m boardModel) renderDashboard() string {
	var out []string

	out = append(out, ui.H2.Render(ui.IconChart+" Weekly Momentum"))
	series := m.svc.WeeklySeries()
	max := 0
	for _, dp := range series {
		if dp.Points > max {
			max = dp.Points
		}
	}
	if max == 0 {
		out = append(out, ui.Muted.Render("Log a task to start tracking your weekly momentum."))
	} else {
		for _, dp := range series {
			w := dp.Points * 28 / max
			out = append(out, fmt.Sprintf("%s %s %d",
				ui.Key.Render(dp.Date.ShortDayName()),
				ui.Bar.Render(strings.Repeat("█", w)),
				dp.Points))
		}
	}

	out = append(out, "")
	out = append(out, ui.H2.Render(ui.IconLeaf+" Today's Growth"))
	today := m.svc.TodayEntries()
	if len(today) == 0 {
		out = append(out, ui.Muted.Render("No growth recorded yet today."))
	} else {
		var trees []string
		for _, e := range today {
			trees = append(trees, e.Tree)
		}
		out = append(out, ui.Panel.Render(strings.Join(trees, " ")))
	}

	return strings.Join(out, "\n")
}

func (m boardModel) renderForest() string {
	p := m.svc.Profile()
	var out []string
	out = append(out, ui.H2.Render("Your Living Streak"))
	out = append(out, ui.Muted.Render(fmt.Sprintf("This ecosystem flourishes as long as you maintain your streak. Current: %d days.", p.Streak)))

	if p.Streak == 0 {
		out = append(out, ui.Warn.Render("Your forest is waiting for its first streak tree!"))
	} else {
		var trees []string
		for i := 1; i <= p.Streak; i++ {
			// Every 10th streak day is a milestone blossom.
			if i%10 == 0 {
				trees = append(trees, ui.IconBlossom)
			} else {
				trees = append(trees, ui.IconForest)
			}
		}
		out = append(out, ui.Panel.Render(strings.Join(trees, " ")))
	}

	if nextTier := engine.NextTierLevel(m.svc.Level()); nextTier > 0 {
		out = append(out, ui.Muted.Render(fmt.Sprintf("Keep leveling up! Next rare tree tier unlocks at level %d", nextTier)))
	}
	return strings.Join(out, "\n")
}

func (m boardModel) renderArchive() string {
	entries := m.svc.Archive()
	if len(entries) == 0 {
		return ui.Muted.Render("Your history is currently a blank page.")
	}

	visible := 10
	if m.height > 10 {
		visible = m.height - 8
	}
	start := 0
	if m.selected >= visible {
		start = m.selected - visible + 1
	}
	end := start + visible
	if end > len(entries) {
		end = len(entries)
	}

	var out []string
	for i := start; i < end; i++ {
		e := entries[i]
		cursor := "  "
		if i == m.selected {
			cursor = "> "
		}
		out = append(out, fmt.Sprintf("%s%s %s %s", cursor, e.Tree, ui.Key.Render(e.Task), ui.Points(e.Points)))
		out = append(out, "     "+ui.Muted.Render(fmt.Sprintf("%s, %s • %s", e.DayName, e.Date, e.Effort)))
	}
	if end < len(entries) {
		out = append(out, ui.Muted.Render(fmt.Sprintf("… %d more", len(entries)-end)))
	}
	return strings.Join(out, "\n")
}

func renderBar(value int, total int, width int) string {
	if total <= 0 {
		total = 1
	}
	if width <= 3 {
		width = 3
	}
	if value < 0 {
		value = 0
	}
	if value > total {
		value = total
	}
	filled := value * width / total
	return "[" + strings.Repeat("#", filled) + strings.Repeat("-", width-filled) + "]"
}
