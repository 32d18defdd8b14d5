package tui

import (
	"fmt"
	"strings"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"

	"github.com/JulioAlmeida83/atilog/internal/summary"
)

// SummaryModel renders the per-group record counts as a bar chart
type SummaryModel struct {
	groups       []summary.Group
	totalMinutes int
	totalRecords int
	width        int
	height       int
}

// NewSummaryModel creates the summary chart model
func NewSummaryModel(groups []summary.Group, totalMinutes, totalRecords int) SummaryModel {
	return SummaryModel{
		groups:       groups,
		totalMinutes: totalMinutes,
		totalRecords: totalRecords,
	}
}

// Init initializes the model
func (m SummaryModel) Init() tea.Cmd {
	return nil
}

// Update handles messages
func (m SummaryModel) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		m.width = msg.Width
		m.height = msg.Height
		return m, nil
	case tea.KeyMsg:
		switch msg.String() {
		case "q", "esc", "ctrl+c", "enter":
			return m, tea.Quit
		}
	}
	return m, nil
}

// View renders the chart
func (m SummaryModel) View() string {
	var b strings.Builder

	titleStyle := lipgloss.NewStyle().
		Bold(true).
		Foreground(lipgloss.Color(ColorAccentBright)).
		MarginBottom(1)
	b.WriteString(titleStyle.Render("Activity summary"))
	b.WriteString("\n\n")

	if len(m.groups) == 0 {
		b.WriteString("No records yet.\n")
	} else {
		b.WriteString(RenderChart(m.groups, m.chartWidth()))
	}

	b.WriteString("\n")
	footerStyle := lipgloss.NewStyle().Foreground(lipgloss.Color(ColorSecondaryText))
	b.WriteString(footerStyle.Render(fmt.Sprintf(
		"%d records, estimated %s h total",
		m.totalRecords, summary.FormatHours(m.totalMinutes),
	)))
	b.WriteString("\n\n")

	helpStyle := lipgloss.NewStyle().
		Foreground(lipgloss.Color(ColorHelpText)).
		Italic(true)
	b.WriteString(helpStyle.Render("q/Esc: Close"))

	boxStyle := lipgloss.NewStyle().
		Border(lipgloss.RoundedBorder()).
		BorderForeground(lipgloss.Color(ColorBorder)).
		Padding(1)
	return boxStyle.Render(b.String())
}

// chartWidth returns the bar width budget for the current terminal
func (m SummaryModel) chartWidth() int {
	width := m.width - 40
	if width < 10 {
		width = 10
	}
	if width > 40 {
		width = 40
	}
	return width
}

// RenderChart draws one horizontal bar per group, scaled to the largest
// count. Shared with the summary command's plain-text mode.
func RenderChart(groups []summary.Group, barWidth int) string {
	maxCount := 0
	labelWidth := 0
	for _, g := range groups {
		if g.Count > maxCount {
			maxCount = g.Count
		}
		if len(g.Key) > labelWidth {
			labelWidth = len(g.Key)
		}
	}
	if maxCount == 0 {
		return ""
	}
	if labelWidth > 24 {
		labelWidth = 24
	}

	barStyle := lipgloss.NewStyle().Foreground(lipgloss.Color(ColorAccentMain))

	var b strings.Builder
	for _, g := range groups {
		bar := (g.Count * barWidth) / maxCount
		if bar < 1 {
			bar = 1
		}
		label := g.Key
		if len(label) > labelWidth {
			label = label[:labelWidth-3] + "..."
		}
		b.WriteString(fmt.Sprintf("%-*s %s %d (%s h)\n",
			labelWidth, label,
			barStyle.Render(strings.Repeat("█", bar)),
			g.Count,
			summary.FormatHours(g.Minutes),
		))
	}
	return b.String()
}
