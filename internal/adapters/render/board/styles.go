package board

import "github.com/charmbracelet/lipgloss"

type styles struct {
	title      lipgloss.Style
	header     lipgloss.Style
	hidden     lipgloss.Style
	revealed   lipgloss.Style
	matched    lipgloss.Style
	cursor     lipgloss.Color
	starOn     lipgloss.Style
	starOff    lipgloss.Style
	timer      lipgloss.Style
	paused     lipgloss.Style
	section    lipgloss.Style
	summary    lipgloss.Style
	record     lipgloss.Style
	detail     lipgloss.Style
	empty      lipgloss.Style
	cellBorder lipgloss.Border
}

func newStyles() styles {
	cell := lipgloss.NewStyle().Width(cellWidth).Align(lipgloss.Center)

	return styles{
		title:      lipgloss.NewStyle().Bold(true),
		header:     lipgloss.NewStyle().Foreground(lipgloss.Color("241")),
		hidden:     cell.Foreground(lipgloss.Color("238")),
		revealed:   cell.Bold(true).Foreground(lipgloss.Color("39")),
		matched:    cell.Foreground(lipgloss.Color("78")),
		cursor:     lipgloss.Color("212"),
		starOn:     lipgloss.NewStyle().Foreground(lipgloss.Color("220")),
		starOff:    lipgloss.NewStyle().Foreground(lipgloss.Color("238")),
		timer:      lipgloss.NewStyle().Foreground(lipgloss.Color("252")),
		paused:     lipgloss.NewStyle().Bold(true).Foreground(lipgloss.Color("203")),
		section:    lipgloss.NewStyle().MarginTop(1),
		summary:    lipgloss.NewStyle().Bold(true).Foreground(lipgloss.Color("78")),
		record:     lipgloss.NewStyle().Bold(true).Foreground(lipgloss.Color("220")),
		detail:     lipgloss.NewStyle().Foreground(lipgloss.Color("250")),
		empty:      lipgloss.NewStyle().Faint(true),
		cellBorder: lipgloss.RoundedBorder(),
	}
}
