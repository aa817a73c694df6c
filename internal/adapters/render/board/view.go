package board

import (
	"fmt"
	"strings"

	"github.com/bnema/memory-match-cli/internal/application"
	"github.com/bnema/memory-match-cli/internal/domain"
	"github.com/bnema/memory-match-cli/internal/ports"
	"github.com/charmbracelet/lipgloss"
)

const (
	Columns   = 4
	cellWidth = 13
)

type RenderOptions struct {
	// Cursor is the highlighted card; negative hides it.
	Cursor     int
	Paused     bool
	Best       *domain.BestResult
	Completion *ports.Completion
}

// View renders the board without running a program, for callers that already
// own one.
func View(snapshot application.SessionSnapshot, opts RenderOptions) string {
	return renderView(snapshot, opts, newStyles())
}

func renderView(snapshot application.SessionSnapshot, opts RenderOptions, s styles) string {
	lines := []string{
		s.title.Render("Memory Match"),
		statusLine(snapshot, opts, s),
	}

	if len(snapshot.Cards) == 0 {
		lines = append(lines, s.empty.Render("No cards dealt."))
		return lipgloss.JoinVertical(lipgloss.Left, lines...)
	}

	lines = append(lines, s.section.Render(renderGrid(snapshot.Cards, opts.Cursor, s)))

	switch {
	case opts.Completion != nil:
		lines = append(lines, s.section.Render(renderSummary(*opts.Completion, s)))
	case opts.Best != nil:
		lines = append(lines, s.detail.Render(bestLine(*opts.Best)))
	}

	return lipgloss.JoinVertical(lipgloss.Left, lines...)
}

func statusLine(snapshot application.SessionSnapshot, opts RenderOptions, s styles) string {
	parts := []string{
		s.header.Render(fmt.Sprintf("moves: %d", snapshot.Moves)),
		s.header.Render("stars:") + " " + renderStars(snapshot.Stars, s),
		s.header.Render("time:") + " " + s.timer.Render(snapshot.Formatted),
	}
	if opts.Paused {
		parts = append(parts, s.paused.Render("[paused]"))
	}

	return strings.Join(parts, "  ")
}

func renderGrid(cards []domain.Card, cursor int, s styles) string {
	rows := make([]string, 0, (len(cards)+Columns-1)/Columns)
	for start := 0; start < len(cards); start += Columns {
		end := min(start+Columns, len(cards))
		cells := make([]string, 0, Columns)
		for i := start; i < end; i++ {
			cells = append(cells, renderCell(cards[i], i == cursor, s))
		}
		rows = append(rows, lipgloss.JoinHorizontal(lipgloss.Top, cells...))
	}

	return lipgloss.JoinVertical(lipgloss.Left, rows...)
}

func renderCell(card domain.Card, selected bool, s styles) string {
	var face lipgloss.Style
	label := "?"
	switch card.State {
	case domain.CardRevealed:
		face = s.revealed
		label = string(card.Symbol)
	case domain.CardMatched:
		face = s.matched
		label = string(card.Symbol)
	default:
		face = s.hidden
	}

	borderColor := lipgloss.Color("238")
	if selected {
		borderColor = s.cursor
	}

	return face.Border(s.cellBorder).BorderForeground(borderColor).Render(label)
}

func renderStars(stars int, s styles) string {
	on := max(0, min(stars, domain.MaxStars))
	return s.starOn.Render(strings.Repeat("★", on)) + s.starOff.Render(strings.Repeat("☆", domain.MaxStars-on))
}

func renderSummary(completion ports.Completion, s styles) string {
	lines := []string{
		s.summary.Render(fmt.Sprintf("All pairs found in %d moves", completion.Moves)),
		s.detail.Render(fmt.Sprintf("rating: %s  time: %s", StarsText(completion.Stars), completion.Formatted())),
	}

	switch {
	case completion.NewRecord:
		lines = append(lines, s.record.Render("New best result!"))
	case completion.Previous != nil:
		lines = append(lines, s.detail.Render(bestLine(*completion.Previous)))
	}

	return lipgloss.JoinVertical(lipgloss.Left, lines...)
}

func bestLine(best domain.BestResult) string {
	return fmt.Sprintf("best: %d moves in %s", best.Moves, best.Time.String())
}

// StarsText renders a rating as filled and empty stars without styling.
func StarsText(stars int) string {
	on := max(0, min(stars, domain.MaxStars))
	return strings.Repeat("★", on) + strings.Repeat("☆", domain.MaxStars-on)
}
