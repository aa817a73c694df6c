package board

import (
	"testing"

	"github.com/bnema/memory-match-cli/internal/application"
	"github.com/bnema/memory-match-cli/internal/domain"
	"github.com/bnema/memory-match-cli/internal/ports"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func sampleSnapshot() application.SessionSnapshot {
	cards := make([]domain.Card, 0, domain.DeckSize)
	for i, symbol := range append(append([]domain.Symbol{}, domain.DefaultSymbols...), domain.DefaultSymbols...) {
		cards = append(cards, domain.Card{ID: domain.CardID(i), Symbol: symbol})
	}
	cards[0].State = domain.CardRevealed
	cards[1].State = domain.CardMatched
	cards[9].State = domain.CardMatched

	return application.SessionSnapshot{
		Phase:     application.PhaseAwaitingSecondReveal,
		Cards:     cards,
		Moves:     13,
		Stars:     2,
		Matched:   2,
		Formatted: "00:12:34",
	}
}

func TestRenderShowsFaceUpCardsOnly(t *testing.T) {
	output, err := Render(sampleSnapshot(), RenderOptions{Cursor: -1})

	require.NoError(t, err)
	assert.Contains(t, output, "Memory Match")
	assert.Contains(t, output, "moves: 13")
	assert.Contains(t, output, "★★☆")
	assert.Contains(t, output, "00:12:34")
	assert.Contains(t, output, "diamond")
	assert.Contains(t, output, "paper-plane")
	assert.Contains(t, output, "?")
	assert.NotContains(t, output, "anchor")
	assert.NotContains(t, output, "[paused]")
}

func TestRenderShowsPausedMarker(t *testing.T) {
	output, err := Render(sampleSnapshot(), RenderOptions{Cursor: 3, Paused: true})

	require.NoError(t, err)
	assert.Contains(t, output, "[paused]")
}

func TestRenderShowsBestWhenPlaying(t *testing.T) {
	output, err := Render(sampleSnapshot(), RenderOptions{
		Cursor: -1,
		Best:   &domain.BestResult{Moves: 11, Time: domain.TimeSnapshot{Seconds: 45, Hundredths: 2}},
	})

	require.NoError(t, err)
	assert.Contains(t, output, "best: 11 moves in 00:45:02")
}

func TestRenderSummaryForNewRecord(t *testing.T) {
	snapshot := sampleSnapshot()
	output, err := Render(snapshot, RenderOptions{
		Cursor: -1,
		Completion: &ports.Completion{
			Moves:     9,
			Stars:     3,
			Time:      domain.TimeSnapshot{Seconds: 31, Hundredths: 7},
			NewRecord: true,
		},
	})

	require.NoError(t, err)
	assert.Contains(t, output, "All pairs found in 9 moves")
	assert.Contains(t, output, "rating: ★★★  time: 00:31:07")
	assert.Contains(t, output, "New best result!")
}

func TestRenderSummaryShowsPreviousBest(t *testing.T) {
	output, err := Render(sampleSnapshot(), RenderOptions{
		Cursor: -1,
		Completion: &ports.Completion{
			Moves:    20,
			Stars:    1,
			Previous: &domain.BestResult{Moves: 10, Time: domain.TimeSnapshot{Minutes: 1}},
		},
	})

	require.NoError(t, err)
	assert.Contains(t, output, "best: 10 moves in 01:00:00")
	assert.NotContains(t, output, "New best result!")
}

func TestRenderEmptyBoard(t *testing.T) {
	output, err := Render(application.SessionSnapshot{Formatted: "00:00:00"}, RenderOptions{Cursor: -1})

	require.NoError(t, err)
	assert.Contains(t, output, "No cards dealt.")
}

func TestStarsTextClamps(t *testing.T) {
	assert.Equal(t, "★★★", StarsText(3))
	assert.Equal(t, "★☆☆", StarsText(1))
	assert.Equal(t, "☆☆☆", StarsText(-2))
	assert.Equal(t, "★★★", StarsText(7))
}
