package ports

import (
	"github.com/bnema/memory-match-cli/internal/domain"
	"github.com/google/uuid"
)

type Completion struct {
	SessionID uuid.UUID
	Moves     int
	Stars     int
	Time      domain.TimeSnapshot
	NewRecord bool
	Previous  *domain.BestResult
}

func (c Completion) Formatted() string {
	return c.Time.String()
}

// Presenter receives everything needed to re-render after a change.
type Presenter interface {
	CardsChanged(cards []domain.Card)
	MovesChanged(moves int)
	StarsChanged(stars int)
	TimerChanged(formatted string)
	Completed(completion Completion)
}

// NopPresenter discards every update.
type NopPresenter struct{}

func (NopPresenter) CardsChanged([]domain.Card) {}
func (NopPresenter) MovesChanged(int)           {}
func (NopPresenter) StarsChanged(int)           {}
func (NopPresenter) TimerChanged(string)        {}
func (NopPresenter) Completed(Completion)       {}
