package application

import (
	"context"
	"fmt"
	"log/slog"
	"math/rand/v2"
	"time"

	"github.com/bnema/memory-match-cli/internal/domain"
	"github.com/bnema/memory-match-cli/internal/ports"
	"github.com/google/uuid"
)

const DefaultMismatchDelay = 800 * time.Millisecond

type Phase int

const (
	PhaseIdle Phase = iota
	PhaseAwaitingFirstReveal
	PhaseAwaitingSecondReveal
	PhaseFinished
)

func (p Phase) String() string {
	switch p {
	case PhaseIdle:
		return "idle"
	case PhaseAwaitingFirstReveal:
		return "awaiting_first_reveal"
	case PhaseAwaitingSecondReveal:
		return "awaiting_second_reveal"
	case PhaseFinished:
		return "finished"
	default:
		return "unknown"
	}
}

type RevealResult int

const (
	RevealIgnored RevealResult = iota
	RevealPending
	RevealMatched
	RevealMismatched
	RevealFinished
)

func (r RevealResult) String() string {
	switch r {
	case RevealIgnored:
		return "ignored"
	case RevealPending:
		return "pending"
	case RevealMatched:
		return "matched"
	case RevealMismatched:
		return "mismatched"
	case RevealFinished:
		return "finished"
	default:
		return "unknown"
	}
}

// ResultRecorder is the part of ResultService a session needs.
type ResultRecorder interface {
	RecordIfBest(ctx context.Context, moves int, t domain.TimeSnapshot) (RecordOutcome, error)
}

type SessionOptions struct {
	Symbols       []domain.Symbol
	MismatchDelay time.Duration
	Rand          *rand.Rand
	Presenter     ports.Presenter
	Logger        *slog.Logger
}

type SessionSnapshot struct {
	SessionID uuid.UUID
	Phase     Phase
	Cards     []domain.Card
	Pending   *domain.CardID
	Moves     int
	Stars     int
	Matched   int
	Finished  bool
	Time      domain.TimeSnapshot
	Formatted string
}

// Session owns one player's game: the deck, reveal/compare sequencing, move
// and star tracking, and the stopwatch. It is not safe for concurrent use;
// every call, including scheduled actions, must come from one event loop.
type Session struct {
	symbols   []domain.Symbol
	delay     time.Duration
	rng       *rand.Rand
	results   ResultRecorder
	scheduler ports.Scheduler
	clock     ports.Clock
	presenter ports.Presenter
	logger    *slog.Logger
	timer     *Timer

	id         uuid.UUID
	generation uint64
	phase      Phase
	deck       domain.Deck
	pending    *domain.CardID
	hiding     bool
	cancelHide ports.Cancel
	moves      int
	stars      int
	matched    int
	started    bool
	completion *ports.Completion
}

func NewSession(results ResultRecorder, scheduler ports.Scheduler, clock ports.Clock, opts SessionOptions) *Session {
	if clock == nil {
		clock = ports.SystemClock{}
	}
	if opts.Symbols == nil {
		opts.Symbols = domain.DefaultSymbols
	}
	if opts.MismatchDelay <= 0 {
		opts.MismatchDelay = DefaultMismatchDelay
	}
	if opts.Rand == nil {
		opts.Rand = rand.New(rand.NewPCG(rand.Uint64(), rand.Uint64()))
	}
	if opts.Presenter == nil {
		opts.Presenter = ports.NopPresenter{}
	}
	if opts.Logger == nil {
		opts.Logger = slog.New(slog.DiscardHandler)
	}

	s := &Session{
		symbols:   opts.Symbols,
		delay:     opts.MismatchDelay,
		rng:       opts.Rand,
		results:   results,
		scheduler: scheduler,
		clock:     clock,
		presenter: opts.Presenter,
		logger:    opts.Logger,
		stars:     domain.MaxStars,
	}
	s.timer = NewTimer(clock, func(formatted string) {
		s.presenter.TimerChanged(formatted)
	})

	return s
}

func (s *Session) SetPresenter(presenter ports.Presenter) {
	if presenter == nil {
		presenter = ports.NopPresenter{}
	}
	s.presenter = presenter
}

// Deal starts a new session from any state. Deferred actions scheduled by the
// previous session become no-ops.
func (s *Session) Deal() error {
	deck, err := domain.BuildDeck(s.symbols, s.rng)
	if err != nil {
		return fmt.Errorf("build deck: %w", err)
	}

	if s.cancelHide != nil {
		s.cancelHide()
		s.cancelHide = nil
	}

	s.generation++
	s.id = uuid.New()
	s.deck = deck
	s.pending = nil
	s.hiding = false
	s.moves = 0
	s.stars = domain.MaxStars
	s.matched = 0
	s.started = false
	s.completion = nil
	s.phase = PhaseAwaitingFirstReveal

	s.timer.Stop()
	s.timer.Reset()

	s.logger.Debug("dealt new session", "session_id", s.id, "generation", s.generation)

	s.presenter.CardsChanged(s.Cards())
	s.presenter.MovesChanged(s.moves)
	s.presenter.StarsChanged(s.stars)
	s.presenter.TimerChanged(s.timer.Format())

	return nil
}

// Reveal turns a card face up. Cards that are not hidden, and any reveal
// while a mismatched pair is still showing, are ignored. The only error is a
// failure to persist the result of a finished session.
func (s *Session) Reveal(ctx context.Context, id domain.CardID) (RevealResult, error) {
	if s.phase != PhaseAwaitingFirstReveal && s.phase != PhaseAwaitingSecondReveal {
		return RevealIgnored, nil
	}
	if s.hiding || id < 0 || int(id) >= len(s.deck) {
		return RevealIgnored, nil
	}

	card := &s.deck[id]
	if card.State != domain.CardHidden {
		return RevealIgnored, nil
	}
	card.State = domain.CardRevealed

	if s.pending == nil {
		pending := id
		s.pending = &pending
		s.phase = PhaseAwaitingSecondReveal
		s.started = true
		s.timer.Start()
		s.presenter.CardsChanged(s.Cards())
		return RevealPending, nil
	}

	first := &s.deck[*s.pending]
	s.moves++
	s.presenter.MovesChanged(s.moves)
	s.drawStars()

	if first.Symbol == card.Symbol {
		first.State = domain.CardMatched
		card.State = domain.CardMatched
		s.matched += 2
		s.pending = nil
		s.phase = PhaseAwaitingFirstReveal
		s.presenter.CardsChanged(s.Cards())
		s.logger.Debug("pair matched", "session_id", s.id, "symbol", card.Symbol, "moves", s.moves)

		if s.matched == len(s.deck) {
			return RevealFinished, s.finish(ctx)
		}
		return RevealMatched, nil
	}

	s.hiding = true
	generation := s.generation
	a, b := first.ID, card.ID
	s.cancelHide = s.scheduler.AfterFunc(s.delay, func() {
		s.hideMismatch(generation, a, b)
	})
	s.presenter.CardsChanged(s.Cards())

	return RevealMismatched, nil
}

func (s *Session) hideMismatch(generation uint64, a, b domain.CardID) {
	if generation != s.generation {
		s.logger.Debug("dropping stale hide action", "generation", generation, "current", s.generation)
		return
	}

	for _, id := range []domain.CardID{a, b} {
		if s.deck[id].State == domain.CardRevealed {
			s.deck[id].State = domain.CardHidden
		}
	}
	s.pending = nil
	s.hiding = false
	s.cancelHide = nil
	s.phase = PhaseAwaitingFirstReveal

	s.presenter.CardsChanged(s.Cards())
}

func (s *Session) drawStars() {
	stars := domain.StarsFor(s.moves, s.stars)
	if stars == s.stars {
		return
	}

	s.stars = stars
	s.presenter.StarsChanged(s.stars)
}

func (s *Session) finish(ctx context.Context) error {
	s.phase = PhaseFinished
	s.timer.Tick(s.clock.Now())
	s.timer.Stop()

	completion := ports.Completion{
		SessionID: s.id,
		Moves:     s.moves,
		Stars:     s.stars,
		Time:      s.timer.Snapshot(),
	}
	s.completion = &completion

	s.logger.Info("session finished", "session_id", s.id, "moves", s.moves, "stars", s.stars, "time", completion.Formatted())

	if s.results == nil {
		s.presenter.Completed(completion)
		return nil
	}

	outcome, err := s.results.RecordIfBest(ctx, s.moves, completion.Time)
	completion.NewRecord = outcome.NewRecord
	completion.Previous = outcome.Previous
	s.presenter.Completed(completion)
	if err != nil {
		return fmt.Errorf("record result: %w", err)
	}

	return nil
}

// Tick forwards a frame to the stopwatch.
func (s *Session) Tick(now time.Time) {
	s.timer.Tick(now)
}

func (s *Session) TimerRunning() bool {
	return s.timer.Running()
}

// ToggleTimer pauses or resumes the stopwatch of a session in progress. It
// returns whether the stopwatch is running afterwards.
func (s *Session) ToggleTimer() bool {
	if s.timer.Running() {
		s.timer.Stop()
		return false
	}
	if s.started && (s.phase == PhaseAwaitingFirstReveal || s.phase == PhaseAwaitingSecondReveal) {
		s.timer.Start()
	}
	return s.timer.Running()
}

func (s *Session) Cards() []domain.Card {
	return s.deck.Clone()
}

func (s *Session) Completion() *ports.Completion {
	if s.completion == nil {
		return nil
	}
	completion := *s.completion
	return &completion
}

func (s *Session) Snapshot() SessionSnapshot {
	var pending *domain.CardID
	if s.pending != nil {
		id := *s.pending
		pending = &id
	}

	return SessionSnapshot{
		SessionID: s.id,
		Phase:     s.phase,
		Cards:     s.Cards(),
		Pending:   pending,
		Moves:     s.moves,
		Stars:     s.stars,
		Matched:   s.matched,
		Finished:  s.phase == PhaseFinished,
		Time:      s.timer.Snapshot(),
		Formatted: s.timer.Format(),
	}
}
