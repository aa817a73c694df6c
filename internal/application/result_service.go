package application

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"strconv"
	"strings"

	"github.com/bnema/memory-match-cli/internal/domain"
	"github.com/bnema/memory-match-cli/internal/ports"
)

const (
	BestMovesKey = "best_moves"
	BestTimeKey  = "best_time"
)

type RecordOutcome struct {
	NewRecord bool
	Previous  *domain.BestResult
}

type ResultService struct {
	store  ports.KeyValueStore
	logger *slog.Logger
}

func NewResultService(store ports.KeyValueStore, logger *slog.Logger) *ResultService {
	if logger == nil {
		logger = slog.New(slog.DiscardHandler)
	}

	return &ResultService{store: store, logger: logger}
}

// Best returns the persisted best result, or nil when none is stored.
func (s *ResultService) Best(ctx context.Context) (*domain.BestResult, error) {
	rawMoves, err := s.store.Get(ctx, BestMovesKey)
	if err != nil {
		if errors.Is(err, domain.ErrKeyNotFound) {
			return nil, nil
		}
		return nil, fmt.Errorf("get best moves: %w", err)
	}

	moves, err := strconv.Atoi(strings.TrimSpace(rawMoves))
	if err != nil || moves < 0 {
		s.logger.Warn("ignoring unreadable best moves", "value", rawMoves)
		return nil, nil
	}

	best := &domain.BestResult{Moves: moves}

	rawTime, err := s.store.Get(ctx, BestTimeKey)
	if err != nil {
		if errors.Is(err, domain.ErrKeyNotFound) {
			return best, nil
		}
		return nil, fmt.Errorf("get best time: %w", err)
	}

	snapshot, err := domain.ParseTimeSnapshot(rawTime)
	if err != nil {
		s.logger.Warn("ignoring unreadable best time", "value", rawTime, "error", err)
		return best, nil
	}
	best.Time = snapshot

	return best, nil
}

// RecordIfBest stores moves and t when they improve on the persisted best.
// Moves and time are always written together.
func (s *ResultService) RecordIfBest(ctx context.Context, moves int, t domain.TimeSnapshot) (RecordOutcome, error) {
	previous, err := s.Best(ctx)
	if err != nil {
		return RecordOutcome{}, err
	}

	outcome := RecordOutcome{Previous: previous}
	if !previous.ImprovedBy(moves, t) {
		return outcome, nil
	}

	if err := s.store.Set(ctx, BestMovesKey, strconv.Itoa(moves)); err != nil {
		return outcome, fmt.Errorf("save best moves: %w", err)
	}

	if err := s.store.Set(ctx, BestTimeKey, t.Encode()); err != nil {
		var rollbackErr error
		if previous == nil {
			rollbackErr = s.store.Delete(ctx, BestMovesKey)
		} else {
			rollbackErr = s.store.Set(ctx, BestMovesKey, strconv.Itoa(previous.Moves))
		}
		if rollbackErr != nil {
			return outcome, fmt.Errorf("save best time and rollback best moves: %w", errors.Join(err, rollbackErr))
		}
		return outcome, fmt.Errorf("save best time: %w", err)
	}

	s.logger.Debug("new best result", "moves", moves, "time", t.String())
	outcome.NewRecord = true
	return outcome, nil
}

func (s *ResultService) Clear(ctx context.Context) error {
	var errs []error
	for _, key := range []string{BestMovesKey, BestTimeKey} {
		if err := s.store.Delete(ctx, key); err != nil {
			errs = append(errs, fmt.Errorf("delete %s: %w", key, err))
		}
	}

	return errors.Join(errs...)
}
