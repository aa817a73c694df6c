package cmd

import (
	"fmt"
	"log/slog"
	"math/rand/v2"
	"os"
	"time"

	"github.com/bnema/memory-match-cli/internal/adapters/render/board"
	chainstore "github.com/bnema/memory-match-cli/internal/adapters/store/chain"
	"github.com/bnema/memory-match-cli/internal/application"
	"github.com/bnema/memory-match-cli/internal/config"
	"github.com/bnema/memory-match-cli/internal/logging"
	"github.com/bnema/memory-match-cli/internal/ports"
	"github.com/spf13/cobra"
	"github.com/spf13/viper"
)

type app struct {
	config        *config.Config
	logger        *slog.Logger
	results       *application.ResultService
	boardRenderer func(application.SessionSnapshot, board.RenderOptions) (string, error)
	now           func() time.Time
}

func wireApp() (*app, error) {
	v := viper.New()
	cfg, err := config.Load(v)
	if err != nil {
		return nil, fmt.Errorf("load config: %w", err)
	}

	logger := logging.New(os.Stderr, cfg.Log.Level)

	store, err := chainstore.NewTOMLFirstWithLegacyFallback(v, cfg.Store.LegacyDir)
	if err != nil {
		return nil, fmt.Errorf("wire results store chain: %w", err)
	}

	return &app{
		config:        cfg,
		logger:        logger,
		results:       application.NewResultService(store, logger),
		boardRenderer: board.Render,
		now:           time.Now,
	}, nil
}

func (a *app) newSession(scheduler ports.Scheduler, clock ports.Clock, rng *rand.Rand) *application.Session {
	return application.NewSession(a.results, scheduler, clock, application.SessionOptions{
		Symbols:       a.config.Game.DomainSymbols(),
		MismatchDelay: a.config.Game.MismatchDelay,
		Rand:          rng,
		Logger:        a.logger,
	})
}

func seededRand(seed uint64) *rand.Rand {
	return rand.New(rand.NewPCG(seed, seed))
}

// rngFromFlag returns nil, meaning a random deal, unless --seed was given.
func rngFromFlag(cmd *cobra.Command, seed uint64) *rand.Rand {
	if !cmd.Flags().Changed("seed") {
		return nil
	}
	return seededRand(seed)
}
