package cmd

import (
	"fmt"

	"github.com/bnema/memory-match-cli/internal/adapters/tui"
	"github.com/bnema/memory-match-cli/internal/ports"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/spf13/cobra"
)

func newPlayCmd(app *app) *cobra.Command {
	var seed uint64

	cmd := &cobra.Command{
		Use:   "play",
		Short: "Play an interactive game",
		RunE: func(cmd *cobra.Command, _ []string) error {
			best, err := app.results.Best(cmd.Context())
			if err != nil {
				return fmt.Errorf("load best result: %w", err)
			}

			scheduler := tui.NewScheduler()
			session := app.newSession(scheduler, ports.SystemClock{}, rngFromFlag(cmd, seed))

			return tui.Run(cmd.Context(), tui.Options{
				Session:       session,
				Scheduler:     scheduler,
				Best:          best,
				FrameInterval: app.config.Game.FrameInterval,
				Logger:        app.logger,
			}, tea.WithAltScreen())
		},
	}

	cmd.Flags().Uint64Var(&seed, "seed", 0, "Deal a reproducible deck")

	return cmd
}
