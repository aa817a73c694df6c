package cmd

import (
	"encoding/json"
	"fmt"

	"github.com/spf13/cobra"
)

type bestOutput struct {
	Moves int    `json:"moves"`
	Time  string `json:"time"`
}

func newBestCmd(app *app) *cobra.Command {
	var asJSON bool

	cmd := &cobra.Command{
		Use:   "best",
		Short: "Show the best result",
		RunE: func(cmd *cobra.Command, _ []string) error {
			best, err := app.results.Best(cmd.Context())
			if err != nil {
				return fmt.Errorf("load best result: %w", err)
			}

			if asJSON {
				var out *bestOutput
				if best != nil {
					out = &bestOutput{Moves: best.Moves, Time: best.Time.String()}
				}
				enc := json.NewEncoder(cmd.OutOrStdout())
				enc.SetIndent("", "  ")
				return enc.Encode(out)
			}

			if best == nil {
				_, err = fmt.Fprintln(cmd.OutOrStdout(), "No best result yet.")
				return err
			}

			_, err = fmt.Fprintf(cmd.OutOrStdout(), "best: %d moves in %s\n", best.Moves, best.Time)
			return err
		},
	}

	cmd.Flags().BoolVar(&asJSON, "json", false, "Print as JSON")
	cmd.AddCommand(newBestResetCmd(app))

	return cmd
}

func newBestResetCmd(app *app) *cobra.Command {
	return &cobra.Command{
		Use:   "reset",
		Short: "Forget the best result",
		RunE: func(cmd *cobra.Command, _ []string) error {
			if err := app.results.Clear(cmd.Context()); err != nil {
				return fmt.Errorf("clear best result: %w", err)
			}

			_, err := fmt.Fprintln(cmd.OutOrStdout(), "Best result cleared.")
			return err
		},
	}
}
