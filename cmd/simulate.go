package cmd

import (
	"encoding/json"
	"errors"
	"fmt"
	"strconv"
	"strings"
	"time"

	"github.com/bnema/memory-match-cli/internal/adapters/render/board"
	"github.com/bnema/memory-match-cli/internal/adapters/schedule/manual"
	"github.com/bnema/memory-match-cli/internal/application"
	"github.com/bnema/memory-match-cli/internal/domain"
	"github.com/spf13/cobra"
)

var errNoReveals = errors.New("no reveals given")

type simulateReport struct {
	SessionID  string             `json:"session_id"`
	Reveals    []revealReport     `json:"reveals"`
	Moves      int                `json:"moves"`
	Stars      int                `json:"stars"`
	Matched    int                `json:"matched"`
	Finished   bool               `json:"finished"`
	Time       string             `json:"time"`
	Completion *completionReport  `json:"completion,omitempty"`
	Best       *domain.BestResult `json:"best,omitempty"`
	Cards      []cardReport       `json:"cards"`
}

type revealReport struct {
	Card   int    `json:"card"`
	At     string `json:"at"`
	Result string `json:"result"`
}

type completionReport struct {
	Moves     int                `json:"moves"`
	Stars     int                `json:"stars"`
	Time      string             `json:"time"`
	NewRecord bool               `json:"new_record"`
	Previous  *domain.BestResult `json:"previous,omitempty"`
}

type cardReport struct {
	ID     int    `json:"id"`
	Symbol string `json:"symbol"`
	State  string `json:"state"`
}

func newSimulateCmd(app *app) *cobra.Command {
	var (
		reveals string
		seed    uint64
		step    time.Duration
		asJSON  bool
	)

	cmd := &cobra.Command{
		Use:   "simulate",
		Short: "Play a scripted game without a terminal UI",
		Long:  "simulate deals a deck and reveals the given card indexes in order, waiting --step between reveals, then prints the board.",
		RunE: func(cmd *cobra.Command, _ []string) error {
			ids, err := parseReveals(reveals)
			if err != nil {
				return err
			}
			if step < 0 {
				return fmt.Errorf("step must not be negative, got %s", step)
			}

			best, err := app.results.Best(cmd.Context())
			if err != nil {
				return fmt.Errorf("load best result: %w", err)
			}

			clock := manual.NewClock(app.now())
			scheduler := manual.NewScheduler(clock)
			session := app.newSession(scheduler, clock, rngFromFlag(cmd, seed))
			if err := session.Deal(); err != nil {
				return err
			}

			start := clock.Now()
			report := simulateReport{Best: best}
			for _, id := range ids {
				scheduler.Advance(step)
				session.Tick(clock.Now())

				result, err := session.Reveal(cmd.Context(), id)
				if err != nil {
					return err
				}
				report.Reveals = append(report.Reveals, revealReport{
					Card:   int(id),
					At:     clock.Now().Sub(start).String(),
					Result: result.String(),
				})
			}
			scheduler.Flush()
			session.Tick(clock.Now())

			snapshot := session.Snapshot()
			completion := session.Completion()

			if asJSON {
				fillReport(&report, snapshot)
				if completion != nil {
					report.Completion = &completionReport{
						Moves:     completion.Moves,
						Stars:     completion.Stars,
						Time:      completion.Formatted(),
						NewRecord: completion.NewRecord,
						Previous:  completion.Previous,
					}
				}
				enc := json.NewEncoder(cmd.OutOrStdout())
				enc.SetIndent("", "  ")
				return enc.Encode(report)
			}

			rendered, err := app.boardRenderer(snapshot, board.RenderOptions{
				Cursor:     -1,
				Best:       best,
				Completion: completion,
			})
			if err != nil {
				return fmt.Errorf("render board: %w", err)
			}

			_, err = fmt.Fprintln(cmd.OutOrStdout(), rendered)
			return err
		},
	}

	cmd.Flags().StringVar(&reveals, "reveals", "", "Comma-separated card indexes to reveal in order")
	cmd.Flags().Uint64Var(&seed, "seed", 0, "Deal a reproducible deck")
	cmd.Flags().DurationVar(&step, "step", time.Second, "Time between reveals")
	cmd.Flags().BoolVar(&asJSON, "json", false, "Print the result as JSON")
	_ = cmd.MarkFlagRequired("reveals")

	return cmd
}

func parseReveals(raw string) ([]domain.CardID, error) {
	fields := strings.Split(raw, ",")
	ids := make([]domain.CardID, 0, len(fields))
	for _, field := range fields {
		field = strings.TrimSpace(field)
		if field == "" {
			continue
		}
		n, err := strconv.Atoi(field)
		if err != nil {
			return nil, fmt.Errorf("parse reveal %q: %w", field, err)
		}
		ids = append(ids, domain.CardID(n))
	}
	if len(ids) == 0 {
		return nil, errNoReveals
	}

	return ids, nil
}

func fillReport(report *simulateReport, snapshot application.SessionSnapshot) {
	report.SessionID = snapshot.SessionID.String()
	report.Moves = snapshot.Moves
	report.Stars = snapshot.Stars
	report.Matched = snapshot.Matched
	report.Finished = snapshot.Finished
	report.Time = snapshot.Formatted
	report.Cards = make([]cardReport, 0, len(snapshot.Cards))
	for _, card := range snapshot.Cards {
		report.Cards = append(report.Cards, cardReport{
			ID:     int(card.ID),
			Symbol: string(card.Symbol),
			State:  card.State.String(),
		})
	}
}
