// Package tui runs the interactive game board.
package tui

import (
	"context"
	"fmt"
	"log/slog"
	"time"

	"github.com/bnema/memory-match-cli/internal/adapters/render/board"
	"github.com/bnema/memory-match-cli/internal/application"
	"github.com/bnema/memory-match-cli/internal/domain"
	"github.com/bnema/memory-match-cli/internal/ports"
	"github.com/charmbracelet/bubbles/help"
	"github.com/charmbracelet/bubbles/key"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"
)

const DefaultFrameInterval = 16 * time.Millisecond

var errorStyle = lipgloss.NewStyle().Foreground(lipgloss.Color("203"))

type frameMsg time.Time

type Options struct {
	Session       *application.Session
	Scheduler     *Scheduler
	Best          *domain.BestResult
	FrameInterval time.Duration
	Logger        *slog.Logger
}

// Model adapts a Session to bubbletea. It is also the session's presenter.
type Model struct {
	ctx           context.Context
	session       *application.Session
	scheduler     *Scheduler
	logger        *slog.Logger
	keys          keyMap
	help          help.Model
	frameInterval time.Duration
	framing       bool

	cursor int
	paused bool
	best   *domain.BestResult
	err    error
	fatal  error
}

var _ ports.Presenter = (*Model)(nil)

func New(ctx context.Context, opts Options) *Model {
	if ctx == nil {
		ctx = context.Background()
	}
	if opts.Scheduler == nil {
		opts.Scheduler = NewScheduler()
	}
	if opts.FrameInterval <= 0 {
		opts.FrameInterval = DefaultFrameInterval
	}
	if opts.Logger == nil {
		opts.Logger = slog.New(slog.DiscardHandler)
	}

	m := &Model{
		ctx:           ctx,
		session:       opts.Session,
		scheduler:     opts.Scheduler,
		logger:        opts.Logger,
		keys:          defaultKeyMap(),
		help:          help.New(),
		frameInterval: opts.FrameInterval,
		best:          opts.Best,
	}
	m.session.SetPresenter(m)

	return m
}

func (m *Model) Init() tea.Cmd {
	if err := m.session.Deal(); err != nil {
		m.fatal = err
		return tea.Quit
	}
	return nil
}

func (m *Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		m.help.Width = msg.Width
		return m, nil
	case tea.KeyMsg:
		if key.Matches(msg, m.keys.Quit) {
			return m, tea.Quit
		}
		m.handleKey(msg)
	case deferredMsg:
		m.scheduler.Run(msg.id)
	case frameMsg:
		m.framing = false
		m.session.Tick(time.Time(msg))
	default:
		return m, nil
	}

	return m, m.followUp()
}

func (m *Model) handleKey(msg tea.KeyMsg) {
	switch {
	case key.Matches(msg, m.keys.Up):
		m.move(-board.Columns)
	case key.Matches(msg, m.keys.Down):
		m.move(board.Columns)
	case key.Matches(msg, m.keys.Left):
		m.move(-1)
	case key.Matches(msg, m.keys.Right):
		m.move(1)
	case key.Matches(msg, m.keys.Reveal):
		m.reveal()
	case key.Matches(msg, m.keys.Deal):
		if err := m.session.Deal(); err != nil {
			m.err = err
			return
		}
		m.paused = false
		m.err = nil
	case key.Matches(msg, m.keys.Pause):
		m.togglePause()
	case key.Matches(msg, m.keys.Help):
		m.help.ShowAll = !m.help.ShowAll
	}
}

func (m *Model) move(delta int) {
	next := m.cursor + delta
	if next < 0 || next >= len(m.session.Cards()) {
		return
	}
	m.cursor = next
}

func (m *Model) reveal() {
	if m.paused {
		m.togglePause()
	}

	result, err := m.session.Reveal(m.ctx, domain.CardID(m.cursor))
	if err != nil {
		m.err = err
		m.logger.Error("reveal failed", "card", m.cursor, "error", err)
		return
	}
	m.logger.Debug("reveal", "card", m.cursor, "result", result.String())
}

func (m *Model) togglePause() {
	wasRunning := m.session.TimerRunning()
	running := m.session.ToggleTimer()
	m.paused = wasRunning && !running
}

// followUp schedules queued deferred actions and, while the stopwatch runs,
// the next frame.
func (m *Model) followUp() tea.Cmd {
	cmds := m.scheduler.Commands()
	if m.session.TimerRunning() && !m.framing {
		m.framing = true
		cmds = append(cmds, tea.Tick(m.frameInterval, func(t time.Time) tea.Msg {
			return frameMsg(t)
		}))
	}

	return tea.Batch(cmds...)
}

func (m *Model) View() string {
	if m.fatal != nil {
		return errorStyle.Render(fmt.Sprintf("error: %v", m.fatal)) + "\n"
	}

	view := board.View(m.session.Snapshot(), board.RenderOptions{
		Cursor:     m.cursor,
		Paused:     m.paused,
		Best:       m.best,
		Completion: m.session.Completion(),
	})
	if m.err != nil {
		view += "\n" + errorStyle.Render(fmt.Sprintf("error: %v", m.err))
	}

	return view + "\n\n" + m.help.View(m.keys) + "\n"
}

// Err reports a failure that ended the program.
func (m *Model) Err() error {
	return m.fatal
}

func (m *Model) Best() *domain.BestResult {
	return m.best
}

func (m *Model) CardsChanged([]domain.Card) {}
func (m *Model) MovesChanged(int)           {}
func (m *Model) StarsChanged(int)           {}
func (m *Model) TimerChanged(string)        {}

func (m *Model) Completed(completion ports.Completion) {
	if completion.NewRecord {
		m.best = &domain.BestResult{Moves: completion.Moves, Time: completion.Time}
	}
}

// Run plays until the user quits.
func Run(ctx context.Context, opts Options, programOpts ...tea.ProgramOption) error {
	p := tea.NewProgram(New(ctx, opts), append([]tea.ProgramOption{tea.WithContext(ctx)}, programOpts...)...)

	finalModel, err := p.Run()
	if err != nil {
		return err
	}

	result, ok := finalModel.(*Model)
	if !ok {
		return fmt.Errorf("unexpected final model type %T", finalModel)
	}

	return result.Err()
}
