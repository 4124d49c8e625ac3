package tui

import (
	"context"
	"fmt"
	"io"
	"time"

	"github.com/charmbracelet/bubbles/help"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/log"
	"github.com/google/uuid"
	"go.opentelemetry.io/otel/attribute"
	"go.opentelemetry.io/otel/trace"

	"github.com/vovakirdan/gridsnake/internal/core"
	"github.com/vovakirdan/gridsnake/internal/registry"
	"github.com/vovakirdan/gridsnake/internal/telemetry"
)

// Options carries the optional collaborators of a Model.
// Nil fields fall back to a discarding logger and a no-op tracer.
type Options struct {
	Logger *log.Logger
	Tracer trace.Tracer
}

// debugStater is implemented by games that can describe their internals.
type debugStater interface {
	DebugState() string
}

// Model is the Bubble Tea model for running a grid game.
type Model struct {
	game      registry.Game
	canvas    *core.Canvas
	renderer  *Renderer
	config    core.RuntimeConfig
	keys      KeyMap
	help      help.Model
	logger    *log.Logger
	span      trace.Span
	sessionID string
	gameState core.GameState
	width     int
	height    int
	quitting  bool
}

// NewModel resets the game with cfg and returns a model ready to run.
// Reset errors are returned so invalid configuration fails before the
// program takes over the terminal.
func NewModel(game registry.Game, cfg core.RuntimeConfig, opts Options) (Model, error) {
	// Use time-based seed if not specified
	if cfg.Seed == 0 {
		cfg.Seed = time.Now().UnixNano()
	}
	if opts.Logger == nil {
		opts.Logger = log.New(io.Discard)
	}
	if opts.Tracer == nil {
		opts.Tracer = telemetry.NoopTracer()
	}

	if err := game.Reset(cfg); err != nil {
		return Model{}, fmt.Errorf("tui: reset %s: %w", game.ID(), err)
	}

	sessionID := uuid.NewString()
	_, span := opts.Tracer.Start(context.Background(), "snake.session",
		trace.WithAttributes(
			attribute.String("session.id", sessionID),
			attribute.String("game.id", game.ID()),
			attribute.Int64("game.seed", cfg.Seed),
			attribute.Int("grid.cell_count", cfg.Grid.CellCount),
		),
	)

	m := Model{
		game:      game,
		canvas:    core.NewSquareCanvas(cfg.Grid),
		renderer:  NewRenderer(),
		config:    cfg,
		keys:      DefaultKeyMap(),
		help:      help.New(),
		logger:    opts.Logger.With("session", sessionID, "game", game.ID()),
		span:      span,
		sessionID: sessionID,
		gameState: game.State(),
	}
	m.game.Render(m.canvas)

	m.logger.Info("session started",
		"seed", cfg.Seed,
		"grid", cfg.Grid.CellCount,
		"edge", cfg.Grid.EdgeLength(),
		"tick", cfg.TickInterval,
	)
	return m, nil
}

// Init starts the tick loop.
func (m Model) Init() tea.Cmd {
	return tickCmd(m.config.TickInterval)
}

// Update handles messages and updates the model state.
func (m Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.KeyMsg:
		return m.handleKey(msg)

	case tea.WindowSizeMsg:
		m.width = msg.Width
		m.height = msg.Height
		m.help.Width = msg.Width
		return m, nil

	case TickMsg:
		return m.handleTick()
	}

	return m, nil
}

// handleKey forwards steering keys to the game immediately.
func (m Model) handleKey(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	action := m.keys.MapKey(msg)
	switch action {
	case core.ActionNone:
		return m, nil
	case core.ActionQuit:
		m.quitting = true
		return m, tea.Quit
	}

	m.game.HandleAction(action)
	m.logger.Debug("steer", "action", action, "tick", m.gameState.Tick)
	return m, nil
}

// handleTick advances the simulation and redraws the canvas.
func (m Model) handleTick() (tea.Model, tea.Cmd) {
	result := m.game.Step()
	m.gameState = result.State

	for _, ev := range result.Events {
		m.logger.Info(ev.Kind.String(),
			"at", ev.At.String(),
			"length", result.State.Length,
			"tick", result.State.Tick,
		)
		m.span.AddEvent(ev.Kind.String(), trace.WithAttributes(
			attribute.Int("x", ev.At.X),
			attribute.Int("y", ev.At.Y),
			attribute.Int("length", result.State.Length),
		))
	}

	m.game.Render(m.canvas)
	return m, tickCmd(m.config.TickInterval)
}

// View renders the canvas and help footer for display.
func (m Model) View() string {
	if m.quitting {
		return ""
	}

	rows := 0
	if m.height > 0 {
		rows = core.Max(m.height-1, 1)
	}
	return m.renderer.Render(m.canvas, m.config.Grid, m.width, rows) + "\n" + m.help.View(m.keys)
}

// State returns the game state after the most recent tick.
func (m Model) State() core.GameState {
	return m.gameState
}

// SessionID returns the id attached to this session's logs and span.
func (m Model) SessionID() string {
	return m.sessionID
}

// finish closes the session span and logs the final state.
func (m Model) finish(err error) {
	m.span.SetAttributes(
		attribute.Int64("game.ticks", int64(m.gameState.Tick)),
		attribute.Int("snake.length", m.gameState.Length),
	)
	if err != nil {
		m.span.RecordError(err)
		m.logger.Error("session failed", "err", err)
	}
	m.span.End()
	if d, ok := m.game.(debugStater); ok {
		m.logger.Debug("final state", "state", d.DebugState())
	}
	m.logger.Info("session ended", "ticks", m.gameState.Tick, "length", m.gameState.Length)
}

// Run starts the Bubble Tea program for the given game.
func Run(game registry.Game, cfg core.RuntimeConfig, opts Options) error {
	model, err := NewModel(game, cfg, opts)
	if err != nil {
		return err
	}

	p := tea.NewProgram(
		model,
		tea.WithAltScreen(), // Use alternate screen buffer
	)

	final, runErr := p.Run()
	if fm, ok := final.(Model); ok {
		model = fm
	}
	model.finish(runErr)
	if runErr != nil {
		return fmt.Errorf("tui: run: %w", runErr)
	}
	return nil
}
