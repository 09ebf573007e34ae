package tui

import (
	"fmt"
	"time"

	tea "github.com/charmbracelet/bubbletea"

	"github.com/zeroplus75/tm-pose-game2/internal/catch"
	"github.com/zeroplus75/tm-pose-game2/internal/classifier"
	"github.com/zeroplus75/tm-pose-game2/internal/config"
	"github.com/zeroplus75/tm-pose-game2/internal/core"
	"github.com/zeroplus75/tm-pose-game2/internal/storage"
)

// Options holds the runtime parameters for a game session.
type Options struct {
	ScreenW  int
	ScreenH  int
	TickRate int
	Seed     int64
}

// readingMsg carries one classifier reading into the Bubble Tea loop.
type readingMsg classifier.Reading

// sessionResult records the outcome reported by the engine's game end
// callback. Shared by pointer because Bubble Tea models are values.
type sessionResult struct {
	over   bool
	score  int
	level  int
	reason string
}

// GameModel is the Bubble Tea model for a single game session.
type GameModel struct {
	engine     *catch.Engine
	screen     *core.Screen
	store      *storage.Store
	source     classifier.Source
	keys       *KeyMapper
	gameCfg    config.CatchConfig
	opts       Options
	result     *sessionResult
	scoreSaved bool
	quitting   bool
}

// NewGameModel creates a new Bubble Tea model running one game session.
// source may be nil, in which case the basket is keyboard-only.
func NewGameModel(gameCfg config.CatchConfig, store *storage.Store, source classifier.Source, opts Options) GameModel {
	// Use time-based seed if not specified
	if opts.Seed == 0 {
		opts.Seed = time.Now().UnixNano()
	}
	if opts.TickRate <= 0 {
		opts.TickRate = 30
	}

	engine := catch.New(gameCfg, opts.Seed)
	result := &sessionResult{}
	engine.OnGameEnd(func(score, level int, reason string) {
		result.over = true
		result.score = score
		result.level = level
		result.reason = reason
	})

	return GameModel{
		engine:  engine,
		screen:  core.NewScreen(opts.ScreenW, opts.ScreenH),
		store:   store,
		source:  source,
		keys:    NewKeyMapper(),
		gameCfg: gameCfg,
		opts:    opts,
		result:  result,
	}
}

// waitForReading blocks on the classifier stream and re-emits the next
// reading as a message. Returns nil when the stream is closed.
func waitForReading(source classifier.Source) tea.Cmd {
	if source == nil {
		return nil
	}
	return func() tea.Msg {
		r, ok := <-source.Readings()
		if !ok {
			return nil
		}
		return readingMsg(r)
	}
}

// Init starts the engine and the tick loop.
func (m GameModel) Init() tea.Cmd {
	m.engine.Start(nowMillis())
	return tea.Batch(tickCmd(m.opts.TickRate), waitForReading(m.source))
}

// Update handles messages and updates the model state.
func (m GameModel) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.KeyMsg:
		return m.handleKey(msg)

	case tea.WindowSizeMsg:
		m.screen.Resize(msg.Width, msg.Height)
		return m, nil

	case readingMsg:
		m.engine.SetBasketLabel(msg.Label)
		return m, waitForReading(m.source)

	case TickMsg:
		return m.handleTick()
	}

	return m, nil
}

// handleKey processes keyboard input.
func (m GameModel) handleKey(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	if m.keys.IsQuit(msg) {
		m.engine.Stop()
		m.quitting = true
		return m, tea.Quit
	}

	if m.keys.IsRestart(msg) && m.result.over {
		*m.result = sessionResult{}
		m.scoreSaved = false
		m.engine.Start(nowMillis())
		return m, nil
	}

	if zone, ok := m.keys.MapZone(msg); ok {
		m.engine.SetBasketZone(zone)
	}

	return m, nil
}

// handleTick advances the simulation by one wall-clock step.
func (m GameModel) handleTick() (tea.Model, tea.Cmd) {
	m.engine.Update(nowMillis())

	// Save the result on game over (once)
	if m.result.over && !m.scoreSaved {
		if m.store != nil {
			//nolint:errcheck // Best-effort save, session continues regardless
			m.store.SaveResult(m.result.score, m.result.level, m.result.reason)
		}
		m.scoreSaved = true
	}

	return m, tickCmd(m.opts.TickRate)
}

// View renders the current state to a string for display.
func (m GameModel) View() string {
	if m.quitting {
		return ""
	}

	m.screen.Clear()

	w, h := m.screen.Width(), m.screen.Height()
	m.engine.Render(NewScreenSurface(m.screen), w, h)
	m.drawHUD()
	if m.result.over {
		m.drawGameOver()
	}

	return RenderScreen(m.screen)
}

// drawHUD paints the status line over the top row of the playfield.
func (m GameModel) drawHUD() {
	hud := fmt.Sprintf(" score %d  level %d  misses %d/%d  drop %.1fs  zone %s",
		m.engine.Score(),
		m.engine.Level(),
		m.engine.Misses(),
		m.gameCfg.Rules.MaxMisses,
		m.engine.DropTime(),
		m.engine.BasketZone(),
	)
	m.screen.DrawHLine(0, 0, m.screen.Width(), ' ', core.ColorDefault)
	m.screen.DrawTextColored(0, 0, hud, core.ColorWhite)
}

// drawGameOver paints a centered summary box over the playfield.
func (m GameModel) drawGameOver() {
	lines := []string{
		"GAME OVER",
		m.result.reason,
		fmt.Sprintf("score %d, reached level %d", m.result.score, m.result.level),
		"press r to play again, q to quit",
	}

	boxW := 0
	for _, line := range lines {
		if len(line) > boxW {
			boxW = len(line)
		}
	}
	boxW += 6
	boxH := len(lines) + 2

	w, h := m.screen.Width(), m.screen.Height()
	x := (w - boxW) / 2
	y := (h - boxH) / 2
	if x < 0 || y < 0 {
		// Terminal too small for the box, fall back to the top line.
		m.screen.DrawTextColored(0, 0, "GAME OVER - press r to restart", core.ColorBrightRed)
		return
	}

	m.screen.FillRect(x, y, boxW, boxH, ' ', core.ColorDefault)
	m.screen.DrawHLine(x+1, y, boxW-2, '─', core.ColorWhite)
	m.screen.DrawHLine(x+1, y+boxH-1, boxW-2, '─', core.ColorWhite)
	m.screen.DrawVLine(x, y+1, boxH-2, '│', core.ColorWhite)
	m.screen.DrawVLine(x+boxW-1, y+1, boxH-2, '│', core.ColorWhite)
	m.screen.SetCell(x, y, '┌', core.ColorWhite)
	m.screen.SetCell(x+boxW-1, y, '┐', core.ColorWhite)
	m.screen.SetCell(x, y+boxH-1, '└', core.ColorWhite)
	m.screen.SetCell(x+boxW-1, y+boxH-1, '┘', core.ColorWhite)

	for i, line := range lines {
		c := core.ColorWhite
		if i == 0 {
			c = core.ColorBrightRed
		}
		m.screen.DrawTextColored(x+(boxW-len(line))/2, y+1+i, line, c)
	}
}

// Run starts the Bubble Tea program with the given session parameters.
func Run(gameCfg config.CatchConfig, store *storage.Store, source classifier.Source, opts Options) error {
	model := NewGameModel(gameCfg, store, source, opts)

	p := tea.NewProgram(
		model,
		tea.WithAltScreen(),
	)

	_, err := p.Run()
	return err
}
