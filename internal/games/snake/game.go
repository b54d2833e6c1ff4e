// Package snake implements the classic snake game: a pure state updater
// (Step) and a Game adapter that plugs it into the terminal platform.
package snake

import (
	"fmt"
	"math/rand"
	"strings"

	"github.com/vovakirdan/tui-snake/internal/config"
	"github.com/vovakirdan/tui-snake/internal/core"
)

const (
	hudHeight  = 2 // HUD line + separator
	borderSize = 1
)

// Game implements the Snake game on top of Step.
type Game struct {
	cfg        config.SnakeConfig
	difficulty *config.DifficultyManager
	rules      Rules
	rng        *rand.Rand
	baseRate   int

	state State
	tick  uint64
	best  int // Best score this session

	paused   bool
	tooSmall bool

	screenW int
	screenH int
	boardX  int // Screen column of the board's top-left border cell
	boardY  int
}

// New creates a Snake game from the given configuration.
func New(cfg config.SnakeConfig) *Game {
	return &Game{
		cfg:        cfg,
		difficulty: config.NewDifficultyManager(cfg.Difficulty),
		rules:      Rules{TailChase: cfg.Rules.TailChase},
		baseRate:   cfg.Speed.TicksPerSecond,
	}
}

// ID returns the game identifier.
func (g *Game) ID() string {
	return "snake"
}

// Title returns the display name.
func (g *Game) Title() string {
	return "Snake"
}

// Reset initializes/restarts the game.
func (g *Game) Reset(rc core.RuntimeConfig) {
	g.rng = rand.New(rand.NewSource(rc.Seed))
	g.tick = 0
	g.paused = false
	if rc.TickRate > 0 {
		g.baseRate = rc.TickRate
	}

	grid := Grid{Width: g.cfg.Grid.Width, Height: g.cfg.Grid.Height}
	g.state = NewState(grid, g.cfg.Snake.InitialLength, g.rng)
	g.layout(rc.ScreenW, rc.ScreenH)
}

// Resize re-centers the board for new screen dimensions without touching
// the game state.
func (g *Game) Resize(screenW, screenH int) {
	g.layout(screenW, screenH)
}

func (g *Game) layout(screenW, screenH int) {
	g.screenW = screenW
	g.screenH = screenH

	requiredW := g.state.Grid.Width + 2*borderSize
	requiredH := g.state.Grid.Height + 2*borderSize + hudHeight
	g.tooSmall = screenW < requiredW || screenH < requiredH

	g.boardX = max((screenW-requiredW)/2, 0)
	g.boardY = hudHeight
}

// Step advances the game by one tick.
func (g *Game) Step(input core.InputFrame) core.StepResult {
	g.tick++

	if g.tooSmall {
		return core.StepResult{State: g.State()}
	}

	// Pause only applies to a running game
	if input.Has(core.ActionPause) && g.state.Status == StatusRunning {
		g.paused = !g.paused
	}
	if g.paused {
		return core.StepResult{State: g.State()}
	}

	prev := g.state
	g.state = Step(prev, Input{
		Dir:     DirectionFromAction(input.Dir),
		Restart: input.Has(core.ActionRestart),
	}, g.rng, g.rules)

	g.best = max(g.best, g.state.Score)

	return core.StepResult{
		State: g.State(),
		Ate:   prev.Status == StatusRunning && g.state.Score > prev.Score,
		Died:  prev.Status == StatusRunning && g.state.Status == StatusLost,
	}
}

// TickRate returns the current moves per second.
func (g *Game) TickRate() int {
	return g.difficulty.TickRate(g.baseRate, g.state.Score, g.state.Ticks)
}

// Current returns the underlying game state value.
func (g *Game) Current() State {
	return g.state
}

// State returns the current game state summary.
func (g *Game) State() core.GameState {
	return core.GameState{
		Score:    g.state.Score,
		Length:   len(g.state.Snake),
		GameOver: g.state.Status != StatusRunning,
		Won:      g.state.Status == StatusWon,
		Paused:   g.paused,
		Ticks:    g.state.Ticks,
	}
}

// DebugState returns a string representation of the game state.
func (g *Game) DebugState() string {
	var b strings.Builder
	fmt.Fprintf(&b, "Tick: %d, Score: %d, Status: %s\n", g.tick, g.state.Score, g.state.Status)
	fmt.Fprintf(&b, "Snake len: %d, Direction: %s\n", len(g.state.Snake), g.state.Dir)
	if len(g.state.Snake) > 0 {
		fmt.Fprintf(&b, "Head: %s, Food: %s\n", g.state.Head(), g.state.Food)
	}
	fmt.Fprintf(&b, "Paused: %v, TooSmall: %v\n", g.paused, g.tooSmall)
	return b.String()
}
