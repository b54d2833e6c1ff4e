package snake

// Snapshot captures the game state for determinism testing and replay.
type Snapshot struct {
	Tick     uint64
	Score    int
	Ticks    int
	SnakeLen int
	HeadX    int
	HeadY    int
	Dir      Direction
	FoodX    int
	FoodY    int
	HasFood  bool
	Status   Status
	Paused   bool
	TickRate int
}

// Snapshot returns the current game snapshot for determinism verification.
func (g *Game) Snapshot() Snapshot {
	headX, headY := 0, 0
	if len(g.state.Snake) > 0 {
		headX = g.state.Snake[0].X
		headY = g.state.Snake[0].Y
	}

	return Snapshot{
		Tick:     g.tick,
		Score:    g.state.Score,
		Ticks:    g.state.Ticks,
		SnakeLen: len(g.state.Snake),
		HeadX:    headX,
		HeadY:    headY,
		Dir:      g.state.Dir,
		FoodX:    g.state.Food.X,
		FoodY:    g.state.Food.Y,
		HasFood:  g.state.HasFood,
		Status:   g.state.Status,
		Paused:   g.paused,
		TickRate: g.TickRate(),
	}
}
