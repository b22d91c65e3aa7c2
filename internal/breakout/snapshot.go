package breakout

import "math"

// BrickState is one brick in a render snapshot.
type BrickState struct {
	X, Y, W, H float64
	Alive      bool
}

// Snapshot is the read-only per-frame state handed to renderers and
// used by determinism tests. Primitive types only.
type Snapshot struct {
	Tick uint64

	PaddleX, PaddleY          float64
	PaddleWidth, PaddleHeight float64

	BallX, BallY   float64
	BallVX, BallVY float64
	BallR          float64

	Score      int
	Lives      int
	HighScore  int
	LevelIndex int
	LevelCount int
	Remaining  int
	State      string
	ServeDelay int

	Mode         int // 0=Campaign, 1=Endless
	EndlessCycle int

	FieldW, FieldH float64

	Bricks []BrickState
}

// Snapshot returns the current game state.
func (g *Game) Snapshot() Snapshot {
	var bricks []BrickState
	for row := range g.level.Bricks {
		for col := range g.level.Bricks[row] {
			b := &g.level.Bricks[row][col]
			bricks = append(bricks, BrickState{
				X: b.X, Y: b.Y, W: b.W, H: b.H, Alive: b.Alive,
			})
		}
	}

	return Snapshot{
		Tick: uint64(g.tickCount), //#nosec G115 -- tick count is always positive

		PaddleX:      g.paddle.X,
		PaddleY:      g.paddle.Y,
		PaddleWidth:  g.paddle.Width,
		PaddleHeight: g.paddle.Height,

		BallX:  g.ball.X,
		BallY:  g.ball.Y,
		BallVX: g.ball.VX,
		BallVY: g.ball.VY,
		BallR:  g.ball.R,

		Score:      g.score,
		Lives:      g.lives,
		HighScore:  g.highScore,
		LevelIndex: g.levelIndex,
		LevelCount: len(g.cfg.Layouts),
		Remaining:  g.level.Remaining,
		State:      g.state,
		ServeDelay: g.serveDelay,

		Mode:         int(g.mode),
		EndlessCycle: g.endlessCycle,

		FieldW: g.fieldW,
		FieldH: g.fieldH,

		Bricks: bricks,
	}
}

// Hash returns a simple hash of the snapshot for determinism testing.
func (snap *Snapshot) Hash() uint64 {
	h := snap.Tick
	mix := func(v uint64) {
		h = h*31 + v
	}
	mixF := func(f float64) {
		mix(math.Float64bits(f))
	}

	mixF(snap.PaddleX)
	mixF(snap.PaddleWidth)
	mixF(snap.BallX)
	mixF(snap.BallY)
	mixF(snap.BallVX)
	mixF(snap.BallVY)
	mix(uint64(snap.Score))      //#nosec G115 -- hash computation
	mix(uint64(snap.Lives))      //#nosec G115 -- hash computation
	mix(uint64(snap.LevelIndex)) //#nosec G115 -- hash computation
	mix(uint64(snap.Remaining))  //#nosec G115 -- hash computation
	mix(uint64(snap.ServeDelay)) //#nosec G115 -- hash computation
	mix(uint64(snap.Mode))       //#nosec G115 -- hash computation
	mixF(snap.FieldW)

	for _, c := range snap.State {
		mix(uint64(c)) //#nosec G115 -- hash computation
	}
	for i := range snap.Bricks {
		if snap.Bricks[i].Alive {
			mix(1)
		} else {
			mix(0)
		}
	}
	return h
}
