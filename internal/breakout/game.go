package breakout

import (
	"fmt"
	"math/rand"
	"time"

	"github.com/mpetrenko/breakout/internal/config"
	"github.com/mpetrenko/breakout/internal/core"
)

// Visual characters for rendering
const (
	PaddleChar = '='
	BallChar   = '●'
	BrickChar  = '█'
)

// Brick row colors (cycling through)
var brickColors = []core.Color{
	core.ColorBrightRed,
	core.ColorOrange,
	core.ColorBrightYellow,
	core.ColorBrightGreen,
	core.ColorBrightCyan,
	core.ColorBrightBlue,
	core.ColorBrightMagenta,
}

// Game states. GameOver and Won are terminal until an explicit reset.
const (
	StateDocked   = "docked"   // Ball resting on paddle, awaiting serve
	StateRunning  = "running"  // Ball in flight
	StatePaused   = "paused"   // Physics frozen, resumable
	StateGameOver = "gameover" // No lives left
	StateWon      = "won"      // All levels cleared (campaign only)
)

// GameMode represents the game mode.
type GameMode int

const (
	ModeCampaign GameMode = iota // Play through the layouts, win at the end
	ModeEndless                  // Cycle layouts forever with rising speed
)

// ScoreKeeper persists the high score. Record failures are the store's
// problem: the engine never sees them and gameplay is unaffected.
type ScoreKeeper interface {
	Best() int
	Record(score int)
}

// Game owns the whole simulation: paddle, ball, brick field, and the
// session state machine. One Step call advances exactly one tick; there
// is no delta-time integration, per-tick displacement is baked into the
// velocity tuning.
type Game struct {
	mode GameMode
	cfg  config.BreakoutConfig

	// Entities
	paddle *Paddle
	ball   *Ball
	level  *Level

	// Session state
	state        string
	score        int
	lives        int
	startLevel   int
	levelIndex   int
	tickCount    int
	serveDelay   int // Countdown before the next serve is accepted
	endlessCycle int // Completed layout cycles (endless mode)
	highScore    int

	// Logical playfield, growable by the level fit pass
	fieldW float64
	fieldH float64

	rng    *rand.Rand
	scores ScoreKeeper
	events []core.Event

	// Configuration and screen checks
	runtime        core.RuntimeConfig
	minScreenW     int
	minScreenH     int
	screenTooSmall bool
}

// New creates a campaign-mode game.
func New(cfg config.BreakoutConfig) *Game {
	return &Game{mode: ModeCampaign, cfg: cfg}
}

// NewEndless creates an endless-mode game.
func NewEndless(cfg config.BreakoutConfig) *Game {
	return &Game{mode: ModeEndless, cfg: cfg}
}

// ID returns the unique identifier for this game variant.
func (g *Game) ID() string {
	if g.mode == ModeEndless {
		return "breakout_endless"
	}
	return "breakout"
}

// Title returns the display name for this game variant.
func (g *Game) Title() string {
	if g.mode == ModeEndless {
		return "Breakout (Endless)"
	}
	return "Breakout"
}

// SetScoreKeeper attaches a high score store. Optional; without one the
// high score lives only for the session.
func (g *Game) SetScoreKeeper(sk ScoreKeeper) {
	g.scores = sk
}

// SetStartLevel sets the 0-based level the next Reset starts from.
// Out-of-range values clamp to the configured layout range.
func (g *Game) SetStartLevel(level int) {
	if level < 0 {
		level = 0
	}
	if last := len(g.cfg.Layouts) - 1; level > last {
		level = last
	}
	g.startLevel = level
}

// Reset initializes or restarts the game: score 0, full lives, level 0,
// fresh bricks, ball docked.
func (g *Game) Reset(runtime core.RuntimeConfig) {
	g.runtime = runtime

	g.minScreenW = 40
	g.minScreenH = 16
	g.screenTooSmall = runtime.ScreenW < g.minScreenW || runtime.ScreenH < g.minScreenH

	seed := runtime.Seed
	if seed == 0 {
		seed = time.Now().UnixNano()
	}
	g.rng = rand.New(rand.NewSource(seed)) //#nosec G404 -- gameplay randomness, not crypto

	g.score = 0
	g.lives = g.cfg.Gameplay.Lives
	g.levelIndex = g.startLevel
	g.tickCount = 0
	g.serveDelay = 0
	g.endlessCycle = 0
	g.fieldW = g.cfg.Field.Width
	g.fieldH = g.cfg.Field.Height

	if g.scores != nil {
		g.highScore = g.scores.Best()
	}

	g.loadLevel(g.levelIndex)

	g.paddle = &Paddle{
		Y:      g.fieldH - g.cfg.Paddle.BottomOffset,
		Width:  g.cfg.PaddleWidthForLevel(g.levelIndex),
		Height: g.cfg.Paddle.Height,
		Speed:  g.cfg.Physics.PaddleSpeed,
	}
	g.paddle.X = (g.fieldW - g.paddle.Width) / 2

	g.ball = &Ball{R: g.cfg.Physics.BallRadius}
	g.dockBall()
	g.state = StateDocked
}

// loadLevel generates the brick field for a level index. The fit pass
// may widen the field, in which case the paddle is reclamped.
func (g *Game) loadLevel(index int) {
	layout := g.cfg.Layouts[index%len(g.cfg.Layouts)]
	lv, fieldW := Generate(layout, g.cfg.Bricks, g.fieldW)
	g.level = lv
	if fieldW > g.fieldW {
		g.fieldW = fieldW
		if g.paddle != nil {
			g.paddle.Clamp(g.fieldW)
		}
	}
}

// effectiveLevel is the difficulty level: in endless mode completed
// cycles keep counting past the last layout.
func (g *Game) effectiveLevel() int {
	return g.endlessCycle*len(g.cfg.Layouts) + g.levelIndex
}

// dockBall pins the ball to the paddle top, velocity inert.
func (g *Game) dockBall() {
	g.ball.X = g.paddle.CenterX()
	g.ball.Y = g.paddle.Y - g.ball.R - repositionEpsilon
	g.ball.VX = 0
	g.ball.VY = 0
}

// serve launches the docked ball with a randomized velocity. The
// vertical speed scales with level; the horizontal component gets a
// random magnitude and sign so consecutive serves differ.
func (g *Game) serve() {
	base := g.cfg.ServeSpeedForLevel(g.levelIndex, g.endlessCycle)

	dy := base + 0.5
	if dy < 3 {
		dy = 3
	}

	dx := base + g.rng.Float64()*2
	if g.rng.Intn(2) == 0 {
		dx = -dx
	}

	g.ball.VX = dx
	g.ball.VY = -dy
	g.state = StateRunning
}

// emit appends an event to this tick's event list.
func (g *Game) emit(kind core.EventKind, x, y float64) {
	g.events = append(g.events, core.Event{Kind: kind, X: x, Y: y})
}

// Step advances the game by one tick and returns the resulting state
// plus the ordered list of events that fired during the tick.
func (g *Game) Step(in core.InputFrame) core.StepResult {
	g.events = g.events[:0]

	if g.screenTooSmall {
		return g.result()
	}

	// Restart from a terminal state
	if in.Has(core.ActionRestart) && (g.state == StateGameOver || g.state == StateWon) {
		g.Reset(g.runtime)
		return g.result()
	}

	// Pause toggle
	if in.Has(core.ActionPause) {
		switch g.state {
		case StatePaused:
			g.state = StateRunning
		case StateRunning:
			g.state = StatePaused
		}
	}

	if g.state == StatePaused || g.state == StateGameOver || g.state == StateWon {
		return g.result()
	}

	g.tickCount++

	if g.serveDelay > 0 {
		g.serveDelay--
		return g.result()
	}

	g.updatePaddle(in)

	if g.state == StateDocked {
		g.dockBall()
		// A serve request while already running is a no-op; here it
		// launches the ball.
		if in.Has(core.ActionServe) {
			g.serve()
		}
		return g.result()
	}

	g.updateBall()
	return g.result()
}

// result snapshots the per-tick outcome. Events are copied so callers
// may hold them past the next Step.
func (g *Game) result() core.StepResult {
	var events []core.Event
	if len(g.events) > 0 {
		events = make([]core.Event, len(g.events))
		copy(events, g.events)
	}
	return core.StepResult{State: g.State(), Events: events}
}

// updatePaddle applies input intents and moves the paddle. An absolute
// pointer intent wins over discrete key intents for the tick.
func (g *Game) updatePaddle(in core.InputFrame) {
	if in.HasPointer {
		g.paddle.SetCenter(in.PointerX, g.fieldW)
		g.paddle.VX = 0
		return
	}

	dir := 0
	if in.Has(core.ActionLeft) {
		dir--
	}
	if in.Has(core.ActionRight) {
		dir++
	}
	g.paddle.SetVelocity(dir)
	g.paddle.Move(g.fieldW)
}

// updateBall runs one physics tick in the fixed order: integrate, walls,
// paddle, bottom-out, bricks. Wall and paddle reflections are
// independent; all may fire for a fast ball in one tick.
func (g *Game) updateBall() {
	prevX, prevY := g.ball.X, g.ball.Y
	g.ball.Move()

	if CollideWalls(g.ball, g.fieldW) {
		g.emit(core.EventWallHit, g.ball.X, g.ball.Y)
	}

	if CollidePaddle(g.ball, g.paddle, g.cfg.Physics.ReboundFactor) {
		g.emit(core.EventPaddleHit, g.ball.X, g.ball.Y)
	}

	if BottomOut(g.ball, g.fieldH) {
		g.handleMiss()
		return
	}

	if brick := ResolveBrickHit(g.ball, prevX, prevY, g.level); brick != nil {
		g.score += g.cfg.Bricks.Points
		g.emit(core.EventBrickHit, brick.X+brick.W/2, brick.Y+brick.H/2)
		g.updateHighScore()

		if g.level.Remaining == 0 {
			g.handleLevelClear()
		}
	}
}

// updateHighScore pushes a new best through the score keeper. Storage
// failures are swallowed inside the keeper and never reach gameplay.
func (g *Game) updateHighScore() {
	if g.score <= g.highScore {
		return
	}
	g.highScore = g.score
	if g.scores != nil {
		g.scores.Record(g.score)
	}
}

// handleMiss handles a bottom-out: lose a life, re-dock or end the game.
func (g *Game) handleMiss() {
	g.emit(core.EventLifeLost, g.ball.X, g.ball.Y)
	g.lives--

	if g.lives <= 0 {
		g.lives = 0
		g.state = StateGameOver
		g.emit(core.EventGameOver, 0, 0)
		return
	}

	g.dockBall()
	g.state = StateDocked
	g.serveDelay = g.cfg.Gameplay.ServeDelayTicks
}

// handleLevelClear advances to the next level, or ends the campaign.
// Endless mode wraps to the first layout with a difficulty bump.
func (g *Game) handleLevelClear() {
	g.levelIndex++

	if g.mode == ModeCampaign {
		if g.levelIndex >= len(g.cfg.Layouts) {
			g.state = StateWon
			g.emit(core.EventWin, 0, 0)
			return
		}
	} else if g.levelIndex >= len(g.cfg.Layouts) {
		g.levelIndex = 0
		g.endlessCycle++
	}

	g.emit(core.EventLevelCleared, 0, 0)
	g.loadLevel(g.levelIndex)

	// Difficulty bump: narrower paddle, faster serve (via effectiveLevel)
	g.paddle.Width = g.cfg.PaddleWidthForLevel(g.effectiveLevel())
	g.paddle.Clamp(g.fieldW)

	g.dockBall()
	g.state = StateDocked
	g.serveDelay = g.cfg.Gameplay.ServeDelayTicks
}

// State returns the coarse session state.
func (g *Game) State() core.GameState {
	return core.GameState{
		Score:    g.score,
		Lives:    g.lives,
		Level:    g.levelIndex,
		GameOver: g.state == StateGameOver || g.state == StateWon,
		Paused:   g.state == StatePaused,
	}
}

// Render draws the current game state to the screen, mapping logical
// field units onto terminal cells.
func (g *Game) Render(dst *core.Screen) {
	dst.Clear()

	if g.screenTooSmall {
		msg := "Window too small"
		hint := fmt.Sprintf("Need %dx%d", g.minScreenW, g.minScreenH)
		dst.DrawTextCentered(dst.Height()/2-1, msg)
		dst.DrawTextCentered(dst.Height()/2+1, hint)
		return
	}

	g.renderHUD(dst)
	g.renderBricks(dst)
	g.renderPaddle(dst)
	g.renderBall(dst)
	g.renderOverlay(dst)
}

// hudRows is the number of terminal rows reserved for the HUD.
const hudRows = 2

// cellX maps a logical x coordinate onto a terminal column.
func (g *Game) cellX(x float64, dst *core.Screen) int {
	return int(x / g.fieldW * float64(dst.Width()))
}

// cellY maps a logical y coordinate onto a terminal row below the HUD.
func (g *Game) cellY(y float64, dst *core.Screen) int {
	return hudRows + int(y/g.fieldH*float64(dst.Height()-hudRows))
}

// renderHUD draws score, lives, high score, and the level indicator.
func (g *Game) renderHUD(dst *core.Screen) {
	dst.DrawText(1, 0, fmt.Sprintf("Score: %d", g.score))
	dst.DrawTextCentered(0, fmt.Sprintf("Lives: %d", g.lives))

	var levelText string
	if g.mode == ModeEndless {
		levelText = fmt.Sprintf("Level: %d", g.effectiveLevel()+1)
	} else {
		levelText = fmt.Sprintf("Level: %d/%d", g.levelIndex+1, len(g.cfg.Layouts))
	}
	dst.DrawText(dst.Width()-len(levelText)-1, 0, levelText)

	hiText := fmt.Sprintf("Best: %d", g.highScore)
	dst.DrawText(1, 1, hiText)
	dst.DrawHLine(len(hiText)+2, 1, dst.Width()-len(hiText)-2, '─')
}

// renderBricks draws alive bricks, one color per row.
func (g *Game) renderBricks(dst *core.Screen) {
	for row := range g.level.Bricks {
		color := brickColors[row%len(brickColors)]
		for col := range g.level.Bricks[row] {
			brick := &g.level.Bricks[row][col]
			if !brick.Alive {
				continue
			}

			x0 := g.cellX(brick.X, dst)
			x1 := g.cellX(brick.X+brick.W, dst)
			y := g.cellY(brick.Y+brick.H/2, dst)
			if x1 <= x0 {
				x1 = x0 + 1
			}
			for x := x0; x < x1; x++ {
				dst.SetColored(x, y, BrickChar, color)
			}
		}
	}
}

// renderPaddle draws the player's paddle.
func (g *Game) renderPaddle(dst *core.Screen) {
	x0 := g.cellX(g.paddle.X, dst)
	x1 := g.cellX(g.paddle.X+g.paddle.Width, dst)
	y := g.cellY(g.paddle.Y, dst)
	if x1 <= x0 {
		x1 = x0 + 1
	}
	for x := x0; x < x1; x++ {
		dst.SetColored(x, y, PaddleChar, core.ColorBrightCyan)
	}
}

// renderBall draws the ball.
func (g *Game) renderBall(dst *core.Screen) {
	x := g.cellX(g.ball.X, dst)
	y := g.cellY(g.ball.Y, dst)
	dst.SetColored(x, y, BallChar, core.ColorBrightYellow)
}

// renderOverlay draws game state messages.
func (g *Game) renderOverlay(dst *core.Screen) {
	switch g.state {
	case StateDocked:
		if g.serveDelay <= 0 {
			dst.DrawTextCentered(dst.Height()-1, "Press SPACE to serve")
		} else {
			dst.DrawTextCentered(dst.Height()-1, "Get ready...")
		}

	case StatePaused:
		g.drawCenteredBox(dst, "PAUSED", "Press P to resume")

	case StateGameOver:
		subtitle := fmt.Sprintf("Score: %d  |  Press R to restart", g.score)
		g.drawCenteredBox(dst, "GAME OVER", subtitle)

	case StateWon:
		subtitle := fmt.Sprintf("Final Score: %d  |  Press R to restart", g.score)
		g.drawCenteredBox(dst, "YOU WIN!", subtitle)
	}
}

// drawCenteredBox draws a centered message box.
func (g *Game) drawCenteredBox(dst *core.Screen, title, subtitle string) {
	w := dst.Width()
	h := dst.Height()

	boxW := core.Max(len(title), len(subtitle)) + 4
	boxH := 5
	boxX := (w - boxW) / 2
	boxY := (h - boxH) / 2

	dst.DrawRect(core.NewRect(boxX, boxY, boxW, boxH), ' ')
	dst.DrawBox(core.NewRect(boxX, boxY, boxW, boxH))

	dst.DrawText(boxX+(boxW-len(title))/2, boxY+1, title)
	dst.DrawText(boxX+(boxW-len(subtitle))/2, boxY+3, subtitle)
}
