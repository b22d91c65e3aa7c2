package breakout

import (
	"math"
	"strings"
	"testing"

	"github.com/mpetrenko/breakout/internal/config"
	"github.com/mpetrenko/breakout/internal/core"
)

func testRuntime(seed int64) core.RuntimeConfig {
	return core.RuntimeConfig{
		ScreenW:  80,
		ScreenH:  24,
		TickRate: 60,
		Seed:     seed,
	}
}

func newTestGame(seed int64) *Game {
	g := New(config.Default())
	g.Reset(testRuntime(seed))
	return g
}

// hasEvent reports whether the step result carries an event of kind k.
func hasEvent(res core.StepResult, k core.EventKind) bool {
	for _, e := range res.Events {
		if e.Kind == k {
			return true
		}
	}
	return false
}

func TestGameStartsDocked(t *testing.T) {
	g := newTestGame(1)

	if g.state != StateDocked {
		t.Errorf("Game should start docked, got %s", g.state)
	}
	if g.ball.VX != 0 || g.ball.VY != 0 {
		t.Errorf("Docked ball should be inert, got VX=%v VY=%v", g.ball.VX, g.ball.VY)
	}
	if g.lives != 3 || g.score != 0 || g.levelIndex != 0 {
		t.Errorf("Fresh session should be 3 lives / 0 score / level 0, got %d/%d/%d",
			g.lives, g.score, g.levelIndex)
	}

	// Docked ball rests on the paddle center and tracks it
	if g.ball.X != g.paddle.CenterX() {
		t.Error("Docked ball should sit at the paddle center")
	}
	in := core.NewInputFrame()
	in.Set(core.ActionRight)
	g.Step(in)
	if g.ball.X != g.paddle.CenterX() {
		t.Error("Docked ball should follow the paddle")
	}
}

func TestStartLevelSelection(t *testing.T) {
	g := New(config.Default())
	g.SetStartLevel(1)
	g.Reset(testRuntime(1))

	if g.levelIndex != 1 {
		t.Fatalf("Reset should start at level 1, got %d", g.levelIndex)
	}
	// Level 1 is the 4x8 grid
	if g.level.Remaining != 32 {
		t.Errorf("Grid level should have 32 bricks, got %d", g.level.Remaining)
	}

	g.SetStartLevel(99)
	g.Reset(testRuntime(1))
	if g.levelIndex != len(g.cfg.Layouts)-1 {
		t.Errorf("Out-of-range start level should clamp to last, got %d", g.levelIndex)
	}
}

func TestServeVelocity(t *testing.T) {
	g := newTestGame(7)

	in := core.NewInputFrame()
	in.Set(core.ActionServe)
	g.Step(in)

	if g.state != StateRunning {
		t.Fatalf("Serve should start the round, got %s", g.state)
	}

	// Level 0: base speed 2.5, vertical floor of 3
	if g.ball.VY != -3 {
		t.Errorf("Serve VY = %v, expected -3", g.ball.VY)
	}
	dx := math.Abs(g.ball.VX)
	if dx < 2.5 || dx >= 4.5 {
		t.Errorf("Serve |VX| = %v, expected in [2.5, 4.5)", dx)
	}
}

func TestServeWhileRunningIsNoOp(t *testing.T) {
	g := newTestGame(1)

	serve := core.NewInputFrame()
	serve.Set(core.ActionServe)
	g.Step(serve)

	// Park the ball mid-field away from everything
	g.ball.X, g.ball.Y = 300, 250
	g.ball.VX, g.ball.VY = 2, -3
	g.Step(serve)

	if g.ball.VX != 2 || g.ball.VY != -3 {
		t.Errorf("Serve while running must not change velocity, got VX=%v VY=%v",
			g.ball.VX, g.ball.VY)
	}
}

func TestPaddleStaysInBounds(t *testing.T) {
	g := newTestGame(1)

	left := core.NewInputFrame()
	left.Set(core.ActionLeft)
	for i := 0; i < 300; i++ {
		g.Step(left)
		if g.paddle.X < 0 {
			t.Fatalf("Paddle escaped left bound at tick %d: X=%v", i, g.paddle.X)
		}
	}

	right := core.NewInputFrame()
	right.Set(core.ActionRight)
	for i := 0; i < 600; i++ {
		g.Step(right)
		if g.paddle.X > g.fieldW-g.paddle.Width {
			t.Fatalf("Paddle escaped right bound at tick %d: X=%v", i, g.paddle.X)
		}
	}
}

func TestPointerIntentCentersPaddle(t *testing.T) {
	g := newTestGame(1)

	in := core.NewInputFrame()
	in.SetPointer(150)
	g.Step(in)

	if g.paddle.CenterX() != 150 {
		t.Errorf("Pointer intent should center the paddle at 150, got %v", g.paddle.CenterX())
	}

	// Out-of-range pointer clamps
	in2 := core.NewInputFrame()
	in2.SetPointer(-100)
	g.Step(in2)
	if g.paddle.X != 0 {
		t.Errorf("Pointer past the edge should clamp, got X=%v", g.paddle.X)
	}
}

func TestWallBounceFlipsOncePerCrossing(t *testing.T) {
	g := newTestGame(1)
	g.state = StateRunning

	// Heading out the left wall, level flight
	g.ball.X, g.ball.Y = 10, 200
	g.ball.VX, g.ball.VY = -12, 0

	res := g.Step(core.NewInputFrame())
	if g.ball.VX != 12 {
		t.Errorf("VX should flip exactly once on the crossing tick, got %v", g.ball.VX)
	}
	if !hasEvent(res, core.EventWallHit) {
		t.Error("Wall crossing should emit a wall hit event")
	}

	// Next tick: back inside, no second flip
	res = g.Step(core.NewInputFrame())
	if g.ball.VX != 12 {
		t.Errorf("VX should not flip again, got %v", g.ball.VX)
	}
	if hasEvent(res, core.EventWallHit) {
		t.Error("No wall event expected once the ball is back inside")
	}
}

func TestBottomCenterBrickScenario(t *testing.T) {
	g := newTestGame(1)

	// Level 0 is the reverse pyramid: 16 bricks, a single centered
	// brick on the bottom row.
	if g.level.Remaining != 16 {
		t.Fatalf("Pyramid should open with 16 bricks, got %d", g.level.Remaining)
	}
	bottom := &g.level.Bricks[3][0]

	// Vertical ball straight into the bottom brick from below
	g.state = StateRunning
	g.ball.X = bottom.X + bottom.W/2
	g.ball.Y = bottom.Y + bottom.H + g.ball.R + 2
	g.ball.VX, g.ball.VY = 0, -3

	res := g.Step(core.NewInputFrame())

	if bottom.Alive {
		t.Error("The bottom-center brick should clear")
	}
	if g.score != 10 {
		t.Errorf("Score should be 10, got %d", g.score)
	}
	if g.level.Remaining != 15 {
		t.Errorf("Remaining should be 15, got %d", g.level.Remaining)
	}
	if !hasEvent(res, core.EventBrickHit) {
		t.Error("Brick clear should emit a brick hit event")
	}
	if g.ball.VY != 3 {
		t.Errorf("Ball should reflect downward, VY=%v", g.ball.VY)
	}
}

// clearAllBut kills every brick except one target, keeping the running
// counter consistent, and returns the survivor.
func clearAllBut(g *Game, row, col int) *Brick {
	for r := range g.level.Bricks {
		for c := range g.level.Bricks[r] {
			if r == row && c == col {
				continue
			}
			if g.level.Bricks[r][c].Alive {
				g.level.Bricks[r][c].Alive = false
				g.level.Remaining--
			}
		}
	}
	return &g.level.Bricks[row][col]
}

// smashBrick drives the ball straight into the given brick from below.
func smashBrick(g *Game, brick *Brick) core.StepResult {
	g.state = StateRunning
	g.ball.X = brick.X + brick.W/2
	g.ball.Y = brick.Y + brick.H + g.ball.R + 2
	g.ball.VX, g.ball.VY = 0, -3
	return g.Step(core.NewInputFrame())
}

func TestLevelAdvance(t *testing.T) {
	g := newTestGame(1)

	last := clearAllBut(g, 0, 3)
	res := smashBrick(g, last)

	if g.levelIndex != 1 {
		t.Errorf("Clearing the field should advance to level 1, got %d", g.levelIndex)
	}
	if g.state != StateDocked {
		t.Errorf("Ball should re-dock for the next level, got %s", g.state)
	}
	// Level 1 is the 4x8 grid
	if g.level.Remaining != 32 {
		t.Errorf("New level should reset remaining to 32, got %d", g.level.Remaining)
	}
	if !hasEvent(res, core.EventLevelCleared) {
		t.Error("Level clear should emit an event")
	}
	if g.score != 10 {
		t.Errorf("Score should carry across levels, got %d", g.score)
	}
}

func TestWinOnLastLevel(t *testing.T) {
	g := newTestGame(1)
	g.levelIndex = len(g.cfg.Layouts) - 1
	g.loadLevel(g.levelIndex)

	last := clearAllBut(g, 0, 0)
	res := smashBrick(g, last)

	if g.state != StateWon {
		t.Fatalf("Clearing the final level should win, got %s", g.state)
	}
	if !hasEvent(res, core.EventWin) {
		t.Error("Winning should emit a win event")
	}

	// Terminal state is frozen: no further score changes
	score := g.score
	serve := core.NewInputFrame()
	serve.Set(core.ActionServe)
	for i := 0; i < 10; i++ {
		g.Step(serve)
	}
	if g.score != score || g.state != StateWon {
		t.Error("Won state should freeze until an explicit reset")
	}
}

func TestLifeLossRedocks(t *testing.T) {
	g := newTestGame(1)
	g.state = StateRunning
	g.ball.X, g.ball.Y = 300, g.fieldH+20
	g.ball.VX, g.ball.VY = 0, 5

	res := g.Step(core.NewInputFrame())

	if g.lives != 2 {
		t.Errorf("Bottom-out should cost a life, got %d", g.lives)
	}
	if g.state != StateDocked {
		t.Errorf("With lives left the ball re-docks, got %s", g.state)
	}
	if !hasEvent(res, core.EventLifeLost) {
		t.Error("Bottom-out should emit a life lost event")
	}

	// Serve is refused during the delay countdown
	delay := g.serveDelay
	if delay != g.cfg.Gameplay.ServeDelayTicks {
		t.Fatalf("Serve delay should be %d, got %d", g.cfg.Gameplay.ServeDelayTicks, delay)
	}
	serve := core.NewInputFrame()
	serve.Set(core.ActionServe)
	g.Step(serve)
	if g.state != StateDocked {
		t.Error("Serve during the delay should be ignored")
	}

	// Drain the countdown, then the serve goes through
	for g.serveDelay > 0 {
		g.Step(core.NewInputFrame())
	}
	g.Step(serve)
	if g.state != StateRunning {
		t.Errorf("Serve after the delay should launch, got %s", g.state)
	}
}

func TestGameOverOnLastLife(t *testing.T) {
	g := newTestGame(1)
	g.lives = 1
	g.state = StateRunning
	g.ball.X, g.ball.Y = 300, g.fieldH+20
	g.ball.VX, g.ball.VY = 0, 5

	res := g.Step(core.NewInputFrame())

	if g.state != StateGameOver {
		t.Fatalf("Losing the last life should end the game, got %s", g.state)
	}
	if g.lives != 0 {
		t.Errorf("Lives should bottom out at 0, got %d", g.lives)
	}
	if !res.State.GameOver {
		t.Error("StepResult should report game over")
	}
	if !hasEvent(res, core.EventGameOver) {
		t.Error("Game over should emit an event")
	}
	// The ball must not re-serve or re-dock
	if g.ball.Y <= g.fieldH {
		t.Error("Ball should stay past the bottom after game over")
	}
}

func TestScoreMonotoneMultipleOfTen(t *testing.T) {
	g := newTestGame(99)

	serve := core.NewInputFrame()
	serve.Set(core.ActionServe)
	g.Step(serve)

	prev := 0
	for i := 0; i < 2000; i++ {
		in := core.NewInputFrame()
		// Chase the ball to keep rallies alive
		in.SetPointer(g.ball.X)
		res := g.Step(in)

		if res.State.Score < prev {
			t.Fatalf("Score decreased from %d to %d at tick %d", prev, res.State.Score, i)
		}
		if res.State.Score%10 != 0 {
			t.Fatalf("Score %d is not a multiple of 10", res.State.Score)
		}
		prev = res.State.Score
		if res.State.GameOver {
			break
		}
		if g.state == StateDocked && g.serveDelay == 0 {
			g.Step(serve)
		}
	}
	if prev == 0 {
		t.Error("A paddle-chasing run should clear at least one brick")
	}
}

func TestResetRoundTrip(t *testing.T) {
	g := newTestGame(5)

	// Ruin the session, then die
	g.score = 230
	g.lives = 1
	g.levelIndex = 1
	g.state = StateRunning
	g.ball.Y = g.fieldH + 20
	g.ball.VY = 5
	g.Step(core.NewInputFrame())
	if g.state != StateGameOver {
		t.Fatal("Setup should end in game over")
	}

	restart := core.NewInputFrame()
	restart.Set(core.ActionRestart)
	g.Step(restart)

	if g.state != StateDocked {
		t.Errorf("Reset should dock the ball, got %s", g.state)
	}
	if g.score != 0 || g.lives != 3 || g.levelIndex != 0 {
		t.Errorf("Reset should restore 0/3/0, got %d/%d/%d", g.score, g.lives, g.levelIndex)
	}
	if g.level.Remaining != 16 {
		t.Errorf("Reset should rebuild a fresh brick set, remaining=%d", g.level.Remaining)
	}
}

func TestPauseFreezesPhysics(t *testing.T) {
	g := newTestGame(1)

	serve := core.NewInputFrame()
	serve.Set(core.ActionServe)
	g.Step(serve)

	pause := core.NewInputFrame()
	pause.Set(core.ActionPause)
	g.Step(pause)
	if g.state != StatePaused {
		t.Fatalf("Pause should freeze the game, got %s", g.state)
	}

	x, y := g.ball.X, g.ball.Y
	for i := 0; i < 10; i++ {
		g.Step(core.NewInputFrame())
	}
	if g.ball.X != x || g.ball.Y != y {
		t.Error("Ball must not move while paused")
	}

	g.Step(pause)
	if g.state != StateRunning {
		t.Errorf("Unpause should resume, got %s", g.state)
	}
}

func TestEndlessWrapsInsteadOfWinning(t *testing.T) {
	g := NewEndless(config.Default())
	g.Reset(testRuntime(1))

	g.levelIndex = len(g.cfg.Layouts) - 1
	g.loadLevel(g.levelIndex)
	last := clearAllBut(g, 0, 0)
	smashBrick(g, last)

	if g.state == StateWon {
		t.Fatal("Endless mode should never reach the won state")
	}
	if g.levelIndex != 0 || g.endlessCycle != 1 {
		t.Errorf("Endless should wrap to level 0 cycle 1, got level %d cycle %d",
			g.levelIndex, g.endlessCycle)
	}
	// Difficulty keeps rising across the wrap
	if g.cfg.ServeSpeedForLevel(g.levelIndex, g.endlessCycle) <= g.cfg.Physics.ServeSpeedBase {
		t.Error("Wrapped cycle should serve faster than the opening level")
	}
}

type fakeScores struct {
	best    int
	records []int
}

func (f *fakeScores) Best() int { return f.best }
func (f *fakeScores) Record(score int) {
	f.records = append(f.records, score)
	if score > f.best {
		f.best = score
	}
}

func TestHighScoreTracking(t *testing.T) {
	sk := &fakeScores{best: 50}
	g := New(config.Default())
	g.SetScoreKeeper(sk)
	g.Reset(testRuntime(1))

	if g.highScore != 50 {
		t.Errorf("Reset should load the stored best, got %d", g.highScore)
	}

	// Clearing bricks below the best records nothing
	g.score = 10
	g.updateHighScore()
	if len(sk.records) != 0 {
		t.Error("Scores below the best should not be recorded")
	}

	// Exceeding it writes through
	g.score = 60
	g.updateHighScore()
	if g.highScore != 60 || sk.best != 60 {
		t.Errorf("New best should persist, highScore=%d stored=%d", g.highScore, sk.best)
	}
}

func TestGameDeterminism(t *testing.T) {
	inputs := make([]core.InputFrame, 500)
	for i := range inputs {
		inputs[i] = core.NewInputFrame()
		switch {
		case i == 10:
			inputs[i].Set(core.ActionServe)
		case i > 10 && i%5 < 3:
			inputs[i].Set(core.ActionRight)
		case i > 10:
			inputs[i].Set(core.ActionLeft)
		}
	}

	run := func() Snapshot {
		g := newTestGame(12345)
		for _, in := range inputs {
			if g.Step(in).State.GameOver {
				break
			}
		}
		return g.Snapshot()
	}

	snap1 := run()
	snap2 := run()

	if snap1.Hash() != snap2.Hash() {
		t.Errorf("Same seed and inputs should replay identically: %d vs %d",
			snap1.Hash(), snap2.Hash())
	}
	if snap1.BallX != snap2.BallX || snap1.BallY != snap2.BallY {
		t.Error("Ball positions diverged between identical runs")
	}
	if snap1.Score != snap2.Score {
		t.Errorf("Scores diverged: %d vs %d", snap1.Score, snap2.Score)
	}
}

func TestSnapshotReflectsState(t *testing.T) {
	g := newTestGame(3)

	serve := core.NewInputFrame()
	serve.Set(core.ActionServe)
	g.Step(serve)
	for i := 0; i < 30; i++ {
		g.Step(core.NewInputFrame())
	}

	snap := g.Snapshot()
	if snap.Tick != uint64(g.tickCount) {
		t.Errorf("Snapshot tick %d != game tick %d", snap.Tick, g.tickCount)
	}
	if snap.State != g.state {
		t.Errorf("Snapshot state %q != game state %q", snap.State, g.state)
	}
	if snap.Remaining != g.level.Remaining {
		t.Errorf("Snapshot remaining %d != level remaining %d", snap.Remaining, g.level.Remaining)
	}
	if len(snap.Bricks) != 16 {
		t.Errorf("Pyramid snapshot should list 16 bricks, got %d", len(snap.Bricks))
	}
	if snap.FieldW != g.fieldW || snap.FieldH != g.fieldH {
		t.Error("Snapshot should carry the logical field size")
	}
}

func TestGameRender(t *testing.T) {
	g := newTestGame(1)

	screen := core.NewScreen(80, 24)
	g.Render(screen)

	str := screen.String()
	if !strings.Contains(str, "Score: 0") {
		t.Error("HUD should show the score")
	}
	if !strings.Contains(str, "Lives: 3") {
		t.Error("HUD should show the lives")
	}
	if !strings.ContainsRune(str, PaddleChar) {
		t.Error("Paddle should be drawn")
	}
	if !strings.ContainsRune(str, BrickChar) {
		t.Error("Bricks should be drawn")
	}
	if !strings.ContainsRune(str, BallChar) {
		t.Error("Ball should be drawn")
	}
}

func TestRenderTooSmallScreen(t *testing.T) {
	g := New(config.Default())
	g.Reset(core.RuntimeConfig{ScreenW: 20, ScreenH: 8, TickRate: 60, Seed: 1})

	screen := core.NewScreen(20, 8)
	g.Render(screen)

	if !strings.Contains(screen.String(), "too small") {
		t.Error("Undersized screens should get a hint instead of the field")
	}
}
