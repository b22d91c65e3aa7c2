package breakout

import (
	"testing"

	"github.com/mpetrenko/breakout/internal/config"
	"github.com/mpetrenko/breakout/internal/core"
)

func TestInferImpactSides(t *testing.T) {
	rect := core.NewRectF(100, 100, 40, 15)
	r := 8.0

	tests := []struct {
		name         string
		prevX, prevY float64
		horiz, vert  ImpactSide
	}{
		{"from left", 90, 107, SideLeft, SideNone},
		{"from right", 150, 107, SideRight, SideNone},
		{"from top", 120, 90, SideNone, SideTop},
		{"from bottom", 120, 125, SideNone, SideBottom},
		{"top-left corner", 90, 90, SideLeft, SideTop},
		{"bottom-right corner", 150, 125, SideRight, SideBottom},
		{"already overlapping both axes", 110, 110, SideNone, SideNone},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			horiz, vert := InferImpactSides(tc.prevX, tc.prevY, r, rect)
			if horiz != tc.horiz || vert != tc.vert {
				t.Errorf("InferImpactSides(%v, %v) = (%v, %v), expected (%v, %v)",
					tc.prevX, tc.prevY, horiz, vert, tc.horiz, tc.vert)
			}
		})
	}
}

func TestOverlapsIsBoundingSquare(t *testing.T) {
	rect := core.NewRectF(100, 100, 40, 15)

	// Ball center diagonal from the corner: a true circle test would
	// miss, the bounding-square approximation hits. That approximation
	// is part of the contract.
	b := &Ball{X: 94, Y: 94, R: 8}
	if !Overlaps(b, rect) {
		t.Error("Bounding square should overlap at a diagonal corner graze")
	}

	b2 := &Ball{X: 80, Y: 107, R: 8}
	if Overlaps(b2, rect) {
		t.Error("Ball well clear of the rect should not overlap")
	}
}

func TestCollideWallsReflectsWithoutClamping(t *testing.T) {
	b := &Ball{X: -2, Y: 200, VX: -5, VY: 1, R: 8}

	if !CollideWalls(b, 600) {
		t.Fatal("Ball past the left wall should register a hit")
	}
	if b.VX != 5 {
		t.Errorf("VX should flip to 5, got %v", b.VX)
	}
	if b.X != -2 {
		t.Errorf("Position must not be clamped, got X=%v", b.X)
	}
}

func TestCollideWallsCorner(t *testing.T) {
	// Fast ball in the top-right corner: both axes flip in one call.
	b := &Ball{X: 598, Y: 4, VX: 6, VY: -6, R: 8}

	if !CollideWalls(b, 600) {
		t.Fatal("Corner contact should register a hit")
	}
	if b.VX != -6 || b.VY != 6 {
		t.Errorf("Both components should flip, got VX=%v VY=%v", b.VX, b.VY)
	}
}

func TestBottomOut(t *testing.T) {
	fieldH := 400.0

	b := &Ball{X: 300, Y: 407, R: 8}
	if BottomOut(b, fieldH) {
		t.Error("Ball partially past the bottom should not count as out")
	}

	b.Y = 409 // y - r = 401 > 400
	if !BottomOut(b, fieldH) {
		t.Error("Ball fully past the bottom should count as out")
	}
}

func TestCollidePaddleRequiresDownwardMotion(t *testing.T) {
	p := &Paddle{X: 100, Y: 380, Width: 80, Height: 10}
	b := &Ball{X: 140, Y: 378, VX: 1, VY: -3, R: 8}

	if CollidePaddle(b, p, 4) {
		t.Error("Ball moving upward should never rebound off the paddle")
	}
}

func TestPaddleReboundShaping(t *testing.T) {
	tests := []struct {
		name       string
		ballX      float64
		expectedVX float64
	}{
		{"dead center goes straight up", 140, 0},
		{"left edge gives -4", 100, -4},
		{"right edge gives +4", 180, 4},
		{"halfway right gives +2", 160, 2},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			p := &Paddle{X: 100, Y: 380, Width: 80, Height: 10}
			b := &Ball{X: tc.ballX, Y: 378, VX: 1, VY: 3, R: 8}

			if !CollidePaddle(b, p, 4) {
				t.Fatal("Contact should register")
			}
			if b.VY != -3 {
				t.Errorf("VY should flip to -3, got %v", b.VY)
			}
			if b.VX != tc.expectedVX {
				t.Errorf("VX = %v, expected %v", b.VX, tc.expectedVX)
			}
		})
	}
}

func TestPaddleClamping(t *testing.T) {
	p := &Paddle{X: 0, Y: 380, Width: 80, Height: 10, Speed: 7}

	// Hammer left for a while: never below 0
	p.SetVelocity(-1)
	for i := 0; i < 100; i++ {
		p.Move(600)
		if p.X < 0 {
			t.Fatalf("Paddle escaped left bound: X=%v", p.X)
		}
	}

	// Hammer right: never past fieldW - width
	p.SetVelocity(1)
	for i := 0; i < 200; i++ {
		p.Move(600)
		if p.X > 600-p.Width {
			t.Fatalf("Paddle escaped right bound: X=%v", p.X)
		}
	}

	// Pointer intent clamps too
	p.SetCenter(-50, 600)
	if p.X != 0 {
		t.Errorf("SetCenter past left edge should clamp to 0, got %v", p.X)
	}
	p.SetCenter(700, 600)
	if p.X != 600-p.Width {
		t.Errorf("SetCenter past right edge should clamp, got %v", p.X)
	}
	p.SetCenter(300, 600)
	if p.CenterX() != 300 {
		t.Errorf("SetCenter(300) should center the paddle, center=%v", p.CenterX())
	}
}

// singleRowLevel builds a 1xN grid level on a 600-wide field.
func singleRowLevel(t *testing.T, cols int) *Level {
	t.Helper()
	lv, _ := Generate(
		config.LayoutConfig{Kind: LayoutGrid, Rows: 1, Cols: cols},
		config.Default().Bricks,
		600,
	)
	return lv
}

func TestResolveBrickHitOnePerTick(t *testing.T) {
	lv := singleRowLevel(t, 2)

	// Ball bounding box straddles the gap between both bricks.
	gapX := lv.Bricks[0][1].X - 2
	b := &Ball{X: gapX, Y: lv.Bricks[0][0].Y + 7, VX: 0, VY: 3, R: 8}

	brick := ResolveBrickHit(b, b.X, b.Y, lv)
	if brick == nil {
		t.Fatal("Overlapping ball should clear a brick")
	}
	if lv.Remaining != 1 {
		t.Errorf("Exactly one brick should clear per tick, remaining=%d", lv.Remaining)
	}
	if lv.Bricks[0][0].Alive || !lv.Bricks[0][1].Alive {
		t.Error("Row-major scan should clear the first brick and leave the second")
	}
}

func TestResolveBrickHitRepositionsOutsideEdge(t *testing.T) {
	lv := singleRowLevel(t, 1)
	rect := lv.Bricks[0][0].Bounds()

	// Approach from below, moving up.
	prevY := rect.Bottom() + 15
	b := &Ball{X: rect.CenterX(), Y: rect.Bottom() - 1, VX: 0, VY: -8, R: 8}

	if ResolveBrickHit(b, b.X, prevY, lv) == nil {
		t.Fatal("Ball should strike the brick")
	}
	if b.VY != 8 {
		t.Errorf("Vertical velocity should reflect, got %v", b.VY)
	}
	want := rect.Bottom() + b.R + repositionEpsilon
	if b.Y != want {
		t.Errorf("Ball should sit just below the brick: Y=%v, expected %v", b.Y, want)
	}
	if Overlaps(b, rect) {
		t.Error("Repositioned ball must not still overlap the cleared brick")
	}
}

func TestResolveBrickHitCorner(t *testing.T) {
	lv := singleRowLevel(t, 1)
	rect := lv.Bricks[0][0].Bounds()

	// Approach diagonally from the bottom-left corner.
	prevX := rect.X - 10
	prevY := rect.Bottom() + 10
	b := &Ball{X: rect.X + 2, Y: rect.Bottom() - 2, VX: 6, VY: -6, R: 8}

	if ResolveBrickHit(b, prevX, prevY, lv) == nil {
		t.Fatal("Corner hit should strike the brick")
	}
	if b.VX != -6 || b.VY != 6 {
		t.Errorf("Corner hit should reflect both components, got VX=%v VY=%v", b.VX, b.VY)
	}
}

func TestResolveBrickHitFallbackVerticalOnly(t *testing.T) {
	lv := singleRowLevel(t, 1)
	rect := lv.Bricks[0][0].Bounds()

	// Previous position already overlapped on both axes (fast-ball
	// clip): only the vertical component reflects.
	cx, cy := rect.CenterX(), rect.CenterY()
	b := &Ball{X: cx, Y: cy, VX: 2, VY: 3, R: 8}

	if ResolveBrickHit(b, cx, cy, lv) == nil {
		t.Fatal("Overlapping ball should strike the brick")
	}
	if b.VX != 2 {
		t.Errorf("Horizontal velocity should be untouched in the fallback, got %v", b.VX)
	}
	if b.VY != -3 {
		t.Errorf("Vertical velocity should reflect, got %v", b.VY)
	}
	if b.Y != rect.Y-b.R-repositionEpsilon {
		t.Errorf("Upward-moving ball should sit above the brick, Y=%v", b.Y)
	}
}

func TestClearedBrickStaysInert(t *testing.T) {
	lv := singleRowLevel(t, 1)
	rect := lv.Bricks[0][0].Bounds()

	b := &Ball{X: rect.CenterX(), Y: rect.Bottom() - 1, VX: 0, VY: -5, R: 8}
	if ResolveBrickHit(b, b.X, rect.Bottom()+12, lv) == nil {
		t.Fatal("First pass should clear the brick")
	}

	// Force the ball back into the cleared brick: nothing happens.
	b.X, b.Y = rect.CenterX(), rect.CenterY()
	if ResolveBrickHit(b, b.X, b.Y, lv) != nil {
		t.Error("Cleared brick must never be reconsidered")
	}
	if lv.Remaining != 0 {
		t.Errorf("Remaining should stay 0, got %d", lv.Remaining)
	}
}
