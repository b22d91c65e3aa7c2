// Package breakout implements a Breakout-style brick breaker: per-tick
// simulation, paddle/wall/brick collision resolution, and the level
// lifecycle state machine. All coordinates are logical field units; the
// platform layer maps them onto terminal cells.
package breakout

import (
	"github.com/mpetrenko/breakout/internal/config"
	"github.com/mpetrenko/breakout/internal/core"
)

// Layout kinds accepted in configuration.
const (
	LayoutPyramid = "pyramid"
	LayoutGrid    = "grid"
	LayoutHollow  = "hollow"
)

// Brick is a single destructible block. A cleared brick stays in the
// grid but is inert for the rest of the level.
type Brick struct {
	X, Y, W, H float64
	Alive      bool
}

// Bounds returns the brick rectangle.
func (b *Brick) Bounds() core.RectF {
	return core.NewRectF(b.X, b.Y, b.W, b.H)
}

// Level is a row-major brick grid plus a running count of alive bricks.
// The level is cleared exactly when Remaining reaches zero.
type Level struct {
	Bricks    [][]Brick
	Remaining int
}

// CountAlive recounts the alive bricks. Remaining tracks this as a
// running counter; the recount exists for tests and snapshots.
func (l *Level) CountAlive() int {
	count := 0
	for _, row := range l.Bricks {
		for _, b := range row {
			if b.Alive {
				count++
			}
		}
	}
	return count
}

// rowSpec is the abstract shape of one brick row before layout: how many
// slots it has and which are alive.
type rowSpec struct {
	alive []bool
}

// Generate builds a level from a layout config and normalizes it into
// the field. Brick width is derived from the field width and the widest
// row; if that would push bricks below the configured minimum width the
// field grows instead. The returned width is the (possibly grown) field
// width. The fit pass only positions bricks, it never changes liveness.
func Generate(layout config.LayoutConfig, bricks config.BrickConfig, fieldW float64) (*Level, float64) {
	var rows []rowSpec
	switch layout.Kind {
	case LayoutGrid:
		rows = gridRows(layout.Rows, layout.Cols)
	case LayoutHollow:
		rows = hollowRows(layout.Rows, layout.Cols)
	default:
		rows = pyramidRows(layout.MaxCols)
	}
	return normalize(rows, bricks, fieldW)
}

// pyramidRows builds a reverse pyramid: the top row is the widest and
// each following row loses one brick on each side. maxCols is forced
// odd so every row stays centered.
func pyramidRows(maxCols int) []rowSpec {
	if maxCols < 1 {
		maxCols = 1
	}
	if maxCols%2 == 0 {
		maxCols--
	}

	rowCount := (maxCols + 1) / 2
	rows := make([]rowSpec, rowCount)
	for r := 0; r < rowCount; r++ {
		n := maxCols - 2*r
		alive := make([]bool, n)
		for i := range alive {
			alive[i] = true
		}
		rows[r] = rowSpec{alive: alive}
	}
	return rows
}

// gridRows builds a full rows x cols block, all alive.
func gridRows(rowCount, cols int) []rowSpec {
	if rowCount < 1 {
		rowCount = 1
	}
	if cols < 1 {
		cols = 1
	}

	rows := make([]rowSpec, rowCount)
	for r := range rows {
		alive := make([]bool, cols)
		for i := range alive {
			alive[i] = true
		}
		rows[r] = rowSpec{alive: alive}
	}
	return rows
}

// hollowRows builds a rows x cols rectangle where only the border is
// alive. Interior slots keep their grid position but start cleared, so
// they contribute nothing to the remaining count.
func hollowRows(rowCount, cols int) []rowSpec {
	if rowCount < 1 {
		rowCount = 1
	}
	if cols < 1 {
		cols = 1
	}

	rows := make([]rowSpec, rowCount)
	for r := range rows {
		alive := make([]bool, cols)
		for c := range alive {
			alive[c] = r == 0 || r == rowCount-1 || c == 0 || c == cols-1
		}
		rows[r] = rowSpec{alive: alive}
	}
	return rows
}

// normalize assigns positions and sizes to the abstract rows. Each row
// is centered horizontally; rows stack below the HUD top margin with
// fixed padding between bricks.
func normalize(rows []rowSpec, cfg config.BrickConfig, fieldW float64) (*Level, float64) {
	widest := 0
	for _, row := range rows {
		if len(row.alive) > widest {
			widest = len(row.alive)
		}
	}
	if widest == 0 {
		return &Level{}, fieldW
	}

	// Brick width from the widest row; grow the field rather than
	// shrinking bricks below the minimum viable width.
	brickW := (fieldW - cfg.Padding*float64(widest+1)) / float64(widest)
	if brickW < cfg.MinWidth {
		brickW = cfg.MinWidth
		fieldW = brickW*float64(widest) + cfg.Padding*float64(widest+1)
	}

	lv := &Level{Bricks: make([][]Brick, len(rows))}
	for r, row := range rows {
		n := len(row.alive)
		rowWidth := float64(n)*brickW + float64(n-1)*cfg.Padding
		startX := (fieldW - rowWidth) / 2
		y := cfg.TopMargin + float64(r)*(cfg.Height+cfg.Padding)

		lv.Bricks[r] = make([]Brick, n)
		for c := 0; c < n; c++ {
			lv.Bricks[r][c] = Brick{
				X:     startX + float64(c)*(brickW+cfg.Padding),
				Y:     y,
				W:     brickW,
				H:     cfg.Height,
				Alive: row.alive[c],
			}
			if row.alive[c] {
				lv.Remaining++
			}
		}
	}
	return lv, fieldW
}
