package breakout

import "github.com/mpetrenko/breakout/internal/core"

// repositionEpsilon is the gap left between the ball and a struck brick
// edge so the same brick cannot re-trigger on the next tick.
const repositionEpsilon = 0.1

// Ball is the ball state in logical field units.
type Ball struct {
	X, Y   float64 // Position (center)
	VX, VY float64 // Velocity per tick
	R      float64 // Radius
}

// Move updates ball position by velocity.
func (b *Ball) Move() {
	b.X += b.VX
	b.Y += b.VY
}

// BounceX reverses horizontal velocity.
func (b *Ball) BounceX() {
	b.VX = -b.VX
}

// BounceY reverses vertical velocity.
func (b *Ball) BounceY() {
	b.VY = -b.VY
}

// Bounds returns the ball's bounding square (center +/- radius).
func (b *Ball) Bounds() core.RectF {
	return core.NewRectF(b.X-b.R, b.Y-b.R, 2*b.R, 2*b.R)
}

// Paddle is the player's paddle: fixed Y, bounded horizontal motion.
type Paddle struct {
	X      float64 // Left edge
	Y      float64 // Top edge, fixed for the session
	Width  float64
	Height float64
	Speed  float64 // Horizontal units per tick from key intents
	VX     float64
}

// SetVelocity sets horizontal velocity from a discrete key intent.
// dir is -1 (left), 0 (stop), or +1 (right).
func (p *Paddle) SetVelocity(dir int) {
	p.VX = float64(dir) * p.Speed
}

// SetCenter positions the paddle so its center sits at targetCenterX,
// clamped into the field. Used for absolute pointer intents.
func (p *Paddle) SetCenter(targetCenterX, fieldW float64) {
	p.X = core.ClampF(targetCenterX-p.Width/2, 0, fieldW-p.Width)
}

// Move advances the paddle by its velocity and clamps into the field.
func (p *Paddle) Move(fieldW float64) {
	p.X = core.ClampF(p.X+p.VX, 0, fieldW-p.Width)
}

// Clamp re-applies the position bound, for when the field or the paddle
// width changes mid-session.
func (p *Paddle) Clamp(fieldW float64) {
	p.X = core.ClampF(p.X, 0, fieldW-p.Width)
}

// CenterX returns the paddle's horizontal center.
func (p *Paddle) CenterX() float64 {
	return p.X + p.Width/2
}

// Bounds returns the paddle rectangle.
func (p *Paddle) Bounds() core.RectF {
	return core.NewRectF(p.X, p.Y, p.Width, p.Height)
}

// ImpactSide identifies which rectangle edge the ball approached from.
type ImpactSide int

const (
	SideNone ImpactSide = iota
	SideLeft
	SideRight
	SideTop
	SideBottom
)

// Overlaps is the broad-phase test: true iff the ball's bounding square
// intersects the rectangle. No exact circle/corner distance check; the
// square approximation is part of the game's tuned feel.
func Overlaps(b *Ball, rect core.RectF) bool {
	return b.Bounds().Intersects(rect)
}

// InferImpactSides determines which edges of rect the ball approached
// from, using its position before this tick's movement. A corner hit
// yields both a horizontal and a vertical side. When the previous
// position already overlapped on both axes (fast ball or corner clip)
// both results are SideNone and the caller falls back to a vertical
// reflection.
func InferImpactSides(prevX, prevY, r float64, rect core.RectF) (horiz, vert ImpactSide) {
	if prevX+r <= rect.X {
		horiz = SideLeft
	} else if prevX-r >= rect.Right() {
		horiz = SideRight
	}
	if prevY+r <= rect.Y {
		vert = SideTop
	} else if prevY-r >= rect.Bottom() {
		vert = SideBottom
	}
	return horiz, vert
}

// CollideWalls reflects the ball off the side and top walls. Reflections
// are independent: a fast ball in a corner flips both axes in one tick.
// Positions are not clamped; the reflected velocity brings the ball back
// inside on subsequent ticks. Returns whether any wall was hit.
func CollideWalls(b *Ball, fieldW float64) bool {
	hit := false
	if b.X-b.R < 0 || b.X+b.R > fieldW {
		b.BounceX()
		hit = true
	}
	if b.Y-b.R < 0 {
		b.BounceY()
		hit = true
	}
	return hit
}

// BottomOut reports whether the ball has fallen past the bottom boundary.
func BottomOut(b *Ball, fieldH float64) bool {
	return b.Y-b.R > fieldH
}

// CollidePaddle checks for and resolves a ball/paddle contact. The ball
// must be moving downward, vertically overlapping the paddle, with its
// center over the paddle's horizontal extent. The rebound angle is a
// linear function of where on the paddle the ball landed: dead center
// goes straight up, the edges give dx of +/- reboundFactor.
func CollidePaddle(b *Ball, p *Paddle, reboundFactor float64) bool {
	if b.VY <= 0 {
		return false
	}
	if b.Y+b.R < p.Y || b.Y-b.R > p.Y+p.Height {
		return false
	}
	if b.X < p.X || b.X > p.X+p.Width {
		return false
	}

	hitOffset := (b.X - p.CenterX()) / (p.Width / 2)
	b.VY = -b.VY
	b.VX = reboundFactor * hitOffset
	return true
}

// ResolveBrickHit scans the brick field in row-major order and resolves
// the first alive brick the ball overlaps: the impact side is inferred
// from the ball's pre-tick position, the matching velocity components
// are reflected, the ball is repositioned just outside the struck edge,
// and the brick is cleared. At most one brick is resolved per tick even
// if the ball geometrically overlaps several; the scan stops at the
// first hit. Returns the cleared brick, or nil if nothing was struck.
func ResolveBrickHit(b *Ball, prevX, prevY float64, lv *Level) *Brick {
	for row := range lv.Bricks {
		for col := range lv.Bricks[row] {
			brick := &lv.Bricks[row][col]
			if !brick.Alive || !Overlaps(b, brick.Bounds()) {
				continue
			}

			rect := brick.Bounds()
			horiz, vert := InferImpactSides(prevX, prevY, b.R, rect)
			if horiz == SideNone && vert == SideNone {
				// Already overlapping on both axes before the tick:
				// reflect the vertical component only.
				b.BounceY()
				if b.VY < 0 {
					b.Y = rect.Y - b.R - repositionEpsilon
				} else {
					b.Y = rect.Bottom() + b.R + repositionEpsilon
				}
			} else {
				switch horiz {
				case SideLeft:
					b.BounceX()
					b.X = rect.X - b.R - repositionEpsilon
				case SideRight:
					b.BounceX()
					b.X = rect.Right() + b.R + repositionEpsilon
				}
				switch vert {
				case SideTop:
					b.BounceY()
					b.Y = rect.Y - b.R - repositionEpsilon
				case SideBottom:
					b.BounceY()
					b.Y = rect.Bottom() + b.R + repositionEpsilon
				}
			}

			brick.Alive = false
			lv.Remaining--
			return brick
		}
	}
	return nil
}
