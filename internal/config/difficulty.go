package config

// PaddleWidthForLevel returns the paddle width for a zero-based level
// index. The paddle shrinks per level but never below MinWidth.
func (c *BreakoutConfig) PaddleWidthForLevel(level int) float64 {
	w := c.Paddle.Width - float64(level)*c.Paddle.ShrinkPerLevel
	if w < c.Paddle.MinWidth {
		w = c.Paddle.MinWidth
	}
	return w
}

// ServeSpeedForLevel returns the serve speed magnitude for a zero-based
// level index. In endless mode the cycle count adds a further bump.
func (c *BreakoutConfig) ServeSpeedForLevel(level, cycle int) float64 {
	return c.Physics.ServeSpeedBase +
		float64(level)*c.Physics.ServeSpeedPerLevel +
		float64(cycle)*c.Difficulty.EndlessSpeedPerCycle
}
