// Package config provides YAML-based configuration loading and
// difficulty presets for the breakout engine.
package config

// BreakoutConfig contains all tunable parameters for the game.
type BreakoutConfig struct {
	Field      FieldConfig      `yaml:"field"`
	Physics    PhysicsConfig    `yaml:"physics"`
	Paddle     PaddleConfig     `yaml:"paddle"`
	Bricks     BrickConfig      `yaml:"bricks"`
	Gameplay   GameplayConfig   `yaml:"gameplay"`
	Layouts    []LayoutConfig   `yaml:"layouts"`
	Difficulty DifficultyConfig `yaml:"difficulty"`
}

// FieldConfig defines the logical playfield dimensions.
// The simulation runs in these units regardless of terminal size.
type FieldConfig struct {
	Width  float64 `yaml:"width"`
	Height float64 `yaml:"height"`
}

// PhysicsConfig defines per-tick motion parameters in logical units.
type PhysicsConfig struct {
	BallRadius         float64 `yaml:"ball_radius"`
	PaddleSpeed        float64 `yaml:"paddle_speed"`          // Units per tick from key intents
	ServeSpeedBase     float64 `yaml:"serve_speed_base"`      // Base serve speed at the first level
	ServeSpeedPerLevel float64 `yaml:"serve_speed_per_level"` // Added per level index
	ReboundFactor      float64 `yaml:"rebound_factor"`        // Max horizontal speed off the paddle edge
}

// PaddleConfig defines paddle geometry and per-level shrink.
type PaddleConfig struct {
	Width          float64 `yaml:"width"`
	Height         float64 `yaml:"height"`
	MinWidth       float64 `yaml:"min_width"`
	ShrinkPerLevel float64 `yaml:"shrink_per_level"`
	BottomOffset   float64 `yaml:"bottom_offset"` // Distance of paddle top from the field bottom
}

// BrickConfig defines brick geometry used by the layout normalizer.
type BrickConfig struct {
	Height    float64 `yaml:"height"`
	Padding   float64 `yaml:"padding"`    // Gap between adjacent bricks
	TopMargin float64 `yaml:"top_margin"` // Space reserved above the top row for the HUD
	MinWidth  float64 `yaml:"min_width"`  // Field grows instead of shrinking bricks below this
	Points    int     `yaml:"points"`     // Score awarded per cleared brick
}

// GameplayConfig defines session rules.
type GameplayConfig struct {
	Lives           int `yaml:"lives"`
	ServeDelayTicks int `yaml:"serve_delay_ticks"` // Countdown before the ball launches
}

// LayoutConfig selects and parameterizes one level layout.
// Kind is one of "pyramid", "grid", "hollow".
type LayoutConfig struct {
	Kind    string `yaml:"kind"`
	Rows    int    `yaml:"rows"`     // grid, hollow
	Cols    int    `yaml:"cols"`     // grid, hollow
	MaxCols int    `yaml:"max_cols"` // pyramid, forced odd
}

// DifficultyConfig defines endless-mode scaling.
type DifficultyConfig struct {
	EndlessSpeedPerCycle float64 `yaml:"endless_speed_per_cycle"` // Extra serve speed per completed layout cycle
}

// Preset is a named difficulty that overrides a few base values.
type Preset string

const (
	PresetEasy   Preset = "easy"
	PresetNormal Preset = "normal"
	PresetHard   Preset = "hard"
	PresetFixed  Preset = "fixed" // No per-level progression
)

// ParsePreset maps a CLI string to a preset. Unknown strings return
// PresetNormal so a typo degrades gracefully.
func ParsePreset(s string) Preset {
	switch s {
	case "easy":
		return PresetEasy
	case "hard":
		return PresetHard
	case "fixed":
		return PresetFixed
	default:
		return PresetNormal
	}
}

// Apply adjusts the config for the preset. PresetNormal leaves the
// loaded values untouched.
func (p Preset) Apply(cfg *BreakoutConfig) {
	switch p {
	case PresetEasy:
		cfg.Gameplay.Lives = 5
		cfg.Paddle.Width = 100
		cfg.Physics.ServeSpeedBase = 2.0
	case PresetHard:
		cfg.Gameplay.Lives = 2
		cfg.Paddle.Width = 60
		cfg.Physics.ServeSpeedBase = 3.0
	case PresetFixed:
		cfg.Physics.ServeSpeedPerLevel = 0
		cfg.Paddle.ShrinkPerLevel = 0
		cfg.Difficulty.EndlessSpeedPerCycle = 0
	}
}
