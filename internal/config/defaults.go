package config

import (
	_ "embed"
)

//go:embed defaults/breakout.yaml
var defaultYAML []byte

// Default returns the default configuration. It mirrors the embedded
// defaults/breakout.yaml and is the fallback when the embed fails to parse.
func Default() BreakoutConfig {
	return BreakoutConfig{
		Field: FieldConfig{
			Width:  600,
			Height: 400,
		},
		Physics: PhysicsConfig{
			BallRadius:         8,
			PaddleSpeed:        7,
			ServeSpeedBase:     2.5,
			ServeSpeedPerLevel: 0.5,
			ReboundFactor:      4,
		},
		Paddle: PaddleConfig{
			Width:          80,
			Height:         10,
			MinWidth:       40,
			ShrinkPerLevel: 5,
			BottomOffset:   20,
		},
		Bricks: BrickConfig{
			Height:    15,
			Padding:   4,
			TopMargin: 40,
			MinWidth:  20,
			Points:    10,
		},
		Gameplay: GameplayConfig{
			Lives:           3,
			ServeDelayTicks: 45,
		},
		Layouts: []LayoutConfig{
			{Kind: "pyramid", MaxCols: 7},
			{Kind: "grid", Rows: 4, Cols: 8},
			{Kind: "hollow", Rows: 5, Cols: 10},
		},
		Difficulty: DifficultyConfig{
			EndlessSpeedPerCycle: 0.5,
		},
	}
}
