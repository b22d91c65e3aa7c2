package config

import (
	"fmt"
	"os"
	"path/filepath"

	"gopkg.in/yaml.v3"
)

// Load loads the game configuration.
// Search order: customPath -> ~/.breakout/config.yaml -> ./configs/breakout.yaml -> embedded default
func Load(customPath string) (BreakoutConfig, error) {
	var cfg BreakoutConfig

	// Try custom path first
	if customPath != "" {
		data, err := os.ReadFile(customPath)
		if err != nil {
			return cfg, fmt.Errorf("failed to read config %s: %w", customPath, err)
		}
		if err := yaml.Unmarshal(data, &cfg); err != nil {
			return cfg, fmt.Errorf("failed to parse config %s: %w", customPath, err)
		}
		return normalize(cfg), nil
	}

	// Try user config directory
	if userCfgPath := userConfigPath("config.yaml"); userCfgPath != "" {
		if data, err := os.ReadFile(userCfgPath); err == nil {
			if err := yaml.Unmarshal(data, &cfg); err == nil {
				return normalize(cfg), nil
			}
		}
	}

	// Try local configs directory
	if data, err := os.ReadFile("configs/breakout.yaml"); err == nil {
		if err := yaml.Unmarshal(data, &cfg); err == nil {
			return normalize(cfg), nil
		}
	}

	// Use embedded default YAML
	if err := yaml.Unmarshal(defaultYAML, &cfg); err != nil {
		return Default(), nil // Fallback to hardcoded if embed fails
	}
	return normalize(cfg), nil
}

// userConfigPath returns the path to user config file, or empty if home is unavailable.
func userConfigPath(filename string) string {
	home, err := os.UserHomeDir()
	if err != nil {
		return ""
	}
	return filepath.Join(home, ".breakout", filename)
}

// normalize fills in zero values a partial user config may have omitted.
func normalize(cfg BreakoutConfig) BreakoutConfig {
	def := Default()
	if cfg.Field.Width <= 0 {
		cfg.Field.Width = def.Field.Width
	}
	if cfg.Field.Height <= 0 {
		cfg.Field.Height = def.Field.Height
	}
	if cfg.Physics.BallRadius <= 0 {
		cfg.Physics.BallRadius = def.Physics.BallRadius
	}
	if cfg.Physics.PaddleSpeed <= 0 {
		cfg.Physics.PaddleSpeed = def.Physics.PaddleSpeed
	}
	if cfg.Physics.ServeSpeedBase <= 0 {
		cfg.Physics.ServeSpeedBase = def.Physics.ServeSpeedBase
	}
	if cfg.Physics.ServeSpeedPerLevel <= 0 {
		cfg.Physics.ServeSpeedPerLevel = def.Physics.ServeSpeedPerLevel
	}
	if cfg.Physics.ReboundFactor <= 0 {
		cfg.Physics.ReboundFactor = def.Physics.ReboundFactor
	}
	if cfg.Paddle.Width <= 0 {
		cfg.Paddle.Width = def.Paddle.Width
	}
	if cfg.Paddle.Height <= 0 {
		cfg.Paddle.Height = def.Paddle.Height
	}
	if cfg.Paddle.MinWidth <= 0 {
		cfg.Paddle.MinWidth = def.Paddle.MinWidth
	}
	if cfg.Paddle.ShrinkPerLevel <= 0 {
		cfg.Paddle.ShrinkPerLevel = def.Paddle.ShrinkPerLevel
	}
	if cfg.Paddle.BottomOffset <= 0 {
		cfg.Paddle.BottomOffset = def.Paddle.BottomOffset
	}
	if cfg.Bricks.Height <= 0 {
		cfg.Bricks.Height = def.Bricks.Height
	}
	if cfg.Bricks.Padding <= 0 {
		cfg.Bricks.Padding = def.Bricks.Padding
	}
	if cfg.Bricks.TopMargin <= 0 {
		cfg.Bricks.TopMargin = def.Bricks.TopMargin
	}
	if cfg.Bricks.MinWidth <= 0 {
		cfg.Bricks.MinWidth = def.Bricks.MinWidth
	}
	if cfg.Bricks.Points <= 0 {
		cfg.Bricks.Points = def.Bricks.Points
	}
	if cfg.Gameplay.Lives <= 0 {
		cfg.Gameplay.Lives = def.Gameplay.Lives
	}
	if cfg.Gameplay.ServeDelayTicks < 0 {
		cfg.Gameplay.ServeDelayTicks = def.Gameplay.ServeDelayTicks
	}
	if len(cfg.Layouts) == 0 {
		cfg.Layouts = def.Layouts
	}
	if cfg.Difficulty.EndlessSpeedPerCycle <= 0 {
		cfg.Difficulty.EndlessSpeedPerCycle = def.Difficulty.EndlessSpeedPerCycle
	}
	return cfg
}
