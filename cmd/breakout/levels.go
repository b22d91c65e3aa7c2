package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/mpetrenko/breakout/internal/breakout"
)

var levelsCmd = &cobra.Command{
	Use:   "levels",
	Short: "Show configured level layouts",
	Long: `Shows the level sequence from the active configuration: the layout
kind, its dimensions, and how many bricks it places on the field.

Respects --config and --difficulty, so it can be used to inspect a
custom configuration before playing.`,
	Run: runLevels,
}

func init() {
	levelsCmd.Flags().StringVar(&flagConfig, "config", "", "Path to custom game config YAML")
	levelsCmd.Flags().StringVar(&flagDifficulty, "difficulty", "", "Difficulty preset: easy, normal, hard, fixed")
}

func runLevels(_ *cobra.Command, _ []string) {
	cfg, err := loadGameConfig()
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error loading config: %v\n", err)
		os.Exit(1)
	}

	if len(cfg.Layouts) == 0 {
		fmt.Println("No levels configured.")
		return
	}

	fmt.Println("Configured levels:")
	fmt.Println()
	fmt.Printf("  %-6s  %-10s  %-10s  %s\n", "Level", "Layout", "Shape", "Bricks")
	fmt.Printf("  %-6s  %-10s  %-10s  %s\n", "-----", "------", "-----", "------")

	for i, layout := range cfg.Layouts {
		lv, _ := breakout.Generate(layout, cfg.Bricks, cfg.Field.Width)

		shape := ""
		switch layout.Kind {
		case breakout.LayoutPyramid:
			shape = fmt.Sprintf("base %d", layout.MaxCols)
		default:
			shape = fmt.Sprintf("%dx%d", layout.Rows, layout.Cols)
		}

		fmt.Printf("  %-6d  %-10s  %-10s  %d\n", i+1, layout.Kind, shape, lv.Remaining)
	}

	fmt.Println()
	fmt.Println("Campaign plays the levels in order; endless repeats them with a speed bump.")
}
