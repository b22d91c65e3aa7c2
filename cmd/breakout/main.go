// breakout is a terminal rendition of the classic brick-breaking game.
//
// Usage:
//
//	breakout play            - Play directly (campaign mode)
//	breakout menu            - Interactive mode picker
//	breakout serve           - Start SSH server for remote play
//	breakout scores          - Show high scores
//	breakout levels          - Show configured level layouts
//
// Global flags:
//
//	--fps <rate>    - Set tick rate (default: 60)
//	--seed <value>  - Set RNG seed for reproducible gameplay
//	--db <path>     - Set database path (default: ~/.breakout/scores.db)
package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"
)

var (
	// Global flags
	flagFPS    int
	flagSeed   int64
	flagDBPath string
)

func main() {
	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}

var rootCmd = &cobra.Command{
	Use:   "breakout",
	Short: "Breakout - Break bricks in your terminal",
	Long: `Breakout is a terminal brick-breaking game: bounce the ball off
your paddle, clear every brick, and survive on three lives.

Available commands:
  play     - Play directly
  menu     - Interactive mode picker
  serve    - Start SSH server for remote play
  scores   - View high scores
  levels   - Show configured level layouts

Examples:
  breakout play
  breakout play --endless --difficulty hard
  breakout menu
  breakout serve --ssh :2222
  breakout scores endless`,
}

func init() {
	// Global persistent flags
	rootCmd.PersistentFlags().IntVar(&flagFPS, "fps", 60, "Tick rate (frames per second)")
	rootCmd.PersistentFlags().Int64Var(&flagSeed, "seed", 0, "RNG seed (0 = random based on time)")
	rootCmd.PersistentFlags().StringVar(&flagDBPath, "db", "~/.breakout/scores.db", "Path to scores database")

	// Add subcommands
	rootCmd.AddCommand(playCmd)
	rootCmd.AddCommand(menuCmd)
	rootCmd.AddCommand(serveCmd)
	rootCmd.AddCommand(scoresCmd)
	rootCmd.AddCommand(levelsCmd)
}
