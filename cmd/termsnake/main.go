// termsnake is the classic snake game for the terminal.
//
// Usage:
//
//	termsnake               - Play in the local terminal
//	termsnake play          - Same as above
//	termsnake serve         - Serve the game over SSH
//
// Global flags:
//
//	--seed <value>    - RNG seed for reproducible gameplay (0 = time-based)
//	--config <path>   - Path to config YAML (theme, server settings)
package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"
)

var (
	flagSeed   int64
	flagConfig string
)

func main() {
	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}

var rootCmd = &cobra.Command{
	Use:   "termsnake",
	Short: "Snake in your terminal",
	Long: `termsnake is the classic snake game: steer the snake across a fixed
30x24 grid, eat food to grow, and avoid the walls and your own tail.

Controls:
  Arrows/WASD  - Steer
  Any key      - Restart (after game over)
  Q/Ctrl+C     - Quit

Examples:
  termsnake
  termsnake play --seed 42
  termsnake serve --ssh :2222`,
	Run: runPlay,
}

func init() {
	rootCmd.PersistentFlags().Int64Var(&flagSeed, "seed", 0, "RNG seed (0 = random based on time)")
	rootCmd.PersistentFlags().StringVar(&flagConfig, "config", "", "Path to config YAML")

	rootCmd.AddCommand(playCmd)
	rootCmd.AddCommand(serveCmd)
}
