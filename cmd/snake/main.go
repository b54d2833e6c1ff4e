// snake is the classic snake game for the terminal.
//
// Usage:
//
//	snake                    - Play
//	snake config             - Print the effective configuration
//	snake config --default   - Print the built-in default configuration
//
// Flags:
//
//	--config <path>       - Custom config YAML
//	--difficulty <name>   - Difficulty preset: easy, normal, hard, fixed
//	--fps <rate>          - Override moves per second
//	--seed <value>        - RNG seed for reproducible gameplay
//	--width/--height <n>  - Override grid size
//	--log-file <path>     - Write logs to a file
//	--log-level <level>   - debug, info, warn, error
package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"
)

var opts options

func main() {
	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}

var rootCmd = &cobra.Command{
	Use:   "snake",
	Short: "Snake - steer a growing snake in your terminal",
	Long: `Snake moves one cell per tick. Eat food to grow and score;
hitting a wall or your own body ends the game.

Controls:
  Arrows/WASD  - Steer
  Space/R      - Restart (after game over)
  P            - Pause
  ?            - Toggle help
  Esc/Q        - Quit

Difficulty options:
  easy   - Start at lowest speed, speeds up as you score
  normal - Start at 30% of the speed range
  hard   - Start at 70% of the speed range
  fixed  - No speed progression

Examples:
  snake
  snake --difficulty hard
  snake --width 40 --height 20 --fps 15
  snake --seed 42 --log-file snake.log --log-level debug
  snake config --default > ~/.snake/configs/snake.yaml`,
	Args:          cobra.NoArgs,
	SilenceUsage:  true,
	SilenceErrors: true,
	RunE:          runPlay,
}

func init() {
	flags := rootCmd.PersistentFlags()
	flags.StringVar(&opts.configPath, "config", "", "Path to custom config YAML")
	flags.StringVar(&opts.difficulty, "difficulty", "", "Difficulty preset: easy, normal, hard, fixed")
	flags.IntVar(&opts.fps, "fps", 0, "Moves per second (0 = from config)")
	flags.IntVar(&opts.width, "width", 0, "Grid width in cells (0 = from config)")
	flags.IntVar(&opts.height, "height", 0, "Grid height in cells (0 = from config)")

	rootCmd.Flags().Int64Var(&opts.seed, "seed", 0, "RNG seed (0 = random based on time)")
	rootCmd.Flags().StringVar(&opts.logFile, "log-file", "", "Write logs to this file (default: discard)")
	rootCmd.Flags().StringVar(&opts.logLevel, "log-level", "info", "Log level: debug, info, warn, error")

	rootCmd.AddCommand(configCmd)
}
