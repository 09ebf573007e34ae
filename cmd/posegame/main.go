// posegame is a terminal catch game driven by a pose classifier.
//
// A webcam pose model (running externally, typically in a browser) streams
// left/center/right labels to the game over a WebSocket feed; the player
// moves their body to steer the basket. The game is equally playable with
// the keyboard.
//
// Usage:
//
//	posegame play             - Play a round
//	posegame scores           - Show high scores
//	posegame serve            - Start SSH server for remote play
//
// Global flags:
//
//	--fps <rate>    - Set tick rate (default: 30)
//	--seed <value>  - Set RNG seed for reproducible spawns
//	--db <path>     - Set database path (default: ~/.posegame/scores.db)
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
	Use:   "posegame",
	Short: "Catch falling fruit with your body or your keyboard",
	Long: `posegame is a terminal catch game. Fruit and bombs fall down three
lanes; move the basket to the right lane to catch fruit and dodge bombs.

The basket follows a pose classifier feed over WebSocket, so you can play
by leaning left and right in front of a webcam. Arrow keys work too.

Available commands:
  play     - Play a round
  scores   - View high scores
  serve    - Start SSH server for remote play

Examples:
  posegame play
  posegame play --difficulty hard
  posegame play --keyboard
  posegame scores
  posegame serve --ssh :2222`,
}

func init() {
	// Global persistent flags
	rootCmd.PersistentFlags().IntVar(&flagFPS, "fps", 30, "Tick rate (frames per second)")
	rootCmd.PersistentFlags().Int64Var(&flagSeed, "seed", 0, "RNG seed (0 = random based on time)")
	rootCmd.PersistentFlags().StringVar(&flagDBPath, "db", "~/.posegame/scores.db", "Path to scores database")

	// Add subcommands
	rootCmd.AddCommand(playCmd)
	rootCmd.AddCommand(scoresCmd)
	rootCmd.AddCommand(serveCmd)
}
