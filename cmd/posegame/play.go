package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"
	"golang.org/x/term"

	"github.com/zeroplus75/tm-pose-game2/internal/classifier"
	"github.com/zeroplus75/tm-pose-game2/internal/config"
	"github.com/zeroplus75/tm-pose-game2/internal/platform/tui"
	"github.com/zeroplus75/tm-pose-game2/internal/storage"
)

var (
	flagConfig        string
	flagDifficulty    string
	flagListen        string
	flagMinConfidence float64
	flagKeyboard      bool
)

var playCmd = &cobra.Command{
	Use:   "play",
	Short: "Play a round",
	Long: `Start a round of the catch game.

The basket follows the pose classifier feed. A classifier page connects to
ws://<listen-addr>/feed and streams {"label": "left", "confidence": 0.97}
messages; labels left, center and right move the basket. Keyboard input
always works alongside the feed.

Controls:
  Left/A     - Move basket to the left lane
  Down/S     - Move basket to the center lane
  Right/D    - Move basket to the right lane
  R          - Restart (after game over)
  Q/Ctrl+C   - Quit

Difficulty options:
  easy   - Slower level ramp
  normal - Default config values
  hard   - Start at a higher level
  fixed  - No level progression

Examples:
  posegame play
  posegame play --difficulty hard
  posegame play --keyboard
  posegame play --listen :9000
  posegame play --config ./my-catch.yaml`,
	Args: cobra.NoArgs,
	Run:  runPlay,
}

func init() {
	playCmd.Flags().StringVar(&flagConfig, "config", "", "Path to custom game config YAML")
	playCmd.Flags().StringVar(&flagDifficulty, "difficulty", "", "Difficulty preset: easy, normal, hard, fixed")
	playCmd.Flags().StringVar(&flagListen, "listen", ":8765", "Address for the classifier WebSocket feed")
	playCmd.Flags().Float64Var(&flagMinConfidence, "min-confidence", 0, "Drop classifier readings below this confidence")
	playCmd.Flags().BoolVar(&flagKeyboard, "keyboard", false, "Keyboard only, do not start the classifier feed")
}

func runPlay(cmd *cobra.Command, args []string) {
	// Load game config
	gameCfg, err := config.LoadCatch(flagConfig)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error loading config: %v\n", err)
		os.Exit(1)
	}

	if flagDifficulty != "" {
		preset, ok := config.ParsePreset(flagDifficulty)
		if !ok {
			fmt.Fprintf(os.Stderr, "Error: unknown difficulty %q\n", flagDifficulty)
			fmt.Fprintln(os.Stderr, "Valid presets: easy, normal, hard, fixed")
			os.Exit(1)
		}
		config.ApplyCatchPreset(&gameCfg, preset)
	}

	// Get terminal size
	width, height := 80, 24 // Defaults
	if w, h, termErr := term.GetSize(int(os.Stdout.Fd())); termErr == nil {
		width = w
		height = h
	}

	opts := tui.Options{
		ScreenW:  width,
		ScreenH:  height,
		TickRate: flagFPS,
		Seed:     flagSeed,
	}

	// Start the classifier feed unless keyboard-only
	var source classifier.Source
	if !flagKeyboard {
		feed := classifier.NewFeedServer(flagListen, flagMinConfidence)
		feed.Start()
		defer feed.Close()
		source = feed
	}

	// Open score storage
	store, err := storage.Open(flagDBPath)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Warning: could not open scores database: %v\n", err)
		// Continue without storage - game still works
		store = nil
	}

	// Run the game
	runErr := tui.Run(gameCfg, store, source, opts)

	// Close store before potential exit
	if store != nil {
		store.Close()
	}

	if runErr != nil {
		fmt.Fprintf(os.Stderr, "Error running game: %v\n", runErr)
		os.Exit(1)
	}
}
