package main

import (
	"fmt"
	"os"
	"path/filepath"

	"github.com/spf13/cobra"
	"golang.org/x/term"

	"github.com/vovakirdan/fruit2048/internal/config"
	"github.com/vovakirdan/fruit2048/internal/core"
	"github.com/vovakirdan/fruit2048/internal/game"
	"github.com/vovakirdan/fruit2048/internal/platform/tui"
	"github.com/vovakirdan/fruit2048/internal/storage"
)

var (
	flagLogFile string
	flagFruit   bool
	flagNumbers bool
)

var playCmd = &cobra.Command{
	Use:   "play",
	Short: "Play fruit2048",
	Long: `Start an interactive game.

Controls:
  Arrows/WASD  - Slide tiles
  R/N          - New game
  ?            - Toggle full help
  Ctrl+S       - Save a screenshot to ~/.fruit2048/screenshots
  Q/Ctrl+C     - Quit

After two moves in a row that change nothing, a hint arrow suggests a move.

Spawn presets:
  easy   - 90% 2, 10% 4
  normal - 80% 2, 15% 4, 5% 8
  hard   - 60% 2, 30% 4, 10% 8

Examples:
  fruit2048 play
  fruit2048 play --preset easy
  fruit2048 play --numbers --seed 7
  fruit2048 play --config ./my-fruit2048.yaml`,
	Args: cobra.NoArgs,
	RunE: runPlay,
}

func init() {
	playCmd.Flags().StringVar(&flagLogFile, "log-file", "~/.fruit2048/fruit2048.log", "Log file (the game owns the terminal)")
	playCmd.Flags().BoolVar(&flagFruit, "fruit", false, "Draw tiles as fruit")
	playCmd.Flags().BoolVar(&flagNumbers, "numbers", false, "Draw tiles as numbers")
	playCmd.MarkFlagsMutuallyExclusive("fruit", "numbers")
}

func runPlay(cmd *cobra.Command, _ []string) error {
	cfg, err := loadConfig()
	if err != nil {
		return err
	}
	switch {
	case flagFruit:
		cfg.Render.Mode = config.RenderFruit
	case flagNumbers:
		cfg.Render.Mode = config.RenderNumber
	}

	logFile, err := openLogFile(flagLogFile)
	if err != nil {
		return err
	}
	defer logFile.Close()

	logger, err := newLogger(logFile)
	if err != nil {
		return err
	}

	dist, err := cfg.Distribution()
	if err != nil {
		return err
	}

	opts := []game.Option{
		game.WithDistribution(dist),
		game.WithHintThreshold(cfg.HintThreshold),
		game.WithLogger(logger),
	}
	if flagSeed != 0 {
		opts = append(opts, game.WithSeed(flagSeed))
	}

	// Open score storage
	store, err := storage.Open(cfg.Storage.DBPath)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Warning: could not open scores database: %v\n", err)
		logger.Warn("could not open scores database", "path", cfg.Storage.DBPath, "error", err)
	} else {
		defer store.Close()
		opts = append(opts, game.WithBestStore(store), game.WithRecorder(store))
	}

	session := game.NewSession(opts...)
	durations := game.Durations{
		Slide: cfg.Animation.SlideTicks,
		Pop:   cfg.Animation.PopTicks,
		Shake: cfg.Animation.ShakeTicks,
	}
	g := game.New(session, durations, game.RenderMode(cfg.Render.Mode))
	g.SetLogger(logger)

	width, height := 80, 24 // Defaults
	if w, h, termErr := term.GetSize(int(os.Stdout.Fd())); termErr == nil {
		width = w
		height = h
	}

	logger.Info("starting", "session", session.ID(), "preset", cfg.Preset, "best", session.Best())
	rtCfg := core.RuntimeConfig{
		ScreenW:  width,
		ScreenH:  height,
		TickRate: cfg.TickRate,
		Seed:     flagSeed,
	}
	if err := tui.Run(g, rtCfg, logger); err != nil {
		return fmt.Errorf("running game: %w", err)
	}
	return nil
}

// openLogFile opens path for appending, creating parent directories.
func openLogFile(path string) (*os.File, error) {
	path, err := config.ExpandHome(path)
	if err != nil {
		return nil, err
	}
	if err := os.MkdirAll(filepath.Dir(path), 0o755); err != nil {
		return nil, fmt.Errorf("cannot create log directory: %w", err)
	}
	f, err := os.OpenFile(path, os.O_CREATE|os.O_WRONLY|os.O_APPEND, 0o644)
	if err != nil {
		return nil, fmt.Errorf("cannot open log file: %w", err)
	}
	return f, nil
}
