package main

import (
	"fmt"
	"io"
	"os"

	"github.com/charmbracelet/log"
	"github.com/spf13/cobra"
	"golang.org/x/term"

	"github.com/vovakirdan/tui-snake/internal/config"
	"github.com/vovakirdan/tui-snake/internal/core"
	"github.com/vovakirdan/tui-snake/internal/games/snake"
	"github.com/vovakirdan/tui-snake/internal/platform/tui"
)

// options holds command line settings shared by the commands.
type options struct {
	configPath string
	difficulty string
	fps        int
	seed       int64
	width      int
	height     int
	logFile    string
	logLevel   string
}

// snakeConfig loads the config file and applies preset and flag overrides.
func (o options) snakeConfig() (config.SnakeConfig, error) {
	preset, err := config.ParseDifficultyPreset(o.difficulty)
	if err != nil {
		return config.SnakeConfig{}, err
	}

	cfg, err := config.LoadSnake(o.configPath)
	if err != nil {
		return config.SnakeConfig{}, fmt.Errorf("load config: %w", err)
	}

	config.ApplySnakePreset(&cfg, preset)
	if o.fps > 0 {
		cfg.Speed.TicksPerSecond = o.fps
	}
	if o.width > 0 {
		cfg.Grid.Width = o.width
	}
	if o.height > 0 {
		cfg.Grid.Height = o.height
	}

	if err := cfg.Validate(); err != nil {
		return config.SnakeConfig{}, err
	}
	return cfg, nil
}

// newLogger builds the session logger. The TUI owns the terminal, so logs go
// to a file or nowhere.
func (o options) newLogger() (*log.Logger, io.Closer, error) {
	level, err := log.ParseLevel(o.logLevel)
	if err != nil {
		return nil, nil, fmt.Errorf("log level %q: %w", o.logLevel, err)
	}

	var (
		w      io.Writer = io.Discard
		closer io.Closer = nopCloser{}
	)
	if o.logFile != "" {
		f, err := os.OpenFile(o.logFile, os.O_CREATE|os.O_WRONLY|os.O_APPEND, 0o644)
		if err != nil {
			return nil, nil, fmt.Errorf("open log file: %w", err)
		}
		w, closer = f, f
	}

	logger := log.NewWithOptions(w, log.Options{
		ReportTimestamp: true,
		Prefix:          "snake",
		Level:           level,
	})
	return logger, closer, nil
}

// nopCloser is the closer for a logger that writes nowhere.
type nopCloser struct{}

func (nopCloser) Close() error { return nil }

func runPlay(cmd *cobra.Command, args []string) error {
	cfg, err := opts.snakeConfig()
	if err != nil {
		return err
	}

	logger, closer, err := opts.newLogger()
	if err != nil {
		return err
	}
	defer closer.Close() //nolint:errcheck // Best-effort close on exit

	rc := core.DefaultConfig()
	rc.TickRate = cfg.Speed.TicksPerSecond
	rc.Seed = opts.seed

	// Get terminal size for the initial screen
	if w, h, termErr := term.GetSize(int(os.Stdout.Fd())); termErr == nil {
		rc.ScreenW = w
		rc.ScreenH = h
	}

	logger.Debug("config loaded",
		"grid", fmt.Sprintf("%dx%d", cfg.Grid.Width, cfg.Grid.Height),
		"initial_length", cfg.Snake.InitialLength,
		"ticks_per_second", cfg.Speed.TicksPerSecond,
		"tail_chase", cfg.Rules.TailChase,
		"difficulty", cfg.Difficulty.Enabled,
	)

	if err := tui.Run(snake.New(cfg), rc, logger); err != nil {
		logger.Error("game exited", "err", err)
		return err
	}
	return nil
}
