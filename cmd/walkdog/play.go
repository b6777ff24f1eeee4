package main

import (
	"context"
	"fmt"
	"io"
	"os"
	"os/signal"
	"syscall"

	"github.com/charmbracelet/log"
	"github.com/spf13/cobra"
	"golang.org/x/term"

	"github.com/vovakirdan/walk-the-dog/internal/assets"
	"github.com/vovakirdan/walk-the-dog/internal/config"
	"github.com/vovakirdan/walk-the-dog/internal/core"
	"github.com/vovakirdan/walk-the-dog/internal/engine"
	"github.com/vovakirdan/walk-the-dog/internal/games/walkdog"
	"github.com/vovakirdan/walk-the-dog/internal/platform/tui"
)

var playCmd = &cobra.Command{
	Use:   "play",
	Short: "Play in the terminal",
	Long: `Start a run in the terminal.

Controls:
  Right/D      - Start running
  Space/Up     - Jump
  Down/S       - Slide
  Enter/R      - New game (after a knock-out)
  F            - Toggle the frame rate
  Ctrl+S       - Save a screenshot
  Q/Ctrl+C     - Quit

The mouse can click the New Game button too.

Examples:
  walkdog play
  walkdog play --preset easy
  walkdog play --seed 7 --debug --log-file walkdog.log`,
	Args: cobra.NoArgs,
	Run:  runPlay,
}

func runPlay(cmd *cobra.Command, args []string) {
	cfg, err := loadConfig()
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}

	// Logs would corrupt the alternate screen, so they go to a file or nowhere.
	logger, closer, err := newLogger(io.Discard)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}

	err = playTerminal(cfg, logger)
	closer.Close()
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
}

func playTerminal(cfg config.RunnerConfig, logger *log.Logger) error {
	loader, err := assets.Open(flagAssets)
	if err != nil {
		return err
	}

	width, height := 80, 24 // Defaults
	if w, h, termErr := term.GetSize(int(os.Stdout.Fd())); termErr == nil {
		width = w
		height = h
	}

	button := engine.NewButton()
	game := walkdog.New(walkdog.Options{
		Config:    cfg,
		Loader:    loader,
		Audio:     tui.NewBell(os.Stderr),
		RestartUI: button,
		Seed:      flagSeed,
		Logger:    logger,
	})

	loop := engine.NewLoop(cfg.Loop.TickRate, cfg.Loop.MaxTicksPerFrame, logger)
	loop.ShowFrameRate = cfg.Debug.FrameRate

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	runErr := tui.Run(ctx, tui.Options{
		Game:   game,
		Button: button,
		Loop:   loop,
		Config: core.RuntimeConfig{
			ScreenW:  width,
			ScreenH:  height,
			TickRate: cfg.Loop.TickRate,
			Seed:     flagSeed,
			Debug:    flagDebug,
		},
		World:  core.NewRect(0, 0, int16(cfg.Canvas.Width), int16(cfg.Canvas.Height)),
		Logger: logger,
	})
	if runErr != nil {
		return fmt.Errorf("running game: %w", runErr)
	}
	return nil
}
