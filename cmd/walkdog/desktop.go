package main

import (
	"context"
	"fmt"
	"os"
	"os/signal"
	"syscall"

	"github.com/charmbracelet/log"
	"github.com/spf13/cobra"

	"github.com/vovakirdan/walk-the-dog/internal/assets"
	"github.com/vovakirdan/walk-the-dog/internal/config"
	"github.com/vovakirdan/walk-the-dog/internal/core"
	"github.com/vovakirdan/walk-the-dog/internal/engine"
	"github.com/vovakirdan/walk-the-dog/internal/games/walkdog"
	"github.com/vovakirdan/walk-the-dog/internal/platform/desktop"
)

var desktopCmd = &cobra.Command{
	Use:   "desktop",
	Short: "Play in a window",
	Long: `Start a run in a desktop window. Point --assets at a directory holding
rhb.png, rhb.json, BG.png, Stone.png, tiles.png, tiles.json and
SFX_Jump_23.mp3 for the real art; without it the built-in pack is drawn as
coloured bands.

Controls:
  Right    - Start running
  Space    - Jump
  Down     - Slide
  Enter    - New game (or click the button)
  F        - Toggle the frame rate

Examples:
  walkdog desktop --assets ./static
  walkdog desktop --preset hard`,
	Args: cobra.NoArgs,
	Run:  runDesktop,
}

func runDesktop(cmd *cobra.Command, args []string) {
	cfg, err := loadConfig()
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}

	logger, closer, err := newLogger(os.Stderr)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}

	err = playDesktop(cfg, logger)
	closer.Close()
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
}

func playDesktop(cfg config.RunnerConfig, logger *log.Logger) error {
	loader, err := assets.Open(flagAssets)
	if err != nil {
		return err
	}

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	button := engine.NewButton()
	loading := walkdog.New(walkdog.Options{
		Config:    cfg,
		Loader:    loader,
		Audio:     desktop.NewAudio(),
		RestartUI: button,
		Seed:      flagSeed,
		Logger:    logger,
	})
	game, err := loading.Initialize(ctx)
	if err != nil {
		return err
	}

	runErr := desktop.Run(ctx, desktop.Options{
		Game:          game.(*walkdog.Game),
		Button:        button,
		Canvas:        core.NewRect(0, 0, int16(cfg.Canvas.Width), int16(cfg.Canvas.Height)),
		TickRate:      cfg.Loop.TickRate,
		ShowFrameRate: cfg.Debug.FrameRate,
		Logger:        logger,
	})
	if runErr != nil {
		return fmt.Errorf("running game: %w", runErr)
	}
	return nil
}
