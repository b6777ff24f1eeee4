package main

import (
	"context"
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/vovakirdan/walk-the-dog/internal/assets"
	"github.com/vovakirdan/walk-the-dog/internal/games/walkdog"
	"github.com/vovakirdan/walk-the-dog/internal/games/walkdog/redhatboy"
)

var assetsCmd = &cobra.Command{
	Use:   "assets",
	Short: "Check an asset pack for missing sprite cells",
	Long: `Loads the character and tile sheets named in the configuration and
lists every animation frame or platform tile they are missing.

Examples:
  walkdog assets
  walkdog assets --assets ./static`,
	Args: cobra.NoArgs,
	Run:  runAssets,
}

func runAssets(cmd *cobra.Command, args []string) {
	cfg, err := loadConfig()
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}

	loader, err := assets.Open(flagAssets)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}

	checks := []struct {
		sheet string
		cells []string
	}{
		{cfg.Assets.CharacterSheet, redhatboy.FrameNames(redhatboy.NewPhysics(cfg))},
		{cfg.Assets.TilesSheet, walkdog.SegmentTiles()},
	}

	ctx := context.Background()
	failed := false

	// Calculate column widths
	maxLen := len("Sheet")
	for _, c := range checks {
		if len(c.sheet) > maxLen {
			maxLen = len(c.sheet)
		}
	}

	fmt.Printf("  %-*s  %s\n", maxLen, "Sheet", "Status")
	fmt.Printf("  %-*s  %s\n", maxLen, "-----", "------")

	for _, c := range checks {
		sheet, err := loader.LoadSheet(ctx, c.sheet)
		if err != nil {
			fmt.Printf("  %-*s  %v\n", maxLen, c.sheet, err)
			failed = true
			continue
		}
		missing := sheet.Missing(c.cells)
		if len(missing) == 0 {
			fmt.Printf("  %-*s  ok (%d cells)\n", maxLen, c.sheet, len(c.cells))
			continue
		}
		failed = true
		fmt.Printf("  %-*s  missing %d of %d cells\n", maxLen, c.sheet, len(missing), len(c.cells))
		for _, name := range missing {
			fmt.Printf("  %-*s    %s\n", maxLen, "", name)
		}
	}

	for _, name := range []string{cfg.Assets.CharacterImage, cfg.Assets.Background, cfg.Assets.Stone, cfg.Assets.TilesImage} {
		img, err := loader.LoadImage(ctx, name)
		if err != nil {
			fmt.Printf("  %-*s  %v\n", maxLen, name, err)
			failed = true
			continue
		}
		fmt.Printf("  %-*s  ok (%dx%d)\n", maxLen, name, img.Width(), img.Height())
	}

	if failed {
		os.Exit(1)
	}
}
