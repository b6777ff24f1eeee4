// walkdog is an endless side-scrolling runner: the Red Hat Boy runs right,
// jumps stones and slides under platforms until he is knocked out.
//
// Usage:
//
//	walkdog play      - Play in the terminal
//	walkdog desktop   - Play in a window with sprites and sound
//	walkdog assets    - Check an asset pack for missing sprite cells
//	walkdog config    - Print the default tuning YAML
//
// Global flags:
//
//	--fps <rate>        - Set tick rate (default: config's loop.tick_rate)
//	--seed <value>      - Set RNG seed for reproducible courses
//	--config <path>     - Load tuning from a YAML file
//	--assets <dir>      - Load art from a directory instead of the built-in pack
//	--preset <name>     - Running speed preset: easy, normal, hard
//	--debug             - Draw bounding boxes and the frame rate
//	--log-file <path>   - Write logs to a file
package main

import (
	"fmt"
	"io"
	"os"

	"github.com/charmbracelet/log"
	"github.com/spf13/cobra"

	"github.com/vovakirdan/walk-the-dog/internal/config"
)

var (
	// Global flags
	flagFPS     int
	flagSeed    int64
	flagConfig  string
	flagAssets  string
	flagPreset  string
	flagDebug   bool
	flagLogFile string
)

func main() {
	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}

var rootCmd = &cobra.Command{
	Use:   "walkdog",
	Short: "Walk the Dog - an endless runner",
	Long: `Walk the Dog is an endless side-scrolling runner. Run right, jump the
stones, slide under the platforms or land on top of them.

Available commands:
  play     - Play in the terminal
  desktop  - Play in a window
  assets   - Check an asset pack
  config   - Print the default configuration

Examples:
  walkdog play
  walkdog play --preset hard --seed 42
  walkdog desktop --assets ./static
  walkdog config > ~/.walkdog/configs/walkdog.yaml`,
}

func init() {
	rootCmd.PersistentFlags().IntVar(&flagFPS, "fps", 0, "Tick rate (0 = config's loop.tick_rate)")
	rootCmd.PersistentFlags().Int64Var(&flagSeed, "seed", 0, "RNG seed (0 = random based on time)")
	rootCmd.PersistentFlags().StringVar(&flagConfig, "config", "", "Path to custom tuning YAML")
	rootCmd.PersistentFlags().StringVar(&flagAssets, "assets", "", "Asset directory (default: built-in terminal pack)")
	rootCmd.PersistentFlags().StringVar(&flagPreset, "preset", "", "Speed preset: easy, normal, hard")
	rootCmd.PersistentFlags().BoolVar(&flagDebug, "debug", false, "Draw bounding boxes and the frame rate")
	rootCmd.PersistentFlags().StringVar(&flagLogFile, "log-file", "", "Write logs to this file")

	rootCmd.AddCommand(playCmd)
	rootCmd.AddCommand(desktopCmd)
	rootCmd.AddCommand(assetsCmd)
	rootCmd.AddCommand(configCmd)
}

// loadConfig resolves the tuning file and applies the preset and flags.
func loadConfig() (config.RunnerConfig, error) {
	cfg, err := config.Load(flagConfig)
	if err != nil {
		return cfg, err
	}

	preset, err := config.ParsePreset(flagPreset)
	if err != nil {
		return cfg, err
	}
	if preset != "" {
		config.ApplyPreset(&cfg, preset)
	}
	if flagFPS > 0 {
		cfg.Loop.TickRate = flagFPS
	}
	if flagDebug {
		cfg.Debug.BoundingBoxes = true
		cfg.Debug.FrameRate = true
	}
	return cfg, cfg.Validate()
}

// newLogger writes to --log-file when set, otherwise to fallback. The
// returned closer releases the file.
func newLogger(fallback io.Writer) (*log.Logger, io.Closer, error) {
	out, closer := fallback, io.Closer(nopCloser{})
	if flagLogFile != "" {
		f, err := os.OpenFile(flagLogFile, os.O_CREATE|os.O_WRONLY|os.O_APPEND, 0o644)
		if err != nil {
			return nil, nil, fmt.Errorf("open log file: %w", err)
		}
		out, closer = f, f
	}

	level := log.InfoLevel
	if flagDebug {
		level = log.DebugLevel
	}
	logger := log.NewWithOptions(out, log.Options{
		ReportTimestamp: true,
		Prefix:          "walkdog",
		Level:           level,
	})
	return logger, closer, nil
}

type nopCloser struct{}

func (nopCloser) Close() error { return nil }
