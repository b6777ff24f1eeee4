// Package walkdog implements Walk the Dog, an endless runner: the world
// (obstacles, segment generation, scrolling), the Ready/Walking/GameOver
// flow around it and the loadable Game entry point.
package walkdog

import (
	"context"
	"errors"
	"fmt"
	"io"
	"strings"
	"time"

	"github.com/charmbracelet/log"
	"golang.org/x/sync/errgroup"

	"github.com/vovakirdan/walk-the-dog/internal/config"
	"github.com/vovakirdan/walk-the-dog/internal/core"
	"github.com/vovakirdan/walk-the-dog/internal/engine"
	"github.com/vovakirdan/walk-the-dog/internal/games/walkdog/redhatboy"
)

// ErrAlreadyInitialized is returned by Initialize on a loaded game.
var ErrAlreadyInitialized = errors.New("walkdog: game is already initialized")

// Options configures a game before it loads.
type Options struct {
	Config    config.RunnerConfig
	Loader    engine.Loader
	Audio     engine.Audio     // defaults to engine.NopAudio
	RestartUI engine.RestartUI // defaults to a headless engine.Button
	Seed      int64            // 0 seeds from the clock
	Logger    *log.Logger      // defaults to discarding logs
}

// Game is either loading (no world yet) or loaded.
type Game struct {
	opts Options
	flow FlowState // nil while loading
}

var _ engine.Game = (*Game)(nil)

// New creates a game in the loading state.
func New(opts Options) *Game {
	if opts.Audio == nil {
		opts.Audio = engine.NopAudio{}
	}
	if opts.RestartUI == nil {
		opts.RestartUI = engine.NewButton()
	}
	if opts.Logger == nil {
		opts.Logger = log.New(io.Discard)
	}
	if opts.Seed == 0 {
		opts.Seed = time.Now().UnixNano()
	}
	return &Game{opts: opts}
}

// Loaded reports whether the game has a world.
func (g *Game) Loaded() bool {
	return g.flow != nil
}

// Flow returns the current flow state, or nil while loading.
func (g *Game) Flow() FlowState {
	return g.flow
}

// loaded holds every asset once all loads succeed.
type loaded struct {
	rhbSheet   engine.Sheet
	rhbImage   engine.Image
	background engine.Image
	stone      engine.Image
	tilesSheet engine.Sheet
	tilesImage engine.Image
	jumpSound  engine.Sound
}

// Initialize loads every asset concurrently and returns a new, loaded
// game. The first failure cancels the remaining loads; no partial game is
// returned. The receiver is not modified.
func (g *Game) Initialize(ctx context.Context) (engine.Game, error) {
	if g.Loaded() {
		return nil, ErrAlreadyInitialized
	}
	if g.opts.Loader == nil {
		return nil, errors.New("walkdog: initialize: no asset loader")
	}

	cfg := g.opts.Config
	logger := g.opts.Logger
	start := time.Now()
	logger.Info("loading assets", "seed", g.opts.Seed)

	assets, err := g.load(ctx)
	if err != nil {
		return nil, fmt.Errorf("walkdog: initialize: %w", err)
	}

	physics := redhatboy.NewPhysics(cfg)
	if missing := assets.rhbSheet.Missing(redhatboy.FrameNames(physics)); len(missing) > 0 {
		return nil, fmt.Errorf("walkdog: initialize: %s is missing cells %s", cfg.Assets.CharacterSheet, strings.Join(missing, ", "))
	}
	if missing := assets.tilesSheet.Missing(SegmentTiles()); len(missing) > 0 {
		return nil, fmt.Errorf("walkdog: initialize: %s is missing cells %s", cfg.Assets.TilesSheet, strings.Join(missing, ", "))
	}

	boy := redhatboy.New(physics, assets.rhbSheet, assets.rhbImage, g.opts.Audio, assets.jumpSound, logger)
	kit := Kit{
		Stone:  assets.stone,
		Tiles:  engine.NewSpriteSheet(assets.tilesSheet, assets.tilesImage),
		Layout: NewLayout(cfg.World),
	}
	walk := NewWalk(boy, assets.background, NewGenerator(kit, g.opts.Seed), WorldRules{
		Canvas:          core.NewRect(0, 0, int16(cfg.Canvas.Width), int16(cfg.Canvas.Height)),
		TimelineMinimum: int16(cfg.World.TimelineMinimum),
		ObstacleBuffer:  int16(cfg.World.ObstacleBuffer),
		StartOffset:     int16(cfg.World.StartOffset),
		Debug:           cfg.Debug.BoundingBoxes,
	})

	logger.Info("assets loaded", "elapsed", time.Since(start).Round(time.Millisecond), "obstacles", len(walk.Obstacles()))
	return &Game{opts: g.opts, flow: NewReady(walk)}, nil
}

func (g *Game) load(ctx context.Context) (loaded, error) {
	var out loaded
	names := g.opts.Config.Assets
	loader := g.opts.Loader

	eg, ctx := errgroup.WithContext(ctx)
	eg.Go(func() (err error) {
		out.rhbSheet, err = loader.LoadSheet(ctx, names.CharacterSheet)
		return err
	})
	eg.Go(func() (err error) {
		out.rhbImage, err = loader.LoadImage(ctx, names.CharacterImage)
		return err
	})
	eg.Go(func() (err error) {
		out.background, err = loader.LoadImage(ctx, names.Background)
		return err
	})
	eg.Go(func() (err error) {
		out.stone, err = loader.LoadImage(ctx, names.Stone)
		return err
	})
	eg.Go(func() (err error) {
		out.tilesSheet, err = loader.LoadSheet(ctx, names.TilesSheet)
		return err
	})
	eg.Go(func() (err error) {
		out.tilesImage, err = loader.LoadImage(ctx, names.TilesImage)
		return err
	})
	eg.Go(func() error {
		data, err := loader.ReadFile(ctx, names.JumpSound)
		if err != nil {
			return err
		}
		out.jumpSound, err = g.opts.Audio.LoadSound(ctx, names.JumpSound, data)
		return err
	})

	if err := eg.Wait(); err != nil {
		return loaded{}, err
	}
	return out, nil
}

// Update runs one tick. A loading game ignores input.
func (g *Game) Update(keys *core.KeyState) {
	if g.flow == nil {
		return
	}
	next := g.flow.Update(keys, g.opts.RestartUI)
	if next.Name() != g.flow.Name() {
		g.opts.Logger.Debug("flow transition", "from", g.flow.Name(), "to", next.Name(), "keys", keys.Pressed())
	}
	g.flow = next
}

// Draw renders the world, or just clears the canvas while loading.
func (g *Game) Draw(r engine.Renderer) {
	if g.flow == nil {
		cfg := g.opts.Config.Canvas
		r.Clear(core.NewRect(0, 0, int16(cfg.Width), int16(cfg.Height)))
		return
	}
	g.flow.Walk().Draw(r)
}
