package walkdog

import (
	"fmt"
	"math/rand"

	"github.com/vovakirdan/walk-the-dog/internal/config"
	"github.com/vovakirdan/walk-the-dog/internal/core"
	"github.com/vovakirdan/walk-the-dog/internal/engine"
	"github.com/vovakirdan/walk-the-dog/internal/registry"
)

// Layout places segment obstacles on the canvas.
type Layout struct {
	StoneY         int16
	PlatformY      int16
	PlatformOffset int16
	SolidBarriers  bool
}

// NewLayout extracts the segment layout from the world config.
func NewLayout(cfg config.WorldConfig) Layout {
	return Layout{
		StoneY:         int16(cfg.StoneY),
		PlatformY:      int16(cfg.PlatformY),
		PlatformOffset: int16(cfg.PlatformOffset),
		SolidBarriers:  cfg.SolidBarriers,
	}
}

// Kit is everything a segment builds its obstacles from. The tile sheet is
// shared by every platform of every segment.
type Kit struct {
	Stone  engine.Image
	Tiles  *engine.SpriteSheet
	Layout Layout
}

// Segment is a fixed obstacle pattern.
type Segment struct {
	// Tiles lists the sheet cells the pattern draws.
	Tiles []string
	// Build creates the pattern's obstacles starting at offsetX.
	Build func(kit Kit, offsetX int16) []Obstacle
}

// Segments is the table of patterns the generator picks from.
var Segments = registry.New[Segment]()

// StartingSegment is always the first segment of a run.
const StartingSegment = "stone_and_platform"

func init() {
	Segments.Register("stone_and_platform", Segment{
		Tiles: []string{"13.png", "14.png", "15.png"},
		Build: stoneAndPlatform,
	})
	Segments.Register("platform_and_stone", Segment{
		Tiles: []string{"14.png"},
		Build: platformAndStone,
	})
}

// stoneAndPlatform is a stone on the ground followed by a three-tile
// floating platform whose end caps are shorter than its middle.
func stoneAndPlatform(kit Kit, offsetX int16) []Obstacle {
	const (
		stoneOffset = 150
		capWidth    = 60
		capHeight   = 54
		width       = 384
		height      = 93
	)
	return []Obstacle{
		NewBarrier(kit.Stone, core.Point{X: offsetX + stoneOffset, Y: kit.Layout.StoneY}, kit.Layout.SolidBarriers),
		NewPlatform(
			kit.Tiles,
			core.Point{X: offsetX + kit.Layout.PlatformOffset, Y: kit.Layout.PlatformY},
			[]string{"13.png", "14.png", "15.png"},
			[]core.Rect{
				core.NewRect(0, 0, capWidth, capHeight),
				core.NewRect(capWidth, 0, width-capWidth*2, height),
				core.NewRect(width-capWidth, 0, capWidth, capHeight),
			},
		),
	}
}

// platformAndStone is a one-tile floating platform with a stone beyond it.
func platformAndStone(kit Kit, offsetX int16) []Obstacle {
	const stoneOffset = 450
	return []Obstacle{
		NewBarrier(kit.Stone, core.Point{X: offsetX + stoneOffset, Y: kit.Layout.StoneY}, kit.Layout.SolidBarriers),
		NewPlatform(
			kit.Tiles,
			core.Point{X: offsetX + kit.Layout.PlatformOffset, Y: kit.Layout.PlatformY},
			[]string{"14.png"},
			[]core.Rect{core.NewRect(0, 0, 128, 93)},
		),
	}
}

// SegmentTiles lists every tile any registered segment draws.
func SegmentTiles() []string {
	var tiles []string
	seen := make(map[string]bool)
	for _, name := range Segments.Names() {
		seg, _ := Segments.Get(name)
		for _, tile := range seg.Tiles {
			if !seen[tile] {
				seen[tile] = true
				tiles = append(tiles, tile)
			}
		}
	}
	return tiles
}

// Generator builds segments: a fixed one to start, then uniformly random
// ones from the Segments table.
type Generator struct {
	kit   Kit
	rng   *rand.Rand
	names []string
}

// NewGenerator creates a generator with its own seeded RNG.
func NewGenerator(kit Kit, seed int64) *Generator {
	return &Generator{
		kit:   kit,
		rng:   rand.New(rand.NewSource(seed)),
		names: Segments.Names(),
	}
}

// Start builds the starting segment at offsetX.
func (g *Generator) Start(offsetX int16) []Obstacle {
	return g.build(StartingSegment, offsetX)
}

// Next builds a randomly chosen segment at offsetX.
func (g *Generator) Next(offsetX int16) []Obstacle {
	return g.build(g.names[g.rng.Intn(len(g.names))], offsetX)
}

func (g *Generator) build(name string, offsetX int16) []Obstacle {
	seg, err := Segments.Get(name)
	if err != nil {
		panic(fmt.Sprintf("walkdog: %v", err))
	}
	return seg.Build(g.kit, offsetX)
}
