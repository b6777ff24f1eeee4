package assets

import (
	"image"
	"sort"

	"github.com/vovakirdan/walk-the-dog/internal/core"
)

// Band paints source rows from FromY down to the next band.
type Band struct {
	FromY int    `yaml:"from_y"`
	Glyph string `yaml:"glyph"`
	Color uint8  `yaml:"color"` // ANSI 256-colour code; 0 keeps the terminal default
}

// Placeholder is an image with no pixels, only a size and the bands it is
// drawn with. Terminal frontends draw it cell by cell; desktop frontends
// fill its bands with their colours.
type Placeholder struct {
	name   string
	width  int
	height int
	bands  []Band
}

// NewPlaceholder creates a placeholder image. Bands are sorted by FromY.
func NewPlaceholder(name string, width, height int, bands []Band) *Placeholder {
	sorted := append([]Band(nil), bands...)
	sort.SliceStable(sorted, func(i, j int) bool { return sorted[i].FromY < sorted[j].FromY })
	return &Placeholder{name: name, width: width, height: height, bands: sorted}
}

// Name returns the file name the placeholder stands in for.
func (p *Placeholder) Name() string { return p.name }

// Width returns the image width in pixels.
func (p *Placeholder) Width() int { return p.width }

// Height returns the image height in pixels.
func (p *Placeholder) Height() int { return p.height }

// CellAt returns the glyph drawn for source pixel (x, y) and whether it is opaque.
func (p *Placeholder) CellAt(x, y int) (core.Cell, bool) {
	if x < 0 || x >= p.width || y < 0 || y >= p.height {
		return core.Cell{}, false
	}
	band, ok := p.bandAt(y)
	if !ok {
		return core.Cell{}, false
	}
	r := glyph(band.Glyph)
	if r == ' ' {
		return core.Cell{}, false
	}
	c := core.ColorDefault
	if band.Color != 0 {
		c = core.ANSI(band.Color)
	}
	return core.Cell{Rune: r, Color: c}, true
}

// bandAt returns the last band starting at or above y.
func (p *Placeholder) bandAt(y int) (Band, bool) {
	i := sort.Search(len(p.bands), func(i int) bool { return p.bands[i].FromY > y })
	if i == 0 {
		return Band{}, false
	}
	return p.bands[i-1], true
}

func glyph(s string) rune {
	for _, r := range s {
		return r
	}
	return ' '
}

// Rasterize paints the placeholder as pixels: each opaque band is filled
// with its colour from the xterm palette, transparent bands stay clear.
func (p *Placeholder) Rasterize() *image.RGBA {
	img := image.NewRGBA(image.Rect(0, 0, p.width, p.height))
	for y := 0; y < p.height; y++ {
		cell, ok := p.CellAt(0, y)
		if !ok {
			continue
		}
		c := cell.Color.Palette()
		for x := 0; x < p.width; x++ {
			img.SetRGBA(x, y, c)
		}
	}
	return img
}
