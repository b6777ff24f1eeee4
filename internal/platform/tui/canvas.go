package tui

import (
	"image"

	xdraw "golang.org/x/image/draw"

	"github.com/vovakirdan/walk-the-dog/internal/core"
	"github.com/vovakirdan/walk-the-dog/internal/engine"
)

// cellSource is an image that already knows its terminal glyphs, like the
// embedded placeholder art.
type cellSource interface {
	CellAt(x, y int) (core.Cell, bool)
}

// pixelSource is a decoded bitmap.
type pixelSource interface {
	Image() image.Image
}

type scaleKey struct {
	src   pixelSource
	frame core.Rect
	w, h  int
}

// Canvas is an engine.Renderer that draws the game world onto the top
// rows of a Screen. World pixels are scaled to the canvas area, so one
// cell covers several pixels in each direction.
type Canvas struct {
	screen *core.Screen
	world  core.Rect
	cols   int
	rows   int
	scaled map[scaleKey]*image.RGBA
}

var _ engine.Renderer = (*Canvas)(nil)

// NewCanvas maps world onto the first cols x rows cells of screen.
func NewCanvas(screen *core.Screen, world core.Rect, cols, rows int) *Canvas {
	c := &Canvas{
		screen: screen,
		world:  world,
		scaled: make(map[scaleKey]*image.RGBA),
	}
	c.Resize(cols, rows)
	return c
}

// Resize changes the canvas area and drops scaled bitmaps.
func (c *Canvas) Resize(cols, rows int) {
	c.cols = core.Max(cols, 1)
	c.rows = core.Max(rows, 1)
	clear(c.scaled)
}

// Cols returns the canvas width in cells.
func (c *Canvas) Cols() int { return c.cols }

// Rows returns the canvas height in cells.
func (c *Canvas) Rows() int { return c.rows }

// col maps a world x-coordinate to a cell column.
func (c *Canvas) col(x int16) int {
	return floorDiv((int(x)-int(c.world.X))*c.cols, int(c.world.W))
}

// row maps a world y-coordinate to a cell row.
func (c *Canvas) row(y int16) int {
	return floorDiv((int(y)-int(c.world.Y))*c.rows, int(c.world.H))
}

// cells returns the cell span [x0, x1) x [y0, y1) covering r. A rect with
// area always covers at least one cell.
func (c *Canvas) cells(r core.Rect) (x0, y0, x1, y1 int) {
	x0, x1 = c.col(r.X), c.col(r.Right())
	y0, y1 = c.row(r.Y), c.row(r.Bottom())
	if x1 <= x0 {
		x1 = x0 + 1
	}
	if y1 <= y0 {
		y1 = y0 + 1
	}
	return x0, y0, x1, y1
}

func (c *Canvas) Clear(rect core.Rect) {
	x0, y0, x1, y1 := c.cells(rect)
	c.screen.FillRect(
		core.Max(x0, 0), core.Max(y0, 0),
		core.Min(x1, c.cols), core.Min(y1, c.rows),
		core.Cell{Rune: ' '},
	)
}

// DrawImage samples frame at the centre of every destination cell.
// Transparent pixels leave the cell untouched.
func (c *Canvas) DrawImage(img engine.Image, frame, dest core.Rect) {
	if frame.Empty() || dest.Empty() {
		return
	}
	x0, y0, x1, y1 := c.cells(dest)
	w, h := x1-x0, y1-y0

	switch src := img.(type) {
	case cellSource:
		for cy := core.Max(y0, 0); cy < core.Min(y1, c.rows); cy++ {
			sy := int(frame.Y) + ((cy-y0)*2+1)*int(frame.H)/(2*h)
			for cx := core.Max(x0, 0); cx < core.Min(x1, c.cols); cx++ {
				sx := int(frame.X) + ((cx-x0)*2+1)*int(frame.W)/(2*w)
				if cell, ok := src.CellAt(sx, sy); ok {
					c.screen.SetCell(cx, cy, cell)
				}
			}
		}
	case pixelSource:
		scaled := c.scale(src, frame, w, h)
		for cy := core.Max(y0, 0); cy < core.Min(y1, c.rows); cy++ {
			for cx := core.Max(x0, 0); cx < core.Min(x1, c.cols); cx++ {
				px := scaled.RGBAAt(cx-x0, cy-y0)
				if px.A < 0x80 {
					continue
				}
				c.screen.SetCell(cx, cy, core.Cell{Rune: '█', Color: core.RGB(px.R, px.G, px.B)})
			}
		}
	}
}

// scale shrinks the frame region of a bitmap to w x h pixels, one per cell.
func (c *Canvas) scale(src pixelSource, frame core.Rect, w, h int) *image.RGBA {
	key := scaleKey{src: src, frame: frame, w: w, h: h}
	if dst, ok := c.scaled[key]; ok {
		return dst
	}

	pixels := src.Image()
	region := image.Rect(int(frame.X), int(frame.Y), int(frame.Right()), int(frame.Bottom())).
		Add(pixels.Bounds().Min)
	dst := image.NewRGBA(image.Rect(0, 0, w, h))
	xdraw.NearestNeighbor.Scale(dst, dst.Bounds(), pixels, region, xdraw.Src, nil)

	c.scaled[key] = dst
	return dst
}

// DrawRect outlines rect, used for debug bounding boxes.
func (c *Canvas) DrawRect(rect core.Rect) {
	x0, y0, x1, y1 := c.cells(rect)
	if x1 <= 0 || y1 <= 0 || x0 >= c.cols || y0 >= c.rows {
		return
	}
	c.screen.DrawBox(x0, y0, core.Min(x1, c.cols), core.Min(y1, c.rows), core.ColorBrightRed)
}

func (c *Canvas) DrawText(text string, at core.Point) {
	y := c.row(at.Y)
	if y < 0 || y >= c.rows {
		return
	}
	x := c.col(at.X)
	for i, r := range []rune(text) {
		if x+i >= 0 && x+i < c.cols {
			c.screen.SetCell(x+i, y, core.Cell{Rune: r, Color: core.ColorBrightWhite})
		}
	}
}

func floorDiv(a, b int) int {
	if b == 0 {
		return 0
	}
	q := a / b
	if a%b != 0 && (a < 0) != (b < 0) {
		q--
	}
	return q
}
