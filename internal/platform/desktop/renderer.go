package desktop

import (
	"image"
	"image/color"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/ebitenutil"
	"github.com/hajimehoshi/ebiten/v2/vector"

	"github.com/vovakirdan/walk-the-dog/internal/core"
	"github.com/vovakirdan/walk-the-dog/internal/engine"
)

var (
	clearColor = color.RGBA{A: 255}
	boxColor   = color.RGBA{R: 255, A: 255}
)

// rasterizer is an image without pixels that can paint itself, like the
// terminal pack's placeholders.
type rasterizer interface {
	Rasterize() *image.RGBA
}

// pixelSource is a decoded bitmap.
type pixelSource interface {
	Image() image.Image
}

// Renderer draws onto the ebiten screen image of the current frame. It
// keeps a GPU copy of every engine image it has drawn.
type Renderer struct {
	screen   *ebiten.Image
	textures map[engine.Image]*ebiten.Image
}

var _ engine.Renderer = (*Renderer)(nil)

// NewRenderer creates a renderer with an empty texture cache.
func NewRenderer() *Renderer {
	return &Renderer{textures: make(map[engine.Image]*ebiten.Image)}
}

// Target sets the image the next calls draw onto.
func (r *Renderer) Target(screen *ebiten.Image) {
	r.screen = screen
}

func (r *Renderer) texture(img engine.Image) *ebiten.Image {
	if tex, ok := r.textures[img]; ok {
		return tex
	}
	var tex *ebiten.Image
	switch src := img.(type) {
	case pixelSource:
		tex = ebiten.NewImageFromImage(src.Image())
	case rasterizer:
		tex = ebiten.NewImageFromImage(src.Rasterize())
	default:
		tex = ebiten.NewImage(core.Max(img.Width(), 1), core.Max(img.Height(), 1))
	}
	r.textures[img] = tex
	return tex
}

func (r *Renderer) Clear(rect core.Rect) {
	vector.FillRect(r.screen, float32(rect.X), float32(rect.Y), float32(rect.W), float32(rect.H), clearColor, false)
}

// DrawImage copies the frame region to dest, scaling when the sizes differ.
func (r *Renderer) DrawImage(img engine.Image, frame, dest core.Rect) {
	if frame.Empty() || dest.Empty() {
		return
	}
	src := r.texture(img).SubImage(image.Rect(
		int(frame.X), int(frame.Y), int(frame.Right()), int(frame.Bottom()),
	)).(*ebiten.Image)

	op := &ebiten.DrawImageOptions{}
	op.GeoM.Scale(float64(dest.W)/float64(frame.W), float64(dest.H)/float64(frame.H))
	op.GeoM.Translate(float64(dest.X), float64(dest.Y))
	r.screen.DrawImage(src, op)
}

func (r *Renderer) DrawRect(rect core.Rect) {
	vector.StrokeRect(r.screen, float32(rect.X), float32(rect.Y), float32(rect.W), float32(rect.H), 1, boxColor, false)
}

func (r *Renderer) DrawText(text string, at core.Point) {
	ebitenutil.DebugPrintAt(r.screen, text, int(at.X), int(at.Y))
}
