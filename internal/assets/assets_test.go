package assets

import (
	"bytes"
	"context"
	"image"
	"image/color"
	"image/png"
	"testing"
	"testing/fstest"

	"github.com/vovakirdan/walk-the-dog/internal/core"
)

func pngBytes(t *testing.T, w, h int) []byte {
	t.Helper()
	img := image.NewRGBA(image.Rect(0, 0, w, h))
	img.Set(0, 0, color.RGBA{R: 255, A: 255})
	var buf bytes.Buffer
	if err := png.Encode(&buf, img); err != nil {
		t.Fatal(err)
	}
	return buf.Bytes()
}

func TestFSLoadsFiles(t *testing.T) {
	fsys := fstest.MapFS{
		"Stone.png":       {Data: pngBytes(t, 90, 54)},
		"tiles.json":      {Data: []byte(`{"frames": {"14.png": {"frame": {"x": 128, "y": 0, "w": 128, "h": 93}}}}`)},
		"SFX_Jump_23.mp3": {Data: []byte("ID3")},
	}
	l, err := NewFS(fsys)
	if err != nil {
		t.Fatalf("NewFS() error: %v", err)
	}
	ctx := context.Background()

	img, err := l.LoadImage(ctx, "Stone.png")
	if err != nil {
		t.Fatalf("LoadImage() error: %v", err)
	}
	bmp, ok := img.(*Bitmap)
	if !ok {
		t.Fatalf("LoadImage() = %T, expected *Bitmap", img)
	}
	if bmp.Width() != 90 || bmp.Height() != 54 || bmp.Name() != "Stone.png" {
		t.Errorf("bitmap = %s %dx%d", bmp.Name(), bmp.Width(), bmp.Height())
	}

	sheet, err := l.LoadSheet(ctx, "tiles.json")
	if err != nil {
		t.Fatalf("LoadSheet() error: %v", err)
	}
	if c, ok := sheet.Cell("14.png"); !ok || c.Frame.X != 128 {
		t.Errorf("14.png = %+v, %v", c, ok)
	}

	data, err := l.ReadFile(ctx, "SFX_Jump_23.mp3")
	if err != nil || string(data) != "ID3" {
		t.Errorf("ReadFile() = %q, %v", data, err)
	}
}

func TestFSErrors(t *testing.T) {
	fsys := fstest.MapFS{
		"broken.png":  {Data: []byte("not a png")},
		"broken.json": {Data: []byte("{")},
	}
	l, err := NewFS(fsys)
	if err != nil {
		t.Fatal(err)
	}
	ctx := context.Background()

	tests := []struct {
		name string
		load func() error
	}{
		{"missing image", func() error { _, err := l.LoadImage(ctx, "BG.png"); return err }},
		{"undecodable image", func() error { _, err := l.LoadImage(ctx, "broken.png"); return err }},
		{"missing sheet", func() error { _, err := l.LoadSheet(ctx, "rhb.json"); return err }},
		{"unparseable sheet", func() error { _, err := l.LoadSheet(ctx, "broken.json"); return err }},
		{"missing file", func() error { _, err := l.ReadFile(ctx, "jump.mp3"); return err }},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			if err := tc.load(); err == nil {
				t.Error("expected an error")
			}
		})
	}

	cancelled, cancel := context.WithCancel(ctx)
	cancel()
	if _, err := l.LoadImage(cancelled, "broken.png"); err != context.Canceled {
		t.Errorf("cancelled LoadImage() error = %v", err)
	}
}

func TestManifest(t *testing.T) {
	manifest := `
images:
  BG.png:
    width: 1200
    height: 600
    bands:
      - {from_y: 500, glyph: "▁", color: 28}
      - {from_y: 0, glyph: " "}
sounds:
  - jump.mp3
`
	l, err := NewFS(fstest.MapFS{ManifestFile: {Data: []byte(manifest)}})
	if err != nil {
		t.Fatalf("NewFS() error: %v", err)
	}
	ctx := context.Background()

	img, err := l.LoadImage(ctx, "BG.png")
	if err != nil {
		t.Fatalf("LoadImage() error: %v", err)
	}
	p, ok := img.(*Placeholder)
	if !ok {
		t.Fatalf("LoadImage() = %T, expected *Placeholder", img)
	}
	if p.Width() != 1200 || p.Height() != 600 {
		t.Errorf("placeholder size %dx%d", p.Width(), p.Height())
	}

	data, err := l.ReadFile(ctx, "jump.mp3")
	if err != nil || data != nil {
		t.Errorf("manifest sound ReadFile() = %v, %v", data, err)
	}

	bad := fstest.MapFS{ManifestFile: {Data: []byte("images:\n  X.png: {width: 0, height: 5}\n")}}
	if _, err := NewFS(bad); err == nil {
		t.Error("zero-sized placeholder should be rejected")
	}
}

func TestPlaceholderCellAt(t *testing.T) {
	p := NewPlaceholder("BG.png", 100, 100, []Band{
		{FromY: 80, Glyph: "▁", Color: 28},
		{FromY: 10, Glyph: " "},
		{FromY: 20, Glyph: "·"},
	})

	tests := []struct {
		name   string
		x, y   int
		cell   core.Cell
		opaque bool
	}{
		{"above every band", 5, 5, core.Cell{}, false},
		{"transparent band", 5, 15, core.Cell{}, false},
		{"default colour band", 5, 50, core.Cell{Rune: '·'}, true},
		{"coloured band", 5, 80, core.Cell{Rune: '▁', Color: core.ANSI(28)}, true},
		{"outside", 100, 90, core.Cell{}, false},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			cell, opaque := p.CellAt(tc.x, tc.y)
			if cell != tc.cell || opaque != tc.opaque {
				t.Errorf("CellAt(%d, %d) = %+v, %v, expected %+v, %v", tc.x, tc.y, cell, opaque, tc.cell, tc.opaque)
			}
		})
	}
}

func TestEmbeddedPack(t *testing.T) {
	l := Embedded()
	ctx := context.Background()

	for _, name := range []string{"BG.png", "Stone.png", "tiles.png", "rhb.png"} {
		img, err := l.LoadImage(ctx, name)
		if err != nil {
			t.Errorf("LoadImage(%s) error: %v", name, err)
			continue
		}
		if img.Width() <= 0 || img.Height() <= 0 {
			t.Errorf("%s has size %dx%d", name, img.Width(), img.Height())
		}
	}

	tiles, err := l.LoadSheet(ctx, "tiles.json")
	if err != nil {
		t.Fatalf("tiles.json: %v", err)
	}
	if missing := tiles.Missing([]string{"13.png", "14.png", "15.png"}); len(missing) != 0 {
		t.Errorf("tiles.json missing %v", missing)
	}

	rhb, err := l.LoadSheet(ctx, "rhb.json")
	if err != nil {
		t.Fatalf("rhb.json: %v", err)
	}
	if c, ok := rhb.Cell("Slide (5).png"); !ok || c.SpriteSourceSize.Y != 30 {
		t.Errorf("Slide (5).png = %+v, %v", c, ok)
	}
	if _, ok := rhb.Cell("Run (9).png"); ok {
		t.Error("the run animation has eight cells")
	}

	if data, err := l.ReadFile(ctx, "SFX_Jump_23.mp3"); err != nil || len(data) != 0 {
		t.Errorf("jump sound = %d bytes, %v", len(data), err)
	}
}

func TestOpen(t *testing.T) {
	if l, err := Open(""); err != nil || l == nil {
		t.Errorf("Open(\"\") = %v, %v", l, err)
	}
	if _, err := Open(t.TempDir()); err != nil {
		t.Errorf("Open(tempdir) error: %v", err)
	}
	if _, err := Open("/nonexistent/walkdog/assets"); err == nil {
		t.Error("missing directory should fail")
	}
}

func TestPlaceholderRasterize(t *testing.T) {
	p := NewPlaceholder("Stone.png", 4, 6, []Band{
		{FromY: 0, Glyph: " "},
		{FromY: 2, Glyph: "#", Color: 9},
		{FromY: 4, Glyph: "."},
	})

	img := p.Rasterize()

	if img.Bounds().Dx() != 4 || img.Bounds().Dy() != 6 {
		t.Fatalf("bounds = %v, expected 4x6", img.Bounds())
	}
	if a := img.RGBAAt(1, 1).A; a != 0 {
		t.Errorf("transparent band alpha = %d, expected 0", a)
	}
	if got := img.RGBAAt(3, 2); got != core.ANSI(9).Palette() {
		t.Errorf("coloured band = %v, expected bright red", got)
	}
	if got := img.RGBAAt(0, 5); got != core.ColorDefault.Palette() {
		t.Errorf("default band = %v, expected the default gray", got)
	}
}
