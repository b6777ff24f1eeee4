// Package assets loads the game's images, sprite sheets and sounds from a
// file system: either the embedded terminal pack or a directory holding the
// full PNG/MP3 art.
package assets

import (
	"bytes"
	"context"
	"embed"
	"errors"
	"fmt"
	"image"
	_ "image/png" // PNG decoder for Bitmap
	"io/fs"
	"os"

	"gopkg.in/yaml.v3"

	"github.com/vovakirdan/walk-the-dog/internal/engine"
)

// ManifestFile is the optional placeholder manifest at the root of a pack.
const ManifestFile = "manifest.yaml"

//go:embed pack
var embedded embed.FS

// Manifest describes placeholder images and file-less sounds.
type Manifest struct {
	Images map[string]PlaceholderSpec `yaml:"images"`
	Sounds []string                   `yaml:"sounds"`
}

// PlaceholderSpec is one manifest image entry.
type PlaceholderSpec struct {
	Width  int    `yaml:"width"`
	Height int    `yaml:"height"`
	Bands  []Band `yaml:"bands"`
}

// FS loads assets from a file system. It implements engine.Loader.
type FS struct {
	fsys     fs.FS
	manifest Manifest
}

var _ engine.Loader = (*FS)(nil)

// NewFS creates a loader over fsys, reading its manifest if one exists.
func NewFS(fsys fs.FS) (*FS, error) {
	l := &FS{fsys: fsys}
	data, err := fs.ReadFile(fsys, ManifestFile)
	switch {
	case errors.Is(err, fs.ErrNotExist):
		return l, nil
	case err != nil:
		return nil, fmt.Errorf("assets: read manifest: %w", err)
	}
	if err := yaml.Unmarshal(data, &l.manifest); err != nil {
		return nil, fmt.Errorf("assets: parse manifest: %w", err)
	}
	for name, entry := range l.manifest.Images {
		if entry.Width <= 0 || entry.Height <= 0 {
			return nil, fmt.Errorf("assets: manifest image %s has size %dx%d", name, entry.Width, entry.Height)
		}
	}
	return l, nil
}

// Embedded returns a loader over the built-in terminal pack.
func Embedded() *FS {
	sub, err := fs.Sub(embedded, "pack")
	if err != nil {
		panic(err) // the pack directory is compiled in
	}
	l, err := NewFS(sub)
	if err != nil {
		panic(err)
	}
	return l
}

// Dir returns a loader over a directory on disk.
func Dir(path string) (*FS, error) {
	info, err := os.Stat(path)
	if err != nil {
		return nil, fmt.Errorf("assets: %w", err)
	}
	if !info.IsDir() {
		return nil, fmt.Errorf("assets: %s is not a directory", path)
	}
	return NewFS(os.DirFS(path))
}

// Open returns the embedded pack when dir is empty, otherwise a directory loader.
func Open(dir string) (*FS, error) {
	if dir == "" {
		return Embedded(), nil
	}
	return Dir(dir)
}

// LoadImage returns a placeholder for manifest images and decodes anything else.
func (l *FS) LoadImage(ctx context.Context, name string) (engine.Image, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}
	if entry, ok := l.manifest.Images[name]; ok {
		return NewPlaceholder(name, entry.Width, entry.Height, entry.Bands), nil
	}

	data, err := fs.ReadFile(l.fsys, name)
	if err != nil {
		return nil, fmt.Errorf("assets: image %s: %w", name, err)
	}
	img, _, err := image.Decode(bytes.NewReader(data))
	if err != nil {
		return nil, fmt.Errorf("assets: decode image %s: %w", name, err)
	}
	return NewBitmap(name, img), nil
}

// LoadSheet reads and parses a sprite-sheet JSON file.
func (l *FS) LoadSheet(ctx context.Context, name string) (engine.Sheet, error) {
	data, err := l.ReadFile(ctx, name)
	if err != nil {
		return engine.Sheet{}, err
	}
	sheet, err := engine.ParseSheet(data)
	if err != nil {
		return engine.Sheet{}, fmt.Errorf("assets: sheet %s: %w", name, err)
	}
	return sheet, nil
}

// ReadFile returns a file's bytes. Sounds listed in the manifest have none.
func (l *FS) ReadFile(ctx context.Context, name string) ([]byte, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}
	for _, s := range l.manifest.Sounds {
		if s == name {
			return nil, nil
		}
	}
	data, err := fs.ReadFile(l.fsys, name)
	if err != nil {
		return nil, fmt.Errorf("assets: read %s: %w", name, err)
	}
	return data, nil
}
