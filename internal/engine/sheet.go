package engine

import (
	"encoding/json"
	"errors"
	"fmt"
	"sort"

	"github.com/vovakirdan/walk-the-dog/internal/core"
)

// SheetRect is a rectangle as it appears in a sprite-sheet JSON file.
type SheetRect struct {
	X int16 `json:"x"`
	Y int16 `json:"y"`
	W int16 `json:"w"`
	H int16 `json:"h"`
}

// Rect converts the sheet rectangle to a core.Rect.
func (r SheetRect) Rect() core.Rect {
	return core.NewRect(r.X, r.Y, r.W, r.H)
}

// Cell is one named sprite in a sheet: where it sits in the image and how
// far it is offset from its logical origin.
type Cell struct {
	Frame            SheetRect `json:"frame"`
	SpriteSourceSize SheetRect `json:"spriteSourceSize"`
}

// Sheet maps sprite names to cells.
type Sheet struct {
	Frames map[string]Cell `json:"frames"`
}

// ParseSheet decodes a sprite-sheet JSON document of the form
// {"frames": {"<name>": {"frame": {...}, "spriteSourceSize": {...}}}}.
func ParseSheet(data []byte) (Sheet, error) {
	var sheet Sheet
	if err := json.Unmarshal(data, &sheet); err != nil {
		return Sheet{}, fmt.Errorf("engine: parse sheet: %w", err)
	}
	if len(sheet.Frames) == 0 {
		return Sheet{}, errors.New("engine: parse sheet: no frames")
	}
	return sheet, nil
}

// Cell looks up a sprite by name.
func (s Sheet) Cell(name string) (Cell, bool) {
	c, ok := s.Frames[name]
	return c, ok
}

// Names returns the sprite names in sorted order.
func (s Sheet) Names() []string {
	names := make([]string, 0, len(s.Frames))
	for name := range s.Frames {
		names = append(names, name)
	}
	sort.Strings(names)
	return names
}

// Missing returns the names from want that the sheet does not contain.
func (s Sheet) Missing(want []string) []string {
	var missing []string
	for _, name := range want {
		if _, ok := s.Frames[name]; !ok {
			missing = append(missing, name)
		}
	}
	return missing
}

// SpriteSheet pairs a sheet with the image its cells point into.
// It is read-only after construction and is shared by every obstacle
// drawn from it.
type SpriteSheet struct {
	sheet Sheet
	image Image
}

// NewSpriteSheet creates a sprite sheet.
func NewSpriteSheet(sheet Sheet, image Image) *SpriteSheet {
	return &SpriteSheet{sheet: sheet, image: image}
}

// Cell looks up a sprite by name.
func (s *SpriteSheet) Cell(name string) (Cell, bool) {
	return s.sheet.Cell(name)
}

// Draw copies the source region of the sheet's image into destination.
func (s *SpriteSheet) Draw(r Renderer, source, destination core.Rect) {
	r.DrawImage(s.image, source, destination)
}
