// Package engine defines the capabilities the game consumes from a frontend
// (rendering, audio, asset loading, the restart button) and the
// fixed-timestep loop that drives a Game. Frontends implement the
// interfaces; the game never sees a terminal or a GPU.
package engine

import "github.com/vovakirdan/walk-the-dog/internal/core"

// Image is a decoded picture owned by a frontend.
type Image interface {
	Width() int
	Height() int
}

// Renderer draws onto a canvas measured in game pixels.
type Renderer interface {
	// Clear blanks the given area.
	Clear(rect core.Rect)
	// DrawImage copies the frame region of img into destination.
	DrawImage(img Image, frame, destination core.Rect)
	// DrawRect outlines rect. Used for debug bounding boxes.
	DrawRect(rect core.Rect)
	// DrawText writes text with its top-left corner at the given point.
	DrawText(text string, at core.Point)
}
