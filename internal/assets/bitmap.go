package assets

import "image"

// Bitmap is a decoded image file.
type Bitmap struct {
	name string
	img  image.Image
}

// NewBitmap wraps a decoded image.
func NewBitmap(name string, img image.Image) *Bitmap {
	return &Bitmap{name: name, img: img}
}

// Name returns the file the bitmap was decoded from.
func (b *Bitmap) Name() string { return b.name }

// Width returns the image width in pixels.
func (b *Bitmap) Width() int { return b.img.Bounds().Dx() }

// Height returns the image height in pixels.
func (b *Bitmap) Height() int { return b.img.Bounds().Dy() }

// Image returns the decoded pixels.
func (b *Bitmap) Image() image.Image { return b.img }
