package renderer

import (
	"image"
	"image/color"
)

// ImageSink receives rendered pixels. Channels are bytes truncated from clamped colors.
type ImageSink interface {
	SetPixel(x, y int, r, g, b uint8)
}

// ImageSinkFunc adapts a function to the ImageSink interface
type ImageSinkFunc func(x, y int, r, g, b uint8)

// SetPixel calls f(x, y, r, g, b)
func (f ImageSinkFunc) SetPixel(x, y int, r, g, b uint8) {
	f(x, y, r, g, b)
}

// Image is an in-memory RGBA buffer that can be rendered into and then encoded
type Image struct {
	*image.RGBA
}

// NewImage creates an opaque black image
func NewImage(width, height int) *Image {
	return &Image{RGBA: image.NewRGBA(image.Rect(0, 0, width, height))}
}

// SetPixel implements ImageSink
func (img *Image) SetPixel(x, y int, r, g, b uint8) {
	img.SetRGBA(x, y, color.RGBA{R: r, G: g, B: b, A: 255})
}
