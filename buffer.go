package vgrade

import (
	"image"
	"image/color"
	"image/draw"
	"image/png"
	"os"
)

// PixelBuffer is a width×height grid of straight (non-premultiplied)
// RGBA samples, 4 bytes per pixel in row-major order.
//
// A PixelBuffer is owned by one caller at a time. The pipeline mutates it
// in place and keeps no reference after returning.
type PixelBuffer struct {
	width  int
	height int
	data   []uint8
}

// NewPixelBuffer allocates a transparent buffer. Negative dimensions are
// treated as zero.
func NewPixelBuffer(width, height int) *PixelBuffer {
	width = max(width, 0)
	height = max(height, 0)
	return &PixelBuffer{
		width:  width,
		height: height,
		data:   make([]uint8, width*height*4),
	}
}

// WrapPixelBuffer adopts data as the pixel storage of a width×height
// buffer without copying. It returns a *ShapeError when len(data) is not
// width*height*4.
func WrapPixelBuffer(width, height int, data []uint8) (*PixelBuffer, error) {
	if err := checkShape(width, height, len(data)); err != nil {
		return nil, err
	}
	return &PixelBuffer{width: width, height: height, data: data}, nil
}

// Width returns the width of the buffer.
func (p *PixelBuffer) Width() int {
	return p.width
}

// Height returns the height of the buffer.
func (p *PixelBuffer) Height() int {
	return p.height
}

// Data returns the raw RGBA bytes.
func (p *PixelBuffer) Data() []uint8 {
	return p.data
}

// Validate reports whether the data length agrees with the dimensions.
func (p *PixelBuffer) Validate() error {
	if p == nil {
		return &ShapeError{}
	}
	return checkShape(p.width, p.height, len(p.data))
}

// SetPixel sets one pixel. Out-of-bounds coordinates are ignored.
func (p *PixelBuffer) SetPixel(x, y int, c color.NRGBA) {
	if x < 0 || x >= p.width || y < 0 || y >= p.height {
		return
	}
	i := (y*p.width + x) * 4
	p.data[i+0] = c.R
	p.data[i+1] = c.G
	p.data[i+2] = c.B
	p.data[i+3] = c.A
}

// Pixel returns one pixel. Out-of-bounds coordinates yield transparent black.
func (p *PixelBuffer) Pixel(x, y int) color.NRGBA {
	if x < 0 || x >= p.width || y < 0 || y >= p.height {
		return color.NRGBA{}
	}
	i := (y*p.width + x) * 4
	return color.NRGBA{R: p.data[i+0], G: p.data[i+1], B: p.data[i+2], A: p.data[i+3]}
}

// Fill sets every pixel to c.
func (p *PixelBuffer) Fill(c color.NRGBA) {
	for i := 0; i < len(p.data); i += 4 {
		p.data[i+0] = c.R
		p.data[i+1] = c.G
		p.data[i+2] = c.B
		p.data[i+3] = c.A
	}
}

// Clear zeroes the buffer.
func (p *PixelBuffer) Clear() {
	clear(p.data)
}

// Clone returns a deep copy.
func (p *PixelBuffer) Clone() *PixelBuffer {
	data := make([]uint8, len(p.data))
	copy(data, p.data)
	return &PixelBuffer{width: p.width, height: p.height, data: data}
}

// ToImage returns an *image.NRGBA that shares storage with the buffer.
func (p *PixelBuffer) ToImage() *image.NRGBA {
	return &image.NRGBA{
		Pix:    p.data,
		Stride: p.width * 4,
		Rect:   image.Rect(0, 0, p.width, p.height),
	}
}

// FromImage copies img into a new buffer, converting to straight RGBA.
func FromImage(img image.Image) *PixelBuffer {
	b := img.Bounds()
	pb := NewPixelBuffer(b.Dx(), b.Dy())
	draw.Draw(pb.ToImage(), pb.ToImage().Rect, img, b.Min, draw.Src)
	return pb
}

// SavePNG saves the buffer to a PNG file.
func (p *PixelBuffer) SavePNG(path string) error {
	f, err := os.Create(path) //nolint:gosec // path is user-provided intentionally
	if err != nil {
		return err
	}
	if err := png.Encode(f, p.ToImage()); err != nil {
		_ = f.Close()
		return err
	}
	return f.Close()
}

// At implements the image.Image interface.
func (p *PixelBuffer) At(x, y int) color.Color {
	return p.Pixel(x, y)
}

// Bounds implements the image.Image interface.
func (p *PixelBuffer) Bounds() image.Rectangle {
	return image.Rect(0, 0, p.width, p.height)
}

// ColorModel implements the image.Image interface.
func (p *PixelBuffer) ColorModel() color.Model {
	return color.NRGBAModel
}
