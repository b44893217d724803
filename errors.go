package vgrade

import (
	"errors"
	"math"
	"strconv"
)

var (
	// ErrInvalidBufferShape is returned when a pixel buffer's length is not
	// a multiple of 4 or does not match width*height*4.
	ErrInvalidBufferShape = errors.New("vgrade: invalid buffer shape")

	// ErrInvalidPlotSize is returned when scope plot dimensions are negative.
	ErrInvalidPlotSize = errors.New("vgrade: invalid scope plot size")

	// ErrUnknownLut is returned by ParseLutName for unrecognized names.
	ErrUnknownLut = errors.New("vgrade: unknown lut")

	// ErrUnknownTemplate is returned by ApplyTemplate for unrecognized names.
	ErrUnknownTemplate = errors.New("vgrade: unknown template")
)

// ShapeError describes a buffer whose dimensions and data disagree.
// It matches ErrInvalidBufferShape under errors.Is.
type ShapeError struct {
	Width  int
	Height int
	Len    int
}

func (e *ShapeError) Error() string {
	return "vgrade: invalid buffer shape: " + strconv.Itoa(e.Width) + "x" +
		strconv.Itoa(e.Height) + " with " + strconv.Itoa(e.Len) + " bytes"
}

// Is reports whether target is ErrInvalidBufferShape.
func (e *ShapeError) Is(target error) bool {
	return target == ErrInvalidBufferShape
}

func checkShape(width, height, n int) error {
	bad := width < 0 || height < 0 || n%4 != 0 ||
		// width*height*4 must not overflow int.
		(width != 0 && height > math.MaxInt/4/width)
	if bad || n != width*height*4 {
		return &ShapeError{Width: width, Height: height, Len: n}
	}
	return nil
}
