package geometry

import (
	"fmt"
	"image"
	"math"
)

// Size is a width/height pair. The unit (millimeters or pixels) is tracked by
// the caller, not by the type.
type Size struct {
	Width  float64
	Height float64
}

// NewSize returns a Size with the given width and height.
func NewSize(width, height float64) Size {
	return Size{Width: width, Height: height}
}

// SizeOf returns the pixel size of an image.
func SizeOf(img image.Image) Size {
	b := img.Bounds()
	return Size{Width: float64(b.Dx()), Height: float64(b.Dy())}
}

// Ratio returns width divided by height.
func (s Size) Ratio() float64 {
	return s.Width / s.Height
}

// IsPortrait reports whether the size is taller than it is wide.
func (s Size) IsPortrait() bool {
	return s.Height > s.Width
}

// Swap returns the size with width and height exchanged.
func (s Size) Swap() Size {
	return Size{Width: s.Height, Height: s.Width}
}

// Positive reports whether both dimensions are finite and greater than zero.
func (s Size) Positive() bool {
	return positive(s.Width) && positive(s.Height)
}

// Pixels rounds both dimensions to the nearest whole pixel.
func (s Size) Pixels() image.Point {
	return image.Pt(int(math.Round(s.Width)), int(math.Round(s.Height)))
}

// Format renders the size with a unit suffix, e.g. "210mm x 297mm (ratio=0.707071)".
func (s Size) Format(unit string) string {
	return fmt.Sprintf("%g%s x %g%s (ratio=%f)", s.Width, unit, s.Height, unit, s.Ratio())
}

func (s Size) String() string {
	return fmt.Sprintf("%gx%g", s.Width, s.Height)
}

func positive(v float64) bool {
	return v > 0 && !math.IsInf(v, 0) && !math.IsNaN(v)
}
