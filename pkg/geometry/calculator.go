// Package geometry computes the padded canvas that centers a photograph in a
// passepartout window. It converts between the photograph's pixel space and
// the millimeter space of the paper through a single pixel density.
package geometry

import (
	"fmt"
	"math"
)

// Layout is the physical arrangement, in millimeters.
type Layout struct {
	Paper        Size
	Passepartout Size
}

// Landscape returns the layout turned so the paper's long side is
// horizontal. Paper and passepartout turn together.
func (l Layout) Landscape() Layout {
	if l.Paper.IsPortrait() {
		return l.Swap()
	}
	return l
}

// Swap returns the layout turned by a quarter, paper and passepartout alike.
func (l Layout) Swap() Layout {
	return Layout{Paper: l.Paper.Swap(), Passepartout: l.Passepartout.Swap()}
}

// Validate checks that both sizes are strictly positive.
func (l Layout) Validate() error {
	if !l.Paper.Positive() {
		return fmt.Errorf("%w: paper %v", ErrInvalidSize, l.Paper)
	}
	if !l.Passepartout.Positive() {
		return fmt.Errorf("%w: passepartout %v", ErrInvalidSize, l.Passepartout)
	}
	return nil
}

// Orient turns the layout to match the photograph. A portrait photograph
// swaps both paper and passepartout; anything else is returned unchanged.
func Orient(img Size, layout Layout) Layout {
	if !img.IsPortrait() {
		return layout
	}
	return layout.Swap()
}

// Result holds every quantity derived by Calculate.
type Result struct {
	Mode   Mode
	Image  Size   // px
	Layout Layout // mm

	WidthDensity  float64 // px/mm
	HeightDensity float64 // px/mm
	Density       float64 // px/mm, the governing one

	Ideal      Size // mm occupied by the photograph at Density
	Slack      Size // mm, Passepartout - Ideal; informational
	Additional Size // px of padding per axis
	Output     Size // px, Image + Additional, unrounded
}

// Calculator computes output sizes. Log, when set, receives diagnostic lines;
// it has no influence on the result.
type Calculator struct {
	Log func(format string, args ...any)
}

// Calculate is a shorthand for a silent Calculator.
func Calculate(img Size, layout Layout, mode Mode) (Result, error) {
	return Calculator{}.Calculate(img, layout, mode)
}

// Calculate computes the padded canvas for a photograph of img pixels placed
// behind the layout's passepartout. The layout must already be oriented to
// the photograph (see Orient).
func (c Calculator) Calculate(img Size, layout Layout, mode Mode) (Result, error) {
	if !img.Positive() {
		return Result{}, fmt.Errorf("%w: image %v", ErrInvalidSize, img)
	}
	if err := layout.Validate(); err != nil {
		return Result{}, err
	}

	r := Result{
		Mode:          mode,
		Image:         img,
		Layout:        layout,
		WidthDensity:  img.Width / layout.Passepartout.Width,
		HeightDensity: img.Height / layout.Passepartout.Height,
	}

	switch mode {
	case AspectFill:
		r.Density = math.Min(r.WidthDensity, r.HeightDensity)
	case AspectFit:
		r.Density = math.Max(r.WidthDensity, r.HeightDensity)
	default:
		return Result{}, fmt.Errorf("%w: %v", ErrInvalidMode, mode)
	}
	c.logf("mode=%v density w=%f h=%f governing=%f px/mm", mode, r.WidthDensity, r.HeightDensity, r.Density)

	r.Ideal = Size{Width: img.Width / r.Density, Height: img.Height / r.Density}
	r.Slack = Size{
		Width:  layout.Passepartout.Width - r.Ideal.Width,
		Height: layout.Passepartout.Height - r.Ideal.Height,
	}
	c.logf("ideal %s, slack %s", r.Ideal.Format("mm"), r.Slack)

	r.Additional = Size{
		Width:  (layout.Paper.Width - r.Ideal.Width) * r.Density,
		Height: (layout.Paper.Height - r.Ideal.Height) * r.Density,
	}
	if r.Additional.Width <= 0 {
		return Result{}, fmt.Errorf("%w: paper width %gmm leaves %gpx of padding around %gmm of image",
			ErrUnsatisfiableGeometry, layout.Paper.Width, r.Additional.Width, r.Ideal.Width)
	}
	if r.Additional.Height <= 0 {
		return Result{}, fmt.Errorf("%w: paper height %gmm leaves %gpx of padding around %gmm of image",
			ErrUnsatisfiableGeometry, layout.Paper.Height, r.Additional.Height, r.Ideal.Height)
	}

	r.Output = Size{Width: img.Width + r.Additional.Width, Height: img.Height + r.Additional.Height}
	c.logf("additional %s px, output %s", r.Additional, r.Output.Format("px"))
	return r, nil
}

func (c Calculator) logf(format string, args ...any) {
	if c.Log != nil {
		c.Log(format, args...)
	}
}

// Offset returns the position that centers a source of length src on a
// canvas of length dst, truncated toward zero.
func Offset(dst, src int) int {
	return (dst - src) / 2
}
