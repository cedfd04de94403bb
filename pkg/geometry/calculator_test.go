package geometry

import (
	"errors"
	"image"
	"math"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func layout(pw, ph, mw, mh float64) Layout {
	return Layout{Paper: NewSize(pw, ph), Passepartout: NewSize(mw, mh)}
}

func TestOrient(t *testing.T) {
	l := layout(297, 210, 260, 180)

	tests := []struct {
		name  string
		image Size
		want  Layout
	}{
		{"Landscape", NewSize(4000, 3000), l},
		{"Square", NewSize(2000, 2000), l},
		{"Portrait", NewSize(3000, 4000), layout(210, 297, 180, 260)},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, Orient(tt.image, l))
		})
	}
}

func TestLayout_Landscape(t *testing.T) {
	tests := []struct {
		name   string
		layout Layout
		want   Layout
	}{
		{"LandscapePaper", layout(297, 210, 260, 180), layout(297, 210, 260, 180)},
		{"PortraitPaper", layout(210, 297, 180, 260), layout(297, 210, 260, 180)},
		{"PortraitPaperLandscapeWindow", layout(200, 300, 150, 100), layout(300, 200, 100, 150)},
		{"LandscapePaperPortraitWindow", layout(300, 200, 100, 150), layout(300, 200, 100, 150)},
		{"SquarePaper", layout(300, 300, 100, 150), layout(300, 300, 100, 150)},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, tt.layout.Landscape())
		})
	}
}

func TestCalculate_AspectFillExample(t *testing.T) {
	img := NewSize(4000, 3000)
	l := Orient(img, layout(210, 297, 180, 260).Landscape())
	require.Equal(t, layout(297, 210, 260, 180), l)

	r, err := Calculate(img, l, AspectFill)
	require.NoError(t, err)

	assert.InDelta(t, 4000.0/260, r.WidthDensity, 1e-9)
	assert.InDelta(t, 3000.0/180, r.HeightDensity, 1e-9)
	assert.Equal(t, r.WidthDensity, r.Density)
	assert.InDelta(t, 260, r.Ideal.Width, 1e-9)
	assert.InDelta(t, 195, r.Ideal.Height, 1e-9)
	assert.InDelta(t, 0, r.Slack.Width, 1e-9)
	assert.InDelta(t, -15, r.Slack.Height, 1e-9)
	assert.InDelta(t, 4569.2308, r.Output.Width, 1e-3)
	assert.InDelta(t, 3230.7692, r.Output.Height, 1e-3)
	assert.Greater(t, r.Output.Width, img.Width)
	assert.Greater(t, r.Output.Height, img.Height)
	assert.Equal(t, image.Pt(4569, 3231), r.Output.Pixels())
}

func TestCalculate_UnrotatedExampleIsUnsatisfiable(t *testing.T) {
	// A landscape photograph against a portrait sheet leaves no horizontal room.
	_, err := Calculate(NewSize(4000, 3000), layout(210, 297, 180, 260), AspectFill)
	assert.ErrorIs(t, err, ErrUnsatisfiableGeometry)
}

func TestCalculate_AspectFit(t *testing.T) {
	img := NewSize(4000, 3000)
	r, err := Calculate(img, layout(297, 210, 260, 180), AspectFit)
	require.NoError(t, err)

	assert.Equal(t, math.Max(r.WidthDensity, r.HeightDensity), r.Density)
	assert.LessOrEqual(t, r.Ideal.Width, 260+1e-9)
	assert.LessOrEqual(t, r.Ideal.Height, 180+1e-9)
	assert.InDelta(t, 180, r.Ideal.Height, 1e-9)
	assert.InDelta(t, 20, r.Slack.Width, 1e-9)
	assert.Greater(t, r.Additional.Width, 0.0)
	assert.Greater(t, r.Additional.Height, 0.0)
}

func TestCalculate_DensityLaws(t *testing.T) {
	images := []Size{
		NewSize(4000, 3000), NewSize(6000, 4000), NewSize(3000, 3000),
		NewSize(1200, 1000), NewSize(5472, 3648),
	}
	layouts := []Layout{
		layout(297, 210, 260, 180),
		layout(400, 300, 300, 200),
		layout(240, 180, 150, 100),
	}

	checked := 0
	for _, img := range images {
		for _, l := range layouts {
			fill, err := Calculate(img, l, AspectFill)
			if errors.Is(err, ErrUnsatisfiableGeometry) {
				continue
			}
			require.NoError(t, err, "%v %v", img, l)
			checked++
			assert.Equal(t, math.Min(fill.WidthDensity, fill.HeightDensity), fill.Density)
			assert.GreaterOrEqual(t, fill.Ideal.Width, l.Passepartout.Width-1e-9)
			assert.GreaterOrEqual(t, fill.Ideal.Height, l.Passepartout.Height-1e-9)

			fit, err := Calculate(img, l, AspectFit)
			if errors.Is(err, ErrUnsatisfiableGeometry) {
				continue
			}
			require.NoError(t, err)
			assert.Equal(t, math.Max(fit.WidthDensity, fit.HeightDensity), fit.Density)
			assert.LessOrEqual(t, fit.Ideal.Width, l.Passepartout.Width+1e-9)
			assert.LessOrEqual(t, fit.Ideal.Height, l.Passepartout.Height+1e-9)
		}
	}
	assert.Greater(t, checked, 5)
}

func TestCalculate_Idempotent(t *testing.T) {
	img := NewSize(5472, 3648)
	l := layout(300, 240, 240, 160)
	for _, mode := range []Mode{AspectFill, AspectFit} {
		a, errA := Calculate(img, l, mode)
		b, errB := Calculate(img, l, mode)
		require.NoError(t, errA)
		require.NoError(t, errB)
		assert.Equal(t, a, b)
		assert.Equal(t, math.Float64bits(a.Output.Width), math.Float64bits(b.Output.Width))
		assert.Equal(t, math.Float64bits(a.Output.Height), math.Float64bits(b.Output.Height))
	}
}

func TestCalculate_Failures(t *testing.T) {
	tests := []struct {
		name   string
		image  Size
		layout Layout
		mode   Mode
		want   error
	}{
		{"PaperEqualsPassepartout", NewSize(4000, 3000), layout(260, 180, 260, 180), AspectFill, ErrUnsatisfiableGeometry},
		{"PaperEqualsPassepartoutFit", NewSize(4000, 3000), layout(260, 180, 260, 180), AspectFit, ErrUnsatisfiableGeometry},
		{"ZeroImage", NewSize(0, 3000), layout(297, 210, 260, 180), AspectFill, ErrInvalidSize},
		{"NegativePaper", NewSize(4000, 3000), layout(-297, 210, 260, 180), AspectFill, ErrInvalidSize},
		{"ZeroPassepartout", NewSize(4000, 3000), layout(297, 210, 0, 180), AspectFill, ErrInvalidSize},
		{"NaNPaper", NewSize(4000, 3000), layout(math.NaN(), 210, 260, 180), AspectFill, ErrInvalidSize},
		{"UnknownMode", NewSize(4000, 3000), layout(297, 210, 260, 180), Mode(7), ErrInvalidMode},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := Calculate(tt.image, tt.layout, tt.mode)
			assert.ErrorIs(t, err, tt.want)
		})
	}
}

func TestCalculator_Log(t *testing.T) {
	var lines []string
	c := Calculator{Log: func(format string, args ...any) {
		lines = append(lines, format)
	}}

	silent, err := Calculate(NewSize(4000, 3000), layout(297, 210, 260, 180), AspectFill)
	require.NoError(t, err)
	logged, err := c.Calculate(NewSize(4000, 3000), layout(297, 210, 260, 180), AspectFill)
	require.NoError(t, err)

	assert.Equal(t, silent, logged)
	assert.NotEmpty(t, lines)
}

func TestOffset(t *testing.T) {
	tests := []struct {
		dst, src, want int
	}{
		{4569, 4000, 284},
		{3231, 3000, 115},
		{4570, 4000, 285},
		{100, 100, 0},
		{101, 100, 0},
		{99, 100, 0},
		{97, 100, -1},
	}

	for _, tt := range tests {
		got := Offset(tt.dst, tt.src)
		assert.Equal(t, tt.want, got, "Offset(%d, %d)", tt.dst, tt.src)
		if (tt.dst-tt.src)%2 == 0 {
			assert.Equal(t, tt.dst-tt.src, 2*got)
		}
	}
}
