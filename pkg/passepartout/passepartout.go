// Package passepartout runs the whole job for one photograph: decode it,
// size the padded canvas for the requested frame, render and save it.
package passepartout

import (
	"errors"
	"fmt"
	"image"
	"os"
	"path/filepath"

	"github.com/dixieflatline76/passepartout/pkg/canvas"
	"github.com/dixieflatline76/passepartout/pkg/geometry"
	"github.com/dixieflatline76/passepartout/util/log"
)

var (
	// ErrCanvasTooLarge is returned when the computed canvas exceeds the
	// configured limits.
	ErrCanvasTooLarge = errors.New("canvas too large")
	// ErrInvalidOutput is returned when the output would replace the input.
	ErrInvalidOutput = errors.New("invalid output path")
)

// Options describe one run.
type Options struct {
	Input  string
	Output string // derived from Input and Prefix when empty
	Prefix string

	Mode   string
	Layout geometry.Layout // mm, either orientation

	JPEGQuality int
	AutoOrient  bool
	MaxCanvas   image.Point // zero means unlimited
	DryRun      bool
}

// Report is what a run produced.
type Report struct {
	Input  string
	Output string // empty on a dry run
	Result geometry.Result
	Canvas image.Point
	Offset image.Point
}

// Run executes the pipeline. The mode and sizes are validated before the
// input file is touched.
func Run(opts Options) (Report, error) {
	mode, err := geometry.ParseMode(opts.Mode)
	if err != nil {
		return Report{}, err
	}
	if err := opts.Layout.Validate(); err != nil {
		return Report{}, err
	}
	log.Printf("mode: %v", mode)
	log.Debugf("PAPER %s", opts.Layout.Paper.Format("mm"))
	log.Debugf("PASSEPARTOUT %s", opts.Layout.Passepartout.Format("mm"))

	output, err := outputPath(opts)
	if err != nil {
		return Report{}, err
	}

	src, err := open(opts)
	if err != nil {
		return Report{}, err
	}
	bounds := src.Bounds()
	imgSize := geometry.SizeOf(src)
	log.Debugf("INPUT IMAGE %s", imgSize.Format("px"))

	layout := geometry.Orient(imgSize, opts.Layout.Landscape())
	if imgSize.IsPortrait() {
		log.Debugf("Portrait image, layout turned to paper %v passepartout %v", layout.Paper, layout.Passepartout)
	}

	calc := geometry.Calculator{Log: log.Debugf}
	result, err := calc.Calculate(imgSize, layout, mode)
	if err != nil {
		return Report{}, err
	}

	report := Report{
		Input:  opts.Input,
		Result: result,
		Canvas: result.Output.Pixels(),
	}
	report.Offset = canvas.Offset(report.Canvas, bounds)
	log.Printf("OUTPUT IMAGE %dx%d px, offset %d,%d", report.Canvas.X, report.Canvas.Y, report.Offset.X, report.Offset.Y)

	if err := checkLimits(report.Canvas, opts.MaxCanvas); err != nil {
		return report, err
	}
	if opts.DryRun {
		return report, nil
	}

	img, err := canvas.Render(src, report.Canvas)
	if err != nil {
		return report, err
	}

	if err := canvas.Save(img, output, opts.JPEGQuality); err != nil {
		return report, fmt.Errorf("saving %s: %w", output, err)
	}
	report.Output = output
	return report, nil
}

// outputPath resolves where the result goes and refuses any path that is
// the input itself.
func outputPath(opts Options) (string, error) {
	output := opts.Output
	if output == "" {
		if opts.Prefix == "" {
			return "", fmt.Errorf("%w: empty output prefix for %s", ErrInvalidOutput, opts.Input)
		}
		output = canvas.OutputPath(opts.Prefix, opts.Input)
	}

	in, err := filepath.Abs(opts.Input)
	if err != nil {
		return "", fmt.Errorf("resolving %s: %w", opts.Input, err)
	}
	out, err := filepath.Abs(output)
	if err != nil {
		return "", fmt.Errorf("resolving %s: %w", output, err)
	}
	if in == out {
		return "", fmt.Errorf("%w: %s is the input", ErrInvalidOutput, output)
	}

	// Catches links and case-insensitive file systems.
	inInfo, inErr := os.Stat(in)
	outInfo, outErr := os.Stat(out)
	if inErr == nil && outErr == nil && os.SameFile(inInfo, outInfo) {
		return "", fmt.Errorf("%w: %s is the same file as %s", ErrInvalidOutput, output, opts.Input)
	}
	return output, nil
}

// open decodes the input. A dry run without auto orientation only needs the
// dimensions, so it skips decoding the pixels.
func open(opts Options) (image.Image, error) {
	if opts.DryRun && !opts.AutoOrient {
		w, h, err := canvas.Dimensions(opts.Input)
		if err != nil {
			return nil, err
		}
		return image.Rectangle{Max: image.Pt(w, h)}, nil
	}
	return canvas.Open(opts.Input, opts.AutoOrient)
}

func checkLimits(size, limit image.Point) error {
	if limit.X > 0 && size.X > limit.X {
		return fmt.Errorf("%w: width %dpx exceeds %dpx", ErrCanvasTooLarge, size.X, limit.X)
	}
	if limit.Y > 0 && size.Y > limit.Y {
		return fmt.Errorf("%w: height %dpx exceeds %dpx", ErrCanvasTooLarge, size.Y, limit.Y)
	}
	return nil
}
