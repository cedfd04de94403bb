// Package canvas decodes photographs, pads them onto a white canvas and
// writes the result back to disk.
package canvas

import (
	"errors"
	"fmt"
	"image"
	"image/color"
	_ "image/gif"
	_ "image/jpeg"
	_ "image/png"
	"io/fs"
	"os"
	"path/filepath"

	"github.com/disintegration/imaging"
	"github.com/dixieflatline76/passepartout/pkg/geometry"
	_ "golang.org/x/image/bmp"
	_ "golang.org/x/image/tiff"
	_ "golang.org/x/image/webp"
)

var (
	// ErrNotFound is returned when the input image does not exist.
	ErrNotFound = errors.New("file not found")
	// ErrCanvasTooSmall is returned when the canvas cannot hold the source image.
	ErrCanvasTooSmall = errors.New("canvas smaller than source image")
)

// Background is the fill color of every canvas.
var Background color.Color = color.White

// Open decodes the image at path. With autoOrient set the EXIF orientation
// tag is applied, which may swap the pixel dimensions.
func Open(path string, autoOrient bool) (image.Image, error) {
	img, err := imaging.Open(path, imaging.AutoOrientation(autoOrient))
	if err != nil {
		if errors.Is(err, fs.ErrNotExist) {
			return nil, fmt.Errorf("%w: %s", ErrNotFound, path)
		}
		return nil, fmt.Errorf("decoding image %s: %w", path, err)
	}
	return img, nil
}

// Dimensions returns the width and height of an image file on disk without
// decoding its pixels.
func Dimensions(path string) (int, int, error) {
	file, err := os.Open(path)
	if err != nil {
		if errors.Is(err, fs.ErrNotExist) {
			return 0, 0, fmt.Errorf("%w: %s", ErrNotFound, path)
		}
		return 0, 0, err
	}
	defer file.Close()

	cfg, _, err := image.DecodeConfig(file)
	if err != nil {
		return 0, 0, fmt.Errorf("decoding image config %s: %w", path, err)
	}
	return cfg.Width, cfg.Height, nil
}

// Offset returns where src is pasted so it sits centered on a canvas of the
// given size.
func Offset(size image.Point, src image.Rectangle) image.Point {
	return image.Pt(geometry.Offset(size.X, src.Dx()), geometry.Offset(size.Y, src.Dy()))
}

// Render allocates a white canvas of the given size and pastes src centered
// on it.
func Render(src image.Image, size image.Point) (*image.NRGBA, error) {
	b := src.Bounds()
	if size.X < b.Dx() || size.Y < b.Dy() {
		return nil, fmt.Errorf("%w: canvas %dx%d, source %dx%d", ErrCanvasTooSmall, size.X, size.Y, b.Dx(), b.Dy())
	}

	dst := imaging.New(size.X, size.Y, Background)
	return imaging.Paste(dst, src, Offset(size, b)), nil
}

// OutputPath returns the name the padded image is written to: the base name
// of input with prefix prepended, in the working directory.
func OutputPath(prefix, input string) string {
	return prefix + filepath.Base(input)
}
