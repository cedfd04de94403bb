package canvas

import (
	"fmt"
	"image"
	"os"
	"path/filepath"

	"github.com/disintegration/imaging"
	"github.com/dixieflatline76/passepartout/util/log"
	"github.com/google/uuid"
)

// DefaultJPEGQuality matches the encoder setting used for every JPEG we write.
const DefaultJPEGQuality = 95

// Save encodes img in the format implied by the extension of path. The data
// goes to a temporary file next to path first and is renamed into place once
// complete, so a failed encode never leaves a truncated output behind.
func Save(img image.Image, path string, quality int) error {
	format, err := imaging.FormatFromFilename(path)
	if err != nil {
		return fmt.Errorf("choosing format for %s: %w", path, err)
	}
	if quality <= 0 || quality > 100 {
		quality = DefaultJPEGQuality
	}

	tmp := filepath.Join(filepath.Dir(path), "."+uuid.NewString()+".tmp")
	f, err := os.OpenFile(tmp, os.O_WRONLY|os.O_CREATE|os.O_EXCL, 0644)
	if err != nil {
		return fmt.Errorf("creating temp file: %w", err)
	}

	if err := imaging.Encode(f, img, format, imaging.JPEGQuality(quality)); err != nil {
		f.Close()
		removeTemp(tmp)
		return fmt.Errorf("encoding image: %w", err)
	}
	if err := f.Close(); err != nil {
		removeTemp(tmp)
		return fmt.Errorf("closing temp file: %w", err)
	}
	if err := os.Rename(tmp, path); err != nil {
		removeTemp(tmp)
		return fmt.Errorf("moving image into place: %w", err)
	}

	log.Debugf("Saved %s (%s)", path, format)
	return nil
}

func removeTemp(path string) {
	if err := os.Remove(path); err != nil {
		log.Printf("Failed to remove temp file %s: %v", path, err)
	}
}
