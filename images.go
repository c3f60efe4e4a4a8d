package kotoba

import (
	"bytes"
	"fmt"
	"image"
	"image/jpeg"
	"io/fs"
	"os"
	"path/filepath"
	"strings"

	_ "image/gif"
	_ "image/png"

	"github.com/rs/zerolog"
	"golang.org/x/image/draw"
)

const (
	maxImageWidth = 800
	jpegQuality   = 80
)

// OptimizeImages walks dir, resizes every image wider than maxImageWidth
// down to it, and re-encodes the result as JPEG next to the original
// (same name, .jpg extension). Posts reference these optimized variants
// as their featuredImage. Returns the number of images written.
func OptimizeImages(dir string, log zerolog.Logger) (int, error) {
	written := 0
	err := filepath.WalkDir(dir, func(path string, d fs.DirEntry, err error) error {
		if err != nil {
			return err
		}
		if d.IsDir() || !isImageFile(d.Name()) {
			return nil
		}
		out := strings.TrimSuffix(path, filepath.Ext(path)) + ".jpg"
		changed, err := optimizeImage(path, out)
		if err != nil {
			log.Warn().Err(err).Str("file", d.Name()).Msg("skipping image")
			return nil
		}
		if changed {
			log.Info().Str("file", filepath.Base(out)).Msg("optimized image")
			written++
		}
		return nil
	})
	return written, err
}

// optimizeImage reports whether it wrote a new file; already-small JPEGs
// are left alone.
func optimizeImage(src, dst string) (bool, error) {
	f, err := os.Open(src)
	if err != nil {
		return false, err
	}
	defer f.Close()

	img, format, err := image.Decode(f)
	if err != nil {
		return false, fmt.Errorf("decode: %w", err)
	}

	bounds := img.Bounds()
	w, h := bounds.Dx(), bounds.Dy()
	if w <= maxImageWidth && format == "jpeg" {
		return false, nil
	}

	if w > maxImageWidth {
		newH := h * maxImageWidth / w
		scaled := image.NewRGBA(image.Rect(0, 0, maxImageWidth, newH))
		draw.CatmullRom.Scale(scaled, scaled.Bounds(), img, bounds, draw.Over, nil)
		img = scaled
	}

	var buf bytes.Buffer
	if err := jpeg.Encode(&buf, img, &jpeg.Options{Quality: jpegQuality}); err != nil {
		return false, fmt.Errorf("encode jpeg: %w", err)
	}
	if err := os.WriteFile(dst, buf.Bytes(), 0o644); err != nil {
		return false, err
	}
	return true, nil
}

func isImageFile(name string) bool {
	switch strings.ToLower(filepath.Ext(name)) {
	case ".jpg", ".jpeg", ".png", ".gif":
		return true
	}
	return false
}
