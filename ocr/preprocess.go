package ocr

import (
	"bytes"
	"fmt"
	"image"
	_ "image/gif"  // register GIF decoder
	_ "image/jpeg" // register JPEG decoder
	"image/png"

	_ "golang.org/x/image/bmp" // register BMP decoder
	"golang.org/x/image/draw"
	_ "golang.org/x/image/tiff" // register TIFF decoder
	_ "golang.org/x/image/webp" // register WebP decoder
)

// DefaultMinWidth is the width below which scans are upscaled before
// recognition. Tesseract is most accurate at roughly 300 DPI, which is
// about 2500 pixels across an A4 page.
const DefaultMinWidth = 2000

// Preprocess prepares a scanned image for recognition: it decodes any
// supported format, upscales images narrower than minWidth with
// Catmull-Rom resampling, converts to grayscale and re-encodes as PNG.
// A minWidth of zero or less disables upscaling.
func Preprocess(data []byte, minWidth int) ([]byte, error) {
	src, kind, err := image.Decode(bytes.NewReader(data))
	if err != nil {
		return nil, fmt.Errorf("failed to decode image: %w", err)
	}

	b := src.Bounds()
	if b.Dx() == 0 || b.Dy() == 0 {
		return nil, fmt.Errorf("empty %s image", kind)
	}

	w, h := b.Dx(), b.Dy()
	if minWidth > 0 && w < minWidth {
		h = h * minWidth / w
		w = minWidth
	}

	gray := image.NewGray(image.Rect(0, 0, w, h))
	if w == b.Dx() && h == b.Dy() {
		draw.Draw(gray, gray.Bounds(), src, b.Min, draw.Src)
	} else {
		draw.CatmullRom.Scale(gray, gray.Bounds(), src, b, draw.Src, nil)
	}

	var buf bytes.Buffer
	if err := png.Encode(&buf, gray); err != nil {
		return nil, fmt.Errorf("failed to encode image: %w", err)
	}
	return buf.Bytes(), nil
}
