// Package format provides input format detection for the pricebook library.
package format

import (
	"bytes"
	"io"
	"path/filepath"
	"strings"
)

// Format represents a supported invoice input format.
type Format int

const (
	// Unknown indicates an unrecognized format.
	Unknown Format = iota
	// HTML indicates positioned HTML as produced by pdftohtml.
	HTML
	// HOCR indicates hOCR markup produced by an OCR engine.
	HOCR
	// PNG indicates a PNG image.
	PNG
	// JPEG indicates a JPEG image.
	JPEG
	// TIFF indicates a TIFF image.
	TIFF
	// BMP indicates a Windows bitmap.
	BMP
	// WEBP indicates a WebP image.
	WEBP
	// GIF indicates a GIF image.
	GIF
)

// String returns the string representation of the format.
func (f Format) String() string {
	switch f {
	case HTML:
		return "HTML"
	case HOCR:
		return "hOCR"
	case PNG:
		return "PNG"
	case JPEG:
		return "JPEG"
	case TIFF:
		return "TIFF"
	case BMP:
		return "BMP"
	case WEBP:
		return "WEBP"
	case GIF:
		return "GIF"
	default:
		return "Unknown"
	}
}

// Extension returns the typical file extension for the format.
func (f Format) Extension() string {
	switch f {
	case HTML:
		return ".html"
	case HOCR:
		return ".hocr"
	case PNG:
		return ".png"
	case JPEG:
		return ".jpg"
	case TIFF:
		return ".tiff"
	case BMP:
		return ".bmp"
	case WEBP:
		return ".webp"
	case GIF:
		return ".gif"
	default:
		return ""
	}
}

// IsImage reports whether the format is a raster image that must be
// recognized before extraction.
func (f Format) IsImage() bool {
	switch f {
	case PNG, JPEG, TIFF, BMP, WEBP, GIF:
		return true
	}
	return false
}

// IsMarkup reports whether the format can be loaded directly.
func (f Format) IsMarkup() bool {
	return f == HTML || f == HOCR
}

// Detect determines file format from filename extension.
func Detect(filename string) Format {
	ext := strings.ToLower(filepath.Ext(filename))
	switch ext {
	case ".html", ".htm", ".xhtml":
		return HTML
	case ".hocr":
		return HOCR
	case ".png":
		return PNG
	case ".jpg", ".jpeg":
		return JPEG
	case ".tif", ".tiff":
		return TIFF
	case ".bmp":
		return BMP
	case ".webp":
		return WEBP
	case ".gif":
		return GIF
	default:
		return Unknown
	}
}

// sniffLen is how much of the input DetectFromMagic looks at for markup.
const sniffLen = 4096

// DetectFromMagic checks leading bytes to determine format.
// This provides more reliable detection than extension-based detection.
func DetectFromMagic(data []byte) Format {
	switch {
	case bytes.HasPrefix(data, []byte("\x89PNG\r\n\x1a\n")):
		return PNG
	case bytes.HasPrefix(data, []byte{0xFF, 0xD8, 0xFF}):
		return JPEG
	case bytes.HasPrefix(data, []byte("II*\x00")), bytes.HasPrefix(data, []byte("MM\x00*")):
		return TIFF
	case bytes.HasPrefix(data, []byte("GIF87a")), bytes.HasPrefix(data, []byte("GIF89a")):
		return GIF
	case len(data) >= 12 && bytes.HasPrefix(data, []byte("RIFF")) && string(data[8:12]) == "WEBP":
		return WEBP
	case bytes.HasPrefix(data, []byte("BM")) && len(data) >= 14:
		return BMP
	}

	if detectHTMLMagic(data) {
		if detectHOCRMagic(data) {
			return HOCR
		}
		return HTML
	}

	return Unknown
}

// detectHTMLMagic checks if the data looks like HTML content.
func detectHTMLMagic(data []byte) bool {
	data = bytes.TrimLeft(data, " \t\r\n\ufeff")
	if len(data) == 0 {
		return false
	}

	upper := strings.ToUpper(string(data[:min(sniffLen, len(data))]))
	if strings.HasPrefix(upper, "<!DOCTYPE HTML") || strings.HasPrefix(upper, "<HTML") {
		return true
	}
	// XML declaration followed by html-like content could be XHTML
	if strings.HasPrefix(upper, "<?XML") && strings.Contains(upper, "<HTML") {
		return true
	}

	return false
}

// detectHOCRMagic reports whether HTML content carries hOCR markers.
func detectHOCRMagic(data []byte) bool {
	head := data[:min(sniffLen, len(data))]
	return bytes.Contains(head, []byte("ocr-system")) ||
		bytes.Contains(head, []byte("ocr_page"))
}

// DetectFromReader inspects the leading content to determine format.
// The reader is consumed; callers that need the content should pass an
// io.TeeReader or reopen the source.
func DetectFromReader(r io.Reader) (Format, error) {
	head := make([]byte, sniffLen)
	n, err := io.ReadFull(r, head)
	if err != nil && err != io.EOF && err != io.ErrUnexpectedEOF {
		return Unknown, err
	}
	return DetectFromMagic(head[:n]), nil
}

// DetectFile combines content and extension detection. Content wins when
// it is recognized; otherwise the extension decides.
func DetectFile(filename string, head []byte) Format {
	if f := DetectFromMagic(head); f != Unknown {
		return f
	}
	return Detect(filename)
}
