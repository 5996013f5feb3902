package format

import (
	"bytes"
	"errors"
	"strings"
	"testing"
)

func TestFormat_String(t *testing.T) {
	tests := []struct {
		format Format
		want   string
	}{
		{HTML, "HTML"},
		{HOCR, "hOCR"},
		{PNG, "PNG"},
		{JPEG, "JPEG"},
		{TIFF, "TIFF"},
		{BMP, "BMP"},
		{WEBP, "WEBP"},
		{GIF, "GIF"},
		{Unknown, "Unknown"},
		{Format(99), "Unknown"},
	}

	for _, tt := range tests {
		if got := tt.format.String(); got != tt.want {
			t.Errorf("Format(%d).String() = %q, want %q", tt.format, got, tt.want)
		}
	}
}

func TestFormat_Extension(t *testing.T) {
	for _, f := range []Format{HTML, HOCR, PNG, JPEG, TIFF, BMP, WEBP, GIF} {
		ext := f.Extension()
		if ext == "" {
			t.Errorf("%v.Extension() is empty", f)
			continue
		}
		if got := Detect("invoice" + ext); got != f {
			t.Errorf("Detect(%q) = %v, want %v", "invoice"+ext, got, f)
		}
	}
	if Unknown.Extension() != "" {
		t.Errorf("Unknown.Extension() = %q, want empty", Unknown.Extension())
	}
}

func TestFormat_Kinds(t *testing.T) {
	if !HTML.IsMarkup() || !HOCR.IsMarkup() || PNG.IsMarkup() {
		t.Error("IsMarkup() misclassifies formats")
	}
	if HTML.IsImage() || !TIFF.IsImage() || Unknown.IsImage() {
		t.Error("IsImage() misclassifies formats")
	}
}

func TestDetect(t *testing.T) {
	tests := []struct {
		filename string
		want     Format
	}{
		{"invoice.html", HTML},
		{"invoice.HTM", HTML},
		{"/tmp/scans/invoice-2023-04-01.hocr", HOCR},
		{"scan.png", PNG},
		{"scan.JPEG", JPEG},
		{"scan.jpg", JPEG},
		{"scan.tif", TIFF},
		{"scan.bmp", BMP},
		{"scan.webp", WEBP},
		{"scan.gif", GIF},
		{"invoice.pdf", Unknown},
		{"invoice", Unknown},
		{"", Unknown},
	}

	for _, tt := range tests {
		t.Run(tt.filename, func(t *testing.T) {
			if got := Detect(tt.filename); got != tt.want {
				t.Errorf("Detect(%q) = %v, want %v", tt.filename, got, tt.want)
			}
		})
	}
}

func TestDetectFromMagic(t *testing.T) {
	tests := []struct {
		name string
		data []byte
		want Format
	}{
		{"png", []byte("\x89PNG\r\n\x1a\n\x00\x00\x00\rIHDR"), PNG},
		{"jpeg", []byte{0xFF, 0xD8, 0xFF, 0xE0, 0x00, 0x10}, JPEG},
		{"tiff little endian", []byte("II*\x00\x08\x00\x00\x00"), TIFF},
		{"tiff big endian", []byte("MM\x00*\x00\x00\x00\x08"), TIFF},
		{"gif", []byte("GIF89a\x01\x00"), GIF},
		{"webp", []byte("RIFF\x24\x00\x00\x00WEBPVP8 "), WEBP},
		{"riff but not webp", []byte("RIFF\x24\x00\x00\x00WAVEfmt "), Unknown},
		{"bmp", append([]byte("BM"), make([]byte, 20)...), BMP},
		{"doctype", []byte("<!DOCTYPE html><html>"), HTML},
		{"leading whitespace", []byte("\n\n  <html><body>"), HTML},
		{"xhtml", []byte(`<?xml version="1.0"?><html xmlns="http://www.w3.org/1999/xhtml">`), HTML},
		{"hocr", []byte(`<!DOCTYPE html><html><head><meta name='ocr-system' content='tesseract 5.3.0'/>`), HOCR},
		{"plain text", []byte("Tax Invoice"), Unknown},
		{"pdf", []byte("%PDF-1.7"), Unknown},
		{"empty", nil, Unknown},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := DetectFromMagic(tt.data); got != tt.want {
				t.Errorf("DetectFromMagic() = %v, want %v", got, tt.want)
			}
		})
	}
}

func TestDetectFromReader(t *testing.T) {
	got, err := DetectFromReader(strings.NewReader("<html><body><div class='ocr_page'>"))
	if err != nil {
		t.Fatalf("DetectFromReader() failed: %v", err)
	}
	if got != HOCR {
		t.Errorf("DetectFromReader() = %v, want hOCR", got)
	}

	big := bytes.Repeat([]byte("x"), 2*sniffLen)
	got, err = DetectFromReader(bytes.NewReader(append([]byte("<html>"), big...)))
	if err != nil {
		t.Fatalf("DetectFromReader() failed: %v", err)
	}
	if got != HTML {
		t.Errorf("DetectFromReader() = %v, want HTML", got)
	}
}

type failingReader struct{}

func (failingReader) Read([]byte) (int, error) { return 0, errors.New("disk on fire") }

func TestDetectFromReader_Error(t *testing.T) {
	if _, err := DetectFromReader(failingReader{}); err == nil {
		t.Error("expected error from failing reader")
	}
}

func TestDetectFile(t *testing.T) {
	if got := DetectFile("scan.html", []byte("\x89PNG\r\n\x1a\n")); got != PNG {
		t.Errorf("DetectFile() = %v, want content to win", got)
	}
	if got := DetectFile("scan.tiff", []byte("garbage")); got != TIFF {
		t.Errorf("DetectFile() = %v, want extension fallback", got)
	}
}
