//go:build !ocr

package ocr

import (
	"errors"
	"testing"
)

func TestStubClient(t *testing.T) {
	client, err := New()
	if !errors.Is(err, ErrOCRNotEnabled) {
		t.Fatalf("New() error = %v, want ErrOCRNotEnabled", err)
	}
	if client != nil {
		t.Error("New() returned a client without OCR support")
	}

	// A nil client closes cleanly so callers can defer Close unconditionally.
	if err := client.Close(); err != nil {
		t.Errorf("Close() on nil client = %v", err)
	}
}

func TestStubMethods(t *testing.T) {
	c := &Client{}
	calls := map[string]func() error{
		"HOCR": func() error {
			_, err := c.HOCR([]byte("scan"))
			return err
		},
		"RecognizeImage": func() error {
			_, err := c.RecognizeImage([]byte("scan"))
			return err
		},
		"SetLanguage":    func() error { return c.SetLanguage("eng+fra") },
		"SetPageSegMode": func() error { return c.SetPageSegMode(PageSparseText) },
	}
	for name, call := range calls {
		if err := call(); !errors.Is(err, ErrOCRNotEnabled) {
			t.Errorf("%s() error = %v, want ErrOCRNotEnabled", name, err)
		}
	}
}
