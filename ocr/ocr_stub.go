//go:build !ocr

// Package ocr turns scanned invoice images into hOCR markup that the
// pricebook loader can read like a positioned HTML document.
//
// This build has no recognition engine: New and every Client method
// report ErrOCRNotEnabled, while Preprocess works as usual. Build with
// "-tags ocr" and Tesseract installed to recognize scans:
//
//	apt-get install tesseract-ocr libtesseract-dev
//	go build -tags ocr ./cmd/pricebook
package ocr

// Client stands in for the Tesseract client.
type Client struct{}

// New reports ErrOCRNotEnabled.
func New() (*Client, error) {
	return nil, ErrOCRNotEnabled
}

// Close does nothing, including on a nil client.
func (c *Client) Close() error { return nil }

func (c *Client) RecognizeImage([]byte) (string, error) { return "", ErrOCRNotEnabled }

func (c *Client) HOCR([]byte) (string, error) { return "", ErrOCRNotEnabled }

func (c *Client) SetLanguage(string) error { return ErrOCRNotEnabled }

func (c *Client) SetPageSegMode(PageSegMode) error { return ErrOCRNotEnabled }
