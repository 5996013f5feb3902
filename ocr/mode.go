package ocr

import (
	"errors"
	"fmt"
)

// ErrOCRNotEnabled is returned by the recognition methods of a binary built
// without the "ocr" tag.
var ErrOCRNotEnabled = errors.New("OCR support not enabled; rebuild with -tags ocr")

// PageSegMode is a Tesseract page segmentation mode. The values are
// Tesseract's own numbers; only the modes that suit invoice scans are
// named here.
type PageSegMode int

const (
	// PageAuto lets Tesseract find the layout.
	PageAuto PageSegMode = 3
	// PageSingleColumn reads one column of text of variable sizes.
	PageSingleColumn PageSegMode = 4
	// PageSingleBlock reads one uniform block of text.
	PageSingleBlock PageSegMode = 6
	// PageSparseText finds as much text as possible in no particular
	// order, which keeps table cells apart.
	PageSparseText PageSegMode = 11
)

var pageModeNames = map[PageSegMode]string{
	PageAuto:         "auto",
	PageSingleColumn: "column",
	PageSingleBlock:  "block",
	PageSparseText:   "sparse",
}

func (m PageSegMode) String() string {
	if s, ok := pageModeNames[m]; ok {
		return s
	}
	return fmt.Sprintf("psm-%d", int(m))
}

// ParsePageSegMode maps a mode name such as "sparse" or "auto" to its
// value. An empty name means auto; unknown names report false.
func ParsePageSegMode(name string) (PageSegMode, bool) {
	if name == "" {
		return PageAuto, true
	}
	for m, s := range pageModeNames {
		if s == name {
			return m, true
		}
	}
	return 0, false
}
