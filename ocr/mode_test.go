package ocr

import "testing"

func TestParsePageSegMode(t *testing.T) {
	tests := []struct {
		name string
		want PageSegMode
		ok   bool
	}{
		{"", PageAuto, true},
		{"auto", PageAuto, true},
		{"sparse", PageSparseText, true},
		{"block", PageSingleBlock, true},
		{"column", PageSingleColumn, true},
		{"vertical", 0, false},
		{"Sparse", 0, false},
	}
	for _, tt := range tests {
		got, ok := ParsePageSegMode(tt.name)
		if got != tt.want || ok != tt.ok {
			t.Errorf("ParsePageSegMode(%q) = %v, %v; want %v, %v", tt.name, got, ok, tt.want, tt.ok)
		}
	}
}

func TestPageSegModeString(t *testing.T) {
	for _, name := range []string{"auto", "column", "block", "sparse"} {
		m, ok := ParsePageSegMode(name)
		if !ok {
			t.Fatalf("ParsePageSegMode(%q) failed", name)
		}
		if m.String() != name {
			t.Errorf("%d.String() = %q, want %q", int(m), m.String(), name)
		}
	}
	if got := PageSegMode(13).String(); got != "psm-13" {
		t.Errorf("String() = %q, want psm-13", got)
	}
	// Tesseract's numbering
	if PageSparseText != 11 || PageAuto != 3 {
		t.Errorf("modes = %d, %d", PageSparseText, PageAuto)
	}
}
