package htmldoc

import (
	"errors"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/tsawler/pricebook/model"
)

const samplePage = `<!DOCTYPE html>
<html>
<head>
<title>invoice</title>
<meta name="date" content="2023-04-01"/>
</head>
<body>
<div id="page1-div" style="position:relative;width:892px;height:1263px;">
<p style="position:absolute;top:100px;left:68px;white-space:nowrap" class="ft10">Supplied</p>
<p style="position:absolute;top:112px;left:68px;white-space:nowrap" class="ft10">Line</p>
<p style="position:absolute;top:112px;left:120px;white-space:nowrap" class="ft10"><b>Description</b></p>
</div>
<div id="page2-div">
<p style="position:absolute;top:40px;left:20.5px">Sub&#160;Total:</p>
</div>
<div id="sidebar"><p style="top:1px;left:1px">ignored</p></div>
</body>
</html>`

func TestOpenReader_DateAndPages(t *testing.T) {
	d, err := OpenReader(strings.NewReader(samplePage))
	if err != nil {
		t.Fatalf("OpenReader() failed: %v", err)
	}
	defer d.Close()

	date, err := d.Date()
	if err != nil {
		t.Fatalf("Date() failed: %v", err)
	}
	if date != "2023-04-01" {
		t.Errorf("Date() = %q, want 2023-04-01", date)
	}

	if d.PageCount() != 2 {
		t.Fatalf("PageCount() = %d, want 2", d.PageCount())
	}
	if d.FragmentCount() != 4 {
		t.Errorf("FragmentCount() = %d, want 4", d.FragmentCount())
	}

	pages := d.Pages()
	if pages[0].ID != "page1-div" || pages[0].Number != 1 {
		t.Errorf("page 1 = %+v", pages[0])
	}
	if pages[1].ID != "page2-div" || pages[1].Number != 2 {
		t.Errorf("page 2 = %+v", pages[1])
	}

	total := pages[1].Fragments[0]
	if total.Text() != "Sub\u00a0Total:" {
		t.Errorf("Text() = %q, want no-break space preserved", total.Text())
	}
	pos, err := total.Position()
	if err != nil {
		t.Fatalf("Position() failed: %v", err)
	}
	if pos != (model.Coordinate{X: 20.5, Y: 40}) {
		t.Errorf("Position() = %+v, want {20.5 40}", pos)
	}
}

func TestOpenReader_MissingDate(t *testing.T) {
	html := `<html><head></head><body><div id="page1-div"><p style="top:1px;left:1px">x</p></div></body></html>`
	d, err := OpenReader(strings.NewReader(html))
	if err != nil {
		t.Fatalf("OpenReader() failed: %v", err)
	}
	defer d.Close()

	_, err = d.Date()
	if !errors.Is(err, model.ErrStructural) {
		t.Errorf("Date() error = %v, want ErrStructural", err)
	}
}

func TestOpenReader_DateWithoutContent(t *testing.T) {
	html := `<html><head><meta name="date"></head><body></body></html>`
	d, _ := OpenReader(strings.NewReader(html))
	defer d.Close()

	if _, err := d.Date(); !errors.Is(err, model.ErrStructural) {
		t.Errorf("Date() error = %v, want ErrStructural", err)
	}
}

func TestFragment_LeadingText(t *testing.T) {
	d, err := OpenReader(strings.NewReader(samplePage))
	if err != nil {
		t.Fatalf("OpenReader() failed: %v", err)
	}
	defer d.Close()

	frags := d.Pages()[0].Fragments

	lead, ok := frags[1].LeadingText()
	if !ok || lead != "Line" {
		t.Errorf("LeadingText() = %q, %v; want Line, true", lead, ok)
	}

	if _, ok := frags[2].LeadingText(); ok {
		t.Error("LeadingText() should be absent when the first child is markup")
	}
	if frags[2].Text() != "Description" {
		t.Errorf("Text() = %q, want Description", frags[2].Text())
	}
	if frags[2].Node() == nil || frags[2].Node().Data != "p" {
		t.Error("Node() should return the paragraph node")
	}
}

func TestFragment_MissingStyle(t *testing.T) {
	html := `<html><head><meta name="date" content="d"></head><body>
<div id="page1-div"><p>unpositioned</p><p style="color:red">styled</p></div></body></html>`

	d, err := OpenReader(strings.NewReader(html))
	if err != nil {
		t.Fatalf("OpenReader() failed: %v", err)
	}
	defer d.Close()

	for _, f := range d.Pages()[0].Fragments {
		if f.HasPosition() {
			t.Errorf("fragment %q should have no position", f.Text())
		}
		_, err := f.Position()
		var serr *model.StructuralError
		if !errors.As(err, &serr) {
			t.Fatalf("Position() error = %v, want StructuralError", err)
		}
		if !strings.Contains(serr.Input, f.Text()) && !strings.Contains(serr.Input, "color:red") {
			t.Errorf("StructuralError input %q does not identify the fragment", serr.Input)
		}
	}
}

func TestParseStyle(t *testing.T) {
	tests := []struct {
		style string
		want  model.Coordinate
		ok    bool
	}{
		{"position:absolute;top:112px;left:68px", model.Coordinate{X: 68, Y: 112}, true},
		{"top:1.5px; left:2.25px", model.Coordinate{X: 2.25, Y: 1.5}, true},
		{"left:10px;top:20px", model.Coordinate{X: 10, Y: 20}, true},
		{"top: 7px; left: 8px", model.Coordinate{X: 8, Y: 7}, true},
		{"top:112px", model.Coordinate{}, false},
		{"left:68px", model.Coordinate{}, false},
		{"top:abcpx;left:1px", model.Coordinate{}, false},
		{"", model.Coordinate{}, false},
	}

	for _, tt := range tests {
		got, err := ParseStyle(tt.style)
		if tt.ok {
			if err != nil {
				t.Errorf("ParseStyle(%q) failed: %v", tt.style, err)
				continue
			}
			if got != tt.want {
				t.Errorf("ParseStyle(%q) = %+v, want %+v", tt.style, got, tt.want)
			}
		} else if !errors.Is(err, model.ErrStructural) {
			t.Errorf("ParseStyle(%q) error = %v, want ErrStructural", tt.style, err)
		}
	}
}

func TestOpenReader_Charset(t *testing.T) {
	html := "<html><head><meta charset=\"iso-8859-1\"><meta name=\"date\" content=\"d\"></head><body>" +
		"<div id=\"page1-div\"><p style=\"top:1px;left:1px\">Cr\xe8me</p></div></body></html>"

	d, err := OpenReader(strings.NewReader(html))
	if err != nil {
		t.Fatalf("OpenReader() failed: %v", err)
	}
	defer d.Close()

	if got := d.Pages()[0].Fragments[0].Text(); got != "Crème" {
		t.Errorf("Text() = %q, want Crème", got)
	}
}

func TestOpen_NotFound(t *testing.T) {
	_, err := Open("/nonexistent/file.html")
	if err == nil {
		t.Fatal("Open() expected error for nonexistent file")
	}
	if !errors.Is(err, model.ErrIO) {
		t.Errorf("Open() error = %v, want ErrIO", err)
	}
}

func TestOpen_ValidFile(t *testing.T) {
	path := filepath.Join(t.TempDir(), "invoice.html")
	if err := os.WriteFile(path, []byte(samplePage), 0o644); err != nil {
		t.Fatalf("WriteFile() failed: %v", err)
	}

	d, err := Open(path)
	if err != nil {
		t.Fatalf("Open() failed: %v", err)
	}
	defer d.Close()

	if d.PageCount() != 2 {
		t.Errorf("PageCount() = %d, want 2", d.PageCount())
	}
}

func TestDocument_Close(t *testing.T) {
	d, _ := OpenReader(strings.NewReader(samplePage))

	if err := d.Close(); err != nil {
		t.Errorf("Close() failed: %v", err)
	}
	if err := d.Close(); err != nil {
		t.Errorf("Second Close() failed: %v", err)
	}
	if d.PageCount() != 0 {
		t.Error("closed document should have no pages")
	}
}

func TestNewFragment(t *testing.T) {
	f := NewFragment("Milk", model.Coordinate{X: 1, Y: 2})
	if lead, ok := f.LeadingText(); !ok || lead != "Milk" {
		t.Errorf("LeadingText() = %q, %v", lead, ok)
	}
	if !f.HasPosition() || f.Node() != nil {
		t.Error("NewFragment() should be positioned and node-less")
	}
}

func TestOpenReader_UndeclaredUTF8(t *testing.T) {
	padding := "<!--" + strings.Repeat("x", 2048) + "-->"
	html := "<html><head><meta name=\"date\" content=\"d\"></head><body>" + padding +
		"<div id=\"page1-div\"><p style=\"top:1px;left:1px\">Sub\u00a0Total: Crème</p></div></body></html>"

	d, err := OpenReader(strings.NewReader(html))
	if err != nil {
		t.Fatalf("OpenReader() failed: %v", err)
	}
	defer d.Close()

	if got := d.Pages()[0].Fragments[0].Text(); got != "Sub\u00a0Total: Crème" {
		t.Errorf("Text() = %q, want UTF-8 text preserved", got)
	}
}

type failingReader struct{}

func (failingReader) Read([]byte) (int, error) { return 0, errors.New("disk on fire") }

func TestOpenReader_ReadError(t *testing.T) {
	_, err := OpenReader(failingReader{})
	if !errors.Is(err, model.ErrIO) {
		t.Errorf("OpenReader() error = %v, want ErrIO", err)
	}
}

func TestFragment_WithoutLeadingText(t *testing.T) {
	f := NewFragment("Amount", model.Coordinate{X: 1, Y: 2}).WithoutLeadingText()
	if _, ok := f.LeadingText(); ok {
		t.Error("WithoutLeadingText() should drop the leading text")
	}
	if f.Text() != "Amount" {
		t.Errorf("Text() = %q, want Amount", f.Text())
	}
}
