package htmldoc

import (
	"errors"
	"strings"
	"testing"

	"github.com/tsawler/pricebook/model"
)

const sampleHOCR = `<?xml version="1.0" encoding="UTF-8"?>
<!DOCTYPE html PUBLIC "-//W3C//DTD XHTML 1.0 Transitional//EN" "http://www.w3.org/TR/xhtml1/DTD/xhtml1-transitional.dtd">
<html xmlns="http://www.w3.org/1999/xhtml" xml:lang="en" lang="en">
<head><title></title><meta name='ocr-system' content='tesseract 5.3.0' /></head>
<body>
<div class='ocr_page' id='page_1' title='image "scan.png"; bbox 0 0 2480 3508; ppageno 0'>
 <div class='ocr_carea' id='block_1_1' title="bbox 100 200 2000 260">
  <p class='ocr_par' id='par_1_1' lang='eng' title="bbox 100 200 2000 260">
   <span class='ocr_line' id='line_1_1' title="bbox 100 200 2000 240; baseline 0 -8; x_size 40">
    <span class='ocrx_word' id='word_1_1' title='bbox 100 205 140 240; x_wconf 96'>1</span>
    <span class='ocrx_word' id='word_1_2' title='bbox 300 204 380 240; x_wconf 95'>Lamb</span>
    <span class='ocrx_word' id='word_1_3' title='bbox 395 204 450 240; x_wconf 95'>Leg</span>
    <span class='ocrx_word' id='word_1_4' title='bbox 1500 206 1700 240; x_wconf 91'>$10.00/Kg</span>
   </span>
  </p>
 </div>
</div>
<div class='ocr_page' id='page_2' title='bbox 0 0 2480 3508'>
 <span class='ocr_line' title="bbox 10 20 300 60"><span class='ocrx_word' title='bbox 10 22 120 60'> </span></span>
</div>
</body>
</html>`

func TestOpenHOCR_Phrases(t *testing.T) {
	d, err := OpenHOCR(strings.NewReader(sampleHOCR), "2023-05-01")
	if err != nil {
		t.Fatalf("OpenHOCR() failed: %v", err)
	}
	defer d.Close()

	if date, _ := d.Date(); date != "2023-05-01" {
		t.Errorf("Date() = %q", date)
	}
	if d.PageCount() != 2 {
		t.Fatalf("PageCount() = %d, want 2", d.PageCount())
	}

	frags := d.Pages()[0].Fragments
	want := []struct {
		text string
		x    float64
	}{
		{"1", 100},
		{"Lamb Leg", 300},
		{"$10.00/Kg", 1500},
	}
	if len(frags) != len(want) {
		t.Fatalf("got %d phrases, want %d", len(frags), len(want))
	}
	for i, w := range want {
		if frags[i].Text() != w.text {
			t.Errorf("phrase %d = %q, want %q", i, frags[i].Text(), w.text)
		}
		pos, err := frags[i].Position()
		if err != nil {
			t.Fatalf("Position() failed: %v", err)
		}
		if pos.X != w.x || pos.Y != 200 {
			t.Errorf("phrase %d at %+v, want x=%v y=200", i, pos, w.x)
		}
	}

	if len(d.Pages()[1].Fragments) != 0 {
		t.Error("blank words should not produce phrases")
	}
}

func TestOpenHOCR_NoDate(t *testing.T) {
	d, err := OpenHOCR(strings.NewReader(sampleHOCR), "")
	if err != nil {
		t.Fatalf("OpenHOCR() failed: %v", err)
	}
	if _, err := d.Date(); !errors.Is(err, model.ErrStructural) {
		t.Errorf("Date() error = %v, want ErrStructural", err)
	}
}

func TestOpenHOCR_BadBBox(t *testing.T) {
	bad := `<html><body><div class='ocr_page'><span class='ocr_line' title='baseline 0 0'>` +
		`<span class='ocrx_word' title='bbox 1 2 3 4'>x</span></span></div></body></html>`

	_, err := OpenHOCR(strings.NewReader(bad), "d")
	if !errors.Is(err, model.ErrStructural) {
		t.Errorf("OpenHOCR() error = %v, want ErrStructural", err)
	}
}

func TestOpenHOCR_OutOfOrderWords(t *testing.T) {
	markup := `<html><body><div class='ocr_page' title='bbox 0 0 1000 1000'>` +
		`<span class='ocr_line' title='bbox 300 100 600 140'>` +
		`<span class='ocrx_word' title='bbox 300 100 420 140'>Butter</span>` +
		`<span class='ocrx_word' title='bbox 430 100 500 140'>250g</span>` +
		`<span class='ocrx_word' title='bbox 310 100 340 140'>(Sub)</span>` +
		`<span class='ocrx_word' title='bbox 510 100 560 140'>pack</span>` +
		`</span></div></body></html>`

	d, err := OpenHOCR(strings.NewReader(markup), "2023-05-01")
	if err != nil {
		t.Fatalf("OpenHOCR() failed: %v", err)
	}
	defer d.Close()

	frags := d.Pages()[0].Fragments
	if len(frags) != 1 {
		t.Fatalf("got %d phrases, want 1", len(frags))
	}
	if got := frags[0].Text(); got != "Butter 250g (Sub) pack" {
		t.Errorf("phrase = %q", got)
	}
	if pos, _ := frags[0].Position(); pos.X != 300 || pos.Y != 100 {
		t.Errorf("phrase at %+v, want x=300 y=100", pos)
	}
}
