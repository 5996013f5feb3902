package htmldoc

import (
	"io"
	"regexp"
	"strconv"
	"strings"

	"github.com/PuerkitoBio/goquery"
	"github.com/andybalholm/cascadia"

	"github.com/tsawler/pricebook/model"
)

// PhraseGapRatio is the largest horizontal gap between two OCR words, as a
// fraction of their line's height, for the words to form one phrase.
const PhraseGapRatio = 0.8

var (
	hocrPageSelector = cascadia.MustCompile(".ocr_page")
	hocrLineSelector = cascadia.MustCompile(".ocr_line, .ocr_header, .ocr_textfloat, .ocr_caption")
	hocrWordSelector = cascadia.MustCompile(".ocrx_word")

	bboxPattern = regexp.MustCompile(`bbox (-?\d+) (-?\d+) (-?\d+) (-?\d+)`)
)

// hocrWord is one recognized word
type hocrWord struct {
	sel  *goquery.Selection
	text string
	box  model.BBox
}

// OpenHOCR parses hOCR markup produced by an OCR engine. hOCR carries no
// invoice date, so the caller supplies it; an empty date makes Date fail
// the way a rendering without date metadata does.
//
// Each page's lines are split into phrases: adjacent words whose gap is
// less than PhraseGapRatio of the line height are joined with a space.
// Every phrase of a line is positioned at the line's top edge so that a
// table row shares one y coordinate.
func OpenHOCR(r io.Reader, date string) (*Document, error) {
	utf8, err := decode(r)
	if err != nil {
		return nil, err
	}

	doc, err := goquery.NewDocumentFromReader(utf8)
	if err != nil {
		return nil, model.WrapIO("parsing hOCR", err)
	}

	d := &Document{doc: doc, date: date, dated: date != ""}

	var perr error
	doc.FindMatcher(hocrPageSelector).EachWithBreak(func(i int, p *goquery.Selection) bool {
		id, _ := p.Attr("id")
		page := Page{Number: i + 1, ID: id}

		p.FindMatcher(hocrLineSelector).EachWithBreak(func(_ int, line *goquery.Selection) bool {
			phrases, err := linePhrases(line)
			if err != nil {
				perr = err
				return false
			}
			page.Fragments = append(page.Fragments, phrases...)
			return true
		})
		if perr != nil {
			return false
		}

		d.pages = append(d.pages, page)
		return true
	})
	if perr != nil {
		return nil, perr
	}

	return d, nil
}

// linePhrases merges the words of one hOCR line into positioned fragments.
func linePhrases(line *goquery.Selection) ([]Fragment, error) {
	lineBox, err := titleBBox(line)
	if err != nil {
		return nil, err
	}

	var words []hocrWord
	var werr error
	line.FindMatcher(hocrWordSelector).EachWithBreak(func(_ int, w *goquery.Selection) bool {
		text := strings.TrimSpace(w.Text())
		if text == "" {
			return true
		}
		box, err := titleBBox(w)
		if err != nil {
			werr = err
			return false
		}
		words = append(words, hocrWord{sel: w, text: text, box: box})
		return true
	})
	if werr != nil {
		return nil, werr
	}

	maxGap := lineBox.Height * PhraseGapRatio

	var phrases []Fragment
	var current []hocrWord
	var box model.BBox
	flush := func() {
		if len(current) == 0 {
			return
		}
		parts := make([]string, len(current))
		for i, w := range current {
			parts[i] = w.text
		}
		text := strings.Join(parts, " ")
		phrases = append(phrases, Fragment{
			node:    current[0].sel.Get(0),
			text:    text,
			lead:    text,
			hasLead: true,
			pos:     model.Coordinate{X: box.Left(), Y: lineBox.Top()},
		})
		current = nil
	}

	// gaps are measured from the phrase box, not the previous word
	for _, w := range words {
		if len(current) > 0 && box.HorizontalGap(w.box) >= maxGap {
			flush()
		}
		if len(current) == 0 {
			box = w.box
		} else {
			box = box.Union(w.box)
		}
		current = append(current, w)
	}
	flush()

	return phrases, nil
}

// titleBBox reads the "bbox x0 y0 x1 y1" property of an hOCR element's title.
func titleBBox(s *goquery.Selection) (model.BBox, error) {
	title, _ := s.Attr("title")
	m := bboxPattern.FindStringSubmatch(title)
	if m == nil {
		return model.BBox{}, model.NewStructuralError("hOCR title with bbox x0 y0 x1 y1", title)
	}

	var v [4]float64
	for i := range v {
		n, err := strconv.Atoi(m[i+1])
		if err != nil {
			return model.BBox{}, model.NewStructuralError("hOCR title with bbox x0 y0 x1 y1", title)
		}
		v[i] = float64(n)
	}

	return model.NewBBoxFromCorners(model.Coordinate{X: v[0], Y: v[1]}, model.Coordinate{X: v[2], Y: v[3]}), nil
}
