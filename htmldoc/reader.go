package htmldoc

import (
	"fmt"
	"io"
	"os"

	"github.com/PuerkitoBio/goquery"
	"github.com/andybalholm/cascadia"
	"golang.org/x/net/html"

	"github.com/tsawler/pricebook/model"
)

// Selectors are compiled once and shared by every Document.
var (
	dateSelector     = cascadia.MustCompile("meta[name=date]")
	pageSelector     = cascadia.MustCompile("div[id^=page][id$=-div]")
	fragmentSelector = cascadia.MustCompile("p")
)

// Document is a loaded invoice rendering
type Document struct {
	doc   *goquery.Document
	date  string
	dated bool
	pages []Page
}

// Open opens an HTML file for reading.
func Open(filename string) (*Document, error) {
	f, err := os.Open(filename)
	if err != nil {
		return nil, model.WrapIO("opening file", err)
	}
	defer f.Close()

	return OpenReader(f)
}

// OpenReader parses HTML from an io.Reader. The input is decoded to UTF-8
// according to its byte order mark or <meta> charset declaration.
func OpenReader(r io.Reader) (*Document, error) {
	utf8, err := decode(r)
	if err != nil {
		return nil, err
	}

	doc, err := goquery.NewDocumentFromReader(utf8)
	if err != nil {
		return nil, model.WrapIO("parsing HTML", err)
	}

	d := &Document{doc: doc}
	d.extractDate()
	d.extractPages()
	return d, nil
}

// extractDate reads the content of the first meta[name=date] element.
func (d *Document) extractDate() {
	meta := d.doc.FindMatcher(dateSelector).First()
	if meta.Length() == 0 {
		return
	}
	d.date, d.dated = meta.Attr("content")
}

// extractPages collects the paragraphs of every page container.
func (d *Document) extractPages() {
	d.doc.FindMatcher(pageSelector).Each(func(i int, container *goquery.Selection) {
		id, _ := container.Attr("id")
		page := Page{Number: i + 1, ID: id}

		container.FindMatcher(fragmentSelector).Each(func(_ int, p *goquery.Selection) {
			page.Fragments = append(page.Fragments, newNodeFragment(p))
		})

		d.pages = append(d.pages, page)
	})
}

// newNodeFragment builds a Fragment from a paragraph selection.
func newNodeFragment(p *goquery.Selection) Fragment {
	node := p.Get(0)
	f := Fragment{
		node: node,
		text: p.Text(),
	}

	if c := node.FirstChild; c != nil && c.Type == html.TextNode {
		f.lead, f.hasLead = c.Data, true
	}

	style, ok := p.Attr("style")
	if !ok {
		f.posErr = model.NewStructuralError(positionSyntax, renderNode(node))
		return f
	}
	f.pos, f.posErr = ParseStyle(style)
	return f
}

// renderNode renders a node for error messages, falling back to its tag.
func renderNode(n *html.Node) string {
	s, err := goquery.OuterHtml(goquery.NewDocumentFromNode(n).Selection)
	if err != nil {
		return "<" + n.Data + ">"
	}
	return s
}

// Date returns the invoice date, the content of the meta[name=date]
// element. A document without one yields a structural error.
func (d *Document) Date() (string, error) {
	if !d.dated {
		return "", model.NewStructuralError(`meta[name=date] element with a content attribute`, "")
	}
	return d.date, nil
}

// Pages returns the page containers in document order
func (d *Document) Pages() []Page {
	return d.pages
}

// PageCount returns the number of page containers
func (d *Document) PageCount() int {
	return len(d.pages)
}

// FragmentCount returns the number of fragments on all pages
func (d *Document) FragmentCount() int {
	n := 0
	for _, p := range d.pages {
		n += len(p.Fragments)
	}
	return n
}

// Close releases the parsed tree. Fragments obtained from the document
// must not be used afterwards. It is safe to call Close multiple times.
func (d *Document) Close() error {
	d.doc = nil
	d.pages = nil
	return nil
}

// String summarizes the document for diagnostics
func (d *Document) String() string {
	return fmt.Sprintf("htmldoc.Document{date: %q, pages: %d, fragments: %d}", d.date, d.PageCount(), d.FragmentCount())
}
