package htmldoc

import (
	"bytes"
	"io"
	"unicode/utf8"

	"golang.org/x/net/html/charset"
	"golang.org/x/text/transform"

	"github.com/tsawler/pricebook/model"
)

// decode returns a UTF-8 reader over r. The encoding comes from a byte
// order mark or a <meta> charset declaration. Undeclared input that is
// valid UTF-8 is kept as is rather than taken for windows-1252, the HTML
// default, because the sniffer only sees the first kilobyte.
func decode(r io.Reader) (io.Reader, error) {
	data, err := io.ReadAll(r)
	if err != nil {
		return nil, model.WrapIO("reading document", err)
	}

	enc, name, _ := charset.DetermineEncoding(data, "")
	if name == "windows-1252" && utf8.Valid(data) {
		return bytes.NewReader(data), nil
	}
	return transform.NewReader(bytes.NewReader(data), enc.NewDecoder()), nil
}
