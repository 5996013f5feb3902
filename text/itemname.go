package text

import "regexp"

// itemNamePattern matches optional leading spaces, then any run of "* ",
// "~ " and "(Sub) " markers, then the name. The name keeps at least one
// character, so a bare marker is left as it is.
var itemNamePattern = regexp.MustCompile(`^ *(?:(?:[*]|[~]|[(]Sub[)]) )*((?s).+)`)

// ItemName strips leading bullet and substitution markers from an invoice
// description. Text without markers is returned unchanged, as is empty text.
func ItemName(description string) string {
	m := itemNamePattern.FindStringSubmatch(description)
	if m == nil {
		return description
	}
	return m[1]
}
