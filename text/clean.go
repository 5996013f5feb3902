package text

import (
	"golang.org/x/text/runes"
	"golang.org/x/text/transform"
)

// isHardSpace reports whether r is a non-breaking space variant
func isHardSpace(r rune) bool {
	switch r {
	case '\u00a0', // no-break space
		'\u2007', // figure space
		'\u202f': // narrow no-break space
		return true
	}
	return false
}

// spaceCleaner maps hard spaces to U+0020. It is stateless and shared.
var spaceCleaner = runes.Map(func(r rune) rune {
	if isHardSpace(r) {
		return ' '
	}
	return r
})

// Clean replaces non-breaking space variants with plain spaces.
// All other characters are returned unchanged.
func Clean(s string) string {
	for _, r := range s {
		if isHardSpace(r) {
			out, _, err := transform.String(spaceCleaner, s)
			if err != nil {
				return s
			}
			return out
		}
	}
	return s
}
