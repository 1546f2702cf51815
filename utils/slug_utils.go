package utils

import (
	"strings"
	"unicode"

	"golang.org/x/text/runes"
	"golang.org/x/text/transform"
	"golang.org/x/text/unicode/norm"
)

// asciiFold decomposes accented letters and strips the combining marks, so
// "Café" folds to "Cafe" before the ASCII pass.
var asciiFold = transform.Chain(norm.NFKD, runes.Remove(runes.In(unicode.Mn)))

// Slugify converts a display name into a URL-safe slug: accents folded to
// their ASCII base letter, lowercase, with every run of remaining
// non-alphanumeric characters collapsed into a single hyphen and no leading
// or trailing hyphen. "Acme Corp" becomes "acme-corp", "Café" becomes "cafe".
func Slugify(name string) string {
	if folded, _, err := transform.String(asciiFold, name); err == nil {
		name = folded
	}

	var b strings.Builder
	pending := false
	for _, r := range strings.ToLower(name) {
		isAlnum := (r >= 'a' && r <= 'z') || (r >= '0' && r <= '9')
		if !isAlnum {
			pending = true
			continue
		}
		if pending && b.Len() > 0 {
			b.WriteByte('-')
		}
		pending = false
		b.WriteRune(r)
	}
	return b.String()
}
