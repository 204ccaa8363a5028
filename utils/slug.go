// File: /utils/slug.go
package utils

import (
	"strings"
	"unicode"
)

// slugSourceLength limits how much of the content feeds the slug.
const slugSourceLength = 50

// Slugify turns free text into a URL-safe slug: lowercase, runs of
// non-alphanumeric characters collapsed to single hyphens, no leading or
// trailing hyphen. Only the first 50 characters of the input are used.
func Slugify(content string) string {
	runes := []rune(content)
	if len(runes) > slugSourceLength {
		runes = runes[:slugSourceLength]
	}

	var b strings.Builder
	lastHyphen := false
	for _, r := range runes {
		switch {
		case unicode.IsLetter(r) || unicode.IsDigit(r):
			b.WriteRune(unicode.ToLower(r))
			lastHyphen = false
		default:
			if !lastHyphen && b.Len() > 0 {
				b.WriteByte('-')
				lastHyphen = true
			}
		}
	}

	return strings.TrimRight(b.String(), "-")
}
