package utils

import (
	"strings"
	"unicode"
)

func Ptr[T any](v T) *T {
	return &v
}

// CollapseWhitespace trims and squeezes internal runs of whitespace to a
// single space.
func CollapseWhitespace(s string) string {
	return strings.Join(strings.Fields(s), " ")
}

// TitleCase upper-cases the first letter of each space-separated word and
// lower-cases the rest. Hyphenated parts keep their own casing boundaries
// ("mary-anne" -> "Mary-anne" is fine for our name fields).
func TitleCase(s string) string {
	words := strings.Fields(s)
	for i, w := range words {
		runes := []rune(strings.ToLower(w))
		for j, r := range runes {
			if unicode.IsLetter(r) {
				runes[j] = unicode.ToUpper(r)
				break
			}
		}
		words[i] = string(runes)
	}
	return strings.Join(words, " ")
}
