package race

import "unicode"

var unshifted = map[rune]rune{
	':': ';',
	'<': ',',
	'>': '.',
	'?': '/',
}

// Fold maps r to the key that produces it without Shift: letters are
// lower-cased and shifted punctuation is replaced by its base key.
func Fold(r rune) rune {
	r = unicode.ToLower(r)
	if base, ok := unshifted[r]; ok {
		return base
	}
	return r
}

// Matches reports whether typed satisfies expected. Only the expected
// rune is folded, so a shifted key never stands in for its base key.
func Matches(expected, typed rune) bool {
	return typed == expected || unicode.ToLower(typed) == Fold(expected)
}
