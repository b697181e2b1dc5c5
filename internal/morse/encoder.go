package morse

import (
	"strings"
	"unicode/utf8"

	"golang.org/x/text/cases"
	"golang.org/x/text/language"
)

// Encode converts text into its intermediate Morse representation.
//
// Characters are uppercased one at a time, so a character whose uppercase form
// spans several letters (such as 'ß' → "SS") is looked up as a whole and passes
// through unchanged when the table has no entry for it.
func Encode(text string) string {
	if text == "" {
		return ""
	}

	// cases.Caser carries state; one per call keeps Encode safe for concurrent use.
	upper := cases.Upper(language.Und)

	var b strings.Builder
	b.Grow(len(text) * 5)

	for i := 0; i < len(text); {
		r, width := utf8.DecodeRuneInString(text[i:])
		char := upperChar(upper, text[i:i+width], r)
		i += width

		switch pattern, ok := symbols[char]; {
		case char == " ":
			b.WriteByte(WordSeparator)
		case ok:
			b.WriteString(pattern)
		default:
			b.WriteString(char)
		}

		if i < len(text) {
			b.WriteByte(CharSeparator)
		}
	}
	return b.String()
}

func upperChar(upper cases.Caser, raw string, r rune) string {
	if r < utf8.RuneSelf {
		c := raw[0]
		if c >= 'a' && c <= 'z' {
			c -= 'a' - 'A'
		}
		return string(c)
	}
	if r == utf8.RuneError {
		return raw
	}
	return upper.String(raw)
}
