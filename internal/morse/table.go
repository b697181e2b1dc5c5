package morse

import "sort"

const (
	// Dot and Dash are the two Morse marks.
	Dot  = '.'
	Dash = '-'
	// CharSeparator follows every encoded source character except the last.
	CharSeparator = '|'
	// WordSeparator replaces a space in the source text.
	WordSeparator = '/'
)

// Alphabet maps a dash run of length n to Alphabet[n-1].
const Alphabet = "ABCDEFGHIJKLMNOPQRSTUVWXYZ"

var symbols = map[string]string{
	".": ".-.-.-",
	",": "--..--",
	"A": ".-",
	"B": "-...",
	"C": "-.-.",
	"D": "-..",
	"E": ".",
	"F": "..-.",
	"G": "--.",
	"H": "....",
	"I": "..",
	"J": ".---",
	"K": "-.-",
	"L": ".-..",
	"M": "--",
	"N": "-.",
	"O": "---",
	"P": ".--.",
	"Q": "--.-",
	"R": ".-.",
	"S": "...",
	"T": "-",
	"U": "..-",
	"V": "...-",
	"W": ".--",
	"X": "-..-",
	"Y": "-.--",
	"Z": "--..",
	"0": "-----",
	"1": ".----",
	"2": "..---",
	"3": "...--",
	"4": "....-",
	"5": ".....",
	"6": "-....",
	"7": "--...",
	"8": "---..",
	"9": "----.",
}

// Symbol is one entry of the Morse symbol table.
type Symbol struct {
	Char    string
	Pattern string
}

// Lookup returns the Morse pattern for an uppercase character.
func Lookup(char string) (string, bool) {
	pattern, ok := symbols[char]
	return pattern, ok
}

// Symbols returns a sorted copy of the symbol table: letters, then digits, then
// punctuation.
func Symbols() []Symbol {
	out := make([]Symbol, 0, len(symbols))
	for char, pattern := range symbols {
		out = append(out, Symbol{Char: char, Pattern: pattern})
	}
	sort.Slice(out, func(i, j int) bool {
		ri, rj := symbolRank(out[i].Char), symbolRank(out[j].Char)
		if ri != rj {
			return ri < rj
		}
		return out[i].Char < out[j].Char
	})
	return out
}

func symbolRank(char string) int {
	switch c := char[0]; {
	case c >= 'A' && c <= 'Z':
		return 0
	case c >= '0' && c <= '9':
		return 1
	default:
		return 2
	}
}

// IsMark reports whether r is a dot or a dash.
func IsMark(r rune) bool {
	return r == Dot || r == Dash
}

// IsSeparator reports whether r is a character or word separator.
func IsSeparator(r rune) bool {
	return r == CharSeparator || r == WordSeparator
}
