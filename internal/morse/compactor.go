package morse

import (
	"strconv"
	"strings"
	"unicode/utf8"
)

// Stats summarizes what a compaction pass consumed.
type Stats struct {
	DotRuns     int `json:"dot_runs"`
	DashRuns    int `json:"dash_runs"`
	Separators  int `json:"separators"`
	PassThrough int `json:"pass_through"`
	// Dropped counts runs discarded because a pass-through character ended them.
	Dropped int `json:"dropped"`
	// Overflow counts dash runs longer than the alphabet; they compact to nothing.
	Overflow   int `json:"overflow"`
	LongestRun int `json:"longest_run"`
	InputLen   int `json:"input_len"`
	OutputLen  int `json:"output_len"`
}

// Runs returns the total number of compacted runs.
func (s Stats) Runs() int {
	return s.DotRuns + s.DashRuns
}

// Ratio returns OutputLen/InputLen, or zero for empty input.
func (s Stats) Ratio() float64 {
	if s.InputLen == 0 {
		return 0
	}
	return float64(s.OutputLen) / float64(s.InputLen)
}

// separatorSpace is a literal space left next to a character separator.
var separatorSpace = strings.NewReplacer("| ", "/")

// runState is the scan state: the mark of the open run (zero when none), its
// length, and the previous rune of any class.
type runState struct {
	mark rune
	n    int
	prev rune
}

// flush writes the token for the open run and clears it.
func (s *runState) flush(b *strings.Builder, stats *Stats) {
	if s.mark == 0 {
		return
	}
	if s.n > stats.LongestRun {
		stats.LongestRun = s.n
	}
	switch s.mark {
	case Dot:
		stats.DotRuns++
		b.WriteString(strconv.Itoa(s.n))
	case Dash:
		stats.DashRuns++
		// Runs past Z emit nothing rather than an out-of-range placeholder such as
		// "undefined".
		if letter, ok := DashToken(s.n); ok {
			b.WriteByte(letter)
		} else {
			stats.Overflow++
		}
	}
	s.mark, s.n = 0, 0
}

// drop abandons the open run without emitting a token. A pass-through character
// ends a run this way.
func (s *runState) drop(stats *Stats) {
	if s.mark != 0 {
		stats.Dropped++
	}
	s.mark, s.n = 0, 0
}

// DashToken returns the letter encoding a dash run of length n. Runs longer than
// the alphabet have no letter.
func DashToken(n int) (byte, bool) {
	if n < 1 || n > len(Alphabet) {
		return 0, false
	}
	return Alphabet[n-1], true
}

// Compact replaces every run of identical Morse marks with a single token.
func Compact(morse string) string {
	out, _ := CompactStats(morse)
	return out
}

// CompactStats is Compact that also reports what the scan saw.
func CompactStats(morse string) (string, Stats) {
	stats := Stats{InputLen: len(morse)}
	if morse == "" {
		return "", stats
	}

	var b strings.Builder
	b.Grow(len(morse))

	var state runState
	for i := 0; i < len(morse); {
		r, width := utf8.DecodeRuneInString(morse[i:])
		raw := morse[i : i+width]
		i += width

		switch {
		case IsMark(r):
			if state.mark != r {
				state.flush(&b, &stats)
				state.mark = r
			}
			state.n++
		case IsSeparator(r):
			state.flush(&b, &stats)
			stats.Separators++
			b.WriteString(raw)
		default:
			stats.PassThrough++
			state.drop(&stats)
			b.WriteString(raw)
		}
		state.prev = r
	}
	if IsMark(state.prev) {
		state.flush(&b, &stats)
	}

	out := collapseSeparatorSpace(b.String())
	stats.OutputLen = len(out)
	return out, stats
}

// collapseSeparatorSpace turns a separator followed by a literal space into a
// word separator. It runs on the finished scan output.
func collapseSeparatorSpace(s string) string {
	return separatorSpace.Replace(s)
}

// Obfuscate encodes text and compacts the result.
func Obfuscate(text string) string {
	return Compact(Encode(text))
}
