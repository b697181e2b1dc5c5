package morse_test

import (
	"fmt"
	"strings"
	"sync"
	"testing"

	"github.com/google/go-cmp/cmp"

	"morson/internal/morse"
)

func TestCompact(t *testing.T) {
	tests := []struct {
		name string
		in   string
		want string
	}{
		{name: "empty", in: "", want: ""},
		{name: "dot run", in: "...", want: "3"},
		{name: "dash run", in: "---", want: "C"},
		{name: "dot then dash", in: "...---", want: "3C"},
		{name: "single marks", in: ".-", want: "1A"},
		{name: "separator resets run", in: ".|.", want: "1|1"},
		{name: "sos", in: "...|---|...", want: "3|C|3"},
		{name: "repeated separators kept", in: "||//", want: "||//"},
		{name: "trailing separator", in: "..|", want: "2|"},
		{name: "long dot run uses decimal", in: strings.Repeat(".", 12), want: "12"},
		{name: "longest dash run", in: strings.Repeat("-", 26), want: "Z"},
		{name: "dash run beyond alphabet emits nothing", in: strings.Repeat("-", 27) + "|.", want: "|1"},
		{name: "pass-through discards open run", in: "..X..", want: "X2"},
		{name: "trailing pass-through discards run", in: "..X", want: "X"},
		{name: "space between dash runs", in: "-- --", want: " B"},
		{name: "pass-through after separator", in: "..|X-", want: "2|XA"},
		{name: "pass-through between separators", in: ".-|!|-", want: "1A|!|A"},
		{name: "separator then space collapses", in: ".| .", want: "1/1"},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			if got := morse.Compact(tc.in); got != tc.want {
				t.Fatalf("Compact(%q) = %q, want %q", tc.in, got, tc.want)
			}
		})
	}
}

func TestObfuscate(t *testing.T) {
	tests := []struct {
		in   string
		want string
	}{
		{in: "", want: ""},
		{in: "SOS", want: "3|C|3"},
		{in: "HI THERE", want: "4|2|/|A|4|1|1A1|1"},
		{in: "A1!", want: "1A|1D|!"},
		{in: "a-b", want: "1A|A|A3"},
		{in: "a|b", want: "1A|||A3"},
		{in: "0", want: "E"},
		{in: "5", want: "5"},
	}
	for _, tc := range tests {
		got := morse.Obfuscate(tc.in)
		if got != tc.want {
			t.Fatalf("Obfuscate(%q) = %q, want %q", tc.in, got, tc.want)
		}
		if composed := morse.Compact(morse.Encode(tc.in)); composed != got {
			t.Fatalf("Obfuscate(%q) differs from Compact(Encode()): %q vs %q", tc.in, got, composed)
		}
	}
}

func TestCompactNeverLongerForShortRuns(t *testing.T) {
	for _, sym := range morse.Symbols() {
		in := morse.Encode(sym.Char + sym.Char + " " + sym.Char)
		if out := morse.Compact(in); len(out) > len(in) {
			t.Fatalf("compacted %q grew to %q", in, out)
		}
	}
}

func TestCompactStats(t *testing.T) {
	out, stats := morse.CompactStats("...|---|...")
	if out != "3|C|3" {
		t.Fatalf("unexpected output %q", out)
	}
	want := morse.Stats{
		DotRuns:    2,
		DashRuns:   1,
		Separators: 2,
		LongestRun: 3,
		InputLen:   11,
		OutputLen:  5,
	}
	if diff := cmp.Diff(want, stats); diff != "" {
		t.Fatalf("stats mismatch (-want +got):\n%s", diff)
	}
	if stats.Runs() != 3 {
		t.Fatalf("expected 3 runs, got %d", stats.Runs())
	}
}

func TestCompactStatsCountsOverflowAndPassThrough(t *testing.T) {
	in := strings.Repeat("-", 30) + "|!?"
	out, stats := morse.CompactStats(in)
	if out != "|!?" {
		t.Fatalf("unexpected output %q", out)
	}
	if stats.Overflow != 1 || stats.DashRuns != 1 {
		t.Fatalf("expected one overflowing dash run, got %+v", stats)
	}
	if stats.PassThrough != 2 {
		t.Fatalf("expected two pass-through characters, got %d", stats.PassThrough)
	}
	if stats.LongestRun != 30 {
		t.Fatalf("expected longest run 30, got %d", stats.LongestRun)
	}
}

func TestCompactStatsCountsDroppedRuns(t *testing.T) {
	out, stats := morse.CompactStats("..X--?.")
	if out != "X?1" {
		t.Fatalf("unexpected output %q", out)
	}
	want := morse.Stats{
		DotRuns:     1,
		PassThrough: 2,
		Dropped:     2,
		LongestRun:  1,
		InputLen:    7,
		OutputLen:   3,
	}
	if diff := cmp.Diff(want, stats); diff != "" {
		t.Fatalf("stats mismatch (-want +got):\n%s", diff)
	}
}

func TestStatsRatio(t *testing.T) {
	if r := (morse.Stats{}).Ratio(); r != 0 {
		t.Fatalf("expected zero ratio for empty input, got %v", r)
	}
	_, stats := morse.CompactStats("....")
	if r := stats.Ratio(); r != 0.25 {
		t.Fatalf("expected ratio 0.25, got %v", r)
	}
}

func TestObfuscateConcurrentCallers(t *testing.T) {
	inputs := []string{"SOS", "HI THERE", "ß and é", "The quick brown fox, 1984."}
	want := make([]string, len(inputs))
	for i, in := range inputs {
		want[i] = morse.Obfuscate(in)
	}

	var wg sync.WaitGroup
	errs := make(chan string, 64)
	for w := 0; w < 8; w++ {
		wg.Add(1)
		go func() {
			defer wg.Done()
			for i := 0; i < 50; i++ {
				idx := i % len(inputs)
				if got := morse.Obfuscate(inputs[idx]); got != want[idx] {
					errs <- fmt.Sprintf("Obfuscate(%q) = %q, want %q", inputs[idx], got, want[idx])
					return
				}
			}
		}()
	}
	wg.Wait()
	close(errs)
	for msg := range errs {
		t.Fatal(msg)
	}
}

func ExampleObfuscate() {
	fmt.Println(morse.Encode("SOS"))
	fmt.Println(morse.Obfuscate("SOS"))
	// Output:
	// ...|---|...
	// 3|C|3
}
