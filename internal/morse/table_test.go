package morse_test

import (
	"testing"

	"morson/internal/morse"
)

func TestSymbolsOrderAndSize(t *testing.T) {
	syms := morse.Symbols()
	if len(syms) != 38 {
		t.Fatalf("expected 38 symbols, got %d", len(syms))
	}
	if syms[0].Char != "A" || syms[25].Char != "Z" {
		t.Fatalf("expected letters first, got %q..%q", syms[0].Char, syms[25].Char)
	}
	if syms[26].Char != "0" || syms[35].Char != "9" {
		t.Fatalf("expected digits after letters, got %q..%q", syms[26].Char, syms[35].Char)
	}
	if syms[36].Char != "," || syms[37].Char != "." {
		t.Fatalf("expected punctuation last, got %q %q", syms[36].Char, syms[37].Char)
	}
}

func TestLookup(t *testing.T) {
	if p, ok := morse.Lookup("Q"); !ok || p != "--.-" {
		t.Fatalf("Lookup(Q) = %q, %v", p, ok)
	}
	if _, ok := morse.Lookup("q"); ok {
		t.Fatal("expected lowercase lookup to miss")
	}
	if _, ok := morse.Lookup(" "); ok {
		t.Fatal("expected space to be absent from the table")
	}
}

func TestDashToken(t *testing.T) {
	cases := []struct {
		n    int
		want byte
		ok   bool
	}{
		{n: 0, ok: false},
		{n: 1, want: 'A', ok: true},
		{n: 3, want: 'C', ok: true},
		{n: 26, want: 'Z', ok: true},
		{n: 27, ok: false},
	}
	for _, tc := range cases {
		got, ok := morse.DashToken(tc.n)
		if ok != tc.ok || got != tc.want {
			t.Fatalf("DashToken(%d) = %q, %v; want %q, %v", tc.n, got, ok, tc.want, tc.ok)
		}
	}
}
