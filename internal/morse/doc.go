// Package morse converts text into Morse code and compacts the result into a
// shorter token stream.
//
// Encoding is a per-character expansion: each input character is uppercased and
// replaced by its Morse pattern, a space becomes the word separator '/', and
// anything outside the symbol table passes through literally. Every source
// character is followed by the '|' separator except the last.
//
// Compaction scans the Morse string once and replaces each run of dots with its
// length in decimal and each run of dashes with the letter at that position in
// the alphabet (1 → A, 2 → B, ...). Separators and pass-through characters are
// kept as-is. A separator closes the open run and emits its token first; a
// pass-through character discards the open run, so "..X.." compacts to "X2".
// Both steps are pure and safe to call from multiple goroutines.
package morse
