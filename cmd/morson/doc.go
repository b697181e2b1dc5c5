// Package main hosts the morson CLI entrypoint and command graph.
//
// The Cobra-based command tree reads text from the console, a file, or the
// command line, turns it into compacted Morse code, and writes the result to
// the configured output file. Supporting commands list the symbol table, show
// conversion history, run batches, tail the log file and scaffold
// configuration.
//
// Keep this package lean: the encoding lives in internal/morse and the I/O
// plumbing in internal/pipeline; commands only parse flags and render output.
package main
