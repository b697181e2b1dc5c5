// Package pipeline wires the Morse encoder and compactor to real inputs and
// outputs.
//
// A Service reads one source (the first line of a console stream, a whole file,
// or literal text), runs it through morse.Encode and morse.CompactStats, writes
// the result under a lock, and records the conversion in history when a
// recorder is configured. Batch converts many files concurrently with a bounded
// worker pool and reports results in input order.
package pipeline
