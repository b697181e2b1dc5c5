// Package logs reads the morson log file for `morson logs`.
//
// Last returns the final lines of the file with bounded memory, and Follow
// polls for lines appended after a byte offset until its context ends.
package logs
