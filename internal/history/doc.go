// Package history persists a log of conversions in SQLite.
//
// Each encode or batch run records one row per converted input: where it came
// from, where the result went, and the size and run statistics of the result.
// The database carries a schema version; a mismatch is reported instead of
// migrated.
package history
