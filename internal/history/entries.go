package history

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"time"

	"github.com/google/uuid"
)

// timestampLayout has fixed width so created_at sorts lexically.
const timestampLayout = "2006-01-02T15:04:05.000000000Z07:00"

// Entry is one recorded conversion.
type Entry struct {
	ID         string    `json:"id"`
	CreatedAt  time.Time `json:"created_at"`
	Source     string    `json:"source"`
	Input      string    `json:"input"`
	OutputPath string    `json:"output_path,omitempty"`
	InputBytes int       `json:"input_bytes"`
	MorseLen   int       `json:"morse_len"`
	OutputLen  int       `json:"output_len"`
	DotRuns    int       `json:"dot_runs"`
	DashRuns   int       `json:"dash_runs"`
	Overflow   int       `json:"overflow"`
}

// Record stores e, assigning an ID and timestamp when they are unset. The stored
// entry is returned.
func (s *Store) Record(ctx context.Context, e Entry) (Entry, error) {
	if e.ID == "" {
		e.ID = uuid.NewString()
	}
	if e.CreatedAt.IsZero() {
		e.CreatedAt = time.Now()
	}
	e.CreatedAt = e.CreatedAt.UTC()

	err := s.execWithRetry(
		ctx,
		`INSERT INTO conversions (
            id, created_at, source, input, output_path,
            input_bytes, morse_len, output_len, dot_runs, dash_runs, overflow
        ) VALUES (?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?)`,
		e.ID,
		e.CreatedAt.Format(timestampLayout),
		e.Source,
		e.Input,
		nullableString(e.OutputPath),
		e.InputBytes,
		e.MorseLen,
		e.OutputLen,
		e.DotRuns,
		e.DashRuns,
		e.Overflow,
	)
	if err != nil {
		return Entry{}, fmt.Errorf("insert conversion: %w", err)
	}
	return e, nil
}

// List returns up to limit entries, newest first.
func (s *Store) List(ctx context.Context, limit int) ([]Entry, error) {
	if limit <= 0 {
		return nil, errors.New("limit must be positive")
	}
	rows, err := s.db.QueryContext(ctx,
		`SELECT id, created_at, source, input, output_path,
            input_bytes, morse_len, output_len, dot_runs, dash_runs, overflow
        FROM conversions ORDER BY created_at DESC, rowid DESC LIMIT ?`,
		limit,
	)
	if err != nil {
		return nil, fmt.Errorf("query conversions: %w", err)
	}
	defer rows.Close()

	var entries []Entry
	for rows.Next() {
		var (
			e          Entry
			createdAt  string
			outputPath sql.NullString
		)
		if err := rows.Scan(
			&e.ID, &createdAt, &e.Source, &e.Input, &outputPath,
			&e.InputBytes, &e.MorseLen, &e.OutputLen, &e.DotRuns, &e.DashRuns, &e.Overflow,
		); err != nil {
			return nil, fmt.Errorf("scan conversion: %w", err)
		}
		if e.CreatedAt, err = time.Parse(timestampLayout, createdAt); err != nil {
			return nil, fmt.Errorf("parse created_at %q: %w", createdAt, err)
		}
		e.OutputPath = outputPath.String
		entries = append(entries, e)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("iterate conversions: %w", err)
	}
	return entries, nil
}

// Clear removes every recorded conversion and returns how many were deleted.
func (s *Store) Clear(ctx context.Context) (int64, error) {
	res, err := s.db.ExecContext(ctx, "DELETE FROM conversions")
	if err != nil {
		return 0, fmt.Errorf("clear conversions: %w", err)
	}
	n, err := res.RowsAffected()
	if err != nil {
		return 0, fmt.Errorf("rows affected: %w", err)
	}
	return n, nil
}

func nullableString(value string) any {
	if value == "" {
		return nil
	}
	return value
}
