package store

import (
	"context"
	"fmt"

	"cvpress/internal/record"
)

// AddRecord validates, normalizes, and inserts a work record.
// Returns the sequence id assigned by the database.
//
// Records are append-only: there is no update or delete path, so a record is
// immutable once this returns.
func (s *Store) AddRecord(ctx context.Context, rec record.Record) (int64, error) {
	if err := rec.Validate(); err != nil {
		return 0, fmt.Errorf("add record: %w", err)
	}

	rec = rec.Normalized()

	// Empty optional fields are stored as NULL, matching the schema.
	result, err := s.db.ExecContext(ctx, `
		INSERT INTO jobs (title, company, start_date, end_date, description)
		VALUES (?, ?, ?, ?, ?)
	`,
		rec.Title,
		rec.Company,
		rec.StartDate,
		nullable(rec.EndDate),
		nullable(rec.Description),
	)
	if err != nil {
		return 0, fmt.Errorf("add record: %w", err)
	}

	id, err := result.LastInsertId()
	if err != nil {
		return 0, fmt.Errorf("add record: last insert id: %w", err)
	}

	return id, nil
}

// nullable converts an empty string to a NULL-able value for optional columns.
func nullable(s string) any {
	if s == "" {
		return nil
	}
	return s
}
