package store

import (
	"context"
	"database/sql"
	"fmt"

	"cvpress/internal/record"
)

// ListRecords returns every stored work record in storage (id) order.
//
// Returns an empty slice (not nil) if the table is empty.
func (s *Store) ListRecords(ctx context.Context) ([]record.Record, error) {
	rows, err := s.db.QueryContext(ctx, `
		SELECT id, title, company, start_date, end_date, description
		FROM jobs
		ORDER BY id ASC
	`)
	if err != nil {
		return nil, fmt.Errorf("query records: %w", err)
	}
	defer rows.Close()

	var records []record.Record
	for rows.Next() {
		rec, err := scanRecord(rows)
		if err != nil {
			return nil, err
		}
		records = append(records, rec)
	}

	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("iterate records: %w", err)
	}

	// Return empty slice instead of nil
	if records == nil {
		records = []record.Record{}
	}

	return records, nil
}

// GetRecord retrieves a single record by id.
// Returns sql.ErrNoRows if not found.
func (s *Store) GetRecord(ctx context.Context, id int64) (record.Record, error) {
	row := s.db.QueryRowContext(ctx, `
		SELECT id, title, company, start_date, end_date, description
		FROM jobs
		WHERE id = ?
	`, id)

	var rec record.Record
	var endDate, description sql.NullString
	if err := row.Scan(&rec.ID, &rec.Title, &rec.Company, &rec.StartDate, &endDate, &description); err != nil {
		return record.Record{}, err
	}
	rec.EndDate = endDate.String
	rec.Description = description.String

	return rec, nil
}

// CountRecords returns the number of stored records.
func (s *Store) CountRecords(ctx context.Context) (int, error) {
	var count int
	err := s.db.QueryRowContext(ctx, `SELECT COUNT(*) FROM jobs`).Scan(&count)
	if err != nil {
		return 0, fmt.Errorf("count records: %w", err)
	}
	return count, nil
}

// scanRecord scans a row into a Record. NULL optional columns become empty
// strings.
func scanRecord(rows *sql.Rows) (record.Record, error) {
	var rec record.Record
	var endDate, description sql.NullString

	if err := rows.Scan(
		&rec.ID, &rec.Title, &rec.Company, &rec.StartDate, &endDate, &description,
	); err != nil {
		return record.Record{}, fmt.Errorf("scan record: %w", err)
	}

	rec.EndDate = endDate.String
	rec.Description = description.String

	return rec, nil
}
