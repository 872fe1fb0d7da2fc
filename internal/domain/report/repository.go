package report

import (
	"context"
)

// WorkedRow is the raw per-user aggregate produced by storage: total worked
// seconds across all completed attendance intervals in the period.
type WorkedRow struct {
	UserID       string
	Username     string
	TotalSeconds float64
}

// WorkedRows is a single-pass cursor over the aggregate result set. It is
// finite and non-restartable; row order is unspecified. Callers must Close
// it when done.
type WorkedRows interface {
	// Next advances to the next row, returning false when the set is
	// exhausted or an error occurred.
	Next() bool

	// Row scans the current row.
	Row() (WorkedRow, error)

	// Err returns the first error encountered during iteration.
	Err() error

	Close()
}

// ReportRepository aggregates attendance intervals in storage.
type ReportRepository interface {
	// MonthlyWorked sums (end_time - start_time) per user over the
	// calendar month, considering only records with a non-null end_time.
	// Users with no completed interval do not appear.
	MonthlyWorked(ctx context.Context, month, year int) (WorkedRows, error)
}
