package report

import (
	"context"
)

// Rows is a single-pass cursor over report rows: finite, non-restartable,
// order unspecified. Callers must Close it when done.
type Rows interface {
	Next() bool
	Row() (MonthlyWorkRow, error)
	Err() error
	Close()
}

// ReportService derives per-user monthly work summaries.
type ReportService interface {
	// MonthlyWorkReport yields one row per user with at least one
	// completed attendance interval in the period, hours rounded to two
	// decimal places.
	MonthlyWorkReport(ctx context.Context, req MonthlyWorkReportRequest) (Rows, error)
}
