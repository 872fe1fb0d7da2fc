package postgresql

import (
	"context"
	"fmt"

	"github.com/jackc/pgx/v5"
	"github.com/shiftwatch/attendance-backend-go/internal/domain/report"
	"github.com/shiftwatch/attendance-backend-go/internal/pkg/database"
)

type reportRepositoryImpl struct {
	db *database.DB
}

func NewReportRepository(db *database.DB) report.ReportRepository {
	return &reportRepositoryImpl{db: db}
}

// MonthlyWorked implements report.ReportRepository. The aggregation runs in
// the database; the returned cursor streams one row per user with at least
// one completed interval in the month.
func (r *reportRepositoryImpl) MonthlyWorked(ctx context.Context, month, year int) (report.WorkedRows, error) {
	q := GetQuerier(ctx, r.db)

	query := `
		SELECT a.user_id, u.username,
			   SUM(EXTRACT(EPOCH FROM (a.end_time - a.start_time)))
		FROM attendances a
		JOIN users u ON u.id = a.user_id
		WHERE a.end_time IS NOT NULL
		  AND EXTRACT(MONTH FROM a.date) = $1
		  AND EXTRACT(YEAR FROM a.date) = $2
		GROUP BY a.user_id, u.username
	`

	rows, err := q.Query(ctx, query, month, year)
	if err != nil {
		return nil, fmt.Errorf("failed to aggregate monthly work: %w", err)
	}

	return &workedRows{rows: rows}, nil
}

type workedRows struct {
	rows pgx.Rows
}

func (w *workedRows) Next() bool {
	return w.rows.Next()
}

func (w *workedRows) Row() (report.WorkedRow, error) {
	var row report.WorkedRow
	if err := w.rows.Scan(&row.UserID, &row.Username, &row.TotalSeconds); err != nil {
		return report.WorkedRow{}, fmt.Errorf("failed to scan report row: %w", err)
	}
	return row, nil
}

func (w *workedRows) Err() error {
	return w.rows.Err()
}

func (w *workedRows) Close() {
	w.rows.Close()
}
