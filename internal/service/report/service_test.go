package report

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/shiftwatch/attendance-backend-go/internal/domain/report"
)

type sliceRows struct {
	rows   []report.WorkedRow
	pos    int
	closed bool
}

func (s *sliceRows) Next() bool {
	if s.pos >= len(s.rows) {
		return false
	}
	s.pos++
	return true
}

func (s *sliceRows) Row() (report.WorkedRow, error) {
	return s.rows[s.pos-1], nil
}

func (s *sliceRows) Err() error { return nil }

func (s *sliceRows) Close() { s.closed = true }

type fakeReportRepo struct {
	rows *sliceRows
}

func (f *fakeReportRepo) MonthlyWorked(_ context.Context, _, _ int) (report.WorkedRows, error) {
	return f.rows, nil
}

func TestMonthlyWorkReport(t *testing.T) {
	// Two completed days of 8h and 7.5h for one user, one 1h 1m 1s day
	// for another.
	repo := &fakeReportRepo{rows: &sliceRows{rows: []report.WorkedRow{
		{UserID: "user-1", Username: "jdoe", TotalSeconds: 8*3600 + 7.5*3600},
		{UserID: "user-2", Username: "asmith", TotalSeconds: 3661},
	}}}
	svc := NewReportService(repo)

	rows, err := svc.MonthlyWorkReport(context.Background(), report.MonthlyWorkReportRequest{Month: 3, Year: 2024})
	require.NoError(t, err)
	defer rows.Close()

	var result []report.MonthlyWorkRow
	for rows.Next() {
		row, err := rows.Row()
		require.NoError(t, err)
		result = append(result, row)
	}
	require.NoError(t, rows.Err())

	require.Len(t, result, 2)
	assert.Equal(t, 15.5, result[0].TotalWorkHours)
	assert.Equal(t, 1.02, result[1].TotalWorkHours)
	assert.Equal(t, 3, result[0].Month)
	assert.Equal(t, 2024, result[0].Year)
}

func TestMonthlyWorkReportClosePropagates(t *testing.T) {
	repo := &fakeReportRepo{rows: &sliceRows{}}
	svc := NewReportService(repo)

	rows, err := svc.MonthlyWorkReport(context.Background(), report.MonthlyWorkReportRequest{Month: 1, Year: 2024})
	require.NoError(t, err)

	rows.Close()
	assert.True(t, repo.rows.closed)
}

func TestMonthlyWorkReportInvalidPeriod(t *testing.T) {
	svc := NewReportService(&fakeReportRepo{})

	_, err := svc.MonthlyWorkReport(context.Background(), report.MonthlyWorkReportRequest{Month: 13, Year: 2024})
	assert.ErrorIs(t, err, report.ErrInvalidPeriod)

	_, err = svc.MonthlyWorkReport(context.Background(), report.MonthlyWorkReportRequest{Month: 1, Year: 0})
	assert.ErrorIs(t, err, report.ErrInvalidPeriod)
}
