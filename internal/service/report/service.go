package report

import (
	"context"
	"fmt"
	"math"

	"github.com/shiftwatch/attendance-backend-go/internal/domain/report"
)

type ReportServiceImpl struct {
	reportRepo report.ReportRepository
}

func NewReportService(reportRepo report.ReportRepository) report.ReportService {
	return &ReportServiceImpl{
		reportRepo: reportRepo,
	}
}

// MonthlyWorkReport implements report.ReportService.
func (s *ReportServiceImpl) MonthlyWorkReport(ctx context.Context, req report.MonthlyWorkReportRequest) (report.Rows, error) {
	if err := req.Validate(); err != nil {
		return nil, err
	}

	worked, err := s.reportRepo.MonthlyWorked(ctx, req.Month, req.Year)
	if err != nil {
		return nil, fmt.Errorf("failed to aggregate worked time: %w", err)
	}

	return &monthlyRows{worked: worked, month: req.Month, year: req.Year}, nil
}

// monthlyRows adapts the storage aggregate into report rows, converting
// seconds to hours rounded to two decimal places. Like the underlying
// cursor it is single-pass and unordered.
type monthlyRows struct {
	worked report.WorkedRows
	month  int
	year   int
}

func (r *monthlyRows) Next() bool {
	return r.worked.Next()
}

func (r *monthlyRows) Row() (report.MonthlyWorkRow, error) {
	raw, err := r.worked.Row()
	if err != nil {
		return report.MonthlyWorkRow{}, err
	}
	return report.MonthlyWorkRow{
		UserID:         raw.UserID,
		Username:       raw.Username,
		Month:          r.month,
		Year:           r.year,
		TotalWorkHours: roundHours(raw.TotalSeconds),
	}, nil
}

func (r *monthlyRows) Err() error {
	return r.worked.Err()
}

func (r *monthlyRows) Close() {
	r.worked.Close()
}

func roundHours(seconds float64) float64 {
	return math.Round(seconds/3600*100) / 100
}
