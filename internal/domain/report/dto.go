package report

import (
	"github.com/shiftwatch/attendance-backend-go/internal/pkg/validator"
)

// MonthlyWorkReportRequest selects the reporting period.
type MonthlyWorkReportRequest struct {
	Month int `json:"month"`
	Year  int `json:"year"`
}

// Validate enforces the calendar period bounds.
func (r *MonthlyWorkReportRequest) Validate() error {
	var errs validator.ValidationErrors

	if r.Month < 1 || r.Month > 12 {
		errs = append(errs, validator.ValidationError{
			Field:   "month",
			Message: "month must be between 1 and 12",
		})
	}

	if r.Year <= 0 {
		errs = append(errs, validator.ValidationError{
			Field:   "year",
			Message: "year is required",
		})
	}

	if len(errs) > 0 {
		return ErrInvalidPeriod
	}
	return nil
}

// MonthlyWorkRow is one user's aggregated worked time for the period.
type MonthlyWorkRow struct {
	UserID         string  `json:"user_id"`
	Username       string  `json:"username"`
	Month          int     `json:"month"`
	Year           int     `json:"year"`
	TotalWorkHours float64 `json:"total_work_hours"`
}
