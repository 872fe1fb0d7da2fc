package leave

import (
	"time"

	"github.com/shiftwatch/attendance-backend-go/internal/pkg/validator"
)

// CreateLeaveRequestRequest is the inbound payload for creating a request.
// UserID is optional: administrators may create requests on behalf of an
// employee, everyone else creates their own.
type CreateLeaveRequestRequest struct {
	UserID    string `json:"user,omitempty"`
	StartDate string `json:"start_date"`
	EndDate   string `json:"end_date"`
	Reason    string `json:"reason"`
}

// Validate checks field presence and date ordering.
func (r *CreateLeaveRequestRequest) Validate() error {
	var errs validator.ValidationErrors

	start, startOK := validator.IsValidDate(r.StartDate)
	if !startOK {
		errs = append(errs, validator.ValidationError{
			Field:   "start_date",
			Message: "must be a valid date in YYYY-MM-DD format",
		})
	}

	end, endOK := validator.IsValidDate(r.EndDate)
	if !endOK {
		errs = append(errs, validator.ValidationError{
			Field:   "end_date",
			Message: "must be a valid date in YYYY-MM-DD format",
		})
	}

	if startOK && endOK && end.Before(start) {
		errs = append(errs, validator.ValidationError{
			Field:   "end_date",
			Message: "must not be before start_date",
		})
	}

	if validator.IsEmpty(r.Reason) {
		errs = append(errs, validator.ValidationError{
			Field:   "reason",
			Message: "reason is required",
		})
	}

	if len(errs) > 0 {
		return errs
	}
	return nil
}

// Dates returns the parsed date range. Call Validate first.
func (r *CreateLeaveRequestRequest) Dates() (time.Time, time.Time) {
	start, _ := validator.IsValidDate(r.StartDate)
	end, _ := validator.IsValidDate(r.EndDate)
	return start, end
}

// LeaveRequestResponse is the API projection of a leave request.
type LeaveRequestResponse struct {
	ID        string `json:"id"`
	UserID    string `json:"user"`
	Username  string `json:"username,omitempty"`
	StartDate string `json:"start_date"`
	EndDate   string `json:"end_date"`
	Reason    string `json:"reason"`
	Status    string `json:"status"`
	TotalDays int    `json:"total_days"`
}

// ToResponse maps the entity to its API projection.
func (r *LeaveRequest) ToResponse() LeaveRequestResponse {
	resp := LeaveRequestResponse{
		ID:        r.ID,
		UserID:    r.UserID,
		StartDate: r.StartDate.Format("2006-01-02"),
		EndDate:   r.EndDate.Format("2006-01-02"),
		Reason:    r.Reason,
		Status:    string(r.Status),
		TotalDays: r.TotalDays(),
	}
	if r.Username != nil {
		resp.Username = *r.Username
	}
	return resp
}
