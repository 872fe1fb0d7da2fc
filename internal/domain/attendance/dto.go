package attendance

import "time"

// AttendanceResponse is the API projection of an attendance record.
type AttendanceResponse struct {
	ID          string  `json:"id"`
	Username    string  `json:"user"`
	Date        string  `json:"date"`
	StartTime   string  `json:"start_time"`
	EndTime     *string `json:"end_time"`
	LateMinutes *int    `json:"late_time"`
}

// ToResponse maps the entity to its API projection, deriving lateness
// against the working window in loc.
func (a *Attendance) ToResponse(loc *time.Location) AttendanceResponse {
	resp := AttendanceResponse{
		ID:        a.ID,
		Date:      a.Date.Format("2006-01-02"),
		StartTime: a.StartTime.In(loc).Format(time.RFC3339),
	}
	if a.Username != nil {
		resp.Username = *a.Username
	}
	if a.EndTime != nil {
		end := a.EndTime.In(loc).Format(time.RFC3339)
		resp.EndTime = &end
	}
	if late := LateMinutes(a.StartTime, loc); late > 0 {
		resp.LateMinutes = &late
	}
	return resp
}
