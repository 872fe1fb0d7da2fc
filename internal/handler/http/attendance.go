package http

import (
	"log/slog"
	"net/http"

	"github.com/shiftwatch/attendance-backend-go/internal/domain/attendance"
	"github.com/shiftwatch/attendance-backend-go/internal/handler/http/response"
)

type AttendanceHandler interface {
	CheckIn(w http.ResponseWriter, r *http.Request)
	CheckOut(w http.ResponseWriter, r *http.Request)
	List(w http.ResponseWriter, r *http.Request)
	ListLateArrivals(w http.ResponseWriter, r *http.Request)
}

type AttendanceHandlerImpl struct {
	attendanceService attendance.AttendanceService
}

func NewAttendanceHandler(attendanceService attendance.AttendanceService) AttendanceHandler {
	return &AttendanceHandlerImpl{attendanceService: attendanceService}
}

// CheckIn implements AttendanceHandler.
func (h *AttendanceHandlerImpl) CheckIn(w http.ResponseWriter, r *http.Request) {
	userID := getUserIDFromContext(r)
	if userID == "" {
		response.Unauthorized(w, "Unauthorized")
		return
	}

	attendanceResponse, err := h.attendanceService.CheckIn(r.Context(), userID)
	if err != nil {
		slog.Error("CheckIn service error", "error", err, "user_id", userID)
		response.HandleError(w, err)
		return
	}

	response.Created(w, "Checked in successfully", attendanceResponse)
}

// CheckOut implements AttendanceHandler.
func (h *AttendanceHandlerImpl) CheckOut(w http.ResponseWriter, r *http.Request) {
	userID := getUserIDFromContext(r)
	if userID == "" {
		response.Unauthorized(w, "Unauthorized")
		return
	}

	attendanceResponse, err := h.attendanceService.CheckOut(r.Context(), userID)
	if err != nil {
		slog.Error("CheckOut service error", "error", err, "user_id", userID)
		response.HandleError(w, err)
		return
	}

	response.SuccessWithMessage(w, "Checked out successfully", attendanceResponse)
}

// List implements AttendanceHandler.
func (h *AttendanceHandlerImpl) List(w http.ResponseWriter, r *http.Request) {
	userID := getUserIDFromContext(r)
	if userID == "" {
		response.Unauthorized(w, "Unauthorized")
		return
	}

	attendances, err := h.attendanceService.List(r.Context(), userID)
	if err != nil {
		response.HandleError(w, err)
		return
	}

	response.Success(w, attendances)
}

// ListLateArrivals implements AttendanceHandler.
func (h *AttendanceHandlerImpl) ListLateArrivals(w http.ResponseWriter, r *http.Request) {
	attendances, err := h.attendanceService.ListLateArrivals(r.Context())
	if err != nil {
		response.HandleError(w, err)
		return
	}

	response.Success(w, attendances)
}
