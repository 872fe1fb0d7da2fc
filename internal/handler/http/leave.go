package http

import (
	"encoding/json"
	"log/slog"
	"net/http"
	"strings"

	"github.com/go-chi/chi/v5"
	"github.com/shiftwatch/attendance-backend-go/internal/domain/leave"
	"github.com/shiftwatch/attendance-backend-go/internal/handler/http/response"
)

type LeaveHandler interface {
	Create(w http.ResponseWriter, r *http.Request)
	List(w http.ResponseWriter, r *http.Request)
	ListPending(w http.ResponseWriter, r *http.Request)
	Approve(w http.ResponseWriter, r *http.Request)
	Reject(w http.ResponseWriter, r *http.Request)
}

type LeaveHandlerImpl struct {
	leaveService leave.LeaveService
}

func NewLeaveHandler(leaveService leave.LeaveService) LeaveHandler {
	return &LeaveHandlerImpl{leaveService: leaveService}
}

// Create implements LeaveHandler.
func (h *LeaveHandlerImpl) Create(w http.ResponseWriter, r *http.Request) {
	actorID := getUserIDFromContext(r)
	if actorID == "" {
		response.Unauthorized(w, "Unauthorized")
		return
	}

	var createReq leave.CreateLeaveRequestRequest
	if err := json.NewDecoder(r.Body).Decode(&createReq); err != nil {
		slog.Error("Create leave request decode error", "error", err)
		response.BadRequest(w, "Invalid request format", nil)
		return
	}

	leaveResponse, err := h.leaveService.Create(r.Context(), actorID, createReq)
	if err != nil {
		slog.Error("Create leave request service error", "error", err, "user_id", actorID)
		response.HandleError(w, err)
		return
	}

	response.Created(w, "Leave request created successfully", leaveResponse)
}

// List implements LeaveHandler.
func (h *LeaveHandlerImpl) List(w http.ResponseWriter, r *http.Request) {
	callerID := getUserIDFromContext(r)
	if callerID == "" {
		response.Unauthorized(w, "Unauthorized")
		return
	}

	var status *leave.LeaveRequestStatus
	if s := strings.ToUpper(r.URL.Query().Get("status")); s != "" {
		st := leave.LeaveRequestStatus(s)
		status = &st
	}

	requests, err := h.leaveService.List(r.Context(), callerID, status)
	if err != nil {
		response.HandleError(w, err)
		return
	}

	response.Success(w, requests)
}

// ListPending implements LeaveHandler.
func (h *LeaveHandlerImpl) ListPending(w http.ResponseWriter, r *http.Request) {
	requests, err := h.leaveService.ListPending(r.Context())
	if err != nil {
		response.HandleError(w, err)
		return
	}

	response.Success(w, requests)
}

// Approve implements LeaveHandler.
func (h *LeaveHandlerImpl) Approve(w http.ResponseWriter, r *http.Request) {
	requestID := chi.URLParam(r, "id")

	leaveResponse, err := h.leaveService.Approve(r.Context(), requestID)
	if err != nil {
		slog.Error("Approve leave request service error", "error", err, "request_id", requestID)
		response.HandleError(w, err)
		return
	}

	response.SuccessWithMessage(w, "Leave request approved", leaveResponse)
}

// Reject implements LeaveHandler.
func (h *LeaveHandlerImpl) Reject(w http.ResponseWriter, r *http.Request) {
	requestID := chi.URLParam(r, "id")

	leaveResponse, err := h.leaveService.Reject(r.Context(), requestID)
	if err != nil {
		slog.Error("Reject leave request service error", "error", err, "request_id", requestID)
		response.HandleError(w, err)
		return
	}

	response.SuccessWithMessage(w, "Leave request rejected", leaveResponse)
}
