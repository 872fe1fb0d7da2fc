package http

import (
	"log/slog"
	"net/http"
	"strconv"

	"github.com/shiftwatch/attendance-backend-go/internal/domain/report"
	"github.com/shiftwatch/attendance-backend-go/internal/handler/http/response"
)

type ReportHandler interface {
	MonthlyWork(w http.ResponseWriter, r *http.Request)
}

type ReportHandlerImpl struct {
	reportService report.ReportService
}

func NewReportHandler(reportService report.ReportService) ReportHandler {
	return &ReportHandlerImpl{reportService: reportService}
}

// MonthlyWork implements ReportHandler. The service hands back a cursor;
// the handler drains it into the response.
func (h *ReportHandlerImpl) MonthlyWork(w http.ResponseWriter, r *http.Request) {
	req := report.MonthlyWorkReportRequest{
		Month: getIntQueryParam(r, "month", 0),
		Year:  getIntQueryParam(r, "year", 0),
	}

	rows, err := h.reportService.MonthlyWorkReport(r.Context(), req)
	if err != nil {
		slog.Error("MonthlyWork service error", "error", err)
		response.HandleError(w, err)
		return
	}
	defer rows.Close()

	result := []report.MonthlyWorkRow{}
	for rows.Next() {
		row, err := rows.Row()
		if err != nil {
			response.HandleError(w, err)
			return
		}
		result = append(result, row)
	}
	if err := rows.Err(); err != nil {
		slog.Error("MonthlyWork cursor error", "error", err)
		response.HandleError(w, err)
		return
	}

	response.Success(w, result)
}

// getIntQueryParam gets an int query parameter with a default value
func getIntQueryParam(r *http.Request, key string, defaultVal int) int {
	val := r.URL.Query().Get(key)
	if val == "" {
		return defaultVal
	}
	intVal, err := strconv.Atoi(val)
	if err != nil {
		return defaultVal
	}
	return intVal
}
