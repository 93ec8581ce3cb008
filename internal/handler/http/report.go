package http

import (
	"net/http"
	"strconv"

	"github.com/clockwork-labs/timetrack-backend-go/internal/domain/report"
	"github.com/clockwork-labs/timetrack-backend-go/internal/handler/http/response"
)

type ReportHandler interface {
	Generate(w http.ResponseWriter, r *http.Request)
}

type reportHandlerImpl struct {
	reportService report.ReportService
}

func NewReportHandler(reportService report.ReportService) ReportHandler {
	return &reportHandlerImpl{reportService: reportService}
}

// Generate implements ReportHandler.
func (h *reportHandlerImpl) Generate(w http.ResponseWriter, r *http.Request) {
	req := report.ReportRequest{
		ReportType: r.URL.Query().Get("reportType"),
		DateFrom:   r.URL.Query().Get("dateFrom"),
		DateTo:     r.URL.Query().Get("dateTo"),
	}

	if employeeID := r.URL.Query().Get("employeeId"); employeeID != "" {
		id, err := strconv.ParseInt(employeeID, 10, 64)
		if err != nil {
			response.BadRequest(w, "Invalid employeeId", nil)
			return
		}
		req.EmployeeID = &id
	}

	result, err := h.reportService.Generate(r.Context(), req)
	if err != nil {
		response.HandleError(w, err)
		return
	}

	response.Success(w, result)
}
