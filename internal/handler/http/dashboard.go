package http

import (
	"net/http"
	"time"

	"github.com/clockwork-labs/timetrack-backend-go/internal/domain/dashboard"
	"github.com/clockwork-labs/timetrack-backend-go/internal/handler/http/response"
)

type DashboardHandler interface {
	Get(w http.ResponseWriter, r *http.Request)
}

type dashboardHandlerImpl struct {
	dashboardService dashboard.DashboardService
}

func NewDashboardHandler(dashboardService dashboard.DashboardService) DashboardHandler {
	return &dashboardHandlerImpl{dashboardService: dashboardService}
}

// Get implements DashboardHandler. The date defaults to today.
func (h *dashboardHandlerImpl) Get(w http.ResponseWriter, r *http.Request) {
	date := time.Now()
	if d := r.URL.Query().Get("date"); d != "" {
		parsed, err := time.Parse("2006-01-02", d)
		if err != nil {
			response.BadRequest(w, "date must be in YYYY-MM-DD format", nil)
			return
		}
		date = parsed
	}

	result, err := h.dashboardService.GetDashboard(r.Context(), date)
	if err != nil {
		response.HandleError(w, err)
		return
	}

	response.Success(w, result)
}
