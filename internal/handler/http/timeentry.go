package http

import (
	"encoding/json"
	"net/http"
	"strconv"

	"github.com/clockwork-labs/timetrack-backend-go/internal/domain/timeentry"
	"github.com/clockwork-labs/timetrack-backend-go/internal/handler/http/response"
)

type TimeEntryHandler interface {
	Create(w http.ResponseWriter, r *http.Request)
	List(w http.ResponseWriter, r *http.Request)
	Get(w http.ResponseWriter, r *http.Request)
	Update(w http.ResponseWriter, r *http.Request)
	Delete(w http.ResponseWriter, r *http.Request)
	Checkout(w http.ResponseWriter, r *http.Request)
}

type timeEntryHandlerImpl struct {
	entryService timeentry.TimeEntryService
}

func NewTimeEntryHandler(entryService timeentry.TimeEntryService) TimeEntryHandler {
	return &timeEntryHandlerImpl{entryService: entryService}
}

// Create implements TimeEntryHandler.
func (h *timeEntryHandlerImpl) Create(w http.ResponseWriter, r *http.Request) {
	var req timeentry.CreateTimeEntryRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		response.BadRequest(w, "Invalid request body", nil)
		return
	}

	result, err := h.entryService.CreateTimeEntry(r.Context(), req)
	if err != nil {
		response.HandleError(w, err)
		return
	}

	response.Created(w, "Time entry created", result)
}

// List implements TimeEntryHandler.
func (h *timeEntryHandlerImpl) List(w http.ResponseWriter, r *http.Request) {
	filter := timeentry.TimeEntryFilter{}

	if dateFrom := r.URL.Query().Get("dateFrom"); dateFrom != "" {
		filter.DateFrom = &dateFrom
	}
	if dateTo := r.URL.Query().Get("dateTo"); dateTo != "" {
		filter.DateTo = &dateTo
	}
	if employeeID := r.URL.Query().Get("employeeId"); employeeID != "" {
		id, err := strconv.ParseInt(employeeID, 10, 64)
		if err != nil {
			response.BadRequest(w, "Invalid employeeId", nil)
			return
		}
		filter.EmployeeID = &id
	}
	if p := r.URL.Query().Get("page"); p != "" {
		if pageNum, err := strconv.Atoi(p); err == nil && pageNum > 0 {
			filter.Page = pageNum
		}
	}
	if l := r.URL.Query().Get("limit"); l != "" {
		if limitNum, err := strconv.Atoi(l); err == nil && limitNum > 0 {
			filter.Limit = limitNum
		}
	}

	// Applies page/limit defaults the meta calculation below relies on.
	if err := filter.Validate(); err != nil {
		response.HandleError(w, err)
		return
	}

	entries, total, err := h.entryService.ListTimeEntries(r.Context(), filter)
	if err != nil {
		response.HandleError(w, err)
		return
	}

	totalPages := int(total) / filter.Limit
	if int(total)%filter.Limit > 0 {
		totalPages++
	}

	response.SuccessWithMeta(w, entries, &response.Meta{
		Page:       filter.Page,
		Limit:      filter.Limit,
		TotalItems: total,
		TotalPages: totalPages,
	})
}

// Get implements TimeEntryHandler.
func (h *timeEntryHandlerImpl) Get(w http.ResponseWriter, r *http.Request) {
	id, err := parseIDParam(r)
	if err != nil {
		response.BadRequest(w, "Invalid time entry id", nil)
		return
	}

	result, err := h.entryService.GetTimeEntry(r.Context(), id)
	if err != nil {
		response.HandleError(w, err)
		return
	}

	response.Success(w, result)
}

// Update implements TimeEntryHandler.
func (h *timeEntryHandlerImpl) Update(w http.ResponseWriter, r *http.Request) {
	id, err := parseIDParam(r)
	if err != nil {
		response.BadRequest(w, "Invalid time entry id", nil)
		return
	}

	var req timeentry.UpdateTimeEntryRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		response.BadRequest(w, "Invalid request body", nil)
		return
	}
	req.ID = id

	result, err := h.entryService.UpdateTimeEntry(r.Context(), req)
	if err != nil {
		response.HandleError(w, err)
		return
	}

	response.Success(w, result)
}

// Delete implements TimeEntryHandler.
func (h *timeEntryHandlerImpl) Delete(w http.ResponseWriter, r *http.Request) {
	id, err := parseIDParam(r)
	if err != nil {
		response.BadRequest(w, "Invalid time entry id", nil)
		return
	}

	if err := h.entryService.DeleteTimeEntry(r.Context(), id); err != nil {
		response.HandleError(w, err)
		return
	}

	response.NoContent(w)
}

// Checkout implements TimeEntryHandler.
func (h *timeEntryHandlerImpl) Checkout(w http.ResponseWriter, r *http.Request) {
	id, err := parseIDParam(r)
	if err != nil {
		response.BadRequest(w, "Invalid time entry id", nil)
		return
	}

	result, err := h.entryService.CheckoutTimeEntry(r.Context(), id)
	if err != nil {
		response.HandleError(w, err)
		return
	}

	response.SuccessWithMessage(w, "Checked out", result)
}
