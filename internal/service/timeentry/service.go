package timeentry

import (
	"context"
	"time"

	"github.com/clockwork-labs/timetrack-backend-go/internal/domain/employee"
	"github.com/clockwork-labs/timetrack-backend-go/internal/domain/timeentry"
	"github.com/clockwork-labs/timetrack-backend-go/internal/pkg/timeutil"
)

type TimeEntryServiceImpl struct {
	entryRepo    timeentry.TimeEntryRepository
	employeeRepo employee.EmployeeRepository
	now          func() time.Time
}

func NewTimeEntryService(entryRepo timeentry.TimeEntryRepository, employeeRepo employee.EmployeeRepository) timeentry.TimeEntryService {
	return &TimeEntryServiceImpl{
		entryRepo:    entryRepo,
		employeeRepo: employeeRepo,
		now:          time.Now,
	}
}

// CreateTimeEntry implements timeentry.TimeEntryService.
func (s *TimeEntryServiceImpl) CreateTimeEntry(ctx context.Context, req timeentry.CreateTimeEntryRequest) (timeentry.TimeEntryResponse, error) {
	if err := req.Validate(); err != nil {
		return timeentry.TimeEntryResponse{}, err
	}

	// Owning employee must exist.
	emp, err := s.employeeRepo.GetByID(ctx, req.EmployeeID)
	if err != nil {
		return timeentry.TimeEntryResponse{}, err
	}

	date, _ := time.Parse("2006-01-02", req.Date)

	entry := timeentry.TimeEntry{
		EmployeeID:   req.EmployeeID,
		Date:         date,
		CheckInTime:  timeutil.NormalizeTime(req.CheckInTime),
		BreakMinutes: req.BreakMinutes,
	}
	if req.CheckOutTime != nil && *req.CheckOutTime != "" {
		normalized := timeutil.NormalizeTime(*req.CheckOutTime)
		entry.CheckOutTime = &normalized
	}
	entry.TotalHours = timeutil.ElapsedHours(entry.CheckInTime, entry.CheckOutTime, entry.BreakMinutes)

	created, err := s.entryRepo.Create(ctx, entry)
	if err != nil {
		return timeentry.TimeEntryResponse{}, err
	}
	created.EmployeeName = &emp.Name

	return timeentry.ToResponse(created), nil
}

// GetTimeEntry implements timeentry.TimeEntryService.
func (s *TimeEntryServiceImpl) GetTimeEntry(ctx context.Context, id int64) (timeentry.TimeEntryResponse, error) {
	entry, err := s.entryRepo.GetByID(ctx, id)
	if err != nil {
		return timeentry.TimeEntryResponse{}, err
	}
	return timeentry.ToResponse(entry), nil
}

// ListTimeEntries implements timeentry.TimeEntryService.
func (s *TimeEntryServiceImpl) ListTimeEntries(ctx context.Context, filter timeentry.TimeEntryFilter) ([]timeentry.TimeEntryResponse, int64, error) {
	if err := filter.Validate(); err != nil {
		return nil, 0, err
	}

	entries, total, err := s.entryRepo.List(ctx, filter)
	if err != nil {
		return nil, 0, err
	}

	responses := make([]timeentry.TimeEntryResponse, 0, len(entries))
	for _, entry := range entries {
		responses = append(responses, timeentry.ToResponse(entry))
	}
	return responses, total, nil
}

// UpdateTimeEntry implements timeentry.TimeEntryService. Any edit
// touching check-in, check-out or break minutes triggers a total-hours
// recomputation; the stored total is never taken from input.
func (s *TimeEntryServiceImpl) UpdateTimeEntry(ctx context.Context, req timeentry.UpdateTimeEntryRequest) (timeentry.TimeEntryResponse, error) {
	if err := req.Validate(); err != nil {
		return timeentry.TimeEntryResponse{}, err
	}

	entry, err := s.entryRepo.GetByID(ctx, req.ID)
	if err != nil {
		return timeentry.TimeEntryResponse{}, err
	}

	if req.Date != nil {
		date, _ := time.Parse("2006-01-02", *req.Date)
		entry.Date = date
	}
	if req.CheckInTime != nil {
		entry.CheckInTime = timeutil.NormalizeTime(*req.CheckInTime)
	}
	if req.CheckOutTime != nil {
		if *req.CheckOutTime == "" {
			entry.CheckOutTime = nil
		} else {
			normalized := timeutil.NormalizeTime(*req.CheckOutTime)
			entry.CheckOutTime = &normalized
		}
	}
	if req.BreakMinutes != nil {
		entry.BreakMinutes = *req.BreakMinutes
	}
	entry.TotalHours = timeutil.ElapsedHours(entry.CheckInTime, entry.CheckOutTime, entry.BreakMinutes)

	updated, err := s.entryRepo.Update(ctx, entry)
	if err != nil {
		return timeentry.TimeEntryResponse{}, err
	}

	return timeentry.ToResponse(updated), nil
}

// DeleteTimeEntry implements timeentry.TimeEntryService.
func (s *TimeEntryServiceImpl) DeleteTimeEntry(ctx context.Context, id int64) error {
	return s.entryRepo.Delete(ctx, id)
}

// CheckoutTimeEntry implements timeentry.TimeEntryService. Closing an
// already-closed entry is a no-op; the stored checkout time wins.
func (s *TimeEntryServiceImpl) CheckoutTimeEntry(ctx context.Context, id int64) (timeentry.TimeEntryResponse, error) {
	entry, err := s.entryRepo.GetByID(ctx, id)
	if err != nil {
		return timeentry.TimeEntryResponse{}, err
	}

	if !entry.IsOpen() {
		return timeentry.ToResponse(entry), nil
	}

	checkOut := s.now().Format("15:04")
	entry.CheckOutTime = &checkOut
	entry.TotalHours = timeutil.ElapsedHours(entry.CheckInTime, entry.CheckOutTime, entry.BreakMinutes)

	updated, err := s.entryRepo.Update(ctx, entry)
	if err != nil {
		return timeentry.TimeEntryResponse{}, err
	}

	return timeentry.ToResponse(updated), nil
}
