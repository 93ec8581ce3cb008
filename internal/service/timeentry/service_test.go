package timeentry

import (
	"context"
	"testing"
	"time"

	"github.com/clockwork-labs/timetrack-backend-go/internal/domain/employee"
	"github.com/clockwork-labs/timetrack-backend-go/internal/domain/timeentry"
	"github.com/clockwork-labs/timetrack-backend-go/internal/pkg/validator"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type fakeEntryRepo struct {
	entries []timeentry.TimeEntry
	nextID  int64
	updates int
}

func (f *fakeEntryRepo) Create(ctx context.Context, entry timeentry.TimeEntry) (timeentry.TimeEntry, error) {
	f.nextID++
	entry.ID = f.nextID
	f.entries = append(f.entries, entry)
	return entry, nil
}

func (f *fakeEntryRepo) GetByID(ctx context.Context, id int64) (timeentry.TimeEntry, error) {
	for _, e := range f.entries {
		if e.ID == id {
			return e, nil
		}
	}
	return timeentry.TimeEntry{}, timeentry.ErrTimeEntryNotFound
}

func (f *fakeEntryRepo) List(ctx context.Context, filter timeentry.TimeEntryFilter) ([]timeentry.TimeEntry, int64, error) {
	return f.entries, int64(len(f.entries)), nil
}

func (f *fakeEntryRepo) ListByDate(ctx context.Context, date time.Time) ([]timeentry.TimeEntry, error) {
	return nil, nil
}

func (f *fakeEntryRepo) ListByRange(ctx context.Context, from, to time.Time, employeeID *int64) ([]timeentry.TimeEntry, error) {
	return nil, nil
}

func (f *fakeEntryRepo) Update(ctx context.Context, entry timeentry.TimeEntry) (timeentry.TimeEntry, error) {
	f.updates++
	for i, e := range f.entries {
		if e.ID == entry.ID {
			f.entries[i] = entry
			return entry, nil
		}
	}
	return timeentry.TimeEntry{}, timeentry.ErrTimeEntryNotFound
}

func (f *fakeEntryRepo) Delete(ctx context.Context, id int64) error {
	for i, e := range f.entries {
		if e.ID == id {
			f.entries = append(f.entries[:i], f.entries[i+1:]...)
			return nil
		}
	}
	return timeentry.ErrTimeEntryNotFound
}

type fakeEmployeeRepo struct {
	employees []employee.Employee
}

func (f *fakeEmployeeRepo) Create(ctx context.Context, emp employee.Employee) (employee.Employee, error) {
	return emp, nil
}

func (f *fakeEmployeeRepo) GetByID(ctx context.Context, id int64) (employee.Employee, error) {
	for _, e := range f.employees {
		if e.ID == id {
			return e, nil
		}
	}
	return employee.Employee{}, employee.ErrEmployeeNotFound
}

func (f *fakeEmployeeRepo) GetByEmail(ctx context.Context, email string) (employee.Employee, error) {
	return employee.Employee{}, employee.ErrEmployeeNotFound
}

func (f *fakeEmployeeRepo) List(ctx context.Context, withLastCheckIn bool) ([]employee.Employee, error) {
	return f.employees, nil
}

func (f *fakeEmployeeRepo) ListActive(ctx context.Context) ([]employee.Employee, error) {
	return f.employees, nil
}

func (f *fakeEmployeeRepo) CountActive(ctx context.Context) (int64, error) {
	return int64(len(f.employees)), nil
}

func (f *fakeEmployeeRepo) Update(ctx context.Context, req employee.UpdateEmployeeRequest) (employee.Employee, error) {
	return employee.Employee{}, employee.ErrEmployeeNotFound
}

func strPtr(s string) *string { return &s }

func intPtr(v int) *int { return &v }

func day(s string) time.Time {
	d, _ := time.Parse("2006-01-02", s)
	return d
}

func newTestService(entryRepo *fakeEntryRepo, at string) *TimeEntryServiceImpl {
	empRepo := &fakeEmployeeRepo{employees: []employee.Employee{
		{ID: 1, Name: "Ana", Email: "ana@example.com", Status: employee.StatusActive},
	}}
	clock := time.Now
	if at != "" {
		fixed, _ := time.Parse("2006-01-02 15:04", at)
		clock = func() time.Time { return fixed }
	}
	return &TimeEntryServiceImpl{
		entryRepo:    entryRepo,
		employeeRepo: empRepo,
		now:          clock,
	}
}

func TestCreateTimeEntry_NormalizesAndDerivesTotal(t *testing.T) {
	repo := &fakeEntryRepo{}
	svc := newTestService(repo, "")

	resp, err := svc.CreateTimeEntry(context.Background(), timeentry.CreateTimeEntryRequest{
		EmployeeID:   1,
		Date:         "2024-06-10",
		CheckInTime:  "9:00 AM",
		CheckOutTime: strPtr("5:30 PM"),
		BreakMinutes: 30,
	})
	require.NoError(t, err)

	assert.Equal(t, "09:00", resp.CheckInTime)
	require.NotNil(t, resp.CheckOutTime)
	assert.Equal(t, "17:30", *resp.CheckOutTime)
	require.NotNil(t, resp.TotalHours)
	assert.Equal(t, 8.0, *resp.TotalHours)
	require.NotNil(t, resp.EmployeeName)
	assert.Equal(t, "Ana", *resp.EmployeeName)
}

func TestCreateTimeEntry_OpenEntryHasNoTotal(t *testing.T) {
	repo := &fakeEntryRepo{}
	svc := newTestService(repo, "")

	resp, err := svc.CreateTimeEntry(context.Background(), timeentry.CreateTimeEntryRequest{
		EmployeeID:  1,
		Date:        "2024-06-10",
		CheckInTime: "09:00",
	})
	require.NoError(t, err)

	assert.Nil(t, resp.CheckOutTime)
	assert.Nil(t, resp.TotalHours)
}

func TestCreateTimeEntry_RejectsWeekendDate(t *testing.T) {
	svc := newTestService(&fakeEntryRepo{}, "")

	// 2024-06-08 is a Saturday.
	_, err := svc.CreateTimeEntry(context.Background(), timeentry.CreateTimeEntryRequest{
		EmployeeID:  1,
		Date:        "2024-06-08",
		CheckInTime: "09:00",
	})
	require.Error(t, err)

	var verrs validator.ValidationErrors
	require.ErrorAs(t, err, &verrs)
	assert.Contains(t, verrs.ToMap(), "date")
}

func TestCreateTimeEntry_RejectsMalformedTimes(t *testing.T) {
	repo := &fakeEntryRepo{}
	svc := newTestService(repo, "")

	// Times the normalizer cannot parse must never reach the
	// hours derivation, where they would read as midnight.
	for _, checkIn := range []string{"13:00 PM", "25:00", "09:75"} {
		_, err := svc.CreateTimeEntry(context.Background(), timeentry.CreateTimeEntryRequest{
			EmployeeID:  1,
			Date:        "2024-06-10",
			CheckInTime: checkIn,
		})
		require.Error(t, err, "check_in_time %q", checkIn)

		var verrs validator.ValidationErrors
		require.ErrorAs(t, err, &verrs)
		assert.Contains(t, verrs.ToMap(), "check_in_time")
	}
	assert.Empty(t, repo.entries)
}

func TestCreateTimeEntry_UnknownEmployee(t *testing.T) {
	svc := newTestService(&fakeEntryRepo{}, "")

	_, err := svc.CreateTimeEntry(context.Background(), timeentry.CreateTimeEntryRequest{
		EmployeeID:  99,
		Date:        "2024-06-10",
		CheckInTime: "09:00",
	})
	assert.ErrorIs(t, err, employee.ErrEmployeeNotFound)
}

func TestCheckoutTimeEntry_ClosesOpenEntry(t *testing.T) {
	repo := &fakeEntryRepo{
		entries: []timeentry.TimeEntry{
			{ID: 1, EmployeeID: 1, Date: day("2024-06-10"), CheckInTime: "09:00", BreakMinutes: 30},
		},
		nextID: 1,
	}
	svc := newTestService(repo, "2024-06-10 17:30")

	resp, err := svc.CheckoutTimeEntry(context.Background(), 1)
	require.NoError(t, err)

	require.NotNil(t, resp.CheckOutTime)
	assert.Equal(t, "17:30", *resp.CheckOutTime)
	require.NotNil(t, resp.TotalHours)
	assert.Equal(t, 8.0, *resp.TotalHours)
	assert.Equal(t, 1, repo.updates)
}

func TestCheckoutTimeEntry_ClosedEntryIsNoOp(t *testing.T) {
	total := 8.0
	repo := &fakeEntryRepo{
		entries: []timeentry.TimeEntry{
			{ID: 1, EmployeeID: 1, Date: day("2024-06-10"), CheckInTime: "09:00", CheckOutTime: strPtr("17:30"), BreakMinutes: 30, TotalHours: &total},
		},
		nextID: 1,
	}
	svc := newTestService(repo, "2024-06-10 21:00")

	resp, err := svc.CheckoutTimeEntry(context.Background(), 1)
	require.NoError(t, err)

	// The stored checkout time wins over the clock.
	require.NotNil(t, resp.CheckOutTime)
	assert.Equal(t, "17:30", *resp.CheckOutTime)
	assert.Equal(t, 8.0, *resp.TotalHours)
	assert.Zero(t, repo.updates)
}

func TestCheckoutTimeEntry_NotFound(t *testing.T) {
	svc := newTestService(&fakeEntryRepo{}, "")

	_, err := svc.CheckoutTimeEntry(context.Background(), 42)
	assert.ErrorIs(t, err, timeentry.ErrTimeEntryNotFound)
}

func TestUpdateTimeEntry_RecomputesTotal(t *testing.T) {
	total := 8.0
	repo := &fakeEntryRepo{
		entries: []timeentry.TimeEntry{
			{ID: 1, EmployeeID: 1, Date: day("2024-06-10"), CheckInTime: "09:00", CheckOutTime: strPtr("17:30"), BreakMinutes: 30, TotalHours: &total},
		},
		nextID: 1,
	}
	svc := newTestService(repo, "")

	resp, err := svc.UpdateTimeEntry(context.Background(), timeentry.UpdateTimeEntryRequest{
		ID:           1,
		CheckOutTime: strPtr("18:30"),
		BreakMinutes: intPtr(60),
	})
	require.NoError(t, err)

	require.NotNil(t, resp.TotalHours)
	assert.Equal(t, 8.5, *resp.TotalHours)
}

func TestUpdateTimeEntry_ClearingCheckoutReopensEntry(t *testing.T) {
	total := 8.0
	repo := &fakeEntryRepo{
		entries: []timeentry.TimeEntry{
			{ID: 1, EmployeeID: 1, Date: day("2024-06-10"), CheckInTime: "09:00", CheckOutTime: strPtr("17:30"), BreakMinutes: 30, TotalHours: &total},
		},
		nextID: 1,
	}
	svc := newTestService(repo, "")

	resp, err := svc.UpdateTimeEntry(context.Background(), timeentry.UpdateTimeEntryRequest{
		ID:           1,
		CheckOutTime: strPtr(""),
	})
	require.NoError(t, err)

	assert.Nil(t, resp.CheckOutTime)
	assert.Nil(t, resp.TotalHours)
}

func TestUpdateTimeEntry_OvernightShift(t *testing.T) {
	repo := &fakeEntryRepo{
		entries: []timeentry.TimeEntry{
			{ID: 1, EmployeeID: 1, Date: day("2024-06-10"), CheckInTime: "22:00"},
		},
		nextID: 1,
	}
	svc := newTestService(repo, "")

	resp, err := svc.UpdateTimeEntry(context.Background(), timeentry.UpdateTimeEntryRequest{
		ID:           1,
		CheckOutTime: strPtr("06:00"),
	})
	require.NoError(t, err)

	require.NotNil(t, resp.TotalHours)
	assert.Equal(t, 8.0, *resp.TotalHours)
}

func TestListTimeEntries_FilterDefaults(t *testing.T) {
	repo := &fakeEntryRepo{}
	svc := newTestService(repo, "")

	_, total, err := svc.ListTimeEntries(context.Background(), timeentry.TimeEntryFilter{})
	require.NoError(t, err)
	assert.Zero(t, total)

	_, _, err = svc.ListTimeEntries(context.Background(), timeentry.TimeEntryFilter{Limit: 500})
	require.Error(t, err)
}
