package schedule

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/m04kA/MCN-SessionService/internal/domain"
	slotRepo "github.com/m04kA/MCN-SessionService/internal/infra/storage/workinghours"
	"github.com/m04kA/MCN-SessionService/internal/service/schedule/models"
	"github.com/m04kA/MCN-SessionService/pkg/ptr"
	"github.com/m04kA/MCN-SessionService/pkg/types"
)

type fakeSlotRepo struct {
	slot      *domain.WorkingHour
	getErr    error
	createErr error
	deleteErr error

	created *domain.WorkingHour
	deleted []int64
}

func (f *fakeSlotRepo) GetByID(ctx context.Context, id int64) (*domain.WorkingHour, error) {
	if f.getErr != nil {
		return nil, f.getErr
	}
	return f.slot, nil
}

func (f *fakeSlotRepo) Create(ctx context.Context, slot *domain.WorkingHour) (*domain.WorkingHour, error) {
	if f.createErr != nil {
		return nil, f.createErr
	}
	f.created = slot
	created := *slot
	created.ID = 5
	created.Status = domain.SlotAvailable
	return &created, nil
}

func (f *fakeSlotRepo) ListByEmployee(ctx context.Context, employeeID int64) ([]*domain.WorkingHour, error) {
	if f.slot == nil {
		return nil, nil
	}
	return []*domain.WorkingHour{f.slot}, nil
}

func (f *fakeSlotRepo) Delete(ctx context.Context, id int64, employeeID int64) error {
	if f.deleteErr != nil {
		return f.deleteErr
	}
	f.deleted = append(f.deleted, id)
	return nil
}

type noopLogger struct{}

func (noopLogger) Info(format string, v ...interface{})  {}
func (noopLogger) Warn(format string, v ...interface{})  {}
func (noopLogger) Error(format string, v ...interface{}) {}

var (
	admin    = domain.Actor{ID: 1, Role: domain.RoleSuperAdmin}
	employee = domain.Actor{ID: 20, Role: domain.RoleEmployee}
	client   = domain.Actor{ID: 10, Role: domain.RoleUser}
)

func newService() (*Service, *fakeSlotRepo) {
	repo := &fakeSlotRepo{}
	return NewService(repo, noopLogger{}), repo
}

func recurringRequest() *models.AddWorkingHourRequest {
	return &models.AddWorkingHourRequest{
		DayOfWeek: ptr.Ptr("Monday"),
		StartTime: "10:00",
		EndTime:   "11:00",
	}
}

func TestAdd_EmployeeForSelf(t *testing.T) {
	svc, repo := newService()

	resp, err := svc.Add(context.Background(), employee, recurringRequest())
	require.NoError(t, err)

	assert.Equal(t, int64(5), resp.ID)
	assert.Equal(t, int64(20), resp.EmployeeID)
	assert.Equal(t, string(domain.SlotAvailable), resp.Status)
	require.NotNil(t, repo.created)
	assert.Equal(t, int64(20), repo.created.EmployeeID)
}

func TestAdd_EmployeeForOtherDenied(t *testing.T) {
	svc, _ := newService()
	req := recurringRequest()
	req.EmployeeID = ptr.Ptr(int64(21))

	_, err := svc.Add(context.Background(), employee, req)
	assert.ErrorIs(t, err, ErrAccessDenied)
}

func TestAdd_AdminForAnyEmployee(t *testing.T) {
	svc, repo := newService()
	req := recurringRequest()
	req.EmployeeID = ptr.Ptr(int64(21))

	resp, err := svc.Add(context.Background(), admin, req)
	require.NoError(t, err)

	assert.Equal(t, int64(21), resp.EmployeeID)
	assert.Equal(t, int64(21), repo.created.EmployeeID)
}

func TestAdd_AdminWithoutEmployeeID(t *testing.T) {
	svc, _ := newService()

	_, err := svc.Add(context.Background(), admin, recurringRequest())
	assert.ErrorIs(t, err, ErrInvalidInput)
}

func TestAdd_ClientDenied(t *testing.T) {
	svc, _ := newService()

	_, err := svc.Add(context.Background(), client, recurringRequest())
	assert.ErrorIs(t, err, ErrAccessDenied)
}

func TestAdd_Validation(t *testing.T) {
	tests := []struct {
		name   string
		mutate func(req *models.AddWorkingHourRequest)
	}{
		{
			name: "оба временных дескриптора",
			mutate: func(req *models.AddWorkingHourRequest) {
				req.SpecificDate = ptr.Ptr("2025-10-20")
			},
		},
		{
			name: "ни одного временного дескриптора",
			mutate: func(req *models.AddWorkingHourRequest) {
				req.DayOfWeek = nil
			},
		},
		{
			name: "неизвестный день недели",
			mutate: func(req *models.AddWorkingHourRequest) {
				req.DayOfWeek = ptr.Ptr("Someday")
			},
		},
		{
			name: "начало после конца",
			mutate: func(req *models.AddWorkingHourRequest) {
				req.StartTime = "12:00"
				req.EndTime = "11:00"
			},
		},
		{
			name: "начало равно концу",
			mutate: func(req *models.AddWorkingHourRequest) {
				req.StartTime = "11:00"
				req.EndTime = "11:00"
			},
		},
		{
			name: "некорректное время начала",
			mutate: func(req *models.AddWorkingHourRequest) {
				req.StartTime = "25:00"
			},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			svc, _ := newService()
			req := recurringRequest()
			tt.mutate(req)

			_, err := svc.Add(context.Background(), employee, req)
			assert.ErrorIs(t, err, ErrInvalidInput)
		})
	}
}

func TestAdd_SpecificDateSlot(t *testing.T) {
	svc, repo := newService()
	req := &models.AddWorkingHourRequest{
		SpecificDate: ptr.Ptr("2025-10-20"),
		StartTime:    "14:00",
		EndTime:      "15:00",
	}

	resp, err := svc.Add(context.Background(), employee, req)
	require.NoError(t, err)

	require.NotNil(t, resp.SpecificDate)
	assert.Equal(t, "2025-10-20", *resp.SpecificDate)
	assert.Nil(t, resp.DayOfWeek)
	require.NotNil(t, repo.created.SpecificDate)
}

func TestList_ReturnsEmployeeSlots(t *testing.T) {
	svc, repo := newService()
	day := domain.Monday
	repo.slot = &domain.WorkingHour{
		ID:         5,
		EmployeeID: 20,
		DayOfWeek:  &day,
		StartTime:  types.TimeString("10:00"),
		EndTime:    types.TimeString("11:00"),
		Status:     domain.SlotAvailable,
	}

	resp, err := svc.List(context.Background(), 20)
	require.NoError(t, err)

	assert.Equal(t, 1, resp.Total)
	assert.Equal(t, "10:00", resp.WorkingHours[0].StartTime)
}

func TestList_InvalidEmployeeID(t *testing.T) {
	svc, _ := newService()

	_, err := svc.List(context.Background(), 0)
	assert.ErrorIs(t, err, ErrInvalidInput)
}

func TestDelete_ByOwner(t *testing.T) {
	svc, repo := newService()
	repo.slot = &domain.WorkingHour{ID: 5, EmployeeID: 20, Status: domain.SlotAvailable}

	err := svc.Delete(context.Background(), employee, 5)
	require.NoError(t, err)
	assert.Equal(t, []int64{5}, repo.deleted)
}

func TestDelete_ByAdmin(t *testing.T) {
	svc, repo := newService()
	repo.slot = &domain.WorkingHour{ID: 5, EmployeeID: 20, Status: domain.SlotAvailable}

	err := svc.Delete(context.Background(), admin, 5)
	require.NoError(t, err)
	assert.Equal(t, []int64{5}, repo.deleted)
}

func TestDelete_ForeignEmployeeDenied(t *testing.T) {
	svc, repo := newService()
	repo.slot = &domain.WorkingHour{ID: 5, EmployeeID: 21, Status: domain.SlotAvailable}

	err := svc.Delete(context.Background(), employee, 5)
	assert.ErrorIs(t, err, ErrAccessDenied)
	assert.Empty(t, repo.deleted)
}

func TestDelete_NotFound(t *testing.T) {
	svc, repo := newService()
	repo.getErr = slotRepo.ErrSlotNotFound

	err := svc.Delete(context.Background(), employee, 5)
	assert.ErrorIs(t, err, ErrSlotNotFound)
}

func TestDelete_ReferencedByActiveSession(t *testing.T) {
	svc, repo := newService()
	repo.slot = &domain.WorkingHour{ID: 5, EmployeeID: 20, Status: domain.SlotBooked}
	repo.deleteErr = slotRepo.ErrSlotReferenced

	err := svc.Delete(context.Background(), employee, 5)
	assert.ErrorIs(t, err, ErrSlotReferenced)
}
