package sessions

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/m04kA/MCN-SessionService/internal/domain"
	sessionRepo "github.com/m04kA/MCN-SessionService/internal/infra/storage/session"
	"github.com/m04kA/MCN-SessionService/internal/service/sessions/models"
	"github.com/m04kA/MCN-SessionService/pkg/types"
)

// Фейки зависимостей сервиса

type fakeSessionRepo struct {
	session *domain.Session
	slot    *domain.WorkingHour
	getErr  error

	updatedStatus   *domain.SessionStatus
	updatedComments *string
	views           []*domain.SessionView
}

func (f *fakeSessionRepo) GetByID(ctx context.Context, id int64) (*domain.Session, error) {
	if f.getErr != nil {
		return nil, f.getErr
	}
	return f.session, nil
}

func (f *fakeSessionRepo) GetWithSlot(ctx context.Context, id int64) (*domain.Session, *domain.WorkingHour, error) {
	if f.getErr != nil {
		return nil, nil, f.getErr
	}
	return f.session, f.slot, nil
}

func (f *fakeSessionRepo) UpdateStatus(ctx context.Context, id int64, status domain.SessionStatus, comments *string) error {
	f.updatedStatus = &status
	f.updatedComments = comments
	return nil
}

func (f *fakeSessionRepo) ListViewsByUser(ctx context.Context, userID int64) ([]*domain.SessionView, error) {
	return f.views, nil
}

type fakeSlotRepo struct {
	released []int64
}

func (f *fakeSlotRepo) Release(ctx context.Context, id int64) error {
	f.released = append(f.released, id)
	return nil
}

type fakeEmitter struct {
	changed []domain.SessionStatus
}

func (f *fakeEmitter) SessionStatusChanged(ctx context.Context, sess *domain.Session, newStatus domain.SessionStatus) {
	f.changed = append(f.changed, newStatus)
}

type fakeTxManager struct{}

func (fakeTxManager) Do(ctx context.Context, fn func(ctx context.Context) error) error {
	return fn(ctx)
}

func (fakeTxManager) DoSerializable(ctx context.Context, fn func(ctx context.Context) error) error {
	return fn(ctx)
}

func (fakeTxManager) DoReadOnly(ctx context.Context, fn func(ctx context.Context) error) error {
	return fn(ctx)
}

type fixedTimeProvider struct {
	now time.Time
}

func (f fixedTimeProvider) Now() time.Time {
	return f.now
}

type noopLogger struct{}

func (noopLogger) Info(format string, v ...interface{})  {}
func (noopLogger) Warn(format string, v ...interface{})  {}
func (noopLogger) Error(format string, v ...interface{}) {}

type fixture struct {
	sessions *fakeSessionRepo
	slots    *fakeSlotRepo
	emitter  *fakeEmitter
	svc      *Service
}

// Слот 20 октября 2025 в 14:00, "сейчас" - 14 октября 10:00:
// до начала почти шесть суток, окно отмены открыто
var testNow = time.Date(2025, 10, 14, 10, 0, 0, 0, time.UTC)

func newFixture() *fixture {
	slotDate := time.Date(2025, 10, 20, 0, 0, 0, 0, time.UTC)

	f := &fixture{
		sessions: &fakeSessionRepo{
			session: &domain.Session{
				ID:            1,
				UserID:        10,
				WorkingHourID: 5,
				DistrictID:    2,
				DirectionID:   7,
				Status:        domain.StatusBooked,
			},
			slot: &domain.WorkingHour{
				ID:           5,
				EmployeeID:   20,
				SpecificDate: &slotDate,
				StartTime:    types.TimeString("14:00"),
				EndTime:      types.TimeString("15:00"),
				Status:       domain.SlotBooked,
			},
		},
		slots:   &fakeSlotRepo{},
		emitter: &fakeEmitter{},
	}
	f.svc = NewService(f.sessions, f.slots, f.emitter, fakeTxManager{}, noopLogger{}).
		WithTimeProvider(fixedTimeProvider{now: testNow})
	return f
}

var (
	admin    = domain.Actor{ID: 1, Role: domain.RoleSuperAdmin}
	employee = domain.Actor{ID: 20, Role: domain.RoleEmployee}
	client   = domain.Actor{ID: 10, Role: domain.RoleUser}
)

func TestComplete_ByEmployee(t *testing.T) {
	f := newFixture()

	resp, err := f.svc.Complete(context.Background(), employee, 1, nil)
	require.NoError(t, err)

	assert.Equal(t, string(domain.StatusCompleted), resp.Status)
	require.NotNil(t, f.sessions.updatedStatus)
	assert.Equal(t, domain.StatusCompleted, *f.sessions.updatedStatus)

	// Вход в терминальный статус освобождает слот
	assert.Equal(t, []int64{5}, f.slots.released)
	assert.Equal(t, []domain.SessionStatus{domain.StatusCompleted}, f.emitter.changed)
}

func TestComplete_ByClientDenied(t *testing.T) {
	f := newFixture()

	_, err := f.svc.Complete(context.Background(), client, 1, nil)
	assert.ErrorIs(t, err, ErrAccessDenied)
	assert.Empty(t, f.slots.released)
}

func TestComplete_TerminalSession(t *testing.T) {
	f := newFixture()
	f.sessions.session.Status = domain.StatusCompleted

	_, err := f.svc.Complete(context.Background(), admin, 1, nil)
	assert.ErrorIs(t, err, ErrInvalidTransition)
	assert.Empty(t, f.slots.released)
	assert.Empty(t, f.emitter.changed)
}

func TestCancel_ByOwnerOutsideWindow(t *testing.T) {
	f := newFixture()

	resp, err := f.svc.Cancel(context.Background(), client, 1, nil)
	require.NoError(t, err)

	assert.Equal(t, string(domain.StatusCanceled), resp.Status)
	assert.Equal(t, []int64{5}, f.slots.released)
}

func TestCancel_WindowClosed(t *testing.T) {
	f := newFixture()
	// Слот начинается через 23 часа
	slotDate := time.Date(2025, 10, 15, 0, 0, 0, 0, time.UTC)
	f.sessions.slot.SpecificDate = &slotDate
	f.sessions.slot.StartTime = types.TimeString("09:00")

	_, err := f.svc.Cancel(context.Background(), client, 1, nil)
	assert.ErrorIs(t, err, ErrWindowClosed)
	assert.Empty(t, f.slots.released)
	assert.Nil(t, f.sessions.updatedStatus)
}

func TestCancel_AdminBypassesWindow(t *testing.T) {
	f := newFixture()
	slotDate := time.Date(2025, 10, 15, 0, 0, 0, 0, time.UTC)
	f.sessions.slot.SpecificDate = &slotDate
	f.sessions.slot.StartTime = types.TimeString("09:00")

	resp, err := f.svc.Cancel(context.Background(), admin, 1, nil)
	require.NoError(t, err)
	assert.Equal(t, string(domain.StatusCanceled), resp.Status)
	assert.Equal(t, []int64{5}, f.slots.released)
}

func TestCancel_ForeignClientDenied(t *testing.T) {
	f := newFixture()
	other := domain.Actor{ID: 11, Role: domain.RoleUser}

	_, err := f.svc.Cancel(context.Background(), other, 1, nil)
	assert.ErrorIs(t, err, ErrAccessDenied)
}

func TestCancel_NotFound(t *testing.T) {
	f := newFixture()
	f.sessions.getErr = sessionRepo.ErrSessionNotFound

	_, err := f.svc.Cancel(context.Background(), client, 1, nil)
	assert.ErrorIs(t, err, ErrSessionNotFound)
}

func TestChangeStatus_InProgressKeepsSlot(t *testing.T) {
	f := newFixture()

	resp, err := f.svc.ChangeStatus(context.Background(), employee, 1, &models.ChangeStatusRequest{Status: "in_progress"})
	require.NoError(t, err)

	assert.Equal(t, string(domain.StatusInProgress), resp.Status)
	// Промежуточный переход не освобождает слот
	assert.Empty(t, f.slots.released)
}

func TestChangeStatus_CompletedReleasesSlot(t *testing.T) {
	f := newFixture()
	f.sessions.session.Status = domain.StatusInProgress

	resp, err := f.svc.ChangeStatus(context.Background(), employee, 1, &models.ChangeStatusRequest{Status: "completed"})
	require.NoError(t, err)

	assert.Equal(t, string(domain.StatusCompleted), resp.Status)
	assert.Equal(t, []int64{5}, f.slots.released)
}

func TestChangeStatus_ConfirmPending(t *testing.T) {
	f := newFixture()
	f.sessions.session.Status = domain.StatusPendingConfirmation

	resp, err := f.svc.ChangeStatus(context.Background(), employee, 1, &models.ChangeStatusRequest{Status: "booked"})
	require.NoError(t, err)
	assert.Equal(t, string(domain.StatusBooked), resp.Status)
	assert.Empty(t, f.slots.released)
}

func TestChangeStatus_ByClientDenied(t *testing.T) {
	f := newFixture()

	_, err := f.svc.ChangeStatus(context.Background(), client, 1, &models.ChangeStatusRequest{Status: "in_progress"})
	assert.ErrorIs(t, err, ErrAccessDenied)
}

func TestChangeStatus_ForeignEmployeeDenied(t *testing.T) {
	f := newFixture()
	other := domain.Actor{ID: 21, Role: domain.RoleEmployee}

	_, err := f.svc.ChangeStatus(context.Background(), other, 1, &models.ChangeStatusRequest{Status: "in_progress"})
	assert.ErrorIs(t, err, ErrAccessDenied)
}

func TestChangeStatus_InvalidStatus(t *testing.T) {
	f := newFixture()

	_, err := f.svc.ChangeStatus(context.Background(), employee, 1, &models.ChangeStatusRequest{Status: "unknown"})
	assert.ErrorIs(t, err, ErrInvalidInput)
}

func TestChangeStatus_CancelRespectsWindow(t *testing.T) {
	f := newFixture()
	slotDate := time.Date(2025, 10, 15, 0, 0, 0, 0, time.UTC)
	f.sessions.slot.SpecificDate = &slotDate
	f.sessions.slot.StartTime = types.TimeString("09:00")

	_, err := f.svc.ChangeStatus(context.Background(), employee, 1, &models.ChangeStatusRequest{Status: "canceled"})
	assert.ErrorIs(t, err, ErrWindowClosed)
}

func TestGetForUser_OwnSessions(t *testing.T) {
	f := newFixture()
	f.sessions.views = []*domain.SessionView{
		{SessionID: 1, Status: domain.StatusBooked, StartTime: "14:00", EndTime: "15:00"},
	}

	resp, err := f.svc.GetForUser(context.Background(), client, 10)
	require.NoError(t, err)
	assert.Equal(t, 1, resp.Total)
}

func TestGetForUser_ForeignDenied(t *testing.T) {
	f := newFixture()

	_, err := f.svc.GetForUser(context.Background(), client, 11)
	assert.ErrorIs(t, err, ErrAccessDenied)
}

func TestGetForUser_AdminSeesAnyUser(t *testing.T) {
	f := newFixture()

	_, err := f.svc.GetForUser(context.Background(), admin, 11)
	assert.NoError(t, err)
}
