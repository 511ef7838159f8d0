package book_session

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/m04kA/MCN-SessionService/internal/domain"
	catalogRepo "github.com/m04kA/MCN-SessionService/internal/infra/storage/catalog"
	slotRepo "github.com/m04kA/MCN-SessionService/internal/infra/storage/workinghours"
	"github.com/m04kA/MCN-SessionService/pkg/ptr"
)

// Фейки зависимостей use case

type fakeSlotRepo struct {
	reserveErr   error
	reserveCalls int
}

func (f *fakeSlotRepo) TryReserve(ctx context.Context, id int64) error {
	f.reserveCalls++
	return f.reserveErr
}

type fakeSessionRepo struct {
	created *domain.Session
}

func (f *fakeSessionRepo) Create(ctx context.Context, sess *domain.Session) (*domain.Session, error) {
	sess.ID = 100
	f.created = sess
	return sess, nil
}

type fakeCatalogRepo struct {
	direction    *domain.Direction
	directionErr error
	districtID   int64
}

func (f *fakeCatalogRepo) GetDirection(ctx context.Context, id int64) (*domain.Direction, error) {
	if f.directionErr != nil {
		return nil, f.directionErr
	}
	return f.direction, nil
}

func (f *fakeCatalogRepo) ResolveDistrictForDirection(ctx context.Context, directionID int64) (int64, error) {
	return f.districtID, nil
}

type fakeUserRepo struct {
	exists bool
}

func (f *fakeUserRepo) Exists(ctx context.Context, id int64) (bool, error) {
	return f.exists, nil
}

type fakeEmitter struct {
	booked []*domain.Session
}

func (f *fakeEmitter) SessionBooked(ctx context.Context, sess *domain.Session) {
	f.booked = append(f.booked, sess)
}

type fakeTxManager struct{}

func (fakeTxManager) DoSerializable(ctx context.Context, fn func(ctx context.Context) error) error {
	return fn(ctx)
}

type noopLogger struct{}

func (noopLogger) Info(format string, v ...interface{})  {}
func (noopLogger) Warn(format string, v ...interface{})  {}
func (noopLogger) Error(format string, v ...interface{}) {}

type fixture struct {
	slots    *fakeSlotRepo
	sessions *fakeSessionRepo
	catalog  *fakeCatalogRepo
	users    *fakeUserRepo
	emitter  *fakeEmitter
	uc       *UseCase
}

func newFixture() *fixture {
	f := &fixture{
		slots:    &fakeSlotRepo{},
		sessions: &fakeSessionRepo{},
		catalog: &fakeCatalogRepo{
			direction:  &domain.Direction{ID: 7, CategoryID: 3},
			districtID: 2,
		},
		users:   &fakeUserRepo{exists: true},
		emitter: &fakeEmitter{},
	}
	f.uc = NewUseCase(f.slots, f.sessions, f.catalog, f.users, f.emitter, fakeTxManager{}, noopLogger{})
	return f
}

func validRequest() *Request {
	return &Request{
		Actor:         domain.Actor{ID: 10, Role: domain.RoleUser},
		WorkingHourID: 5,
		DistrictID:    2,
		DirectionID:   7,
	}
}

func TestExecute_Success(t *testing.T) {
	f := newFixture()

	resp, err := f.uc.Execute(context.Background(), validRequest())
	require.NoError(t, err)

	assert.Equal(t, int64(100), resp.ID)
	assert.Equal(t, int64(10), resp.UserID)
	assert.Equal(t, string(domain.StatusBooked), resp.Status)
	assert.Equal(t, 1, f.slots.reserveCalls)

	// Событие публикуется после успешного бронирования
	require.Len(t, f.emitter.booked, 1)
	assert.Equal(t, int64(100), f.emitter.booked[0].ID)
}

func TestExecute_RequiresConfirmation(t *testing.T) {
	f := newFixture()
	f.catalog.direction.RequiresConfirmation = true

	resp, err := f.uc.Execute(context.Background(), validRequest())
	require.NoError(t, err)

	assert.Equal(t, string(domain.StatusPendingConfirmation), resp.Status)
}

func TestExecute_SlotConflict(t *testing.T) {
	f := newFixture()
	f.slots.reserveErr = slotRepo.ErrSlotAlreadyBooked

	_, err := f.uc.Execute(context.Background(), validRequest())
	assert.ErrorIs(t, err, ErrSlotUnavailable)
	assert.Empty(t, f.emitter.booked)
}

func TestExecute_SlotNotFound(t *testing.T) {
	f := newFixture()
	f.slots.reserveErr = slotRepo.ErrSlotNotFound

	_, err := f.uc.Execute(context.Background(), validRequest())
	assert.ErrorIs(t, err, ErrSlotNotFound)
}

func TestExecute_DirectionNotFound(t *testing.T) {
	f := newFixture()
	f.catalog.directionErr = catalogRepo.ErrDirectionNotFound

	_, err := f.uc.Execute(context.Background(), validRequest())
	assert.ErrorIs(t, err, ErrDirectionNotFound)
	assert.Zero(t, f.slots.reserveCalls)
}

func TestExecute_DirectionMismatch(t *testing.T) {
	f := newFixture()
	f.catalog.districtID = 99

	_, err := f.uc.Execute(context.Background(), validRequest())
	assert.ErrorIs(t, err, ErrDirectionMismatch)
}

func TestExecute_ClientNotFound(t *testing.T) {
	f := newFixture()
	f.users.exists = false

	req := validRequest()
	req.Actor = domain.Actor{ID: 1, Role: domain.RoleLocalAdmin}
	req.ClientID = ptr.Ptr(int64(42))

	_, err := f.uc.Execute(context.Background(), req)
	assert.ErrorIs(t, err, ErrClientNotFound)
}

func TestExecute_ClientCannotBookForOther(t *testing.T) {
	f := newFixture()

	req := validRequest()
	req.ClientID = ptr.Ptr(int64(11))

	_, err := f.uc.Execute(context.Background(), req)
	assert.ErrorIs(t, err, ErrForbidden)
	assert.Zero(t, f.slots.reserveCalls)
}

func TestExecute_AdminBooksForClient(t *testing.T) {
	f := newFixture()

	req := validRequest()
	req.Actor = domain.Actor{ID: 1, Role: domain.RoleSuperAdmin}
	req.ClientID = ptr.Ptr(int64(42))

	resp, err := f.uc.Execute(context.Background(), req)
	require.NoError(t, err)
	assert.Equal(t, int64(42), resp.UserID)
}

func TestExecute_AdminRequiresClientID(t *testing.T) {
	f := newFixture()

	req := validRequest()
	req.Actor = domain.Actor{ID: 1, Role: domain.RoleSuperAdmin}

	_, err := f.uc.Execute(context.Background(), req)
	assert.ErrorIs(t, err, ErrInvalidInput)
}

func TestExecute_InvalidInput(t *testing.T) {
	f := newFixture()

	req := validRequest()
	req.WorkingHourID = 0

	_, err := f.uc.Execute(context.Background(), req)
	assert.ErrorIs(t, err, ErrInvalidInput)
}
