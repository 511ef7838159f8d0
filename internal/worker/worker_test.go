package worker

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/m04kA/MCN-SessionService/internal/domain"
	userRepo "github.com/m04kA/MCN-SessionService/internal/infra/storage/user"
	"github.com/m04kA/MCN-SessionService/internal/service/qrcodes"
)

// Фейки зависимостей воркера

type fakeOutbox struct {
	events []*domain.OutboxEvent

	processed []int64
	attempts  []int64
	markErr   error
	listErr   error
}

func (f *fakeOutbox) ListPending(ctx context.Context, limit int) ([]*domain.OutboxEvent, error) {
	if f.listErr != nil {
		return nil, f.listErr
	}
	return f.events, nil
}

func (f *fakeOutbox) MarkProcessed(ctx context.Context, id int64) error {
	if f.markErr != nil {
		return f.markErr
	}
	f.processed = append(f.processed, id)
	return nil
}

func (f *fakeOutbox) IncrementAttempts(ctx context.Context, id int64, maxAttempts int) error {
	f.attempts = append(f.attempts, id)
	return nil
}

type insertedNotification struct {
	userID  int64
	title   string
	message string
}

type fakeNotifications struct {
	inserted  []insertedNotification
	insertErr error
}

func (f *fakeNotifications) Insert(ctx context.Context, userID int64, title string, message *string) error {
	if f.insertErr != nil {
		return f.insertErr
	}
	msg := ""
	if message != nil {
		msg = *message
	}
	f.inserted = append(f.inserted, insertedNotification{userID: userID, title: title, message: msg})
	return nil
}

type fakeUsers struct {
	user   *userRepo.User
	getErr error
}

func (f *fakeUsers) GetByID(ctx context.Context, id int64) (*userRepo.User, error) {
	if f.getErr != nil {
		return nil, f.getErr
	}
	return f.user, nil
}

type fakeQRIssuer struct {
	issued   *qrcodes.IssuedToken
	issueErr error
	calls    int
}

func (f *fakeQRIssuer) IssueForSession(ctx context.Context, sessionID int64) (*qrcodes.IssuedToken, error) {
	f.calls++
	if f.issueErr != nil {
		return nil, f.issueErr
	}
	return f.issued, nil
}

type sentMail struct {
	to      string
	subject string
	body    string
}

type fakeMailer struct {
	sent    []sentMail
	sendErr error
}

func (f *fakeMailer) Send(to, subject, body string) error {
	if f.sendErr != nil {
		return f.sendErr
	}
	f.sent = append(f.sent, sentMail{to: to, subject: subject, body: body})
	return nil
}

type noopLogger struct{}

func (noopLogger) Info(format string, v ...interface{})  {}
func (noopLogger) Warn(format string, v ...interface{})  {}
func (noopLogger) Error(format string, v ...interface{}) {}

type fixture struct {
	outbox        *fakeOutbox
	notifications *fakeNotifications
	users         *fakeUsers
	qrIssuer      *fakeQRIssuer
	mailer        *fakeMailer
	worker        *Worker
}

func newFixture() *fixture {
	f := &fixture{
		outbox: &fakeOutbox{},
		notifications: &fakeNotifications{},
		users: &fakeUsers{
			user: &userRepo.User{ID: 10, Email: "client@example.com", Role: domain.RoleUser},
		},
		qrIssuer: &fakeQRIssuer{
			issued: &qrcodes.IssuedToken{
				Token:     "a1b2c3",
				SessionID: 1,
				ExpiresAt: time.Now().Add(15 * time.Minute),
				URL:       "http://localhost:8080/qr/access/a1b2c3",
			},
		},
		mailer: &fakeMailer{},
	}
	f.worker = New(f.outbox, f.notifications, f.users, f.qrIssuer, f.mailer, nil, noopLogger{}, Config{})
	return f
}

func bookedEvent() *domain.OutboxEvent {
	return &domain.OutboxEvent{
		ID:        1,
		Type:      domain.EventSessionBooked,
		SessionID: 1,
		UserID:    10,
		NewStatus: domain.StatusBooked,
	}
}

func statusChangedEvent() *domain.OutboxEvent {
	return &domain.OutboxEvent{
		ID:        2,
		Type:      domain.EventSessionStatusChanged,
		SessionID: 1,
		UserID:    10,
		NewStatus: domain.StatusCanceled,
	}
}

func TestRun_BookedEventDelivered(t *testing.T) {
	f := newFixture()
	f.outbox.events = []*domain.OutboxEvent{bookedEvent()}

	err := f.worker.Run(context.Background())
	require.NoError(t, err)

	require.Len(t, f.notifications.inserted, 1)
	assert.Equal(t, int64(10), f.notifications.inserted[0].userID)
	assert.Equal(t, "Запись подтверждена", f.notifications.inserted[0].title)
	// Код чек-ина вложен в текст уведомления
	assert.Contains(t, f.notifications.inserted[0].message, "a1b2c3")

	require.Len(t, f.mailer.sent, 1)
	assert.Equal(t, "client@example.com", f.mailer.sent[0].to)

	assert.Equal(t, []int64{1}, f.outbox.processed)
	assert.Empty(t, f.outbox.attempts)
}

func TestRun_PendingConfirmationTitle(t *testing.T) {
	f := newFixture()
	ev := bookedEvent()
	ev.NewStatus = domain.StatusPendingConfirmation
	f.outbox.events = []*domain.OutboxEvent{ev}

	err := f.worker.Run(context.Background())
	require.NoError(t, err)

	require.Len(t, f.notifications.inserted, 1)
	assert.Equal(t, "Запись ожидает подтверждения", f.notifications.inserted[0].title)
}

func TestRun_StatusChangedEventSkipsQR(t *testing.T) {
	f := newFixture()
	f.outbox.events = []*domain.OutboxEvent{statusChangedEvent()}

	err := f.worker.Run(context.Background())
	require.NoError(t, err)

	assert.Zero(t, f.qrIssuer.calls)
	require.Len(t, f.notifications.inserted, 1)
	assert.Equal(t, "Статус записи изменён", f.notifications.inserted[0].title)
	assert.Equal(t, []int64{2}, f.outbox.processed)
}

func TestRun_InsertFailureIncrementsAttempts(t *testing.T) {
	f := newFixture()
	f.outbox.events = []*domain.OutboxEvent{bookedEvent()}
	f.notifications.insertErr = errors.New("db down")

	err := f.worker.Run(context.Background())
	require.NoError(t, err)

	assert.Empty(t, f.outbox.processed)
	assert.Equal(t, []int64{1}, f.outbox.attempts)
	assert.Empty(t, f.mailer.sent)
}

func TestRun_UnknownRecipientIncrementsAttempts(t *testing.T) {
	f := newFixture()
	f.outbox.events = []*domain.OutboxEvent{bookedEvent()}
	f.users.getErr = errors.New("user not found")

	err := f.worker.Run(context.Background())
	require.NoError(t, err)

	assert.Empty(t, f.notifications.inserted)
	assert.Equal(t, []int64{1}, f.outbox.attempts)
}

func TestRun_EmailFailureIsBestEffort(t *testing.T) {
	f := newFixture()
	f.outbox.events = []*domain.OutboxEvent{bookedEvent()}
	f.mailer.sendErr = errors.New("smtp timeout")

	err := f.worker.Run(context.Background())
	require.NoError(t, err)

	// Уведомление создано и событие закрыто несмотря на сбой почты
	require.Len(t, f.notifications.inserted, 1)
	assert.Equal(t, []int64{1}, f.outbox.processed)
	assert.Empty(t, f.outbox.attempts)
}

func TestRun_QRIssueFailureIsBestEffort(t *testing.T) {
	f := newFixture()
	f.outbox.events = []*domain.OutboxEvent{bookedEvent()}
	f.qrIssuer.issueErr = errors.New("issue failed")

	err := f.worker.Run(context.Background())
	require.NoError(t, err)

	require.Len(t, f.notifications.inserted, 1)
	assert.NotContains(t, f.notifications.inserted[0].message, "a1b2c3")
	assert.Equal(t, []int64{1}, f.outbox.processed)
}

func TestRun_NoEmailSkipsMailer(t *testing.T) {
	f := newFixture()
	f.outbox.events = []*domain.OutboxEvent{statusChangedEvent()}
	f.users.user.Email = ""

	err := f.worker.Run(context.Background())
	require.NoError(t, err)

	assert.Empty(t, f.mailer.sent)
	assert.Equal(t, []int64{2}, f.outbox.processed)
}

func TestRun_BatchProcessesAllEvents(t *testing.T) {
	f := newFixture()
	f.outbox.events = []*domain.OutboxEvent{bookedEvent(), statusChangedEvent()}

	err := f.worker.Run(context.Background())
	require.NoError(t, err)

	assert.Equal(t, []int64{1, 2}, f.outbox.processed)
	assert.Len(t, f.notifications.inserted, 2)
}

func TestRun_ListFailureReturnsError(t *testing.T) {
	f := newFixture()
	f.outbox.listErr = errors.New("db down")

	err := f.worker.Run(context.Background())
	assert.Error(t, err)
}
