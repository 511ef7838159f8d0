package qrcodes

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/m04kA/MCN-SessionService/internal/domain"
	tokenRepo "github.com/m04kA/MCN-SessionService/internal/infra/storage/qrtoken"
	sessionRepo "github.com/m04kA/MCN-SessionService/internal/infra/storage/session"
)

type fakeSessionRepo struct {
	session *domain.Session
	getErr  error
}

func (f *fakeSessionRepo) GetByID(ctx context.Context, id int64) (*domain.Session, error) {
	if f.getErr != nil {
		return nil, f.getErr
	}
	return f.session, nil
}

type fakeTokenRepo struct {
	token  *domain.QRToken
	getErr error

	inserted *domain.QRToken
	marked   []string
}

func (f *fakeTokenRepo) Insert(ctx context.Context, token *domain.QRToken) error {
	f.inserted = token
	return nil
}

func (f *fakeTokenRepo) GetByToken(ctx context.Context, token string) (*domain.QRToken, error) {
	if f.getErr != nil {
		return nil, f.getErr
	}
	return f.token, nil
}

func (f *fakeTokenRepo) MarkUsed(ctx context.Context, token string) error {
	f.marked = append(f.marked, token)
	return nil
}

type noopLogger struct{}

func (noopLogger) Info(format string, v ...interface{})  {}
func (noopLogger) Warn(format string, v ...interface{})  {}
func (noopLogger) Error(format string, v ...interface{}) {}

func newService() (*Service, *fakeSessionRepo, *fakeTokenRepo) {
	sessions := &fakeSessionRepo{
		session: &domain.Session{ID: 1, UserID: 10, Status: domain.StatusBooked},
	}
	tokens := &fakeTokenRepo{}
	svc := NewService(sessions, tokens, "http://localhost:8080", 15*time.Minute, noopLogger{})
	return svc, sessions, tokens
}

func TestIssue_ByOwner(t *testing.T) {
	svc, _, tokens := newService()
	owner := domain.Actor{ID: 10, Role: domain.RoleUser}

	issued, err := svc.Issue(context.Background(), owner, 1)
	require.NoError(t, err)

	assert.NotEmpty(t, issued.Token)
	assert.Equal(t, int64(1), issued.SessionID)
	assert.Contains(t, issued.URL, issued.Token)
	require.NotNil(t, tokens.inserted)
	assert.Equal(t, issued.Token, tokens.inserted.Token)
	assert.WithinDuration(t, time.Now().Add(15*time.Minute), issued.ExpiresAt, time.Minute)
}

func TestIssue_ForeignClientDenied(t *testing.T) {
	svc, _, _ := newService()
	other := domain.Actor{ID: 11, Role: domain.RoleUser}

	_, err := svc.Issue(context.Background(), other, 1)
	assert.ErrorIs(t, err, ErrAccessDenied)
}

func TestIssue_EmployeeAllowed(t *testing.T) {
	svc, _, _ := newService()
	employee := domain.Actor{ID: 20, Role: domain.RoleEmployee}

	_, err := svc.Issue(context.Background(), employee, 1)
	assert.NoError(t, err)
}

func TestIssue_SessionNotFound(t *testing.T) {
	svc, sessions, _ := newService()
	sessions.getErr = sessionRepo.ErrSessionNotFound
	owner := domain.Actor{ID: 10, Role: domain.RoleUser}

	_, err := svc.Issue(context.Background(), owner, 1)
	assert.ErrorIs(t, err, ErrSessionNotFound)
}

func TestResolve_MarksTokenUsed(t *testing.T) {
	svc, _, tokens := newService()
	tokens.token = &domain.QRToken{
		Token:     "a1b2c3",
		SessionID: 1,
		ExpiresAt: time.Now().Add(10 * time.Minute),
	}

	sessionID, err := svc.Resolve(context.Background(), "a1b2c3")
	require.NoError(t, err)

	assert.Equal(t, int64(1), sessionID)
	assert.Equal(t, []string{"a1b2c3"}, tokens.marked)
}

func TestResolve_UsedToken(t *testing.T) {
	svc, _, tokens := newService()
	tokens.token = &domain.QRToken{
		Token:     "a1b2c3",
		SessionID: 1,
		ExpiresAt: time.Now().Add(10 * time.Minute),
		Used:      true,
	}

	_, err := svc.Resolve(context.Background(), "a1b2c3")
	assert.ErrorIs(t, err, ErrTokenUsed)
	assert.Empty(t, tokens.marked)
}

func TestResolve_ExpiredToken(t *testing.T) {
	svc, _, tokens := newService()
	tokens.token = &domain.QRToken{
		Token:     "a1b2c3",
		SessionID: 1,
		ExpiresAt: time.Now().Add(-time.Minute),
	}

	_, err := svc.Resolve(context.Background(), "a1b2c3")
	assert.ErrorIs(t, err, ErrTokenExpired)
	assert.Empty(t, tokens.marked)
}

func TestResolve_UnknownToken(t *testing.T) {
	svc, _, tokens := newService()
	tokens.getErr = tokenRepo.ErrTokenNotFound

	_, err := svc.Resolve(context.Background(), "missing")
	assert.ErrorIs(t, err, ErrTokenNotFound)
}
