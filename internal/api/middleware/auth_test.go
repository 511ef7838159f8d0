package middleware

import (
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/m04kA/MCN-SessionService/internal/domain"
	"github.com/m04kA/MCN-SessionService/pkg/authtoken"
	"github.com/m04kA/MCN-SessionService/pkg/ptr"
)

const testSecret = "test-secret"

type noopLogger struct{}

func (noopLogger) Warn(format string, v ...interface{}) {}

func protectedEcho(t *testing.T, captured *domain.Actor) http.Handler {
	t.Helper()
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		actor, ok := ActorFromContext(r.Context())
		require.True(t, ok)
		*captured = actor
		w.WriteHeader(http.StatusOK)
	})
}

func TestAuth_ValidToken(t *testing.T) {
	token, err := authtoken.Generate(testSecret, time.Hour, 10, string(domain.RoleUser), nil)
	require.NoError(t, err)

	var actor domain.Actor
	handler := Auth(testSecret, noopLogger{})(protectedEcho(t, &actor))

	req := httptest.NewRequest(http.MethodGet, "/sessions", nil)
	req.Header.Set("Authorization", "Bearer "+token)
	rec := httptest.NewRecorder()

	handler.ServeHTTP(rec, req)

	assert.Equal(t, http.StatusOK, rec.Code)
	assert.Equal(t, int64(10), actor.ID)
	assert.Equal(t, domain.RoleUser, actor.Role)
}

func TestAuth_TokenCarriesDistrict(t *testing.T) {
	token, err := authtoken.Generate(testSecret, time.Hour, 2, string(domain.RoleLocalAdmin), ptr.Ptr(int64(7)))
	require.NoError(t, err)

	var actor domain.Actor
	handler := Auth(testSecret, noopLogger{})(protectedEcho(t, &actor))

	req := httptest.NewRequest(http.MethodGet, "/sessions", nil)
	req.Header.Set("Authorization", "Bearer "+token)
	rec := httptest.NewRecorder()

	handler.ServeHTTP(rec, req)

	assert.Equal(t, http.StatusOK, rec.Code)
	require.NotNil(t, actor.DistrictID)
	assert.Equal(t, int64(7), *actor.DistrictID)
	assert.True(t, actor.IsAdmin())
}

func TestAuth_MissingToken(t *testing.T) {
	var actor domain.Actor
	handler := Auth(testSecret, noopLogger{})(protectedEcho(t, &actor))

	req := httptest.NewRequest(http.MethodGet, "/sessions", nil)
	rec := httptest.NewRecorder()

	handler.ServeHTTP(rec, req)

	assert.Equal(t, http.StatusUnauthorized, rec.Code)
}

func TestAuth_WrongSecret(t *testing.T) {
	token, err := authtoken.Generate("other-secret", time.Hour, 10, string(domain.RoleUser), nil)
	require.NoError(t, err)

	var actor domain.Actor
	handler := Auth(testSecret, noopLogger{})(protectedEcho(t, &actor))

	req := httptest.NewRequest(http.MethodGet, "/sessions", nil)
	req.Header.Set("Authorization", "Bearer "+token)
	rec := httptest.NewRecorder()

	handler.ServeHTTP(rec, req)

	assert.Equal(t, http.StatusUnauthorized, rec.Code)
}

func TestAuth_ExpiredToken(t *testing.T) {
	token, err := authtoken.Generate(testSecret, -time.Minute, 10, string(domain.RoleUser), nil)
	require.NoError(t, err)

	var actor domain.Actor
	handler := Auth(testSecret, noopLogger{})(protectedEcho(t, &actor))

	req := httptest.NewRequest(http.MethodGet, "/sessions", nil)
	req.Header.Set("Authorization", "Bearer "+token)
	rec := httptest.NewRecorder()

	handler.ServeHTTP(rec, req)

	assert.Equal(t, http.StatusUnauthorized, rec.Code)
}

func TestAuth_UnknownRole(t *testing.T) {
	token, err := authtoken.Generate(testSecret, time.Hour, 10, "owner", nil)
	require.NoError(t, err)

	var actor domain.Actor
	handler := Auth(testSecret, noopLogger{})(protectedEcho(t, &actor))

	req := httptest.NewRequest(http.MethodGet, "/sessions", nil)
	req.Header.Set("Authorization", "Bearer "+token)
	rec := httptest.NewRecorder()

	handler.ServeHTTP(rec, req)

	assert.Equal(t, http.StatusUnauthorized, rec.Code)
}
