package middleware_test

import (
	"context"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/mcoot/dicegame-go/internal/dependencies/mocks"
	"github.com/mcoot/dicegame-go/internal/middleware"
	"github.com/mcoot/dicegame-go/internal/services/auth"
	"github.com/mcoot/dicegame-go/internal/storage/memory"
	"github.com/mcoot/dicegame-go/internal/testutil"
)

func newAuthService(t *testing.T) *auth.Service {
	t.Helper()
	clk := mocks.NewMockClock(time.Date(2024, 1, 1, 12, 0, 0, 0, time.UTC))
	return auth.New(memory.New(), clk, mocks.NewMockRandom(), testutil.NopLogger(), auth.DefaultConfig())
}

func TestLoggingRecordsStatusAndPlayer(t *testing.T) {
	logger, logs := testutil.CaptureLogger()
	authService := newAuthService(t)
	session, err := authService.CreateGuestPlayer(context.Background(), "Alice")
	require.NoError(t, err)

	handler := middleware.Logging(logger)(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		ctx, err := middleware.Authenticate(r, authService)
		require.NoError(t, err)
		assert.Equal(t, "Alice", middleware.PlayerFrom(ctx).DisplayName)
		w.WriteHeader(http.StatusTeapot)
	}))

	req := httptest.NewRequest(http.MethodGet, "/api/v1/players/me", nil)
	req.Header.Set("Authorization", "Bearer "+session.Token)
	handler.ServeHTTP(httptest.NewRecorder(), req)

	entry := logs.Find("http request")
	require.NotNil(t, entry)
	assert.Equal(t, "INFO", entry["level"])
	assert.Equal(t, "/api/v1/players/me", entry["path"])
	assert.EqualValues(t, http.StatusTeapot, entry["status"])
	assert.Equal(t, string(session.PlayerID), entry["player_id"])
}

func TestLoggingServerErrorsAtErrorLevel(t *testing.T) {
	logger, logs := testutil.CaptureLogger()
	handler := middleware.Logging(logger)(http.HandlerFunc(func(w http.ResponseWriter, _ *http.Request) {
		http.Error(w, "boom", http.StatusInternalServerError)
	}))

	handler.ServeHTTP(httptest.NewRecorder(), httptest.NewRequest(http.MethodGet, "/", nil))

	entry := logs.Find("http request")
	require.NotNil(t, entry)
	assert.Equal(t, "ERROR", entry["level"])
	assert.NotContains(t, entry, "player_id")
}

func TestRecoveryWritesResponse(t *testing.T) {
	logger, logs := testutil.CaptureLogger()
	handler := middleware.Recovery(logger, func(w http.ResponseWriter, _ *http.Request, _ any) {
		w.WriteHeader(http.StatusServiceUnavailable)
	})(http.HandlerFunc(func(http.ResponseWriter, *http.Request) {
		panic("dice fell off the table")
	}))

	rr := httptest.NewRecorder()
	handler.ServeHTTP(rr, httptest.NewRequest(http.MethodPost, "/api/v1/matches/M1/roll", nil))

	assert.Equal(t, http.StatusServiceUnavailable, rr.Code)
	entry := logs.Find("panic recovered")
	require.NotNil(t, entry)
	assert.Equal(t, "dice fell off the table", entry["error"])
	assert.Equal(t, "/api/v1/matches/M1/roll", entry["path"])
}

func TestRecoverySkipsStartedResponse(t *testing.T) {
	called := false
	handler := middleware.Recovery(testutil.NopLogger(), func(http.ResponseWriter, *http.Request, any) {
		called = true
	})(http.HandlerFunc(func(w http.ResponseWriter, _ *http.Request) {
		w.WriteHeader(http.StatusOK)
		panic("late")
	}))

	rr := httptest.NewRecorder()
	handler.ServeHTTP(rr, httptest.NewRequest(http.MethodGet, "/", nil))

	assert.Equal(t, http.StatusOK, rr.Code)
	assert.False(t, called)
}

func TestSessionToken(t *testing.T) {
	req := httptest.NewRequest(http.MethodGet, "/", nil)
	assert.Empty(t, middleware.SessionToken(req))

	req.AddCookie(&http.Cookie{Name: middleware.SessionCookieName, Value: "from-cookie"})
	assert.Equal(t, "from-cookie", middleware.SessionToken(req))

	req.Header.Set("Authorization", "Bearer from-header")
	assert.Equal(t, "from-header", middleware.SessionToken(req))
}

func TestAuthenticateRejectsUnknownToken(t *testing.T) {
	authService := newAuthService(t)

	req := httptest.NewRequest(http.MethodGet, "/", nil)
	_, err := middleware.Authenticate(req, authService)
	assert.ErrorIs(t, err, auth.ErrInvalidSession)

	req.Header.Set("Authorization", "Bearer nope")
	ctx, err := middleware.Authenticate(req, authService)
	assert.ErrorIs(t, err, auth.ErrInvalidSession)
	assert.Nil(t, middleware.PlayerFrom(ctx))
}
