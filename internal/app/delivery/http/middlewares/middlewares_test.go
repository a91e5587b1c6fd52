package middlewares

import (
	"io"
	"mindcheck-service/internal/app/config"
	"mindcheck-service/internal/app/contracts/mocks"
	"mindcheck-service/internal/app/models"
	"mindcheck-service/internal/pkg/exceptions"
	"mindcheck-service/internal/pkg/utils"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"go.uber.org/zap"
)

func newTestMiddlewares(authUsecase *mocks.MockAuthUsecase) *Middlewares {
	return NewMiddlewares(zap.NewNop(), authUsecase, &config.InternalConfig{
		App:       config.App{RequestBodyLimitInMegabyte: 1},
		Screening: config.AppScreening{SubmissionsPerMinute: 1, SubmissionBurst: 1},
	})
}

func okHandler(w http.ResponseWriter, r *http.Request) {
	w.WriteHeader(http.StatusOK)
}

func TestAuthenticate(t *testing.T) {
	t.Run("missing bearer token", func(t *testing.T) {
		authUsecase := new(mocks.MockAuthUsecase)
		m := newTestMiddlewares(authUsecase)

		rr := httptest.NewRecorder()
		m.Authenticate(http.HandlerFunc(okHandler)).ServeHTTP(rr, httptest.NewRequest(http.MethodGet, "/", nil))

		assert.Equal(t, http.StatusUnauthorized, rr.Code)
		authUsecase.AssertNotCalled(t, "Authenticate", mock.Anything, mock.Anything)
	})

	t.Run("expired session", func(t *testing.T) {
		authUsecase := new(mocks.MockAuthUsecase)
		authUsecase.On("Authenticate", mock.Anything, "stale").Return(nil, exceptions.ErrSessionNotFound(nil))
		m := newTestMiddlewares(authUsecase)

		req := httptest.NewRequest(http.MethodGet, "/", nil)
		req.Header.Set("Authorization", "Bearer stale")
		rr := httptest.NewRecorder()
		m.Authenticate(http.HandlerFunc(okHandler)).ServeHTTP(rr, req)

		assert.Equal(t, http.StatusUnauthorized, rr.Code)
	})

	t.Run("session reaches the handler", func(t *testing.T) {
		authUsecase := new(mocks.MockAuthUsecase)
		authUsecase.On("Authenticate", mock.Anything, "good").Return(&models.Session{UserID: "u1", Role: "patient"}, nil)
		m := newTestMiddlewares(authUsecase)

		var seen *models.Session
		handler := http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			seen, _ = utils.SessionFromContext(r.Context())
			w.WriteHeader(http.StatusOK)
		})

		req := httptest.NewRequest(http.MethodGet, "/", nil)
		req.Header.Set("Authorization", "Bearer good")
		rr := httptest.NewRecorder()
		m.Authenticate(handler).ServeHTTP(rr, req)

		assert.Equal(t, http.StatusOK, rr.Code)
		if assert.NotNil(t, seen) {
			assert.Equal(t, "u1", seen.UserID)
		}
	})
}

func TestRequireRole(t *testing.T) {
	m := newTestMiddlewares(new(mocks.MockAuthUsecase))
	handler := m.RequireRole("doctor")(http.HandlerFunc(okHandler))

	tests := []struct {
		name     string
		session  *models.Session
		expected int
	}{
		{name: "doctor passes", session: &models.Session{Role: "doctor"}, expected: http.StatusOK},
		{name: "patient is forbidden", session: &models.Session{Role: "patient"}, expected: http.StatusForbidden},
		{name: "no session", session: nil, expected: http.StatusUnauthorized},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			req := httptest.NewRequest(http.MethodGet, "/", nil)
			if tt.session != nil {
				req = req.WithContext(utils.ContextWithSession(req.Context(), tt.session))
			}
			rr := httptest.NewRecorder()
			handler.ServeHTTP(rr, req)
			assert.Equal(t, tt.expected, rr.Code)
		})
	}
}

func TestSubmissionRateLimiter(t *testing.T) {
	m := newTestMiddlewares(new(mocks.MockAuthUsecase))
	handler := m.SubmissionRateLimiter(http.HandlerFunc(okHandler))

	send := func(userID string) *httptest.ResponseRecorder {
		req := httptest.NewRequest(http.MethodPost, "/", nil)
		req = req.WithContext(utils.ContextWithSession(req.Context(), &models.Session{UserID: userID}))
		rr := httptest.NewRecorder()
		handler.ServeHTTP(rr, req)
		return rr
	}

	assert.Equal(t, http.StatusOK, send("u1").Code)

	limited := send("u1")
	assert.Equal(t, http.StatusTooManyRequests, limited.Code)
	assert.NotEmpty(t, limited.Header().Get("Retry-After"))

	assert.Equal(t, http.StatusOK, send("u2").Code, "limits are per user")
}

func TestBodyLimit(t *testing.T) {
	m := newTestMiddlewares(new(mocks.MockAuthUsecase))

	var readErr error
	handler := m.BodyLimit(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		_, readErr = io.ReadAll(r.Body)
		w.WriteHeader(http.StatusOK)
	}))

	req := httptest.NewRequest(http.MethodPost, "/", strings.NewReader(strings.Repeat("a", 2<<20)))
	handler.ServeHTTP(httptest.NewRecorder(), req)

	assert.Error(t, readErr)
}

func TestErrorHandler(t *testing.T) {
	m := newTestMiddlewares(new(mocks.MockAuthUsecase))
	handler := m.ErrorHandler(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		panic("boom")
	}))

	rr := httptest.NewRecorder()
	handler.ServeHTTP(rr, httptest.NewRequest(http.MethodGet, "/", nil))

	assert.Equal(t, http.StatusInternalServerError, rr.Code)
}

func TestRequestIDMiddleware(t *testing.T) {
	m := newTestMiddlewares(new(mocks.MockAuthUsecase))
	handler := m.RequestIDMiddleware(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, "client-id", utils.GetRequestID(r.Context()))
	}))

	req := httptest.NewRequest(http.MethodGet, "/", nil)
	req.Header.Set("X-Request-ID", "client-id")
	rr := httptest.NewRecorder()
	handler.ServeHTTP(rr, req)

	assert.Equal(t, "client-id", rr.Header().Get("X-Request-ID"))
}
