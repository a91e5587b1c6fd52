package session

import (
	"context"
	"errors"
	"mindcheck-service/internal/app/contracts/mocks"
	"mindcheck-service/internal/app/models"
	"mindcheck-service/internal/pkg/exceptions"
	"net/http"
	"strings"
	"testing"
	"time"

	"github.com/goccy/go-json"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
)

func newTestSessionService(redisRepository *mocks.MockRedisRepository, now time.Time) *sessionService {
	return &sessionService{
		RedisRepository: redisRepository,
		Log:             zap.NewNop(),
		now:             func() time.Time { return now },
	}
}

func TestSessionService_CreateSession(t *testing.T) {
	now := time.Date(2024, 6, 1, 10, 0, 0, 0, time.UTC)
	user := &models.User{ID: "665f1c2b9e1d4a0012345678", Email: "patient@example.com", Role: "patient"}

	t.Run("stores session under prefixed key", func(t *testing.T) {
		redisRepository := new(mocks.MockRedisRepository)
		redisRepository.On("Set", mock.Anything, mock.MatchedBy(func(key string) bool {
			return strings.HasPrefix(key, "session:")
		}), mock.AnythingOfType("*models.Session"), 30*time.Minute).Return(nil)

		svc := newTestSessionService(redisRepository, now)
		session, err := svc.CreateSession(context.Background(), user, 30*time.Minute)

		require.NoError(t, err)
		assert.NotEmpty(t, session.SessionID)
		assert.Equal(t, user.ID, session.UserID)
		assert.Equal(t, "patient", session.Role)
		assert.Equal(t, now.Add(30*time.Minute), session.ExpiresAt)
		redisRepository.AssertExpectations(t)
	})

	t.Run("redis failure is returned", func(t *testing.T) {
		redisRepository := new(mocks.MockRedisRepository)
		redisRepository.On("Set", mock.Anything, mock.Anything, mock.Anything, mock.Anything).
			Return(exceptions.ErrRedisSet(errors.New("connection refused")))

		svc := newTestSessionService(redisRepository, now)
		session, err := svc.CreateSession(context.Background(), user, time.Minute)

		assert.Nil(t, session)
		assert.Error(t, err)
	})
}

func TestSessionService_GetSessionData(t *testing.T) {
	now := time.Date(2024, 6, 1, 10, 0, 0, 0, time.UTC)
	stored := models.Session{SessionID: "abc", UserID: "u1", Role: "doctor", ExpiresAt: now.Add(time.Minute)}
	payload, _ := json.Marshal(stored)

	t.Run("returns decoded session", func(t *testing.T) {
		redisRepository := new(mocks.MockRedisRepository)
		redisRepository.On("Get", mock.Anything, "session:abc").Return(string(payload), nil)

		session, err := newTestSessionService(redisRepository, now).GetSessionData(context.Background(), "abc")
		require.NoError(t, err)
		assert.True(t, session.IsDoctor())
	})

	t.Run("missing session is unauthorized", func(t *testing.T) {
		redisRepository := new(mocks.MockRedisRepository)
		redisRepository.On("Get", mock.Anything, "session:abc").Return("", nil)

		_, err := newTestSessionService(redisRepository, now).GetSessionData(context.Background(), "abc")
		var customErr *exceptions.CustomError
		require.ErrorAs(t, err, &customErr)
		assert.Equal(t, http.StatusUnauthorized, customErr.StatusCode)
	})

	t.Run("expired session is rejected", func(t *testing.T) {
		redisRepository := new(mocks.MockRedisRepository)
		redisRepository.On("Get", mock.Anything, "session:abc").Return(string(payload), nil)

		_, err := newTestSessionService(redisRepository, now.Add(time.Hour)).GetSessionData(context.Background(), "abc")
		assert.Error(t, err)
	})

	t.Run("corrupt payload fails to parse", func(t *testing.T) {
		redisRepository := new(mocks.MockRedisRepository)
		redisRepository.On("Get", mock.Anything, "session:abc").Return("{not json", nil)

		_, err := newTestSessionService(redisRepository, now).GetSessionData(context.Background(), "abc")
		assert.Error(t, err)
	})
}
