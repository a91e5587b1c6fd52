package session

import (
	"context"
	"mindcheck-service/internal/app/contracts"
	"mindcheck-service/internal/app/models"
	"mindcheck-service/internal/pkg/constvars"
	"mindcheck-service/internal/pkg/exceptions"
	"mindcheck-service/internal/pkg/utils"
	"sync"
	"time"

	"github.com/goccy/go-json"
	"go.uber.org/zap"
)

type sessionService struct {
	RedisRepository contracts.RedisRepository
	Log             *zap.Logger
	now             func() time.Time
}

var (
	sessionServiceInstance contracts.SessionService
	onceSessionService     sync.Once
)

func NewSessionService(redisRepository contracts.RedisRepository, logger *zap.Logger) contracts.SessionService {
	onceSessionService.Do(func() {
		sessionServiceInstance = &sessionService{
			RedisRepository: redisRepository,
			Log:             logger,
			now:             time.Now,
		}
	})
	return sessionServiceInstance
}

func sessionKey(sessionID string) string {
	return constvars.RedisSessionKeyPrefix + sessionID
}

func (svc *sessionService) CreateSession(ctx context.Context, user *models.User, ttl time.Duration) (*models.Session, error) {
	requestID, _ := ctx.Value(constvars.CONTEXT_REQUEST_ID_KEY).(string)
	svc.Log.Info("sessionService.CreateSession called",
		zap.String(constvars.LoggingRequestIDKey, requestID),
		zap.String(constvars.LoggingUserIDKey, user.ID),
	)

	session := &models.Session{
		SessionID: utils.GenerateSessionID(),
		UserID:    user.ID,
		Email:     user.Email,
		Role:      user.Role,
		ExpiresAt: svc.now().UTC().Add(ttl),
	}

	err := svc.RedisRepository.Set(ctx, sessionKey(session.SessionID), session, ttl)
	if err != nil {
		svc.Log.Error("sessionService.CreateSession error storing session in Redis",
			zap.String(constvars.LoggingRequestIDKey, requestID),
			zap.Error(err),
		)
		return nil, err
	}

	svc.Log.Info("sessionService.CreateSession succeeded",
		zap.String(constvars.LoggingRequestIDKey, requestID),
		zap.String(constvars.LoggingUserIDKey, user.ID),
	)
	return session, nil
}

func (svc *sessionService) GetSessionData(ctx context.Context, sessionID string) (*models.Session, error) {
	requestID, _ := ctx.Value(constvars.CONTEXT_REQUEST_ID_KEY).(string)

	sessionData, err := svc.RedisRepository.Get(ctx, sessionKey(sessionID))
	if err != nil {
		svc.Log.Error("sessionService.GetSessionData error retrieving session from Redis",
			zap.String(constvars.LoggingRequestIDKey, requestID),
			zap.Error(err),
		)
		return nil, err
	}
	if sessionData == "" {
		return nil, exceptions.ErrSessionNotFound(nil)
	}

	session := new(models.Session)
	err = json.Unmarshal([]byte(sessionData), session)
	if err != nil {
		svc.Log.Error("sessionService.GetSessionData error parsing session data",
			zap.String(constvars.LoggingRequestIDKey, requestID),
			zap.Error(err),
		)
		return nil, exceptions.ErrCannotParseJSON(err)
	}

	if !session.ExpiresAt.IsZero() && svc.now().After(session.ExpiresAt) {
		return nil, exceptions.ErrSessionNotFound(nil)
	}
	return session, nil
}

func (svc *sessionService) DeleteSession(ctx context.Context, sessionID string) error {
	requestID, _ := ctx.Value(constvars.CONTEXT_REQUEST_ID_KEY).(string)
	svc.Log.Info("sessionService.DeleteSession called",
		zap.String(constvars.LoggingRequestIDKey, requestID),
	)

	err := svc.RedisRepository.Delete(ctx, sessionKey(sessionID))
	if err != nil {
		svc.Log.Error("sessionService.DeleteSession error deleting session from Redis",
			zap.String(constvars.LoggingRequestIDKey, requestID),
			zap.Error(err),
		)
		return err
	}
	return nil
}
