package contracts

import (
	"context"
	"mindcheck-service/internal/app/models"
	"time"
)

type SessionService interface {
	CreateSession(ctx context.Context, user *models.User, ttl time.Duration) (*models.Session, error)
	GetSessionData(ctx context.Context, sessionID string) (*models.Session, error)
	DeleteSession(ctx context.Context, sessionID string) error
}
