package utils

import (
	"context"
	"mindcheck-service/internal/app/models"
	"mindcheck-service/internal/pkg/constvars"
	"mindcheck-service/internal/pkg/exceptions"
)

// SessionFromContext returns the session placed on ctx by the authentication
// middleware.
func SessionFromContext(ctx context.Context) (*models.Session, error) {
	session, ok := ctx.Value(constvars.CONTEXT_SESSION_DATA_KEY).(*models.Session)
	if !ok || session == nil {
		return nil, exceptions.ErrTokenMissing(nil)
	}
	return session, nil
}

func ContextWithSession(ctx context.Context, session *models.Session) context.Context {
	return context.WithValue(ctx, constvars.CONTEXT_SESSION_DATA_KEY, session)
}
