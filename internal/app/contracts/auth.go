package contracts

import (
	"context"
	"mindcheck-service/internal/app/models"
	"mindcheck-service/internal/pkg/dto/requests"
	"mindcheck-service/internal/pkg/dto/responses"
)

type AuthUsecase interface {
	Login(ctx context.Context, request *requests.Login) (*responses.Login, error)
	Logout(ctx context.Context, session *models.Session) error
	// Authenticate resolves a bearer token into its live session.
	Authenticate(ctx context.Context, token string) (*models.Session, error)
}
