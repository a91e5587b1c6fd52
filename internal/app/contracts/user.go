package contracts

import (
	"context"
	"mindcheck-service/internal/app/models"
	"mindcheck-service/internal/pkg/dto/requests"
	"mindcheck-service/internal/pkg/dto/responses"
	"time"
)

type UserUsecase interface {
	CreateUser(ctx context.Context, request *requests.CreateUser) (*responses.User, error)
	FindAll(ctx context.Context, session *models.Session) ([]responses.User, error)
	FindByID(ctx context.Context, session *models.Session, userID string) (*responses.User, error)
	GetProfile(ctx context.Context, session *models.Session) (*responses.User, error)
	UpdateUser(ctx context.Context, session *models.Session, request *requests.UpdateUser) (*responses.User, error)
	DeleteUser(ctx context.Context, session *models.Session, userID string) error
}

type UserRepository interface {
	FindAll(ctx context.Context, role string) ([]models.User, error)
	FindByID(ctx context.Context, userID string) (*models.User, error)
	FindByEmail(ctx context.Context, email string) (*models.User, error)
	CreateUser(ctx context.Context, userModel *models.User) (userID string, err error)
	UpdateUser(ctx context.Context, userModel *models.User) error
	UpdateLastLogin(ctx context.Context, userID string, loginAt time.Time) error
	DeleteByID(ctx context.Context, userID string) error
}
