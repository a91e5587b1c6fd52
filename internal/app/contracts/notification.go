package contracts

import (
	"context"
	"mindcheck-service/internal/app/models"
	"mindcheck-service/internal/pkg/dto/requests"
	"mindcheck-service/internal/pkg/dto/responses"
)

type NotificationUsecase interface {
	CreateNotification(ctx context.Context, session *models.Session, request *requests.CreateNotification) (*responses.Notification, error)
	FindAll(ctx context.Context, session *models.Session) ([]responses.Notification, error)
	FindByID(ctx context.Context, session *models.Session, notificationID string) (*responses.Notification, error)
	FindByUserID(ctx context.Context, session *models.Session, userID string, unreadOnly bool) ([]responses.Notification, error)
	UpdateNotification(ctx context.Context, session *models.Session, request *requests.UpdateNotification) (*responses.Notification, error)
	DeleteNotification(ctx context.Context, session *models.Session, notificationID string) error
	// NotifyResultReady stores and publishes the result notice for a
	// completed assessment. It skips every access check.
	NotifyResultReady(ctx context.Context, assessment *models.Assessment) error
}

type NotificationRepository interface {
	FindAll(ctx context.Context) ([]models.Notification, error)
	FindByID(ctx context.Context, notificationID string) (*models.Notification, error)
	FindByUserID(ctx context.Context, userID string, unreadOnly bool) ([]models.Notification, error)
	CreateNotification(ctx context.Context, notification *models.Notification) (notificationID string, err error)
	UpdateNotification(ctx context.Context, notification *models.Notification) error
	DeleteByID(ctx context.Context, notificationID string) error
}

type NotificationPublisher interface {
	Publish(ctx context.Context, event *responses.NotificationEvent) error
}
