package notifications

import (
	"context"
	"fmt"
	"mindcheck-service/internal/app/config"
	"mindcheck-service/internal/app/contracts"
	"mindcheck-service/internal/app/models"
	"mindcheck-service/internal/pkg/constvars"
	"mindcheck-service/internal/pkg/dto/requests"
	"mindcheck-service/internal/pkg/dto/responses"
	"mindcheck-service/internal/pkg/exceptions"
	"mindcheck-service/internal/pkg/utils"
	"sync"
	"time"

	"go.uber.org/zap"
)

type notificationUsecase struct {
	NotificationRepository contracts.NotificationRepository
	Publisher              contracts.NotificationPublisher
	InternalConfig         *config.InternalConfig
	Log                    *zap.Logger
}

var (
	notificationUsecaseInstance contracts.NotificationUsecase
	onceNotificationUsecase     sync.Once
)

func NewNotificationUsecase(
	notificationMongoRepository contracts.NotificationRepository,
	publisher contracts.NotificationPublisher,
	internalConfig *config.InternalConfig,
	logger *zap.Logger,
) contracts.NotificationUsecase {
	onceNotificationUsecase.Do(func() {
		notificationUsecaseInstance = &notificationUsecase{
			NotificationRepository: notificationMongoRepository,
			Publisher:              publisher,
			InternalConfig:         internalConfig,
			Log:                    logger,
		}
	})
	return notificationUsecaseInstance
}

func (uc *notificationUsecase) CreateNotification(ctx context.Context, session *models.Session, request *requests.CreateNotification) (*responses.Notification, error) {
	requestID, _ := ctx.Value(constvars.CONTEXT_REQUEST_ID_KEY).(string)
	uc.Log.Info("notificationUsecase.CreateNotification called",
		zap.String(constvars.LoggingRequestIDKey, requestID),
		zap.String(constvars.LoggingUserIDKey, request.UserID),
	)

	if !session.CanAccess(request.UserID) {
		return nil, exceptions.ErrNotResourceOwner(nil)
	}

	notification := &models.Notification{
		UserID:       request.UserID,
		Type:         request.Type,
		Message:      request.Message,
		AssessmentID: request.AssessmentID,
	}
	err := uc.store(ctx, notification)
	if err != nil {
		return nil, err
	}

	response := utils.BuildNotificationResponse(notification)
	uc.Log.Info("notificationUsecase.CreateNotification succeeded",
		zap.String(constvars.LoggingRequestIDKey, requestID),
		zap.String(constvars.LoggingNotificationIDKey, notification.ID),
	)
	return &response, nil
}

func (uc *notificationUsecase) FindAll(ctx context.Context, session *models.Session) ([]responses.Notification, error) {
	requestID, _ := ctx.Value(constvars.CONTEXT_REQUEST_ID_KEY).(string)
	uc.Log.Info("notificationUsecase.FindAll called",
		zap.String(constvars.LoggingRequestIDKey, requestID),
	)

	if !session.IsDoctor() {
		return nil, exceptions.ErrNotMatchRoleType(nil)
	}

	notifications, err := uc.NotificationRepository.FindAll(ctx)
	if err != nil {
		return nil, err
	}
	return utils.BuildNotificationsResponse(notifications), nil
}

func (uc *notificationUsecase) FindByID(ctx context.Context, session *models.Session, notificationID string) (*responses.Notification, error) {
	requestID, _ := ctx.Value(constvars.CONTEXT_REQUEST_ID_KEY).(string)
	uc.Log.Info("notificationUsecase.FindByID called",
		zap.String(constvars.LoggingRequestIDKey, requestID),
		zap.String(constvars.LoggingNotificationIDKey, notificationID),
	)

	notification, err := uc.findAccessible(ctx, session, notificationID)
	if err != nil {
		return nil, err
	}

	response := utils.BuildNotificationResponse(notification)
	return &response, nil
}

func (uc *notificationUsecase) FindByUserID(ctx context.Context, session *models.Session, userID string, unreadOnly bool) ([]responses.Notification, error) {
	requestID, _ := ctx.Value(constvars.CONTEXT_REQUEST_ID_KEY).(string)
	uc.Log.Info("notificationUsecase.FindByUserID called",
		zap.String(constvars.LoggingRequestIDKey, requestID),
		zap.String(constvars.LoggingUserIDKey, userID),
		zap.Bool("unread_only", unreadOnly),
	)

	if !session.CanAccess(userID) {
		return nil, exceptions.ErrNotResourceOwner(nil)
	}

	notifications, err := uc.NotificationRepository.FindByUserID(ctx, userID, unreadOnly)
	if err != nil {
		return nil, err
	}
	return utils.BuildNotificationsResponse(notifications), nil
}

func (uc *notificationUsecase) UpdateNotification(ctx context.Context, session *models.Session, request *requests.UpdateNotification) (*responses.Notification, error) {
	requestID, _ := ctx.Value(constvars.CONTEXT_REQUEST_ID_KEY).(string)
	uc.Log.Info("notificationUsecase.UpdateNotification called",
		zap.String(constvars.LoggingRequestIDKey, requestID),
		zap.String(constvars.LoggingNotificationIDKey, request.NotificationID),
	)

	notification, err := uc.findAccessible(ctx, session, request.NotificationID)
	if err != nil {
		return nil, err
	}

	if request.Message != nil {
		notification.Message = *request.Message
	}
	if request.Read != nil {
		notification.Read = *request.Read
	}
	notification.SetUpdatedAt()

	err = uc.NotificationRepository.UpdateNotification(ctx, notification)
	if err != nil {
		uc.Log.Error("notificationUsecase.UpdateNotification error updating notification",
			zap.String(constvars.LoggingRequestIDKey, requestID),
			zap.Error(err),
		)
		return nil, err
	}

	response := utils.BuildNotificationResponse(notification)
	return &response, nil
}

func (uc *notificationUsecase) DeleteNotification(ctx context.Context, session *models.Session, notificationID string) error {
	requestID, _ := ctx.Value(constvars.CONTEXT_REQUEST_ID_KEY).(string)
	uc.Log.Info("notificationUsecase.DeleteNotification called",
		zap.String(constvars.LoggingRequestIDKey, requestID),
		zap.String(constvars.LoggingNotificationIDKey, notificationID),
	)

	if _, err := uc.findAccessible(ctx, session, notificationID); err != nil {
		return err
	}
	return uc.NotificationRepository.DeleteByID(ctx, notificationID)
}

func (uc *notificationUsecase) NotifyResultReady(ctx context.Context, assessment *models.Assessment) error {
	notification := &models.Notification{
		UserID:       assessment.UserID,
		Type:         constvars.NotificationTypeResultReady,
		Message:      fmt.Sprintf(constvars.NotificationMessageResultReadyFormat, utils.CapitalizeFirst(assessment.AssessmentType), assessment.Severity),
		AssessmentID: assessment.ID,
	}
	return uc.store(ctx, notification)
}

// store persists the notification and then publishes it. The stored record
// is the source of truth, so a failed publish is logged and swallowed.
func (uc *notificationUsecase) store(ctx context.Context, notification *models.Notification) error {
	requestID, _ := ctx.Value(constvars.CONTEXT_REQUEST_ID_KEY).(string)

	notification.SetCreatedAtUpdatedAt()
	notificationID, err := uc.NotificationRepository.CreateNotification(ctx, notification)
	if err != nil {
		uc.Log.Error("notificationUsecase.store error creating notification",
			zap.String(constvars.LoggingRequestIDKey, requestID),
			zap.Error(err),
		)
		return err
	}
	notification.ID = notificationID

	publishCtx, cancel := context.WithTimeout(ctx, uc.publishTimeout())
	defer cancel()

	err = uc.Publisher.Publish(publishCtx, &responses.NotificationEvent{
		NotificationID: notification.ID,
		UserID:         notification.UserID,
		Type:           notification.Type,
		Message:        notification.Message,
		AssessmentID:   notification.AssessmentID,
		CreatedAt:      notification.CreatedAt,
	})
	if err != nil {
		uc.Log.Warn("notificationUsecase.store error publishing notification",
			zap.String(constvars.LoggingRequestIDKey, requestID),
			zap.String(constvars.LoggingNotificationIDKey, notification.ID),
			zap.Error(err),
		)
	}
	return nil
}

func (uc *notificationUsecase) publishTimeout() time.Duration {
	seconds := uc.InternalConfig.Notification.PublishTimeoutInSeconds
	if seconds <= 0 {
		seconds = 5
	}
	return time.Duration(seconds) * time.Second
}

func (uc *notificationUsecase) findAccessible(ctx context.Context, session *models.Session, notificationID string) (*models.Notification, error) {
	notification, err := uc.NotificationRepository.FindByID(ctx, notificationID)
	if err != nil {
		return nil, err
	}
	if notification == nil {
		return nil, exceptions.ErrNotificationNotExist(nil)
	}
	if !session.CanAccess(notification.UserID) {
		return nil, exceptions.ErrNotResourceOwner(nil)
	}
	return notification, nil
}
