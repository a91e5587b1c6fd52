package notifications

import (
	"context"
	"errors"
	"mindcheck-service/internal/app/config"
	"mindcheck-service/internal/app/contracts/mocks"
	"mindcheck-service/internal/app/models"
	"mindcheck-service/internal/pkg/dto/requests"
	"mindcheck-service/internal/pkg/dto/responses"
	"mindcheck-service/internal/pkg/exceptions"
	"net/http"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
)

const (
	patientID      = "665f1c2b9e1d4a0012345678"
	otherID        = "665f1c2b9e1d4a0087654321"
	notificationID = "665f1c2b9e1d4a00bbbbbbbb"
)

var (
	patientSession = &models.Session{UserID: patientID, Role: "patient"}
	doctorSession  = &models.Session{UserID: otherID, Role: "doctor"}
)

func newTestNotificationUsecase() (*notificationUsecase, *mocks.MockNotificationRepository, *mocks.MockNotificationPublisher) {
	repository := new(mocks.MockNotificationRepository)
	publisher := new(mocks.MockNotificationPublisher)
	return &notificationUsecase{
		NotificationRepository: repository,
		Publisher:              publisher,
		InternalConfig:         &config.InternalConfig{Notification: config.AppNotification{PublishTimeoutInSeconds: 1}},
		Log:                    zap.NewNop(),
	}, repository, publisher
}

func statusOf(t *testing.T, err error) int {
	t.Helper()
	var customErr *exceptions.CustomError
	require.ErrorAs(t, err, &customErr)
	return customErr.StatusCode
}

func TestNotificationUsecase_NotifyResultReady(t *testing.T) {
	t.Run("stores then publishes the formatted message", func(t *testing.T) {
		uc, repository, publisher := newTestNotificationUsecase()
		repository.On("CreateNotification", mock.Anything, mock.MatchedBy(func(n *models.Notification) bool {
			return n.UserID == patientID &&
				n.Type == "resultReady" &&
				n.Message == "Your Anxiety results are ready: Moderate anxiety" &&
				!n.Read
		})).Return(notificationID, nil)
		publisher.On("Publish", mock.Anything, mock.MatchedBy(func(e *responses.NotificationEvent) bool {
			return e.NotificationID == notificationID && e.AssessmentID == "a1"
		})).Return(nil)

		err := uc.NotifyResultReady(context.Background(), &models.Assessment{
			ID: "a1", UserID: patientID, AssessmentType: "anxiety", Severity: "Moderate anxiety",
		})

		require.NoError(t, err)
		repository.AssertExpectations(t)
		publisher.AssertExpectations(t)
	})

	t.Run("publish failure keeps the stored record", func(t *testing.T) {
		uc, repository, publisher := newTestNotificationUsecase()
		repository.On("CreateNotification", mock.Anything, mock.Anything).Return(notificationID, nil)
		publisher.On("Publish", mock.Anything, mock.Anything).Return(errors.New("channel closed"))

		err := uc.NotifyResultReady(context.Background(), &models.Assessment{UserID: patientID, AssessmentType: "ptsd"})
		assert.NoError(t, err)
	})

	t.Run("storage failure is returned and nothing is published", func(t *testing.T) {
		uc, repository, publisher := newTestNotificationUsecase()
		repository.On("CreateNotification", mock.Anything, mock.Anything).Return("", errors.New("mongo down"))

		err := uc.NotifyResultReady(context.Background(), &models.Assessment{UserID: patientID, AssessmentType: "ptsd"})
		assert.Error(t, err)
		publisher.AssertNotCalled(t, "Publish", mock.Anything, mock.Anything)
	})
}

func TestNotificationUsecase_CreateNotification(t *testing.T) {
	t.Run("patients cannot notify others", func(t *testing.T) {
		uc, _, _ := newTestNotificationUsecase()
		_, err := uc.CreateNotification(context.Background(), patientSession, &requests.CreateNotification{
			UserID: otherID, Type: "assessmentReminder", Message: "hello",
		})
		assert.Equal(t, http.StatusForbidden, statusOf(t, err))
	})

	t.Run("doctor sends a reminder", func(t *testing.T) {
		uc, repository, publisher := newTestNotificationUsecase()
		repository.On("CreateNotification", mock.Anything, mock.Anything).Return(notificationID, nil)
		publisher.On("Publish", mock.Anything, mock.Anything).Return(nil)

		result, err := uc.CreateNotification(context.Background(), doctorSession, &requests.CreateNotification{
			UserID: patientID, Type: "assessmentReminder", Message: "Please complete your PTSD Assessment",
		})

		require.NoError(t, err)
		assert.Equal(t, notificationID, result.ID)
		assert.False(t, result.Read)
	})
}

func TestNotificationUsecase_UpdateNotification(t *testing.T) {
	t.Run("marks as read", func(t *testing.T) {
		uc, repository, _ := newTestNotificationUsecase()
		repository.On("FindByID", mock.Anything, notificationID).Return(&models.Notification{
			ID: notificationID, UserID: patientID, Message: "m",
		}, nil)
		repository.On("UpdateNotification", mock.Anything, mock.MatchedBy(func(n *models.Notification) bool {
			return n.Read && n.Message == "m"
		})).Return(nil)

		read := true
		result, err := uc.UpdateNotification(context.Background(), patientSession, &requests.UpdateNotification{
			NotificationID: notificationID, Read: &read,
		})

		require.NoError(t, err)
		assert.True(t, result.Read)
	})

	t.Run("missing notification is not found", func(t *testing.T) {
		uc, repository, _ := newTestNotificationUsecase()
		repository.On("FindByID", mock.Anything, notificationID).Return(nil, nil)

		_, err := uc.UpdateNotification(context.Background(), patientSession, &requests.UpdateNotification{NotificationID: notificationID})
		assert.Equal(t, http.StatusNotFound, statusOf(t, err))
	})
}

func TestNotificationUsecase_FindByUserID(t *testing.T) {
	uc, repository, _ := newTestNotificationUsecase()
	repository.On("FindByUserID", mock.Anything, patientID, true).Return([]models.Notification{{ID: notificationID}}, nil)

	result, err := uc.FindByUserID(context.Background(), patientSession, patientID, true)
	require.NoError(t, err)
	assert.Len(t, result, 1)

	_, err = uc.FindByUserID(context.Background(), patientSession, otherID, false)
	assert.Equal(t, http.StatusForbidden, statusOf(t, err))
}

func TestNotificationUsecase_FindAll(t *testing.T) {
	uc, _, _ := newTestNotificationUsecase()
	_, err := uc.FindAll(context.Background(), patientSession)
	assert.Equal(t, http.StatusForbidden, statusOf(t, err))
}
