package users

import (
	"context"
	"errors"
	"mindcheck-service/internal/app/contracts/mocks"
	"mindcheck-service/internal/app/models"
	"mindcheck-service/internal/pkg/dto/requests"
	"mindcheck-service/internal/pkg/exceptions"
	"mindcheck-service/internal/pkg/utils"
	"net/http"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
)

const (
	patientID = "665f1c2b9e1d4a0012345678"
	otherID   = "665f1c2b9e1d4a0087654321"
)

func newTestUserUsecase() (*userUsecase, *mocks.MockUserRepository, *mocks.MockSessionService) {
	userRepository := new(mocks.MockUserRepository)
	sessionService := new(mocks.MockSessionService)
	return &userUsecase{
		UserRepository: userRepository,
		SessionService: sessionService,
		Log:            zap.NewNop(),
	}, userRepository, sessionService
}

func statusOf(t *testing.T, err error) int {
	t.Helper()
	var customErr *exceptions.CustomError
	require.ErrorAs(t, err, &customErr)
	return customErr.StatusCode
}

func TestUserUsecase_CreateUser(t *testing.T) {
	request := &requests.CreateUser{
		FirstName: "Ada",
		LastName:  "Lovelace",
		Email:     "ada@example.com",
		Password:  "Str0ngPass!",
		Role:      "patient",
	}

	t.Run("hashes password and returns created user", func(t *testing.T) {
		uc, userRepository, _ := newTestUserUsecase()
		userRepository.On("FindByEmail", mock.Anything, request.Email).Return(nil, nil)
		userRepository.On("CreateUser", mock.Anything, mock.MatchedBy(func(user *models.User) bool {
			return user.Password != request.Password && utils.CheckPasswordHash(request.Password, user.Password)
		})).Return(patientID, nil)

		user, err := uc.CreateUser(context.Background(), request)

		require.NoError(t, err)
		assert.Equal(t, patientID, user.ID)
		assert.Equal(t, "ada@example.com", user.Email)
		assert.False(t, user.CreatedAt.IsZero())
		userRepository.AssertExpectations(t)
	})

	t.Run("email already registered", func(t *testing.T) {
		uc, userRepository, _ := newTestUserUsecase()
		userRepository.On("FindByEmail", mock.Anything, request.Email).Return(&models.User{ID: otherID}, nil)

		user, err := uc.CreateUser(context.Background(), request)

		assert.Nil(t, user)
		assert.Equal(t, http.StatusBadRequest, statusOf(t, err))
		userRepository.AssertNotCalled(t, "CreateUser", mock.Anything, mock.Anything)
	})
}

func TestUserUsecase_AccessRules(t *testing.T) {
	patient := &models.Session{UserID: patientID, Role: "patient"}
	doctor := &models.Session{UserID: otherID, Role: "doctor"}

	t.Run("patients cannot list users", func(t *testing.T) {
		uc, _, _ := newTestUserUsecase()
		_, err := uc.FindAll(context.Background(), patient)
		assert.Equal(t, http.StatusForbidden, statusOf(t, err))
	})

	t.Run("doctors can list users", func(t *testing.T) {
		uc, userRepository, _ := newTestUserUsecase()
		userRepository.On("FindAll", mock.Anything, "").Return([]models.User{{ID: patientID}, {ID: otherID}}, nil)

		users, err := uc.FindAll(context.Background(), doctor)
		require.NoError(t, err)
		assert.Len(t, users, 2)
	})

	t.Run("patients cannot read other users", func(t *testing.T) {
		uc, userRepository, _ := newTestUserUsecase()
		_, err := uc.FindByID(context.Background(), patient, otherID)
		assert.Equal(t, http.StatusForbidden, statusOf(t, err))
		userRepository.AssertNotCalled(t, "FindByID", mock.Anything, mock.Anything)
	})

	t.Run("unknown user is not found", func(t *testing.T) {
		uc, userRepository, _ := newTestUserUsecase()
		userRepository.On("FindByID", mock.Anything, otherID).Return(nil, nil)

		_, err := uc.FindByID(context.Background(), doctor, otherID)
		assert.Equal(t, http.StatusNotFound, statusOf(t, err))
	})

	t.Run("doctors cannot update someone else", func(t *testing.T) {
		uc, _, _ := newTestUserUsecase()
		_, err := uc.UpdateUser(context.Background(), doctor, &requests.UpdateUser{UserID: patientID})
		assert.Equal(t, http.StatusForbidden, statusOf(t, err))
	})
}

func TestUserUsecase_UpdateUser(t *testing.T) {
	session := &models.Session{UserID: patientID, Role: "patient"}
	existing := func() *models.User {
		return &models.User{ID: patientID, FirstName: "Ada", LastName: "Lovelace", Email: "ada@example.com", Role: "patient"}
	}
	firstName := "Augusta"

	t.Run("applies only present fields", func(t *testing.T) {
		uc, userRepository, _ := newTestUserUsecase()
		userRepository.On("FindByID", mock.Anything, patientID).Return(existing(), nil)
		userRepository.On("UpdateUser", mock.Anything, mock.AnythingOfType("*models.User")).Return(nil)

		user, err := uc.UpdateUser(context.Background(), session, &requests.UpdateUser{UserID: patientID, FirstName: &firstName})

		require.NoError(t, err)
		assert.Equal(t, "Augusta", user.FirstName)
		assert.Equal(t, "Lovelace", user.LastName)
		assert.Equal(t, "ada@example.com", user.Email)
	})

	t.Run("new email must be free", func(t *testing.T) {
		uc, userRepository, _ := newTestUserUsecase()
		email := "taken@example.com"
		userRepository.On("FindByID", mock.Anything, patientID).Return(existing(), nil)
		userRepository.On("FindByEmail", mock.Anything, email).Return(&models.User{ID: otherID}, nil)

		_, err := uc.UpdateUser(context.Background(), session, &requests.UpdateUser{UserID: patientID, Email: &email})
		assert.Equal(t, http.StatusBadRequest, statusOf(t, err))
		userRepository.AssertNotCalled(t, "UpdateUser", mock.Anything, mock.Anything)
	})
}

func TestUserUsecase_DeleteUser(t *testing.T) {
	t.Run("deleting yourself revokes the session", func(t *testing.T) {
		uc, userRepository, sessionService := newTestUserUsecase()
		session := &models.Session{SessionID: "sess-1", UserID: patientID, Role: "patient"}
		userRepository.On("DeleteByID", mock.Anything, patientID).Return(nil)
		sessionService.On("DeleteSession", mock.Anything, "sess-1").Return(nil)

		require.NoError(t, uc.DeleteUser(context.Background(), session, patientID))
		sessionService.AssertExpectations(t)
	})

	t.Run("doctor deleting a patient keeps own session", func(t *testing.T) {
		uc, userRepository, sessionService := newTestUserUsecase()
		session := &models.Session{SessionID: "sess-2", UserID: otherID, Role: "doctor"}
		userRepository.On("DeleteByID", mock.Anything, patientID).Return(nil)

		require.NoError(t, uc.DeleteUser(context.Background(), session, patientID))
		sessionService.AssertNotCalled(t, "DeleteSession", mock.Anything, mock.Anything)
	})

	t.Run("repository failure propagates", func(t *testing.T) {
		uc, userRepository, _ := newTestUserUsecase()
		session := &models.Session{UserID: patientID, Role: "patient"}
		userRepository.On("DeleteByID", mock.Anything, patientID).Return(errors.New("boom"))

		assert.Error(t, uc.DeleteUser(context.Background(), session, patientID))
	})
}
