package users

import (
	"context"
	"mindcheck-service/internal/app/contracts"
	"mindcheck-service/internal/app/models"
	"mindcheck-service/internal/pkg/constvars"
	"mindcheck-service/internal/pkg/dto/requests"
	"mindcheck-service/internal/pkg/dto/responses"
	"mindcheck-service/internal/pkg/exceptions"
	"mindcheck-service/internal/pkg/utils"
	"sync"

	"go.uber.org/zap"
)

type userUsecase struct {
	UserRepository contracts.UserRepository
	SessionService contracts.SessionService
	Log            *zap.Logger
}

var (
	userUsecaseInstance contracts.UserUsecase
	onceUserUsecase     sync.Once
)

func NewUserUsecase(
	userMongoRepository contracts.UserRepository,
	sessionService contracts.SessionService,
	logger *zap.Logger,
) contracts.UserUsecase {
	onceUserUsecase.Do(func() {
		userUsecaseInstance = &userUsecase{
			UserRepository: userMongoRepository,
			SessionService: sessionService,
			Log:            logger,
		}
	})
	return userUsecaseInstance
}

func (uc *userUsecase) CreateUser(ctx context.Context, request *requests.CreateUser) (*responses.User, error) {
	requestID, _ := ctx.Value(constvars.CONTEXT_REQUEST_ID_KEY).(string)
	uc.Log.Info("userUsecase.CreateUser called",
		zap.String(constvars.LoggingRequestIDKey, requestID),
	)

	existingUser, err := uc.UserRepository.FindByEmail(ctx, request.Email)
	if err != nil {
		uc.Log.Error("userUsecase.CreateUser error checking existing email",
			zap.String(constvars.LoggingRequestIDKey, requestID),
			zap.Error(err),
		)
		return nil, err
	}
	if existingUser != nil {
		uc.Log.Warn("userUsecase.CreateUser email already registered",
			zap.String(constvars.LoggingRequestIDKey, requestID),
		)
		return nil, exceptions.ErrEmailAlreadyExist(nil)
	}

	hashedPassword, err := utils.HashPassword(request.Password)
	if err != nil {
		return nil, exceptions.ErrHashPassword(err)
	}

	user := &models.User{
		FirstName:   request.FirstName,
		LastName:    request.LastName,
		Email:       request.Email,
		Password:    hashedPassword,
		Role:        request.Role,
		Gender:      request.Gender,
		DateOfBirth: request.DateOfBirth,
		PhoneNumber: request.PhoneNumber,
	}
	user.SetCreatedAtUpdatedAt()

	user.ID, err = uc.UserRepository.CreateUser(ctx, user)
	if err != nil {
		uc.Log.Error("userUsecase.CreateUser error creating user",
			zap.String(constvars.LoggingRequestIDKey, requestID),
			zap.Error(err),
		)
		return nil, err
	}

	utils.LogBusinessEvent(uc.Log, "user_registered", requestID,
		zap.String(constvars.LoggingUserIDKey, user.ID),
	)

	response := utils.BuildUserResponse(user)
	uc.Log.Info("userUsecase.CreateUser succeeded",
		zap.String(constvars.LoggingRequestIDKey, requestID),
		zap.String(constvars.LoggingUserIDKey, user.ID),
	)
	return &response, nil
}

func (uc *userUsecase) FindAll(ctx context.Context, session *models.Session) ([]responses.User, error) {
	requestID, _ := ctx.Value(constvars.CONTEXT_REQUEST_ID_KEY).(string)
	uc.Log.Info("userUsecase.FindAll called",
		zap.String(constvars.LoggingRequestIDKey, requestID),
	)

	if !session.IsDoctor() {
		return nil, exceptions.ErrNotMatchRoleType(nil)
	}

	users, err := uc.UserRepository.FindAll(ctx, "")
	if err != nil {
		uc.Log.Error("userUsecase.FindAll error fetching users",
			zap.String(constvars.LoggingRequestIDKey, requestID),
			zap.Error(err),
		)
		return nil, err
	}

	uc.Log.Info("userUsecase.FindAll succeeded",
		zap.String(constvars.LoggingRequestIDKey, requestID),
		zap.Int(constvars.LoggingCountKey, len(users)),
	)
	return utils.BuildUsersResponse(users), nil
}

func (uc *userUsecase) FindByID(ctx context.Context, session *models.Session, userID string) (*responses.User, error) {
	requestID, _ := ctx.Value(constvars.CONTEXT_REQUEST_ID_KEY).(string)
	uc.Log.Info("userUsecase.FindByID called",
		zap.String(constvars.LoggingRequestIDKey, requestID),
		zap.String(constvars.LoggingUserIDKey, userID),
	)

	if !session.CanAccess(userID) {
		return nil, exceptions.ErrNotResourceOwner(nil)
	}

	user, err := uc.findExisting(ctx, userID)
	if err != nil {
		return nil, err
	}

	response := utils.BuildUserResponse(user)
	uc.Log.Info("userUsecase.FindByID succeeded",
		zap.String(constvars.LoggingRequestIDKey, requestID),
		zap.String(constvars.LoggingUserIDKey, userID),
	)
	return &response, nil
}

func (uc *userUsecase) GetProfile(ctx context.Context, session *models.Session) (*responses.User, error) {
	requestID, _ := ctx.Value(constvars.CONTEXT_REQUEST_ID_KEY).(string)
	uc.Log.Info("userUsecase.GetProfile called",
		zap.String(constvars.LoggingRequestIDKey, requestID),
		zap.String(constvars.LoggingUserIDKey, session.UserID),
	)

	user, err := uc.findExisting(ctx, session.UserID)
	if err != nil {
		return nil, err
	}

	response := utils.BuildUserResponse(user)
	return &response, nil
}

func (uc *userUsecase) UpdateUser(ctx context.Context, session *models.Session, request *requests.UpdateUser) (*responses.User, error) {
	requestID, _ := ctx.Value(constvars.CONTEXT_REQUEST_ID_KEY).(string)
	uc.Log.Info("userUsecase.UpdateUser called",
		zap.String(constvars.LoggingRequestIDKey, requestID),
		zap.String(constvars.LoggingUserIDKey, request.UserID),
	)

	if session.UserID != request.UserID {
		return nil, exceptions.ErrNotResourceOwner(nil)
	}

	user, err := uc.findExisting(ctx, request.UserID)
	if err != nil {
		return nil, err
	}

	if request.Email != nil && *request.Email != user.Email {
		taken, err := uc.UserRepository.FindByEmail(ctx, *request.Email)
		if err != nil {
			return nil, err
		}
		if taken != nil {
			return nil, exceptions.ErrEmailAlreadyExist(nil)
		}
		user.Email = *request.Email
	}

	if request.Password != nil {
		hashedPassword, err := utils.HashPassword(*request.Password)
		if err != nil {
			return nil, exceptions.ErrHashPassword(err)
		}
		user.Password = hashedPassword
	}

	applyString(&user.FirstName, request.FirstName)
	applyString(&user.LastName, request.LastName)
	applyString(&user.Gender, request.Gender)
	applyString(&user.DateOfBirth, request.DateOfBirth)
	applyString(&user.PhoneNumber, request.PhoneNumber)
	user.SetUpdatedAt()

	err = uc.UserRepository.UpdateUser(ctx, user)
	if err != nil {
		uc.Log.Error("userUsecase.UpdateUser error updating user",
			zap.String(constvars.LoggingRequestIDKey, requestID),
			zap.Error(err),
		)
		return nil, err
	}

	response := utils.BuildUserResponse(user)
	uc.Log.Info("userUsecase.UpdateUser succeeded",
		zap.String(constvars.LoggingRequestIDKey, requestID),
		zap.String(constvars.LoggingUserIDKey, user.ID),
	)
	return &response, nil
}

func (uc *userUsecase) DeleteUser(ctx context.Context, session *models.Session, userID string) error {
	requestID, _ := ctx.Value(constvars.CONTEXT_REQUEST_ID_KEY).(string)
	uc.Log.Info("userUsecase.DeleteUser called",
		zap.String(constvars.LoggingRequestIDKey, requestID),
		zap.String(constvars.LoggingUserIDKey, userID),
	)

	if !session.CanAccess(userID) {
		return exceptions.ErrNotResourceOwner(nil)
	}

	err := uc.UserRepository.DeleteByID(ctx, userID)
	if err != nil {
		uc.Log.Error("userUsecase.DeleteUser error deleting user",
			zap.String(constvars.LoggingRequestIDKey, requestID),
			zap.Error(err),
		)
		return err
	}

	if session.UserID == userID {
		err = uc.SessionService.DeleteSession(ctx, session.SessionID)
		if err != nil {
			uc.Log.Warn("userUsecase.DeleteUser error revoking own session",
				zap.String(constvars.LoggingRequestIDKey, requestID),
				zap.Error(err),
			)
		}
	}

	utils.LogSecurityEvent(uc.Log, "user_deleted", requestID, "medium",
		zap.String(constvars.LoggingUserIDKey, userID),
	)
	uc.Log.Info("userUsecase.DeleteUser succeeded",
		zap.String(constvars.LoggingRequestIDKey, requestID),
		zap.String(constvars.LoggingUserIDKey, userID),
	)
	return nil
}

func (uc *userUsecase) findExisting(ctx context.Context, userID string) (*models.User, error) {
	user, err := uc.UserRepository.FindByID(ctx, userID)
	if err != nil {
		return nil, err
	}
	if user == nil {
		return nil, exceptions.ErrUserNotExist(nil)
	}
	return user, nil
}

func applyString(target *string, value *string) {
	if value != nil {
		*target = *value
	}
}
