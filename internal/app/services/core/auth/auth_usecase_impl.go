package auth

import (
	"context"
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

type authUsecase struct {
	UserRepository contracts.UserRepository
	SessionService contracts.SessionService
	InternalConfig *config.InternalConfig
	Log            *zap.Logger
}

var (
	authUsecaseInstance contracts.AuthUsecase
	onceAuthUsecase     sync.Once
)

func NewAuthUsecase(
	userMongoRepository contracts.UserRepository,
	sessionService contracts.SessionService,
	internalConfig *config.InternalConfig,
	logger *zap.Logger,
) contracts.AuthUsecase {
	onceAuthUsecase.Do(func() {
		authUsecaseInstance = &authUsecase{
			UserRepository: userMongoRepository,
			SessionService: sessionService,
			InternalConfig: internalConfig,
			Log:            logger,
		}
	})
	return authUsecaseInstance
}

func (uc *authUsecase) sessionTTL() time.Duration {
	return time.Duration(uc.InternalConfig.JWT.ExpTimeInMinute) * time.Minute
}

func (uc *authUsecase) Login(ctx context.Context, request *requests.Login) (*responses.Login, error) {
	requestID, _ := ctx.Value(constvars.CONTEXT_REQUEST_ID_KEY).(string)
	uc.Log.Info("authUsecase.Login called",
		zap.String(constvars.LoggingRequestIDKey, requestID),
	)

	user, err := uc.UserRepository.FindByEmail(ctx, request.Email)
	if err != nil {
		uc.Log.Error("authUsecase.Login error finding user by email",
			zap.String(constvars.LoggingRequestIDKey, requestID),
			zap.Error(err),
		)
		return nil, err
	}

	if user == nil || !utils.CheckPasswordHash(request.Password, user.Password) {
		utils.LogSecurityEvent(uc.Log, "login_failed", requestID, "low")
		return nil, exceptions.ErrInvalidEmailOrPassword(nil)
	}

	ttl := uc.sessionTTL()
	session, err := uc.SessionService.CreateSession(ctx, user, ttl)
	if err != nil {
		return nil, err
	}

	accessToken, err := utils.GenerateSessionJWT(session.SessionID, uc.InternalConfig.JWT.Secret, ttl)
	if err != nil {
		uc.Log.Error("authUsecase.Login error generating token",
			zap.String(constvars.LoggingRequestIDKey, requestID),
			zap.Error(err),
		)
		return nil, err
	}

	loginAt := time.Now().UTC()
	err = uc.UserRepository.UpdateLastLogin(ctx, user.ID, loginAt)
	if err != nil {
		uc.Log.Warn("authUsecase.Login error recording last login",
			zap.String(constvars.LoggingRequestIDKey, requestID),
			zap.Error(err),
		)
	} else {
		user.LastLoginAt = &loginAt
	}

	response := &responses.Login{
		AccessToken: accessToken,
		TokenType:   constvars.TokenTypeBearer,
		ExpiresIn:   int(ttl.Seconds()),
		User:        utils.BuildUserResponse(user),
	}

	uc.Log.Info("authUsecase.Login succeeded",
		zap.String(constvars.LoggingRequestIDKey, requestID),
		zap.String(constvars.LoggingUserIDKey, user.ID),
	)
	return response, nil
}

func (uc *authUsecase) Logout(ctx context.Context, session *models.Session) error {
	requestID, _ := ctx.Value(constvars.CONTEXT_REQUEST_ID_KEY).(string)
	uc.Log.Info("authUsecase.Logout called",
		zap.String(constvars.LoggingRequestIDKey, requestID),
		zap.String(constvars.LoggingUserIDKey, session.UserID),
	)

	err := uc.SessionService.DeleteSession(ctx, session.SessionID)
	if err != nil {
		uc.Log.Error("authUsecase.Logout error deleting session",
			zap.String(constvars.LoggingRequestIDKey, requestID),
			zap.Error(err),
		)
		return err
	}

	uc.Log.Info("authUsecase.Logout succeeded",
		zap.String(constvars.LoggingRequestIDKey, requestID),
	)
	return nil
}

func (uc *authUsecase) Authenticate(ctx context.Context, token string) (*models.Session, error) {
	sessionID, err := utils.ParseSessionJWT(token, uc.InternalConfig.JWT.Secret)
	if err != nil {
		return nil, err
	}
	return uc.SessionService.GetSessionData(ctx, sessionID)
}
