package controllers

import (
	"context"
	"mindcheck-service/internal/app/config"
	"mindcheck-service/internal/app/contracts"
	"mindcheck-service/internal/pkg/constvars"
	"mindcheck-service/internal/pkg/dto/requests"
	"mindcheck-service/internal/pkg/exceptions"
	"mindcheck-service/internal/pkg/utils"
	"net/http"

	"github.com/goccy/go-json"
	"go.uber.org/zap"
)

type AuthController struct {
	Log            *zap.Logger
	AuthUsecase    contracts.AuthUsecase
	UserUsecase    contracts.UserUsecase
	InternalConfig *config.InternalConfig
}

func NewAuthController(logger *zap.Logger, authUsecase contracts.AuthUsecase, userUsecase contracts.UserUsecase, internalConfig *config.InternalConfig) *AuthController {
	return &AuthController{
		Log:            logger,
		AuthUsecase:    authUsecase,
		UserUsecase:    userUsecase,
		InternalConfig: internalConfig,
	}
}

func (ctrl *AuthController) Login(w http.ResponseWriter, r *http.Request) {
	requestID := utils.GetRequestID(r.Context())
	ctrl.Log.Info("AuthController.Login called",
		zap.String(constvars.LoggingRequestIDKey, requestID),
	)

	// Bind body to request
	request := new(requests.Login)
	err := json.NewDecoder(r.Body).Decode(request)
	if err != nil {
		ctrl.Log.Error("AuthController.Login error parsing body",
			zap.String(constvars.LoggingRequestIDKey, requestID),
			zap.Error(err),
		)
		utils.BuildErrorResponse(ctrl.Log, w, exceptions.ErrCannotParseJSON(err))
		return
	}

	// Sanitize request
	utils.SanitizeLoginRequest(request)

	// Validate request
	err = utils.ValidateStruct(request)
	if err != nil {
		ctrl.Log.Error("AuthController.Login validation error",
			zap.String(constvars.LoggingRequestIDKey, requestID),
			zap.Error(err),
		)
		utils.BuildErrorResponse(ctrl.Log, w, exceptions.ErrInputValidation(err))
		return
	}

	ctx, cancel := context.WithTimeout(r.Context(), requestTimeout(ctrl.InternalConfig))
	defer cancel()

	// Send it to be processed by usecase
	response, err := ctrl.AuthUsecase.Login(ctx, request)
	if err != nil {
		handleUsecaseError(ctrl.Log, w, "AuthController.Login", requestID, err)
		return
	}

	ctrl.Log.Info("AuthController.Login succeeded",
		zap.String(constvars.LoggingRequestIDKey, requestID),
	)

	// Send response
	utils.BuildSuccessResponse(w, constvars.StatusOK, constvars.LoginSuccessMessage, response)
}

func (ctrl *AuthController) Logout(w http.ResponseWriter, r *http.Request) {
	requestID := utils.GetRequestID(r.Context())
	ctrl.Log.Info("AuthController.Logout called",
		zap.String(constvars.LoggingRequestIDKey, requestID),
	)

	session, err := utils.SessionFromContext(r.Context())
	if err != nil {
		utils.BuildErrorResponse(ctrl.Log, w, err)
		return
	}

	ctx, cancel := context.WithTimeout(r.Context(), requestTimeout(ctrl.InternalConfig))
	defer cancel()

	err = ctrl.AuthUsecase.Logout(ctx, session)
	if err != nil {
		handleUsecaseError(ctrl.Log, w, "AuthController.Logout", requestID, err)
		return
	}

	ctrl.Log.Info("AuthController.Logout succeeded",
		zap.String(constvars.LoggingRequestIDKey, requestID),
	)
	utils.BuildSuccessResponse(w, constvars.StatusOK, constvars.LogoutSuccessMessage, nil)
}

// Me returns the profile of the session owner.
func (ctrl *AuthController) Me(w http.ResponseWriter, r *http.Request) {
	requestID := utils.GetRequestID(r.Context())

	session, err := utils.SessionFromContext(r.Context())
	if err != nil {
		utils.BuildErrorResponse(ctrl.Log, w, err)
		return
	}

	ctx, cancel := context.WithTimeout(r.Context(), requestTimeout(ctrl.InternalConfig))
	defer cancel()

	response, err := ctrl.UserUsecase.GetProfile(ctx, session)
	if err != nil {
		handleUsecaseError(ctrl.Log, w, "AuthController.Me", requestID, err)
		return
	}

	utils.BuildSuccessResponse(w, constvars.StatusOK, constvars.GetProfileSuccessMessage, response)
}
