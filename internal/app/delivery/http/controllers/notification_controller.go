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

	"github.com/go-chi/chi/v5"
	"github.com/goccy/go-json"
	"go.uber.org/zap"
)

type NotificationController struct {
	Log                 *zap.Logger
	NotificationUsecase contracts.NotificationUsecase
	InternalConfig      *config.InternalConfig
}

func NewNotificationController(logger *zap.Logger, notificationUsecase contracts.NotificationUsecase, internalConfig *config.InternalConfig) *NotificationController {
	return &NotificationController{
		Log:                 logger,
		NotificationUsecase: notificationUsecase,
		InternalConfig:      internalConfig,
	}
}

func (ctrl *NotificationController) CreateNotification(w http.ResponseWriter, r *http.Request) {
	requestID := utils.GetRequestID(r.Context())
	ctrl.Log.Info("NotificationController.CreateNotification called",
		zap.String(constvars.LoggingRequestIDKey, requestID),
	)

	session, err := utils.SessionFromContext(r.Context())
	if err != nil {
		utils.BuildErrorResponse(ctrl.Log, w, err)
		return
	}

	// Bind body to request
	request := new(requests.CreateNotification)
	err = json.NewDecoder(r.Body).Decode(request)
	if err != nil {
		ctrl.Log.Error("NotificationController.CreateNotification error parsing body",
			zap.String(constvars.LoggingRequestIDKey, requestID),
			zap.Error(err),
		)
		utils.BuildErrorResponse(ctrl.Log, w, exceptions.ErrCannotParseJSON(err))
		return
	}

	// Sanitize request
	utils.SanitizeCreateNotificationRequest(request)

	// Validate request
	err = utils.ValidateStruct(request)
	if err != nil {
		ctrl.Log.Error("NotificationController.CreateNotification validation error",
			zap.String(constvars.LoggingRequestIDKey, requestID),
			zap.Error(err),
		)
		utils.BuildErrorResponse(ctrl.Log, w, exceptions.ErrInputValidation(err))
		return
	}

	ctx, cancel := context.WithTimeout(r.Context(), requestTimeout(ctrl.InternalConfig))
	defer cancel()

	// Send it to be processed by usecase
	response, err := ctrl.NotificationUsecase.CreateNotification(ctx, session, request)
	if err != nil {
		handleUsecaseError(ctrl.Log, w, "NotificationController.CreateNotification", requestID, err)
		return
	}

	ctrl.Log.Info("NotificationController.CreateNotification succeeded",
		zap.String(constvars.LoggingRequestIDKey, requestID),
		zap.String(constvars.LoggingNotificationIDKey, response.ID),
	)

	// Send response
	utils.BuildSuccessResponse(w, constvars.StatusCreated, constvars.CreateNotificationSuccessMessage, response)
}

func (ctrl *NotificationController) FindAll(w http.ResponseWriter, r *http.Request) {
	requestID := utils.GetRequestID(r.Context())

	session, err := utils.SessionFromContext(r.Context())
	if err != nil {
		utils.BuildErrorResponse(ctrl.Log, w, err)
		return
	}

	ctx, cancel := context.WithTimeout(r.Context(), requestTimeout(ctrl.InternalConfig))
	defer cancel()

	response, err := ctrl.NotificationUsecase.FindAll(ctx, session)
	if err != nil {
		handleUsecaseError(ctrl.Log, w, "NotificationController.FindAll", requestID, err)
		return
	}

	utils.BuildSuccessResponse(w, constvars.StatusOK, constvars.GetNotificationsSuccessMessage, response)
}

func (ctrl *NotificationController) FindByID(w http.ResponseWriter, r *http.Request) {
	requestID := utils.GetRequestID(r.Context())

	session, err := utils.SessionFromContext(r.Context())
	if err != nil {
		utils.BuildErrorResponse(ctrl.Log, w, err)
		return
	}

	notificationID := chi.URLParam(r, constvars.URLParamNotificationID)
	if notificationID == "" {
		utils.BuildErrorResponse(ctrl.Log, w, exceptions.ErrURLParamValidation(nil, constvars.URLParamNotificationID))
		return
	}

	ctx, cancel := context.WithTimeout(r.Context(), requestTimeout(ctrl.InternalConfig))
	defer cancel()

	response, err := ctrl.NotificationUsecase.FindByID(ctx, session, notificationID)
	if err != nil {
		handleUsecaseError(ctrl.Log, w, "NotificationController.FindByID", requestID, err)
		return
	}

	utils.BuildSuccessResponse(w, constvars.StatusOK, constvars.GetNotificationSuccessMessage, response)
}

func (ctrl *NotificationController) FindByUserID(w http.ResponseWriter, r *http.Request) {
	ctrl.findByUserID(w, r, false)
}

func (ctrl *NotificationController) FindUnreadByUserID(w http.ResponseWriter, r *http.Request) {
	ctrl.findByUserID(w, r, true)
}

func (ctrl *NotificationController) findByUserID(w http.ResponseWriter, r *http.Request, unreadOnly bool) {
	requestID := utils.GetRequestID(r.Context())

	session, err := utils.SessionFromContext(r.Context())
	if err != nil {
		utils.BuildErrorResponse(ctrl.Log, w, err)
		return
	}

	userID := chi.URLParam(r, constvars.URLParamUserID)
	if userID == "" {
		utils.BuildErrorResponse(ctrl.Log, w, exceptions.ErrURLParamValidation(nil, constvars.URLParamUserID))
		return
	}

	ctx, cancel := context.WithTimeout(r.Context(), requestTimeout(ctrl.InternalConfig))
	defer cancel()

	response, err := ctrl.NotificationUsecase.FindByUserID(ctx, session, userID, unreadOnly)
	if err != nil {
		handleUsecaseError(ctrl.Log, w, "NotificationController.FindByUserID", requestID, err)
		return
	}

	utils.BuildSuccessResponse(w, constvars.StatusOK, constvars.GetNotificationsSuccessMessage, response)
}

func (ctrl *NotificationController) UpdateNotification(w http.ResponseWriter, r *http.Request) {
	requestID := utils.GetRequestID(r.Context())

	session, err := utils.SessionFromContext(r.Context())
	if err != nil {
		utils.BuildErrorResponse(ctrl.Log, w, err)
		return
	}

	// Bind body to request
	request := new(requests.UpdateNotification)
	err = json.NewDecoder(r.Body).Decode(request)
	if err != nil {
		utils.BuildErrorResponse(ctrl.Log, w, exceptions.ErrCannotParseJSON(err))
		return
	}
	request.NotificationID = chi.URLParam(r, constvars.URLParamNotificationID)

	// Validate request
	err = utils.ValidateStruct(request)
	if err != nil {
		utils.BuildErrorResponse(ctrl.Log, w, exceptions.ErrInputValidation(err))
		return
	}

	ctx, cancel := context.WithTimeout(r.Context(), requestTimeout(ctrl.InternalConfig))
	defer cancel()

	response, err := ctrl.NotificationUsecase.UpdateNotification(ctx, session, request)
	if err != nil {
		handleUsecaseError(ctrl.Log, w, "NotificationController.UpdateNotification", requestID, err)
		return
	}

	utils.BuildSuccessResponse(w, constvars.StatusOK, constvars.UpdateNotificationSuccessMessage, response)
}

func (ctrl *NotificationController) DeleteNotification(w http.ResponseWriter, r *http.Request) {
	requestID := utils.GetRequestID(r.Context())

	session, err := utils.SessionFromContext(r.Context())
	if err != nil {
		utils.BuildErrorResponse(ctrl.Log, w, err)
		return
	}

	notificationID := chi.URLParam(r, constvars.URLParamNotificationID)
	if notificationID == "" {
		utils.BuildErrorResponse(ctrl.Log, w, exceptions.ErrURLParamValidation(nil, constvars.URLParamNotificationID))
		return
	}

	ctx, cancel := context.WithTimeout(r.Context(), requestTimeout(ctrl.InternalConfig))
	defer cancel()

	err = ctrl.NotificationUsecase.DeleteNotification(ctx, session, notificationID)
	if err != nil {
		handleUsecaseError(ctrl.Log, w, "NotificationController.DeleteNotification", requestID, err)
		return
	}

	utils.BuildSuccessResponse(w, constvars.StatusOK, constvars.DeleteNotificationSuccessMessage, nil)
}
