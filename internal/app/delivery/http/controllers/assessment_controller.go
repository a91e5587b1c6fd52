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

type AssessmentController struct {
	Log               *zap.Logger
	AssessmentUsecase contracts.AssessmentUsecase
	InternalConfig    *config.InternalConfig
}

func NewAssessmentController(logger *zap.Logger, assessmentUsecase contracts.AssessmentUsecase, internalConfig *config.InternalConfig) *AssessmentController {
	return &AssessmentController{
		Log:               logger,
		AssessmentUsecase: assessmentUsecase,
		InternalConfig:    internalConfig,
	}
}

func (ctrl *AssessmentController) CreateAssessment(w http.ResponseWriter, r *http.Request) {
	requestID := utils.GetRequestID(r.Context())
	ctrl.Log.Info("AssessmentController.CreateAssessment called",
		zap.String(constvars.LoggingRequestIDKey, requestID),
	)

	session, err := utils.SessionFromContext(r.Context())
	if err != nil {
		utils.BuildErrorResponse(ctrl.Log, w, err)
		return
	}

	// Bind body to request
	request := new(requests.CreateAssessment)
	err = json.NewDecoder(r.Body).Decode(request)
	if err != nil {
		ctrl.Log.Error("AssessmentController.CreateAssessment error parsing body",
			zap.String(constvars.LoggingRequestIDKey, requestID),
			zap.Error(err),
		)
		utils.BuildErrorResponse(ctrl.Log, w, exceptions.ErrCannotParseJSON(err))
		return
	}

	// Validate request
	err = utils.ValidateStruct(request)
	if err != nil {
		ctrl.Log.Error("AssessmentController.CreateAssessment validation error",
			zap.String(constvars.LoggingRequestIDKey, requestID),
			zap.Error(err),
		)
		utils.BuildErrorResponse(ctrl.Log, w, exceptions.ErrInputValidation(err))
		return
	}

	ctx, cancel := context.WithTimeout(r.Context(), requestTimeout(ctrl.InternalConfig))
	defer cancel()

	// Send it to be processed by usecase
	response, err := ctrl.AssessmentUsecase.CreateAssessment(ctx, session, request)
	if err != nil {
		handleUsecaseError(ctrl.Log, w, "AssessmentController.CreateAssessment", requestID, err)
		return
	}

	ctrl.Log.Info("AssessmentController.CreateAssessment succeeded",
		zap.String(constvars.LoggingRequestIDKey, requestID),
		zap.String(constvars.LoggingAssessmentIDKey, response.ID),
	)

	// Send response
	utils.BuildSuccessResponse(w, constvars.StatusCreated, constvars.CreateAssessmentSuccessMessage, response)
}

func (ctrl *AssessmentController) FindAll(w http.ResponseWriter, r *http.Request) {
	requestID := utils.GetRequestID(r.Context())

	session, err := utils.SessionFromContext(r.Context())
	if err != nil {
		utils.BuildErrorResponse(ctrl.Log, w, err)
		return
	}

	ctx, cancel := context.WithTimeout(r.Context(), requestTimeout(ctrl.InternalConfig))
	defer cancel()

	response, err := ctrl.AssessmentUsecase.FindAll(ctx, session)
	if err != nil {
		handleUsecaseError(ctrl.Log, w, "AssessmentController.FindAll", requestID, err)
		return
	}

	utils.BuildSuccessResponse(w, constvars.StatusOK, constvars.GetAssessmentsSuccessMessage, response)
}

func (ctrl *AssessmentController) FindByID(w http.ResponseWriter, r *http.Request) {
	requestID := utils.GetRequestID(r.Context())

	session, err := utils.SessionFromContext(r.Context())
	if err != nil {
		utils.BuildErrorResponse(ctrl.Log, w, err)
		return
	}

	assessmentID := chi.URLParam(r, constvars.URLParamAssessmentID)
	if assessmentID == "" {
		utils.BuildErrorResponse(ctrl.Log, w, exceptions.ErrURLParamValidation(nil, constvars.URLParamAssessmentID))
		return
	}

	ctx, cancel := context.WithTimeout(r.Context(), requestTimeout(ctrl.InternalConfig))
	defer cancel()

	response, err := ctrl.AssessmentUsecase.FindByID(ctx, session, assessmentID)
	if err != nil {
		handleUsecaseError(ctrl.Log, w, "AssessmentController.FindByID", requestID, err)
		return
	}

	utils.BuildSuccessResponse(w, constvars.StatusOK, constvars.GetAssessmentSuccessMessage, response)
}

func (ctrl *AssessmentController) FindByUserID(w http.ResponseWriter, r *http.Request) {
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

	response, err := ctrl.AssessmentUsecase.FindByUserID(ctx, session, userID)
	if err != nil {
		handleUsecaseError(ctrl.Log, w, "AssessmentController.FindByUserID", requestID, err)
		return
	}

	utils.BuildSuccessResponse(w, constvars.StatusOK, constvars.GetAssessmentsSuccessMessage, response)
}

func (ctrl *AssessmentController) UpdateAssessment(w http.ResponseWriter, r *http.Request) {
	requestID := utils.GetRequestID(r.Context())
	ctrl.Log.Info("AssessmentController.UpdateAssessment called",
		zap.String(constvars.LoggingRequestIDKey, requestID),
	)

	session, err := utils.SessionFromContext(r.Context())
	if err != nil {
		utils.BuildErrorResponse(ctrl.Log, w, err)
		return
	}

	// Bind body to request
	request := new(requests.UpdateAssessment)
	err = json.NewDecoder(r.Body).Decode(request)
	if err != nil {
		ctrl.Log.Error("AssessmentController.UpdateAssessment error parsing body",
			zap.String(constvars.LoggingRequestIDKey, requestID),
			zap.Error(err),
		)
		utils.BuildErrorResponse(ctrl.Log, w, exceptions.ErrCannotParseJSON(err))
		return
	}
	request.AssessmentID = chi.URLParam(r, constvars.URLParamAssessmentID)

	// Validate request
	err = utils.ValidateStruct(request)
	if err != nil {
		ctrl.Log.Error("AssessmentController.UpdateAssessment validation error",
			zap.String(constvars.LoggingRequestIDKey, requestID),
			zap.Error(err),
		)
		utils.BuildErrorResponse(ctrl.Log, w, exceptions.ErrInputValidation(err))
		return
	}

	ctx, cancel := context.WithTimeout(r.Context(), requestTimeout(ctrl.InternalConfig))
	defer cancel()

	// Send it to be processed by usecase
	response, err := ctrl.AssessmentUsecase.UpdateAssessment(ctx, session, request)
	if err != nil {
		handleUsecaseError(ctrl.Log, w, "AssessmentController.UpdateAssessment", requestID, err)
		return
	}

	// Send response
	utils.BuildSuccessResponse(w, constvars.StatusOK, constvars.UpdateAssessmentSuccessMessage, response)
}

func (ctrl *AssessmentController) DeleteAssessment(w http.ResponseWriter, r *http.Request) {
	requestID := utils.GetRequestID(r.Context())

	session, err := utils.SessionFromContext(r.Context())
	if err != nil {
		utils.BuildErrorResponse(ctrl.Log, w, err)
		return
	}

	assessmentID := chi.URLParam(r, constvars.URLParamAssessmentID)
	if assessmentID == "" {
		utils.BuildErrorResponse(ctrl.Log, w, exceptions.ErrURLParamValidation(nil, constvars.URLParamAssessmentID))
		return
	}

	ctx, cancel := context.WithTimeout(r.Context(), requestTimeout(ctrl.InternalConfig))
	defer cancel()

	err = ctrl.AssessmentUsecase.DeleteAssessment(ctx, session, assessmentID)
	if err != nil {
		handleUsecaseError(ctrl.Log, w, "AssessmentController.DeleteAssessment", requestID, err)
		return
	}

	utils.BuildSuccessResponse(w, constvars.StatusOK, constvars.DeleteAssessmentSuccessMessage, nil)
}

func (ctrl *AssessmentController) GetStatus(w http.ResponseWriter, r *http.Request) {
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

	response, err := ctrl.AssessmentUsecase.GetStatus(ctx, session, userID)
	if err != nil {
		handleUsecaseError(ctrl.Log, w, "AssessmentController.GetStatus", requestID, err)
		return
	}

	utils.BuildSuccessResponse(w, constvars.StatusOK, constvars.GetAssessmentStatusSuccessMessage, response)
}
