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

type PreAssessmentController struct {
	Log                  *zap.Logger
	PreAssessmentUsecase contracts.PreAssessmentUsecase
	InternalConfig       *config.InternalConfig
}

func NewPreAssessmentController(logger *zap.Logger, preAssessmentUsecase contracts.PreAssessmentUsecase, internalConfig *config.InternalConfig) *PreAssessmentController {
	return &PreAssessmentController{
		Log:                  logger,
		PreAssessmentUsecase: preAssessmentUsecase,
		InternalConfig:       internalConfig,
	}
}

func (ctrl *PreAssessmentController) GetQuestions(w http.ResponseWriter, r *http.Request) {
	requestID := utils.GetRequestID(r.Context())

	ctx, cancel := context.WithTimeout(r.Context(), requestTimeout(ctrl.InternalConfig))
	defer cancel()

	response, err := ctrl.PreAssessmentUsecase.GetQuestions(ctx)
	if err != nil {
		handleUsecaseError(ctrl.Log, w, "PreAssessmentController.GetQuestions", requestID, err)
		return
	}

	utils.BuildSuccessResponse(w, constvars.StatusOK, constvars.GetQuestionsSuccessMessage, response)
}

func (ctrl *PreAssessmentController) Submit(w http.ResponseWriter, r *http.Request) {
	requestID := utils.GetRequestID(r.Context())
	ctrl.Log.Info("PreAssessmentController.Submit called",
		zap.String(constvars.LoggingRequestIDKey, requestID),
	)

	session, err := utils.SessionFromContext(r.Context())
	if err != nil {
		utils.BuildErrorResponse(ctrl.Log, w, err)
		return
	}

	// Bind body to request
	request := new(requests.SubmitPreAssessment)
	err = json.NewDecoder(r.Body).Decode(request)
	if err != nil {
		ctrl.Log.Error("PreAssessmentController.Submit error parsing body",
			zap.String(constvars.LoggingRequestIDKey, requestID),
			zap.Error(err),
		)
		utils.BuildErrorResponse(ctrl.Log, w, exceptions.ErrCannotParseJSON(err))
		return
	}

	// Sanitize request
	utils.SanitizeSubmitPreAssessmentRequest(request)

	// Validate request
	err = utils.ValidateStruct(request)
	if err != nil {
		ctrl.Log.Error("PreAssessmentController.Submit validation error",
			zap.String(constvars.LoggingRequestIDKey, requestID),
			zap.Error(err),
		)
		utils.BuildErrorResponse(ctrl.Log, w, exceptions.ErrInputValidation(err))
		return
	}

	ctx, cancel := context.WithTimeout(r.Context(), requestTimeout(ctrl.InternalConfig))
	defer cancel()

	// Send it to be processed by usecase
	response, err := ctrl.PreAssessmentUsecase.Submit(ctx, session, request)
	if err != nil {
		handleUsecaseError(ctrl.Log, w, "PreAssessmentController.Submit", requestID, err)
		return
	}

	ctrl.Log.Info("PreAssessmentController.Submit succeeded",
		zap.String(constvars.LoggingRequestIDKey, requestID),
		zap.String(constvars.LoggingAssessmentIDKey, response.ID),
	)

	// Send response
	utils.BuildSuccessResponse(w, constvars.StatusCreated, constvars.SubmitAssessmentSuccessMessage, response)
}

func (ctrl *PreAssessmentController) FindSubmissionsByUserID(w http.ResponseWriter, r *http.Request) {
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

	response, err := ctrl.PreAssessmentUsecase.FindSubmissionsByUserID(ctx, session, userID)
	if err != nil {
		handleUsecaseError(ctrl.Log, w, "PreAssessmentController.FindSubmissionsByUserID", requestID, err)
		return
	}

	utils.BuildSuccessResponse(w, constvars.StatusOK, constvars.GetAssessmentsSuccessMessage, response)
}

func (ctrl *PreAssessmentController) FindSubmissionByID(w http.ResponseWriter, r *http.Request) {
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

	response, err := ctrl.PreAssessmentUsecase.FindSubmissionByID(ctx, session, assessmentID)
	if err != nil {
		handleUsecaseError(ctrl.Log, w, "PreAssessmentController.FindSubmissionByID", requestID, err)
		return
	}

	utils.BuildSuccessResponse(w, constvars.StatusOK, constvars.GetAssessmentSuccessMessage, response)
}
