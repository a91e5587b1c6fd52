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

// ScreeningController serves the stress, anxiety and ptsd screenings. The
// screening type always comes from the URL.
type ScreeningController struct {
	Log              *zap.Logger
	ScreeningUsecase contracts.ScreeningUsecase
	InternalConfig   *config.InternalConfig
}

func NewScreeningController(logger *zap.Logger, screeningUsecase contracts.ScreeningUsecase, internalConfig *config.InternalConfig) *ScreeningController {
	return &ScreeningController{
		Log:              logger,
		ScreeningUsecase: screeningUsecase,
		InternalConfig:   internalConfig,
	}
}

func (ctrl *ScreeningController) GetQuestionnaire(w http.ResponseWriter, r *http.Request) {
	requestID := utils.GetRequestID(r.Context())
	assessmentType := chi.URLParam(r, constvars.URLParamAssessmentType)

	ctx, cancel := context.WithTimeout(r.Context(), requestTimeout(ctrl.InternalConfig))
	defer cancel()

	response, err := ctrl.ScreeningUsecase.GetQuestionnaire(ctx, assessmentType)
	if err != nil {
		handleUsecaseError(ctrl.Log, w, "ScreeningController.GetQuestionnaire", requestID, err)
		return
	}

	utils.BuildSuccessResponse(w, constvars.StatusOK, constvars.GetQuestionsSuccessMessage, response)
}

func (ctrl *ScreeningController) Submit(w http.ResponseWriter, r *http.Request) {
	requestID := utils.GetRequestID(r.Context())
	ctrl.Log.Info("ScreeningController.Submit called",
		zap.String(constvars.LoggingRequestIDKey, requestID),
	)

	session, err := utils.SessionFromContext(r.Context())
	if err != nil {
		utils.BuildErrorResponse(ctrl.Log, w, err)
		return
	}

	// Bind body to request
	request := new(requests.SubmitScreening)
	err = json.NewDecoder(r.Body).Decode(request)
	if err != nil {
		ctrl.Log.Error("ScreeningController.Submit error parsing body",
			zap.String(constvars.LoggingRequestIDKey, requestID),
			zap.Error(err),
		)
		utils.BuildErrorResponse(ctrl.Log, w, exceptions.ErrCannotParseJSON(err))
		return
	}
	request.AssessmentType = chi.URLParam(r, constvars.URLParamAssessmentType)

	// Sanitize request
	utils.SanitizeSubmitScreeningRequest(request)

	// Validate request
	err = utils.ValidateStruct(request)
	if err != nil {
		ctrl.Log.Error("ScreeningController.Submit validation error",
			zap.String(constvars.LoggingRequestIDKey, requestID),
			zap.Error(err),
		)
		utils.BuildErrorResponse(ctrl.Log, w, exceptions.ErrInputValidation(err))
		return
	}

	ctx, cancel := context.WithTimeout(r.Context(), requestTimeout(ctrl.InternalConfig))
	defer cancel()

	// Send it to be processed by usecase
	response, err := ctrl.ScreeningUsecase.Submit(ctx, session, request)
	if err != nil {
		handleUsecaseError(ctrl.Log, w, "ScreeningController.Submit", requestID, err)
		return
	}

	ctrl.Log.Info("ScreeningController.Submit succeeded",
		zap.String(constvars.LoggingRequestIDKey, requestID),
		zap.String(constvars.LoggingAssessmentIDKey, response.ID),
		zap.String(constvars.LoggingAssessmentTypeKey, request.AssessmentType),
	)

	// Send response
	utils.BuildSuccessResponse(w, constvars.StatusCreated, constvars.SubmitAssessmentSuccessMessage, response)
}

func (ctrl *ScreeningController) FindSubmissionsByUserID(w http.ResponseWriter, r *http.Request) {
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

	response, err := ctrl.ScreeningUsecase.FindSubmissionsByUserID(ctx, session, chi.URLParam(r, constvars.URLParamAssessmentType), userID)
	if err != nil {
		handleUsecaseError(ctrl.Log, w, "ScreeningController.FindSubmissionsByUserID", requestID, err)
		return
	}

	utils.BuildSuccessResponse(w, constvars.StatusOK, constvars.GetAssessmentsSuccessMessage, response)
}

func (ctrl *ScreeningController) FindSubmissionByID(w http.ResponseWriter, r *http.Request) {
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

	response, err := ctrl.ScreeningUsecase.FindSubmissionByID(ctx, session, chi.URLParam(r, constvars.URLParamAssessmentType), assessmentID)
	if err != nil {
		handleUsecaseError(ctrl.Log, w, "ScreeningController.FindSubmissionByID", requestID, err)
		return
	}

	utils.BuildSuccessResponse(w, constvars.StatusOK, constvars.GetAssessmentSuccessMessage, response)
}

func (ctrl *ScreeningController) FindAllResults(w http.ResponseWriter, r *http.Request) {
	requestID := utils.GetRequestID(r.Context())

	session, err := utils.SessionFromContext(r.Context())
	if err != nil {
		utils.BuildErrorResponse(ctrl.Log, w, err)
		return
	}

	ctx, cancel := context.WithTimeout(r.Context(), requestTimeout(ctrl.InternalConfig))
	defer cancel()

	response, err := ctrl.ScreeningUsecase.FindAllResults(ctx, session, chi.URLParam(r, constvars.URLParamAssessmentType))
	if err != nil {
		handleUsecaseError(ctrl.Log, w, "ScreeningController.FindAllResults", requestID, err)
		return
	}

	utils.BuildSuccessResponse(w, constvars.StatusOK, constvars.GetAssessmentsSuccessMessage, response)
}
