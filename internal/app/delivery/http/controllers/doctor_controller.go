package controllers

import (
	"context"
	"mindcheck-service/internal/app/config"
	"mindcheck-service/internal/app/contracts"
	"mindcheck-service/internal/app/models"
	"mindcheck-service/internal/pkg/constvars"
	"mindcheck-service/internal/pkg/exceptions"
	"mindcheck-service/internal/pkg/utils"
	"net/http"
	"time"

	"github.com/go-chi/chi/v5"
	"go.uber.org/zap"
)

type DoctorController struct {
	Log            *zap.Logger
	DoctorUsecase  contracts.DoctorUsecase
	InternalConfig *config.InternalConfig
}

func NewDoctorController(logger *zap.Logger, doctorUsecase contracts.DoctorUsecase, internalConfig *config.InternalConfig) *DoctorController {
	return &DoctorController{
		Log:            logger,
		DoctorUsecase:  doctorUsecase,
		InternalConfig: internalConfig,
	}
}

func (ctrl *DoctorController) FindPatients(w http.ResponseWriter, r *http.Request) {
	requestID := utils.GetRequestID(r.Context())

	session, err := utils.SessionFromContext(r.Context())
	if err != nil {
		utils.BuildErrorResponse(ctrl.Log, w, err)
		return
	}

	ctx, cancel := context.WithTimeout(r.Context(), requestTimeout(ctrl.InternalConfig))
	defer cancel()

	response, err := ctrl.DoctorUsecase.FindPatients(ctx, session)
	if err != nil {
		handleUsecaseError(ctrl.Log, w, "DoctorController.FindPatients", requestID, err)
		return
	}

	utils.BuildSuccessResponse(w, constvars.StatusOK, constvars.GetPatientsSuccessMessage, response)
}

func (ctrl *DoctorController) FindPatientDetail(w http.ResponseWriter, r *http.Request) {
	requestID := utils.GetRequestID(r.Context())

	session, patientID, ok := ctrl.patientRequest(w, r)
	if !ok {
		return
	}

	ctx, cancel := context.WithTimeout(r.Context(), requestTimeout(ctrl.InternalConfig))
	defer cancel()

	response, err := ctrl.DoctorUsecase.FindPatientDetail(ctx, session, patientID)
	if err != nil {
		handleUsecaseError(ctrl.Log, w, "DoctorController.FindPatientDetail", requestID, err)
		return
	}

	utils.BuildSuccessResponse(w, constvars.StatusOK, constvars.GetPatientDetailSuccessMessage, response)
}

// GetPatientSummary gets a longer deadline than other handlers since it waits
// on the completion API.
func (ctrl *DoctorController) GetPatientSummary(w http.ResponseWriter, r *http.Request) {
	requestID := utils.GetRequestID(r.Context())
	ctrl.Log.Info("DoctorController.GetPatientSummary called",
		zap.String(constvars.LoggingRequestIDKey, requestID),
	)

	session, patientID, ok := ctrl.patientRequest(w, r)
	if !ok {
		return
	}

	timeout := requestTimeout(ctrl.InternalConfig)
	if ctrl.InternalConfig != nil {
		if aiTimeout := time.Duration(ctrl.InternalConfig.AISummary.RequestTimeoutInSec) * time.Second; aiTimeout > timeout {
			timeout = aiTimeout
		}
	}
	ctx, cancel := context.WithTimeout(r.Context(), timeout)
	defer cancel()

	response, err := ctrl.DoctorUsecase.GeneratePatientSummary(ctx, session, patientID)
	if err != nil {
		handleUsecaseError(ctrl.Log, w, "DoctorController.GetPatientSummary", requestID, err)
		return
	}

	ctrl.Log.Info("DoctorController.GetPatientSummary succeeded",
		zap.String(constvars.LoggingRequestIDKey, requestID),
		zap.String(constvars.LoggingPatientIDKey, patientID),
	)
	utils.BuildSuccessResponse(w, constvars.StatusOK, constvars.GetPatientSummarySuccessMessage, response)
}

func (ctrl *DoctorController) ExportPatientReport(w http.ResponseWriter, r *http.Request) {
	requestID := utils.GetRequestID(r.Context())
	ctrl.Log.Info("DoctorController.ExportPatientReport called",
		zap.String(constvars.LoggingRequestIDKey, requestID),
	)

	session, patientID, ok := ctrl.patientRequest(w, r)
	if !ok {
		return
	}

	ctx, cancel := context.WithTimeout(r.Context(), requestTimeout(ctrl.InternalConfig))
	defer cancel()

	response, err := ctrl.DoctorUsecase.ExportPatientReport(ctx, session, patientID)
	if err != nil {
		handleUsecaseError(ctrl.Log, w, "DoctorController.ExportPatientReport", requestID, err)
		return
	}

	ctrl.Log.Info("DoctorController.ExportPatientReport succeeded",
		zap.String(constvars.LoggingRequestIDKey, requestID),
		zap.String(constvars.LoggingPatientIDKey, patientID),
	)
	utils.BuildSuccessResponse(w, constvars.StatusOK, constvars.ExportPatientReportSuccessMsg, response)
}

func (ctrl *DoctorController) patientRequest(w http.ResponseWriter, r *http.Request) (session *models.Session, patientID string, ok bool) {
	session, err := utils.SessionFromContext(r.Context())
	if err != nil {
		utils.BuildErrorResponse(ctrl.Log, w, err)
		return nil, "", false
	}

	patientID = chi.URLParam(r, constvars.URLParamPatientID)
	if patientID == "" {
		utils.BuildErrorResponse(ctrl.Log, w, exceptions.ErrURLParamValidation(nil, constvars.URLParamPatientID))
		return nil, "", false
	}
	return session, patientID, true
}
