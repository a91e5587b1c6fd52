package doctors

import (
	"context"
	"fmt"
	"mindcheck-service/internal/app/config"
	"mindcheck-service/internal/app/contracts"
	"mindcheck-service/internal/app/models"
	"mindcheck-service/internal/pkg/constvars"
	"mindcheck-service/internal/pkg/dto/responses"
	"mindcheck-service/internal/pkg/exceptions"
	"mindcheck-service/internal/pkg/utils"
	"sync"
	"time"

	"github.com/goccy/go-json"
	"go.uber.org/zap"
)

type doctorUsecase struct {
	UserRepository       contracts.UserRepository
	AssessmentRepository contracts.AssessmentRepository
	RedisRepository      contracts.RedisRepository
	Storage              contracts.Storage
	Summarizer           contracts.PatientSummarizer
	InternalConfig       *config.InternalConfig
	BucketName           string
	Log                  *zap.Logger
	now                  func() time.Time
}

var (
	doctorUsecaseInstance contracts.DoctorUsecase
	onceDoctorUsecase     sync.Once
)

func NewDoctorUsecase(
	userMongoRepository contracts.UserRepository,
	assessmentMongoRepository contracts.AssessmentRepository,
	redisRepository contracts.RedisRepository,
	storage contracts.Storage,
	summarizer contracts.PatientSummarizer,
	internalConfig *config.InternalConfig,
	bucketName string,
	logger *zap.Logger,
) contracts.DoctorUsecase {
	onceDoctorUsecase.Do(func() {
		doctorUsecaseInstance = &doctorUsecase{
			UserRepository:       userMongoRepository,
			AssessmentRepository: assessmentMongoRepository,
			RedisRepository:      redisRepository,
			Storage:              storage,
			Summarizer:           summarizer,
			InternalConfig:       internalConfig,
			BucketName:           bucketName,
			Log:                  logger,
			now:                  time.Now,
		}
	})
	return doctorUsecaseInstance
}

// FindPatients lists patients that completed at least one assessment.
func (uc *doctorUsecase) FindPatients(ctx context.Context, session *models.Session) ([]responses.PatientOverview, error) {
	requestID, _ := ctx.Value(constvars.CONTEXT_REQUEST_ID_KEY).(string)
	uc.Log.Info("doctorUsecase.FindPatients called",
		zap.String(constvars.LoggingRequestIDKey, requestID),
	)

	if !session.IsDoctor() {
		return nil, exceptions.ErrNotMatchRoleType(nil)
	}

	completed, err := uc.AssessmentRepository.FindAll(ctx, models.AssessmentFilter{Status: constvars.AssessmentStatusCompleted})
	if err != nil {
		return nil, err
	}
	grouped := groupByUser(completed)

	patients, err := uc.UserRepository.FindAll(ctx, constvars.RolePatient)
	if err != nil {
		return nil, err
	}

	listed := make([]int, 0, len(grouped))
	userIDs := make([]string, 0, len(grouped))
	for i := range patients {
		if _, ok := grouped[patients[i].ID]; ok {
			listed = append(listed, i)
			userIDs = append(userIDs, patients[i].ID)
		}
	}

	counts, err := uc.AssessmentRepository.CountByUserIDs(ctx, userIDs)
	if err != nil {
		return nil, err
	}

	result := make([]responses.PatientOverview, 0, len(listed))
	for _, i := range listed {
		patient := &patients[i]
		result = append(result, buildPatientOverview(patient, grouped[patient.ID], counts[patient.ID]))
	}

	uc.Log.Info("doctorUsecase.FindPatients succeeded",
		zap.String(constvars.LoggingRequestIDKey, requestID),
		zap.Int(constvars.LoggingCountKey, len(result)),
	)
	return result, nil
}

func (uc *doctorUsecase) FindPatientDetail(ctx context.Context, session *models.Session, patientID string) (*responses.PatientDetail, error) {
	requestID, _ := ctx.Value(constvars.CONTEXT_REQUEST_ID_KEY).(string)
	uc.Log.Info("doctorUsecase.FindPatientDetail called",
		zap.String(constvars.LoggingRequestIDKey, requestID),
		zap.String(constvars.LoggingPatientIDKey, patientID),
	)

	if !session.IsDoctor() {
		return nil, exceptions.ErrNotMatchRoleType(nil)
	}

	patient, completed, err := uc.findPatientHistory(ctx, patientID)
	if err != nil {
		return nil, err
	}
	return buildPatientDetail(patient, completed), nil
}

// GeneratePatientSummary never fails once the patient exists. Provider
// errors collapse into the fallback message, which is not cached.
func (uc *doctorUsecase) GeneratePatientSummary(ctx context.Context, session *models.Session, patientID string) (*responses.PatientSummary, error) {
	requestID, _ := ctx.Value(constvars.CONTEXT_REQUEST_ID_KEY).(string)
	uc.Log.Info("doctorUsecase.GeneratePatientSummary called",
		zap.String(constvars.LoggingRequestIDKey, requestID),
		zap.String(constvars.LoggingPatientIDKey, patientID),
	)

	if !session.IsDoctor() {
		return nil, exceptions.ErrNotMatchRoleType(nil)
	}

	patient, completed, err := uc.findPatientHistory(ctx, patientID)
	if err != nil {
		return nil, err
	}

	cacheKey := summaryCacheKey(patientID, completed)
	cached, err := uc.RedisRepository.Get(ctx, cacheKey)
	if err != nil {
		uc.Log.Warn("doctorUsecase.GeneratePatientSummary error reading summary cache",
			zap.String(constvars.LoggingRequestIDKey, requestID),
			zap.Error(err),
		)
	}
	if cached != "" {
		return &responses.PatientSummary{Summary: cached}, nil
	}

	summaryCtx, cancel := context.WithTimeout(ctx, uc.summaryTimeout())
	defer cancel()

	summary, err := uc.Summarizer.Summarize(summaryCtx, patient, completed)
	if err != nil || summary == "" {
		uc.Log.Error("doctorUsecase.GeneratePatientSummary error generating summary",
			zap.String(constvars.LoggingRequestIDKey, requestID),
			zap.String(constvars.LoggingPatientIDKey, patientID),
			zap.Error(err),
		)
		return &responses.PatientSummary{Summary: constvars.AISummaryFallbackMessage}, nil
	}

	err = uc.RedisRepository.Set(ctx, cacheKey, summary, uc.summaryCacheTTL())
	if err != nil {
		uc.Log.Warn("doctorUsecase.GeneratePatientSummary error caching summary",
			zap.String(constvars.LoggingRequestIDKey, requestID),
			zap.Error(err),
		)
	}

	uc.Log.Info("doctorUsecase.GeneratePatientSummary succeeded",
		zap.String(constvars.LoggingRequestIDKey, requestID),
		zap.String(constvars.LoggingPatientIDKey, patientID),
	)
	return &responses.PatientSummary{Summary: summary}, nil
}

func (uc *doctorUsecase) ExportPatientReport(ctx context.Context, session *models.Session, patientID string) (*responses.PatientReport, error) {
	requestID, _ := ctx.Value(constvars.CONTEXT_REQUEST_ID_KEY).(string)
	uc.Log.Info("doctorUsecase.ExportPatientReport called",
		zap.String(constvars.LoggingRequestIDKey, requestID),
		zap.String(constvars.LoggingPatientIDKey, patientID),
	)

	if !session.IsDoctor() {
		return nil, exceptions.ErrNotMatchRoleType(nil)
	}

	patient, completed, err := uc.findPatientHistory(ctx, patientID)
	if err != nil {
		return nil, err
	}

	content, err := json.Marshal(buildPatientDetail(patient, completed))
	if err != nil {
		return nil, exceptions.ErrCannotMarshalJSON(err)
	}

	limit := uc.InternalConfig.Minio.ReportUploadMaxSizeInKilobyte * 1024
	if limit > 0 && int64(len(content)) > limit {
		return nil, exceptions.ErrReportTooLarge(nil, int64(len(content)), limit)
	}

	now := uc.now()
	objectName := utils.GenerateReportObjectName(patientID, now)
	err = uc.Storage.UploadObject(ctx, uc.BucketName, objectName, constvars.MIMEApplicationJSON, content)
	if err != nil {
		uc.Log.Error("doctorUsecase.ExportPatientReport error uploading report",
			zap.String(constvars.LoggingRequestIDKey, requestID),
			zap.String(constvars.LoggingObjectNameKey, objectName),
			zap.Error(err),
		)
		return nil, err
	}

	expiry := time.Duration(uc.InternalConfig.Minio.PreSignedUrlExpiryTimeInMinutes) * time.Minute
	url, err := uc.Storage.GetObjectUrlWithExpiryTime(ctx, uc.BucketName, objectName, expiry)
	if err != nil {
		return nil, err
	}

	utils.LogBusinessEvent(uc.Log, "patient_report_exported", requestID,
		zap.String(constvars.LoggingPatientIDKey, patientID),
		zap.String(constvars.LoggingUserIDKey, session.UserID),
		zap.String(constvars.LoggingObjectNameKey, objectName),
	)

	return &responses.PatientReport{
		ObjectName: objectName,
		URL:        url,
		ExpiresAt:  now.Add(expiry).UTC(),
	}, nil
}

// findPatientHistory returns the patient and their completed assessments,
// newest first.
func (uc *doctorUsecase) findPatientHistory(ctx context.Context, patientID string) (*models.User, []models.Assessment, error) {
	patient, err := uc.UserRepository.FindByID(ctx, patientID)
	if err != nil {
		return nil, nil, err
	}
	if patient == nil || patient.Role != constvars.RolePatient {
		return nil, nil, exceptions.ErrPatientNotExist(nil)
	}

	completed, err := uc.AssessmentRepository.FindAll(ctx, models.AssessmentFilter{
		UserID: patientID,
		Status: constvars.AssessmentStatusCompleted,
	})
	if err != nil {
		return nil, nil, err
	}
	return patient, completed, nil
}

// summaryCacheKey changes whenever a new assessment is completed, so a
// cached summary never outlives the history it describes.
func summaryCacheKey(patientID string, completed []models.Assessment) string {
	var latest int64
	if len(completed) > 0 && completed[0].CompletedAt != nil {
		latest = completed[0].CompletedAt.Unix()
	}
	return fmt.Sprintf("%s%s:%d:%d", constvars.RedisAISummaryKeyPrefix, patientID, len(completed), latest)
}

func (uc *doctorUsecase) summaryTimeout() time.Duration {
	seconds := uc.InternalConfig.AISummary.RequestTimeoutInSec
	if seconds <= 0 {
		seconds = 30
	}
	return time.Duration(seconds) * time.Second
}

func (uc *doctorUsecase) summaryCacheTTL() time.Duration {
	return time.Duration(uc.InternalConfig.AISummary.CacheTTLInMinutes) * time.Minute
}
