package assessments

import (
	"context"
	"mindcheck-service/internal/app/contracts"
	"mindcheck-service/internal/app/models"
	"mindcheck-service/internal/app/services/core/scoring"
	"mindcheck-service/internal/pkg/constvars"
	"mindcheck-service/internal/pkg/dto/requests"
	"mindcheck-service/internal/pkg/dto/responses"
	"mindcheck-service/internal/pkg/exceptions"
	"mindcheck-service/internal/pkg/utils"
	"sync"
	"time"

	"go.uber.org/zap"
)

// statusKeys maps each assessment type to its slot in the status map.
var statusKeys = map[string]string{
	scoring.TypePreAssessment: constvars.AssessmentStatusKeyPre,
	scoring.TypeStress:        constvars.AssessmentStatusKeyStress,
	scoring.TypeAnxiety:       constvars.AssessmentStatusKeyAnxiety,
	scoring.TypePTSD:          constvars.AssessmentStatusKeyPTSD,
}

type assessmentUsecase struct {
	AssessmentRepository contracts.AssessmentRepository
	Log                  *zap.Logger
	now                  func() time.Time
}

var (
	assessmentUsecaseInstance contracts.AssessmentUsecase
	onceAssessmentUsecase     sync.Once
)

func NewAssessmentUsecase(
	assessmentMongoRepository contracts.AssessmentRepository,
	logger *zap.Logger,
) contracts.AssessmentUsecase {
	onceAssessmentUsecase.Do(func() {
		assessmentUsecaseInstance = &assessmentUsecase{
			AssessmentRepository: assessmentMongoRepository,
			Log:                  logger,
			now:                  time.Now,
		}
	})
	return assessmentUsecaseInstance
}

func (uc *assessmentUsecase) CreateAssessment(ctx context.Context, session *models.Session, request *requests.CreateAssessment) (*responses.Assessment, error) {
	requestID, _ := ctx.Value(constvars.CONTEXT_REQUEST_ID_KEY).(string)
	uc.Log.Info("assessmentUsecase.CreateAssessment called",
		zap.String(constvars.LoggingRequestIDKey, requestID),
		zap.String(constvars.LoggingAssessmentTypeKey, request.AssessmentType),
	)

	if !scoring.IsKnown(request.AssessmentType) {
		return nil, exceptions.ErrUnknownAssessmentType(nil)
	}

	assessment := &models.Assessment{
		UserID:         session.UserID,
		AssessmentType: request.AssessmentType,
		Status:         constvars.AssessmentStatusInProgress,
		StartedAt:      uc.now().UTC(),
	}
	if def, ok := scoring.Lookup(request.AssessmentType); ok {
		assessment.Instrument = def.Instrument
		assessment.MaxScore = def.MaxScore
	}
	assessment.SetCreatedAtUpdatedAt()

	assessmentID, err := uc.AssessmentRepository.CreateAssessment(ctx, assessment)
	if err != nil {
		uc.Log.Error("assessmentUsecase.CreateAssessment error creating assessment",
			zap.String(constvars.LoggingRequestIDKey, requestID),
			zap.Error(err),
		)
		return nil, err
	}
	assessment.ID = assessmentID

	response := utils.BuildAssessmentResponse(assessment)
	uc.Log.Info("assessmentUsecase.CreateAssessment succeeded",
		zap.String(constvars.LoggingRequestIDKey, requestID),
		zap.String(constvars.LoggingAssessmentIDKey, assessmentID),
	)
	return &response, nil
}

func (uc *assessmentUsecase) FindAll(ctx context.Context, session *models.Session) ([]responses.Assessment, error) {
	requestID, _ := ctx.Value(constvars.CONTEXT_REQUEST_ID_KEY).(string)
	uc.Log.Info("assessmentUsecase.FindAll called",
		zap.String(constvars.LoggingRequestIDKey, requestID),
	)

	if !session.IsDoctor() {
		return nil, exceptions.ErrNotMatchRoleType(nil)
	}

	assessments, err := uc.AssessmentRepository.FindAll(ctx, models.AssessmentFilter{})
	if err != nil {
		return nil, err
	}

	uc.Log.Info("assessmentUsecase.FindAll succeeded",
		zap.String(constvars.LoggingRequestIDKey, requestID),
		zap.Int(constvars.LoggingCountKey, len(assessments)),
	)
	return utils.BuildAssessmentsResponse(assessments), nil
}

func (uc *assessmentUsecase) FindByID(ctx context.Context, session *models.Session, assessmentID string) (*responses.Assessment, error) {
	requestID, _ := ctx.Value(constvars.CONTEXT_REQUEST_ID_KEY).(string)
	uc.Log.Info("assessmentUsecase.FindByID called",
		zap.String(constvars.LoggingRequestIDKey, requestID),
		zap.String(constvars.LoggingAssessmentIDKey, assessmentID),
	)

	assessment, err := uc.findAccessible(ctx, session, assessmentID)
	if err != nil {
		return nil, err
	}

	response := utils.BuildAssessmentResponse(assessment)
	return &response, nil
}

func (uc *assessmentUsecase) FindByUserID(ctx context.Context, session *models.Session, userID string) ([]responses.Assessment, error) {
	requestID, _ := ctx.Value(constvars.CONTEXT_REQUEST_ID_KEY).(string)
	uc.Log.Info("assessmentUsecase.FindByUserID called",
		zap.String(constvars.LoggingRequestIDKey, requestID),
		zap.String(constvars.LoggingUserIDKey, userID),
	)

	if !session.CanAccess(userID) {
		return nil, exceptions.ErrNotResourceOwner(nil)
	}

	assessments, err := uc.AssessmentRepository.FindAll(ctx, models.AssessmentFilter{UserID: userID})
	if err != nil {
		return nil, err
	}

	uc.Log.Info("assessmentUsecase.FindByUserID succeeded",
		zap.String(constvars.LoggingRequestIDKey, requestID),
		zap.Int(constvars.LoggingCountKey, len(assessments)),
	)
	return utils.BuildAssessmentsResponse(assessments), nil
}

func (uc *assessmentUsecase) UpdateAssessment(ctx context.Context, session *models.Session, request *requests.UpdateAssessment) (*responses.Assessment, error) {
	requestID, _ := ctx.Value(constvars.CONTEXT_REQUEST_ID_KEY).(string)
	uc.Log.Info("assessmentUsecase.UpdateAssessment called",
		zap.String(constvars.LoggingRequestIDKey, requestID),
		zap.String(constvars.LoggingAssessmentIDKey, request.AssessmentID),
	)

	assessment, err := uc.findAccessible(ctx, session, request.AssessmentID)
	if err != nil {
		return nil, err
	}

	if assessment.IsCompleted() {
		uc.Log.Warn("assessmentUsecase.UpdateAssessment refused on completed record",
			zap.String(constvars.LoggingRequestIDKey, requestID),
			zap.String(constvars.LoggingAssessmentIDKey, assessment.ID),
		)
		return nil, exceptions.ErrAssessmentAlreadyCompleted(nil)
	}

	assessment.Status = request.Status
	assessment.SetUpdatedAt()

	err = uc.AssessmentRepository.UpdateAssessment(ctx, assessment)
	if err != nil {
		uc.Log.Error("assessmentUsecase.UpdateAssessment error updating assessment",
			zap.String(constvars.LoggingRequestIDKey, requestID),
			zap.Error(err),
		)
		return nil, err
	}

	response := utils.BuildAssessmentResponse(assessment)
	uc.Log.Info("assessmentUsecase.UpdateAssessment succeeded",
		zap.String(constvars.LoggingRequestIDKey, requestID),
		zap.String(constvars.LoggingAssessmentIDKey, assessment.ID),
	)
	return &response, nil
}

func (uc *assessmentUsecase) DeleteAssessment(ctx context.Context, session *models.Session, assessmentID string) error {
	requestID, _ := ctx.Value(constvars.CONTEXT_REQUEST_ID_KEY).(string)
	uc.Log.Info("assessmentUsecase.DeleteAssessment called",
		zap.String(constvars.LoggingRequestIDKey, requestID),
		zap.String(constvars.LoggingAssessmentIDKey, assessmentID),
	)

	if _, err := uc.findAccessible(ctx, session, assessmentID); err != nil {
		return err
	}

	err := uc.AssessmentRepository.DeleteByID(ctx, assessmentID)
	if err != nil {
		uc.Log.Error("assessmentUsecase.DeleteAssessment error deleting assessment",
			zap.String(constvars.LoggingRequestIDKey, requestID),
			zap.Error(err),
		)
		return err
	}

	uc.Log.Info("assessmentUsecase.DeleteAssessment succeeded",
		zap.String(constvars.LoggingRequestIDKey, requestID),
		zap.String(constvars.LoggingAssessmentIDKey, assessmentID),
	)
	return nil
}

// GetStatus reports, per assessment type, completed once any record is
// completed, otherwise the status of the newest record, otherwise pending.
func (uc *assessmentUsecase) GetStatus(ctx context.Context, session *models.Session, userID string) (responses.AssessmentStatus, error) {
	requestID, _ := ctx.Value(constvars.CONTEXT_REQUEST_ID_KEY).(string)
	uc.Log.Info("assessmentUsecase.GetStatus called",
		zap.String(constvars.LoggingRequestIDKey, requestID),
		zap.String(constvars.LoggingUserIDKey, userID),
	)

	if !session.CanAccess(userID) {
		return nil, exceptions.ErrNotResourceOwner(nil)
	}

	assessments, err := uc.AssessmentRepository.FindAll(ctx, models.AssessmentFilter{UserID: userID})
	if err != nil {
		return nil, err
	}

	status := responses.AssessmentStatus{
		constvars.AssessmentStatusKeyPre:     constvars.AssessmentStatusPending,
		constvars.AssessmentStatusKeyStress:  constvars.AssessmentStatusPending,
		constvars.AssessmentStatusKeyAnxiety: constvars.AssessmentStatusPending,
		constvars.AssessmentStatusKeyPTSD:    constvars.AssessmentStatusPending,
	}
	seen := make(map[string]bool, len(statusKeys))
	for _, assessment := range assessments {
		key, ok := statusKeys[assessment.AssessmentType]
		if !ok {
			continue
		}
		switch {
		case assessment.IsCompleted():
			status[key] = constvars.AssessmentStatusCompleted
			seen[key] = true
		case !seen[key]:
			status[key] = assessment.Status
			seen[key] = true
		}
	}

	uc.Log.Info("assessmentUsecase.GetStatus succeeded",
		zap.String(constvars.LoggingRequestIDKey, requestID),
	)
	return status, nil
}

func (uc *assessmentUsecase) findAccessible(ctx context.Context, session *models.Session, assessmentID string) (*models.Assessment, error) {
	assessment, err := uc.AssessmentRepository.FindByID(ctx, assessmentID)
	if err != nil {
		return nil, err
	}
	if assessment == nil {
		return nil, exceptions.ErrAssessmentNotExist(nil)
	}
	if !session.CanAccess(assessment.UserID) {
		return nil, exceptions.ErrNotResourceOwner(nil)
	}
	return assessment, nil
}
