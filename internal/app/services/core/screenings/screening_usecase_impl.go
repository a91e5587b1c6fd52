package screenings

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

	"go.uber.org/zap"
)

type screeningUsecase struct {
	AssessmentRepository contracts.AssessmentRepository
	NotificationUsecase  contracts.NotificationUsecase
	ScoringEngine        contracts.ScoringEngine
	Log                  *zap.Logger
}

var (
	screeningUsecaseInstance contracts.ScreeningUsecase
	onceScreeningUsecase     sync.Once
)

func NewScreeningUsecase(
	assessmentMongoRepository contracts.AssessmentRepository,
	notificationUsecase contracts.NotificationUsecase,
	scoringEngine contracts.ScoringEngine,
	logger *zap.Logger,
) contracts.ScreeningUsecase {
	onceScreeningUsecase.Do(func() {
		screeningUsecaseInstance = &screeningUsecase{
			AssessmentRepository: assessmentMongoRepository,
			NotificationUsecase:  notificationUsecase,
			ScoringEngine:        scoringEngine,
			Log:                  logger,
		}
	})
	return screeningUsecaseInstance
}

func (uc *screeningUsecase) definition(assessmentType string) (scoring.Definition, error) {
	def, ok := uc.ScoringEngine.Definition(assessmentType)
	if !ok {
		return scoring.Definition{}, exceptions.ErrUnknownAssessmentType(nil)
	}
	return def, nil
}

func (uc *screeningUsecase) GetQuestionnaire(ctx context.Context, assessmentType string) (*responses.Questionnaire, error) {
	requestID, _ := ctx.Value(constvars.CONTEXT_REQUEST_ID_KEY).(string)
	uc.Log.Info("screeningUsecase.GetQuestionnaire called",
		zap.String(constvars.LoggingRequestIDKey, requestID),
		zap.String(constvars.LoggingAssessmentTypeKey, assessmentType),
	)

	def, err := uc.definition(assessmentType)
	if err != nil {
		return nil, err
	}
	return buildQuestionnaire(def), nil
}

// Submit scores the answers on the server and stores a completed record.
// When the request names an in progress record it is completed in place.
func (uc *screeningUsecase) Submit(ctx context.Context, session *models.Session, request *requests.SubmitScreening) (*responses.Assessment, error) {
	requestID, _ := ctx.Value(constvars.CONTEXT_REQUEST_ID_KEY).(string)
	uc.Log.Info("screeningUsecase.Submit called",
		zap.String(constvars.LoggingRequestIDKey, requestID),
		zap.String(constvars.LoggingAssessmentTypeKey, request.AssessmentType),
		zap.String(constvars.LoggingUserIDKey, session.UserID),
	)

	if _, err := uc.definition(request.AssessmentType); err != nil {
		return nil, err
	}

	var assessment *models.Assessment
	if request.AssessmentID != "" {
		existing, err := uc.findOpenAssessment(ctx, session, request)
		if err != nil {
			return nil, err
		}
		assessment = existing
	}

	answers, err := toScoringAnswers(request.Answers)
	if err != nil {
		uc.Log.Warn("screeningUsecase.Submit rejected a non integer answer",
			zap.String(constvars.LoggingRequestIDKey, requestID),
			zap.Error(err),
		)
		return nil, translateScoringError(err)
	}

	result, err := uc.ScoringEngine.Score(request.AssessmentType, answers)
	if err != nil {
		uc.Log.Warn("screeningUsecase.Submit scoring rejected the answers",
			zap.String(constvars.LoggingRequestIDKey, requestID),
			zap.Error(err),
		)
		return nil, translateScoringError(err)
	}

	if assessment == nil {
		assessment = &models.Assessment{
			UserID:    session.UserID,
			StartedAt: result.CompletedAt(),
		}
		assessment.SetCreatedAtUpdatedAt()
		applyResult(assessment, result)

		assessment.ID, err = uc.AssessmentRepository.CreateAssessment(ctx, assessment)
		if err != nil {
			uc.Log.Error("screeningUsecase.Submit error creating assessment",
				zap.String(constvars.LoggingRequestIDKey, requestID),
				zap.Error(err),
			)
			return nil, err
		}
	} else {
		applyResult(assessment, result)
		assessment.SetUpdatedAt()

		err = uc.AssessmentRepository.UpdateAssessment(ctx, assessment)
		if err != nil {
			uc.Log.Error("screeningUsecase.Submit error completing assessment",
				zap.String(constvars.LoggingRequestIDKey, requestID),
				zap.String(constvars.LoggingAssessmentIDKey, assessment.ID),
				zap.Error(err),
			)
			return nil, err
		}
	}

	utils.LogBusinessEvent(uc.Log, "assessment_completed", requestID,
		zap.String(constvars.LoggingAssessmentIDKey, assessment.ID),
		zap.String(constvars.LoggingAssessmentTypeKey, assessment.AssessmentType),
		zap.Int(constvars.LoggingScoreKey, *assessment.Score),
		zap.String(constvars.LoggingSeverityKey, assessment.Severity),
	)

	err = uc.NotificationUsecase.NotifyResultReady(ctx, assessment)
	if err != nil {
		uc.Log.Warn("screeningUsecase.Submit error sending result notification",
			zap.String(constvars.LoggingRequestIDKey, requestID),
			zap.String(constvars.LoggingAssessmentIDKey, assessment.ID),
			zap.Error(err),
		)
	}

	response := utils.BuildAssessmentResponse(assessment)
	uc.Log.Info("screeningUsecase.Submit succeeded",
		zap.String(constvars.LoggingRequestIDKey, requestID),
		zap.String(constvars.LoggingAssessmentIDKey, assessment.ID),
	)
	return &response, nil
}

func (uc *screeningUsecase) findOpenAssessment(ctx context.Context, session *models.Session, request *requests.SubmitScreening) (*models.Assessment, error) {
	assessment, err := uc.AssessmentRepository.FindByID(ctx, request.AssessmentID)
	if err != nil {
		return nil, err
	}
	if assessment == nil {
		return nil, exceptions.ErrAssessmentNotExist(nil)
	}
	if assessment.UserID != session.UserID {
		return nil, exceptions.ErrNotResourceOwner(nil)
	}
	if assessment.AssessmentType != request.AssessmentType {
		return nil, exceptions.ErrAssessmentTypeMismatch(nil, assessment.ID, assessment.AssessmentType, request.AssessmentType)
	}
	if assessment.IsCompleted() {
		return nil, exceptions.ErrAssessmentAlreadyCompleted(nil)
	}
	return assessment, nil
}

func (uc *screeningUsecase) FindSubmissionsByUserID(ctx context.Context, session *models.Session, assessmentType, userID string) ([]responses.Assessment, error) {
	requestID, _ := ctx.Value(constvars.CONTEXT_REQUEST_ID_KEY).(string)
	uc.Log.Info("screeningUsecase.FindSubmissionsByUserID called",
		zap.String(constvars.LoggingRequestIDKey, requestID),
		zap.String(constvars.LoggingAssessmentTypeKey, assessmentType),
		zap.String(constvars.LoggingUserIDKey, userID),
	)

	if _, err := uc.definition(assessmentType); err != nil {
		return nil, err
	}
	if !session.CanAccess(userID) {
		return nil, exceptions.ErrNotResourceOwner(nil)
	}

	assessments, err := uc.AssessmentRepository.FindAll(ctx, models.AssessmentFilter{
		UserID:         userID,
		AssessmentType: assessmentType,
	})
	if err != nil {
		return nil, err
	}

	uc.Log.Info("screeningUsecase.FindSubmissionsByUserID succeeded",
		zap.String(constvars.LoggingRequestIDKey, requestID),
		zap.Int(constvars.LoggingCountKey, len(assessments)),
	)
	return utils.BuildAssessmentsResponse(assessments), nil
}

func (uc *screeningUsecase) FindSubmissionByID(ctx context.Context, session *models.Session, assessmentType, assessmentID string) (*responses.Assessment, error) {
	requestID, _ := ctx.Value(constvars.CONTEXT_REQUEST_ID_KEY).(string)
	uc.Log.Info("screeningUsecase.FindSubmissionByID called",
		zap.String(constvars.LoggingRequestIDKey, requestID),
		zap.String(constvars.LoggingAssessmentIDKey, assessmentID),
	)

	if _, err := uc.definition(assessmentType); err != nil {
		return nil, err
	}

	assessment, err := uc.AssessmentRepository.FindByID(ctx, assessmentID)
	if err != nil {
		return nil, err
	}
	if assessment == nil {
		return nil, exceptions.ErrAssessmentNotExist(nil)
	}
	if assessment.AssessmentType != assessmentType {
		return nil, exceptions.ErrAssessmentTypeMismatch(nil, assessmentID, assessment.AssessmentType, assessmentType)
	}
	if !session.CanAccess(assessment.UserID) {
		return nil, exceptions.ErrNotResourceOwner(nil)
	}

	response := utils.BuildAssessmentResponse(assessment)
	return &response, nil
}

func (uc *screeningUsecase) FindAllResults(ctx context.Context, session *models.Session, assessmentType string) ([]responses.Assessment, error) {
	requestID, _ := ctx.Value(constvars.CONTEXT_REQUEST_ID_KEY).(string)
	uc.Log.Info("screeningUsecase.FindAllResults called",
		zap.String(constvars.LoggingRequestIDKey, requestID),
		zap.String(constvars.LoggingAssessmentTypeKey, assessmentType),
	)

	if _, err := uc.definition(assessmentType); err != nil {
		return nil, err
	}
	if !session.IsDoctor() {
		return nil, exceptions.ErrNotMatchRoleType(nil)
	}

	assessments, err := uc.AssessmentRepository.FindAll(ctx, models.AssessmentFilter{
		AssessmentType: assessmentType,
		Status:         constvars.AssessmentStatusCompleted,
	})
	if err != nil {
		return nil, err
	}

	uc.Log.Info("screeningUsecase.FindAllResults succeeded",
		zap.String(constvars.LoggingRequestIDKey, requestID),
		zap.Int(constvars.LoggingCountKey, len(assessments)),
	)
	return utils.BuildAssessmentsResponse(assessments), nil
}
