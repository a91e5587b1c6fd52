package preassessments

import (
	"context"
	"errors"
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

type preAssessmentUsecase struct {
	AssessmentRepository contracts.AssessmentRepository
	QuestionRepository   contracts.PreAssessmentQuestionRepository
	ScoringEngine        contracts.ScoringEngine
	Log                  *zap.Logger

	// seedMu serializes seeding within this process. Replicas are kept apart
	// by the unique order index on the question collection.
	seedMu sync.Mutex
}

var (
	preAssessmentUsecaseInstance contracts.PreAssessmentUsecase
	oncePreAssessmentUsecase     sync.Once
)

func NewPreAssessmentUsecase(
	assessmentMongoRepository contracts.AssessmentRepository,
	questionMongoRepository contracts.PreAssessmentQuestionRepository,
	scoringEngine contracts.ScoringEngine,
	logger *zap.Logger,
) contracts.PreAssessmentUsecase {
	oncePreAssessmentUsecase.Do(func() {
		preAssessmentUsecaseInstance = &preAssessmentUsecase{
			AssessmentRepository: assessmentMongoRepository,
			QuestionRepository:   questionMongoRepository,
			ScoringEngine:        scoringEngine,
			Log:                  logger,
		}
	})
	return preAssessmentUsecaseInstance
}

// GetQuestions lists the intake questions, seeding the defaults the first
// time the collection is read empty.
func (uc *preAssessmentUsecase) GetQuestions(ctx context.Context) ([]responses.PreAssessmentQuestion, error) {
	requestID, _ := ctx.Value(constvars.CONTEXT_REQUEST_ID_KEY).(string)
	uc.Log.Info("preAssessmentUsecase.GetQuestions called",
		zap.String(constvars.LoggingRequestIDKey, requestID),
	)

	questions, err := uc.QuestionRepository.FindAll(ctx)
	if err != nil {
		return nil, err
	}

	if len(questions) == 0 {
		questions, err = uc.seedDefaultQuestions(ctx, requestID)
		if err != nil {
			return nil, err
		}
	}

	uc.Log.Info("preAssessmentUsecase.GetQuestions succeeded",
		zap.String(constvars.LoggingRequestIDKey, requestID),
		zap.Int(constvars.LoggingCountKey, len(questions)),
	)
	return utils.BuildPreAssessmentQuestionsResponse(questions), nil
}

// seedDefaultQuestions stores the default questions unless another caller
// already did, then returns what is stored.
func (uc *preAssessmentUsecase) seedDefaultQuestions(ctx context.Context, requestID string) ([]models.PreAssessmentQuestion, error) {
	uc.seedMu.Lock()
	defer uc.seedMu.Unlock()

	questions, err := uc.QuestionRepository.FindAll(ctx)
	if err != nil || len(questions) > 0 {
		return questions, err
	}

	uc.Log.Info("preAssessmentUsecase.GetQuestions seeding default questions",
		zap.String(constvars.LoggingRequestIDKey, requestID),
	)
	err = uc.QuestionRepository.CreateMany(ctx, models.DefaultPreAssessmentQuestions())
	if err != nil {
		return nil, err
	}
	return uc.QuestionRepository.FindAll(ctx)
}

func (uc *preAssessmentUsecase) Submit(ctx context.Context, session *models.Session, request *requests.SubmitPreAssessment) (*responses.Assessment, error) {
	requestID, _ := ctx.Value(constvars.CONTEXT_REQUEST_ID_KEY).(string)
	uc.Log.Info("preAssessmentUsecase.Submit called",
		zap.String(constvars.LoggingRequestIDKey, requestID),
		zap.String(constvars.LoggingUserIDKey, session.UserID),
	)

	result, err := uc.ScoringEngine.ComposePreAssessment(scoring.PreAssessmentForm{
		Consent:               request.Consent,
		MentalHealthDiagnosis: request.MentalHealthDiagnosis,
		PastChallenges:        request.PastChallenges,
		CurrentTreatment:      request.CurrentTreatment,
		PreviousTherapy:       request.PreviousTherapy,
		Medications:           request.Medications,
		PrimaryPhysician:      request.PrimaryPhysician,
		Insurance:             request.Insurance,
	})
	if err != nil {
		if errors.Is(err, scoring.ErrConsentRequired) {
			return nil, exceptions.ErrConsentRequired(err)
		}
		return nil, err
	}

	completedAt := result.CompletedAt()
	form := result.Responses
	assessment := &models.Assessment{
		UserID:         session.UserID,
		AssessmentType: scoring.TypePreAssessment,
		Status:         constvars.AssessmentStatusCompleted,
		Responses: &models.PreAssessmentResponses{
			Consent:               form.Consent,
			MentalHealthDiagnosis: form.MentalHealthDiagnosis,
			PastChallenges:        form.PastChallenges,
			CurrentTreatment:      form.CurrentTreatment,
			PreviousTherapy:       form.PreviousTherapy,
			Medications:           form.Medications,
			PrimaryPhysician:      form.PrimaryPhysician,
			Insurance:             form.Insurance,
		},
		StartedAt:   completedAt,
		CompletedAt: &completedAt,
	}
	assessment.SetCreatedAtUpdatedAt()

	assessment.ID, err = uc.AssessmentRepository.CreateAssessment(ctx, assessment)
	if err != nil {
		uc.Log.Error("preAssessmentUsecase.Submit error creating assessment",
			zap.String(constvars.LoggingRequestIDKey, requestID),
			zap.Error(err),
		)
		return nil, err
	}

	utils.LogBusinessEvent(uc.Log, "preassessment_completed", requestID,
		zap.String(constvars.LoggingAssessmentIDKey, assessment.ID),
		zap.String(constvars.LoggingUserIDKey, session.UserID),
	)

	response := utils.BuildAssessmentResponse(assessment)
	return &response, nil
}

func (uc *preAssessmentUsecase) FindSubmissionsByUserID(ctx context.Context, session *models.Session, userID string) ([]responses.Assessment, error) {
	requestID, _ := ctx.Value(constvars.CONTEXT_REQUEST_ID_KEY).(string)
	uc.Log.Info("preAssessmentUsecase.FindSubmissionsByUserID called",
		zap.String(constvars.LoggingRequestIDKey, requestID),
		zap.String(constvars.LoggingUserIDKey, userID),
	)

	if !session.CanAccess(userID) {
		return nil, exceptions.ErrNotResourceOwner(nil)
	}

	assessments, err := uc.AssessmentRepository.FindAll(ctx, models.AssessmentFilter{
		UserID:         userID,
		AssessmentType: scoring.TypePreAssessment,
	})
	if err != nil {
		return nil, err
	}
	return utils.BuildAssessmentsResponse(assessments), nil
}

func (uc *preAssessmentUsecase) FindSubmissionByID(ctx context.Context, session *models.Session, assessmentID string) (*responses.Assessment, error) {
	requestID, _ := ctx.Value(constvars.CONTEXT_REQUEST_ID_KEY).(string)
	uc.Log.Info("preAssessmentUsecase.FindSubmissionByID called",
		zap.String(constvars.LoggingRequestIDKey, requestID),
		zap.String(constvars.LoggingAssessmentIDKey, assessmentID),
	)

	assessment, err := uc.AssessmentRepository.FindByID(ctx, assessmentID)
	if err != nil {
		return nil, err
	}
	if assessment == nil {
		return nil, exceptions.ErrAssessmentNotExist(nil)
	}
	if assessment.AssessmentType != scoring.TypePreAssessment {
		return nil, exceptions.ErrAssessmentTypeMismatch(nil, assessmentID, assessment.AssessmentType, scoring.TypePreAssessment)
	}
	if !session.CanAccess(assessment.UserID) {
		return nil, exceptions.ErrNotResourceOwner(nil)
	}

	response := utils.BuildAssessmentResponse(assessment)
	return &response, nil
}
