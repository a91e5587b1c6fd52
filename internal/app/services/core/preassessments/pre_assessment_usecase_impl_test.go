package preassessments

import (
	"context"
	"mindcheck-service/internal/app/contracts/mocks"
	"mindcheck-service/internal/app/models"
	"mindcheck-service/internal/app/services/core/scoring"
	"mindcheck-service/internal/pkg/dto/requests"
	"mindcheck-service/internal/pkg/exceptions"
	"net/http"
	"sync"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
)

const (
	patientID    = "665f1c2b9e1d4a0012345678"
	otherID      = "665f1c2b9e1d4a0087654321"
	assessmentID = "665f1c2b9e1d4a00aaaaaaaa"
)

var (
	patientSession = &models.Session{UserID: patientID, Role: "patient"}
	fixedNow       = time.Date(2024, 6, 1, 10, 0, 0, 0, time.UTC)
)

func newTestPreAssessmentUsecase() (*preAssessmentUsecase, *mocks.MockAssessmentRepository, *mocks.MockPreAssessmentQuestionRepository) {
	assessments := new(mocks.MockAssessmentRepository)
	questions := new(mocks.MockPreAssessmentQuestionRepository)
	return &preAssessmentUsecase{
		AssessmentRepository: assessments,
		QuestionRepository:   questions,
		ScoringEngine:        scoring.NewEngine(scoring.WithClock(func() time.Time { return fixedNow })),
		Log:                  zap.NewNop(),
	}, assessments, questions
}

func statusOf(t *testing.T, err error) int {
	t.Helper()
	var customErr *exceptions.CustomError
	require.ErrorAs(t, err, &customErr)
	return customErr.StatusCode
}

func intakeForm(consent string) *requests.SubmitPreAssessment {
	return &requests.SubmitPreAssessment{
		Consent:               consent,
		MentalHealthDiagnosis: "none",
		PastChallenges:        "work stress",
		CurrentTreatment:      "none",
		PreviousTherapy:       "no",
		Medications:           "none",
		PrimaryPhysician:      "Dr. Lee",
		Insurance:             "public",
	}
}

// slowQuestionRepository widens the gap between the empty read and the insert.
type slowQuestionRepository struct {
	mu        sync.Mutex
	questions []models.PreAssessmentQuestion
	inserts   int
}

func (r *slowQuestionRepository) FindAll(ctx context.Context) ([]models.PreAssessmentQuestion, error) {
	time.Sleep(10 * time.Millisecond)
	r.mu.Lock()
	defer r.mu.Unlock()
	return append([]models.PreAssessmentQuestion(nil), r.questions...), nil
}

func (r *slowQuestionRepository) CreateMany(ctx context.Context, questions []models.PreAssessmentQuestion) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.inserts++
	r.questions = append(r.questions, questions...)
	return nil
}

func TestPreAssessmentUsecase_GetQuestions(t *testing.T) {
	t.Run("concurrent first reads seed once", func(t *testing.T) {
		repository := &slowQuestionRepository{}
		uc := &preAssessmentUsecase{QuestionRepository: repository, Log: zap.NewNop()}
		defaults := len(models.DefaultPreAssessmentQuestions())

		const callers = 8
		counts := make([]int, callers)
		errs := make([]error, callers)
		var wg sync.WaitGroup
		for i := 0; i < callers; i++ {
			wg.Add(1)
			go func(i int) {
				defer wg.Done()
				result, err := uc.GetQuestions(context.Background())
				counts[i], errs[i] = len(result), err
			}(i)
		}
		wg.Wait()

		for i := 0; i < callers; i++ {
			require.NoError(t, errs[i])
			assert.Equal(t, defaults, counts[i])
		}
		assert.Equal(t, 1, repository.inserts)
		assert.Len(t, repository.questions, defaults)
	})

	t.Run("seeds defaults on empty collection", func(t *testing.T) {
		uc, _, questions := newTestPreAssessmentUsecase()
		questions.On("FindAll", mock.Anything).Return([]models.PreAssessmentQuestion{}, nil).Twice()
		questions.On("CreateMany", mock.Anything, mock.MatchedBy(func(q []models.PreAssessmentQuestion) bool {
			return len(q) == 4
		})).Return(nil)
		questions.On("FindAll", mock.Anything).Return(models.DefaultPreAssessmentQuestions(), nil).Once()

		result, err := uc.GetQuestions(context.Background())

		require.NoError(t, err)
		assert.Len(t, result, 4)
		assert.Equal(t, 1, result[0].Order)
		questions.AssertExpectations(t)
	})

	t.Run("existing questions are returned as is", func(t *testing.T) {
		uc, _, questions := newTestPreAssessmentUsecase()
		questions.On("FindAll", mock.Anything).Return([]models.PreAssessmentQuestion{{ID: "q1", Order: 1}}, nil)

		result, err := uc.GetQuestions(context.Background())

		require.NoError(t, err)
		assert.Len(t, result, 1)
		questions.AssertNotCalled(t, "CreateMany", mock.Anything, mock.Anything)
	})
}

func TestPreAssessmentUsecase_Submit(t *testing.T) {
	t.Run("consent yes stores the form", func(t *testing.T) {
		uc, assessments, _ := newTestPreAssessmentUsecase()
		assessments.On("CreateAssessment", mock.Anything, mock.MatchedBy(func(a *models.Assessment) bool {
			return a.AssessmentType == "preassessment" &&
				a.Status == "completed" &&
				a.Score == nil &&
				a.Responses != nil && a.Responses.PrimaryPhysician == "Dr. Lee" &&
				a.CompletedAt != nil && a.CompletedAt.Equal(fixedNow)
		})).Return(assessmentID, nil)

		result, err := uc.Submit(context.Background(), patientSession, intakeForm(" YES "))

		require.NoError(t, err)
		assert.Equal(t, assessmentID, result.ID)
		assert.Equal(t, "work stress", result.Responses["pastChallenges"])
	})

	t.Run("without consent nothing is stored", func(t *testing.T) {
		uc, assessments, _ := newTestPreAssessmentUsecase()

		_, err := uc.Submit(context.Background(), patientSession, intakeForm("no"))

		assert.Equal(t, http.StatusBadRequest, statusOf(t, err))
		assessments.AssertNotCalled(t, "CreateAssessment", mock.Anything, mock.Anything)
	})
}

func TestPreAssessmentUsecase_FindSubmissionByID(t *testing.T) {
	t.Run("scored records are not pre-assessments", func(t *testing.T) {
		uc, assessments, _ := newTestPreAssessmentUsecase()
		assessments.On("FindByID", mock.Anything, assessmentID).Return(&models.Assessment{
			ID: assessmentID, UserID: patientID, AssessmentType: "stress",
		}, nil)

		_, err := uc.FindSubmissionByID(context.Background(), patientSession, assessmentID)
		assert.Equal(t, http.StatusNotFound, statusOf(t, err))
	})

	t.Run("other patients are refused", func(t *testing.T) {
		uc, assessments, _ := newTestPreAssessmentUsecase()
		assessments.On("FindByID", mock.Anything, assessmentID).Return(&models.Assessment{
			ID: assessmentID, UserID: otherID, AssessmentType: "preassessment",
		}, nil)

		_, err := uc.FindSubmissionByID(context.Background(), patientSession, assessmentID)
		assert.Equal(t, http.StatusForbidden, statusOf(t, err))
	})
}

func TestPreAssessmentUsecase_FindSubmissionsByUserID(t *testing.T) {
	uc, assessments, _ := newTestPreAssessmentUsecase()
	assessments.On("FindAll", mock.Anything, models.AssessmentFilter{UserID: patientID, AssessmentType: "preassessment"}).
		Return([]models.Assessment{{ID: assessmentID, AssessmentType: "preassessment"}}, nil)

	result, err := uc.FindSubmissionsByUserID(context.Background(), patientSession, patientID)

	require.NoError(t, err)
	assert.Len(t, result, 1)
}
