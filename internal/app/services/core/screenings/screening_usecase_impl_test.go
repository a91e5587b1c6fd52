package screenings

import (
	"context"
	"errors"
	"mindcheck-service/internal/app/contracts/mocks"
	"mindcheck-service/internal/app/models"
	"mindcheck-service/internal/app/services/core/scoring"
	"mindcheck-service/internal/pkg/dto/requests"
	"mindcheck-service/internal/pkg/exceptions"
	"net/http"
	"strconv"
	"testing"
	"time"

	"github.com/goccy/go-json"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
)

const (
	patientID    = "665f1c2b9e1d4a0012345678"
	doctorID     = "665f1c2b9e1d4a0087654321"
	assessmentID = "665f1c2b9e1d4a00aaaaaaaa"
)

var (
	patientSession = &models.Session{UserID: patientID, Role: "patient"}
	doctorSession  = &models.Session{UserID: doctorID, Role: "doctor"}
	fixedNow       = time.Date(2024, 6, 1, 10, 0, 0, 0, time.UTC)
)

type screeningFixture struct {
	usecase       *screeningUsecase
	repository    *mocks.MockAssessmentRepository
	notifications *mocks.MockNotificationUsecase
}

func newScreeningFixture() *screeningFixture {
	repository := new(mocks.MockAssessmentRepository)
	notifications := new(mocks.MockNotificationUsecase)
	return &screeningFixture{
		usecase: &screeningUsecase{
			AssessmentRepository: repository,
			NotificationUsecase:  notifications,
			ScoringEngine:        scoring.NewEngine(scoring.WithClock(func() time.Time { return fixedNow })),
			Log:                  zap.NewNop(),
		},
		repository:    repository,
		notifications: notifications,
	}
}

func statusOf(t *testing.T, err error) int {
	t.Helper()
	var customErr *exceptions.CustomError
	require.ErrorAs(t, err, &customErr)
	return customErr.StatusCode
}

func answersFor(t *testing.T, assessmentType string, values ...int) []requests.Answer {
	t.Helper()
	def, ok := scoring.Lookup(assessmentType)
	require.True(t, ok)
	answers := make([]requests.Answer, 0, len(def.Questions))
	for i, q := range def.Questions {
		answers = append(answers, requests.Answer{QuestionID: q.ID, Value: number(strconv.Itoa(values[i%len(values)]))})
	}
	return answers
}

func number(raw string) *json.Number {
	n := json.Number(raw)
	return &n
}

func TestScreeningUsecase_GetQuestionnaire(t *testing.T) {
	f := newScreeningFixture()

	questionnaire, err := f.usecase.GetQuestionnaire(context.Background(), "anxiety")
	require.NoError(t, err)
	assert.Equal(t, "GAD-7", questionnaire.Instrument)
	assert.Len(t, questionnaire.Questions, 7)
	assert.Equal(t, 1, questionnaire.Questions[0].Number)

	_, err = f.usecase.GetQuestionnaire(context.Background(), "preassessment")
	assert.Equal(t, http.StatusBadRequest, statusOf(t, err))
}

func TestScreeningUsecase_Submit(t *testing.T) {
	t.Run("stores a scored record and notifies", func(t *testing.T) {
		f := newScreeningFixture()
		f.repository.On("CreateAssessment", mock.Anything, mock.MatchedBy(func(a *models.Assessment) bool {
			return a.UserID == patientID &&
				a.Status == "completed" &&
				a.Score != nil && *a.Score == 9 &&
				a.Severity == "Mild depression" &&
				len(a.Questions) == 9 &&
				a.CompletedAt != nil && a.CompletedAt.Equal(fixedNow)
		})).Return(assessmentID, nil)
		f.notifications.On("NotifyResultReady", mock.Anything, mock.MatchedBy(func(a *models.Assessment) bool {
			return a.ID == assessmentID
		})).Return(nil)

		result, err := f.usecase.Submit(context.Background(), patientSession, &requests.SubmitScreening{
			AssessmentType: "stress",
			Answers:        answersFor(t, "stress", 1),
		})

		require.NoError(t, err)
		assert.Equal(t, assessmentID, result.ID)
		assert.Equal(t, 9, *result.Score)
		assert.Equal(t, "PHQ-9", result.Instrument)
		f.repository.AssertExpectations(t)
		f.notifications.AssertExpectations(t)
	})

	t.Run("ptsd carries threshold and criteria", func(t *testing.T) {
		f := newScreeningFixture()
		f.repository.On("CreateAssessment", mock.Anything, mock.Anything).Return(assessmentID, nil)
		f.notifications.On("NotifyResultReady", mock.Anything, mock.Anything).Return(nil)

		result, err := f.usecase.Submit(context.Background(), patientSession, &requests.SubmitScreening{
			AssessmentType: "ptsd",
			Answers:        answersFor(t, "ptsd", 2),
		})

		require.NoError(t, err)
		assert.Equal(t, 40, *result.Score)
		assert.Equal(t, "Suggests possible PTSD", result.ClinicalThreshold)
		require.NotNil(t, result.MeetsThreshold)
		assert.True(t, *result.MeetsThreshold)
		require.NotNil(t, result.Criteria)
		assert.True(t, result.Criteria.CriteriaB)
		assert.True(t, result.Criteria.CriteriaE)
	})

	t.Run("completes an open record in place", func(t *testing.T) {
		f := newScreeningFixture()
		started := fixedNow.Add(-time.Hour)
		f.repository.On("FindByID", mock.Anything, assessmentID).Return(&models.Assessment{
			ID: assessmentID, UserID: patientID, AssessmentType: "anxiety", Status: "inprogress", StartedAt: started,
		}, nil)
		f.repository.On("UpdateAssessment", mock.Anything, mock.MatchedBy(func(a *models.Assessment) bool {
			return a.ID == assessmentID && a.Status == "completed" && a.StartedAt.Equal(started)
		})).Return(nil)
		f.notifications.On("NotifyResultReady", mock.Anything, mock.Anything).Return(nil)

		result, err := f.usecase.Submit(context.Background(), patientSession, &requests.SubmitScreening{
			AssessmentType: "anxiety",
			AssessmentID:   assessmentID,
			Answers:        answersFor(t, "anxiety", 3),
		})

		require.NoError(t, err)
		assert.Equal(t, "Severe anxiety", result.Severity)
		f.repository.AssertNotCalled(t, "CreateAssessment", mock.Anything, mock.Anything)
	})

	t.Run("completed records cannot be resubmitted", func(t *testing.T) {
		f := newScreeningFixture()
		f.repository.On("FindByID", mock.Anything, assessmentID).Return(&models.Assessment{
			ID: assessmentID, UserID: patientID, AssessmentType: "anxiety", Status: "completed",
		}, nil)

		_, err := f.usecase.Submit(context.Background(), patientSession, &requests.SubmitScreening{
			AssessmentType: "anxiety",
			AssessmentID:   assessmentID,
			Answers:        answersFor(t, "anxiety", 0),
		})
		assert.Equal(t, http.StatusConflict, statusOf(t, err))
	})

	t.Run("record of another type is not found", func(t *testing.T) {
		f := newScreeningFixture()
		f.repository.On("FindByID", mock.Anything, assessmentID).Return(&models.Assessment{
			ID: assessmentID, UserID: patientID, AssessmentType: "stress", Status: "inprogress",
		}, nil)

		_, err := f.usecase.Submit(context.Background(), patientSession, &requests.SubmitScreening{
			AssessmentType: "anxiety",
			AssessmentID:   assessmentID,
			Answers:        answersFor(t, "anxiety", 0),
		})
		assert.Equal(t, http.StatusNotFound, statusOf(t, err))
	})

	t.Run("missing answers are rejected before storage", func(t *testing.T) {
		f := newScreeningFixture()
		answers := answersFor(t, "stress", 1)

		_, err := f.usecase.Submit(context.Background(), patientSession, &requests.SubmitScreening{
			AssessmentType: "stress",
			Answers:        answers[:8],
		})

		assert.Equal(t, http.StatusBadRequest, statusOf(t, err))
		assert.True(t, errors.Is(err, scoring.ErrIncompleteSubmission))
		f.repository.AssertNotCalled(t, "CreateAssessment", mock.Anything, mock.Anything)
	})

	t.Run("empty answer sets are incomplete", func(t *testing.T) {
		for name, answers := range map[string][]requests.Answer{
			"nil":            nil,
			"empty":          {},
			"blank question": {{QuestionID: "", Value: number("1")}},
		} {
			t.Run(name, func(t *testing.T) {
				f := newScreeningFixture()

				_, err := f.usecase.Submit(context.Background(), patientSession, &requests.SubmitScreening{
					AssessmentType: "stress",
					Answers:        answers,
				})

				assert.Equal(t, http.StatusBadRequest, statusOf(t, err))
				assert.True(t, errors.Is(err, scoring.ErrIncompleteSubmission))
				f.repository.AssertNotCalled(t, "CreateAssessment", mock.Anything, mock.Anything)
			})
		}
	})

	t.Run("fractional values are invalid answers", func(t *testing.T) {
		f := newScreeningFixture()
		answers := answersFor(t, "anxiety", 1)
		answers[2].Value = number("1.5")

		_, err := f.usecase.Submit(context.Background(), patientSession, &requests.SubmitScreening{
			AssessmentType: "anxiety",
			Answers:        answers,
		})

		assert.Equal(t, http.StatusBadRequest, statusOf(t, err))
		assert.True(t, errors.Is(err, scoring.ErrInvalidAnswerValue))
	})

	t.Run("whole numbers written as decimals are accepted", func(t *testing.T) {
		f := newScreeningFixture()
		f.repository.On("CreateAssessment", mock.Anything, mock.Anything).Return(assessmentID, nil)
		f.notifications.On("NotifyResultReady", mock.Anything, mock.Anything).Return(nil)
		answers := answersFor(t, "anxiety", 1)
		answers[0].Value = number("2.0")

		result, err := f.usecase.Submit(context.Background(), patientSession, &requests.SubmitScreening{
			AssessmentType: "anxiety",
			Answers:        answers,
		})

		require.NoError(t, err)
		assert.Equal(t, 8, *result.Score)
	})

	t.Run("out of range values are rejected", func(t *testing.T) {
		f := newScreeningFixture()

		_, err := f.usecase.Submit(context.Background(), patientSession, &requests.SubmitScreening{
			AssessmentType: "ptsd",
			Answers:        answersFor(t, "ptsd", 5),
		})
		assert.Equal(t, http.StatusBadRequest, statusOf(t, err))
		assert.True(t, errors.Is(err, scoring.ErrInvalidAnswerValue))
	})

	t.Run("notification failure does not fail the submission", func(t *testing.T) {
		f := newScreeningFixture()
		f.repository.On("CreateAssessment", mock.Anything, mock.Anything).Return(assessmentID, nil)
		f.notifications.On("NotifyResultReady", mock.Anything, mock.Anything).Return(errors.New("broker down"))

		result, err := f.usecase.Submit(context.Background(), patientSession, &requests.SubmitScreening{
			AssessmentType: "stress",
			Answers:        answersFor(t, "stress", 0),
		})

		require.NoError(t, err)
		assert.Equal(t, 0, *result.Score)
	})
}

func TestScreeningUsecase_FindSubmissionByID(t *testing.T) {
	t.Run("type mismatch is not found", func(t *testing.T) {
		f := newScreeningFixture()
		f.repository.On("FindByID", mock.Anything, assessmentID).Return(&models.Assessment{
			ID: assessmentID, UserID: patientID, AssessmentType: "stress",
		}, nil)

		_, err := f.usecase.FindSubmissionByID(context.Background(), patientSession, "ptsd", assessmentID)
		assert.Equal(t, http.StatusNotFound, statusOf(t, err))
	})

	t.Run("doctor can read any patient", func(t *testing.T) {
		f := newScreeningFixture()
		f.repository.On("FindByID", mock.Anything, assessmentID).Return(&models.Assessment{
			ID: assessmentID, UserID: patientID, AssessmentType: "stress",
		}, nil)

		result, err := f.usecase.FindSubmissionByID(context.Background(), doctorSession, "stress", assessmentID)
		require.NoError(t, err)
		assert.Equal(t, patientID, result.UserID)
	})
}

func TestScreeningUsecase_FindAllResults(t *testing.T) {
	t.Run("patients are refused", func(t *testing.T) {
		f := newScreeningFixture()
		_, err := f.usecase.FindAllResults(context.Background(), patientSession, "stress")
		assert.Equal(t, http.StatusForbidden, statusOf(t, err))
	})

	t.Run("doctor reads completed records of the type", func(t *testing.T) {
		f := newScreeningFixture()
		f.repository.On("FindAll", mock.Anything, models.AssessmentFilter{
			AssessmentType: "stress",
			Status:         "completed",
		}).Return([]models.Assessment{{ID: "a"}}, nil)

		result, err := f.usecase.FindAllResults(context.Background(), doctorSession, "stress")
		require.NoError(t, err)
		assert.Len(t, result, 1)
	})
}

func TestScreeningUsecase_FindSubmissionsByUserID(t *testing.T) {
	f := newScreeningFixture()
	_, err := f.usecase.FindSubmissionsByUserID(context.Background(), patientSession, "stress", doctorID)
	assert.Equal(t, http.StatusForbidden, statusOf(t, err))
}
