package contracts

import (
	"context"
	"mindcheck-service/internal/app/models"
	"mindcheck-service/internal/app/services/core/scoring"
	"mindcheck-service/internal/pkg/dto/requests"
	"mindcheck-service/internal/pkg/dto/responses"
)

type ScoringEngine interface {
	Score(assessmentType string, answers []scoring.Answer) (scoring.Result, error)
	ComposePreAssessment(form scoring.PreAssessmentForm) (*scoring.PreAssessmentResult, error)
	Definition(assessmentType string) (scoring.Definition, bool)
}

type ScreeningUsecase interface {
	GetQuestionnaire(ctx context.Context, assessmentType string) (*responses.Questionnaire, error)
	Submit(ctx context.Context, session *models.Session, request *requests.SubmitScreening) (*responses.Assessment, error)
	FindSubmissionsByUserID(ctx context.Context, session *models.Session, assessmentType, userID string) ([]responses.Assessment, error)
	FindSubmissionByID(ctx context.Context, session *models.Session, assessmentType, assessmentID string) (*responses.Assessment, error)
	FindAllResults(ctx context.Context, session *models.Session, assessmentType string) ([]responses.Assessment, error)
}
