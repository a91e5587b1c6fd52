package contracts

import (
	"context"
	"mindcheck-service/internal/app/models"
	"mindcheck-service/internal/pkg/dto/requests"
	"mindcheck-service/internal/pkg/dto/responses"
)

type PreAssessmentUsecase interface {
	GetQuestions(ctx context.Context) ([]responses.PreAssessmentQuestion, error)
	Submit(ctx context.Context, session *models.Session, request *requests.SubmitPreAssessment) (*responses.Assessment, error)
	FindSubmissionsByUserID(ctx context.Context, session *models.Session, userID string) ([]responses.Assessment, error)
	FindSubmissionByID(ctx context.Context, session *models.Session, assessmentID string) (*responses.Assessment, error)
}

type PreAssessmentQuestionRepository interface {
	FindAll(ctx context.Context) ([]models.PreAssessmentQuestion, error)
	CreateMany(ctx context.Context, questions []models.PreAssessmentQuestion) error
}
