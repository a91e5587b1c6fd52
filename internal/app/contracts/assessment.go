package contracts

import (
	"context"
	"mindcheck-service/internal/app/models"
	"mindcheck-service/internal/pkg/dto/requests"
	"mindcheck-service/internal/pkg/dto/responses"
)

type AssessmentUsecase interface {
	CreateAssessment(ctx context.Context, session *models.Session, request *requests.CreateAssessment) (*responses.Assessment, error)
	FindAll(ctx context.Context, session *models.Session) ([]responses.Assessment, error)
	FindByID(ctx context.Context, session *models.Session, assessmentID string) (*responses.Assessment, error)
	FindByUserID(ctx context.Context, session *models.Session, userID string) ([]responses.Assessment, error)
	UpdateAssessment(ctx context.Context, session *models.Session, request *requests.UpdateAssessment) (*responses.Assessment, error)
	DeleteAssessment(ctx context.Context, session *models.Session, assessmentID string) error
	GetStatus(ctx context.Context, session *models.Session, userID string) (responses.AssessmentStatus, error)
}

// AssessmentRepository lists newest first: completed records by completedAt,
// then the rest by startedAt.
type AssessmentRepository interface {
	FindAll(ctx context.Context, filter models.AssessmentFilter) ([]models.Assessment, error)
	FindByID(ctx context.Context, assessmentID string) (*models.Assessment, error)
	CountByUserIDs(ctx context.Context, userIDs []string) (map[string]int64, error)
	CreateAssessment(ctx context.Context, assessment *models.Assessment) (assessmentID string, err error)
	UpdateAssessment(ctx context.Context, assessment *models.Assessment) error
	DeleteByID(ctx context.Context, assessmentID string) error
}
