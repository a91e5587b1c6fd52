package contracts

import (
	"context"
	"mindcheck-service/internal/app/models"
	"mindcheck-service/internal/pkg/dto/responses"
)

type DoctorUsecase interface {
	FindPatients(ctx context.Context, session *models.Session) ([]responses.PatientOverview, error)
	FindPatientDetail(ctx context.Context, session *models.Session, patientID string) (*responses.PatientDetail, error)
	GeneratePatientSummary(ctx context.Context, session *models.Session, patientID string) (*responses.PatientSummary, error)
	ExportPatientReport(ctx context.Context, session *models.Session, patientID string) (*responses.PatientReport, error)
}

type PatientSummarizer interface {
	Summarize(ctx context.Context, patient *models.User, assessments []models.Assessment) (string, error)
}
