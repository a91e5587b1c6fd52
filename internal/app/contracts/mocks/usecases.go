package mocks

import (
	"context"
	"mindcheck-service/internal/app/models"
	"mindcheck-service/internal/pkg/dto/requests"
	"mindcheck-service/internal/pkg/dto/responses"

	"github.com/stretchr/testify/mock"
)

type MockAuthUsecase struct {
	mock.Mock
}

func (m *MockAuthUsecase) Login(ctx context.Context, request *requests.Login) (*responses.Login, error) {
	args := m.Called(ctx, request)
	result, _ := args.Get(0).(*responses.Login)
	return result, args.Error(1)
}

func (m *MockAuthUsecase) Logout(ctx context.Context, session *models.Session) error {
	args := m.Called(ctx, session)
	return args.Error(0)
}

func (m *MockAuthUsecase) Authenticate(ctx context.Context, token string) (*models.Session, error) {
	args := m.Called(ctx, token)
	session, _ := args.Get(0).(*models.Session)
	return session, args.Error(1)
}

type MockUserUsecase struct {
	mock.Mock
}

func (m *MockUserUsecase) CreateUser(ctx context.Context, request *requests.CreateUser) (*responses.User, error) {
	args := m.Called(ctx, request)
	result, _ := args.Get(0).(*responses.User)
	return result, args.Error(1)
}

func (m *MockUserUsecase) FindAll(ctx context.Context, session *models.Session) ([]responses.User, error) {
	args := m.Called(ctx, session)
	result, _ := args.Get(0).([]responses.User)
	return result, args.Error(1)
}

func (m *MockUserUsecase) FindByID(ctx context.Context, session *models.Session, userID string) (*responses.User, error) {
	args := m.Called(ctx, session, userID)
	result, _ := args.Get(0).(*responses.User)
	return result, args.Error(1)
}

func (m *MockUserUsecase) GetProfile(ctx context.Context, session *models.Session) (*responses.User, error) {
	args := m.Called(ctx, session)
	result, _ := args.Get(0).(*responses.User)
	return result, args.Error(1)
}

func (m *MockUserUsecase) UpdateUser(ctx context.Context, session *models.Session, request *requests.UpdateUser) (*responses.User, error) {
	args := m.Called(ctx, session, request)
	result, _ := args.Get(0).(*responses.User)
	return result, args.Error(1)
}

func (m *MockUserUsecase) DeleteUser(ctx context.Context, session *models.Session, userID string) error {
	args := m.Called(ctx, session, userID)
	return args.Error(0)
}

type MockAssessmentUsecase struct {
	mock.Mock
}

func (m *MockAssessmentUsecase) CreateAssessment(ctx context.Context, session *models.Session, request *requests.CreateAssessment) (*responses.Assessment, error) {
	args := m.Called(ctx, session, request)
	result, _ := args.Get(0).(*responses.Assessment)
	return result, args.Error(1)
}

func (m *MockAssessmentUsecase) FindAll(ctx context.Context, session *models.Session) ([]responses.Assessment, error) {
	args := m.Called(ctx, session)
	result, _ := args.Get(0).([]responses.Assessment)
	return result, args.Error(1)
}

func (m *MockAssessmentUsecase) FindByID(ctx context.Context, session *models.Session, assessmentID string) (*responses.Assessment, error) {
	args := m.Called(ctx, session, assessmentID)
	result, _ := args.Get(0).(*responses.Assessment)
	return result, args.Error(1)
}

func (m *MockAssessmentUsecase) FindByUserID(ctx context.Context, session *models.Session, userID string) ([]responses.Assessment, error) {
	args := m.Called(ctx, session, userID)
	result, _ := args.Get(0).([]responses.Assessment)
	return result, args.Error(1)
}

func (m *MockAssessmentUsecase) UpdateAssessment(ctx context.Context, session *models.Session, request *requests.UpdateAssessment) (*responses.Assessment, error) {
	args := m.Called(ctx, session, request)
	result, _ := args.Get(0).(*responses.Assessment)
	return result, args.Error(1)
}

func (m *MockAssessmentUsecase) DeleteAssessment(ctx context.Context, session *models.Session, assessmentID string) error {
	args := m.Called(ctx, session, assessmentID)
	return args.Error(0)
}

func (m *MockAssessmentUsecase) GetStatus(ctx context.Context, session *models.Session, userID string) (responses.AssessmentStatus, error) {
	args := m.Called(ctx, session, userID)
	result, _ := args.Get(0).(responses.AssessmentStatus)
	return result, args.Error(1)
}

type MockScreeningUsecase struct {
	mock.Mock
}

func (m *MockScreeningUsecase) GetQuestionnaire(ctx context.Context, assessmentType string) (*responses.Questionnaire, error) {
	args := m.Called(ctx, assessmentType)
	result, _ := args.Get(0).(*responses.Questionnaire)
	return result, args.Error(1)
}

func (m *MockScreeningUsecase) Submit(ctx context.Context, session *models.Session, request *requests.SubmitScreening) (*responses.Assessment, error) {
	args := m.Called(ctx, session, request)
	result, _ := args.Get(0).(*responses.Assessment)
	return result, args.Error(1)
}

func (m *MockScreeningUsecase) FindSubmissionsByUserID(ctx context.Context, session *models.Session, assessmentType, userID string) ([]responses.Assessment, error) {
	args := m.Called(ctx, session, assessmentType, userID)
	result, _ := args.Get(0).([]responses.Assessment)
	return result, args.Error(1)
}

func (m *MockScreeningUsecase) FindSubmissionByID(ctx context.Context, session *models.Session, assessmentType, assessmentID string) (*responses.Assessment, error) {
	args := m.Called(ctx, session, assessmentType, assessmentID)
	result, _ := args.Get(0).(*responses.Assessment)
	return result, args.Error(1)
}

func (m *MockScreeningUsecase) FindAllResults(ctx context.Context, session *models.Session, assessmentType string) ([]responses.Assessment, error) {
	args := m.Called(ctx, session, assessmentType)
	result, _ := args.Get(0).([]responses.Assessment)
	return result, args.Error(1)
}

type MockPreAssessmentUsecase struct {
	mock.Mock
}

func (m *MockPreAssessmentUsecase) GetQuestions(ctx context.Context) ([]responses.PreAssessmentQuestion, error) {
	args := m.Called(ctx)
	result, _ := args.Get(0).([]responses.PreAssessmentQuestion)
	return result, args.Error(1)
}

func (m *MockPreAssessmentUsecase) Submit(ctx context.Context, session *models.Session, request *requests.SubmitPreAssessment) (*responses.Assessment, error) {
	args := m.Called(ctx, session, request)
	result, _ := args.Get(0).(*responses.Assessment)
	return result, args.Error(1)
}

func (m *MockPreAssessmentUsecase) FindSubmissionsByUserID(ctx context.Context, session *models.Session, userID string) ([]responses.Assessment, error) {
	args := m.Called(ctx, session, userID)
	result, _ := args.Get(0).([]responses.Assessment)
	return result, args.Error(1)
}

func (m *MockPreAssessmentUsecase) FindSubmissionByID(ctx context.Context, session *models.Session, assessmentID string) (*responses.Assessment, error) {
	args := m.Called(ctx, session, assessmentID)
	result, _ := args.Get(0).(*responses.Assessment)
	return result, args.Error(1)
}

type MockNotificationUsecase struct {
	mock.Mock
}

func (m *MockNotificationUsecase) CreateNotification(ctx context.Context, session *models.Session, request *requests.CreateNotification) (*responses.Notification, error) {
	args := m.Called(ctx, session, request)
	result, _ := args.Get(0).(*responses.Notification)
	return result, args.Error(1)
}

func (m *MockNotificationUsecase) FindAll(ctx context.Context, session *models.Session) ([]responses.Notification, error) {
	args := m.Called(ctx, session)
	result, _ := args.Get(0).([]responses.Notification)
	return result, args.Error(1)
}

func (m *MockNotificationUsecase) FindByID(ctx context.Context, session *models.Session, notificationID string) (*responses.Notification, error) {
	args := m.Called(ctx, session, notificationID)
	result, _ := args.Get(0).(*responses.Notification)
	return result, args.Error(1)
}

func (m *MockNotificationUsecase) FindByUserID(ctx context.Context, session *models.Session, userID string, unreadOnly bool) ([]responses.Notification, error) {
	args := m.Called(ctx, session, userID, unreadOnly)
	result, _ := args.Get(0).([]responses.Notification)
	return result, args.Error(1)
}

func (m *MockNotificationUsecase) UpdateNotification(ctx context.Context, session *models.Session, request *requests.UpdateNotification) (*responses.Notification, error) {
	args := m.Called(ctx, session, request)
	result, _ := args.Get(0).(*responses.Notification)
	return result, args.Error(1)
}

func (m *MockNotificationUsecase) DeleteNotification(ctx context.Context, session *models.Session, notificationID string) error {
	args := m.Called(ctx, session, notificationID)
	return args.Error(0)
}

func (m *MockNotificationUsecase) NotifyResultReady(ctx context.Context, assessment *models.Assessment) error {
	args := m.Called(ctx, assessment)
	return args.Error(0)
}

type MockDoctorUsecase struct {
	mock.Mock
}

func (m *MockDoctorUsecase) FindPatients(ctx context.Context, session *models.Session) ([]responses.PatientOverview, error) {
	args := m.Called(ctx, session)
	result, _ := args.Get(0).([]responses.PatientOverview)
	return result, args.Error(1)
}

func (m *MockDoctorUsecase) FindPatientDetail(ctx context.Context, session *models.Session, patientID string) (*responses.PatientDetail, error) {
	args := m.Called(ctx, session, patientID)
	result, _ := args.Get(0).(*responses.PatientDetail)
	return result, args.Error(1)
}

func (m *MockDoctorUsecase) GeneratePatientSummary(ctx context.Context, session *models.Session, patientID string) (*responses.PatientSummary, error) {
	args := m.Called(ctx, session, patientID)
	result, _ := args.Get(0).(*responses.PatientSummary)
	return result, args.Error(1)
}

func (m *MockDoctorUsecase) ExportPatientReport(ctx context.Context, session *models.Session, patientID string) (*responses.PatientReport, error) {
	args := m.Called(ctx, session, patientID)
	result, _ := args.Get(0).(*responses.PatientReport)
	return result, args.Error(1)
}
