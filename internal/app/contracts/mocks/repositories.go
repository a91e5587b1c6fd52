package mocks

import (
	"context"
	"mindcheck-service/internal/app/models"
	"time"

	"github.com/stretchr/testify/mock"
)

type MockUserRepository struct {
	mock.Mock
}

func (m *MockUserRepository) FindAll(ctx context.Context, role string) ([]models.User, error) {
	args := m.Called(ctx, role)
	users, _ := args.Get(0).([]models.User)
	return users, args.Error(1)
}

func (m *MockUserRepository) FindByID(ctx context.Context, userID string) (*models.User, error) {
	args := m.Called(ctx, userID)
	user, _ := args.Get(0).(*models.User)
	return user, args.Error(1)
}

func (m *MockUserRepository) FindByEmail(ctx context.Context, email string) (*models.User, error) {
	args := m.Called(ctx, email)
	user, _ := args.Get(0).(*models.User)
	return user, args.Error(1)
}

func (m *MockUserRepository) CreateUser(ctx context.Context, userModel *models.User) (string, error) {
	args := m.Called(ctx, userModel)
	return args.String(0), args.Error(1)
}

func (m *MockUserRepository) UpdateUser(ctx context.Context, userModel *models.User) error {
	args := m.Called(ctx, userModel)
	return args.Error(0)
}

func (m *MockUserRepository) UpdateLastLogin(ctx context.Context, userID string, loginAt time.Time) error {
	args := m.Called(ctx, userID, loginAt)
	return args.Error(0)
}

func (m *MockUserRepository) DeleteByID(ctx context.Context, userID string) error {
	args := m.Called(ctx, userID)
	return args.Error(0)
}

type MockAssessmentRepository struct {
	mock.Mock
}

func (m *MockAssessmentRepository) FindAll(ctx context.Context, filter models.AssessmentFilter) ([]models.Assessment, error) {
	args := m.Called(ctx, filter)
	assessments, _ := args.Get(0).([]models.Assessment)
	return assessments, args.Error(1)
}

func (m *MockAssessmentRepository) FindByID(ctx context.Context, assessmentID string) (*models.Assessment, error) {
	args := m.Called(ctx, assessmentID)
	assessment, _ := args.Get(0).(*models.Assessment)
	return assessment, args.Error(1)
}

func (m *MockAssessmentRepository) CountByUserIDs(ctx context.Context, userIDs []string) (map[string]int64, error) {
	args := m.Called(ctx, userIDs)
	counts, _ := args.Get(0).(map[string]int64)
	return counts, args.Error(1)
}

func (m *MockAssessmentRepository) CreateAssessment(ctx context.Context, assessment *models.Assessment) (string, error) {
	args := m.Called(ctx, assessment)
	return args.String(0), args.Error(1)
}

func (m *MockAssessmentRepository) UpdateAssessment(ctx context.Context, assessment *models.Assessment) error {
	args := m.Called(ctx, assessment)
	return args.Error(0)
}

func (m *MockAssessmentRepository) DeleteByID(ctx context.Context, assessmentID string) error {
	args := m.Called(ctx, assessmentID)
	return args.Error(0)
}

type MockPreAssessmentQuestionRepository struct {
	mock.Mock
}

func (m *MockPreAssessmentQuestionRepository) FindAll(ctx context.Context) ([]models.PreAssessmentQuestion, error) {
	args := m.Called(ctx)
	questions, _ := args.Get(0).([]models.PreAssessmentQuestion)
	return questions, args.Error(1)
}

func (m *MockPreAssessmentQuestionRepository) CreateMany(ctx context.Context, questions []models.PreAssessmentQuestion) error {
	args := m.Called(ctx, questions)
	return args.Error(0)
}

type MockNotificationRepository struct {
	mock.Mock
}

func (m *MockNotificationRepository) FindAll(ctx context.Context) ([]models.Notification, error) {
	args := m.Called(ctx)
	notifications, _ := args.Get(0).([]models.Notification)
	return notifications, args.Error(1)
}

func (m *MockNotificationRepository) FindByID(ctx context.Context, notificationID string) (*models.Notification, error) {
	args := m.Called(ctx, notificationID)
	notification, _ := args.Get(0).(*models.Notification)
	return notification, args.Error(1)
}

func (m *MockNotificationRepository) FindByUserID(ctx context.Context, userID string, unreadOnly bool) ([]models.Notification, error) {
	args := m.Called(ctx, userID, unreadOnly)
	notifications, _ := args.Get(0).([]models.Notification)
	return notifications, args.Error(1)
}

func (m *MockNotificationRepository) CreateNotification(ctx context.Context, notification *models.Notification) (string, error) {
	args := m.Called(ctx, notification)
	return args.String(0), args.Error(1)
}

func (m *MockNotificationRepository) UpdateNotification(ctx context.Context, notification *models.Notification) error {
	args := m.Called(ctx, notification)
	return args.Error(0)
}

func (m *MockNotificationRepository) DeleteByID(ctx context.Context, notificationID string) error {
	args := m.Called(ctx, notificationID)
	return args.Error(0)
}
