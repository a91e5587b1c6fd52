package mocks

import (
	"context"
	"mindcheck-service/internal/app/models"
	"mindcheck-service/internal/pkg/dto/responses"
	"time"

	"github.com/stretchr/testify/mock"
)

type MockRedisRepository struct {
	mock.Mock
}

func (m *MockRedisRepository) Delete(ctx context.Context, key string) error {
	args := m.Called(ctx, key)
	return args.Error(0)
}

func (m *MockRedisRepository) Set(ctx context.Context, key string, value interface{}, exp time.Duration) error {
	args := m.Called(ctx, key, value, exp)
	return args.Error(0)
}

func (m *MockRedisRepository) Get(ctx context.Context, key string) (string, error) {
	args := m.Called(ctx, key)
	return args.String(0), args.Error(1)
}

func (m *MockRedisRepository) Exists(ctx context.Context, key string) (bool, error) {
	args := m.Called(ctx, key)
	return args.Bool(0), args.Error(1)
}

type MockSessionService struct {
	mock.Mock
}

func (m *MockSessionService) CreateSession(ctx context.Context, user *models.User, ttl time.Duration) (*models.Session, error) {
	args := m.Called(ctx, user, ttl)
	session, _ := args.Get(0).(*models.Session)
	return session, args.Error(1)
}

func (m *MockSessionService) GetSessionData(ctx context.Context, sessionID string) (*models.Session, error) {
	args := m.Called(ctx, sessionID)
	session, _ := args.Get(0).(*models.Session)
	return session, args.Error(1)
}

func (m *MockSessionService) DeleteSession(ctx context.Context, sessionID string) error {
	args := m.Called(ctx, sessionID)
	return args.Error(0)
}

type MockStorage struct {
	mock.Mock
}

func (m *MockStorage) UploadObject(ctx context.Context, bucketName, objectName, contentType string, content []byte) error {
	args := m.Called(ctx, bucketName, objectName, contentType, content)
	return args.Error(0)
}

func (m *MockStorage) GetObjectUrlWithExpiryTime(ctx context.Context, bucketName, objectName string, expiryTime time.Duration) (string, error) {
	args := m.Called(ctx, bucketName, objectName, expiryTime)
	return args.String(0), args.Error(1)
}

type MockNotificationPublisher struct {
	mock.Mock
}

func (m *MockNotificationPublisher) Publish(ctx context.Context, event *responses.NotificationEvent) error {
	args := m.Called(ctx, event)
	return args.Error(0)
}

type MockPatientSummarizer struct {
	mock.Mock
}

func (m *MockPatientSummarizer) Summarize(ctx context.Context, patient *models.User, assessments []models.Assessment) (string, error) {
	args := m.Called(ctx, patient, assessments)
	return args.String(0), args.Error(1)
}
