package publisher

import (
	"context"
	"errors"
	"mindcheck-service/internal/pkg/dto/responses"
	"testing"
	"time"

	"github.com/goccy/go-json"
	"github.com/rabbitmq/amqp091-go"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

type MockAMQPChannel struct {
	mock.Mock
}

func (m *MockAMQPChannel) PublishWithContext(ctx context.Context, exchange, key string, mandatory, immediate bool, msg amqp091.Publishing) error {
	args := m.Called(ctx, exchange, key, mandatory, immediate, msg)
	return args.Error(0)
}

func TestRabbitMQPublisher_Publish(t *testing.T) {
	event := &responses.NotificationEvent{
		NotificationID: "665f1c2b9e1d4a0012345678",
		UserID:         "665f1c2b9e1d4a0087654321",
		Type:           "resultReady",
		Message:        "Your Stress results are ready: Moderate",
		CreatedAt:      time.Date(2024, 6, 1, 10, 0, 0, 0, time.UTC),
	}

	t.Run("publishes persistent JSON to the queue", func(t *testing.T) {
		channel := new(MockAMQPChannel)
		var published amqp091.Publishing
		channel.On("PublishWithContext", mock.Anything, "", "notifications", false, false, mock.AnythingOfType("amqp091.Publishing")).
			Run(func(args mock.Arguments) { published = args.Get(5).(amqp091.Publishing) }).
			Return(nil)

		err := NewNotificationPublisher(channel, "notifications").Publish(context.Background(), event)
		require.NoError(t, err)
		channel.AssertExpectations(t)

		assert.Equal(t, "application/json", published.ContentType)
		assert.Equal(t, amqp091.Persistent, published.DeliveryMode)
		assert.Equal(t, event.NotificationID, published.MessageId)

		var decoded responses.NotificationEvent
		require.NoError(t, json.Unmarshal(published.Body, &decoded))
		assert.Equal(t, event.Message, decoded.Message)
	})

	t.Run("wraps channel failures", func(t *testing.T) {
		channel := new(MockAMQPChannel)
		channel.On("PublishWithContext", mock.Anything, "", "notifications", false, false, mock.Anything).
			Return(errors.New("channel closed"))

		err := NewNotificationPublisher(channel, "notifications").Publish(context.Background(), event)
		assert.ErrorContains(t, err, "notifications")
	})
}
