package publisher

import (
	"context"
	"mindcheck-service/internal/app/contracts"
	"mindcheck-service/internal/pkg/constvars"
	"mindcheck-service/internal/pkg/dto/responses"
	"mindcheck-service/internal/pkg/exceptions"
	"sync"

	"github.com/goccy/go-json"
	"github.com/rabbitmq/amqp091-go"
)

// AMQPChannel is the part of *amqp091.Channel the publisher needs.
type AMQPChannel interface {
	PublishWithContext(ctx context.Context, exchange, key string, mandatory, immediate bool, msg amqp091.Publishing) error
}

type rabbitMQPublisher struct {
	Channel AMQPChannel
	Queue   string
	mu      sync.Mutex
}

// NewNotificationPublisher publishes notification events to queue on the
// default exchange. A channel is not safe for concurrent publishing so every
// call is serialized.
func NewNotificationPublisher(channel AMQPChannel, queue string) contracts.NotificationPublisher {
	return &rabbitMQPublisher{
		Channel: channel,
		Queue:   queue,
	}
}

func (p *rabbitMQPublisher) Publish(ctx context.Context, event *responses.NotificationEvent) error {
	body, err := json.Marshal(event)
	if err != nil {
		return exceptions.ErrCannotMarshalJSON(err)
	}

	headers := amqp091.Table{
		"message_type":     "JSON",
		"requeue_strategy": "DROP",
		"event_type":       event.Type,
	}

	message := amqp091.Publishing{
		ContentType:  constvars.MIMEApplicationJSON,
		Body:         body,
		DeliveryMode: amqp091.Persistent,
		Priority:     0,
		Headers:      headers,
		MessageId:    event.NotificationID,
		Timestamp:    event.CreatedAt,
	}

	p.mu.Lock()
	defer p.mu.Unlock()

	err = p.Channel.PublishWithContext(ctx, "", p.Queue, false, false, message)
	if err != nil {
		return exceptions.ErrRabbitMQPublishMessage(err, p.Queue)
	}
	return nil
}
