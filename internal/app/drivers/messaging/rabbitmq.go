package messaging

import (
	"fmt"
	"log"
	"mindcheck-service/internal/app/config"

	"github.com/rabbitmq/amqp091-go"
)

func NewRabbitMQ(driverConfig *config.DriverConfig) *amqp091.Connection {
	connectionString := fmt.Sprintf(
		"amqp://%s:%s@%s:%s/",
		driverConfig.RabbitMQ.Username,
		driverConfig.RabbitMQ.Password,
		driverConfig.RabbitMQ.Host,
		driverConfig.RabbitMQ.Port,
	)
	conn, err := amqp091.Dial(connectionString)
	if err != nil {
		log.Fatalf("Failed to connect to rabbitMQ: %s", err.Error())
	}
	log.Println("Successfully connected to rabbitMQ")
	return conn
}

// NewChannel opens a channel and declares queueName as a durable queue.
func NewChannel(conn *amqp091.Connection, queueName string) *amqp091.Channel {
	channel, err := conn.Channel()
	if err != nil {
		log.Fatalf("Failed to open rabbitMQ channel: %s", err.Error())
	}
	_, err = channel.QueueDeclare(queueName, true, false, false, false, nil)
	if err != nil {
		log.Fatalf("Failed to declare rabbitMQ queue %s: %s", queueName, err.Error())
	}
	return channel
}
