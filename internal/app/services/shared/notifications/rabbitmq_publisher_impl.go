package notifications

import (
	"context"
	"yuktah-service/internal/app/contracts"
	"yuktah-service/internal/pkg/constvars"
	"yuktah-service/internal/pkg/exceptions"

	"github.com/goccy/go-json"
	"github.com/rabbitmq/amqp091-go"
)

type rabbitMQPublisher struct {
	connection *amqp091.Connection
	queueName  string
}

// NewRabbitMQPublisher declares the notification queue up front so publishes
// never race queue creation.
func NewRabbitMQPublisher(connection *amqp091.Connection, queueName string) (contracts.NotificationPublisher, error) {
	channel, err := connection.Channel()
	if err != nil {
		return nil, err
	}
	defer channel.Close()

	_, err = channel.QueueDeclare(queueName, true, false, false, false, nil)
	if err != nil {
		return nil, err
	}

	return &rabbitMQPublisher{
		connection: connection,
		queueName:  queueName,
	}, nil
}

func (p *rabbitMQPublisher) PublishEmergencyAccess(ctx context.Context, event *contracts.EmergencyAccessEvent) error {
	body, err := json.Marshal(event)
	if err != nil {
		return exceptions.ErrCannotMarshalJSON(err)
	}

	channel, err := p.connection.Channel()
	if err != nil {
		return exceptions.ErrRabbitMQPublishMessage(err, p.queueName)
	}
	defer channel.Close()

	err = channel.PublishWithContext(ctx, "", p.queueName, false, false, amqp091.Publishing{
		ContentType:  constvars.MIMEApplicationJSON,
		DeliveryMode: amqp091.Persistent,
		Body:         body,
	})
	if err != nil {
		return exceptions.ErrRabbitMQPublishMessage(err, p.queueName)
	}
	return nil
}
