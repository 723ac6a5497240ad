package queue

import (
	"context"

	"clinicore-service/internal/app/contracts"
	"clinicore-service/internal/pkg/constvars"
	"clinicore-service/internal/pkg/exceptions"

	"github.com/goccy/go-json"
	"github.com/rabbitmq/amqp091-go"
)

type queuePublisher struct {
	connection *amqp091.Connection
}

func NewQueuePublisher(connection *amqp091.Connection) contracts.QueuePublisher {
	return &queuePublisher{connection: connection}
}

func (p *queuePublisher) Publish(ctx context.Context, queueName string, payload interface{}) error {
	channel, err := p.connection.Channel()
	if err != nil {
		return exceptions.ErrQueueChannelUnavailable(err)
	}
	defer channel.Close()

	_, err = channel.QueueDeclare(queueName, true, false, false, false, nil)
	if err != nil {
		return exceptions.ErrQueuePublishMessage(err, queueName)
	}

	body, err := json.Marshal(payload)
	if err != nil {
		return exceptions.ErrCannotMarshalJSON(err)
	}

	err = channel.PublishWithContext(ctx, "", queueName, false, false, amqp091.Publishing{
		ContentType: constvars.MIMEApplicationJSON,
		Body:        body,
	})
	if err != nil {
		return exceptions.ErrQueuePublishMessage(err, queueName)
	}
	return nil
}
