package events

import (
	"context"
	"time"

	"patient-registry-service/internal/app/contracts"
	"patient-registry-service/internal/pkg/constvars"
	"patient-registry-service/internal/pkg/exceptions"

	"github.com/goccy/go-json"
	"github.com/google/uuid"
	"github.com/rabbitmq/amqp091-go"
)

type resourceEventPublisher struct {
	Channel *amqp091.Channel
	Queue   string
}

func NewResourceEventPublisher(rabbitMQConnection *amqp091.Connection, queue string) (contracts.ResourceEventPublisher, error) {
	channel, err := rabbitMQConnection.Channel()
	if err != nil {
		return nil, err
	}

	_, err = channel.QueueDeclare(queue, true, false, false, false, nil)
	if err != nil {
		return nil, err
	}

	return &resourceEventPublisher{
		Channel: channel,
		Queue:   queue,
	}, nil
}

type resourceCreatedEvent struct {
	EventType  string          `json:"event_type"`
	Kind       string          `json:"kind"`
	ResourceID string          `json:"resource_id"`
	OccurredAt string          `json:"occurred_at"`
	Document   json.RawMessage `json:"document"`
}

func (p *resourceEventPublisher) PublishResourceCreated(ctx context.Context, kind string, id uuid.UUID, document []byte) error {
	event := resourceCreatedEvent{
		EventType:  "resource.created",
		Kind:       kind,
		ResourceID: id.String(),
		OccurredAt: time.Now().UTC().Format(time.RFC3339),
		Document:   document,
	}
	body, err := json.Marshal(event)
	if err != nil {
		return exceptions.ErrCannotMarshalJSON(err)
	}

	headers := amqp091.Table{
		"message_type":     "JSON",
		"requeue_strategy": "DROP",
	}

	message := amqp091.Publishing{
		ContentType:  constvars.MIMEApplicationJSON,
		Body:         body,
		DeliveryMode: amqp091.Persistent,
		Priority:     0,
		Headers:      headers,
	}

	err = p.Channel.PublishWithContext(ctx, "", p.Queue, false, false, message)
	if err != nil {
		return exceptions.ErrRabbitMQPublishMessage(err, p.Queue)
	}
	return nil
}
