package notification

import (
	"context"
	"encoding/json"
	"fmt"
	"time"

	amqp "github.com/rabbitmq/amqp091-go"

	"github.com/Kevin30042001/Bootcamp-Tech-Platform/internal/domain"
)

// Queue carries confirmations through RabbitMQ so the request path never
// waits on the mail relay.
type Queue struct {
	conn    *amqp.Connection
	channel *amqp.Channel
	name    string
}

func NewQueue(url, name string) (*Queue, error) {
	conn, err := amqp.Dial(url)
	if err != nil {
		return nil, fmt.Errorf("connect to rabbitmq: %w", err)
	}

	ch, err := conn.Channel()
	if err != nil {
		_ = conn.Close()
		return nil, fmt.Errorf("open rabbitmq channel: %w", err)
	}

	if _, err = ch.QueueDeclare(
		name,
		true,
		false,
		false,
		false,
		nil,
	); err != nil {
		_ = ch.Close()
		_ = conn.Close()
		return nil, fmt.Errorf("declare queue %s: %w", name, err)
	}

	return &Queue{conn: conn, channel: ch, name: name}, nil
}

// Send publishes the confirmation for the worker to deliver.
func (q *Queue) Send(ctx context.Context, c domain.Confirmation) error {
	body, err := json.Marshal(c)
	if err != nil {
		return fmt.Errorf("encode confirmation: %w", err)
	}

	err = q.channel.PublishWithContext(
		ctx,
		"",
		q.name,
		false,
		false,
		amqp.Publishing{
			ContentType:  "application/json",
			DeliveryMode: amqp.Persistent,
			Body:         body,
			Timestamp:    time.Now(),
		},
	)
	if err != nil {
		return fmt.Errorf("publish confirmation: %w", err)
	}
	return nil
}

// Consume hands every delivery to handler until ctx is done. A message that
// fails twice is dropped.
func (q *Queue) Consume(ctx context.Context, handler func(ctx context.Context, body []byte) error) error {
	msgs, err := q.channel.Consume(
		q.name,
		"",
		false,
		false,
		false,
		false,
		nil,
	)
	if err != nil {
		return fmt.Errorf("consume %s: %w", q.name, err)
	}

	for {
		select {
		case <-ctx.Done():
			return nil
		case d, ok := <-msgs:
			if !ok {
				return fmt.Errorf("consume %s: delivery channel closed", q.name)
			}
			if err := handler(ctx, d.Body); err != nil {
				_ = d.Nack(false, !d.Redelivered)
				continue
			}
			_ = d.Ack(false)
		}
	}
}

func (q *Queue) Close() error {
	if q.channel != nil {
		_ = q.channel.Close()
	}
	if q.conn != nil {
		return q.conn.Close()
	}
	return nil
}
