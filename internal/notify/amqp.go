package notify

import (
	"context"
	"encoding/json"
	"fmt"
	"time"

	"github.com/dmitrijs2005/launchpad/internal/logging"
	amqp "github.com/rabbitmq/amqp091-go"
)

// DefaultQueue is where notifications are published.
const DefaultQueue = "launchpad.notifications"

// AMQP publishes each notification as JSON to a durable queue. A connection
// is opened per message; notifications are rare.
type AMQP struct {
	url   string
	queue string
	log   logging.Logger
	now   func() time.Time
}

func NewAMQP(url string, log logging.Logger) *AMQP {
	return &AMQP{url: url, queue: DefaultQueue, log: log, now: time.Now}
}

func (a *AMQP) Notify(ctx context.Context, n Notification) {
	if err := a.Publish(ctx, n); err != nil {
		a.log.Warn(ctx, "notification not delivered", "queue", a.queue, "title", n.Title, "error", err)
	}
}

// Publish sends n and reports any broker error.
func (a *AMQP) Publish(ctx context.Context, n Notification) error {
	conn, err := amqp.Dial(a.url)
	if err != nil {
		return fmt.Errorf("rabbitmq dial: %w", err)
	}
	defer func() { _ = conn.Close() }()

	ch, err := conn.Channel()
	if err != nil {
		return fmt.Errorf("rabbitmq channel: %w", err)
	}
	defer func() { _ = ch.Close() }()

	if _, err := ch.QueueDeclare(
		a.queue,
		true,  // durable
		false, // autoDelete
		false, // exclusive
		false, // noWait
		nil,
	); err != nil {
		return fmt.Errorf("rabbitmq queue declare: %w", err)
	}

	body, err := json.Marshal(n)
	if err != nil {
		return err
	}

	pub := amqp.Publishing{
		ContentType:  "application/json",
		DeliveryMode: amqp.Persistent,
		Timestamp:    a.now().UTC(),
		Body:         body,
	}

	if err := ch.PublishWithContext(ctx, "", a.queue, false, false, pub); err != nil {
		return fmt.Errorf("rabbitmq publish: %w", err)
	}
	return nil
}
