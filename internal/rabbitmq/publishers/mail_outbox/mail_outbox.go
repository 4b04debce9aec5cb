package mailoutbox

import (
	"context"
	"encoding/json"

	e "github.com/miradam/aaa-onboarding-portal/internal/core/domain/errors"
	"github.com/miradam/aaa-onboarding-portal/internal/core/domain/logging"
	"github.com/miradam/aaa-onboarding-portal/internal/core/domain/mail"
	"github.com/miradam/aaa-onboarding-portal/internal/rabbitmq"

	"github.com/rabbitmq/amqp091-go"
)

// RabbitMQ publishes outbound mail to the delivery queue. Publishing
// is fire-and-forget: a published message counts as handed over.
type RabbitMQ struct {
	log     logging.Logger
	channel *rabbitmq.Channel
	queue   string
}

func NewRabbitMQ(log logging.Logger, channel *rabbitmq.Channel, queue string) *RabbitMQ {
	if log == nil {
		panic(e.NewNilArgumentError("log"))
	}
	if channel == nil {
		panic(e.NewNilArgumentError("channel"))
	}
	if queue == "" {
		panic("queue name must not be empty")
	}
	return &RabbitMQ{log: log, channel: channel, queue: queue}
}

func (p *RabbitMQ) Enqueue(ctx context.Context, message mail.Message) error {
	body, err := json.Marshal(message)
	if err != nil {
		return err
	}
	err = p.channel.PublishWithContext(ctx, "", p.queue, false, false, amqp091.Publishing{
		ContentType:  "application/json",
		DeliveryMode: amqp091.Persistent,
		MessageId:    message.ID,
		Body:         body,
	})
	if err != nil {
		logging.Error(ctx, p.log, err, logging.Entry("queue", p.queue))
		return err
	}
	p.log.Info(
		ctx,
		"Mail message has been enqueued.",
		logging.Entry("queue", p.queue),
		logging.Entry("messageID", message.ID),
		logging.Entry("template", message.Template),
	)
	return nil
}
