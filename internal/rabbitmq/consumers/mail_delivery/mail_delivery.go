package maildelivery

import (
	"context"
	"encoding/json"

	e "github.com/miradam/aaa-onboarding-portal/internal/core/domain/errors"
	"github.com/miradam/aaa-onboarding-portal/internal/core/domain/logging"
	"github.com/miradam/aaa-onboarding-portal/internal/core/domain/mail"
	"github.com/miradam/aaa-onboarding-portal/internal/rabbitmq"

	"github.com/rabbitmq/amqp091-go"
)

// Consumer drains the mail queue and delivers each message through the
// configured sender. A message that cannot be decoded or delivered is
// logged and acknowledged; the portal never sees delivery failures.
type Consumer struct {
	log     logging.Logger
	channel *rabbitmq.Channel
	queue   string
	sender  mail.Sender
}

func New(
	log logging.Logger,
	channel *rabbitmq.Channel,
	queue string,
	sender mail.Sender,
) *Consumer {
	if log == nil {
		panic(e.NewNilArgumentError("log"))
	}
	if channel == nil {
		panic(e.NewNilArgumentError("channel"))
	}
	if queue == "" {
		panic("queue name must not be empty")
	}
	if sender == nil {
		panic(e.NewNilArgumentError("sender"))
	}
	return &Consumer{log: log, channel: channel, queue: queue, sender: sender}
}

func (c *Consumer) Consume() error {
	deliveries, err := c.channel.Consume(c.queue, "", false, false, false, false, nil)
	if err != nil {
		c.log.Error(context.Background(), "Could not start consuming.", logging.Entry("err", err))
		return err
	}

	go func() {
		for delivery := range deliveries {
			message := mail.Message{}
			if err := json.Unmarshal(delivery.Body, &message); err != nil {
				c.log.Error(
					context.Background(),
					"Could not unmarshal mail message.",
					logging.Entry("err", err),
					logging.Entry("messageID", delivery.MessageId),
				)
				c.Ack(delivery)
				continue
			}

			if err := c.sender.Send(context.Background(), message); err != nil {
				c.log.Error(
					context.Background(),
					"Could not deliver mail message.",
					logging.Entry("messageID", message.ID),
					logging.Entry("template", message.Template),
					logging.Entry("err", err),
				)
				c.Ack(delivery)
				continue
			}

			c.log.Info(
				context.Background(),
				"Mail message has been delivered.",
				logging.Entry("messageID", message.ID),
				logging.Entry("template", message.Template),
			)
			c.Ack(delivery)
		}
	}()
	return nil
}

func (c *Consumer) Ack(delivery amqp091.Delivery) {
	if err := delivery.Ack(true); err != nil {
		c.log.Error(context.Background(), "Could not ACK AMQP message.", logging.Entry("err", err))
	}
}
