package consumers

import (
	"context"

	"github.com/miradam/aaa-onboarding-portal/internal/app/deps"
	dl "github.com/miradam/aaa-onboarding-portal/internal/core/domain/logging"
	maildelivery "github.com/miradam/aaa-onboarding-portal/internal/rabbitmq/consumers/mail_delivery"
)

func initMailDeliveryConsumer(deps *deps.Deps) func() {
	rabbitmqChannel, err := deps.Rabbitmq.Channel()
	if err != nil {
		deps.Logger.Error(context.Background(), "Could not create RabbitMQ channel.", dl.Entry("err", err))
		panic(err)
	}

	queue := deps.Config.RabbitmqMailQueue
	mailDeliveryConsumer := maildelivery.New(
		deps.Logger,
		rabbitmqChannel,
		queue,
		deps.MailSender,
	)
	if err = mailDeliveryConsumer.Consume(); err != nil {
		deps.Logger.Error(
			context.Background(),
			"Could not start RabbitMQ consuming.",
			dl.Entry("err", err),
			dl.Entry("queue", queue),
		)
		panic(err)
	}

	deps.Logger.Info(context.Background(), "Consumer has started.", dl.Entry("queue", queue))
	return func() { rabbitmqChannel.Close() }
}

func InitConsumers(deps *deps.Deps) func() {
	shutdownMailDeliveryConsumer := initMailDeliveryConsumer(deps)

	return func() {
		shutdownMailDeliveryConsumer()
	}
}
