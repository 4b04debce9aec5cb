package deps

import (
	"context"
	"fmt"
	"net/url"
	"sync"
	"time"

	"github.com/aws/aws-sdk-go-v2/aws"
	"github.com/aws/aws-sdk-go-v2/aws/retry"
	awsConfig "github.com/aws/aws-sdk-go-v2/config"
	"github.com/aws/aws-sdk-go-v2/credentials"
	"github.com/getsentry/sentry-go"
	"github.com/jackc/pgx/v4/pgxpool"
	"github.com/go-redis/redis/v9"

	"github.com/miradam/aaa-onboarding-portal/internal/config"
	c "github.com/miradam/aaa-onboarding-portal/internal/core/domain/common"
	dl "github.com/miradam/aaa-onboarding-portal/internal/core/domain/logging"
	"github.com/miradam/aaa-onboarding-portal/internal/core/domain/mail"
	"github.com/miradam/aaa-onboarding-portal/internal/core/domain/reset"
	"github.com/miradam/aaa-onboarding-portal/internal/core/domain/user"
	"github.com/miradam/aaa-onboarding-portal/internal/core/services/captcha"
	dbuser "github.com/miradam/aaa-onboarding-portal/internal/db/user"
	portalhttp "github.com/miradam/aaa-onboarding-portal/internal/http"
	"github.com/miradam/aaa-onboarding-portal/internal/http/render"
	"github.com/miradam/aaa-onboarding-portal/internal/implementations/logging"
	mailsender "github.com/miradam/aaa-onboarding-portal/internal/implementations/mail_sender"
	"github.com/miradam/aaa-onboarding-portal/internal/implementations/notifier"
	passwordgenerator "github.com/miradam/aaa-onboarding-portal/internal/implementations/password_generator"
	passwordhasher "github.com/miradam/aaa-onboarding-portal/internal/implementations/password_hasher"
	tokengenerator "github.com/miradam/aaa-onboarding-portal/internal/implementations/token_generator"
	"github.com/miradam/aaa-onboarding-portal/internal/rabbitmq"
	mailoutbox "github.com/miradam/aaa-onboarding-portal/internal/rabbitmq/publishers/mail_outbox"
	redisreset "github.com/miradam/aaa-onboarding-portal/internal/redis/reset"
)

type Deps struct {
	Config    *config.Config
	AwsConfig aws.Config
	Logger    dl.Logger

	DB       *pgxpool.Pool
	Redis    *redis.Client
	Rabbitmq *rabbitmq.Connection

	Now func() time.Time

	UserRepository  user.UserRepository
	ResetRepository reset.Repository

	PasswordHasher    user.PasswordHasher
	TokenGenerator    reset.TokenGenerator
	PasswordGenerator reset.PasswordGenerator

	MailSender       mail.Sender
	MailOutbox       mail.Outbox
	Notifier         *notifier.Mail
	CaptchaValidator captcha.CaptchaValidator

	Renderer *render.Renderer
}

func InitDeps() (*Deps, func()) {
	deps := &Deps{}

	deps.initConfig()
	deps.initAwsConfig()

	closeLogger := deps.initLogger()
	closePgxPool := deps.initPgxPool()
	closeRedisClient := deps.initRedisClient()
	closeRabbitmqConn := deps.initRabbitmqConnection()

	deps.Now = func() time.Time { return time.Now().UTC() }

	deps.UserRepository = dbuser.NewPgxRepository(deps.DB)
	deps.ResetRepository = redisreset.NewRedisRepository(deps.Redis, deps.Config.ResetRequestTTL)

	deps.PasswordHasher = passwordhasher.NewBcrypt(deps.Config.Secret, deps.Config.BcryptHasherCost)
	deps.TokenGenerator = tokengenerator.NewGenerator()
	deps.PasswordGenerator = passwordgenerator.NewGenerator()

	deps.MailSender = mailsender.NewSES(
		deps.AwsConfig,
		deps.Config.AwsEmailSender,
		map[string]string{
			mail.TemplateResetPassword: deps.Config.AwsEmailResetPasswordTemplate,
			mail.TemplateSignUpNotice:  deps.Config.AwsEmailSignUpNoticeTemplate,
		},
	)
	closeMailOutbox := deps.initRabbitmqMailOutbox()

	deps.Notifier = notifier.NewMail(
		deps.MailOutbox,
		deps.baseURL(),
		c.NewEmail(deps.Config.AdminEmail),
	)
	deps.CaptchaValidator = captcha.NewAllowAlwaysCaptchaValidator()

	deps.initRenderer()

	flushSentry := deps.initSentry()

	return deps, func() {
		closeFuncs := []func(){
			closeMailOutbox,
			closeRabbitmqConn,
			closeRedisClient,
			closePgxPool,
			closeLogger,
			flushSentry,
		}

		var wg sync.WaitGroup
		wg.Add(len(closeFuncs))
		for _, closeFunc := range closeFuncs {
			closeFunc := closeFunc
			go func() {
				closeFunc()
				wg.Done()
			}()
		}

		wg.Wait()
	}
}

func (deps *Deps) initConfig() {
	config, err := config.Load()
	if err != nil {
		panic(err)
	}
	deps.Config = config
}

func (deps *Deps) initAwsConfig() {
	cfg, err := awsConfig.LoadDefaultConfig(
		context.Background(),
		awsConfig.WithRegion(deps.Config.AwsRegion),
		awsConfig.WithCredentialsProvider(
			credentials.NewStaticCredentialsProvider(
				deps.Config.AwsAccessKey,
				deps.Config.AwsSecretKey,
				"",
			),
		),
		awsConfig.WithRetryer(func() aws.Retryer {
			return retry.AddWithMaxAttempts(
				retry.AddWithMaxBackoffDelay(retry.NewStandard(), time.Second*5),
				3,
			)
		}),
	)
	if err != nil {
		panic(err)
	}
	deps.AwsConfig = cfg
}

func (deps *Deps) initLogger() func() {
	logger := logging.NewZapLogger()
	deps.Logger = logger
	return func() { logger.Sync() }
}

func (deps *Deps) initPgxPool() func() {
	db, err := pgxpool.Connect(context.Background(), deps.Config.PostgresqlURL)
	if err != nil {
		deps.Logger.Error(context.Background(), "Could not connect to DB.", dl.Entry("err", err))
		panic(err)
	}
	deps.DB = db
	return func() {
		deps.Logger.Info(context.Background(), "Shutting down DB connection.")
		db.Close()
		deps.Logger.Info(context.Background(), "DB connection shut down.")
	}
}

func (deps *Deps) initRedisClient() func() {
	redisOpt, err := redis.ParseURL(deps.Config.RedisURL)
	if err != nil {
		deps.Logger.Error(context.Background(), "Could not connect to Redis.", dl.Entry("err", err))
		panic(err)
	}
	redisClient := redis.NewClient(redisOpt)
	deps.Redis = redisClient
	return func() {
		deps.Logger.Info(context.Background(), "Shutting down Redis client.")
		redisClient.Close()
		deps.Logger.Info(context.Background(), "Redis client shut down.")
	}
}

func (deps *Deps) initRabbitmqConnection() func() {
	rabbitmqConnection, err := rabbitmq.Dial(deps.Config.RabbitmqURL, deps.Logger)
	if err != nil {
		deps.Logger.Error(context.Background(), "Could not connect to RabbitMQ.", dl.Entry("err", err))
		panic("could not connect to RabbitMQ")
	}
	deps.Rabbitmq = rabbitmqConnection
	return func() {
		deps.Logger.Info(context.Background(), "Shutting down RabbitMQ connection.")
		rabbitmqConnection.Close()
		deps.Logger.Info(context.Background(), "RabbitMQ connection shut down.")
	}
}

func (deps *Deps) initRabbitmqMailOutbox() func() {
	rabbitmqChannel, err := deps.Rabbitmq.Channel()
	if err != nil {
		deps.Logger.Error(context.Background(), "Could not create RabbitMQ channel.", dl.Entry("err", err))
		panic(err)
	}

	queue := deps.Config.RabbitmqMailQueue
	if _, err := rabbitmqChannel.QueueDeclare(queue, true, false, false, false, nil); err != nil {
		deps.Logger.Error(
			context.Background(),
			"Could not create RabbitMQ queue.",
			dl.Entry("err", err),
			dl.Entry("queue", queue),
		)
		panic(err)
	}

	deps.MailOutbox = mailoutbox.NewRabbitMQ(deps.Logger, rabbitmqChannel, queue)

	return func() {
		deps.Logger.Info(context.Background(), "Shutting down mail outbox.")
		rabbitmqChannel.Close()
		deps.Logger.Info(context.Background(), "Mail outbox shut down.")
	}
}

func (deps *Deps) baseURL() url.URL {
	baseURL, err := url.Parse(deps.Config.BaseURL)
	if err != nil {
		panic(fmt.Sprintf("invalid base URL %q: %v", deps.Config.BaseURL, err))
	}
	return *baseURL
}

func (deps *Deps) initRenderer() {
	renderer, err := render.New(portalhttp.Templates(), deps.Logger)
	if err != nil {
		deps.Logger.Error(context.Background(), "Could not load templates.", dl.Entry("err", err))
		panic(err)
	}
	deps.Renderer = renderer
}

func (deps *Deps) initSentry() func() {
	if deps.Config.SentryDSN != "" {
		err := sentry.Init(sentry.ClientOptions{
			Dsn:              deps.Config.SentryDSN,
			TracesSampleRate: 0.01,
		})
		if err != nil {
			panic(fmt.Sprintf("could not init Sentry: %v\n", err))
		}
		deps.Logger.Info(context.Background(), "Sentry has been successfully initialized.")
		return func() {
			ok := sentry.Flush(5 * time.Second)
			deps.Logger.Info(context.Background(), "Sentry events flushed.", dl.Entry("ok", ok))
		}
	}

	deps.Logger.Info(context.Background(), "Sentry is disabled.")
	return func() {}
}
