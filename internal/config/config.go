package config

import (
	"fmt"
	"time"

	"github.com/caarlos0/env/v6"
)

type Config struct {
	IsTestMode bool `env:"TEST_MODE"`

	HTTPAddress    string   `env:"HTTP_ADDRESS" envDefault:"0.0.0.0:10080"`
	BaseURL        string   `env:"BASE_URL" envDefault:"http://127.0.0.1:10080"`
	AllowedOrigins []string `env:"ALLOWED_ORIGINS" envSeparator:"," envDefault:"*"`

	Secret           string `env:"SECRET,required"`
	BcryptHasherCost int    `env:"BCRYPT_HASHER_COST" envDefault:"10"`

	PostgresqlURL string `env:"POSTGRESQL_URL,required"`
	RedisURL      string `env:"REDIS_URL,required"`
	RabbitmqURL   string `env:"RABBITMQ_URL,required"`

	RabbitmqMailQueue string `env:"RABBITMQ_MAIL_QUEUE" envDefault:"portal.mail"`

	ResetRequestTTL time.Duration `env:"RESET_REQUEST_TTL" envDefault:"24h"`

	AdminEmail string `env:"ADMIN_EMAIL,required"`

	AwsRegion                     string `env:"AWS_REGION" envDefault:"us-east-1"`
	AwsAccessKey                  string `env:"AWS_ACCESS_KEY"`
	AwsSecretKey                  string `env:"AWS_SECRET_KEY"`
	AwsEmailSender                string `env:"AWS_EMAIL_SENDER"`
	AwsEmailResetPasswordTemplate string `env:"AWS_EMAIL_RESET_PASSWORD_TEMPLATE" envDefault:"portal-reset-password"`
	AwsEmailSignUpNoticeTemplate  string `env:"AWS_EMAIL_SIGN_UP_NOTICE_TEMPLATE" envDefault:"portal-sign-up-notice"`

	SentryDSN string `env:"SENTRY_DSN"`
}

func Load() (*Config, error) {
	config := &Config{}
	if err := env.Parse(config); err != nil {
		return nil, fmt.Errorf("could not load config: %w", err)
	}
	return config, nil
}
