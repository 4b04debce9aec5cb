package mail

import (
	"context"
	c "github.com/miradam/aaa-onboarding-portal/internal/core/domain/common"
)

const (
	TemplateResetPassword = "reset_password"
	TemplateSignUpNotice  = "sign_up_notice"
)

// Message is one outbound notification. Params are template
// parameters, rendered by the delivery worker.
type Message struct {
	ID       string            `json:"id"`
	To       c.Email           `json:"to"`
	Subject  string            `json:"subject"`
	Template string            `json:"template"`
	Params   map[string]string `json:"params"`
}

// Outbox accepts messages for asynchronous delivery. Enqueue returning
// nil means the message was handed over, not that it was delivered.
type Outbox interface {
	Enqueue(ctx context.Context, message Message) error
}

// Sender performs the actual delivery.
type Sender interface {
	Send(ctx context.Context, message Message) error
}
