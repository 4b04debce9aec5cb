package notifier

import (
	"context"
	"net/url"

	c "github.com/miradam/aaa-onboarding-portal/internal/core/domain/common"
	e "github.com/miradam/aaa-onboarding-portal/internal/core/domain/errors"
	"github.com/miradam/aaa-onboarding-portal/internal/core/domain/mail"
	"github.com/miradam/aaa-onboarding-portal/internal/core/domain/reset"
	"github.com/miradam/aaa-onboarding-portal/internal/core/domain/user"

	"github.com/golang-module/carbon/v2"
	"github.com/google/uuid"
)

const (
	subjectResetPassword = "AAA Onboarding Portal: Reset Password"
	subjectSignUpNotice  = "AAA Onboarding Portal: New User Sign-Up"
)

// Mail translates portal notifications into outbox messages. Delivery
// happens asynchronously in the mail worker.
type Mail struct {
	outbox     mail.Outbox
	baseURL    url.URL
	adminEmail c.Email
}

func NewMail(outbox mail.Outbox, baseURL url.URL, adminEmail c.Email) *Mail {
	if outbox == nil {
		panic(e.NewNilArgumentError("outbox"))
	}
	return &Mail{outbox: outbox, baseURL: baseURL, adminEmail: adminEmail}
}

func (n *Mail) SendResetToken(ctx context.Context, u user.User, request reset.Request) error {
	approveURL := n.baseURL.JoinPath("approve_access")
	query := approveURL.Query()
	query.Set("username", string(request.Username))
	query.Set("token", string(request.Token))
	approveURL.RawQuery = query.Encode()

	return n.outbox.Enqueue(ctx, mail.Message{
		ID:       uuid.New().String(),
		To:       u.Email,
		Subject:  subjectResetPassword,
		Template: mail.TemplateResetPassword,
		Params: map[string]string{
			"username":    string(request.Username),
			"approve_url": approveURL.String(),
			"requested_at": carbon.CreateFromStdTime(request.IssuedAt).
				ToDayDateTimeString(),
		},
	})
}

func (n *Mail) SendSignUpNotice(ctx context.Context, u user.User) error {
	return n.outbox.Enqueue(ctx, mail.Message{
		ID:       uuid.New().String(),
		To:       n.adminEmail,
		Subject:  subjectSignUpNotice,
		Template: mail.TemplateSignUpNotice,
		Params: map[string]string{
			"username":  string(u.Username),
			"full_name": u.FullName(),
			"email":     string(u.Email),
			"signed_up_at": carbon.CreateFromStdTime(u.CreatedAt).
				ToDayDateTimeString(),
		},
	})
}
