package mailsender

import (
	"context"
	"encoding/json"
	"fmt"

	"github.com/miradam/aaa-onboarding-portal/internal/core/domain/mail"

	"github.com/aws/aws-sdk-go-v2/aws"
	"github.com/aws/aws-sdk-go-v2/service/ses"
	"github.com/aws/aws-sdk-go-v2/service/ses/types"
)

// SES delivers portal notifications through Amazon SES templated
// emails. Template keys from the mail domain are mapped to SES
// template names at construction time.
type SES struct {
	ses *ses.Client
	// This address must be verified with Amazon SES.
	sender    string
	templates map[string]string
}

func NewSES(awsConfig aws.Config, sender string, templates map[string]string) *SES {
	return &SES{
		ses:       ses.NewFromConfig(awsConfig),
		sender:    sender,
		templates: templates,
	}
}

func (s *SES) Send(ctx context.Context, message mail.Message) error {
	sesTemplate, ok := s.templates[message.Template]
	if !ok {
		return fmt.Errorf("unknown mail template %q", message.Template)
	}

	templateParamsBytes, err := json.Marshal(message.Params)
	if err != nil {
		return err
	}
	templateParams := string(templateParamsBytes)

	to := string(message.To)
	_, err = s.ses.SendTemplatedEmail(
		ctx,
		&ses.SendTemplatedEmailInput{
			Source: &s.sender,
			Destination: &types.Destination{
				CcAddresses: []string{},
				ToAddresses: []string{to},
			},
			Template:     &sesTemplate,
			TemplateData: &templateParams,
		},
	)
	return err
}
