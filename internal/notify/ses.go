// internal/notify/ses.go
// Package notify delivers generated resumes by email.
package notify

import (
	"context"
	"fmt"

	"github.com/aws/aws-sdk-go-v2/aws"
	awsconfig "github.com/aws/aws-sdk-go-v2/config"
	"github.com/aws/aws-sdk-go-v2/service/ses"
	"github.com/aws/aws-sdk-go-v2/service/ses/types"

	"skillmatch/internal/common/logger"
)

// Mailer sends one email. Satisfied by the SES client; tests substitute a
// recorder.
type Mailer interface {
	SendEmail(ctx context.Context, input *ses.SendEmailInput) (*ses.SendEmailOutput, error)
}

// SESMailer is the production Mailer backed by AWS SES.
type SESMailer struct {
	client *ses.Client
}

func NewSESMailer(ctx context.Context, region string) (*SESMailer, error) {
	cfg, err := awsconfig.LoadDefaultConfig(ctx, awsconfig.WithRegion(region))
	if err != nil {
		return nil, err
	}
	return &SESMailer{client: ses.NewFromConfig(cfg)}, nil
}

func (m *SESMailer) SendEmail(ctx context.Context, input *ses.SendEmailInput) (*ses.SendEmailOutput, error) {
	return m.client.SendEmail(ctx, input)
}

// ResumeMailer emails resume text to the candidate. Delivery is best-effort:
// a failure is logged and returned, but callers still hand the resume back in
// the response.
type ResumeMailer struct {
	mailer Mailer
	from   string
	logger logger.Logger
}

func NewResumeMailer(mailer Mailer, from string, log logger.Logger) *ResumeMailer {
	return &ResumeMailer{
		mailer: mailer,
		from:   from,
		logger: log.WithFields(map[string]interface{}{"component": "resume-mailer"}),
	}
}

func (r *ResumeMailer) Send(ctx context.Context, to, role, resumeText string) error {
	if r.mailer == nil {
		return fmt.Errorf("email delivery not configured")
	}

	subject := fmt.Sprintf("Your resume draft for %s", role)
	_, err := r.mailer.SendEmail(ctx, &ses.SendEmailInput{
		Source:      aws.String(r.from),
		Destination: &types.Destination{ToAddresses: []string{to}},
		Message: &types.Message{
			Subject: &types.Content{Data: aws.String(subject)},
			Body: &types.Body{
				Text: &types.Content{Data: aws.String(resumeText)},
			},
		},
	})
	if err != nil {
		r.logger.Error("resume email failed", map[string]interface{}{
			"to":    to,
			"error": err.Error(),
		})
		return err
	}

	r.logger.Info("resume emailed", map[string]interface{}{"to": to})
	return nil
}
