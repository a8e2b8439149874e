package services

import (
	"context"
	"fmt"

	"github.com/aws/aws-sdk-go-v2/aws"
	"github.com/aws/aws-sdk-go-v2/service/ses"
	"github.com/aws/aws-sdk-go-v2/service/ses/types"
)

type Mailer interface {
	SendWelcome(ctx context.Context, to, name string, calorieGoal int) error
}

// SESAPI is the slice of the SES client the mailer calls.
type SESAPI interface {
	SendEmail(ctx context.Context, in *ses.SendEmailInput, optFns ...func(*ses.Options)) (*ses.SendEmailOutput, error)
}

type SESMailer struct {
	client SESAPI
	from   string
}

func NewSESMailer(client SESAPI, from string) *SESMailer {
	return &SESMailer{client: client, from: from}
}

func NewSESMailerFromConfig(cfg aws.Config, from string) *SESMailer {
	return NewSESMailer(ses.NewFromConfig(cfg), from)
}

func (m *SESMailer) send(ctx context.Context, to, subject, body string) error {
	input := &ses.SendEmailInput{
		Destination: &types.Destination{
			ToAddresses: []string{to},
		},
		Message: &types.Message{
			Subject: &types.Content{Data: aws.String(subject)},
			Body: &types.Body{
				Text: &types.Content{Data: aws.String(body)},
			},
		},
		Source: aws.String(m.from),
	}

	if _, err := m.client.SendEmail(ctx, input); err != nil {
		return fmt.Errorf("email send failed: %w", err)
	}
	return nil
}

func (m *SESMailer) SendWelcome(ctx context.Context, to, name string, calorieGoal int) error {
	subject := "Welcome to HealthTrack"
	body := fmt.Sprintf("Hi %s,\n\nYour account is ready. Your daily calorie goal is %d kcal.\n\nLog your first meal to start your streak.", name, calorieGoal)
	return m.send(ctx, to, subject, body)
}
