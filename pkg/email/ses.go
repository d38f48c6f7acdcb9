package email

import (
	"context"
	"errors"
	"fmt"

	"github.com/aws/aws-sdk-go-v2/aws"
	awsconfig "github.com/aws/aws-sdk-go-v2/config"
	"github.com/aws/aws-sdk-go-v2/service/ses"
	"github.com/aws/aws-sdk-go-v2/service/ses/types"
)

// SESAPI is the subset of the SES client the transport calls
type SESAPI interface {
	SendEmail(ctx context.Context, params *ses.SendEmailInput, optFns ...func(*ses.Options)) (*ses.SendEmailOutput, error)
	GetAccountSendingEnabled(ctx context.Context, params *ses.GetAccountSendingEnabledInput, optFns ...func(*ses.Options)) (*ses.GetAccountSendingEnabledOutput, error)
}

// ErrSESSendingDisabled is returned by Verify when the account cannot send
var ErrSESSendingDisabled = errors.New("SES sending is disabled for this account")

// SESTransport delivers mail through Amazon SES
type SESTransport struct {
	client SESAPI
}

func NewSESTransport(client SESAPI) *SESTransport {
	return &SESTransport{client: client}
}

// NewSESTransportForRegion loads the default AWS credential chain for region
func NewSESTransportForRegion(ctx context.Context, region string) (*SESTransport, error) {
	awsCfg, err := awsconfig.LoadDefaultConfig(ctx, awsconfig.WithRegion(region))
	if err != nil {
		return nil, fmt.Errorf("failed to load AWS config: %w", err)
	}
	return NewSESTransport(ses.NewFromConfig(awsCfg)), nil
}

// Verify confirms the credentials work and the account may send
func (t *SESTransport) Verify(ctx context.Context) error {
	out, err := t.client.GetAccountSendingEnabled(ctx, &ses.GetAccountSendingEnabledInput{})
	if err != nil {
		return fmt.Errorf("SES account check failed: %w", err)
	}
	if !out.Enabled {
		return ErrSESSendingDisabled
	}
	return nil
}

func (t *SESTransport) Send(ctx context.Context, msg *Message) error {
	if err := msg.validate(); err != nil {
		return err
	}

	body := &types.Body{
		Text: &types.Content{
			Data:    aws.String(msg.TextBody),
			Charset: aws.String("UTF-8"),
		},
	}
	if msg.HTMLBody != "" {
		body.Html = &types.Content{
			Data:    aws.String(msg.HTMLBody),
			Charset: aws.String("UTF-8"),
		}
	}

	input := &ses.SendEmailInput{
		Source:      aws.String(msg.From),
		Destination: &types.Destination{ToAddresses: []string{msg.To}},
		Message: &types.Message{
			Subject: &types.Content{
				Data:    aws.String(headerValue(msg.Subject)),
				Charset: aws.String("UTF-8"),
			},
			Body: body,
		},
	}
	if msg.ReplyTo != "" {
		input.ReplyToAddresses = []string{msg.ReplyTo}
	}

	if _, err := t.client.SendEmail(ctx, input); err != nil {
		return fmt.Errorf("SES send email failed: %w", err)
	}
	return nil
}
