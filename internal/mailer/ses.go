package mailer

import (
	"context"
	"errors"
	"sync"

	"github.com/BerryBytes/awsaudit/internal/awserr"
	"github.com/BerryBytes/awsaudit/internal/session"
	"github.com/aws/aws-sdk-go-v2/aws"
	"github.com/aws/aws-sdk-go-v2/service/ses"
	"github.com/aws/aws-sdk-go-v2/service/ses/types"
	"github.com/rs/zerolog/log"
)

type SESAPI interface {
	SendEmail(ctx context.Context, params *ses.SendEmailInput, optFns ...func(*ses.Options)) (*ses.SendEmailOutput, error)
}

type Message struct {
	From    string
	To      []string
	Subject string
	HTML    string
}

type MailerInterface interface {
	Send(ctx context.Context, msg Message) (string, error)
}

// SESMailer sends HTML mail through SES in the configured email region.
type SESMailer struct {
	Session   session.Provider
	NewClient func(cfg aws.Config) SESAPI

	once   sync.Once
	client SESAPI
	err    error
}

var _ MailerInterface = (*SESMailer)(nil)

func NewSESMailer(p session.Provider) *SESMailer {
	return &SESMailer{
		Session: p,
		NewClient: func(cfg aws.Config) SESAPI {
			return ses.NewFromConfig(cfg)
		},
	}
}

// Send delivers msg and returns the SES message id.
func (m *SESMailer) Send(ctx context.Context, msg Message) (string, error) {
	if msg.From == "" {
		return "", errors.New("email sender address is required")
	}
	if len(msg.To) == 0 {
		return "", errors.New("at least one email recipient is required")
	}

	client, err := m.api(ctx)
	if err != nil {
		return "", err
	}

	out, err := client.SendEmail(ctx, &ses.SendEmailInput{
		Source:      aws.String(msg.From),
		Destination: &types.Destination{ToAddresses: msg.To},
		Message: &types.Message{
			Subject: &types.Content{Data: aws.String(msg.Subject)},
			Body: &types.Body{
				Html: &types.Content{Data: aws.String(msg.HTML)},
			},
		},
	})
	if err != nil {
		return "", awserr.Wrap(err, "sending report email")
	}

	id := aws.ToString(out.MessageId)
	log.Info().Str("message_id", id).Strs("to", msg.To).Str("subject", msg.Subject).Msg("report email sent")
	return id, nil
}

func (m *SESMailer) api(ctx context.Context) (SESAPI, error) {
	m.once.Do(func() {
		region := ""
		if settings := m.Session.Settings(); settings != nil {
			region = settings.Email.Region
		}
		cfg, err := m.Session.ForRegion(ctx, region)
		if err != nil {
			m.err = err
			return
		}
		m.client = m.NewClient(cfg)
	})
	return m.client, m.err
}
