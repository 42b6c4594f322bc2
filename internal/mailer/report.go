package mailer

import (
	"context"
	"errors"
	"fmt"

	appconfig "github.com/BerryBytes/awsaudit/internal/config"
	"github.com/BerryBytes/awsaudit/internal/report"
	"github.com/rs/zerolog/log"
)

var ErrEmailNotConfigured = errors.New("email.from and email.to must be set to send reports")

func Subject(t *report.Table) string {
	return fmt.Sprintf("%s Instances Report - %d instances running", t.Service, t.NumRows())
}

// Deliver mails every non-empty table as its own HTML message and returns
// how many were sent.
func Deliver(ctx context.Context, m MailerInterface, email appconfig.EmailConfig, tables ...*report.Table) (int, error) {
	if email.From == "" || len(email.To) == 0 {
		return 0, ErrEmailNotConfigured
	}

	sent := 0
	for _, t := range tables {
		if t == nil {
			continue
		}
		if t.NumRows() == 0 {
			log.Debug().Str("service", t.Service).Msg("skipping empty report")
			continue
		}

		body, err := report.HTML(t)
		if err != nil {
			return sent, fmt.Errorf("failed to render %s report: %w", t.Service, err)
		}

		if _, err := m.Send(ctx, Message{
			From:    email.From,
			To:      email.To,
			Subject: Subject(t),
			HTML:    body,
		}); err != nil {
			return sent, err
		}
		sent++
	}
	return sent, nil
}
