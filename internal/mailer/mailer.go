package mailer

import (
	"context"
	"log/slog"

	"github.com/nicklasfangerfisk/Smartbuy-backoffice-sub003/internal/config"
)

type Service interface {
	Send(ctx context.Context, e Email) error
}

type Email struct {
	FromName string // optional: "Smartbuy"
	From     string // required: "no-reply@local.test"

	To  []string
	Cc  []string
	Bcc []string

	Subject string

	TextBody string
	HTMLBody string

	Headers map[string]string // optional extra headers
}

func (e Email) AllRecipients() []string {
	out := make([]string, 0, len(e.To)+len(e.Cc)+len(e.Bcc))
	out = append(out, e.To...)
	out = append(out, e.Cc...)
	out = append(out, e.Bcc...)
	return out
}

// FromConfig picks the outbound path: SendGrid when its config is complete,
// SMTP when a host is set (MailHog in dev), else a logging no-op so the rest
// of the app never cares whether email is wired up.
func FromConfig(cfg config.Config, logger *slog.Logger) Service {
	switch {
	case cfg.SendGrid.Configured():
		return NewSendGrid(cfg.SendGrid)
	case cfg.SMTP.Host != "":
		return NewSMTPMailer(cfg.SMTP)
	default:
		return &logOnly{logger: logger}
	}
}

type logOnly struct{ logger *slog.Logger }

func (l *logOnly) Send(ctx context.Context, e Email) error {
	l.logger.Info("email not configured, dropping message",
		"to", e.To, "subject", e.Subject)
	return nil
}
