// Package mailer delivers voucher codes by SMTP. Not part of the sync core:
// it only ever consumes cached voucher records handed to it.
package mailer

import (
	"context"

	"github.com/wneessen/go-mail"

	"voucher-hub/internal/domain/voucher"
	"voucher-hub/internal/pkg/config"
	"voucher-hub/internal/pkg/errs"
	"voucher-hub/internal/pkg/format"
)

type Mailer interface {
	SendVoucher(ctx context.Context, to string, v voucher.Voucher, language string) error
}

type smtpMailer struct {
	cfg config.SMTPConfig
}

func NewMailer(cfg config.SMTPConfig) Mailer {
	return &smtpMailer{cfg: cfg}
}

func (m *smtpMailer) SendVoucher(ctx context.Context, to string, v voucher.Voucher, language string) error {
	if !m.cfg.Enabled() {
		return errs.ErrMailerDisabled
	}

	msg := mail.NewMsg()
	if err := msg.From(m.cfg.From); err != nil {
		return errs.Wrap(err, "invalid sender address")
	}
	if err := msg.To(to); err != nil {
		return errs.Wrap(err, "invalid recipient address")
	}

	subject, body := render(v, language)
	msg.Subject(subject)
	msg.SetBodyString(mail.TypeTextPlain, body)

	opts := []mail.Option{
		mail.WithPort(m.cfg.Port),
		mail.WithTLSPolicy(mail.TLSOpportunistic),
	}
	if m.cfg.Username != "" {
		opts = append(opts,
			mail.WithSMTPAuth(mail.SMTPAuthPlain),
			mail.WithUsername(m.cfg.Username),
			mail.WithPassword(m.cfg.Password),
		)
	}

	client, err := mail.NewClient(m.cfg.Host, opts...)
	if err != nil {
		return errs.Wrap(err, "create smtp client")
	}
	if err := client.DialAndSendWithContext(ctx, msg); err != nil {
		return errs.Wrap(err, "send voucher mail")
	}
	return nil
}

// render builds the localized subject and plain-text body. Unknown language
// codes fall back to English.
func render(v voucher.Voucher, language string) (string, string) {
	type text struct {
		subject, code, valid string
	}
	texts := map[string]text{
		"en": {"Your WiFi voucher", "Voucher code", "Valid for"},
		"nl": {"Jouw WiFi voucher", "Vouchercode", "Geldig voor"},
		"de": {"Dein WLAN-Gutschein", "Gutscheincode", "Gueltig fuer"},
		"fr": {"Votre bon WiFi", "Code du bon", "Valable pour"},
	}
	t, ok := texts[language]
	if !ok {
		t = texts["en"]
	}

	body := t.code + ": " + v.DisplayCode() + "\n" +
		t.valid + ": " + format.Duration(v.Duration) + "\n"
	return t.subject, body
}
