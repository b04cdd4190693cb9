// Package mail delivers credential messages over SMTP.
package mail

import (
	"context"
	"crypto/tls"
	"fmt"
	"log/slog"

	"go.uber.org/fx"
	"gopkg.in/gomail.v2"

	"winespa/config"
	"winespa/internal/domain/service"
	"winespa/internal/errors"
)

const (
	subjectTemporaryPassword = "Tu contraseña temporal de Winespa"
	subjectPasswordChanged   = "Tu contraseña de Winespa fue cambiada"
)

// sender is the part of gomail.Dialer the notifier needs.
type sender interface {
	DialAndSend(m ...*gomail.Message) error
}

type smtpNotifier struct {
	from     string
	fromName string
	sender   sender
	logger   *slog.Logger
}

// NotifierParams holds dependencies for the CredentialNotifier, injected by Fx
type NotifierParams struct {
	fx.In

	Config *config.Config
	Logger *slog.Logger
}

// NewCredentialNotifier builds an SMTP notifier, or a disabled one when no mailer is configured.
func NewCredentialNotifier(params NotifierParams) service.CredentialNotifier {
	cfg := params.Config.Mailer
	if cfg == nil || cfg.Host == "" {
		params.Logger.Warn("Mailer not configured, credential messages will not be delivered")

		return &disabledNotifier{logger: params.Logger}
	}

	dialer := gomail.NewDialer(cfg.Host, cfg.Port, cfg.Login, cfg.Password)
	dialer.TLSConfig = &tls.Config{
		ServerName: cfg.Host,
		MinVersion: tls.VersionTLS12,
	}

	return newSMTPNotifier(cfg.From, cfg.FromName, dialer, params.Logger)
}

func newSMTPNotifier(from, fromName string, s sender, logger *slog.Logger) *smtpNotifier {
	return &smtpNotifier{
		from:     from,
		fromName: fromName,
		sender:   s,
		logger:   logger,
	}
}

// SendTemporaryPassword mails the plaintext once. It is never retried here.
func (n *smtpNotifier) SendTemporaryPassword(ctx context.Context, email, fullName, plaintext string) error {
	body := fmt.Sprintf(
		"Hola %s,\n\nSe generó una contraseña temporal para tu cuenta: %s\n\n"+
			"Deberás cambiarla la próxima vez que ingreses.\n",
		fullName, plaintext,
	)

	if err := n.send(email, subjectTemporaryPassword, body); err != nil {
		return errors.Wrap(err, "failed to deliver temporary password")
	}

	n.logger.InfoContext(ctx, "Temporary password delivered", slog.String("email", email))

	return nil
}

// SendPasswordChanged notifies the holder that the password was changed.
func (n *smtpNotifier) SendPasswordChanged(ctx context.Context, email, fullName string) error {
	body := fmt.Sprintf(
		"Hola %s,\n\nLa contraseña de tu cuenta fue cambiada. "+
			"Si no fuiste tú, comunícate con el salón de inmediato.\n",
		fullName,
	)

	if err := n.send(email, subjectPasswordChanged, body); err != nil {
		return errors.Wrap(err, "failed to deliver password change notice")
	}

	n.logger.InfoContext(ctx, "Password change notice delivered", slog.String("email", email))

	return nil
}

func (n *smtpNotifier) send(recipient, subject, body string) error {
	msg := gomail.NewMessage(
		gomail.SetCharset("UTF-8"),
		gomail.SetEncoding(gomail.Base64),
	)

	msg.SetAddressHeader("From", n.from, n.fromName)
	msg.SetHeader("To", recipient)
	msg.SetHeader("Subject", subject)
	msg.SetBody("text/plain", body)

	return errors.WithStack(n.sender.DialAndSend(msg))
}

// disabledNotifier reports every delivery as failed so callers surface it.
type disabledNotifier struct {
	logger *slog.Logger
}

// ErrMailerDisabled is returned when no SMTP server is configured.
var ErrMailerDisabled = errors.New("mailer is not configured")

func (n *disabledNotifier) SendTemporaryPassword(ctx context.Context, email, _, _ string) error {
	n.logger.WarnContext(ctx, "Temporary password not delivered, mailer disabled", slog.String("email", email))

	return ErrMailerDisabled
}

func (n *disabledNotifier) SendPasswordChanged(ctx context.Context, email, _ string) error {
	n.logger.WarnContext(ctx, "Password change notice not delivered, mailer disabled", slog.String("email", email))

	return ErrMailerDisabled
}
