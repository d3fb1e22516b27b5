package infrastructure

import (
	"context"
	"fmt"

	"github.com/rs/zerolog"
	"github.com/sendgrid/sendgrid-go"
	"github.com/sendgrid/sendgrid-go/helpers/mail"
	"golang.org/x/time/rate"
)

// Mailer delivers the password-reset link. Only the reset flow sends mail,
// so the surface stays at one method.
type Mailer interface {
	SendPasswordReset(ctx context.Context, toEmail, resetURL string) error
}

// SendGridMailer sends through the SendGrid API. Outbound sends are
// throttled so a burst of reset requests cannot drain the mail quota.
type SendGridMailer struct {
	client  *sendgrid.Client
	sender  string
	limiter *rate.Limiter
}

func NewSendGridMailer(apiKey, sender string) *SendGridMailer {
	return &SendGridMailer{
		client:  sendgrid.NewSendClient(apiKey),
		sender:  sender,
		limiter: rate.NewLimiter(rate.Limit(1), 5),
	}
}

func (m *SendGridMailer) SendPasswordReset(ctx context.Context, toEmail, resetURL string) error {
	if err := m.limiter.Wait(ctx); err != nil {
		return err
	}

	from := mail.NewEmail("Microblog", m.sender)
	to := mail.NewEmail("", toEmail)
	subject := "Reset Your Password"
	body := fmt.Sprintf("To reset your password, visit the following link:\n\n%s\n\n"+
		"If you did not request a password reset, simply ignore this message.", resetURL)

	message := mail.NewSingleEmail(from, subject, to, body, "")
	response, err := m.client.Send(message)
	if err != nil {
		return err
	}
	if response.StatusCode >= 400 {
		return fmt.Errorf("sendgrid rejected message: status %d", response.StatusCode)
	}
	return nil
}

// LogMailer stands in when no SendGrid key is configured: the reset link
// lands in the log instead of an inbox.
type LogMailer struct {
	logger zerolog.Logger
}

func NewLogMailer(logger zerolog.Logger) *LogMailer {
	return &LogMailer{logger: logger}
}

func (m *LogMailer) SendPasswordReset(_ context.Context, toEmail, resetURL string) error {
	m.logger.Info().
		Str("to", toEmail).
		Str("reset_url", resetURL).
		Msg("password reset requested (mail delivery disabled)")
	return nil
}
