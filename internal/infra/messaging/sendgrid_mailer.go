package messaging

import (
	"context"
	"fmt"
	"html"
	"log/slog"

	"github.com/sendgrid/sendgrid-go"
	"github.com/sendgrid/sendgrid-go/helpers/mail"
)

type SendGridMailer struct {
	client   *sendgrid.Client
	from     string
	fromName string
}

func NewSendGridMailer(apiKey, from, fromName string) *SendGridMailer {
	return &SendGridMailer{
		client:   sendgrid.NewSendClient(apiKey),
		from:     from,
		fromName: fromName,
	}
}

func (m *SendGridMailer) Send(ctx context.Context, to, toName, subject, body string) error {
	if to == "" {
		return fmt.Errorf("to address is empty")
	}

	message := mail.NewSingleEmail(
		mail.NewEmail(m.fromName, m.from),
		subject,
		mail.NewEmail(toName, to),
		body,
		fmt.Sprintf("<pre>%s</pre>", html.EscapeString(body)),
	)

	response, err := m.client.SendWithContext(ctx, message)
	if err != nil {
		return fmt.Errorf("sendgrid send error: %w", err)
	}
	if response.StatusCode >= 400 {
		return fmt.Errorf("sendgrid send failed: status=%d, body=%s", response.StatusCode, response.Body)
	}

	slog.Debug("order confirmation sent", "status", response.StatusCode, "subject", subject)
	return nil
}
