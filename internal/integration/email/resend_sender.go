// Package email provides transactional email sending via Resend.
package email

import (
	"context"
	"fmt"

	"github.com/resend/resend-go/v2"
)

// ResendSender implements the adapter.EmailSender interface using Resend.
type ResendSender struct {
	client    *resend.Client
	fromName  string
	fromEmail string
}

// NewResendSender creates a new Resend-backed email sender.
func NewResendSender(apiKey, fromName, fromEmail string) *ResendSender {
	return &ResendSender{
		client:    resend.NewClient(apiKey),
		fromName:  fromName,
		fromEmail: fromEmail,
	}
}

// SendPasswordReset sends a password reset email with the given reset link.
func (s *ResendSender) SendPasswordReset(ctx context.Context, toEmail, toName, resetURL string) error {
	from := fmt.Sprintf("%s <%s>", s.fromName, s.fromEmail)

	params := &resend.SendEmailRequest{
		From:    from,
		To:      []string{toEmail},
		Subject: "Reset your DriverDash password",
		Html:    passwordResetHTML(toName, resetURL),
		Text:    passwordResetText(toName, resetURL),
	}

	if _, err := s.client.Emails.SendWithContext(ctx, params); err != nil {
		return fmt.Errorf("failed to send password reset email: %w", err)
	}
	return nil
}

func passwordResetHTML(name, resetURL string) string {
	return fmt.Sprintf(`<p>Hi %s,</p>
<p>We received a request to reset your DriverDash password. Click the link
below to choose a new one. The link expires in 1 hour.</p>
<p><a href="%s">Reset password</a></p>
<p>If you did not request this, you can safely ignore this email.</p>`, name, resetURL)
}

func passwordResetText(name, resetURL string) string {
	return fmt.Sprintf(`Hi %s,

We received a request to reset your DriverDash password. Open the link below
to choose a new one. The link expires in 1 hour.

%s

If you did not request this, you can safely ignore this email.`, name, resetURL)
}
