package adapter

import "context"

// EmailSender defines the interface for sending transactional email.
type EmailSender interface {
	// SendPasswordReset sends a password reset email with the given reset link.
	SendPasswordReset(ctx context.Context, toEmail, toName, resetURL string) error
}
