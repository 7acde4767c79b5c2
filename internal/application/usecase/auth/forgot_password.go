// Package auth contains authentication-related use cases.
package auth

import (
	"context"
	"fmt"
	"log/slog"

	"github.com/driverdash/backend/internal/application/adapter"
	domainerror "github.com/driverdash/backend/internal/domain/error"
)

// resetSentMessage is returned regardless of whether the email matched an
// account, to prevent enumeration.
const resetSentMessage = "If an account with that email exists, we have sent a password reset link"

// ForgotPasswordInput represents the input for a forgot password request.
type ForgotPasswordInput struct {
	Email string
}

// ForgotPasswordOutput represents the output of a forgot password request.
type ForgotPasswordOutput struct {
	Message string
}

// ForgotPasswordUseCase handles forgot password logic.
type ForgotPasswordUseCase struct {
	userRepo          adapter.UserRepository
	resetTokenService adapter.PasswordResetTokenService
	emailSender       adapter.EmailSender
	appBaseURL        string
}

// NewForgotPasswordUseCase creates a new ForgotPasswordUseCase instance.
func NewForgotPasswordUseCase(
	userRepo adapter.UserRepository,
	resetTokenService adapter.PasswordResetTokenService,
	emailSender adapter.EmailSender,
	appBaseURL string,
) *ForgotPasswordUseCase {
	return &ForgotPasswordUseCase{
		userRepo:          userRepo,
		resetTokenService: resetTokenService,
		emailSender:       emailSender,
		appBaseURL:        appBaseURL,
	}
}

// Execute performs the forgot password request.
// Always returns success to prevent email enumeration.
func (uc *ForgotPasswordUseCase) Execute(ctx context.Context, input ForgotPasswordInput) (*ForgotPasswordOutput, error) {
	// Validate email format
	if !isValidEmail(input.Email) {
		return nil, domainerror.NewAuthError(
			domainerror.ErrCodeInvalidEmail,
			"invalid email format",
			domainerror.ErrInvalidEmail,
		)
	}

	// Try to find user by email
	user, err := uc.userRepo.FindByEmail(ctx, input.Email)
	if err != nil {
		slog.Debug("Forgot password requested for non-existent email", "email", input.Email)
		return &ForgotPasswordOutput{Message: resetSentMessage}, nil
	}

	// Generate reset token
	resetToken, err := uc.resetTokenService.GenerateResetToken(ctx, user.ID, user.Email)
	if err != nil {
		// Log but still return success to prevent enumeration
		slog.Error("Failed to generate reset token", "error", err, "userID", user.ID)
		return &ForgotPasswordOutput{Message: resetSentMessage}, nil
	}

	resetURL := fmt.Sprintf("%s/reset-password?token=%s", uc.appBaseURL, resetToken.Token)

	if uc.emailSender != nil {
		if err := uc.emailSender.SendPasswordReset(ctx, user.Email, user.Name, resetURL); err != nil {
			slog.Error("Failed to send password reset email", "error", err, "userID", user.ID)
		} else {
			slog.Info("Password reset email sent", "userID", user.ID, "email", user.Email)
		}
	} else {
		// Fallback: log for development when the email sender is not configured
		slog.Info("Password reset token generated (email sender not configured)",
			"userID", user.ID,
			"email", user.Email,
			"resetURL", resetURL,
		)
	}

	return &ForgotPasswordOutput{Message: resetSentMessage}, nil
}
