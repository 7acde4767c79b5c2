package error

import "errors"

// Auth domain errors.
var (
	// ErrInvalidEmail is returned when the email format is invalid.
	ErrInvalidEmail = errors.New("invalid email format")

	// ErrWeakPassword is returned when the password does not meet minimum requirements.
	ErrWeakPassword = errors.New("password does not meet minimum requirements")

	// ErrEmailAlreadyExists is returned when registering with an email already in use.
	ErrEmailAlreadyExists = errors.New("email already exists")

	// ErrInvalidCredentials is returned when login credentials do not match.
	ErrInvalidCredentials = errors.New("invalid email or password")

	// ErrInvalidRefreshToken is returned when a refresh token is invalid or revoked.
	ErrInvalidRefreshToken = errors.New("invalid refresh token")

	// ErrInvalidResetToken is returned when a password reset token is invalid or expired.
	ErrInvalidResetToken = errors.New("invalid or expired reset token")

	// ErrUserNotFound is returned when a user is not found in the system.
	ErrUserNotFound = errors.New("user not found")
)

// AuthErrorCode defines error codes for authentication errors.
type AuthErrorCode string

const (
	ErrCodeInvalidEmail        AuthErrorCode = "AUTH-010001"
	ErrCodeWeakPassword        AuthErrorCode = "AUTH-010002"
	ErrCodeEmailExists         AuthErrorCode = "AUTH-010003"
	ErrCodeInvalidCredentials  AuthErrorCode = "AUTH-010004"
	ErrCodeInvalidRefreshToken AuthErrorCode = "AUTH-010005"
	ErrCodeInvalidResetToken   AuthErrorCode = "AUTH-010006"
	ErrCodeMissingFields       AuthErrorCode = "AUTH-010007"
	ErrCodeMissingToken        AuthErrorCode = "AUTH-020001"
	ErrCodeInvalidToken        AuthErrorCode = "AUTH-020002"
	ErrCodeRateLimited         AuthErrorCode = "AUTH-030001"
)

// AuthError represents an authentication error with code and message.
type AuthError struct {
	Code    AuthErrorCode
	Message string
	Err     error
}

// Error implements the error interface.
func (e *AuthError) Error() string {
	if e.Err != nil {
		return e.Message + ": " + e.Err.Error()
	}
	return e.Message
}

// Unwrap returns the underlying error.
func (e *AuthError) Unwrap() error {
	return e.Err
}

// NewAuthError creates a new AuthError with the given code and message.
func NewAuthError(code AuthErrorCode, message string, err error) *AuthError {
	return &AuthError{
		Code:    code,
		Message: message,
		Err:     err,
	}
}
