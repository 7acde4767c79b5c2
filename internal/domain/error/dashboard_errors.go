package error

import "errors"

// Dashboard domain errors.
var (
	// ErrInvalidPeriod is returned when the requested period preset is unknown.
	ErrInvalidPeriod = errors.New("invalid period")

	// ErrInvalidDateRange is returned when a range's end date precedes its start date.
	ErrInvalidDateRange = errors.New("end date must not be before start date")
)

// DashboardErrorCode defines error codes for dashboard errors.
type DashboardErrorCode string

const (
	ErrCodeInvalidPeriod    DashboardErrorCode = "DSH-010001"
	ErrCodeInvalidDateRange DashboardErrorCode = "DSH-010002"
)

// DashboardError represents a dashboard error with code and message.
type DashboardError struct {
	Code    DashboardErrorCode
	Message string
	Err     error
}

// Error implements the error interface.
func (e *DashboardError) Error() string {
	if e.Err != nil {
		return e.Message + ": " + e.Err.Error()
	}
	return e.Message
}

// Unwrap returns the underlying error.
func (e *DashboardError) Unwrap() error {
	return e.Err
}

// NewDashboardError creates a new DashboardError with the given code and message.
func NewDashboardError(code DashboardErrorCode, message string, err error) *DashboardError {
	return &DashboardError{
		Code:    code,
		Message: message,
		Err:     err,
	}
}
