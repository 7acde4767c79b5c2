// Package error defines domain-specific errors for the DriverDash application.
package error

import "errors"

// Trip domain errors.
var (
	// ErrTripNotFound is returned when a trip is not found for the requesting user.
	ErrTripNotFound = errors.New("trip not found")

	// ErrInvalidTripDate is returned when the trip date cannot be parsed.
	ErrInvalidTripDate = errors.New("invalid trip date")

	// ErrInvalidDistance is returned when distance is not a positive number.
	ErrInvalidDistance = errors.New("distance must be a positive number")

	// ErrInvalidFuelConsumption is returned when fuel consumption is not a positive number.
	ErrInvalidFuelConsumption = errors.New("fuel consumption must be a positive number")

	// ErrInvalidFuelPrice is returned when fuel price is not a positive number.
	ErrInvalidFuelPrice = errors.New("fuel price must be a positive number")

	// ErrInvalidEarnings is returned when gross earnings are not a non-negative number.
	ErrInvalidEarnings = errors.New("earnings must be a non-negative number")

	// ErrInvalidTimeOfDay is returned when a start or end time is not valid HH:MM.
	ErrInvalidTimeOfDay = errors.New("time must be in HH:MM 24-hour format")
)

// TripErrorCode defines error codes for trip errors.
// Format: TRP-XXYYYY where XX is category and YYYY is specific error.
type TripErrorCode string

const (
	// Validation errors (01XXXX)
	ErrCodeInvalidTripDate        TripErrorCode = "TRP-010001"
	ErrCodeInvalidDistance        TripErrorCode = "TRP-010002"
	ErrCodeInvalidFuelConsumption TripErrorCode = "TRP-010003"
	ErrCodeInvalidFuelPrice       TripErrorCode = "TRP-010004"
	ErrCodeInvalidEarnings        TripErrorCode = "TRP-010005"
	ErrCodeInvalidStartTime       TripErrorCode = "TRP-010006"
	ErrCodeInvalidEndTime         TripErrorCode = "TRP-010007"
	ErrCodeMissingTripFields      TripErrorCode = "TRP-010008"

	// Lookup errors (02XXXX)
	ErrCodeTripNotFound TripErrorCode = "TRP-020001"
)

// TripError represents a trip error with code and message.
type TripError struct {
	Code    TripErrorCode
	Message string
	Err     error
}

// Error implements the error interface.
func (e *TripError) Error() string {
	if e.Err != nil {
		return e.Message + ": " + e.Err.Error()
	}
	return e.Message
}

// Unwrap returns the underlying error.
func (e *TripError) Unwrap() error {
	return e.Err
}

// NewTripError creates a new TripError with the given code and message.
func NewTripError(code TripErrorCode, message string, err error) *TripError {
	return &TripError{
		Code:    code,
		Message: message,
		Err:     err,
	}
}
