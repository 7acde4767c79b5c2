package adapters

import (
	"time"

	"github.com/driverdash/backend/internal/application/adapter"
)

// systemClock implements adapter.Clock using the wall clock in UTC.
type systemClock struct{}

// NewSystemClock creates a clock backed by time.Now.
func NewSystemClock() adapter.Clock {
	return &systemClock{}
}

// Now returns the current time in UTC.
func (systemClock) Now() time.Time {
	return time.Now().UTC()
}
