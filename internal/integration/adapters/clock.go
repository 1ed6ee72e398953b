// Package adapters provides concrete implementations of application adapters.
package adapters

import (
	"time"

	"github.com/pockets-tracker/backend/internal/application/adapter"
)

// systemClock implements adapter.Clock using the wall clock.
type systemClock struct{}

// NewSystemClock creates a Clock backed by time.Now.
func NewSystemClock() adapter.Clock {
	return systemClock{}
}

// Now returns the current local time.
func (systemClock) Now() time.Time {
	return time.Now()
}
