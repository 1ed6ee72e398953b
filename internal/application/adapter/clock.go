// Package adapter defines interfaces that will be implemented in the integration layer.
package adapter

import "time"

// Clock supplies the current time so that calendar-dependent logic stays
// testable.
type Clock interface {
	Now() time.Time
}
