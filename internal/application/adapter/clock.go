package adapter

import "time"

// Clock supplies the current time. Period boundaries are always computed from
// an injected clock so that "today" is controllable in tests.
type Clock interface {
	Now() time.Time
}
