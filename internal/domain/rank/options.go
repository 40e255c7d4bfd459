// Package rank implements the ranking strategies over a candidate
// list.
package rank

import "time"

// Option applies a configuration option to the Engine.
type Option func(*Engine)

// WithClock sets the time source used for the trending window.
func WithClock(now func() time.Time) Option {
	return func(e *Engine) {
		if now != nil {
			e.now = now
		}
	}
}
