// Package clock provides a replaceable time source so generation
// timestamps can be fixed in tests.
package clock

import "time"

// Clock reports the current time.
type Clock interface {
	Now() time.Time
}

// Real is the system clock.
type Real struct{}

func (Real) Now() time.Time { return time.Now() }

// Fixed is a Clock stopped at one instant.
type Fixed struct {
	current time.Time
}

// NewFixed returns a clock stopped at t.
func NewFixed(t time.Time) *Fixed {
	return &Fixed{current: t}
}

func (c *Fixed) Now() time.Time { return c.current }
