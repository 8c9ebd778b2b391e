// Package policy holds the plain configuration objects commands carry:
// priorities, consistency, timeouts, and retry behavior. Policies are data,
// not machinery; constructors fill in server-matching defaults and Validate
// methods catch out-of-range values before a command ships.
package policy

import "time"

// Priority of a command relative to other commands on the server.
type Priority int

const (
	// PriorityDefault defers to the server's configured default.
	PriorityDefault Priority = iota
	PriorityLow
	PriorityMedium
	PriorityHigh
)

// ConsistencyLevel is how many replicas must respond before a read is
// considered consistent.
type ConsistencyLevel int

const (
	// ConsistencyOne involves a single replica.
	ConsistencyOne ConsistencyLevel = iota
	// ConsistencyAll involves every replica.
	ConsistencyAll
)

// BasePolicy carries the knobs shared by all command kinds.
type BasePolicy struct {
	Priority         Priority
	ConsistencyLevel ConsistencyLevel

	// Timeout bounds one command end to end, retries included. Zero means
	// no limit.
	Timeout time.Duration

	// MaxRetries is the number of attempts after the first.
	MaxRetries int

	// SleepBetweenRetries is the pause before each retry.
	SleepBetweenRetries time.Duration
}

// NewBasePolicy returns a BasePolicy with the default timeout and retry
// behavior.
func NewBasePolicy() BasePolicy {
	return BasePolicy{
		Priority:            PriorityDefault,
		ConsistencyLevel:    ConsistencyOne,
		Timeout:             30 * time.Second,
		MaxRetries:          2,
		SleepBetweenRetries: 500 * time.Millisecond,
	}
}
