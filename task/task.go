// Package task polls the status of long-running server jobs: secondary
// index builds and UDF module registrations. Cluster access stays behind
// the InfoClient interface; this package only issues info commands and
// interprets their responses.
package task

import (
	"context"
	"errors"
	"log/slog"
	"time"
)

// ErrNotFound is returned when the server no longer knows the task.
var ErrNotFound = errors.New("task: not found")

// Status of a server task.
type Status int

const (
	// StatusNotFound means the server has no record of the task.
	StatusNotFound Status = iota
	// StatusInProgress means the task is still running.
	StatusInProgress
	// StatusComplete means the task finished.
	StatusComplete
)

func (s Status) String() string {
	switch s {
	case StatusNotFound:
		return "not found"
	case StatusInProgress:
		return "in progress"
	case StatusComplete:
		return "complete"
	default:
		return "unknown"
	}
}

// InfoClient issues info commands against the cluster and returns one
// response per command. The connection layer implements it.
type InfoClient interface {
	RequestInfo(ctx context.Context, commands ...string) (map[string]string, error)
}

// Task is one pollable server job.
type Task interface {
	// QueryStatus asks the server where the task stands.
	QueryStatus(ctx context.Context) (Status, error)
}

type config struct {
	pollInterval time.Duration
}

// Option adjusts how WaitForCompletion polls.
type Option func(*config)

// WithPollInterval sets the delay between status queries.
func WithPollInterval(d time.Duration) Option {
	return func(c *config) { c.pollInterval = d }
}

// WaitForCompletion polls t until it completes, the server forgets it, or
// ctx ends. The first poll happens after a full interval so a freshly
// started task has a chance to register. Transient query errors are logged
// and retried; ctx bounds the total wait.
func WaitForCompletion(ctx context.Context, t Task, opts ...Option) error {
	cfg := config{pollInterval: 100 * time.Millisecond}
	for _, opt := range opts {
		opt(&cfg)
	}

	ticker := time.NewTicker(cfg.pollInterval)
	defer ticker.Stop()

	for {
		select {
		case <-ctx.Done():
			return ctx.Err()
		case <-ticker.C:
		}

		status, err := t.QueryStatus(ctx)
		if err != nil {
			slog.Error("task status query failed", "error", err)
			continue
		}
		switch status {
		case StatusComplete:
			return nil
		case StatusNotFound:
			return ErrNotFound
		}
	}
}
