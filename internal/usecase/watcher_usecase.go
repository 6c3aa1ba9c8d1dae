package usecase

import (
	"context"
)

// Watcher is a long-lived subscription that reacts to change events.
type Watcher interface {
	// Name identifies the watcher in logs.
	Name() string

	// Run blocks until ctx is cancelled or the underlying stream fails.
	Run(ctx context.Context) error
}
