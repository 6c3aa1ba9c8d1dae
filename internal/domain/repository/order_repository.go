// Package repository defines the interfaces for the persistence layer.
package repository

import (
	"context"

	"elevenstore/internal/domain/entity"
)

// OrderChangeHandler receives order changes in the order the store delivers them.
type OrderChangeHandler func(ctx context.Context, change entity.Change[*entity.Order])

// OrderRepository defines live queries over the orders collection.
// Watch methods block until ctx is cancelled (returning nil) or the stream fails.
type OrderRepository interface {
	// WatchUserOrders streams changes to the orders owned by userID.
	WatchUserOrders(ctx context.Context, userID string, handle OrderChangeHandler) error

	// WatchLatestOrders streams changes to the newest orders by creation time.
	WatchLatestOrders(ctx context.Context, limit int, handle OrderChangeHandler) error
}
