package repository

import (
	"context"

	"elevenstore/internal/domain/entity"
)

// PromotionChangeHandler receives announcement changes.
type PromotionChangeHandler func(ctx context.Context, change entity.Change[*entity.Promotion])

// PromotionRepository defines live queries over the shared announcement feed.
type PromotionRepository interface {
	// WatchLatestPromotions streams changes to the newest announcements by creation time.
	WatchLatestPromotions(ctx context.Context, limit int, handle PromotionChangeHandler) error
}
