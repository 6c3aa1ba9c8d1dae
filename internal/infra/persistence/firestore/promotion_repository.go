package firestore

import (
	"context"

	"elevenstore/config"
	"elevenstore/internal/domain/entity"
	"elevenstore/internal/domain/repository"

	"cloud.google.com/go/firestore"
)

type promotionRepository struct {
	client     *firestore.Client
	collection string
}

// NewPromotionRepository creates a repository over the shared announcement collection
func NewPromotionRepository(client *firestore.Client, cfg *config.Config) repository.PromotionRepository {
	return &promotionRepository{
		client:     client,
		collection: cfg.Collections.Notifications,
	}
}

func (r *promotionRepository) WatchLatestPromotions(ctx context.Context, limit int, handle repository.PromotionChangeHandler) error {
	q := r.client.Collection(r.collection).OrderBy(createdAtField, firestore.Desc).Limit(limit)

	return watchQuery(ctx, q, func(ctx context.Context, kind entity.ChangeKind, doc *firestore.DocumentSnapshot) {
		handle(ctx, entity.Change[*entity.Promotion]{
			Kind:   kind,
			Record: promotionFromData(doc.Ref.ID, doc.Data()),
		})
	})
}

func promotionFromData(key string, data map[string]any) *entity.Promotion {
	return &entity.Promotion{
		Key:       key,
		Title:     stringField(data, "title"),
		Body:      stringField(data, "body"),
		Image:     stringField(data, "image"),
		Type:      stringField(data, "type"),
		CreatedAt: timeField(data, createdAtField),
	}
}
