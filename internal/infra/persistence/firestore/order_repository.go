package firestore

import (
	"context"

	"elevenstore/config"
	"elevenstore/internal/domain/entity"
	"elevenstore/internal/domain/repository"

	"cloud.google.com/go/firestore"
)

const createdAtField = "createdAt"

type orderRepository struct {
	client     *firestore.Client
	collection string
}

// NewOrderRepository creates an order repository over the configured collection
func NewOrderRepository(client *firestore.Client, cfg *config.Config) repository.OrderRepository {
	return &orderRepository{
		client:     client,
		collection: cfg.Collections.Orders,
	}
}

// WatchUserOrders streams the orders whose userId matches
func (r *orderRepository) WatchUserOrders(ctx context.Context, userID string, handle repository.OrderChangeHandler) error {
	q := r.client.Collection(r.collection).Where("userId", "==", userID)

	return watchQuery(ctx, q, orderHandler(handle))
}

// WatchLatestOrders streams the newest orders by creation time
func (r *orderRepository) WatchLatestOrders(ctx context.Context, limit int, handle repository.OrderChangeHandler) error {
	q := r.client.Collection(r.collection).OrderBy(createdAtField, firestore.Desc).Limit(limit)

	return watchQuery(ctx, q, orderHandler(handle))
}

func orderHandler(handle repository.OrderChangeHandler) func(context.Context, entity.ChangeKind, *firestore.DocumentSnapshot) {
	return func(ctx context.Context, kind entity.ChangeKind, doc *firestore.DocumentSnapshot) {
		handle(ctx, entity.Change[*entity.Order]{
			Kind:   kind,
			Record: orderFromData(doc.Ref.ID, doc.Data()),
		})
	}
}

func orderFromData(key string, data map[string]any) *entity.Order {
	order := &entity.Order{
		Key:       key,
		OrderID:   stringField(data, "orderId"),
		UserID:    stringField(data, "userId"),
		Status:    entity.ParseOrderStatus(stringField(data, "status")),
		Total:     floatField(data, "total"),
		CreatedAt: timeField(data, createdAtField),
	}

	for _, item := range mapSlice(data, "items") {
		order.Items = append(order.Items, entity.OrderItem{
			ProductID: stringField(item, "productId"),
			Name:      stringField(item, "name"),
			Image:     stringField(item, "image"),
			Quantity:  intField(item, "quantity"),
			Price:     floatField(item, "price"),
		})
	}

	return order
}
