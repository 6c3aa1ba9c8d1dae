// Package entity contains the core business objects of the project.
package entity

import "time"

// OrderStatus is the fulfilment state of an order as written by the admin console.
type OrderStatus string

const (
	OrderStatusPending    OrderStatus = "pending"
	OrderStatusProcessing OrderStatus = "processing"
	OrderStatusShipped    OrderStatus = "shipped"
	OrderStatusDelivered  OrderStatus = "delivered"
	OrderStatusCancelled  OrderStatus = "cancelled"
)

// OrderStatuses lists every known status in lifecycle order.
var OrderStatuses = []OrderStatus{
	OrderStatusPending,
	OrderStatusProcessing,
	OrderStatusShipped,
	OrderStatusDelivered,
	OrderStatusCancelled,
}

// ParseOrderStatus maps a stored status string to a known status.
// Missing or unknown values fall back to pending.
func ParseOrderStatus(raw string) OrderStatus {
	status := OrderStatus(raw)
	switch status {
	case OrderStatusPending, OrderStatusProcessing, OrderStatusShipped, OrderStatusDelivered, OrderStatusCancelled:
		return status
	default:
		return OrderStatusPending
	}
}

// OrderItem is a single line of an order.
type OrderItem struct {
	ProductID string  `json:"product_id"`
	Name      string  `json:"name"`
	Image     string  `json:"image"`
	Quantity  int     `json:"quantity"`
	Price     float64 `json:"price"`
}

// Order is an immutable snapshot of a purchase as observed in one change event.
type Order struct {
	Key       string      `json:"key"`        // Storage key of the order document.
	OrderID   string      `json:"order_id"`   // Display-facing identifier shown to customers.
	UserID    string      `json:"user_id"`    // Owner of the order.
	Status    OrderStatus `json:"status"`     // Fulfilment status.
	Total     float64     `json:"total"`      // Monetary total.
	Items     []OrderItem `json:"items"`      // Ordered line items.
	CreatedAt time.Time   `json:"created_at"` // Zero when the store has not materialised the timestamp yet.
}

// DisplayID returns the identifier shown to people, falling back to the storage key.
func (o *Order) DisplayID() string {
	if o.OrderID != "" {
		return o.OrderID
	}

	return o.Key
}

// FirstImage returns the image of the first line item, if any.
func (o *Order) FirstImage() string {
	for _, item := range o.Items {
		if item.Image != "" {
			return item.Image
		}
	}

	return ""
}
