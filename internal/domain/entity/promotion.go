package entity

import "time"

// Promotion is a broadcast announcement shared by every storefront session.
type Promotion struct {
	Key       string    `json:"key"`
	Title     string    `json:"title"`
	Body      string    `json:"body"`
	Image     string    `json:"image"`
	Type      string    `json:"type"`
	CreatedAt time.Time `json:"created_at"`
}
