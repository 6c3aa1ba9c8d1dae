package entity

import "time"

// PushToken is a device credential issued by the messaging subsystem.
type PushToken struct {
	Token     string    `json:"token"`
	UserID    string    `json:"user_id"`
	UpdatedAt time.Time `json:"updated_at"` // Stamped by the store on write.
}
