package entity

import "time"

// Subscriber is a WhatsApp notification recipient. Removal deactivates the
// record instead of deleting it.
type Subscriber struct {
	ID          int64     `json:"id"`
	PhoneNumber string    `json:"phone_number"`
	IsActive    bool      `json:"is_active"`
	CreatedAt   time.Time `json:"created_at"`
}
