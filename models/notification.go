package models

import "time"

// Notification is an in-app reminder shown on the dashboard. Notifications
// live in memory only and are not persisted across restarts.
type Notification struct {
	ID        string    `json:"id"`
	Message   string    `json:"message"`
	CreatedAt time.Time `json:"created_at"`
	Read      bool      `json:"read"`
}
