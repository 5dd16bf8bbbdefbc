package models

// Settings holds the dashboard preferences. They are kept in memory and
// mirrored to Redis when a client is configured.
type Settings struct {
	Theme                string `json:"theme"` // "light" or "dark"
	NotificationsEnabled bool   `json:"notifications_enabled"`
}

func DefaultSettings() Settings {
	return Settings{Theme: "light", NotificationsEnabled: true}
}
