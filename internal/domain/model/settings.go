package model

import "time"

// StoreSettings is the versioned configuration of one store location.
// Only one version per location is active at a time.
type StoreSettings struct {
	LocationID string      `json:"location_id"`
	Name       string      `json:"name"`
	Delivery   FeeConfig   `json:"delivery"`
	Hours      WeeklyHours `json:"hours"`
	Version    int         `json:"version"`
	Active     bool        `json:"active"`
	CreatedAt  time.Time   `json:"created_at"`
	UpdatedAt  time.Time   `json:"updated_at"`
	UpdatedBy  string      `json:"updated_by,omitempty"`
}

// SettingsUpdate carries the fields to change in a location's settings.
// Nil fields keep their current value.
type SettingsUpdate struct {
	Name     *string
	Delivery *FeeConfig
	Hours    WeeklyHours
}
