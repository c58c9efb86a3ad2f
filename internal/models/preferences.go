package models

import (
	"time"
)

// PreferencesID is the primary key of the single preferences row
const PreferencesID = 1

// Preferences holds the user's last choices
type Preferences struct {
	ID        uint      `gorm:"primarykey" json:"id"`
	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`

	SelectedPresetIndex int  `gorm:"not null;default:0" json:"selected_preset_index"`
	NotifyOnComplete    bool `gorm:"not null;default:false" json:"notify_on_complete"`
}
