package models

import (
	"time"
)

// TimerRecordID is the primary key of the single timer row
const TimerRecordID = 1

// TimerRecord persists the countdown so it can be resumed by a later process
type TimerRecord struct {
	ID        uint      `gorm:"primarykey" json:"id"`
	UpdatedAt time.Time `json:"updated_at"`

	RunID            string    `json:"run_id"`
	Status           string    `gorm:"not null;default:idle" json:"status"` // idle, running, finished
	PresetIndex      int       `json:"preset_index"`
	StartedAt        time.Time `json:"started_at"`
	EndsAt           time.Time `json:"ends_at"`
	NotifyOnComplete bool      `json:"notify_on_complete"`
}
