package models

import "time"

// Run outcomes
const (
	OutcomeCompleted = "completed"
	OutcomeCancelled = "cancelled"
)

// Run is one countdown in the history
type Run struct {
	ID        uint      `gorm:"primarykey" json:"id"`
	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`

	RunID       string     `gorm:"uniqueIndex;not null" json:"run_id"`
	PresetIndex int        `json:"preset_index"`
	PresetLabel string     `json:"preset_label"`
	StartedAt   time.Time  `gorm:"not null" json:"started_at"`
	EndsAt      time.Time  `gorm:"not null" json:"ends_at"`
	FinishedAt  *time.Time `json:"finished_at"`
	Outcome     string     `json:"outcome"` // completed, cancelled
}

// Waited returns how long the user actually waited
func (r Run) Waited() time.Duration {
	if r.FinishedAt == nil {
		return 0
	}
	return r.FinishedAt.Sub(r.StartedAt)
}
