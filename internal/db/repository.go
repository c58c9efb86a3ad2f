package db

import (
	"github.com/sliicy/meatdairy/internal/models"
	"github.com/sliicy/meatdairy/internal/timer"
)

// Repository exposes the package-level services as a value the app layer can depend on
type Repository struct{}

// LoadPreferences returns the saved preferences
func (Repository) LoadPreferences() (*models.Preferences, error) {
	return LoadPreferences()
}

// SavePreferences writes both preference values
func (Repository) SavePreferences(selectedPresetIndex int, notifyOnComplete bool) error {
	_, err := SavePreferences(selectedPresetIndex, notifyOnComplete)
	return err
}

// LoadTimer returns the persisted countdown snapshot, or nil when none was saved
func (Repository) LoadTimer() (*timer.Snapshot, error) {
	record, err := LoadTimer()
	if err != nil || record == nil {
		return nil, err
	}
	snap, err := SnapshotFromRecord(record)
	if err != nil {
		return nil, err
	}
	return &snap, nil
}

// SaveTimer persists a countdown snapshot. Idle snapshots clear the row.
func (Repository) SaveTimer(snap timer.Snapshot) error {
	if snap.Status == timer.StatusIdle {
		return ClearTimer()
	}
	return SaveTimer(RecordFromSnapshot(snap))
}

// RecordRun stores a history row
func (Repository) RecordRun(run *models.Run) error {
	return RecordRun(run)
}

// RecordFromSnapshot converts a controller snapshot into its table row
func RecordFromSnapshot(snap timer.Snapshot) *models.TimerRecord {
	return &models.TimerRecord{
		ID:               models.TimerRecordID,
		RunID:            snap.RunID,
		Status:           snap.Status.String(),
		PresetIndex:      snap.PresetIndex,
		StartedAt:        snap.StartedAt,
		EndsAt:           snap.EndsAt,
		NotifyOnComplete: snap.NotifyOnComplete,
	}
}

// SnapshotFromRecord converts a table row back into a controller snapshot
func SnapshotFromRecord(record *models.TimerRecord) (timer.Snapshot, error) {
	status, err := timer.ParseStatus(record.Status)
	if err != nil {
		return timer.Snapshot{}, err
	}
	return timer.Snapshot{
		Status:           status,
		RunID:            record.RunID,
		PresetIndex:      record.PresetIndex,
		StartedAt:        record.StartedAt,
		EndsAt:           record.EndsAt,
		NotifyOnComplete: record.NotifyOnComplete,
	}, nil
}
