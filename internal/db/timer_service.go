package db

import (
	"errors"

	"gorm.io/gorm"

	"github.com/sliicy/meatdairy/internal/models"
)

// LoadTimer returns the persisted countdown, if any
func LoadTimer() (*models.TimerRecord, error) {
	var record models.TimerRecord

	err := DB.First(&record, models.TimerRecordID).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, nil // No saved countdown is not an error
	}
	if err != nil {
		return nil, err
	}

	return &record, nil
}

// SaveTimer overwrites the persisted countdown
func SaveTimer(record *models.TimerRecord) error {
	record.ID = models.TimerRecordID
	return DB.Save(record).Error
}

// ClearTimer removes the persisted countdown
func ClearTimer() error {
	return DB.Delete(&models.TimerRecord{}, models.TimerRecordID).Error
}
