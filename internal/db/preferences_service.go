package db

import (
	"errors"

	"gorm.io/gorm"

	"github.com/sliicy/meatdairy/internal/models"
)

// LoadPreferences returns the saved preferences, creating the defaults on first use
func LoadPreferences() (*models.Preferences, error) {
	var prefs models.Preferences

	err := DB.First(&prefs, models.PreferencesID).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		prefs = models.Preferences{ID: models.PreferencesID}
		if err := DB.Create(&prefs).Error; err != nil {
			return nil, err
		}
		return &prefs, nil
	}
	if err != nil {
		return nil, err
	}

	return &prefs, nil
}

// SavePreferences writes both preference values
func SavePreferences(selectedPresetIndex int, notifyOnComplete bool) (*models.Preferences, error) {
	prefs, err := LoadPreferences()
	if err != nil {
		return nil, err
	}

	prefs.SelectedPresetIndex = selectedPresetIndex
	prefs.NotifyOnComplete = notifyOnComplete

	if err := DB.Save(prefs).Error; err != nil {
		return nil, err
	}

	return prefs, nil
}
