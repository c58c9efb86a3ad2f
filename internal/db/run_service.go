package db

import (
	"gorm.io/gorm/clause"

	"github.com/sliicy/meatdairy/internal/models"
)

// RecordRun stores a finished or cancelled countdown. Recording the same RunID twice keeps the first row.
func RecordRun(run *models.Run) error {
	return DB.Clauses(clause.OnConflict{
		Columns:   []clause.Column{{Name: "run_id"}},
		DoNothing: true,
	}).Create(run).Error
}

// RecentRuns returns up to limit runs, newest first
func RecentRuns(limit int) ([]models.Run, error) {
	var runs []models.Run

	query := DB.Order("started_at DESC")
	if limit > 0 {
		query = query.Limit(limit)
	}
	if err := query.Find(&runs).Error; err != nil {
		return nil, err
	}

	return runs, nil
}
