package models

import (
	"context"
	"time"

	"gorm.io/gorm"
	"gorm.io/gorm/clause"
)

// Setting is the generic key-value store for company profile, chosen
// print templates and the like. The ledger core never reads it; it is
// here for the UI collaborators.
type Setting struct {
	Key       string    `gorm:"primaryKey;size:100" json:"key"`
	Value     string    `gorm:"type:text" json:"value"`
	UpdatedAt time.Time `gorm:"autoUpdateTime" json:"updated_at"`
}

func GetSetting(ctx context.Context, db *gorm.DB, key string) (*Setting, error) {
	var setting Setting
	err := db.WithContext(ctx).First(&setting, "key = ?", key).Error
	if err == gorm.ErrRecordNotFound {
		return nil, nil
	}
	if err != nil {
		return nil, err
	}
	return &setting, nil
}

func PutSetting(ctx context.Context, db *gorm.DB, key string, value string) (*Setting, error) {
	setting := Setting{Key: key, Value: value}
	err := db.WithContext(ctx).
		Clauses(clause.OnConflict{
			Columns:   []clause.Column{{Name: "key"}},
			DoUpdates: clause.AssignmentColumns([]string{"value", "updated_at"}),
		}).
		Create(&setting).Error
	if err != nil {
		return nil, err
	}
	return &setting, nil
}

func GetSettingsAll(ctx context.Context, db *gorm.DB) ([]*Setting, error) {
	var results []*Setting
	err := db.WithContext(ctx).Order("key").Find(&results).Error
	if err != nil {
		return nil, err
	}
	return results, nil
}
