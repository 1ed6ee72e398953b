package model

import "time"

// SettingModel represents the settings key-value table.
type SettingModel struct {
	Key       string    `gorm:"type:varchar(64);primaryKey"`
	Value     string    `gorm:"type:text;not null"`
	UpdatedAt time.Time `gorm:"not null"`
}

// TableName returns the table name for the SettingModel.
func (SettingModel) TableName() string {
	return "settings"
}
