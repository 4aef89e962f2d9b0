package site

import "time"

const (
	ResumeSingletonID   = "00000000-0000-0000-0000-000000000003"
	SettingsSingletonID = "00000000-0000-0000-0000-000000000004"
)

type SiteSettings struct {
	ID string `gorm:"type:uuid;primaryKey" json:"id"`

	MaintenanceMode bool `gorm:"not null;default:false" json:"maintenance_mode"`

	UpdatedAt time.Time `json:"updated_at"`
}

func (SiteSettings) TableName() string { return "site_settings" }

type Resume struct {
	ID string `gorm:"type:uuid;primaryKey" json:"id"`

	Title    string `gorm:"not null" json:"title"`
	FilePath string `gorm:"column:file_path" json:"file_path"`

	UpdatedAt time.Time `json:"updated_at"`
}
