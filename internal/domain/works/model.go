package works

import (
	"time"

	"gorm.io/datatypes"
)

type Project struct {
	ID string `gorm:"type:uuid;default:gen_random_uuid();primaryKey" json:"id"`

	Title        string                     `gorm:"not null" json:"title"`
	Description  string                     `gorm:"type:text" json:"description"`
	Technologies datatypes.JSONSlice[string] `json:"technologies"`
	GithubLink   string                     `json:"github_link,omitempty"`
	LiveLink     string                     `json:"live_link,omitempty"`

	Image       *string `json:"image,omitempty"`
	ImageWidth  string  `json:"image_width,omitempty"`
	ImageHeight string  `json:"image_height,omitempty"`

	// Position drives the drag-and-drop ordering on the public slider.
	Position *int `gorm:"index" json:"position"`

	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`
}

type Certificate struct {
	ID string `gorm:"type:uuid;default:gen_random_uuid();primaryKey" json:"id"`

	Title       string  `gorm:"not null" json:"title"`
	Issuer      string  `json:"issuer"`
	Date        string  `json:"date"`
	Description string  `gorm:"type:text" json:"description"`
	Link        string  `json:"link,omitempty"`
	Image       *string `json:"image,omitempty"`

	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`
}

type Skill struct {
	ID string `gorm:"type:uuid;default:gen_random_uuid();primaryKey" json:"id"`

	Category string `gorm:"not null;index" json:"category"`
	Name     string `gorm:"not null" json:"name"`

	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`
}
