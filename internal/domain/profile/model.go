package profile

import "time"

const AboutSingletonID = "00000000-0000-0000-0000-000000000001"

// Profile holds the hero-section content. A single row is expected, but the
// table is keyed like any other so the admin form can recreate it.
type Profile struct {
	ID string `gorm:"type:uuid;default:gen_random_uuid();primaryKey" json:"id"`

	FirstName    string `json:"first_name"`
	LastName     string `json:"last_name"`
	Tagline      string `json:"tagline"`
	HeroImageURL string `gorm:"column:hero_image_url" json:"hero_image_url"`

	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`
}

type AboutMe struct {
	ID string `gorm:"type:uuid;primaryKey" json:"id"`

	Content  string `gorm:"type:text" json:"content"`
	ImageURL string `gorm:"column:image_url" json:"image_url"`

	UpdatedAt time.Time `json:"updated_at"`
}

func (AboutMe) TableName() string { return "about_me" }
