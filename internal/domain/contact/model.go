package contact

import "time"

const InfoSingletonID = "00000000-0000-0000-0000-000000000002"

type ContactInfo struct {
	ID string `gorm:"type:uuid;primaryKey" json:"id"`

	Email        string `gorm:"not null" json:"email"`
	Phone        string `json:"phone,omitempty"`
	Location     string `json:"location,omitempty"`
	LinkedinURL  string `gorm:"column:linkedin_url" json:"linkedin_url,omitempty"`
	GithubURL    string `gorm:"column:github_url" json:"github_url,omitempty"`
	TwitterURL   string `gorm:"column:twitter_url" json:"twitter_url,omitempty"`
	InstagramURL string `gorm:"column:instagram_url" json:"instagram_url,omitempty"`
	WhatsappURL  string `gorm:"column:whatsapp_url" json:"whatsapp_url,omitempty"`
	TelegramURL  string `gorm:"column:telegram_url" json:"telegram_url,omitempty"`

	UpdatedAt time.Time `json:"updated_at"`
}

func (ContactInfo) TableName() string { return "contact_info" }

type ContactMessage struct {
	ID string `gorm:"type:uuid;default:gen_random_uuid();primaryKey" json:"id"`

	Name    string `gorm:"not null" json:"name"`
	Email   string `gorm:"not null" json:"email"`
	Message string `gorm:"type:text;not null" json:"message"`
	IsRead  bool   `gorm:"not null;default:false" json:"is_read"`

	CreatedAt time.Time `json:"created_at"`
}
