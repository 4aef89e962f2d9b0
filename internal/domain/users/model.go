package users

import "time"

type AdminUser struct {
	ID string `gorm:"type:uuid;default:gen_random_uuid();primaryKey" json:"id"`

	Email        string  `gorm:"not null;uniqueIndex" json:"email"`
	Password     *string `json:"-"`
	AuthProvider string  `gorm:"not null;default:'local'" json:"-"`
	GoogleSub    *string `gorm:"uniqueIndex" json:"-"`
	Role         string  `gorm:"not null;default:'admin'" json:"role"`

	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`
}
