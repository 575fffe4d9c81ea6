package users

import "time"

const (
	RoleAdmin  = "admin"
	RoleEditor = "editor"
)

const (
	ProviderLocal  = "local"
	ProviderGoogle = "google"
)

// User is a back-office account allowed to open a session.
type User struct {
	ID           uint `gorm:"primaryKey"`
	Name         string
	Email        string  `gorm:"not null;uniqueIndex:idx_users_email"`
	Password     *string `gorm:""`
	AuthProvider string  `gorm:"type:varchar(20);not null;default:'local'"`
	GoogleSub    *string `gorm:"uniqueIndex:idx_users_google_sub"`
	Role         string  `gorm:"not null;default:'editor'"`

	CreatedAt time.Time
	UpdatedAt time.Time
}
