package models

import "time"

// Role grants access levels.
type Role string

const (
	RoleUser  Role = "user"
	RoleAdmin Role = "admin"
)

// User represents the user model in the database
type User struct {
	Base
	Email               string     `gorm:"uniqueIndex;not null" json:"email"`
	Password            string     `gorm:"not null" json:"-"`
	Name                string     `gorm:"size:100" json:"name"`
	Role                Role       `gorm:"size:20;not null;default:user" json:"role"`
	IsActive            bool       `gorm:"not null;default:true" json:"is_active"`
	RefreshTokenHash    string     `gorm:"size:64" json:"-"`
	ResetTokenHash      string     `gorm:"size:64;index" json:"-"`
	ResetTokenExpiresAt *time.Time `json:"-"`
	FailedLoginAttempts int        `gorm:"default:0" json:"-"`
	LockedUntil         *time.Time `json:"-"`
	LastLoginAt         *time.Time `json:"last_login_at,omitempty"`
}

// IsAdmin reports whether the user holds the admin role.
func (u *User) IsAdmin() bool { return u.Role == RoleAdmin }
