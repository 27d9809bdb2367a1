package models

import (
	"strings"
	"time"

	"gorm.io/gorm"
)

// Permissions is the per-resource boolean set carried by every account.
type Permissions struct {
	Dashboard bool `gorm:"default:true" json:"dashboard"`
	Users     bool `gorm:"default:false" json:"users"`
	Products  bool `gorm:"default:false" json:"products"`
	Orders    bool `gorm:"default:false" json:"orders"`
	Payments  bool `gorm:"default:false" json:"payments"`
	Settings  bool `gorm:"default:false" json:"settings"`
	Marketing bool `gorm:"default:false" json:"marketing"`
}

// Allows reports whether the named resource is granted.
func (p Permissions) Allows(resource string) bool {
	switch strings.ToLower(strings.TrimSpace(resource)) {
	case "dashboard":
		return p.Dashboard
	case "users":
		return p.Users
	case "products":
		return p.Products
	case "orders":
		return p.Orders
	case "payments":
		return p.Payments
	case "settings":
		return p.Settings
	case "marketing":
		return p.Marketing
	default:
		return false
	}
}

// User covers both storefront customers and back-office accounts; the role
// field tells them apart.
type User struct {
	ID                   uint           `gorm:"primarykey" json:"id"`
	FirstName            string         `gorm:"type:varchar(50);not null" json:"first_name"`
	LastName             string         `gorm:"type:varchar(50);not null" json:"last_name"`
	Email                string         `gorm:"uniqueIndex;not null" json:"email"`
	PasswordHash         string         `gorm:"not null" json:"-"`
	Role                 string         `gorm:"type:varchar(20);not null;default:'customer';index" json:"role"`
	Avatar               string         `gorm:"type:varchar(500);default:''" json:"avatar"`
	Phone                string         `gorm:"type:varchar(30)" json:"phone"`
	IsBlocked            bool           `gorm:"default:false;index" json:"is_blocked"`
	IsEmailVerified      bool           `gorm:"default:false" json:"is_email_verified"`
	PasswordResetToken   string         `gorm:"type:varchar(64);index" json:"-"`
	PasswordResetExpires *time.Time     `json:"-"`
	LastLoginAt          *time.Time     `json:"last_login"`
	LoginAttempts        int            `gorm:"not null;default:0" json:"-"`
	LockUntil            *time.Time     `json:"-"`
	Permissions          Permissions    `gorm:"embedded;embeddedPrefix:perm_" json:"permissions"`
	CreatedAt            time.Time      `gorm:"index" json:"created_at"`
	UpdatedAt            time.Time      `json:"updated_at"`
	DeletedAt            gorm.DeletedAt `gorm:"index" json:"-"`
}

// TableName sets the table name.
func (User) TableName() string {
	return "users"
}

// FullName joins first and last name.
func (u *User) FullName() string {
	return strings.TrimSpace(u.FirstName + " " + u.LastName)
}

// IsLocked reports whether the failed-login lockout is still in effect.
func (u *User) IsLocked(now time.Time) bool {
	return u.LockUntil != nil && u.LockUntil.After(now)
}
