// Package models contains data structures for the application's domain models.
package models

import (
	"time"

	"gorm.io/gorm"
)

// Blog represents a single blog entry. The owner reference is optional:
// legacy entries may predate user accounts.
type Blog struct {
	ID        uint           `gorm:"primaryKey" json:"id"`
	Title     string         `gorm:"not null" json:"title"`
	Author    string         `json:"author"`
	URL       string         `gorm:"not null" json:"url"`
	Likes     int            `gorm:"not null;default:0" json:"likes"`
	UserID    *uint          `gorm:"index" json:"user_id,omitempty"`
	User      *User          `gorm:"foreignKey:UserID" json:"user,omitempty"`
	CreatedAt time.Time      `json:"created_at"`
	UpdatedAt time.Time      `json:"updated_at"`
	DeletedAt gorm.DeletedAt `gorm:"index" json:"-"`
}

// OwnedBy reports whether the blog belongs to the given user.
func (b *Blog) OwnedBy(userID uint) bool {
	return b.UserID != nil && *b.UserID == userID
}
