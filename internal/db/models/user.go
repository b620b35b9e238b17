package models

import "time"

// User is a registered author. Rows are soft-deleted: lookups filter on
// IsDeleted instead of removing the record.
type User struct {
	ID             uint       `gorm:"primaryKey" json:"id"`
	Username       string     `gorm:"size:50;uniqueIndex" json:"username"`
	Email          string     `gorm:"size:100;uniqueIndex" json:"email"`
	FullName       string     `gorm:"size:100" json:"full_name"`
	HashedPassword string     `json:"-"`
	IsActive       bool       `gorm:"default:true" json:"is_active"`
	IsAdmin        bool       `gorm:"default:false" json:"is_admin"`
	IsDeleted      bool       `gorm:"default:false;not null" json:"-"`
	DeletedAt      *time.Time `json:"-"`
	CreatedAt      time.Time  `json:"created_at"`
	UpdatedAt      time.Time  `json:"updated_at"`

	Posts []Post `gorm:"foreignKey:AuthorID" json:"posts,omitempty"`
}
