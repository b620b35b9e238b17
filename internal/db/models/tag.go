package models

import "time"

// Tag labels posts. Names are unique across live and soft-deleted rows.
type Tag struct {
	ID        uint       `gorm:"primaryKey" json:"id"`
	Name      string     `gorm:"size:50;uniqueIndex" json:"name"`
	IsDeleted bool       `gorm:"default:false;not null" json:"-"`
	DeletedAt *time.Time `json:"-"`
	CreatedAt time.Time  `json:"created_at"`
	UpdatedAt time.Time  `json:"updated_at"`

	Posts []Post `gorm:"many2many:post_tags" json:"posts,omitempty"`
}
