package models

import "time"

// Comment is an anonymous comment on a post; the author is free text.
type Comment struct {
	ID         uint       `gorm:"primaryKey" json:"id"`
	Content    string     `gorm:"type:text" json:"content"`
	AuthorName string     `gorm:"size:100" json:"author_name"`
	PostID     uint       `gorm:"index" json:"post_id"`
	IsDeleted  bool       `gorm:"default:false;not null" json:"-"`
	DeletedAt  *time.Time `json:"-"`
	CreatedAt  time.Time  `json:"created_at"`
	UpdatedAt  time.Time  `json:"updated_at"`
}
