package models

import "time"

// Post is an article written by a user. Tags are attached through the
// post_tags join table.
type Post struct {
	ID        uint       `gorm:"primaryKey" json:"id"`
	Title     string     `gorm:"size:200;index" json:"title"`
	Content   string     `gorm:"type:text" json:"content"`
	AuthorID  uint       `gorm:"index" json:"author_id"`
	IsDeleted bool       `gorm:"default:false;not null" json:"-"`
	DeletedAt *time.Time `json:"-"`
	CreatedAt time.Time  `json:"created_at"`
	UpdatedAt time.Time  `json:"updated_at"`

	Author   *User     `gorm:"foreignKey:AuthorID" json:"author,omitempty"`
	Comments []Comment `gorm:"foreignKey:PostID" json:"comments,omitempty"`
	Tags     []Tag     `gorm:"many2many:post_tags" json:"tags,omitempty"`
}
