package store

import (
	"time"

	"gorm.io/gorm"

	"github.com/nmoreno/blogapi/internal/db/models"
)

// CreatePost persists a new post.
func CreatePost(db *gorm.DB, post *models.Post) error {
	return db.Create(post).Error
}

// GetPost fetches a live post with its author, live comments and live tags.
func GetPost(db *gorm.DB, id uint) (*models.Post, error) {
	var post models.Post
	err := db.Where("is_deleted = ?", false).
		Preload("Author").
		Preload("Comments", "is_deleted = ?", false).
		Preload("Tags", "is_deleted = ?", false).
		First(&post, id).Error
	if err != nil {
		return nil, err
	}
	return &post, nil
}

// ListPosts returns a page of live posts plus the total live count.
func ListPosts(db *gorm.DB, skip, limit int) ([]models.Post, int64, error) {
	var total int64
	if err := db.Model(&models.Post{}).Where("is_deleted = ?", false).Count(&total).Error; err != nil {
		return nil, 0, err
	}

	var posts []models.Post
	err := db.Where("is_deleted = ?", false).
		Order("id").Offset(skip).Limit(limit).
		Find(&posts).Error
	if err != nil {
		return nil, 0, err
	}
	return posts, total, nil
}

// ListDeletedPosts returns a page of soft-deleted posts plus their total.
func ListDeletedPosts(db *gorm.DB, skip, limit int) ([]models.Post, int64, error) {
	var total int64
	if err := db.Model(&models.Post{}).Where("is_deleted = ?", true).Count(&total).Error; err != nil {
		return nil, 0, err
	}

	var posts []models.Post
	err := db.Where("is_deleted = ?", true).
		Order("deleted_at DESC").Offset(skip).Limit(limit).
		Find(&posts).Error
	if err != nil {
		return nil, 0, err
	}
	return posts, total, nil
}

// ListPostsByUser returns the live posts written by a user.
func ListPostsByUser(db *gorm.DB, authorID uint, skip, limit int) ([]models.Post, error) {
	var posts []models.Post
	err := db.Where("author_id = ? AND is_deleted = ?", authorID, false).
		Order("id").Offset(skip).Limit(limit).
		Find(&posts).Error
	if err != nil {
		return nil, err
	}
	return posts, nil
}

// UpdatePost applies a partial update to a live post.
func UpdatePost(db *gorm.DB, id uint, updates map[string]interface{}) (*models.Post, error) {
	var post models.Post
	if err := db.Where("is_deleted = ?", false).First(&post, id).Error; err != nil {
		return nil, err
	}
	if len(updates) > 0 {
		if err := db.Model(&post).Updates(updates).Error; err != nil {
			return nil, err
		}
	}
	return GetPost(db, id)
}

// SoftDeletePost flags a live post as deleted.
func SoftDeletePost(db *gorm.DB, id uint) error {
	return softDelete(db, &models.Post{}, id)
}

// RestorePost clears the soft-delete flag of a deleted post.
func RestorePost(db *gorm.DB, id uint) error {
	return restore(db, &models.Post{}, id)
}

// CreateComment attaches a new comment to a post.
func CreateComment(db *gorm.DB, postID uint, comment *models.Comment) error {
	comment.PostID = postID
	return db.Create(comment).Error
}

// AddTagToPost associates a live tag with a live post. Returns
// ErrNotFound when either side is missing, ErrAlreadyAssociated when
// the pair already exists.
func AddTagToPost(db *gorm.DB, postID, tagID uint) error {
	post, tag, err := postAndTag(db, postID, tagID)
	if err != nil {
		return err
	}

	var count int64
	err = db.Table("post_tags").
		Where("post_id = ? AND tag_id = ?", post.ID, tag.ID).
		Count(&count).Error
	if err != nil {
		return err
	}
	if count > 0 {
		return ErrAlreadyAssociated
	}

	return db.Model(post).Association("Tags").Append(tag)
}

// RemoveTagFromPost breaks a post/tag association. Returns ErrNotFound
// when the pair is missing or not associated.
func RemoveTagFromPost(db *gorm.DB, postID, tagID uint) error {
	post, tag, err := postAndTag(db, postID, tagID)
	if err != nil {
		return err
	}

	var count int64
	err = db.Table("post_tags").
		Where("post_id = ? AND tag_id = ?", post.ID, tag.ID).
		Count(&count).Error
	if err != nil {
		return err
	}
	if count == 0 {
		return ErrNotFound
	}

	return db.Model(post).Association("Tags").Delete(tag)
}

func postAndTag(db *gorm.DB, postID, tagID uint) (*models.Post, *models.Tag, error) {
	var post models.Post
	if err := db.Where("is_deleted = ?", false).First(&post, postID).Error; err != nil {
		return nil, nil, err
	}
	var tag models.Tag
	if err := db.Where("is_deleted = ?", false).First(&tag, tagID).Error; err != nil {
		return nil, nil, err
	}
	return &post, &tag, nil
}

func softDelete(db *gorm.DB, model interface{}, id uint) error {
	now := time.Now().UTC()
	res := db.Model(model).
		Where("id = ? AND is_deleted = ?", id, false).
		Updates(map[string]interface{}{"is_deleted": true, "deleted_at": &now})
	if res.Error != nil {
		return res.Error
	}
	if res.RowsAffected == 0 {
		return ErrNotFound
	}
	return nil
}

func restore(db *gorm.DB, model interface{}, id uint) error {
	res := db.Model(model).
		Where("id = ? AND is_deleted = ?", id, true).
		Updates(map[string]interface{}{"is_deleted": false, "deleted_at": nil})
	if res.Error != nil {
		return res.Error
	}
	if res.RowsAffected == 0 {
		return ErrNotFound
	}
	return nil
}
