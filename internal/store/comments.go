package store

import (
	"gorm.io/gorm"

	"github.com/nmoreno/blogapi/internal/db/models"
)

// GetComment fetches a live comment.
func GetComment(db *gorm.DB, id uint) (*models.Comment, error) {
	var comment models.Comment
	err := db.Where("is_deleted = ?", false).First(&comment, id).Error
	if err != nil {
		return nil, err
	}
	return &comment, nil
}

// UpdateComment applies a partial update to a live comment.
func UpdateComment(db *gorm.DB, id uint, updates map[string]interface{}) (*models.Comment, error) {
	comment, err := GetComment(db, id)
	if err != nil {
		return nil, err
	}
	if len(updates) > 0 {
		if err := db.Model(comment).Updates(updates).Error; err != nil {
			return nil, err
		}
	}
	return GetComment(db, id)
}

// ListDeletedComments returns soft-deleted comments, most recently
// deleted first.
func ListDeletedComments(db *gorm.DB, skip, limit int) ([]models.Comment, error) {
	var comments []models.Comment
	err := db.Where("is_deleted = ?", true).
		Order("deleted_at DESC").Offset(skip).Limit(limit).
		Find(&comments).Error
	if err != nil {
		return nil, err
	}
	return comments, nil
}

// SoftDeleteComment flags a live comment as deleted.
func SoftDeleteComment(db *gorm.DB, id uint) error {
	return softDelete(db, &models.Comment{}, id)
}

// RestoreComment clears the soft-delete flag of a deleted comment.
func RestoreComment(db *gorm.DB, id uint) error {
	return restore(db, &models.Comment{}, id)
}
