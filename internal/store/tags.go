package store

import (
	"gorm.io/gorm"

	"github.com/nmoreno/blogapi/internal/db/models"
)

// CreateTag persists a new tag.
func CreateTag(db *gorm.DB, tag *models.Tag) error {
	return db.Create(tag).Error
}

// GetTag fetches a live tag with its live posts.
func GetTag(db *gorm.DB, id uint) (*models.Tag, error) {
	var tag models.Tag
	err := db.Where("is_deleted = ?", false).
		Preload("Posts", "is_deleted = ?", false).
		First(&tag, id).Error
	if err != nil {
		return nil, err
	}
	return &tag, nil
}

// GetTagByName fetches a live tag by its unique name.
func GetTagByName(db *gorm.DB, name string) (*models.Tag, error) {
	var tag models.Tag
	err := db.Where("name = ? AND is_deleted = ?", name, false).First(&tag).Error
	if err != nil {
		return nil, err
	}
	return &tag, nil
}

// ListTags returns a page of live tags plus the total live count.
func ListTags(db *gorm.DB, skip, limit int) ([]models.Tag, int64, error) {
	var total int64
	if err := db.Model(&models.Tag{}).Where("is_deleted = ?", false).Count(&total).Error; err != nil {
		return nil, 0, err
	}

	var tags []models.Tag
	err := db.Where("is_deleted = ?", false).
		Order("id").Offset(skip).Limit(limit).
		Find(&tags).Error
	if err != nil {
		return nil, 0, err
	}
	return tags, total, nil
}

// ListDeletedTags returns a page of soft-deleted tags plus their total.
func ListDeletedTags(db *gorm.DB, skip, limit int) ([]models.Tag, int64, error) {
	var total int64
	if err := db.Model(&models.Tag{}).Where("is_deleted = ?", true).Count(&total).Error; err != nil {
		return nil, 0, err
	}

	var tags []models.Tag
	err := db.Where("is_deleted = ?", true).
		Order("deleted_at DESC").Offset(skip).Limit(limit).
		Find(&tags).Error
	if err != nil {
		return nil, 0, err
	}
	return tags, total, nil
}

// UpdateTag applies a partial update to a live tag.
func UpdateTag(db *gorm.DB, id uint, updates map[string]interface{}) (*models.Tag, error) {
	var tag models.Tag
	if err := db.Where("is_deleted = ?", false).First(&tag, id).Error; err != nil {
		return nil, err
	}
	if len(updates) > 0 {
		if err := db.Model(&tag).Updates(updates).Error; err != nil {
			return nil, err
		}
	}
	return GetTag(db, id)
}

// SoftDeleteTag flags a live tag as deleted.
func SoftDeleteTag(db *gorm.DB, id uint) error {
	return softDelete(db, &models.Tag{}, id)
}

// RestoreTag clears the soft-delete flag of a deleted tag.
func RestoreTag(db *gorm.DB, id uint) error {
	return restore(db, &models.Tag{}, id)
}
