package store

import (
	"gorm.io/gorm"

	"github.com/nmoreno/blogapi/internal/db/models"
)

// GetUser fetches a user by ID regardless of soft-delete state.
func GetUser(db *gorm.DB, id uint) (*models.User, error) {
	var user models.User
	if err := db.First(&user, id).Error; err != nil {
		return nil, err
	}
	return &user, nil
}

// GetUserByUsername fetches a user by username.
func GetUserByUsername(db *gorm.DB, username string) (*models.User, error) {
	var user models.User
	if err := db.Where("username = ?", username).First(&user).Error; err != nil {
		return nil, err
	}
	return &user, nil
}

// GetUserByEmail fetches a live user by email.
func GetUserByEmail(db *gorm.DB, email string) (*models.User, error) {
	var user models.User
	if err := db.Where("email = ? AND is_deleted = ?", email, false).First(&user).Error; err != nil {
		return nil, err
	}
	return &user, nil
}

// GetUserWithPosts fetches a live user along with their live posts.
func GetUserWithPosts(db *gorm.DB, id uint) (*models.User, error) {
	var user models.User
	err := db.Where("is_deleted = ?", false).
		Preload("Posts", "is_deleted = ?", false).
		First(&user, id).Error
	if err != nil {
		return nil, err
	}
	return &user, nil
}

// ListUsers returns a page of live users plus the total live count.
func ListUsers(db *gorm.DB, skip, limit int) ([]models.User, int64, error) {
	var total int64
	if err := db.Model(&models.User{}).Where("is_deleted = ?", false).Count(&total).Error; err != nil {
		return nil, 0, err
	}

	var users []models.User
	err := db.Where("is_deleted = ?", false).
		Order("id").Offset(skip).Limit(limit).
		Find(&users).Error
	if err != nil {
		return nil, 0, err
	}
	return users, total, nil
}

// ListDeletedUsers returns soft-deleted users, most recently deleted first.
func ListDeletedUsers(db *gorm.DB, skip, limit int) ([]models.User, error) {
	var users []models.User
	err := db.Where("is_deleted = ?", true).
		Order("deleted_at DESC").Offset(skip).Limit(limit).
		Find(&users).Error
	if err != nil {
		return nil, err
	}
	return users, nil
}

// CreateUser persists a new user.
func CreateUser(db *gorm.DB, user *models.User) error {
	return db.Create(user).Error
}

// UpdateUser applies a partial update to a live user and returns the
// refreshed row. Updating a soft-deleted user returns ErrDeleted.
func UpdateUser(db *gorm.DB, id uint, updates map[string]interface{}) (*models.User, error) {
	user, err := GetUser(db, id)
	if err != nil {
		return nil, err
	}
	if user.IsDeleted {
		return nil, ErrDeleted
	}
	if len(updates) > 0 {
		if err := db.Model(user).Updates(updates).Error; err != nil {
			return nil, err
		}
	}
	return GetUser(db, id)
}

// SoftDeleteUser flags a live user as deleted.
func SoftDeleteUser(db *gorm.DB, id uint) error {
	return softDelete(db, &models.User{}, id)
}

// RestoreUser clears the soft-delete flag of a deleted user.
func RestoreUser(db *gorm.DB, id uint) error {
	return restore(db, &models.User{}, id)
}
