package handlers

import (
	"errors"
	"fmt"
	"net/http"

	"gorm.io/gorm"

	"github.com/nmoreno/blogapi/internal/auth"
	"github.com/nmoreno/blogapi/internal/server/middleware"
	"github.com/nmoreno/blogapi/internal/store"
)

// ListUsers returns a paginated page of live users.
func ListUsers(db *gorm.DB) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		skip, limit, ok := paginationParams(r)
		if !ok {
			respondError(w, http.StatusBadRequest, "Invalid pagination parameters")
			return
		}

		users, total, err := store.ListUsers(db, skip, limit)
		if err != nil {
			respondError(w, http.StatusInternalServerError, "Failed to list users")
			return
		}
		respondJSON(w, http.StatusOK, newPage(users, total, skip, limit, len(users)))
	}
}

// GetUser returns a user with their live posts.
func GetUser(db *gorm.DB) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		id, ok := idParam(r, "userID")
		if !ok {
			respondError(w, http.StatusBadRequest, "Invalid user ID")
			return
		}

		user, err := store.GetUserWithPosts(db, id)
		if err != nil {
			if errors.Is(err, store.ErrNotFound) {
				respondError(w, http.StatusNotFound, "User not found")
				return
			}
			respondError(w, http.StatusInternalServerError, "Failed to get user")
			return
		}
		respondJSON(w, http.StatusOK, user)
	}
}

type userUpdateRequest struct {
	Username *string `json:"username"`
	Email    *string `json:"email"`
	FullName *string `json:"full_name"`
	Password *string `json:"password"`
	IsActive *bool   `json:"is_active"`
	IsAdmin  *bool   `json:"is_admin"`
}

// UpdateUser applies a partial update. Only the user themselves or an
// admin may edit an account.
func UpdateUser(db *gorm.DB) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		id, ok := idParam(r, "userID")
		if !ok {
			respondError(w, http.StatusBadRequest, "Invalid user ID")
			return
		}

		current := middleware.UserFromContext(r.Context())
		if current.ID != id && !current.IsAdmin {
			respondError(w, http.StatusForbidden, "You do not have permission to edit this user")
			return
		}

		var body userUpdateRequest
		if !decodeBody(w, r, &body) {
			return
		}

		if body.Username != nil {
			if existing, err := store.GetUserByUsername(db, *body.Username); err == nil && existing.ID != id {
				respondError(w, http.StatusBadRequest, "Username already in use")
				return
			}
		}
		if body.Email != nil {
			if existing, err := store.GetUserByEmail(db, *body.Email); err == nil && existing.ID != id {
				respondError(w, http.StatusBadRequest, "Email already in use")
				return
			}
		}

		updates := map[string]interface{}{}
		if body.Username != nil {
			updates["username"] = *body.Username
		}
		if body.Email != nil {
			updates["email"] = *body.Email
		}
		if body.FullName != nil {
			updates["full_name"] = *body.FullName
		}
		if body.Password != nil {
			hashed, err := auth.HashPassword(*body.Password)
			if err != nil {
				respondError(w, http.StatusInternalServerError, "Failed to update user")
				return
			}
			updates["hashed_password"] = hashed
		}
		// Privilege and activation flags are admin-only.
		if body.IsActive != nil {
			if !current.IsAdmin {
				respondError(w, http.StatusForbidden, "Only admins may change is_active")
				return
			}
			updates["is_active"] = *body.IsActive
		}
		if body.IsAdmin != nil {
			if !current.IsAdmin {
				respondError(w, http.StatusForbidden, "Only admins may change is_admin")
				return
			}
			updates["is_admin"] = *body.IsAdmin
		}

		user, err := store.UpdateUser(db, id, updates)
		if err != nil {
			switch {
			case errors.Is(err, store.ErrNotFound):
				respondError(w, http.StatusNotFound, "User not found")
			case errors.Is(err, store.ErrDeleted):
				respondError(w, http.StatusBadRequest, "Cannot update a deleted user")
			default:
				respondError(w, http.StatusInternalServerError, "Failed to update user")
			}
			return
		}
		respondJSON(w, http.StatusOK, user)
	}
}

// DeleteUser soft-deletes an account. Only the user themselves or an
// admin may do it.
func DeleteUser(db *gorm.DB) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		id, ok := idParam(r, "userID")
		if !ok {
			respondError(w, http.StatusBadRequest, "Invalid user ID")
			return
		}

		current := middleware.UserFromContext(r.Context())
		if current.ID != id && !current.IsAdmin {
			respondError(w, http.StatusForbidden, "You do not have permission to delete this user")
			return
		}

		if err := store.SoftDeleteUser(db, id); err != nil {
			if errors.Is(err, store.ErrNotFound) {
				respondError(w, http.StatusNotFound, "User not found")
				return
			}
			respondError(w, http.StatusInternalServerError, "Failed to delete user")
			return
		}
		respondJSON(w, http.StatusOK, map[string]string{"message": "User deleted successfully"})
	}
}

// RestoreUser clears a user's soft delete. Admin only.
func RestoreUser(db *gorm.DB) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		id, ok := idParam(r, "userID")
		if !ok {
			respondError(w, http.StatusBadRequest, "Invalid user ID")
			return
		}

		if err := store.RestoreUser(db, id); err != nil {
			if errors.Is(err, store.ErrNotFound) {
				respondError(w, http.StatusNotFound, "Deleted user not found")
				return
			}
			respondError(w, http.StatusInternalServerError, "Failed to restore user")
			return
		}

		user, err := store.GetUser(db, id)
		if err != nil {
			respondError(w, http.StatusInternalServerError, "Failed to restore user")
			return
		}
		respondJSON(w, http.StatusOK, user)
	}
}

// ListUserPosts returns the live posts of a user.
func ListUserPosts(db *gorm.DB) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		id, ok := idParam(r, "userID")
		if !ok {
			respondError(w, http.StatusBadRequest, "Invalid user ID")
			return
		}
		skip, limit, ok := paginationParams(r)
		if !ok {
			respondError(w, http.StatusBadRequest, "Invalid pagination parameters")
			return
		}

		posts, err := store.ListPostsByUser(db, id, skip, limit)
		if err != nil {
			respondError(w, http.StatusInternalServerError, "Failed to list posts")
			return
		}
		respondJSON(w, http.StatusOK, posts)
	}
}

// ListDeletedUsers returns soft-deleted users. Admin only.
func ListDeletedUsers(db *gorm.DB) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		skip, limit, ok := paginationParams(r)
		if !ok {
			respondError(w, http.StatusBadRequest, "Invalid pagination parameters")
			return
		}

		users, err := store.ListDeletedUsers(db, skip, limit)
		if err != nil {
			respondError(w, http.StatusInternalServerError, "Failed to list deleted users")
			return
		}
		respondJSON(w, http.StatusOK, users)
	}
}

// AdminOnly is a probe endpoint verifying admin privileges.
func AdminOnly() http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		user := middleware.UserFromContext(r.Context())
		respondJSON(w, http.StatusOK, map[string]string{
			"message": fmt.Sprintf("Hello %s, you are an admin!", user.Username),
		})
	}
}
