package handlers

import (
	"errors"
	"net/http"

	"gorm.io/gorm"

	"github.com/nmoreno/blogapi/internal/db/models"
	"github.com/nmoreno/blogapi/internal/store"
)

// CreateTag creates a new tag with a unique name.
func CreateTag(db *gorm.DB) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		var body struct {
			Name string `json:"name"`
		}
		if !decodeBody(w, r, &body) {
			return
		}
		if body.Name == "" {
			respondError(w, http.StatusBadRequest, "name is required")
			return
		}

		if _, err := store.GetTagByName(db, body.Name); err == nil {
			respondError(w, http.StatusBadRequest, "Tag already exists")
			return
		}

		tag := &models.Tag{Name: body.Name}
		if err := store.CreateTag(db, tag); err != nil {
			respondError(w, http.StatusInternalServerError, "Failed to create tag")
			return
		}
		respondJSON(w, http.StatusCreated, tag)
	}
}

// ListTags returns a paginated page of live tags.
func ListTags(db *gorm.DB) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		skip, limit, ok := paginationParams(r)
		if !ok {
			respondError(w, http.StatusBadRequest, "Invalid pagination parameters")
			return
		}

		tags, total, err := store.ListTags(db, skip, limit)
		if err != nil {
			respondError(w, http.StatusInternalServerError, "Failed to list tags")
			return
		}
		respondJSON(w, http.StatusOK, newPage(tags, total, skip, limit, len(tags)))
	}
}

// GetTag returns a tag with its live posts.
func GetTag(db *gorm.DB) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		id, ok := idParam(r, "tagID")
		if !ok {
			respondError(w, http.StatusBadRequest, "Invalid tag ID")
			return
		}

		tag, err := store.GetTag(db, id)
		if err != nil {
			if errors.Is(err, store.ErrNotFound) {
				respondError(w, http.StatusNotFound, "Tag not found")
				return
			}
			respondError(w, http.StatusInternalServerError, "Failed to get tag")
			return
		}
		respondJSON(w, http.StatusOK, tag)
	}
}

// UpdateTag renames a tag.
func UpdateTag(db *gorm.DB) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		id, ok := idParam(r, "tagID")
		if !ok {
			respondError(w, http.StatusBadRequest, "Invalid tag ID")
			return
		}

		var body struct {
			Name *string `json:"name"`
		}
		if !decodeBody(w, r, &body) {
			return
		}

		updates := map[string]interface{}{}
		if body.Name != nil {
			updates["name"] = *body.Name
		}

		tag, err := store.UpdateTag(db, id, updates)
		if err != nil {
			if errors.Is(err, store.ErrNotFound) {
				respondError(w, http.StatusNotFound, "Tag not found")
				return
			}
			respondError(w, http.StatusInternalServerError, "Failed to update tag")
			return
		}
		respondJSON(w, http.StatusOK, tag)
	}
}

// DeleteTag soft-deletes a tag.
func DeleteTag(db *gorm.DB) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		id, ok := idParam(r, "tagID")
		if !ok {
			respondError(w, http.StatusBadRequest, "Invalid tag ID")
			return
		}

		if err := store.SoftDeleteTag(db, id); err != nil {
			if errors.Is(err, store.ErrNotFound) {
				respondError(w, http.StatusNotFound, "Tag not found")
				return
			}
			respondError(w, http.StatusInternalServerError, "Failed to delete tag")
			return
		}
		w.WriteHeader(http.StatusNoContent)
	}
}

// RestoreTag clears a tag's soft delete.
func RestoreTag(db *gorm.DB) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		id, ok := idParam(r, "tagID")
		if !ok {
			respondError(w, http.StatusBadRequest, "Invalid tag ID")
			return
		}

		if err := store.RestoreTag(db, id); err != nil {
			if errors.Is(err, store.ErrNotFound) {
				respondError(w, http.StatusNotFound, "Deleted tag not found")
				return
			}
			respondError(w, http.StatusInternalServerError, "Failed to restore tag")
			return
		}

		tag, err := store.GetTag(db, id)
		if err != nil {
			respondError(w, http.StatusInternalServerError, "Failed to restore tag")
			return
		}
		respondJSON(w, http.StatusOK, tag)
	}
}

// ListDeletedTags returns a paginated page of soft-deleted tags.
func ListDeletedTags(db *gorm.DB) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		skip, limit, ok := paginationParams(r)
		if !ok {
			respondError(w, http.StatusBadRequest, "Invalid pagination parameters")
			return
		}

		tags, total, err := store.ListDeletedTags(db, skip, limit)
		if err != nil {
			respondError(w, http.StatusInternalServerError, "Failed to list deleted tags")
			return
		}
		respondJSON(w, http.StatusOK, newPage(tags, total, skip, limit, len(tags)))
	}
}
