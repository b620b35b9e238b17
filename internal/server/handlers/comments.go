package handlers

import (
	"errors"
	"net/http"

	"gorm.io/gorm"

	"github.com/nmoreno/blogapi/internal/store"
)

// GetComment returns a single live comment.
func GetComment(db *gorm.DB) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		id, ok := idParam(r, "commentID")
		if !ok {
			respondError(w, http.StatusBadRequest, "Invalid comment ID")
			return
		}

		comment, err := store.GetComment(db, id)
		if err != nil {
			if errors.Is(err, store.ErrNotFound) {
				respondError(w, http.StatusNotFound, "Comment not found")
				return
			}
			respondError(w, http.StatusInternalServerError, "Failed to get comment")
			return
		}
		respondJSON(w, http.StatusOK, comment)
	}
}

// UpdateComment replaces a comment's content.
func UpdateComment(db *gorm.DB) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		id, ok := idParam(r, "commentID")
		if !ok {
			respondError(w, http.StatusBadRequest, "Invalid comment ID")
			return
		}

		var body struct {
			Content string `json:"content"`
		}
		if !decodeBody(w, r, &body) {
			return
		}
		if body.Content == "" {
			respondError(w, http.StatusBadRequest, "content is required")
			return
		}

		comment, err := store.UpdateComment(db, id, map[string]interface{}{"content": body.Content})
		if err != nil {
			if errors.Is(err, store.ErrNotFound) {
				respondError(w, http.StatusNotFound, "Comment not found")
				return
			}
			respondError(w, http.StatusInternalServerError, "Failed to update comment")
			return
		}
		respondJSON(w, http.StatusOK, comment)
	}
}

// ListDeletedComments returns soft-deleted comments.
func ListDeletedComments(db *gorm.DB) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		skip, limit, ok := paginationParams(r)
		if !ok {
			respondError(w, http.StatusBadRequest, "Invalid pagination parameters")
			return
		}

		comments, err := store.ListDeletedComments(db, skip, limit)
		if err != nil {
			respondError(w, http.StatusInternalServerError, "Failed to list deleted comments")
			return
		}
		respondJSON(w, http.StatusOK, comments)
	}
}

// DeleteComment soft-deletes a comment.
func DeleteComment(db *gorm.DB) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		id, ok := idParam(r, "commentID")
		if !ok {
			respondError(w, http.StatusBadRequest, "Invalid comment ID")
			return
		}

		if err := store.SoftDeleteComment(db, id); err != nil {
			if errors.Is(err, store.ErrNotFound) {
				respondError(w, http.StatusNotFound, "Comment not found")
				return
			}
			respondError(w, http.StatusInternalServerError, "Failed to delete comment")
			return
		}
		w.WriteHeader(http.StatusNoContent)
	}
}

// RestoreComment clears a comment's soft delete.
func RestoreComment(db *gorm.DB) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		id, ok := idParam(r, "commentID")
		if !ok {
			respondError(w, http.StatusBadRequest, "Invalid comment ID")
			return
		}

		if err := store.RestoreComment(db, id); err != nil {
			if errors.Is(err, store.ErrNotFound) {
				respondError(w, http.StatusNotFound, "Deleted comment not found")
				return
			}
			respondError(w, http.StatusInternalServerError, "Failed to restore comment")
			return
		}

		comment, err := store.GetComment(db, id)
		if err != nil {
			respondError(w, http.StatusInternalServerError, "Failed to restore comment")
			return
		}
		respondJSON(w, http.StatusOK, comment)
	}
}
