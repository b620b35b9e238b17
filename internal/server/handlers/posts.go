package handlers

import (
	"errors"
	"net/http"
	"strconv"

	"gorm.io/gorm"

	"github.com/nmoreno/blogapi/internal/db/models"
	"github.com/nmoreno/blogapi/internal/store"
)

// CreatePost creates a post for the author given in the author_id
// query parameter.
func CreatePost(db *gorm.DB) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		rawAuthor := r.URL.Query().Get("author_id")
		authorID, err := strconv.ParseUint(rawAuthor, 10, 64)
		if err != nil || authorID == 0 {
			respondError(w, http.StatusBadRequest, "author_id query parameter is required")
			return
		}

		if _, err := store.GetUser(db, uint(authorID)); err != nil {
			if errors.Is(err, store.ErrNotFound) {
				respondError(w, http.StatusNotFound, "User not found")
				return
			}
			respondError(w, http.StatusInternalServerError, "Failed to create post")
			return
		}

		var body struct {
			Title   string `json:"title"`
			Content string `json:"content"`
		}
		if !decodeBody(w, r, &body) {
			return
		}
		if body.Title == "" {
			respondError(w, http.StatusBadRequest, "title is required")
			return
		}

		post := &models.Post{Title: body.Title, Content: body.Content, AuthorID: uint(authorID)}
		if err := store.CreatePost(db, post); err != nil {
			respondError(w, http.StatusInternalServerError, "Failed to create post")
			return
		}
		respondJSON(w, http.StatusCreated, post)
	}
}

// ListPosts returns a paginated page of live posts.
func ListPosts(db *gorm.DB) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		skip, limit, ok := paginationParams(r)
		if !ok {
			respondError(w, http.StatusBadRequest, "Invalid pagination parameters")
			return
		}

		posts, total, err := store.ListPosts(db, skip, limit)
		if err != nil {
			respondError(w, http.StatusInternalServerError, "Failed to list posts")
			return
		}
		respondJSON(w, http.StatusOK, newPage(posts, total, skip, limit, len(posts)))
	}
}

// GetPost returns a post with its author, comments and tags.
func GetPost(db *gorm.DB) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		id, ok := idParam(r, "postID")
		if !ok {
			respondError(w, http.StatusBadRequest, "Invalid post ID")
			return
		}

		post, err := store.GetPost(db, id)
		if err != nil {
			if errors.Is(err, store.ErrNotFound) {
				respondError(w, http.StatusNotFound, "Post not found")
				return
			}
			respondError(w, http.StatusInternalServerError, "Failed to get post")
			return
		}
		respondJSON(w, http.StatusOK, post)
	}
}

// UpdatePost applies a partial update to a post.
func UpdatePost(db *gorm.DB) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		id, ok := idParam(r, "postID")
		if !ok {
			respondError(w, http.StatusBadRequest, "Invalid post ID")
			return
		}

		var body struct {
			Title   *string `json:"title"`
			Content *string `json:"content"`
		}
		if !decodeBody(w, r, &body) {
			return
		}

		updates := map[string]interface{}{}
		if body.Title != nil {
			updates["title"] = *body.Title
		}
		if body.Content != nil {
			updates["content"] = *body.Content
		}

		post, err := store.UpdatePost(db, id, updates)
		if err != nil {
			if errors.Is(err, store.ErrNotFound) {
				respondError(w, http.StatusNotFound, "Post not found")
				return
			}
			respondError(w, http.StatusInternalServerError, "Failed to update post")
			return
		}
		respondJSON(w, http.StatusOK, post)
	}
}

// DeletePost soft-deletes a post.
func DeletePost(db *gorm.DB) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		id, ok := idParam(r, "postID")
		if !ok {
			respondError(w, http.StatusBadRequest, "Invalid post ID")
			return
		}

		if err := store.SoftDeletePost(db, id); err != nil {
			if errors.Is(err, store.ErrNotFound) {
				respondError(w, http.StatusNotFound, "Post not found")
				return
			}
			respondError(w, http.StatusInternalServerError, "Failed to delete post")
			return
		}
		w.WriteHeader(http.StatusNoContent)
	}
}

// RestorePost clears a post's soft delete.
func RestorePost(db *gorm.DB) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		id, ok := idParam(r, "postID")
		if !ok {
			respondError(w, http.StatusBadRequest, "Invalid post ID")
			return
		}

		if err := store.RestorePost(db, id); err != nil {
			if errors.Is(err, store.ErrNotFound) {
				respondError(w, http.StatusNotFound, "Deleted post not found")
				return
			}
			respondError(w, http.StatusInternalServerError, "Failed to restore post")
			return
		}

		post, err := store.GetPost(db, id)
		if err != nil {
			respondError(w, http.StatusInternalServerError, "Failed to restore post")
			return
		}
		respondJSON(w, http.StatusOK, post)
	}
}

// ListDeletedPosts returns a paginated page of soft-deleted posts.
func ListDeletedPosts(db *gorm.DB) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		skip, limit, ok := paginationParams(r)
		if !ok {
			respondError(w, http.StatusBadRequest, "Invalid pagination parameters")
			return
		}

		posts, total, err := store.ListDeletedPosts(db, skip, limit)
		if err != nil {
			respondError(w, http.StatusInternalServerError, "Failed to list deleted posts")
			return
		}
		respondJSON(w, http.StatusOK, newPage(posts, total, skip, limit, len(posts)))
	}
}

// CreateComment attaches a comment to a post.
func CreateComment(db *gorm.DB) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		id, ok := idParam(r, "postID")
		if !ok {
			respondError(w, http.StatusBadRequest, "Invalid post ID")
			return
		}

		if _, err := store.GetPost(db, id); err != nil {
			if errors.Is(err, store.ErrNotFound) {
				respondError(w, http.StatusNotFound, "Post not found")
				return
			}
			respondError(w, http.StatusInternalServerError, "Failed to create comment")
			return
		}

		var body struct {
			Content    string `json:"content"`
			AuthorName string `json:"author_name"`
		}
		if !decodeBody(w, r, &body) {
			return
		}
		if body.Content == "" {
			respondError(w, http.StatusBadRequest, "content is required")
			return
		}

		comment := &models.Comment{Content: body.Content, AuthorName: body.AuthorName}
		if err := store.CreateComment(db, id, comment); err != nil {
			respondError(w, http.StatusInternalServerError, "Failed to create comment")
			return
		}
		respondJSON(w, http.StatusCreated, comment)
	}
}

// AddTagToPost associates a tag with a post and returns the updated post.
func AddTagToPost(db *gorm.DB) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		postID, ok := idParam(r, "postID")
		if !ok {
			respondError(w, http.StatusBadRequest, "Invalid post ID")
			return
		}
		tagID, ok := idParam(r, "tagID")
		if !ok {
			respondError(w, http.StatusBadRequest, "Invalid tag ID")
			return
		}

		if err := store.AddTagToPost(db, postID, tagID); err != nil {
			if errors.Is(err, store.ErrNotFound) || errors.Is(err, store.ErrAlreadyAssociated) {
				respondError(w, http.StatusNotFound, "Post or Tag not found, or already associated")
				return
			}
			respondError(w, http.StatusInternalServerError, "Failed to add tag")
			return
		}

		post, err := store.GetPost(db, postID)
		if err != nil {
			respondError(w, http.StatusInternalServerError, "Failed to add tag")
			return
		}
		respondJSON(w, http.StatusOK, post)
	}
}

// RemoveTagFromPost breaks a post/tag association and returns the
// updated post.
func RemoveTagFromPost(db *gorm.DB) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		postID, ok := idParam(r, "postID")
		if !ok {
			respondError(w, http.StatusBadRequest, "Invalid post ID")
			return
		}
		tagID, ok := idParam(r, "tagID")
		if !ok {
			respondError(w, http.StatusBadRequest, "Invalid tag ID")
			return
		}

		if err := store.RemoveTagFromPost(db, postID, tagID); err != nil {
			if errors.Is(err, store.ErrNotFound) {
				respondError(w, http.StatusNotFound, "Post or Tag not found, or not associated")
				return
			}
			respondError(w, http.StatusInternalServerError, "Failed to remove tag")
			return
		}

		post, err := store.GetPost(db, postID)
		if err != nil {
			respondError(w, http.StatusInternalServerError, "Failed to remove tag")
			return
		}
		respondJSON(w, http.StatusOK, post)
	}
}
