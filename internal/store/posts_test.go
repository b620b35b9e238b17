package store

import (
	"errors"
	"testing"

	"github.com/nmoreno/blogapi/internal/db/models"
)

func TestPostLifecycle(t *testing.T) {
	db := newTestDB(t)
	user := seedUser(t, db, "author")
	post := seedPost(t, db, user.ID, "hello world")

	got, err := GetPost(db, post.ID)
	if err != nil {
		t.Fatalf("get post: %v", err)
	}
	if got.Author == nil || got.Author.Username != "author" {
		t.Errorf("expected author preloaded, got %+v", got.Author)
	}

	updated, err := UpdatePost(db, post.ID, map[string]interface{}{"title": "updated"})
	if err != nil {
		t.Fatalf("update post: %v", err)
	}
	if updated.Title != "updated" {
		t.Errorf("title = %q, want %q", updated.Title, "updated")
	}

	if err := SoftDeletePost(db, post.ID); err != nil {
		t.Fatalf("soft delete post: %v", err)
	}
	if _, err := GetPost(db, post.ID); !errors.Is(err, ErrNotFound) {
		t.Fatalf("expected ErrNotFound for deleted post, got %v", err)
	}

	if err := RestorePost(db, post.ID); err != nil {
		t.Fatalf("restore post: %v", err)
	}
	if _, err := GetPost(db, post.ID); err != nil {
		t.Fatalf("restored post should be visible: %v", err)
	}
}

func TestListPostsPagination(t *testing.T) {
	db := newTestDB(t)
	user := seedUser(t, db, "author")
	for i := 0; i < 3; i++ {
		seedPost(t, db, user.ID, "post")
	}
	deleted := seedPost(t, db, user.ID, "gone")
	if err := SoftDeletePost(db, deleted.ID); err != nil {
		t.Fatalf("soft delete: %v", err)
	}

	posts, total, err := ListPosts(db, 0, 10)
	if err != nil {
		t.Fatalf("list posts: %v", err)
	}
	if total != 3 || len(posts) != 3 {
		t.Errorf("live posts = %d (total %d), want 3", len(posts), total)
	}

	deletedPosts, total, err := ListDeletedPosts(db, 0, 10)
	if err != nil {
		t.Fatalf("list deleted posts: %v", err)
	}
	if total != 1 || len(deletedPosts) != 1 {
		t.Errorf("deleted posts = %d (total %d), want 1", len(deletedPosts), total)
	}
}

func TestCommentsOnPost(t *testing.T) {
	db := newTestDB(t)
	user := seedUser(t, db, "author")
	post := seedPost(t, db, user.ID, "with comments")

	comment := &models.Comment{Content: "nice", AuthorName: "reader"}
	if err := CreateComment(db, post.ID, comment); err != nil {
		t.Fatalf("create comment: %v", err)
	}
	hidden := &models.Comment{Content: "spam", AuthorName: "bot"}
	if err := CreateComment(db, post.ID, hidden); err != nil {
		t.Fatalf("create comment: %v", err)
	}
	if err := SoftDeleteComment(db, hidden.ID); err != nil {
		t.Fatalf("soft delete comment: %v", err)
	}

	got, err := GetPost(db, post.ID)
	if err != nil {
		t.Fatalf("get post: %v", err)
	}
	if len(got.Comments) != 1 || got.Comments[0].Content != "nice" {
		t.Fatalf("expected one live comment, got %+v", got.Comments)
	}

	if _, err := GetComment(db, hidden.ID); !errors.Is(err, ErrNotFound) {
		t.Fatalf("expected ErrNotFound for deleted comment, got %v", err)
	}

	deleted, err := ListDeletedComments(db, 0, 10)
	if err != nil {
		t.Fatalf("list deleted comments: %v", err)
	}
	if len(deleted) != 1 || deleted[0].ID != hidden.ID {
		t.Fatalf("deleted comments = %+v, want only the hidden one", deleted)
	}

	if err := RestoreComment(db, hidden.ID); err != nil {
		t.Fatalf("restore comment: %v", err)
	}
	if _, err := GetComment(db, hidden.ID); err != nil {
		t.Fatalf("restored comment should be visible: %v", err)
	}
}

func TestTagAssociation(t *testing.T) {
	db := newTestDB(t)
	user := seedUser(t, db, "author")
	post := seedPost(t, db, user.ID, "tagged")

	tag := &models.Tag{Name: "go"}
	if err := CreateTag(db, tag); err != nil {
		t.Fatalf("create tag: %v", err)
	}

	if err := AddTagToPost(db, post.ID, tag.ID); err != nil {
		t.Fatalf("add tag: %v", err)
	}
	if err := AddTagToPost(db, post.ID, tag.ID); !errors.Is(err, ErrAlreadyAssociated) {
		t.Fatalf("expected ErrAlreadyAssociated, got %v", err)
	}

	got, err := GetPost(db, post.ID)
	if err != nil {
		t.Fatalf("get post: %v", err)
	}
	if len(got.Tags) != 1 || got.Tags[0].Name != "go" {
		t.Fatalf("expected tag on post, got %+v", got.Tags)
	}

	if err := RemoveTagFromPost(db, post.ID, tag.ID); err != nil {
		t.Fatalf("remove tag: %v", err)
	}
	if err := RemoveTagFromPost(db, post.ID, tag.ID); !errors.Is(err, ErrNotFound) {
		t.Fatalf("expected ErrNotFound removing absent tag, got %v", err)
	}

	if err := AddTagToPost(db, post.ID, 999); !errors.Is(err, ErrNotFound) {
		t.Fatalf("expected ErrNotFound for unknown tag, got %v", err)
	}
}
