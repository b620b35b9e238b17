package store

import (
	"errors"
	"testing"

	"github.com/nmoreno/blogapi/internal/db/models"
)

func TestTagCRUD(t *testing.T) {
	db := newTestDB(t)

	tag := &models.Tag{Name: "golang"}
	if err := CreateTag(db, tag); err != nil {
		t.Fatalf("create tag: %v", err)
	}

	byName, err := GetTagByName(db, "golang")
	if err != nil {
		t.Fatalf("get tag by name: %v", err)
	}
	if byName.ID != tag.ID {
		t.Errorf("lookup returned wrong tag: %d", byName.ID)
	}

	updated, err := UpdateTag(db, tag.ID, map[string]interface{}{"name": "go"})
	if err != nil {
		t.Fatalf("update tag: %v", err)
	}
	if updated.Name != "go" {
		t.Errorf("name = %q, want %q", updated.Name, "go")
	}

	if err := SoftDeleteTag(db, tag.ID); err != nil {
		t.Fatalf("soft delete tag: %v", err)
	}
	if _, err := GetTag(db, tag.ID); !errors.Is(err, ErrNotFound) {
		t.Fatalf("expected ErrNotFound after delete, got %v", err)
	}

	deleted, total, err := ListDeletedTags(db, 0, 10)
	if err != nil {
		t.Fatalf("list deleted tags: %v", err)
	}
	if total != 1 || len(deleted) != 1 {
		t.Fatalf("deleted tags = %d (total %d), want 1", len(deleted), total)
	}

	if err := RestoreTag(db, tag.ID); err != nil {
		t.Fatalf("restore tag: %v", err)
	}

	tags, total, err := ListTags(db, 0, 10)
	if err != nil {
		t.Fatalf("list tags: %v", err)
	}
	if total != 1 || len(tags) != 1 {
		t.Fatalf("live tags = %d (total %d), want 1", len(tags), total)
	}
}

func TestGetTagWithPosts(t *testing.T) {
	db := newTestDB(t)
	user := seedUser(t, db, "author")
	post := seedPost(t, db, user.ID, "tagged post")

	tag := &models.Tag{Name: "news"}
	if err := CreateTag(db, tag); err != nil {
		t.Fatalf("create tag: %v", err)
	}
	if err := AddTagToPost(db, post.ID, tag.ID); err != nil {
		t.Fatalf("add tag: %v", err)
	}

	got, err := GetTag(db, tag.ID)
	if err != nil {
		t.Fatalf("get tag: %v", err)
	}
	if len(got.Posts) != 1 || got.Posts[0].ID != post.ID {
		t.Fatalf("expected post preloaded on tag, got %+v", got.Posts)
	}
}
