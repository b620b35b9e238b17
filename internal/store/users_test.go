package store

import (
	"errors"
	"fmt"
	"testing"
)

func TestUserLookupsExcludeDeleted(t *testing.T) {
	db := newTestDB(t)
	user := seedUser(t, db, "alice")

	if err := SoftDeleteUser(db, user.ID); err != nil {
		t.Fatalf("soft delete: %v", err)
	}

	// GetUser still sees the row, email lookup does not.
	got, err := GetUser(db, user.ID)
	if err != nil {
		t.Fatalf("get user: %v", err)
	}
	if !got.IsDeleted {
		t.Error("expected IsDeleted after soft delete")
	}
	if got.DeletedAt == nil {
		t.Error("expected DeletedAt to be set")
	}

	if _, err := GetUserByEmail(db, "alice@example.com"); !errors.Is(err, ErrNotFound) {
		t.Fatalf("expected ErrNotFound for deleted user email, got %v", err)
	}
}

func TestSoftDeleteAndRestoreUser(t *testing.T) {
	db := newTestDB(t)
	user := seedUser(t, db, "bob")

	if err := SoftDeleteUser(db, user.ID); err != nil {
		t.Fatalf("soft delete: %v", err)
	}
	if err := SoftDeleteUser(db, user.ID); !errors.Is(err, ErrNotFound) {
		t.Fatalf("double delete should be ErrNotFound, got %v", err)
	}

	deleted, err := ListDeletedUsers(db, 0, 10)
	if err != nil {
		t.Fatalf("list deleted: %v", err)
	}
	if len(deleted) != 1 || deleted[0].ID != user.ID {
		t.Fatalf("expected bob among deleted users, got %+v", deleted)
	}

	if err := RestoreUser(db, user.ID); err != nil {
		t.Fatalf("restore: %v", err)
	}
	if err := RestoreUser(db, user.ID); !errors.Is(err, ErrNotFound) {
		t.Fatalf("restoring a live user should be ErrNotFound, got %v", err)
	}

	got, err := GetUser(db, user.ID)
	if err != nil {
		t.Fatalf("get user: %v", err)
	}
	if got.IsDeleted || got.DeletedAt != nil {
		t.Error("restore did not clear soft-delete state")
	}
}

func TestUpdateDeletedUserRejected(t *testing.T) {
	db := newTestDB(t)
	user := seedUser(t, db, "carol")

	if err := SoftDeleteUser(db, user.ID); err != nil {
		t.Fatalf("soft delete: %v", err)
	}

	_, err := UpdateUser(db, user.ID, map[string]interface{}{"full_name": "Carol"})
	if !errors.Is(err, ErrDeleted) {
		t.Fatalf("expected ErrDeleted, got %v", err)
	}
}

func TestListUsersPagination(t *testing.T) {
	db := newTestDB(t)
	for i := 0; i < 5; i++ {
		seedUser(t, db, fmt.Sprintf("user%d", i))
	}
	if err := SoftDeleteUser(db, 1); err != nil {
		t.Fatalf("soft delete: %v", err)
	}

	users, total, err := ListUsers(db, 0, 2)
	if err != nil {
		t.Fatalf("list users: %v", err)
	}
	if total != 4 {
		t.Errorf("total = %d, want 4", total)
	}
	if len(users) != 2 {
		t.Errorf("page size = %d, want 2", len(users))
	}

	users, _, err = ListUsers(db, 4, 2)
	if err != nil {
		t.Fatalf("list users offset: %v", err)
	}
	if len(users) != 0 {
		t.Errorf("expected empty page past the end, got %d rows", len(users))
	}
}

func TestGetUserWithPostsFiltersDeletedPosts(t *testing.T) {
	db := newTestDB(t)
	user := seedUser(t, db, "dave")
	keep := seedPost(t, db, user.ID, "keep")
	drop := seedPost(t, db, user.ID, "drop")

	if err := SoftDeletePost(db, drop.ID); err != nil {
		t.Fatalf("soft delete post: %v", err)
	}

	got, err := GetUserWithPosts(db, user.ID)
	if err != nil {
		t.Fatalf("get user with posts: %v", err)
	}
	if len(got.Posts) != 1 || got.Posts[0].ID != keep.ID {
		t.Fatalf("expected only the live post, got %+v", got.Posts)
	}
}
