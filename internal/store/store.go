// Package store implements database access for the blog aggregates.
// Deletes are soft: rows are flagged and filtered out of lookups, and
// can be restored later.
package store

import (
	"errors"

	"gorm.io/gorm"
)

// ErrNotFound is returned when a record does not exist or is hidden by
// a soft delete.
var ErrNotFound = gorm.ErrRecordNotFound

// ErrDeleted is returned when an operation targets a soft-deleted row
// that must be restored first.
var ErrDeleted = errors.New("record is deleted")

// ErrAlreadyAssociated is returned when attaching a tag that is
// already on the post.
var ErrAlreadyAssociated = errors.New("tag already associated with post")
