package content

import (
	"errors"
	"fmt"
	"strings"
)

var (
	// ErrMissingStore is reported by a Store whose directory does not exist.
	// Load treats it as an empty catalog.
	ErrMissingStore = errors.New("content store not found")

	// ErrDuplicateSlug is wrapped by DuplicateSlugError.
	ErrDuplicateSlug = errors.New("duplicate slug")

	ErrNoFrontMatter = errors.New("no front-matter block")
	ErrMissingField  = errors.New("missing required field")
	ErrInvalidDate   = errors.New("invalid date")
	ErrEmptySlug     = errors.New("file name has no letters or digits")
)

// DuplicateSlugError aborts catalog construction when two files map to the same slug.
type DuplicateSlugError struct {
	Slug  string
	Paths []string
}

func (e *DuplicateSlugError) Error() string {
	return fmt.Sprintf("content: duplicate slug %q from %s", e.Slug, strings.Join(e.Paths, ", "))
}

func (e *DuplicateSlugError) Unwrap() error {
	return ErrDuplicateSlug
}

// MalformedError describes a document that was skipped during loading.
type MalformedError struct {
	Path string
	Err  error
}

func (e *MalformedError) Error() string {
	return fmt.Sprintf("content: %s: %v", e.Path, e.Err)
}

func (e *MalformedError) Unwrap() error {
	return e.Err
}
