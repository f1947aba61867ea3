// Package guides is the read-only registry of downloadable guides.
package guides

import (
	"context"
	"errors"
)

var (
	// ErrNotFound is returned when no guide carries the requested slug.
	ErrNotFound = errors.New("guide not found")
	// ErrAssetMissing is returned when a guide's file is absent from storage.
	ErrAssetMissing = errors.New("guide asset missing")
)

// Guide is one catalog record. File is relative to the storage root.
type Guide struct {
	Slug        string `json:"slug" yaml:"slug" db:"slug"`
	Title       string `json:"title" yaml:"title" db:"title"`
	Description string `json:"description,omitempty" yaml:"description,omitempty" db:"description"`
	File        string `json:"file" yaml:"file" db:"file"`
}

// Source loads the full catalog in display order.
type Source interface {
	Load(ctx context.Context) ([]Guide, error)
	Name() string
}
