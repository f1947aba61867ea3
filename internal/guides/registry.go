package guides

import (
	"context"
	"errors"
	"fmt"
	"io"
	"io/fs"
	"log/slog"
	"os"
	"path/filepath"
	"strings"

	"github.com/m3rciful/guidebot/core/logger"
)

// Registry looks guides up in a Source and resolves their files under a storage root.
// The catalog is re-read on every call, so edits apply without a restart.
type Registry struct {
	source Source
	root   string
}

// NewRegistry creates a Registry over src with assets stored under root.
func NewRegistry(src Source, root string) *Registry {
	return &Registry{source: src, root: filepath.Clean(root)}
}

// List returns the catalog in source order. Catalog failures are logged and yield an empty list.
func (r *Registry) List(ctx context.Context) []Guide {
	if r == nil || r.source == nil {
		return nil
	}
	raw, err := r.source.Load(ctx)
	if err != nil {
		level := slog.LevelError
		if errors.Is(err, fs.ErrNotExist) {
			level = slog.LevelWarn
		}
		logger.Event(ctx, "guides", level, "catalog.load",
			slog.String("status", "fail"),
			slog.String("source", r.source.Name()),
			logger.Err(err),
		)
		return nil
	}
	return validate(ctx, raw)
}

// validate drops records without slug or file and keeps the first of duplicated slugs.
func validate(ctx context.Context, raw []Guide) []Guide {
	out := make([]Guide, 0, len(raw))
	seen := make(map[string]struct{}, len(raw))
	for i, g := range raw {
		g.Slug = strings.TrimSpace(g.Slug)
		g.Title = strings.TrimSpace(g.Title)
		g.Description = strings.TrimSpace(g.Description)
		g.File = strings.TrimSpace(g.File)

		reason := ""
		if _, dup := seen[g.Slug]; dup {
			reason = "duplicate_slug"
		}
		if g.Slug == "" || g.File == "" {
			reason = "incomplete"
		}
		if reason != "" {
			logger.Warn(ctx, "guides", "catalog.skip",
				slog.Int("index", i),
				slog.String("slug", g.Slug),
				slog.String("cause", reason),
			)
			continue
		}
		seen[g.Slug] = struct{}{}
		out = append(out, g)
	}
	return out
}

// Find returns the guide with exactly the given slug or ErrNotFound.
func (r *Registry) Find(ctx context.Context, slug string) (Guide, error) {
	if slug != "" {
		for _, g := range r.List(ctx) {
			if g.Slug == slug {
				return g, nil
			}
		}
	}
	return Guide{}, fmt.Errorf("%w: %q", ErrNotFound, slug)
}

// AssetPath resolves the guide's file under the storage root.
// Paths escaping the root are reported as ErrAssetMissing.
func (r *Registry) AssetPath(g Guide) (string, error) {
	if g.File == "" || filepath.IsAbs(g.File) {
		return "", fmt.Errorf("%w: %q", ErrAssetMissing, g.File)
	}
	p := filepath.Join(r.root, g.File)
	rel, err := filepath.Rel(r.root, p)
	if err != nil || rel == ".." || strings.HasPrefix(rel, ".."+string(filepath.Separator)) {
		return "", fmt.Errorf("%w: %q escapes storage", ErrAssetMissing, g.File)
	}
	return p, nil
}

// AssetExists reports whether the guide's file is present as a regular file.
func (r *Registry) AssetExists(g Guide) bool {
	p, err := r.AssetPath(g)
	if err != nil {
		return false
	}
	st, err := os.Stat(p)
	return err == nil && st.Mode().IsRegular()
}

// Asset is an opened guide file. The caller must Close it.
type Asset struct {
	io.ReadCloser
	Name string
}

// OpenAsset opens the guide's file for streaming.
func (r *Registry) OpenAsset(g Guide) (*Asset, error) {
	p, err := r.AssetPath(g)
	if err != nil {
		return nil, err
	}
	f, err := os.Open(p)
	if err != nil {
		if errors.Is(err, fs.ErrNotExist) {
			return nil, fmt.Errorf("%w: %s", ErrAssetMissing, g.File)
		}
		return nil, fmt.Errorf("open asset: %w", err)
	}
	st, err := f.Stat()
	if err != nil || !st.Mode().IsRegular() {
		_ = f.Close()
		return nil, fmt.Errorf("%w: %s is not a regular file", ErrAssetMissing, g.File)
	}
	return &Asset{ReadCloser: f, Name: filepath.Base(p)}, nil
}
