package guides

import (
	"context"
	"errors"
	"io"
	"os"
	"path/filepath"
	"testing"
)

func writeFile(t *testing.T, path, data string) {
	t.Helper()
	if err := os.MkdirAll(filepath.Dir(path), 0o755); err != nil {
		t.Fatalf("mkdir: %v", err)
	}
	if err := os.WriteFile(path, []byte(data), 0o600); err != nil {
		t.Fatalf("write %s: %v", path, err)
	}
}

const catalogJSON = `[
  {"slug": "detox", "title": "Detox Guide", "file": "detox.pdf"},
  {"slug": "plate", "title": "Healthy Plate", "description": "Builder", "file": "plate.pdf"},
  {"slug": "", "title": "No slug", "file": "x.pdf"},
  {"slug": "detox", "title": "Shadowed", "file": "other.pdf"},
  {"slug": "nofile", "title": "No file"}
]`

func TestRegistryListAndFind(t *testing.T) {
	dir := t.TempDir()
	catalog := filepath.Join(dir, "guides.json")
	writeFile(t, catalog, catalogJSON)
	reg := NewRegistry(FileSource{Path: catalog}, filepath.Join(dir, "storage"))
	ctx := context.Background()

	list := reg.List(ctx)
	if len(list) != 2 || list[0].Slug != "detox" || list[1].Slug != "plate" {
		t.Fatalf("list = %+v", list)
	}

	for _, g := range list {
		got, err := reg.Find(ctx, g.Slug)
		if err != nil || got != g {
			t.Fatalf("Find(%q) = %+v, %v", g.Slug, got, err)
		}
	}
	if got, _ := reg.Find(ctx, "detox"); got.Title != "Detox Guide" {
		t.Fatalf("duplicate slug must keep the first record, got %q", got.Title)
	}
	for _, slug := range []string{"Detox", "missing", "", "nofile"} {
		if _, err := reg.Find(ctx, slug); !errors.Is(err, ErrNotFound) {
			t.Fatalf("Find(%q) err = %v, want ErrNotFound", slug, err)
		}
	}
}

func TestRegistryRereadsCatalog(t *testing.T) {
	dir := t.TempDir()
	catalog := filepath.Join(dir, "guides.json")
	writeFile(t, catalog, `[]`)
	reg := NewRegistry(FileSource{Path: catalog}, dir)

	if _, err := reg.Find(context.Background(), "detox"); !errors.Is(err, ErrNotFound) {
		t.Fatalf("expected not found on empty catalog")
	}
	writeFile(t, catalog, `[{"slug":"detox","title":"Detox","file":"detox.pdf"}]`)
	if _, err := reg.Find(context.Background(), "detox"); err != nil {
		t.Fatalf("new guide not visible without restart: %v", err)
	}
}

func TestRegistryBrokenCatalogIsEmpty(t *testing.T) {
	dir := t.TempDir()
	cases := map[string]string{
		"missing.json": "",
		"broken.json":  `{"slug":`,
		"object.json":  `{"slug":"detox"}`,
		"broken.yaml":  "- slug: [",
	}
	for name, data := range cases {
		path := filepath.Join(dir, name)
		if data != "" {
			writeFile(t, path, data)
		}
		reg := NewRegistry(FileSource{Path: path}, dir)
		if got := reg.List(context.Background()); len(got) != 0 {
			t.Fatalf("%s: list = %+v, want empty", name, got)
		}
	}
}

func TestRegistryYAMLCatalog(t *testing.T) {
	dir := t.TempDir()
	catalog := filepath.Join(dir, "guides.yaml")
	writeFile(t, catalog, "- slug: detox\n  title: Detox Guide\n  file: detox.pdf\n")
	list := NewRegistry(FileSource{Path: catalog}, dir).List(context.Background())
	if len(list) != 1 || list[0].File != "detox.pdf" {
		t.Fatalf("list = %+v", list)
	}
}

func TestRegistryAssets(t *testing.T) {
	dir := t.TempDir()
	root := filepath.Join(dir, "storage")
	writeFile(t, filepath.Join(root, "detox.pdf"), "%PDF-detox")
	writeFile(t, filepath.Join(dir, "secret.txt"), "secret")
	reg := NewRegistry(FileSource{}, root)

	detox := Guide{Slug: "detox", File: "detox.pdf"}
	if !reg.AssetExists(detox) {
		t.Fatalf("asset should exist")
	}
	asset, err := reg.OpenAsset(detox)
	if err != nil {
		t.Fatalf("open: %v", err)
	}
	data, _ := io.ReadAll(asset)
	_ = asset.Close()
	if string(data) != "%PDF-detox" || asset.Name != "detox.pdf" {
		t.Fatalf("asset = %q %q", asset.Name, data)
	}

	for _, file := range []string{"absent.pdf", "../secret.txt", "/etc/passwd", "."} {
		g := Guide{Slug: "x", File: file}
		if reg.AssetExists(g) {
			t.Fatalf("AssetExists(%q) = true", file)
		}
		if _, err := reg.OpenAsset(g); !errors.Is(err, ErrAssetMissing) {
			t.Fatalf("OpenAsset(%q) err = %v, want ErrAssetMissing", file, err)
		}
	}
}
