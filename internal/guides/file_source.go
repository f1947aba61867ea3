package guides

import (
	"context"
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"gopkg.in/yaml.v3"
)

// FileSource reads the catalog from a JSON array, or YAML when the
// file extension is .yaml or .yml.
type FileSource struct {
	Path string
}

// Name implements Source.
func (s FileSource) Name() string { return "file" }

// Load implements Source. A missing file is reported as an error wrapping fs.ErrNotExist.
func (s FileSource) Load(ctx context.Context) ([]Guide, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}
	data, err := os.ReadFile(s.Path)
	if err != nil {
		return nil, fmt.Errorf("read catalog: %w", err)
	}

	var list []Guide
	switch strings.ToLower(filepath.Ext(s.Path)) {
	case ".yaml", ".yml":
		err = yaml.Unmarshal(data, &list)
	default:
		err = json.Unmarshal(data, &list)
	}
	if err != nil {
		return nil, fmt.Errorf("parse catalog %s: %w", filepath.Base(s.Path), err)
	}
	return list, nil
}
