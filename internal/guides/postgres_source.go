package guides

import (
	"context"
	"fmt"

	"github.com/jmoiron/sqlx"
)

const selectGuides = `
SELECT slug, title, COALESCE(description, '') AS description, file
FROM guides
ORDER BY position, slug`

// PostgresSource reads the catalog from the guides table.
type PostgresSource struct {
	DB *sqlx.DB
}

// Name implements Source.
func (s PostgresSource) Name() string { return "postgres" }

// Load implements Source.
func (s PostgresSource) Load(ctx context.Context) ([]Guide, error) {
	if s.DB == nil {
		return nil, fmt.Errorf("postgres catalog: nil db")
	}
	var list []Guide
	if err := s.DB.SelectContext(ctx, &list, selectGuides); err != nil {
		return nil, fmt.Errorf("select guides: %w", err)
	}
	return list, nil
}
