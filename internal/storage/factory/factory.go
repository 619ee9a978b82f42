package factory

import (
	"context"
	"fmt"

	"github.com/DjordjeVuckovic/proplogic/internal/storage"
	"github.com/DjordjeVuckovic/proplogic/internal/storage/es"
	"github.com/DjordjeVuckovic/proplogic/internal/storage/in_mem"
	"github.com/DjordjeVuckovic/proplogic/internal/storage/jsonfile"
	"github.com/DjordjeVuckovic/proplogic/internal/storage/pg"
)

// NewStorer opens the verdict store selected by cfg.
func NewStorer(ctx context.Context, cfg *StorageConfig) (storage.Store, error) {
	switch cfg.Type {
	case storage.PG:
		if cfg.Pg == nil {
			return nil, fmt.Errorf("missing PostgreSQL configuration")
		}
		pool, err := pg.NewConnectionPool(ctx, *cfg.Pg)
		if err != nil {
			return nil, fmt.Errorf("failed to create PostgreSQL connection pool: %w", err)
		}
		s, err := pg.NewStorer(pool)
		if err != nil {
			pool.Close()
			return nil, err
		}
		return s, nil

	case storage.ES:
		if cfg.Es == nil {
			return nil, fmt.Errorf("missing Elasticsearch configuration")
		}
		s, err := es.NewStorer(ctx, *cfg.Es)
		if err != nil {
			return nil, fmt.Errorf("failed to create Elasticsearch storer: %w", err)
		}
		return s, nil

	case storage.JSON:
		s, err := jsonfile.NewStorer(cfg.JSONPath)
		if err != nil {
			return nil, err
		}
		return s, nil

	case storage.InMem:
		return in_mem.NewInMemStorer(), nil

	default:
		return nil, fmt.Errorf(string(storage.ErrUnsupportedStorer), cfg.Type)
	}
}
