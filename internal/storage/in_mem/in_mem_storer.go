package in_mem

import (
	"context"
	"log/slog"
	"sort"
	"sync"

	"github.com/google/uuid"

	"github.com/DjordjeVuckovic/proplogic/internal/storage"
	"github.com/DjordjeVuckovic/proplogic/internal/verdict"
)

type InMemStorer struct {
	storageLock sync.RWMutex
	storage     map[uuid.UUID]verdict.Record
}

func NewInMemStorer() *InMemStorer {
	return &InMemStorer{
		storage: make(map[uuid.UUID]verdict.Record),
	}
}

func (s *InMemStorer) Save(ctx context.Context, rec verdict.Record) (uuid.UUID, error) {
	storage.Prepare(&rec)

	s.storageLock.Lock()
	defer s.storageLock.Unlock()
	s.storage[rec.ID] = rec

	slog.Debug("verdict saved in memory", "id", rec.ID, "case", rec.CaseID, "accepted", rec.Accepted)
	return rec.ID, nil
}

func (s *InMemStorer) SaveBulk(ctx context.Context, recs []verdict.Record) error {
	s.storageLock.Lock()
	defer s.storageLock.Unlock()

	for _, rec := range recs {
		storage.Prepare(&rec)
		s.storage[rec.ID] = rec
	}
	slog.Info("verdicts saved in memory", "count", len(recs))

	return nil
}

func (s *InMemStorer) List(ctx context.Context, offset, limit int) ([]verdict.Record, int64, error) {
	s.storageLock.RLock()
	all := make([]verdict.Record, 0, len(s.storage))
	for _, rec := range s.storage {
		all = append(all, rec)
	}
	s.storageLock.RUnlock()

	sort.Slice(all, func(i, j int) bool {
		if all[i].CreatedAt.Equal(all[j].CreatedAt) {
			return all[i].ID.String() > all[j].ID.String()
		}
		return all[i].CreatedAt.After(all[j].CreatedAt)
	})

	return page(all, offset, limit), int64(len(all)), nil
}

func (s *InMemStorer) Close() error {
	return nil
}

func page(all []verdict.Record, offset, limit int) []verdict.Record {
	if offset < 0 {
		offset = 0
	}
	if offset >= len(all) {
		return []verdict.Record{}
	}
	end := len(all)
	if limit > 0 && limit < end-offset {
		end = offset + limit
	}
	return all[offset:end]
}
