package storage

import (
	"context"
	"time"

	"github.com/google/uuid"

	"github.com/DjordjeVuckovic/proplogic/internal/verdict"
)

type Storer interface {
	Save(ctx context.Context, rec verdict.Record) (uuid.UUID, error)
	SaveBulk(ctx context.Context, recs []verdict.Record) error
}

// Lister pages through stored verdicts, newest first, and reports the total
// count.
type Lister interface {
	List(ctx context.Context, offset, limit int) ([]verdict.Record, int64, error)
}

// Store is a backend that can both save and list verdicts.
type Store interface {
	Storer
	Lister
	Close() error
}

type Type string

const (
	ES    Type = "es"
	PG    Type = "pg"
	InMem Type = "in_mem"
	JSON  Type = "json"
)

func (t Type) Valid() bool {
	switch t {
	case ES, PG, InMem, JSON:
		return true
	}
	return false
}

type StorerError string

const (
	ErrUnsupportedStorer StorerError = "unsupported storer type: %s"
)

func (e StorerError) Error() string {
	return string(e)
}

// Prepare fills the ID and creation time of a record when unset.
func Prepare(rec *verdict.Record) {
	if rec.ID == uuid.Nil {
		rec.ID = uuid.New()
	}
	if rec.CreatedAt.IsZero() {
		rec.CreatedAt = time.Now().UTC()
	}
}
