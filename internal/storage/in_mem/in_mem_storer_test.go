package in_mem

import (
	"context"
	"math"
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/DjordjeVuckovic/proplogic/internal/storage"
	"github.com/DjordjeVuckovic/proplogic/internal/verdict"
)

var _ storage.Store = (*InMemStorer)(nil)

func TestInMemStorer_SaveAndList(t *testing.T) {
	ctx := context.Background()
	s := NewInMemStorer()

	base := time.Date(2026, 1, 1, 0, 0, 0, 0, time.UTC)
	var ids []uuid.UUID
	for i := 0; i < 5; i++ {
		rec := verdict.New(verdict.KindFormula, "p1")
		rec.CreatedAt = base.Add(time.Duration(i) * time.Minute)
		id, err := s.Save(ctx, rec)
		require.NoError(t, err)
		ids = append(ids, id)
	}

	got, total, err := s.List(ctx, 0, 2)
	require.NoError(t, err)
	assert.Equal(t, int64(5), total)
	require.Len(t, got, 2)
	assert.Equal(t, ids[4], got[0].ID)
	assert.Equal(t, ids[3], got[1].ID)

	got, _, err = s.List(ctx, 4, 2)
	require.NoError(t, err)
	require.Len(t, got, 1)
	assert.Equal(t, ids[0], got[0].ID)

	got, _, err = s.List(ctx, 10, 2)
	require.NoError(t, err)
	assert.Empty(t, got)
}

func TestInMemStorer_SaveAssignsID(t *testing.T) {
	s := NewInMemStorer()

	id, err := s.Save(context.Background(), verdict.Record{Formula: "p1∧p2"})
	require.NoError(t, err)
	assert.NotEqual(t, uuid.Nil, id)

	got, _, err := s.List(context.Background(), 0, 10)
	require.NoError(t, err)
	require.Len(t, got, 1)
	assert.False(t, got[0].CreatedAt.IsZero())
}

func TestInMemStorer_SaveBulk(t *testing.T) {
	s := NewInMemStorer()
	recs := []verdict.Record{
		verdict.New(verdict.KindFormula, "p1"),
		verdict.New(verdict.KindProgram, "PUSH 1\nPRINT"),
		{Formula: "p2"},
	}

	require.NoError(t, s.SaveBulk(context.Background(), recs))

	_, total, err := s.List(context.Background(), 0, 0)
	require.NoError(t, err)
	assert.Equal(t, int64(3), total)
	assert.NoError(t, s.Close())
}

func TestInMemStorer_ListOutOfRange(t *testing.T) {
	ctx := context.Background()
	s := NewInMemStorer()
	_, err := s.Save(ctx, verdict.New(verdict.KindFormula, "p1"))
	require.NoError(t, err)

	tests := []struct {
		name          string
		offset, limit int
		wantLen       int
	}{
		{"negative offset", -100, 10, 1},
		{"huge offset", math.MaxInt - 5, 100, 0},
		{"huge limit", 0, math.MaxInt, 1},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, total, err := s.List(ctx, tt.offset, tt.limit)
			require.NoError(t, err)
			assert.Equal(t, int64(1), total)
			assert.Len(t, got, tt.wantLen)
		})
	}
}
