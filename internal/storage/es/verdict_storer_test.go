//go:build integration

package es

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/DjordjeVuckovic/proplogic/internal/storage"
	"github.com/DjordjeVuckovic/proplogic/internal/verdict"
	pkgtesting "github.com/DjordjeVuckovic/proplogic/pkg/testing"
)

var _ storage.Store = (*Storer)(nil)

func TestStorer(t *testing.T) {
	ctx := context.Background()
	container := pkgtesting.NewESContainer(ctx, t)

	s, err := NewStorer(ctx, ClientConfig{
		Addresses: []string{container.Address},
		IndexName: "verdicts_test",
	})
	require.NoError(t, err)
	assert.True(t, s.Healthy(ctx))

	// a second storer finds the index already in place
	_, err = NewStorer(ctx, ClientConfig{Addresses: []string{container.Address}, IndexName: "verdicts_test"})
	require.NoError(t, err)

	older := verdict.New(verdict.KindFormula, "(p1⇒p2)→((¬p1)∨p2)")
	older.Accept("PRODUIT\n", []bool{true})
	older.CreatedAt = time.Now().UTC().Add(-time.Hour)
	id, err := s.Save(ctx, older)
	require.NoError(t, err)
	assert.Equal(t, older.ID, id)

	bulk := []verdict.Record{
		verdict.New(verdict.KindProgram, "PRINT"),
		verdict.New(verdict.KindFormula, "p1∧p4"),
	}
	require.NoError(t, s.SaveBulk(ctx, bulk))
	require.NoError(t, s.Refresh(ctx))

	got, total, err := s.List(ctx, 0, 10)
	require.NoError(t, err)
	assert.Equal(t, int64(3), total)
	require.Len(t, got, 3)
	assert.Equal(t, older.ID, got[2].ID)
	assert.Equal(t, []bool{true}, got[2].Results)

	got, _, err = s.List(ctx, 1, 1)
	require.NoError(t, err)
	assert.Len(t, got, 1)
}
