//go:build integration

package pg

import (
	"context"
	"os"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/testcontainers/testcontainers-go"

	"github.com/DjordjeVuckovic/proplogic/internal/storage"
	"github.com/DjordjeVuckovic/proplogic/internal/verdict"
	pkgtesting "github.com/DjordjeVuckovic/proplogic/pkg/testing"
)

var (
	testCtx  context.Context
	testPool *ConnectionPool
)

var _ storage.Store = (*Storer)(nil)

func TestMain(m *testing.M) {
	testCtx = context.Background()

	pg, err := pkgtesting.NewPGContainer(testCtx, pkgtesting.PGConfig{
		Database: "proplogic_test_db",
		Username: "test",
		Password: "test",
	})
	if err != nil {
		panic(err)
	}

	testPool, err = NewConnectionPool(testCtx, PoolConfig{ConnStr: pg.ConnString})
	if err != nil {
		_ = testcontainers.TerminateContainer(pg.Container)
		panic(err)
	}

	code := m.Run()

	testPool.Close()
	_ = testcontainers.TerminateContainer(pg.Container)
	os.Exit(code)
}

func truncateTable(t *testing.T) {
	t.Helper()
	_, err := testPool.GetConn().Exec(testCtx, "TRUNCATE TABLE verdicts")
	require.NoError(t, err)
}

func TestStorer_SaveAndList(t *testing.T) {
	truncateTable(t)
	s, err := NewStorer(testPool)
	require.NoError(t, err)
	assert.True(t, s.Healthy(testCtx))

	rec := verdict.New(verdict.KindFormula, "(p1⇒p2)→((¬p1)∨p2)")
	rec.Accept("PRODUIT\n", []bool{true})
	rec.CreatedAt = time.Now().UTC().Add(-time.Minute)

	id, err := s.Save(testCtx, rec)
	require.NoError(t, err)
	assert.Equal(t, rec.ID, id)

	rejected := verdict.New(verdict.KindFormula, "p1∧P2")
	rejected.Reject("lexical", nil)
	_, err = s.Save(testCtx, rejected)
	require.NoError(t, err)

	got, total, err := s.List(testCtx, 0, 10)
	require.NoError(t, err)
	assert.Equal(t, int64(2), total)
	require.Len(t, got, 2)
	assert.Equal(t, rejected.ID, got[0].ID)
	assert.Equal(t, "lexical", got[0].Stage)
	assert.Equal(t, rec.ID, got[1].ID)
	assert.Equal(t, []bool{true}, got[1].Results)
	assert.Equal(t, verdict.KindFormula, got[1].Kind)
}

func TestStorer_SaveBulk(t *testing.T) {
	truncateTable(t)
	s, err := NewStorer(testPool)
	require.NoError(t, err)

	recs := make([]verdict.Record, 0, 20)
	for i := 0; i < 20; i++ {
		recs = append(recs, verdict.New(verdict.KindProgram, "PUSH 1\nPRINT"))
	}
	require.NoError(t, s.SaveBulk(testCtx, recs))

	got, total, err := s.List(testCtx, 15, 10)
	require.NoError(t, err)
	assert.Equal(t, int64(20), total)
	assert.Len(t, got, 5)
}
