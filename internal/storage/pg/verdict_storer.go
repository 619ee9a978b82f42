package pg

import (
	"context"
	"fmt"
	"log/slog"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"

	"github.com/DjordjeVuckovic/proplogic/internal/storage"
	"github.com/DjordjeVuckovic/proplogic/internal/verdict"
)

const verdictsTable = "verdicts"

var verdictColumns = []string{
	"id", "suite", "case_id", "kind", "formula", "stage", "error",
	"accepted", "tree", "results", "latency_ns", "created_at",
}

type Storer struct {
	pool *ConnectionPool
}

func NewStorer(pool *ConnectionPool) (*Storer, error) {
	if pool == nil {
		return nil, fmt.Errorf("pg storer needs a connection pool")
	}
	return &Storer{pool: pool}, nil
}

func (s *Storer) Save(ctx context.Context, rec verdict.Record) (uuid.UUID, error) {
	storage.Prepare(&rec)

	cmd := `
        INSERT INTO verdicts (id, suite, case_id, kind, formula, stage, error, accepted, tree, results, latency_ns, created_at)
        VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10, $11, $12)
        RETURNING id;
    `
	var id uuid.UUID
	err := s.pool.conn.QueryRow(ctx, cmd, row(rec)...).Scan(&id)
	if err != nil {
		return uuid.Nil, fmt.Errorf("failed to insert verdict: %w", err)
	}

	return id, nil
}

func (s *Storer) SaveBulk(ctx context.Context, recs []verdict.Record) error {
	rows := make([][]any, len(recs))
	for i, rec := range recs {
		storage.Prepare(&rec)
		rows[i] = row(rec)
	}

	n, err := s.pool.conn.CopyFrom(
		ctx,
		pgx.Identifier{verdictsTable},
		verdictColumns,
		pgx.CopyFromRows(rows),
	)
	if err != nil {
		return fmt.Errorf("failed to bulk insert verdicts: %w", err)
	}

	slog.Info("verdicts copied", "count", n, "table", verdictsTable)
	return nil
}

func (s *Storer) List(ctx context.Context, offset, limit int) ([]verdict.Record, int64, error) {
	offset = max(offset, 0)
	var total int64
	if err := s.pool.conn.QueryRow(ctx, `SELECT count(*) FROM verdicts`).Scan(&total); err != nil {
		return nil, 0, fmt.Errorf("failed to count verdicts: %w", err)
	}

	query := `
        SELECT id, suite, case_id, kind, formula, stage, error, accepted, tree, results, latency_ns, created_at
        FROM verdicts
        ORDER BY created_at DESC, id DESC
        OFFSET $1 LIMIT $2;
    `
	rows, err := s.pool.conn.Query(ctx, query, offset, limit)
	if err != nil {
		return nil, 0, fmt.Errorf("failed to list verdicts: %w", err)
	}

	recs, err := pgx.CollectRows(rows, func(r pgx.CollectableRow) (verdict.Record, error) {
		var rec verdict.Record
		var kind string
		err := r.Scan(
			&rec.ID, &rec.Suite, &rec.CaseID, &kind, &rec.Formula, &rec.Stage, &rec.Error,
			&rec.Accepted, &rec.Tree, &rec.Results, &rec.LatencyNs, &rec.CreatedAt,
		)
		rec.Kind = verdict.Kind(kind)
		return rec, err
	})
	if err != nil {
		return nil, 0, fmt.Errorf("failed to scan verdicts: %w", err)
	}

	return recs, total, nil
}

func (s *Storer) Healthy(ctx context.Context) bool {
	return s.pool.Ping(ctx) == nil
}

func (s *Storer) Close() error {
	s.pool.Close()
	return nil
}

func row(rec verdict.Record) []any {
	results := rec.Results
	if results == nil {
		results = []bool{}
	}
	return []any{
		rec.ID,
		rec.Suite,
		rec.CaseID,
		string(rec.Kind),
		rec.Formula,
		rec.Stage,
		rec.Error,
		rec.Accepted,
		rec.Tree,
		results,
		rec.LatencyNs,
		rec.CreatedAt,
	}
}
