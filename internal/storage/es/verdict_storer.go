package es

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"log/slog"
	"sync/atomic"
	"time"

	"github.com/elastic/go-elasticsearch/v8"
	"github.com/elastic/go-elasticsearch/v8/esutil"
	"github.com/elastic/go-elasticsearch/v8/typedapi/types"
	"github.com/elastic/go-elasticsearch/v8/typedapi/types/enums/sortorder"
	"github.com/google/uuid"

	"github.com/DjordjeVuckovic/proplogic/internal/storage"
	"github.com/DjordjeVuckovic/proplogic/internal/verdict"
)

type Storer struct {
	client    *elasticsearch.TypedClient
	indexName string
}

// Document is the indexed form of a verdict.
type Document struct {
	ID        string    `json:"id"`
	Suite     string    `json:"suite"`
	CaseID    string    `json:"case_id"`
	Kind      string    `json:"kind"`
	Formula   string    `json:"formula"`
	Stage     string    `json:"stage"`
	Error     string    `json:"error"`
	Accepted  bool      `json:"accepted"`
	Tree      string    `json:"tree"`
	Results   []bool    `json:"results"`
	LatencyNs int64     `json:"latency_ns"`
	CreatedAt time.Time `json:"created_at"`
}

func NewStorer(ctx context.Context, config ClientConfig) (*Storer, error) {
	client, err := newClient(config)
	if err != nil {
		return nil, err
	}

	indexName := config.IndexName
	if indexName == "" {
		indexName = DefaultIndexName
	}
	storer := &Storer{
		client:    client,
		indexName: indexName,
	}

	if err := storer.EnsureIndex(ctx); err != nil {
		return nil, fmt.Errorf("failed to ensure index exists: %w", err)
	}

	return storer, nil
}

func (e *Storer) Save(ctx context.Context, rec verdict.Record) (uuid.UUID, error) {
	storage.Prepare(&rec)
	doc := toDocument(rec)

	res, err := e.client.Index(e.indexName).Id(doc.ID).Document(doc).Do(ctx)
	if err != nil {
		return uuid.Nil, fmt.Errorf("failed to index verdict: %w", err)
	}

	slog.Debug("verdict indexed", "id", doc.ID, "index", e.indexName, "result", res.Result)
	return rec.ID, nil
}

func (e *Storer) SaveBulk(ctx context.Context, recs []verdict.Record) error {
	if len(recs) == 0 {
		return nil
	}

	bi, err := esutil.NewBulkIndexer(esutil.BulkIndexerConfig{
		Index:         e.indexName,
		Client:        e.client,
		NumWorkers:    2,
		FlushBytes:    1e+6,
		FlushInterval: 5 * time.Second,
	})
	if err != nil {
		return fmt.Errorf("failed to create bulk indexer: %w", err)
	}

	var successful, failed atomic.Int64

	for _, rec := range recs {
		storage.Prepare(&rec)
		doc := toDocument(rec)

		docBytes, err := json.Marshal(doc)
		if err != nil {
			slog.Error("failed to marshal verdict", "error", err, "id", doc.ID)
			failed.Add(1)
			continue
		}

		err = bi.Add(ctx, esutil.BulkIndexerItem{
			Action:     "index",
			DocumentID: doc.ID,
			Body:       bytes.NewReader(docBytes),
			OnSuccess: func(ctx context.Context, item esutil.BulkIndexerItem, res esutil.BulkIndexerResponseItem) {
				successful.Add(1)
			},
			OnFailure: func(ctx context.Context, item esutil.BulkIndexerItem, res esutil.BulkIndexerResponseItem, err error) {
				failed.Add(1)
				if err != nil {
					slog.Error("bulk index error", "error", err, "id", item.DocumentID)
				} else {
					slog.Error("bulk index error", "status", res.Status, "error", res.Error.Type, "reason", res.Error.Reason, "id", item.DocumentID)
				}
			},
		})
		if err != nil {
			failed.Add(1)
			slog.Error("failed to add verdict to bulk indexer", "error", err, "id", doc.ID)
		}
	}

	if err := bi.Close(ctx); err != nil {
		return fmt.Errorf("failed to close bulk indexer: %w", err)
	}

	slog.Info("bulk indexing completed",
		"successful", successful.Load(),
		"failed", failed.Load(),
		"total", len(recs),
		"index", e.indexName)

	if n := failed.Load(); n > 0 {
		return fmt.Errorf("failed to index %d out of %d verdicts", n, len(recs))
	}
	return nil
}

func (e *Storer) List(ctx context.Context, offset, limit int) ([]verdict.Record, int64, error) {
	offset = max(offset, 0)
	desc := sortorder.Desc
	res, err := e.client.Search().
		Index(e.indexName).
		Query(&types.Query{MatchAll: &types.MatchAllQuery{}}).
		From(offset).
		Size(limit).
		Sort(
			&types.SortOptions{SortOptions: map[string]types.FieldSort{"created_at": {Order: &desc}}},
			&types.SortOptions{SortOptions: map[string]types.FieldSort{"id": {Order: &desc}}},
		).
		Do(ctx)
	if err != nil {
		return nil, 0, fmt.Errorf("failed to search verdicts: %w", err)
	}

	recs := make([]verdict.Record, 0, len(res.Hits.Hits))
	for _, hit := range res.Hits.Hits {
		var doc Document
		if err := json.Unmarshal(hit.Source_, &doc); err != nil {
			return nil, 0, fmt.Errorf("failed to unmarshal verdict: %w", err)
		}
		rec, err := fromDocument(doc)
		if err != nil {
			return nil, 0, err
		}
		recs = append(recs, rec)
	}

	var total int64
	if res.Hits.Total != nil {
		total = res.Hits.Total.Value
	}
	return recs, total, nil
}

func (e *Storer) EnsureIndex(ctx context.Context) error {
	exists, err := e.client.Indices.Exists(e.indexName).Do(ctx)
	if err != nil {
		return fmt.Errorf("failed to check if index exists: %w", err)
	}
	if exists {
		slog.Info("index already exists", "index", e.indexName)
		return nil
	}

	mappings := types.TypeMapping{
		Properties: map[string]types.Property{
			"id":         types.NewKeywordProperty(),
			"suite":      types.NewKeywordProperty(),
			"case_id":    types.NewKeywordProperty(),
			"kind":       types.NewKeywordProperty(),
			"formula":    formulaProperty(),
			"stage":      types.NewKeywordProperty(),
			"error":      types.NewTextProperty(),
			"accepted":   types.NewBooleanProperty(),
			"tree":       types.NewTextProperty(),
			"results":    types.NewBooleanProperty(),
			"latency_ns": types.NewLongNumberProperty(),
			"created_at": types.NewDateProperty(),
		},
	}

	createRes, err := e.client.Indices.Create(e.indexName).
		Mappings(&mappings).
		Do(ctx)
	if err != nil {
		return fmt.Errorf("failed to create index: %w", err)
	}
	if !createRes.Acknowledged {
		return fmt.Errorf("index creation was not acknowledged")
	}

	slog.Info("index created", "index", e.indexName)
	return nil
}

// Refresh makes every indexed verdict visible to List.
func (e *Storer) Refresh(ctx context.Context) error {
	if _, err := e.client.Indices.Refresh().Index(e.indexName).Do(ctx); err != nil {
		return fmt.Errorf("failed to refresh index: %w", err)
	}
	return nil
}

func (e *Storer) Healthy(ctx context.Context) bool {
	ok, err := e.client.Ping().Do(ctx)
	return err == nil && ok
}

func (e *Storer) Close() error {
	return nil
}

// formulaProperty indexes formulas as text with an exact keyword sub-field.
func formulaProperty() types.Property {
	p := types.NewTextProperty()
	p.Fields = map[string]types.Property{
		"keyword": types.NewKeywordProperty(),
	}
	return p
}

func toDocument(rec verdict.Record) Document {
	return Document{
		ID:        rec.ID.String(),
		Suite:     rec.Suite,
		CaseID:    rec.CaseID,
		Kind:      string(rec.Kind),
		Formula:   rec.Formula,
		Stage:     rec.Stage,
		Error:     rec.Error,
		Accepted:  rec.Accepted,
		Tree:      rec.Tree,
		Results:   rec.Results,
		LatencyNs: rec.LatencyNs,
		CreatedAt: rec.CreatedAt,
	}
}

func fromDocument(doc Document) (verdict.Record, error) {
	id, err := uuid.Parse(doc.ID)
	if err != nil {
		return verdict.Record{}, fmt.Errorf("invalid verdict id %q: %w", doc.ID, err)
	}
	return verdict.Record{
		ID:        id,
		Suite:     doc.Suite,
		CaseID:    doc.CaseID,
		Kind:      verdict.Kind(doc.Kind),
		Formula:   doc.Formula,
		Stage:     doc.Stage,
		Error:     doc.Error,
		Accepted:  doc.Accepted,
		Tree:      doc.Tree,
		Results:   doc.Results,
		LatencyNs: doc.LatencyNs,
		CreatedAt: doc.CreatedAt,
	}, nil
}
