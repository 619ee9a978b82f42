// Package jsonfile stores verdicts as JSON lines appended to a single file.
package jsonfile

import (
	"bufio"
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io/fs"
	"log/slog"
	"os"
	"slices"
	"sync"

	"github.com/google/uuid"

	"github.com/DjordjeVuckovic/proplogic/internal/storage"
	"github.com/DjordjeVuckovic/proplogic/internal/verdict"
)

// maxLineSize bounds one encoded verdict; printed trees of capped formulas
// stay well below it.
const maxLineSize = 1 << 20

type Storer struct {
	mu       sync.Mutex
	filePath string
}

func NewStorer(filePath string) (*Storer, error) {
	if filePath == "" {
		return nil, fmt.Errorf("json storer needs a file path")
	}
	return &Storer{filePath: filePath}, nil
}

func (s *Storer) Save(ctx context.Context, rec verdict.Record) (uuid.UUID, error) {
	storage.Prepare(&rec)
	if err := s.append([]verdict.Record{rec}); err != nil {
		return uuid.Nil, err
	}
	return rec.ID, nil
}

func (s *Storer) SaveBulk(ctx context.Context, recs []verdict.Record) error {
	if len(recs) == 0 {
		return nil
	}
	prepared := make([]verdict.Record, len(recs))
	for i, rec := range recs {
		storage.Prepare(&rec)
		prepared[i] = rec
	}
	if err := s.append(prepared); err != nil {
		return err
	}
	slog.Info("verdicts appended to file", "count", len(recs), "path", s.filePath)
	return nil
}

func (s *Storer) append(recs []verdict.Record) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	f, err := os.OpenFile(s.filePath, os.O_APPEND|os.O_CREATE|os.O_WRONLY, 0644)
	if err != nil {
		return fmt.Errorf("failed to open verdict file: %w", err)
	}
	defer f.Close()

	w := bufio.NewWriter(f)
	enc := json.NewEncoder(w)
	for _, rec := range recs {
		if err := enc.Encode(rec); err != nil {
			return fmt.Errorf("failed to encode verdict %s: %w", rec.ID, err)
		}
	}
	if err := w.Flush(); err != nil {
		return fmt.Errorf("failed to write verdict file: %w", err)
	}
	return f.Close()
}

// List reads the whole file; a missing file lists as empty.
func (s *Storer) List(ctx context.Context, offset, limit int) ([]verdict.Record, int64, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	f, err := os.Open(s.filePath)
	if errors.Is(err, fs.ErrNotExist) {
		return []verdict.Record{}, 0, nil
	}
	if err != nil {
		return nil, 0, fmt.Errorf("failed to open verdict file: %w", err)
	}
	defer f.Close()

	var all []verdict.Record
	sc := bufio.NewScanner(f)
	sc.Buffer(make([]byte, 0, 64*1024), maxLineSize)
	line := 0
	for sc.Scan() {
		line++
		if len(sc.Bytes()) == 0 {
			continue
		}
		var rec verdict.Record
		if err := json.Unmarshal(sc.Bytes(), &rec); err != nil {
			return nil, 0, fmt.Errorf("verdict file line %d: %w", line, err)
		}
		all = append(all, rec)
	}
	if err := sc.Err(); err != nil {
		return nil, 0, fmt.Errorf("failed to read verdict file: %w", err)
	}

	// newest first: the file is in insertion order
	slices.Reverse(all)

	total := int64(len(all))
	if offset < 0 {
		offset = 0
	}
	if offset >= len(all) {
		return []verdict.Record{}, total, nil
	}
	end := len(all)
	if limit > 0 && limit < end-offset {
		end = offset + limit
	}
	return all[offset:end], total, nil
}

func (s *Storer) Close() error {
	return nil
}
