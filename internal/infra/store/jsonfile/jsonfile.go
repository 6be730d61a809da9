// Package jsonfile persists quotations as a single pretty-printed JSON
// array file, the default backend for single-operator deployments.
package jsonfile

import (
	"context"
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"
	"sync"
	"time"

	"github.com/sirupsen/logrus"

	"github.com/ellin72/Elquote/internal/domain/quotation"
	"github.com/ellin72/Elquote/internal/infra/store"
)

type Store struct {
	path string
	log  *logrus.Logger

	mu sync.Mutex
}

// New ensures the data directory and file exist and that the file is
// writable. A failure here is the signal for the caller to fall back to
// the in-memory backend.
func New(path string, log *logrus.Logger) (*Store, error) {
	if err := os.MkdirAll(filepath.Dir(path), 0o755); err != nil {
		return nil, fmt.Errorf("create data dir: %w", err)
	}
	if _, err := os.Stat(path); os.IsNotExist(err) {
		if err := os.WriteFile(path, []byte("[]"), 0o644); err != nil {
			return nil, fmt.Errorf("init data file: %w", err)
		}
	}
	f, err := os.OpenFile(path, os.O_WRONLY|os.O_APPEND, 0o644)
	if err != nil {
		return nil, fmt.Errorf("open data file: %w", err)
	}
	f.Close()
	return &Store{path: path, log: log}, nil
}

func (s *Store) Append(ctx context.Context, req quotation.Request) (quotation.Record, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	records := s.load()

	var lastID int64
	for _, r := range records {
		if r.ID > lastID {
			lastID = r.ID
		}
	}

	now := time.Now().UTC()
	rec := quotation.Record{
		Request:   req,
		ID:        store.NextID(now.UnixMilli(), lastID),
		CreatedAt: now.Format(store.CreatedAtLayout),
	}
	records = append(records, rec)

	data, err := json.MarshalIndent(records, "", "  ")
	if err != nil {
		return quotation.Record{}, fmt.Errorf("encode quotations: %w", err)
	}
	if err := os.WriteFile(s.path, data, 0o644); err != nil {
		return quotation.Record{}, fmt.Errorf("write quotations: %w", err)
	}
	return rec, nil
}

func (s *Store) List(ctx context.Context) ([]quotation.Record, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.load(), nil
}

// load never fails: a missing or corrupt file degrades to an empty list.
func (s *Store) load() []quotation.Record {
	records := []quotation.Record{}
	data, err := os.ReadFile(s.path)
	if err != nil {
		return records
	}
	if err := json.Unmarshal(data, &records); err != nil {
		s.log.WithError(err).WithField("path", s.path).Warn("quotations file unreadable, starting empty")
		return []quotation.Record{}
	}
	return records
}
