// Package memory keeps quotations in process memory. It is the fallback
// for deployments without a writable filesystem: records survive for the
// process lifetime, so the caller-visible contract matches the durable
// backends.
package memory

import (
	"context"
	"sync"
	"time"

	"github.com/ellin72/Elquote/internal/domain/quotation"
	"github.com/ellin72/Elquote/internal/infra/store"
)

type Store struct {
	mu      sync.Mutex
	records []quotation.Record
	lastID  int64
}

func New() *Store { return &Store{} }

func (s *Store) Append(ctx context.Context, req quotation.Request) (quotation.Record, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	now := time.Now().UTC()
	rec := quotation.Record{
		Request:   req,
		ID:        store.NextID(now.UnixMilli(), s.lastID),
		CreatedAt: now.Format(store.CreatedAtLayout),
	}
	s.lastID = rec.ID
	s.records = append(s.records, rec)
	return rec, nil
}

func (s *Store) List(ctx context.Context) ([]quotation.Record, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	out := make([]quotation.Record, len(s.records))
	copy(out, s.records)
	return out, nil
}
