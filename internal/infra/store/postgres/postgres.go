// Package postgres is the optional SQL-backed quotation store, selected
// when DATABASE_URL is configured. Records keep the same shape as the
// file backend: the payload column holds the full record as JSON.
package postgres

import (
	"context"
	"encoding/json"
	"fmt"
	"time"

	"github.com/jackc/pgx/v5/pgxpool"

	"github.com/ellin72/Elquote/internal/domain/quotation"
	"github.com/ellin72/Elquote/internal/infra/store"
)

const schema = `
CREATE TABLE IF NOT EXISTS quotations (
	id         BIGINT PRIMARY KEY,
	created_at TIMESTAMPTZ NOT NULL,
	payload    JSONB NOT NULL
)`

type Store struct {
	pool *pgxpool.Pool
}

func New(ctx context.Context, dsn string) (*Store, error) {
	cfg, err := pgxpool.ParseConfig(dsn)
	if err != nil {
		return nil, err
	}
	cfg.MaxConns = 10
	cfg.MinConns = 2
	cfg.MaxConnIdleTime = 5 * time.Minute

	pool, err := pgxpool.NewWithConfig(ctx, cfg)
	if err != nil {
		return nil, err
	}
	if _, err := pool.Exec(ctx, schema); err != nil {
		pool.Close()
		return nil, fmt.Errorf("ensure quotations table: %w", err)
	}
	return &Store{pool: pool}, nil
}

func (s *Store) Close() { s.pool.Close() }

func (s *Store) Append(ctx context.Context, req quotation.Request) (quotation.Record, error) {
	now := time.Now().UTC()
	id := now.UnixMilli()

	// Ids are millisecond timestamps; on a collision bump and retry so
	// concurrent appends still get distinct, ordered ids.
	for attempt := 0; attempt < 5; attempt++ {
		rec := quotation.Record{
			Request:   req,
			ID:        id,
			CreatedAt: now.Format(store.CreatedAtLayout),
		}
		payload, err := json.Marshal(rec)
		if err != nil {
			return quotation.Record{}, fmt.Errorf("encode quotation: %w", err)
		}

		tag, err := s.pool.Exec(ctx,
			`INSERT INTO quotations (id, created_at, payload) VALUES ($1, $2, $3)
			 ON CONFLICT (id) DO NOTHING`,
			rec.ID, now, payload)
		if err != nil {
			return quotation.Record{}, fmt.Errorf("insert quotation: %w", err)
		}
		if tag.RowsAffected() == 1 {
			return rec, nil
		}
		id++
	}
	return quotation.Record{}, fmt.Errorf("insert quotation: id contention at %d", id)
}

func (s *Store) List(ctx context.Context) ([]quotation.Record, error) {
	rows, err := s.pool.Query(ctx, `SELECT payload FROM quotations ORDER BY id`)
	if err != nil {
		return nil, fmt.Errorf("list quotations: %w", err)
	}
	defer rows.Close()

	records := []quotation.Record{}
	for rows.Next() {
		var payload []byte
		if err := rows.Scan(&payload); err != nil {
			return nil, fmt.Errorf("scan quotation: %w", err)
		}
		var rec quotation.Record
		if err := json.Unmarshal(payload, &rec); err != nil {
			return nil, fmt.Errorf("decode quotation: %w", err)
		}
		records = append(records, rec)
	}
	return records, rows.Err()
}
