// Package store defines the quotation persistence contract shared by the
// file, in-memory and postgres backends.
package store

import (
	"context"

	"github.com/ellin72/Elquote/internal/domain/quotation"
)

// Store is an append-only ordered list of quotation records. Append
// assigns the id and createdAt timestamp; callers never supply them.
type Store interface {
	Append(ctx context.Context, req quotation.Request) (quotation.Record, error)
	List(ctx context.Context) ([]quotation.Record, error)
}

// NextID returns a millisecond-epoch id strictly greater than lastID, so
// two appends within the same millisecond still get distinct ids.
func NextID(nowMilli, lastID int64) int64 {
	if nowMilli <= lastID {
		return lastID + 1
	}
	return nowMilli
}

// CreatedAtLayout matches the ISO-8601 format the original records were
// written with (UTC, millisecond precision).
const CreatedAtLayout = "2006-01-02T15:04:05.000Z"
