package store

import (
	"context"

	"github.com/shopspring/decimal"
)

// Entry is one recorded payment. A zero amount means the currency was
// absent from the message the entry was extracted from. Entries are
// immutable once appended; the ledger never edits or deletes.
type Entry struct {
	Date string          `json:"date"`
	USD  decimal.Decimal `json:"usd"`
	KHR  int64           `json:"khr"`
}

// Store is an append-only ledger backing. Entries preserves insertion
// order and keeps duplicates.
type Store interface {
	Append(ctx context.Context, e Entry) error
	Entries(ctx context.Context) ([]Entry, error)
	Close()
}
