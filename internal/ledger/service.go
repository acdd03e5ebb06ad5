package ledger

import (
	"context"
	"fmt"
	"time"

	"github.com/shopspring/decimal"

	"github.com/sokchea/rielbot/internal/extract"
	"github.com/sokchea/rielbot/internal/store"
)

// Summary holds per-currency totals and transaction counts for one
// scope. A currency is counted only for entries where its amount is
// positive; zero means the currency was absent from that entry.
type Summary struct {
	TotalUSD decimal.Decimal
	CountUSD int
	TotalKHR int64
	CountKHR int
}

// Service owns the parse-persist-aggregate pipeline on top of an
// injected Store. It is transport-free: callers hand it plain text and
// scopes, it hands back entries and summaries.
type Service struct {
	store store.Store
	now   func() time.Time
}

func NewService(st store.Store) *Service {
	return &Service{store: st, now: time.Now}
}

// Record extracts amounts from message text and, if any amount is
// positive, appends an entry dated today. The second return value is
// false when the text contained no amount; that is not an error.
func (s *Service) Record(ctx context.Context, text string) (store.Entry, bool, error) {
	amounts := extract.Extract(text)
	if !amounts.Any() {
		return store.Entry{}, false, nil
	}

	entry := store.Entry{
		Date: s.now().Format(DateLayout),
		USD:  amounts.USD,
		KHR:  amounts.KHR,
	}
	if err := s.store.Append(ctx, entry); err != nil {
		return store.Entry{}, false, fmt.Errorf("failed to append payment: %w", err)
	}
	return entry, true, nil
}

// Summarize aggregates every entry matching the scope. An empty or
// non-matching ledger yields all zeros.
func (s *Service) Summarize(ctx context.Context, scope Scope) (Summary, error) {
	entries, err := s.store.Entries(ctx)
	if err != nil {
		return Summary{}, fmt.Errorf("failed to load ledger: %w", err)
	}

	var sum Summary
	for _, e := range entries {
		if !scope.Matches(e.Date) {
			continue
		}
		if e.USD.IsPositive() {
			sum.TotalUSD = sum.TotalUSD.Add(e.USD)
			sum.CountUSD++
		}
		if e.KHR > 0 {
			sum.TotalKHR += e.KHR
			sum.CountKHR++
		}
	}
	return sum, nil
}

// Entries returns the full recorded collection in insertion order.
func (s *Service) Entries(ctx context.Context) ([]store.Entry, error) {
	entries, err := s.store.Entries(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to load ledger: %w", err)
	}
	return entries, nil
}

// Now returns the service clock's current time.
func (s *Service) Now() time.Time {
	return s.now()
}
