package ledger

import (
	"context"
	"testing"
	"time"

	"github.com/shopspring/decimal"

	"github.com/sokchea/rielbot/internal/store"
)

func newTestService(t *testing.T, nowDate string) (*Service, *store.Memory) {
	t.Helper()
	mem := store.NewMemory()
	svc := NewService(mem)
	now, err := time.ParseInLocation(DateLayout, nowDate, time.Local)
	if err != nil {
		t.Fatalf("bad test date %q: %v", nowDate, err)
	}
	svc.now = func() time.Time { return now }
	return svc, mem
}

func TestRecordNoAmountIsNoOp(t *testing.T) {
	ctx := context.Background()
	svc, mem := newTestService(t, "2025-07-10")

	_, recorded, err := svc.Record(ctx, "សួស្តី no amounts here")
	if err != nil {
		t.Fatalf("Record() error: %v", err)
	}
	if recorded {
		t.Fatal("Record() should not record text without amounts")
	}

	entries, _ := mem.Entries(ctx)
	if len(entries) != 0 {
		t.Errorf("ledger should stay empty, got %d entries", len(entries))
	}
}

func TestRecordDatesEntryToday(t *testing.T) {
	ctx := context.Background()
	svc, _ := newTestService(t, "2025-07-10")

	entry, recorded, err := svc.Record(ctx, "ទទួល $12.50")
	if err != nil {
		t.Fatalf("Record() error: %v", err)
	}
	if !recorded {
		t.Fatal("Record() should record a dollar amount")
	}
	if entry.Date != "2025-07-10" {
		t.Errorf("entry date = %s, want 2025-07-10", entry.Date)
	}
	if !entry.USD.Equal(decimal.RequireFromString("12.5")) {
		t.Errorf("entry USD = %v, want 12.5", entry.USD)
	}
	if entry.KHR != 0 {
		t.Errorf("entry KHR = %d, want 0", entry.KHR)
	}
}

func TestAppendThenAggregate(t *testing.T) {
	ctx := context.Background()
	svc, mem := newTestService(t, "2025-07-10")

	if err := mem.Append(ctx, store.Entry{Date: "2025-07-10", USD: decimal.NewFromInt(10)}); err != nil {
		t.Fatalf("Append() error: %v", err)
	}

	scope, err := Day("2025-07-10")
	if err != nil {
		t.Fatalf("Day() error: %v", err)
	}
	sum, err := svc.Summarize(ctx, scope)
	if err != nil {
		t.Fatalf("Summarize() error: %v", err)
	}

	if !sum.TotalUSD.Equal(decimal.NewFromInt(10)) || sum.CountUSD != 1 {
		t.Errorf("USD = (%v, %d), want (10, 1)", sum.TotalUSD, sum.CountUSD)
	}
	if sum.TotalKHR != 0 || sum.CountKHR != 0 {
		t.Errorf("KHR = (%d, %d), want (0, 0)", sum.TotalKHR, sum.CountKHR)
	}
}

func TestScopeIsolation(t *testing.T) {
	ctx := context.Background()
	svc, mem := newTestService(t, "2025-07-10")

	mem.Append(ctx, store.Entry{Date: "2025-07-09", USD: decimal.NewFromInt(99)})
	mem.Append(ctx, store.Entry{Date: "2025-07-10", USD: decimal.NewFromInt(10)})

	scope, _ := Day("2025-07-10")
	sum, err := svc.Summarize(ctx, scope)
	if err != nil {
		t.Fatalf("Summarize() error: %v", err)
	}
	if !sum.TotalUSD.Equal(decimal.NewFromInt(10)) || sum.CountUSD != 1 {
		t.Errorf("entries from other days leaked in: total %v count %d", sum.TotalUSD, sum.CountUSD)
	}
}

func TestAllScopeSumsEverything(t *testing.T) {
	ctx := context.Background()
	svc, mem := newTestService(t, "2025-07-10")

	mem.Append(ctx, store.Entry{Date: "2025-07-09", USD: decimal.NewFromInt(10)})
	mem.Append(ctx, store.Entry{Date: "2025-07-10", USD: decimal.NewFromInt(20)})

	sum, err := svc.Summarize(ctx, All())
	if err != nil {
		t.Fatalf("Summarize() error: %v", err)
	}
	if !sum.TotalUSD.Equal(decimal.NewFromInt(30)) || sum.CountUSD != 2 {
		t.Errorf("all scope = (%v, %d), want (30, 2)", sum.TotalUSD, sum.CountUSD)
	}
}

func TestZeroGuard(t *testing.T) {
	ctx := context.Background()
	svc, mem := newTestService(t, "2025-07-10")

	mem.Append(ctx, store.Entry{Date: "2025-07-10", USD: decimal.Zero, KHR: 40000})

	scope, _ := Day("2025-07-10")
	sum, err := svc.Summarize(ctx, scope)
	if err != nil {
		t.Fatalf("Summarize() error: %v", err)
	}
	if sum.TotalKHR != 40000 || sum.CountKHR != 1 {
		t.Errorf("KHR = (%d, %d), want (40000, 1)", sum.TotalKHR, sum.CountKHR)
	}
	if sum.CountUSD != 0 || !sum.TotalUSD.IsZero() {
		t.Errorf("zero USD amount must not be counted: (%v, %d)", sum.TotalUSD, sum.CountUSD)
	}
}

func TestSummarizeIsIdempotent(t *testing.T) {
	ctx := context.Background()
	svc, mem := newTestService(t, "2025-07-10")

	mem.Append(ctx, store.Entry{Date: "2025-07-10", USD: decimal.NewFromFloat(1.25), KHR: 500})

	first, err := svc.Summarize(ctx, All())
	if err != nil {
		t.Fatalf("Summarize() error: %v", err)
	}
	second, err := svc.Summarize(ctx, All())
	if err != nil {
		t.Fatalf("Summarize() error: %v", err)
	}
	if !first.TotalUSD.Equal(second.TotalUSD) || first.CountUSD != second.CountUSD ||
		first.TotalKHR != second.TotalKHR || first.CountKHR != second.CountKHR {
		t.Errorf("Summarize() not idempotent: %+v vs %+v", first, second)
	}
}

func TestRangeScopeAggregation(t *testing.T) {
	ctx := context.Background()
	svc, mem := newTestService(t, "2025-07-10")

	mem.Append(ctx, store.Entry{Date: "2025-07-06", KHR: 1000})  // before the week
	mem.Append(ctx, store.Entry{Date: "2025-07-07", KHR: 2000})  // Monday
	mem.Append(ctx, store.Entry{Date: "2025-07-13", KHR: 3000})  // Sunday
	mem.Append(ctx, store.Entry{Date: "2025-07-14", KHR: 4000})  // after the week

	sum, err := svc.Summarize(ctx, WeekOf(svc.Now()))
	if err != nil {
		t.Fatalf("Summarize() error: %v", err)
	}
	if sum.TotalKHR != 5000 || sum.CountKHR != 2 {
		t.Errorf("week scope = (%d, %d), want (5000, 2)", sum.TotalKHR, sum.CountKHR)
	}
}

func TestRecordBothCurrencies(t *testing.T) {
	ctx := context.Background()
	svc, _ := newTestService(t, "2025-07-10")

	_, recorded, err := svc.Record(ctx, "វិក្កយបត្រ $10.25 ចំនួន 120,500 រៀល")
	if err != nil {
		t.Fatalf("Record() error: %v", err)
	}
	if !recorded {
		t.Fatal("Record() should record a message holding both currencies")
	}

	scope, _ := Day("2025-07-10")
	sum, err := svc.Summarize(ctx, scope)
	if err != nil {
		t.Fatalf("Summarize() error: %v", err)
	}
	if !sum.TotalUSD.Equal(decimal.RequireFromString("10.25")) || sum.CountUSD != 1 {
		t.Errorf("USD = (%v, %d), want (10.25, 1)", sum.TotalUSD, sum.CountUSD)
	}
	if sum.TotalKHR != 120500 || sum.CountKHR != 1 {
		t.Errorf("KHR = (%d, %d), want (120500, 1)", sum.TotalKHR, sum.CountKHR)
	}
}
