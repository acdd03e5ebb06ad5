package store

import (
	"context"
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"
	"sync"

	"github.com/shopspring/decimal"
)

// File persists the ledger as a JSON array of {date, usd, khr} records,
// the same layout the original income.json used. Every append reloads
// the whole collection and rewrites it; the mutex serializes that
// load-modify-store cycle so two appends in this process cannot lose
// each other's entry.
type File struct {
	mu   sync.Mutex
	path string
}

func NewFile(path string) *File {
	return &File{path: path}
}

// fileRecord keeps the on-disk numbers as plain JSON numbers rather than
// the quoted strings decimal.Decimal marshals to.
type fileRecord struct {
	Date string      `json:"date"`
	USD  json.Number `json:"usd"`
	KHR  int64       `json:"khr"`
}

func (f *File) Append(ctx context.Context, e Entry) error {
	f.mu.Lock()
	defer f.mu.Unlock()

	entries, err := f.load()
	if err != nil {
		return err
	}
	entries = append(entries, e)
	return f.save(entries)
}

func (f *File) Entries(ctx context.Context) ([]Entry, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	return f.load()
}

func (f *File) Close() {}

func (f *File) load() ([]Entry, error) {
	data, err := os.ReadFile(f.path)
	if os.IsNotExist(err) {
		// An absent file is an empty ledger.
		return nil, nil
	}
	if err != nil {
		return nil, fmt.Errorf("failed to read ledger file: %w", err)
	}

	var records []fileRecord
	if err := json.Unmarshal(data, &records); err != nil {
		return nil, fmt.Errorf("failed to parse ledger file %s: %w", f.path, err)
	}

	entries := make([]Entry, 0, len(records))
	for _, r := range records {
		usd, err := decimal.NewFromString(r.USD.String())
		if err != nil {
			return nil, fmt.Errorf("failed to parse usd amount %q in %s: %w", r.USD, f.path, err)
		}
		entries = append(entries, Entry{Date: r.Date, USD: usd, KHR: r.KHR})
	}
	return entries, nil
}

// save writes to a temp file and renames it into place, so a failed
// write never truncates the previously persisted ledger.
func (f *File) save(entries []Entry) error {
	records := make([]fileRecord, 0, len(entries))
	for _, e := range entries {
		records = append(records, fileRecord{
			Date: e.Date,
			USD:  json.Number(e.USD.String()),
			KHR:  e.KHR,
		})
	}

	data, err := json.Marshal(records)
	if err != nil {
		return fmt.Errorf("failed to encode ledger: %w", err)
	}

	tmp, err := os.CreateTemp(filepath.Dir(f.path), ".ledger-*")
	if err != nil {
		return fmt.Errorf("failed to create temp ledger file: %w", err)
	}
	tmpName := tmp.Name()
	if _, err := tmp.Write(data); err != nil {
		tmp.Close()
		os.Remove(tmpName)
		return fmt.Errorf("failed to write ledger file: %w", err)
	}
	if err := tmp.Close(); err != nil {
		os.Remove(tmpName)
		return fmt.Errorf("failed to close ledger file: %w", err)
	}
	if err := os.Rename(tmpName, f.path); err != nil {
		os.Remove(tmpName)
		return fmt.Errorf("failed to replace ledger file: %w", err)
	}
	return nil
}
