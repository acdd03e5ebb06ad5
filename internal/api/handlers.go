package api

import (
	"context"
	"encoding/json"
	"fmt"
	"net/http"

	"github.com/sokchea/rielbot/internal/ledger"
)

type summaryResponse struct {
	Scope    string `json:"scope"`
	Date     string `json:"date,omitempty"`
	From     string `json:"from,omitempty"`
	To       string `json:"to,omitempty"`
	TotalUSD string `json:"total_usd"`
	CountUSD int    `json:"count_usd"`
	TotalKHR int64  `json:"total_khr"`
	CountKHR int    `json:"count_khr"`
}

type entryResponse struct {
	Date string `json:"date"`
	USD  string `json:"usd"`
	KHR  int64  `json:"khr"`
}

func (a *API) handleHealth(w http.ResponseWriter, r *http.Request) {
	w.Header().Set("Content-Type", "application/json")
	json.NewEncoder(w).Encode(map[string]string{
		"status": "ok",
	})
}

func (a *API) handleSummary(w http.ResponseWriter, r *http.Request) {
	scopeName := r.URL.Query().Get("scope")
	if scopeName == "" {
		scopeName = "today"
	}

	scope, err := a.resolveScope(scopeName, r.URL.Query().Get("date"))
	if err != nil {
		http.Error(w, err.Error(), http.StatusBadRequest)
		return
	}

	sum, err := a.svc.Summarize(context.Background(), scope)
	if err != nil {
		http.Error(w, "failed to summarize ledger", http.StatusInternalServerError)
		return
	}

	resp := summaryResponse{
		Scope:    scopeName,
		Date:     scope.Date,
		From:     scope.From,
		To:       scope.To,
		TotalUSD: sum.TotalUSD.StringFixed(2),
		CountUSD: sum.CountUSD,
		TotalKHR: sum.TotalKHR,
		CountKHR: sum.CountKHR,
	}

	w.Header().Set("Content-Type", "application/json")
	json.NewEncoder(w).Encode(resp)
}

func (a *API) handleEntries(w http.ResponseWriter, r *http.Request) {
	entries, err := a.svc.Entries(context.Background())
	if err != nil {
		http.Error(w, "failed to load ledger", http.StatusInternalServerError)
		return
	}

	out := make([]entryResponse, 0, len(entries))
	for _, e := range entries {
		out = append(out, entryResponse{
			Date: e.Date,
			USD:  e.USD.StringFixed(2),
			KHR:  e.KHR,
		})
	}

	w.Header().Set("Content-Type", "application/json")
	json.NewEncoder(w).Encode(out)
}

func (a *API) resolveScope(name, date string) (ledger.Scope, error) {
	switch name {
	case "today":
		return ledger.Today(a.svc.Now()), nil
	case "yesterday":
		return ledger.Yesterday(a.svc.Now()), nil
	case "week":
		return ledger.WeekOf(a.svc.Now()), nil
	case "month":
		return ledger.MonthOf(a.svc.Now()), nil
	case "total", "all":
		return ledger.All(), nil
	case "day":
		scope, err := ledger.Day(date)
		if err != nil {
			return ledger.Scope{}, fmt.Errorf("invalid date %q, want YYYY-MM-DD", date)
		}
		return scope, nil
	default:
		return ledger.Scope{}, fmt.Errorf("unknown scope %q", name)
	}
}
