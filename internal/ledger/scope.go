package ledger

import (
	"errors"
	"fmt"
	"time"
)

// DateLayout is the canonical calendar-date form used everywhere: in the
// store, in scopes, and in user-supplied day queries.
const DateLayout = "2006-01-02"

// DayLabelLayout is the abbreviated form shown on the day-picker buttons
// ("Jul 10"). The year is assumed to be the current one.
const DayLabelLayout = "Jan 2"

// ErrInvalidDate is returned when a user-supplied date does not parse as
// a valid calendar date. It is a validation error to surface to the
// user, never a crash.
var ErrInvalidDate = errors.New("invalid date")

type ScopeKind int

const (
	// ScopeAll matches every entry, no date filter.
	ScopeAll ScopeKind = iota
	// ScopeDay matches entries on a single date.
	ScopeDay
	// ScopeRange matches entries between From and To inclusive.
	ScopeRange
)

// Scope is a date filter applied during aggregation.
type Scope struct {
	Kind ScopeKind
	Date string // ScopeDay
	From string // ScopeRange
	To   string // ScopeRange
}

func All() Scope {
	return Scope{Kind: ScopeAll}
}

func Today(now time.Time) Scope {
	return Scope{Kind: ScopeDay, Date: now.Format(DateLayout)}
}

func Yesterday(now time.Time) Scope {
	return Scope{Kind: ScopeDay, Date: now.AddDate(0, 0, -1).Format(DateLayout)}
}

// Day builds a single-date scope from a user-supplied string. The string
// must be a valid calendar date in YYYY-MM-DD form.
func Day(s string) (Scope, error) {
	t, err := time.Parse(DateLayout, s)
	if err != nil {
		return Scope{}, fmt.Errorf("%w: %q", ErrInvalidDate, s)
	}
	return Scope{Kind: ScopeDay, Date: t.Format(DateLayout)}, nil
}

// DayLabel resolves an abbreviated day-picker label such as "Jul 10"
// against the current year.
func DayLabel(label string, now time.Time) (Scope, error) {
	t, err := time.Parse(DayLabelLayout, label)
	if err != nil {
		return Scope{}, fmt.Errorf("%w: %q", ErrInvalidDate, label)
	}
	t = time.Date(now.Year(), t.Month(), t.Day(), 0, 0, 0, 0, time.Local)
	return Scope{Kind: ScopeDay, Date: t.Format(DateLayout)}, nil
}

// WeekOf covers the Monday through Sunday containing now.
func WeekOf(now time.Time) Scope {
	offset := (int(now.Weekday()) + 6) % 7 // Monday = 0
	start := now.AddDate(0, 0, -offset)
	end := start.AddDate(0, 0, 6)
	return Scope{
		Kind: ScopeRange,
		From: start.Format(DateLayout),
		To:   end.Format(DateLayout),
	}
}

// MonthOf covers the calendar month containing now.
func MonthOf(now time.Time) Scope {
	start := time.Date(now.Year(), now.Month(), 1, 0, 0, 0, 0, now.Location())
	end := start.AddDate(0, 1, -1)
	return Scope{
		Kind: ScopeRange,
		From: start.Format(DateLayout),
		To:   end.Format(DateLayout),
	}
}

// Matches reports whether an entry dated date falls inside the scope.
// Dates are canonical YYYY-MM-DD strings, so lexicographic comparison is
// chronological comparison.
func (s Scope) Matches(date string) bool {
	switch s.Kind {
	case ScopeAll:
		return true
	case ScopeDay:
		return date == s.Date
	case ScopeRange:
		return date >= s.From && date <= s.To
	default:
		return false
	}
}
