package ledger

import (
	"fmt"
	"strconv"
	"strings"
)

// FormatSummary renders a summary the way the bot replies in chat:
// thousands-separated KHR, two-decimal USD, per-currency counts.
func FormatSummary(scope Scope, sum Summary) string {
	var label string
	switch scope.Kind {
	case ScopeDay:
		label = fmt.Sprintf("📅 សរុបប្រតិបត្តិការ ថ្ងៃទី %s", scope.Date)
	case ScopeRange:
		label = fmt.Sprintf("📅 សរុបប្រតិបត្តិការ ពីថ្ងៃទី %s ដល់ %s", scope.From, scope.To)
	default:
		label = "📊 សរុបប្រតិបត្តិការទាំងអស់"
	}

	return fmt.Sprintf("%s:\n\n៛(KHR): %s   ចំនួនប្រតិបតិ្តការ: %d\n$(USD): %s   ចំនួនប្រតិបតិ្តការ: %d",
		label,
		groupThousands(sum.TotalKHR),
		sum.CountKHR,
		sum.TotalUSD.StringFixed(2),
		sum.CountUSD,
	)
}

// groupThousands formats n with comma separators ("50000" -> "50,000").
func groupThousands(n int64) string {
	s := strconv.FormatInt(n, 10)
	if len(s) <= 3 {
		return s
	}
	var b strings.Builder
	lead := len(s) % 3
	if lead > 0 {
		b.WriteString(s[:lead])
	}
	for i := lead; i < len(s); i += 3 {
		if b.Len() > 0 {
			b.WriteByte(',')
		}
		b.WriteString(s[i : i+3])
	}
	return b.String()
}
