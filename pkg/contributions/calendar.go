// Package contributions holds the date-keyed activity model: per-account
// calendars, the merge across accounts, and the aggregate payload handed to
// the layout engine.
package contributions

import (
	"sort"
)

// Calendar maps ISO dates (YYYY-MM-DD) to activity counts for one account.
// Keys need not be contiguous or sorted.
type Calendar map[string]int

// Merge sums the given calendars per date. A date absent from a calendar
// contributes zero. Merging nothing yields an empty calendar.
func Merge(calendars ...Calendar) Calendar {
	merged := Calendar{}
	for _, c := range calendars {
		for date, count := range c {
			merged[date] += count
		}
	}
	return merged
}

// Payload is the canonical aggregate handed to the renderer: sorted range
// bounds, the total count, and the full per-date mapping. Start and End are
// empty when the merged calendar has no dates.
type Payload struct {
	Start  string   `json:"start,omitempty"`
	End    string   `json:"end,omitempty"`
	Total  int      `json:"total"`
	Counts Calendar `json:"counts"`
}

// BuildPayload reduces a merged calendar into its payload. ISO date strings
// sort lexicographically in chronological order, so the bounds are the first
// and last sorted keys.
func BuildPayload(merged Calendar) Payload {
	p := Payload{Counts: Calendar{}}
	keys := make([]string, 0, len(merged))
	for date, count := range merged {
		keys = append(keys, date)
		p.Counts[date] = count
		p.Total += count
	}
	if len(keys) == 0 {
		return p
	}
	sort.Strings(keys)
	p.Start = keys[0]
	p.End = keys[len(keys)-1]
	return p
}

// MonthTotal is the summed activity for one YYYY-MM month.
type MonthTotal struct {
	Month string
	Total int
}

// MonthlyTotals groups a calendar's counts by month, sorted chronologically.
func MonthlyTotals(c Calendar) []MonthTotal {
	byMonth := map[string]int{}
	for date, count := range c {
		if len(date) < 7 {
			continue
		}
		byMonth[date[:7]] += count
	}
	totals := make([]MonthTotal, 0, len(byMonth))
	for month, total := range byMonth {
		totals = append(totals, MonthTotal{Month: month, Total: total})
	}
	sort.Slice(totals, func(i, j int) bool {
		return totals[i].Month < totals[j].Month
	})
	return totals
}

// BusiestDay returns the date with the highest count, breaking ties toward
// the earlier date. ok is false for an empty calendar.
func BusiestDay(c Calendar) (date string, count int, ok bool) {
	for d, n := range c {
		if !ok || n > count || (n == count && d < date) {
			date, count, ok = d, n, true
		}
	}
	return date, count, ok
}
