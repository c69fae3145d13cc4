// Package stats summarizes merged contribution activity in tables.
package stats

import (
	"context"
	"errors"
	"fmt"

	"github.com/fatih/color"

	"tableflip.dev/contribgraph/pkg/contributions"
	"tableflip.dev/contribgraph/pkg/printers"
	"tableflip.dev/contribgraph/pkg/runner/generate"
)

// Stats fetches and merges the accounts' calendars and prints per-month
// totals plus the busiest day.
type Stats struct {
	Accounts []string
	Fetcher  contributions.Fetcher
}

func (s *Stats) Do(ctx context.Context) error {
	if s.Fetcher == nil {
		return errors.New("can not report stats, no fetcher")
	}
	if len(s.Accounts) == 0 {
		return errors.New("can not report stats, no accounts configured")
	}

	calendars, err := contributions.FetchAll(ctx, s.Fetcher, s.Accounts)
	if err != nil {
		return err
	}
	merged := contributions.Merge(calendars...)

	pp := printers.PrettyPrint{}
	pp.NewLine()
	pp.Title(generate.Describe(s.Accounts))
	pp.MonthTable(merged)

	if date, count, ok := contributions.BusiestDay(merged); ok {
		f := color.New(color.Faint)
		_, _ = f.Fprintf(color.Output, "busiest day %s with %d contributions\n", date, count)
	}
	_, _ = fmt.Fprintln(color.Output, "")

	return nil
}
