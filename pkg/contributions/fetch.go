package contributions

import (
	"context"
	"fmt"

	"golang.org/x/sync/errgroup"
)

// Fetcher resolves one account's contribution calendar for the trailing
// year. Implementations are expected to be safe for concurrent use.
type Fetcher interface {
	ContributionCalendar(ctx context.Context, account string) (Calendar, error)
}

// FetchAll fetches every account concurrently and waits for all fetches to
// finish. Results keep the input order. The join is all-or-nothing: the
// first failure cancels the remaining fetches and is returned, and no
// partial results are surfaced.
func FetchAll(ctx context.Context, f Fetcher, accounts []string) ([]Calendar, error) {
	calendars := make([]Calendar, len(accounts))
	g, ctx := errgroup.WithContext(ctx)
	for i, account := range accounts {
		i, account := i, account
		g.Go(func() error {
			c, err := f.ContributionCalendar(ctx, account)
			if err != nil {
				return fmt.Errorf("fetching contributions for %s: %w", account, err)
			}
			calendars[i] = c
			return nil
		})
	}
	if err := g.Wait(); err != nil {
		return nil, err
	}
	return calendars, nil
}
