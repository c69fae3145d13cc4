// Package preview prints the merged heat-map to the terminal.
package preview

import (
	"context"
	"errors"

	"tableflip.dev/contribgraph/pkg/contributions"
	"tableflip.dev/contribgraph/pkg/heatmap"
	"tableflip.dev/contribgraph/pkg/printers"
	"tableflip.dev/contribgraph/pkg/runner/generate"
)

// Preview fetches and merges the accounts' calendars and prints a one-shot
// colorized grid instead of writing a file.
type Preview struct {
	Accounts []string
	Fetcher  contributions.Fetcher
}

func (p *Preview) Do(ctx context.Context) error {
	if p.Fetcher == nil {
		return errors.New("can not preview, no fetcher")
	}
	if len(p.Accounts) == 0 {
		return errors.New("can not preview, no accounts configured")
	}

	calendars, err := contributions.FetchAll(ctx, p.Fetcher, p.Accounts)
	if err != nil {
		return err
	}

	payload := contributions.BuildPayload(contributions.Merge(calendars...))
	grid, err := heatmap.Layout(payload)
	if err != nil {
		return err
	}

	pp := printers.PrettyPrint{}
	pp.NewLine()
	pp.Title(generate.Describe(p.Accounts))
	pp.Heatmap(grid)
	pp.Legend()
	pp.Summary(payload)
	pp.NewLine()

	return nil
}
