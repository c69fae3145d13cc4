// Package generate runs the full fetch, merge, layout, render pipeline and
// writes the SVG document to disk.
package generate

import (
	"context"
	"errors"
	"fmt"
	"os"
	"strings"

	"tableflip.dev/contribgraph/pkg/contributions"
	"tableflip.dev/contribgraph/pkg/heatmap"
	"tableflip.dev/contribgraph/pkg/svg"
)

// Generate fetches every account's calendar, merges them, and renders the
// heat-map to Output.
type Generate struct {
	Accounts []string
	Output   string
	Fetcher  contributions.Fetcher
}

// Do runs the pipeline. Fetches run concurrently and the run aborts on the
// first failure; nothing is written unless every account resolved.
func (g *Generate) Do(ctx context.Context) error {
	if g.Fetcher == nil {
		return errors.New("can not generate, no fetcher")
	}
	if len(g.Accounts) == 0 {
		return errors.New("can not generate, no accounts configured")
	}
	if g.Output == "" {
		return errors.New("can not generate, no output path")
	}

	calendars, err := contributions.FetchAll(ctx, g.Fetcher, g.Accounts)
	if err != nil {
		return err
	}

	payload := contributions.BuildPayload(contributions.Merge(calendars...))
	grid, err := heatmap.Layout(payload)
	if err != nil {
		return err
	}

	label := Describe(g.Accounts)
	if err := os.WriteFile(g.Output, svg.Render(grid, label), 0644); err != nil {
		return fmt.Errorf("writing %s: %w", g.Output, err)
	}

	fmt.Printf("wrote contribution graph for %s to %s\n", label, g.Output)
	return nil
}

// Describe joins account names for the document's accessible label,
// e.g. "alice and bob".
func Describe(accounts []string) string {
	switch len(accounts) {
	case 0:
		return ""
	case 1:
		return accounts[0]
	default:
		return strings.Join(accounts[:len(accounts)-1], ", ") + " and " + accounts[len(accounts)-1]
	}
}
