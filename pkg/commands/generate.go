package commands

import (
	"context"

	"github.com/spf13/cobra"

	"tableflip.dev/contribgraph/pkg/commands/options"
	"tableflip.dev/contribgraph/pkg/config"
	"tableflip.dev/contribgraph/pkg/github"
	"tableflip.dev/contribgraph/pkg/runner/generate"
)

func addGenerate(topLevel *cobra.Command) {
	ao := &options.AccountOptions{}
	ro := &options.RenderOptions{}

	cmd := &cobra.Command{
		Use:   "generate",
		Short: "Fetch, merge and render the contribution heat-map to a file.",
		Example: `
contribgraph generate
contribgraph generate --account n3wscott --account vaikas -o team.svg
`,
		RunE: func(cmd *cobra.Command, args []string) error {
			return oo.HandleError(runGenerate(ao, ro))
		},
	}
	options.AddAccountArgs(cmd, ao)
	options.AddRenderArgs(cmd, ro)

	topLevel.AddCommand(cmd)
}

func runGenerate(ao *options.AccountOptions, ro *options.RenderOptions) error {
	cfg, err := config.Load()
	if err != nil {
		return err
	}
	accounts, token := ao.Resolve(cfg)

	g := &generate.Generate{
		Accounts: accounts,
		Output:   ro.Resolve(cfg),
		Fetcher:  github.NewClient(token),
	}
	return g.Do(context.Background())
}
