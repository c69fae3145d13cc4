package commands

import (
	"context"

	"github.com/spf13/cobra"

	"tableflip.dev/contribgraph/pkg/commands/options"
	"tableflip.dev/contribgraph/pkg/config"
	"tableflip.dev/contribgraph/pkg/github"
	"tableflip.dev/contribgraph/pkg/runner/stats"
)

func addStats(topLevel *cobra.Command) {
	ao := &options.AccountOptions{}

	cmd := &cobra.Command{
		Use:   "stats",
		Short: "Print per-month totals and the busiest day.",
		Example: `
contribgraph stats
contribgraph stats -a n3wscott -a vaikas
`,
		RunE: func(cmd *cobra.Command, args []string) error {
			cfg, err := config.Load()
			if err != nil {
				return err
			}
			accounts, token := ao.Resolve(cfg)

			s := &stats.Stats{
				Accounts: accounts,
				Fetcher:  github.NewClient(token),
			}
			return oo.HandleError(s.Do(context.Background()))
		},
	}
	options.AddAccountArgs(cmd, ao)

	topLevel.AddCommand(cmd)
}
