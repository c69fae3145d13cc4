package commands

import (
	"context"

	"github.com/spf13/cobra"

	"tableflip.dev/contribgraph/pkg/commands/options"
	"tableflip.dev/contribgraph/pkg/config"
	"tableflip.dev/contribgraph/pkg/github"
	"tableflip.dev/contribgraph/pkg/runner/preview"
)

func addPreview(topLevel *cobra.Command) {
	ao := &options.AccountOptions{}

	cmd := &cobra.Command{
		Use:   "preview",
		Short: "Print the merged heat-map to the terminal.",
		Example: `
contribgraph preview
contribgraph preview -a n3wscott
`,
		RunE: func(cmd *cobra.Command, args []string) error {
			cfg, err := config.Load()
			if err != nil {
				return err
			}
			accounts, token := ao.Resolve(cfg)

			p := &preview.Preview{
				Accounts: accounts,
				Fetcher:  github.NewClient(token),
			}
			return oo.HandleError(p.Do(context.Background()))
		},
	}
	options.AddAccountArgs(cmd, ao)

	topLevel.AddCommand(cmd)
}
