package commands

import (
	"github.com/spf13/cobra"

	base "github.com/n3wscott/cli-base/pkg/commands/options"

	"tableflip.dev/contribgraph/pkg/commands/options"
)

var (
	oo = &options.OutputOptions{}
)

func New() *cobra.Command {
	ao := &options.AccountOptions{}
	ro := &options.RenderOptions{}

	cmd := &cobra.Command{
		Use:   "contribgraph",
		Short: base.Wrap80("Merge GitHub contribution calendars and render them as a heat-map."),
		// A bare invocation runs the full generate pipeline.
		RunE: func(cmd *cobra.Command, args []string) error {
			return oo.HandleError(runGenerate(ao, ro))
		},
	}
	options.AddAccountArgs(cmd, ao)
	options.AddRenderArgs(cmd, ro)
	options.AddOutputArg(cmd, oo)

	AddCommands(cmd)
	return cmd
}

func AddCommands(topLevel *cobra.Command) {
	addGenerate(topLevel)
	addPreview(topLevel)
	addStats(topLevel)
	addVersion(topLevel)
	addCompletions(topLevel)
}
