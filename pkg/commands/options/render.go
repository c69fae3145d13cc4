package options

import (
	"github.com/spf13/cobra"

	"tableflip.dev/contribgraph/pkg/config"
)

// RenderOptions controls where the SVG document is written.
type RenderOptions struct {
	Output string
}

// AddRenderArgs wires render output flags on the provided command.
func AddRenderArgs(cmd *cobra.Command, o *RenderOptions) {
	cmd.Flags().StringVarP(&o.Output, "output", "o", "",
		"Path of the SVG document to write.")
}

// Resolve returns the flag value when set, falling back to configuration.
func (o *RenderOptions) Resolve(cfg *config.Config) string {
	if o.Output != "" {
		return o.Output
	}
	return cfg.Output
}
