// Package options defines shared flag helpers for CLI commands.
package options

import (
	"github.com/spf13/cobra"

	"tableflip.dev/contribgraph/pkg/config"
)

// AccountOptions selects the accounts to aggregate and the API credential.
type AccountOptions struct {
	Accounts []string
	Token    string
}

// AddAccountArgs wires account-related flags on the provided command.
func AddAccountArgs(cmd *cobra.Command, o *AccountOptions) {
	cmd.Flags().StringArrayVarP(&o.Accounts, "account", "a", nil,
		"GitHub account to include; repeatable. Overrides configured accounts.")
	cmd.Flags().StringVar(&o.Token, "token", "",
		"GitHub API token. Overrides the configured credential.")
}

// Resolve applies flag overrides on top of the loaded configuration.
func (o *AccountOptions) Resolve(cfg *config.Config) (accounts []string, token string) {
	accounts = cfg.Accounts
	if len(o.Accounts) > 0 {
		accounts = o.Accounts
	}
	token = cfg.Token
	if o.Token != "" {
		token = o.Token
	}
	return accounts, token
}
