// Package config loads the tool configuration: the account list, the API
// credential, and the output location.
package config

import (
	"github.com/mitchellh/go-homedir"
	"github.com/spf13/viper"
)

// DefaultOutput is where the SVG lands when nothing else is configured.
const DefaultOutput = "contributions.svg"

// Config is the explicit configuration value handed to the runners; the
// pipeline itself carries no ambient state.
type Config struct {
	Accounts []string
	Token    string
	Output   string
}

// Load reads .contribgraph.yaml from the working directory or the user's
// home, with CONTRIBGRAPH_* environment overrides. The credential also
// falls back to GITHUB_TOKEN. A missing config file is not an error.
func Load() (*Config, error) {
	v := viper.New()
	v.SetDefault("output", DefaultOutput)
	v.SetConfigName(".contribgraph") // .yaml is implicit
	v.SetEnvPrefix("CONTRIBGRAPH")
	v.AutomaticEnv()
	_ = v.BindEnv("token", "GITHUB_TOKEN")

	v.AddConfigPath("./")
	if home, err := homedir.Dir(); err == nil {
		v.AddConfigPath(home)
	}

	if err := v.ReadInConfig(); err != nil {
		if _, ok := err.(viper.ConfigFileNotFoundError); !ok {
			return nil, err
		}
	}

	return &Config{
		Accounts: v.GetStringSlice("accounts"),
		Token:    v.GetString("token"),
		Output:   v.GetString("output"),
	}, nil
}
