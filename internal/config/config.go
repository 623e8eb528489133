// Package config resolves the runtime settings of mkcomponent from flags and the environment.
//
// Only presentation is configurable. Where components are written and what they contain is fixed.
package config

import (
	"fmt"
	"os"
	"strings"

	"github.com/spf13/pflag"
	"github.com/spf13/viper"
)

// EnvPrefix is prepended to every environment variable, e.g. MKCOMPONENT_VERBOSE
const EnvPrefix = "MKCOMPONENT"

const (
	KeyVerbose = "verbose"
	KeyDryRun  = "dry-run"
	KeyNoColor = "no-color"
)

type Config struct {
	Verbose bool
	DryRun  bool
	NoColor bool
}

// Load reads the settings, flags that were set explicitly take precedence over the environment.
func Load(flags *pflag.FlagSet) (*Config, error) {
	v := viper.New()
	v.SetEnvPrefix(EnvPrefix)
	v.SetEnvKeyReplacer(strings.NewReplacer("-", "_"))
	v.AutomaticEnv()

	if flags != nil {
		if err := v.BindPFlags(flags); err != nil {
			return nil, fmt.Errorf("failed to bind flags: %w", err)
		}
	}

	cfg := &Config{
		Verbose: v.GetBool(KeyVerbose),
		DryRun:  v.GetBool(KeyDryRun),
		NoColor: v.GetBool(KeyNoColor),
	}

	// https://no-color.org
	if os.Getenv("NO_COLOR") != "" {
		cfg.NoColor = true
	}

	return cfg, nil
}
