package config

import (
	"fmt"

	"github.com/spf13/pflag"
	"github.com/spf13/viper"
)

// envPrefix is the prefix for environment overrides, e.g. ATTRIVIEW_INPUT.
const envPrefix = "ATTRIVIEW"

// Config holds the run configuration. Flag values win over environment
// variables, which win over defaults.
type Config struct {
	// Input is the path to the HR attrition CSV file.
	Input string `mapstructure:"input"`
	// OutDir is where chart artifacts are written.
	OutDir string `mapstructure:"out-dir"`
	// Export, when non-empty, is the path of the JSON report to write.
	Export string `mapstructure:"export"`
	// Mappings, when non-empty, is a YAML file overriding ordinal tables.
	Mappings string `mapstructure:"mappings"`
	// NoCharts skips chart rendering.
	NoCharts bool `mapstructure:"no-charts"`
	// Verbose enables debug logging.
	Verbose bool `mapstructure:"verbose"`
}

// Load binds the command's flags and the ATTRIVIEW_* environment and returns
// the resolved configuration.
func Load(flags *pflag.FlagSet) (*Config, error) {
	v := viper.New()
	v.SetEnvPrefix(envPrefix)
	v.AutomaticEnv()
	if err := v.BindPFlags(flags); err != nil {
		return nil, fmt.Errorf("binding flags: %w", err)
	}

	// AutomaticEnv does not map dashes; bind the dashed keys explicitly.
	_ = v.BindEnv("input", envPrefix+"_INPUT")
	_ = v.BindEnv("out-dir", envPrefix+"_OUT_DIR")
	_ = v.BindEnv("export", envPrefix+"_EXPORT")
	_ = v.BindEnv("mappings", envPrefix+"_MAPPINGS")
	_ = v.BindEnv("no-charts", envPrefix+"_NO_CHARTS")

	var cfg Config
	if err := v.Unmarshal(&cfg); err != nil {
		return nil, fmt.Errorf("resolving configuration: %w", err)
	}
	if cfg.Input == "" {
		return nil, fmt.Errorf("no input file: set --input or %s_INPUT", envPrefix)
	}
	return &cfg, nil
}
