package cli

import (
	"fmt"
	"strings"

	"github.com/spf13/viper"

	"github.com/mesh-intelligence/housebuilder/pkg/types"
)

const (
	configFileName = "config"
	configFileType = "yaml"

	// envPrefix scopes environment overrides, e.g. HOUSEBUILDER_DEFAULT_PLAN
	// or HOUSEBUILDER_LIMITS_WALLS_MAX.
	envPrefix = "HOUSEBUILDER"
)

// Config keys.
const (
	cfgKeyDefaultBuilder = "default_builder"
	cfgKeyDefaultPlan    = "default_plan"
	cfgKeyColor          = "color"
	cfgKeyLogLevel       = "log_level"
	cfgKeyWallsMin       = "limits.walls.min"
	cfgKeyWallsMax       = "limits.walls.max"
	cfgKeyDoorsMin       = "limits.doors.min"
	cfgKeyDoorsMax       = "limits.doors.max"
	cfgKeyWindowsMin     = "limits.windows.min"
	cfgKeyWindowsMax     = "limits.windows.max"
)

// setDefaults registers every key so that env overrides and Unmarshal see
// the full key set even without a config file.
func setDefaults(v *viper.Viper) {
	d := types.DefaultConfig()
	v.SetDefault(cfgKeyDefaultBuilder, d.DefaultBuilder)
	v.SetDefault(cfgKeyDefaultPlan, d.DefaultPlan)
	v.SetDefault(cfgKeyColor, d.Color)
	v.SetDefault(cfgKeyLogLevel, d.LogLevel)
	v.SetDefault(cfgKeyWallsMin, d.Limits.Walls.Min)
	v.SetDefault(cfgKeyWallsMax, d.Limits.Walls.Max)
	v.SetDefault(cfgKeyDoorsMin, d.Limits.Doors.Min)
	v.SetDefault(cfgKeyDoorsMax, d.Limits.Doors.Max)
	v.SetDefault(cfgKeyWindowsMin, d.Limits.Windows.Min)
	v.SetDefault(cfgKeyWindowsMax, d.Limits.Windows.Max)
}

// loadConfig reads config.yaml from configDir using Viper, applies
// HOUSEBUILDER_* environment overrides, and validates the result.
// A missing config.yaml is not an error; defaults apply.
func loadConfig(configDir string) (types.Config, error) {
	v := viper.New()
	setDefaults(v)
	v.SetConfigName(configFileName)
	v.SetConfigType(configFileType)
	v.AddConfigPath(configDir)
	v.SetEnvPrefix(envPrefix)
	v.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))
	v.AutomaticEnv()

	if err := v.ReadInConfig(); err != nil {
		if _, ok := err.(viper.ConfigFileNotFoundError); !ok {
			return types.Config{}, fmt.Errorf("read config: %w", err)
		}
	}

	var cfg types.Config
	if err := v.Unmarshal(&cfg); err != nil {
		return types.Config{}, fmt.Errorf("decode config: %w", err)
	}
	if err := cfg.Validate(); err != nil {
		return types.Config{}, fmt.Errorf("invalid config: %w", err)
	}
	return cfg, nil
}
