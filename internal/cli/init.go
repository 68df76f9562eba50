package cli

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"
	"gopkg.in/yaml.v3"

	"github.com/mesh-intelligence/housebuilder/internal/paths"
	"github.com/mesh-intelligence/housebuilder/pkg/types"
)

// configHeader is written above the marshaled defaults in a new config.yaml.
const configHeader = `# housebuilder configuration
# Every key may also be set through the environment, e.g.
# HOUSEBUILDER_DEFAULT_PLAN=family or HOUSEBUILDER_LIMITS_WALLS_MAX=12.

`

func newInitCmd(a *app) *cobra.Command {
	return &cobra.Command{
		Use:   "init",
		Short: "Write a default config.yaml",
		Long:  "Create the configuration directory and write config.yaml with default values if it does not exist.",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			configDir, err := paths.ResolveConfigDir(a.flags.configDir)
			if err != nil {
				return sysErr(fmt.Errorf("resolve config dir: %w", err))
			}

			if err := os.MkdirAll(configDir, 0o755); err != nil {
				return sysErr(fmt.Errorf("create config directory: %w", err))
			}

			path := paths.ConfigFile(configDir)
			written, err := writeConfigIfMissing(path, types.DefaultConfig())
			if err != nil {
				return sysErr(fmt.Errorf("write config: %w", err))
			}

			if written {
				fmt.Fprintf(cmd.OutOrStdout(), "Wrote default config to %s\n", path)
			} else {
				fmt.Fprintf(cmd.OutOrStdout(), "Config already exists at %s\n", path)
			}
			return nil
		},
	}
}

// writeConfigIfMissing creates path with cfg if the file does not exist.
// It reports whether a file was written; an existing file is left alone.
func writeConfigIfMissing(path string, cfg types.Config) (bool, error) {
	if _, err := os.Stat(path); err == nil {
		return false, nil
	} else if !os.IsNotExist(err) {
		return false, fmt.Errorf("stat config file: %w", err)
	}

	data, err := yaml.Marshal(&cfg)
	if err != nil {
		return false, fmt.Errorf("marshal config: %w", err)
	}

	if err := os.WriteFile(path, append([]byte(configHeader), data...), 0o644); err != nil {
		return false, err
	}
	return true, nil
}
