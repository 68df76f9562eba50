// Package cli implements the housebuilder command-line interface.
// Running the root command with no subcommand starts the interactive
// session; subcommands build or compare houses without prompts.
package cli

import (
	"errors"
	"fmt"
	"os"

	"github.com/spf13/cobra"
	"go.uber.org/zap"

	"github.com/mesh-intelligence/housebuilder/internal/paths"
	"github.com/mesh-intelligence/housebuilder/internal/session"
	"github.com/mesh-intelligence/housebuilder/pkg/types"
)

// Exit codes.
const (
	exitSuccess   = 0
	exitUserError = 1
	exitSysError  = 2
)

// rootFlags holds global flag values accessible to all subcommands.
type rootFlags struct {
	configDir string
	verbose   bool
	noColor   bool
}

// app is the state shared by one command tree: flags, the loaded config,
// and the logger built from it.
type app struct {
	flags  rootFlags
	cfg    types.Config
	logger *zap.Logger
}

// NewRootCmd creates the top-level "housebuilder" command with global flags
// and all subcommands registered.
func NewRootCmd() *cobra.Command {
	a := &app{
		cfg:    types.DefaultConfig(),
		logger: zap.NewNop(),
	}

	root := &cobra.Command{
		Use:   "housebuilder",
		Short: "An interactive demo of the builder pattern",
		Long: `housebuilder assembles houses step by step with interchangeable builders.

Run without arguments to start the interactive menu. Use "build" and
"compare" to apply pre-made plans without prompts.`,
		Args: cobra.NoArgs,
		// Do not print usage on errors returned by subcommands.
		SilenceUsage:      true,
		SilenceErrors:     true,
		PersistentPreRunE: a.setup,
		PersistentPostRun: func(cmd *cobra.Command, args []string) {
			_ = a.logger.Sync()
		},
		RunE: a.runInteractive,
	}

	root.PersistentFlags().StringVar(&a.flags.configDir, "config-dir", "", "configuration directory (default: $XDG_CONFIG_HOME/housebuilder)")
	root.PersistentFlags().BoolVarP(&a.flags.verbose, "verbose", "v", false, "enable debug logging")
	root.PersistentFlags().BoolVar(&a.flags.noColor, "no-color", false, "disable colored output")

	root.AddCommand(newVersionCmd())
	root.AddCommand(newInitCmd(a))
	root.AddCommand(newBuildCmd(a))
	root.AddCommand(newCompareCmd(a))

	return root
}

// Execute runs the root command and exits with the appropriate code.
func Execute() {
	root := NewRootCmd()
	if err := root.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, "Error:", err)
		os.Exit(exitCode(err))
	}
}

// systemError marks failures of the environment (file system, logger)
// rather than of user input.
type systemError struct {
	err error
}

func (e *systemError) Error() string { return e.err.Error() }
func (e *systemError) Unwrap() error { return e.err }

// sysErr wraps err as a system error. A nil err stays nil.
func sysErr(err error) error {
	if err == nil {
		return nil
	}
	return &systemError{err: err}
}

// exitCode maps an error returned by a command to a process exit code.
func exitCode(err error) int {
	if err == nil {
		return exitSuccess
	}
	var se *systemError
	if errors.As(err, &se) {
		return exitSysError
	}
	return exitUserError
}

// setup loads configuration and builds the logger. The version and init
// commands run without a config file.
func (a *app) setup(cmd *cobra.Command, args []string) error {
	switch cmd.Name() {
	case "version", "init":
		return nil
	}

	configDir, err := paths.ResolveConfigDir(a.flags.configDir)
	if err != nil {
		return sysErr(fmt.Errorf("resolve config dir: %w", err))
	}

	cfg, err := loadConfig(configDir)
	if err != nil {
		return err
	}
	if a.flags.noColor {
		cfg.Color = false
	}
	a.cfg = cfg

	logger, err := newLogger(cfg.LogLevel, a.flags.verbose)
	if err != nil {
		return sysErr(fmt.Errorf("initialize logger: %w", err))
	}
	a.logger = logger
	a.logger.Debug("config loaded",
		zap.String("config_dir", configDir),
		zap.String("default_builder", cfg.DefaultBuilder),
		zap.String("default_plan", cfg.DefaultPlan))
	return nil
}

// runInteractive starts the menu loop on the command's input and output.
func (a *app) runInteractive(cmd *cobra.Command, args []string) error {
	out := cmd.OutOrStdout()
	prompter := session.NewLinePrompter(cmd.InOrStdin(), out)
	s := session.New(prompter, out, a.cfg, a.logger)
	if err := s.Run(cmd.Context()); err != nil {
		return sysErr(err)
	}
	return nil
}
