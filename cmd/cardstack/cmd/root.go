// Package cmd implements the cardstack CLI commands.
//
// The root command carries the global flags (log level, color) and
// dispatches to simulate, render and version. Flags can also be set from
// CARDSTACK_* environment variables or a config file.
package cmd

import (
	"context"
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/fatih/color"
	"github.com/go-logr/logr"
	"github.com/spf13/cobra"
	"github.com/spf13/pflag"
	"github.com/spf13/viper"

	"github.com/go-drift/cardstack/cmd/cardstack/internal/logging"
	cserrors "github.com/go-drift/cardstack/pkg/errors"
)

// Version information set at build time.
var (
	Version   = "0.1.0-dev"
	BuildTime = "unknown"
)

const envPrefix = "CARDSTACK"

type rootOptions struct {
	logLevel string
	noColor  bool
	logger   logr.Logger
}

// NewRootCommand builds the cardstack command tree.
func NewRootCommand() *cobra.Command {
	opts := &rootOptions{logLevel: "info", logger: logr.Discard()}
	cmd := &cobra.Command{
		Use:           "cardstack",
		Short:         "Replay and render swipeable card stack scenarios",
		Long:          "cardstack drives a swipeable card stack from a scripted scenario on a deterministic clock.",
		SilenceUsage:  true,
		SilenceErrors: true,
		PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
			if err := bindViper(cmd.Root()); err != nil {
				return err
			}
			if opts.noColor {
				color.NoColor = true
			}
			logger, err := logging.New(opts.logLevel, cmd.ErrOrStderr())
			if err != nil {
				return err
			}
			opts.logger = logger
			cserrors.SetHandler(cserrors.NewLogHandler(logger.WithName("errors"), strings.EqualFold(opts.logLevel, "debug")))
			return nil
		},
	}
	cmd.PersistentFlags().StringVar(&opts.logLevel, "log-level", opts.logLevel, "Log level (debug, info, warn, error)")
	cmd.PersistentFlags().BoolVar(&opts.noColor, "no-color", false, "Disable colored output")

	cmd.AddCommand(
		newSimulateCommand(opts),
		newRenderCommand(opts),
		newVersionCommand(),
	)
	cmd.Example = `  # Replay a scenario and print each step
  cardstack simulate scenarios/basic.yaml

  # Render the stack after the first three steps
  cardstack render scenarios/basic.yaml --step 3 -o stack.png`
	return cmd
}

// Execute runs the root command and reports any error on stderr.
func Execute(ctx context.Context) error {
	err := NewRootCommand().ExecuteContext(ctx)
	handleError(err)
	return err
}

// bindViper fills every flag the user did not set from CARDSTACK_*
// environment variables or the config file.
func bindViper(root *cobra.Command) error {
	v := viper.New()
	v.SetEnvKeyReplacer(strings.NewReplacer("-", "_"))
	v.SetEnvPrefix(envPrefix)
	v.AutomaticEnv()
	configFile := os.Getenv(envPrefix + "_CONFIG")
	configureConfigFile(v, configFile)

	var flagSets []*pflag.FlagSet
	visit(root, func(c *cobra.Command) {
		flagSets = append(flagSets, c.Flags(), c.PersistentFlags())
	})
	for _, fs := range flagSets {
		if err := v.BindPFlags(fs); err != nil {
			return err
		}
	}
	if err := readConfigFile(v, configFile != ""); err != nil {
		return fmt.Errorf("failed to read config: %w", err)
	}
	for _, fs := range flagSets {
		var setErr error
		fs.VisitAll(func(f *pflag.Flag) {
			if f.Changed || !v.IsSet(f.Name) || setErr != nil {
				return
			}
			val := fmt.Sprintf("%v", v.Get(f.Name))
			if val == "" || val == f.Value.String() {
				return
			}
			if err := f.Value.Set(val); err != nil {
				setErr = fmt.Errorf("invalid value %q for --%s: %w", val, f.Name, err)
			}
		})
		if setErr != nil {
			return setErr
		}
	}
	return nil
}

func visit(cmd *cobra.Command, fn func(*cobra.Command)) {
	fn(cmd)
	for _, c := range cmd.Commands() {
		visit(c, fn)
	}
}

func configureConfigFile(v *viper.Viper, explicitPath string) {
	if explicitPath != "" {
		v.SetConfigFile(explicitPath)
		return
	}
	v.SetConfigName("config")
	for _, dir := range configSearchDirs() {
		v.AddConfigPath(dir)
	}
}

func readConfigFile(v *viper.Viper, strict bool) error {
	if err := v.ReadInConfig(); err != nil {
		var cfgErr viper.ConfigFileNotFoundError
		if errors.As(err, &cfgErr) && !strict {
			return nil
		}
		return err
	}
	return nil
}

func configSearchDirs() []string {
	var dirs []string
	if xdg := os.Getenv("XDG_CONFIG_HOME"); xdg != "" {
		dirs = append(dirs, filepath.Join(xdg, "cardstack"))
	}
	if home, err := os.UserHomeDir(); err == nil && home != "" {
		dirs = append(dirs, filepath.Join(home, ".config", "cardstack"))
	}
	return dirs
}

func handleError(err error) {
	if err == nil || errors.Is(err, pflag.ErrHelp) {
		return
	}
	fmt.Fprintf(os.Stderr, "Error: %s\n", err)
}
