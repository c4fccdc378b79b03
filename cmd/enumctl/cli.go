package main

import (
	"context"
	"io"
	"log/slog"
	"os"
	"strings"

	"github.com/spf13/cobra"
	"github.com/spf13/viper"

	"github.com/arthur-debert/enumerated/formats"
	"github.com/arthur-debert/enumerated/loader"
)

// CLI is the Viper-driven enumctl command tree
type CLI struct {
	rootCmd   *cobra.Command
	viperInst *viper.Viper

	logger    *slog.Logger
	closeLogs func() error
}

// NewCLI creates the command tree and reads configuration
func NewCLI() *CLI {
	cli := &CLI{
		viperInst: viper.New(),
		logger:    slog.New(slog.DiscardHandler),
		closeLogs: func() error { return nil },
	}

	cli.setupViperConfig()
	cli.createRootCommand()
	cli.addCommands()

	return cli
}

// Execute runs the command selected by the process arguments
func (cli *CLI) Execute() error {
	defer func() { _ = cli.closeLogs() }()
	return cli.rootCmd.Execute()
}

// setupViperConfig configures Viper with environment variables and config files
func (cli *CLI) setupViperConfig() {
	if configFile := os.Getenv("ENUMCTL_CONFIG"); configFile != "" {
		cli.viperInst.SetConfigFile(configFile)
	} else {
		cli.viperInst.SetConfigName("enumctl")
		cli.viperInst.SetConfigType("yaml")
		cli.viperInst.AddConfigPath(".")
		cli.viperInst.AddConfigPath("$HOME/.enumctl")
	}

	cli.viperInst.AutomaticEnv()
	cli.viperInst.SetEnvPrefix("ENUMCTL")

	// --log-level -> ENUMCTL_LOG_LEVEL
	cli.viperInst.SetEnvKeyReplacer(strings.NewReplacer("-", "_"))

	// A missing config file is fine
	_ = cli.viperInst.ReadInConfig()
}

func (cli *CLI) createRootCommand() {
	cli.rootCmd = &cobra.Command{
		Use:   "enumctl",
		Short: "Validate and inspect enum definition files",
		Long: `enumctl loads enum definition documents (JSON, YAML or TOML) and reports
construction errors, value tables, dropdown choices and key lookups.

Configuration Sources (in order of precedence):
1. Command line flags
2. Environment variables (ENUMCTL_*)
3. Configuration file (ENUMCTL_CONFIG, ./enumctl.yaml, ~/.enumctl/enumctl.yaml)

Examples:
  enumctl validate defs/*.yaml
  enumctl show defs/step_type.yaml --format json
  enumctl dropdown defs/step_type.yaml --exclude 2,3
  enumctl lookup defs/step_type.yaml 10 --first`,

		SilenceUsage:  true,
		SilenceErrors: true,

		PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
			_ = cli.viperInst.BindPFlags(cmd.Flags())

			logger, closer, err := initLogging(cmd.ErrOrStderr(),
				cli.viperInst.GetString("log-level"), cli.viperInst.GetString("log-file"))
			if err != nil {
				return err
			}
			cli.logger = logger
			cli.closeLogs = closer

			return cli.validateOutputFormat()
		},
	}

	cli.addGlobalFlags()
}

// addGlobalFlags adds persistent flags that apply to all commands
func (cli *CLI) addGlobalFlags() {
	flags := cli.rootCmd.PersistentFlags()

	flags.StringP("format", "f", "table", "Output format (table|json|yaml)")
	flags.String("input-format", "", "Definition format, instead of guessing from the file extension ("+strings.Join(formats.List(), "|")+")")
	flags.String("log-level", "warn", "Log level (debug|info|warn|error)")
	flags.String("log-file", "", "Also write JSON logs to this file")
	flags.Duration("lock-timeout", loader.DefaultLockTimeout, "How long to wait for a locked definition file")

	for _, flag := range []string{"format", "input-format", "log-level", "log-file", "lock-timeout"} {
		_ = cli.viperInst.BindPFlag(flag, flags.Lookup(flag))
	}
}

func (cli *CLI) addCommands() {
	cli.addValidateCommand()
	cli.addShowCommand()
	cli.addDropdownCommand()
	cli.addLookupCommand()
	cli.addConvertCommand()
	cli.addMetricsCommand()
}

func (cli *CLI) validateOutputFormat() error {
	switch format := cli.viperInst.GetString("format"); format {
	case "table", "json", "yaml":
		return nil
	default:
		return NewValidationError("render output", "output format", format,
			"Use --format table, json or yaml")
	}
}

// newLoader returns a Loader configured from flags, env and config
func (cli *CLI) newLoader() *loader.Loader {
	opts := []loader.Option{loader.WithLogger(cli.logger)}
	if timeout := cli.viperInst.GetDuration("lock-timeout"); timeout > 0 {
		opts = append(opts, loader.WithLockTimeout(timeout))
	}
	if format := cli.viperInst.GetString("input-format"); format != "" {
		opts = append(opts, loader.WithFormat(format))
	}
	return loader.New(opts...)
}

// out returns the writer for command results
func (cli *CLI) out(cmd *cobra.Command) io.Writer {
	return cmd.OutOrStdout()
}

func (cli *CLI) commandContext(cmd *cobra.Command) context.Context {
	if ctx := cmd.Context(); ctx != nil {
		return ctx
	}
	return context.Background()
}
