package cmd

import (
	"fmt"
	"io"

	"github.com/spf13/cobra"

	"github.com/msto63/strx/foundation/core/config"
	"github.com/msto63/strx/foundation/core/diag"
	"github.com/msto63/strx/foundation/core/log"
	"github.com/msto63/strx/foundation/utils/stringx"
)

var (
	cfgFile string
	verbose bool

	appConfig *config.Config
	channel   *diag.Channel
	logger    *log.Logger
	closer    io.Closer
)

var rootCmd = &cobra.Command{
	Use:   "strx",
	Short: "Inspect and exercise small-string containers",
	Long: `strx drives the stringx container from the command line.

Every command builds strings with the configured sticky policy and
capacity limit and reports failures through the diagnostics channel.

Commands:
  inspect  - show representation and capacity of strings
  append   - trace promotion and growth while appending
  pop      - trace removal and demotion
  split    - split at a separator
  trim     - trim whitespace
  view     - sub-views, search and number parsing
  bench    - concurrent allocation benchmark
  config   - print the effective configuration`,
	SilenceUsage:       true,
	SilenceErrors:      true,
	PersistentPreRunE:  setup,
	PersistentPostRunE: teardown,
}

// Execute runs the root command and prints a failure to stderr.
func Execute() error {
	err := rootCmd.Execute()
	if err != nil {
		printError(rootCmd.ErrOrStderr(), err)
	}
	return err
}

func init() {
	rootCmd.PersistentFlags().StringVar(&cfgFile, "config", "", "config file (default: strx.toml, strx.yaml in . or the user config dir)")
	rootCmd.PersistentFlags().BoolVarP(&verbose, "verbose", "v", false, "log every diagnostic and timing")
}

func setup(cmd *cobra.Command, args []string) error {
	var err error
	if cfgFile != "" {
		appConfig, err = config.Load(cfgFile)
	} else {
		appConfig, err = config.Discover(config.DefaultDiscoveryOptions())
	}
	if err != nil {
		return err
	}
	if verbose {
		appConfig.Diagnostics.Level = "debug"
	}

	channel, closer, err = appConfig.Channel()
	if err != nil {
		return err
	}
	logger, err = appConfig.Logger("strx-cli", cmd.ErrOrStderr())
	if err != nil {
		return err
	}
	if p := appConfig.Path(); p != "" {
		logger.Debug("configuration loaded", log.Fields{"path": p})
	}
	return nil
}

func teardown(cmd *cobra.Command, args []string) error {
	if closer == nil {
		return nil
	}
	err := closer.Close()
	closer = nil
	return err
}

// stringOptions returns the configured options followed by extra.
func stringOptions(extra ...stringx.Option) []stringx.Option {
	return append(appConfig.StringOptions(channel), extra...)
}

func printError(w io.Writer, err error) {
	fmt.Fprintf(w, "%s %v\n", ErrorStyle.Render("error:"), err)
}

