package cmd

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/msto63/strx/foundation/core/config"
)

var configFormat string

var configCmd = &cobra.Command{
	Use:   "config",
	Short: "Configuration commands",
}

var configShowCmd = &cobra.Command{
	Use:   "show",
	Short: "Print the effective configuration",
	Long: `Prints the configuration after defaults, the config file and STRX_
environment variables have been applied.`,
	Args: cobra.NoArgs,
	RunE: runConfigShow,
}

var configEnvCmd = &cobra.Command{
	Use:   "env",
	Short: "List the environment variables that override the configuration",
	Args:  cobra.NoArgs,
	RunE: func(cmd *cobra.Command, args []string) error {
		for _, key := range config.EnvKeys() {
			fmt.Fprintln(cmd.OutOrStdout(), key)
		}
		return nil
	},
}

func init() {
	configShowCmd.Flags().StringVarP(&configFormat, "format", "f", "toml", "output format (toml, yaml)")
	configCmd.AddCommand(configShowCmd, configEnvCmd)
	rootCmd.AddCommand(configCmd)
}

func runConfigShow(cmd *cobra.Command, args []string) error {
	format, err := config.ParseFormat(configFormat)
	if err != nil {
		return err
	}
	data, err := appConfig.Marshal(format)
	if err != nil {
		return err
	}

	out := cmd.OutOrStdout()
	if p := appConfig.Path(); p != "" {
		fmt.Fprintf(out, "# loaded from %s\n", p)
	} else {
		fmt.Fprintln(out, "# defaults")
	}
	_, err = out.Write(data)
	return err
}
