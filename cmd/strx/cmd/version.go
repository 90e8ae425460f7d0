package cmd

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/msto63/strx/pkg/core/version"
)

var versionShort bool

var versionCmd = &cobra.Command{
	Use:   "version",
	Short: "Print version information",
	Args:  cobra.NoArgs,
	RunE: func(cmd *cobra.Command, args []string) error {
		info := version.Get()
		out := cmd.OutOrStdout()
		if versionShort {
			fmt.Fprintln(out, info.CLI)
			return nil
		}
		fmt.Fprintln(out, renderHeader(" strx "))
		fmt.Fprintln(out, renderLabel("cli", info.CLI))
		fmt.Fprintln(out, renderLabel("library", info.Library))
		fmt.Fprintln(out, renderLabel("config", info.Config))
		fmt.Fprintln(out, renderLabel("commit", info.GitCommit))
		fmt.Fprintln(out, renderLabel("built", info.BuildDate))
		fmt.Fprintln(out, renderLabel("go", info.GoVersion))
		fmt.Fprintln(out, renderLabel("platform", info.Platform))
		return nil
	},
}

func init() {
	versionCmd.Flags().BoolVar(&versionShort, "short", false, "print only the version number")
	rootCmd.AddCommand(versionCmd)
}
