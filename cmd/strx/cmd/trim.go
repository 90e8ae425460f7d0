package cmd

import (
	"fmt"

	"github.com/spf13/cobra"

	strxerror "github.com/msto63/strx/foundation/core/error"
	"github.com/msto63/strx/foundation/utils/stringx"
)

var trimMode string

var trimCmd = &cobra.Command{
	Use:   "trim <text>",
	Short: "Trim whitespace in place",
	Long: `Removes whitespace from <text>. Modes: front, back, both, all.
"all" removes every whitespace byte, not only the ends. Trimming never
changes the representation or capacity.`,
	Args: cobra.ExactArgs(1),
	RunE: runTrim,
}

func init() {
	trimCmd.Flags().StringVarP(&trimMode, "mode", "m", "both", "front, back, both or all")
	rootCmd.AddCommand(trimCmd)
}

func runTrim(cmd *cobra.Command, args []string) error {
	mode, ok := stringx.ParseTrimMode(trimMode)
	if !ok {
		return strxerror.New(fmt.Sprintf("unknown trim mode %q", trimMode)).
			WithCode(strxerror.CodeInvalidInput).
			WithOperation("strx.trim")
	}

	s, err := stringx.New(args[0], stringOptions()...)
	if err != nil {
		return err
	}

	out := cmd.OutOrStdout()
	fmt.Fprintln(out, renderHeader(" Trim "+mode.String()+" "))
	table := newStateTable(out)
	table.add("before", s)
	if err := s.TrimWhitespace(mode); err != nil {
		return err
	}
	table.add("after", s)
	return table.render()
}
