package cmd

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/msto63/strx/foundation/utils/stringx"
)

var (
	inspectReserve int64
	inspectSticky  bool
)

var inspectCmd = &cobra.Command{
	Use:   "inspect <text>...",
	Short: "Show the representation of each argument",
	Long: `Builds one String per argument and shows its length, storage
representation, capacity and flags.

With --reserve the string is promoted and given extra room first.`,
	Args: cobra.MinimumNArgs(1),
	RunE: runInspect,
}

func init() {
	inspectCmd.Flags().Int64Var(&inspectReserve, "reserve", -1, "reserve this many extra bytes (promotes to the heap)")
	inspectCmd.Flags().BoolVar(&inspectSticky, "sticky", false, "mark the strings sticky")
	rootCmd.AddCommand(inspectCmd)
}

func runInspect(cmd *cobra.Command, args []string) error {
	out := cmd.OutOrStdout()
	fmt.Fprintln(out, renderHeader(" Strings "))

	table := newStateTable(out)
	for i, arg := range args {
		s, err := stringx.New(arg, stringOptions()...)
		if err != nil {
			return err
		}
		if inspectReserve >= 0 {
			extra, err := toUint32(inspectReserve)
			if err != nil {
				return err
			}
			if err := s.Reserve(extra); err != nil {
				return err
			}
		}
		if inspectSticky {
			s.MakeSticky()
		}
		table.add(fmt.Sprintf("#%d", i+1), s)
	}
	return table.render()
}
