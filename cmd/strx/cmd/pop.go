package cmd

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/msto63/strx/foundation/utils/stringx"
)

var (
	popCount   int64
	popEach    bool
	popSticky  bool
	popReserve bool
)

var popCmd = &cobra.Command{
	Use:   "pop <text>",
	Short: "Trace removal and demotion",
	Long: `Removes bytes from the end of <text>. A heap string that shrinks to
15 bytes or less moves back inline unless it is sticky.`,
	Args: cobra.ExactArgs(1),
	RunE: runPop,
}

func init() {
	popCmd.Flags().Int64VarP(&popCount, "count", "n", 1, "number of bytes to remove")
	popCmd.Flags().BoolVar(&popEach, "each", false, "pop one byte at a time and show every step")
	popCmd.Flags().BoolVar(&popSticky, "sticky", false, "mark the string sticky first")
	popCmd.Flags().BoolVar(&popReserve, "reserve", false, "call Reserve(0) first")
	rootCmd.AddCommand(popCmd)
}

func runPop(cmd *cobra.Command, args []string) error {
	out := cmd.OutOrStdout()
	n, err := toUint32(popCount)
	if err != nil {
		return err
	}

	s, err := stringx.New(args[0], stringOptions()...)
	if err != nil {
		return err
	}
	if popSticky {
		s.MakeSticky()
	}
	if popReserve {
		if err := s.Reserve(0); err != nil {
			return err
		}
	}

	fmt.Fprintln(out, renderHeader(" Pop "))
	table := newStateTable(out)
	table.add("start", s)

	if !popEach {
		if err := s.PopLastN(n); err != nil {
			_ = table.render()
			return err
		}
		table.add(fmt.Sprintf("pop %d", n), s)
		return table.render()
	}

	for i := uint32(0); i < n; i++ {
		c, err := s.PopLast()
		if err != nil {
			_ = table.render()
			return err
		}
		table.add(fmt.Sprintf("pop %q", c), s)
	}
	return table.render()
}
