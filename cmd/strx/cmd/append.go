package cmd

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/msto63/strx/foundation/utils/stringx"
)

var (
	appendReserve int64
	appendSelf    bool
)

var appendCmd = &cobra.Command{
	Use:   "append <base> <suffix>...",
	Short: "Trace promotion and growth while appending",
	Long: `Starts from <base> and appends every suffix in turn, printing the
state after each step. Promotion to the heap allocates exactly the needed
size; later growth doubles the capacity.`,
	Args: cobra.MinimumNArgs(1),
	RunE: runAppend,
}

func init() {
	appendCmd.Flags().Int64Var(&appendReserve, "reserve", -1, "reserve extra bytes before appending")
	appendCmd.Flags().BoolVar(&appendSelf, "self", false, "finish by appending the string to itself")
	rootCmd.AddCommand(appendCmd)
}

func runAppend(cmd *cobra.Command, args []string) error {
	out := cmd.OutOrStdout()
	s, err := stringx.New(args[0], stringOptions()...)
	if err != nil {
		return err
	}

	fmt.Fprintln(out, renderHeader(" Append "))
	table := newStateTable(out)
	table.add("new", s)

	if appendReserve >= 0 {
		extra, err := toUint32(appendReserve)
		if err != nil {
			return err
		}
		if err := s.Reserve(extra); err != nil {
			return err
		}
		table.add(fmt.Sprintf("reserve %d", extra), s)
	}

	for _, suffix := range args[1:] {
		if err := s.AppendString(suffix); err != nil {
			_ = table.render()
			return err
		}
		table.add(fmt.Sprintf("+%q", truncate(suffix, 12)), s)
	}

	if appendSelf {
		if err := s.AppendOther(s); err != nil {
			_ = table.render()
			return err
		}
		table.add("+self", s)
	}
	return table.render()
}
