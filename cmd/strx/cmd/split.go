package cmd

import (
	"fmt"
	"strconv"

	"github.com/olekukonko/tablewriter"
	"github.com/spf13/cobra"

	strxerror "github.com/msto63/strx/foundation/core/error"
	"github.com/msto63/strx/foundation/utils/stringx"
)

var (
	splitSep   string
	splitViews bool
)

var splitCmd = &cobra.Command{
	Use:   "split <text>",
	Short: "Split at a separator byte",
	Long: `Splits <text> at every occurrence of the separator.

By default the string is split with repeated SplitOnce calls, so every
field is an owned String with its own representation. With --views the
fields are views into the argument and nothing is copied.`,
	Args: cobra.ExactArgs(1),
	RunE: runSplit,
}

func init() {
	splitCmd.Flags().StringVarP(&splitSep, "sep", "s", ",", "separator, a single byte")
	splitCmd.Flags().BoolVar(&splitViews, "views", false, "split into views instead of strings")
	rootCmd.AddCommand(splitCmd)
}

func runSplit(cmd *cobra.Command, args []string) error {
	if len(splitSep) != 1 {
		return strxerror.New(fmt.Sprintf("separator must be one byte, got %q", splitSep)).
			WithCode(strxerror.CodeInvalidInput).
			WithOperation("strx.split")
	}
	sep := splitSep[0]
	out := cmd.OutOrStdout()
	fmt.Fprintln(out, renderHeader(" Split "))

	if splitViews {
		table := tablewriter.NewWriter(out)
		table.Header("#", "Field", "Len")
		for i, field := range stringx.ViewString(args[0]).SplitAll(sep) {
			table.Append(strconv.Itoa(i+1), fmt.Sprintf("%q", field.String()), strconv.FormatUint(uint64(field.Len()), 10))
		}
		return table.Render()
	}

	rest, err := stringx.New(args[0], stringOptions()...)
	if err != nil {
		return err
	}
	table := newStateTable(out)
	for i := 1; ; i++ {
		tail, found, err := rest.SplitOnce(sep)
		if err != nil {
			_ = table.render()
			return err
		}
		table.add(fmt.Sprintf("field %d", i), rest)
		if !found {
			break
		}
		rest = tail
	}
	return table.render()
}
