package cmd

import (
	"fmt"
	"strconv"

	"github.com/spf13/cobra"

	strxerror "github.com/msto63/strx/foundation/core/error"
	"github.com/msto63/strx/foundation/utils/stringx"
)

var (
	viewStart  int64
	viewLength int64
	viewFind   string
	viewPrefix string
	viewParse  string
	viewTrim   bool
)

var viewCmd = &cobra.Command{
	Use:   "view <text>",
	Short: "Sub-views, search and number parsing",
	Long: `Takes a view of <text> and optionally narrows it with --start and
--length (the length is clamped to the available bytes). The resulting view
can be searched, prefix-checked and parsed as a number.`,
	Args: cobra.ExactArgs(1),
	RunE: runView,
}

func init() {
	f := viewCmd.Flags()
	f.Int64Var(&viewStart, "start", 0, "first byte of the sub-view")
	f.Int64Var(&viewLength, "length", -1, "length of the sub-view (default: to the end)")
	f.StringVar(&viewFind, "find", "", "print the index of this substring")
	f.StringVar(&viewPrefix, "prefix", "", "report whether the view starts with this")
	f.StringVar(&viewParse, "parse", "", "parse the view as int or float")
	f.BoolVar(&viewTrim, "trim", false, "trim surrounding whitespace from the view")
	rootCmd.AddCommand(viewCmd)
}

func runView(cmd *cobra.Command, args []string) error {
	out := cmd.OutOrStdout()

	s, err := stringx.New(args[0], stringOptions()...)
	if err != nil {
		return err
	}
	start, err := toUint32(viewStart)
	if err != nil {
		return err
	}

	v := s.View()
	if viewStart > 0 || viewLength >= 0 {
		if viewLength < 0 {
			v, err = s.SubToEnd(start)
		} else {
			var length uint32
			if length, err = toUint32(viewLength); err != nil {
				return err
			}
			v, err = s.Sub(start, length)
		}
		if err != nil {
			return err
		}
	}
	if viewTrim {
		v = v.TrimWhitespace()
	}

	fmt.Fprintln(out, renderHeader(" View "))
	if err := v.Print(out, "view"); err != nil {
		return err
	}
	fmt.Fprintln(out, renderLabel("length", strconv.FormatUint(uint64(v.Len()), 10)))

	if viewFind != "" {
		fmt.Fprintln(out, renderLabel("find", strconv.Itoa(int(v.IndexString(viewFind)))))
	}
	if viewPrefix != "" {
		fmt.Fprintln(out, renderLabel("prefix", strconv.FormatBool(v.HasPrefix(stringx.ViewString(viewPrefix)))))
	}

	switch viewParse {
	case "":
	case "int":
		n, ok := v.ParseInt()
		if !ok {
			return parseError(v, "int")
		}
		fmt.Fprintln(out, renderLabel("int", strconv.FormatInt(int64(n), 10)))
	case "float":
		f, ok := v.ParseFloat()
		if !ok {
			return parseError(v, "float")
		}
		fmt.Fprintln(out, renderLabel("float", strconv.FormatFloat(f, 'g', -1, 64)))
	default:
		return strxerror.New(fmt.Sprintf("unknown parse kind %q", viewParse)).
			WithCode(strxerror.CodeInvalidInput).
			WithOperation("strx.view")
	}
	return nil
}

func parseError(v stringx.View, kind string) error {
	return strxerror.New(fmt.Sprintf("%q is not a valid %s", v.String(), kind)).
		WithCode(strxerror.CodeInvalidInput).
		WithOperation("strx.view")
}
