package cmd

import (
	"fmt"
	"io"
	"strconv"
	"strings"

	"github.com/olekukonko/tablewriter"

	"github.com/msto63/strx/foundation/utils/stringx"
)

var stateHeader = []any{"Step", "Content", "Len", "Repr", "Cap", "Effective", "Flags", "Gen"}

// stateTable collects one row per observed String state.
type stateTable struct {
	table *tablewriter.Table
}

func newStateTable(w io.Writer) *stateTable {
	table := tablewriter.NewWriter(w)
	table.Header(stateHeader...)
	return &stateTable{table: table}
}

func (t *stateTable) add(step string, s *stringx.String) {
	t.table.Append(
		step,
		truncate(fmt.Sprintf("%q", s), 40),
		strconv.FormatUint(uint64(s.Len()), 10),
		renderRepresentation(s.Representation()),
		strconv.FormatUint(uint64(s.Capacity()), 10),
		strconv.FormatUint(uint64(s.EffectiveCapacity()), 10),
		flagString(s.Flags()),
		strconv.FormatUint(s.Generation(), 10),
	)
}

func (t *stateTable) render() error {
	return t.table.Render()
}

func renderRepresentation(r stringx.Representation) string {
	if r == stringx.Heap {
		return HeapStyle.Render(r.String())
	}
	return InlineStyle.Render(r.String())
}

func flagString(f stringx.Flag) string {
	var parts []string
	if f.Has(stringx.FlagHeap) {
		parts = append(parts, "heap")
	}
	if f.Has(stringx.FlagSticky) {
		parts = append(parts, "sticky")
	}
	if len(parts) == 0 {
		return "-"
	}
	return strings.Join(parts, "|")
}

func truncate(s string, max int) string {
	if len(s) <= max {
		return s
	}
	return s[:max-3] + "..."
}
