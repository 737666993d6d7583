// Package report renders analysis results as aligned terminal tables and
// delimited text files.
package report

import (
	"fmt"
	"io"
	"strings"

	"github.com/gookit/color"
	"github.com/mattn/go-runewidth"

	"github.com/vchlab/voidmatch/internal/sweep"
)

// Table is a width-aligned plain-text table.
type Table struct {
	headers []string
	rows    [][]string
}

// NewTable creates a table with the given column headers.
func NewTable(headers ...string) *Table {
	return &Table{headers: headers}
}

// AddRow appends one row. Short rows are padded with empty cells.
func (t *Table) AddRow(cells ...string) {
	row := make([]string, len(t.headers))
	copy(row, cells)
	t.rows = append(t.rows, row)
}

// Render writes the table. Column widths are computed with runewidth so
// colored cells and non-ASCII content stay aligned.
func (t *Table) Render(w io.Writer) {
	widths := make([]int, len(t.headers))
	for i, h := range t.headers {
		widths[i] = cellWidth(h)
	}
	for _, row := range t.rows {
		for i, cell := range row {
			if cw := cellWidth(cell); cw > widths[i] {
				widths[i] = cw
			}
		}
	}

	writeRow := func(cells []string) {
		parts := make([]string, len(cells))
		for i, cell := range cells {
			parts[i] = pad(cell, widths[i])
		}
		fmt.Fprintln(w, strings.TrimRight(strings.Join(parts, "  "), " "))
	}

	writeRow(t.headers)
	rule := make([]string, len(t.headers))
	for i, width := range widths {
		rule[i] = strings.Repeat("-", width)
	}
	writeRow(rule)
	for _, row := range t.rows {
		writeRow(row)
	}
}

// cellWidth measures display width, ignoring ANSI color sequences.
func cellWidth(s string) int {
	return runewidth.StringWidth(color.ClearCode(s))
}

func pad(s string, width int) string {
	gap := width - cellWidth(s)
	if gap <= 0 {
		return s
	}
	return s + strings.Repeat(" ", gap)
}

// SweepTable builds the ranked sweep results table. When colored is true
// significance markers are highlighted for terminals.
func SweepTable(entries []sweep.Entry, colored bool) *Table {
	t := NewTable(
		"rank", "threshold_mpc", "z_max", "observable",
		"n_a", "mean_a", "n_b", "mean_b",
		"t", "p_value", "cohens_d", "sig", "note",
	)

	for i, e := range entries {
		rank := fmt.Sprintf("%d", i+1)
		threshold := fmt.Sprintf("%.1f", e.ThresholdMpc)
		zMax := fmt.Sprintf("%.2f", e.RedshiftMax)

		if e.Err != nil {
			t.AddRow(rank, threshold, zMax, e.Observable,
				"-", "-", "-", "-", "-", "-", "-", "-", e.Err.Error())
			continue
		}

		r := e.Result
		sig := r.Significance()
		if colored {
			sig = colorSignificance(sig)
		}
		note := ""
		if r.Degenerate {
			note = "degenerate input"
		}
		t.AddRow(rank, threshold, zMax, e.Observable,
			fmt.Sprintf("%d", r.GroupA.N),
			fmt.Sprintf("%.4f", r.GroupA.Mean),
			fmt.Sprintf("%d", r.GroupB.N),
			fmt.Sprintf("%.4f", r.GroupB.Mean),
			fmt.Sprintf("%.3f", r.TStatistic),
			fmt.Sprintf("%.6f", r.PValue),
			fmt.Sprintf("%.3f", r.CohensD),
			sig, note)
	}
	return t
}

func colorSignificance(sig string) string {
	if sig == "ns" {
		return color.Gray.Sprint(sig)
	}
	return color.Green.Sprint(sig)
}
