package report

import (
	"encoding/csv"
	"fmt"
	"io"
	"os"
	"path/filepath"
	"strconv"

	"github.com/vchlab/voidmatch/internal/sweep"
)

// delimitedHeader is the column set of the machine-readable results
// table: one row per observable x parameter combination.
var delimitedHeader = []string{
	"threshold_mpc", "redshift_max", "observable",
	"group_a", "n_a", "mean_a",
	"group_b", "n_b", "mean_b",
	"mean_diff", "t_statistic", "df", "p_value", "cohens_d",
	"significance", "error",
}

// WriteDelimited writes sweep entries as a delimited table. format is
// "tsv" or "csv". An empty path or "-" writes to w. File output goes
// through a temporary file renamed on success, so a failed run never
// leaves a partial results file behind.
func WriteDelimited(w io.Writer, path, format string, entries []sweep.Entry) error {
	if path == "" || path == "-" {
		return writeDelimited(w, format, entries)
	}
	return writeFile(path, func(f io.Writer) error {
		return writeDelimited(f, format, entries)
	})
}

// WriteTable renders the ranked sweep table. An empty path or "-"
// renders to w with terminal colors; file output is plain and uses the
// same temp-file-and-rename protection as the delimited writer.
func WriteTable(w io.Writer, path string, entries []sweep.Entry) error {
	if path == "" || path == "-" {
		SweepTable(entries, true).Render(w)
		return nil
	}
	return writeFile(path, func(f io.Writer) error {
		SweepTable(entries, false).Render(f)
		return nil
	})
}

// writeFile writes through a temporary file renamed on success.
func writeFile(path string, write func(io.Writer) error) error {
	dir := filepath.Dir(path)
	tmp, err := os.CreateTemp(dir, ".voidmatch-results-*")
	if err != nil {
		return fmt.Errorf("failed to create results file: %w", err)
	}
	tmpPath := tmp.Name()

	if err := write(tmp); err != nil {
		tmp.Close()
		os.Remove(tmpPath)
		return err
	}
	if err := tmp.Close(); err != nil {
		os.Remove(tmpPath)
		return fmt.Errorf("failed to write results file: %w", err)
	}
	if err := os.Rename(tmpPath, path); err != nil {
		os.Remove(tmpPath)
		return fmt.Errorf("failed to finalize results file: %w", err)
	}
	return nil
}

func writeDelimited(w io.Writer, format string, entries []sweep.Entry) error {
	cw := csv.NewWriter(w)
	if format != "csv" {
		cw.Comma = '\t'
	}

	if err := cw.Write(delimitedHeader); err != nil {
		return fmt.Errorf("failed to write results header: %w", err)
	}
	for _, e := range entries {
		if err := cw.Write(delimitedRow(e)); err != nil {
			return fmt.Errorf("failed to write results row: %w", err)
		}
	}
	cw.Flush()
	if err := cw.Error(); err != nil {
		return fmt.Errorf("failed to flush results: %w", err)
	}
	return nil
}

func delimitedRow(e sweep.Entry) []string {
	threshold := strconv.FormatFloat(e.ThresholdMpc, 'f', -1, 64)
	zMax := strconv.FormatFloat(e.RedshiftMax, 'f', -1, 64)

	if e.Err != nil {
		return []string{
			threshold, zMax, e.Observable,
			"", "", "", "", "", "",
			"", "", "", "", "",
			"", e.Err.Error(),
		}
	}

	r := e.Result
	return []string{
		threshold, zMax, e.Observable,
		r.GroupA.Name, strconv.Itoa(r.GroupA.N), formatFloat(r.GroupA.Mean),
		r.GroupB.Name, strconv.Itoa(r.GroupB.N), formatFloat(r.GroupB.Mean),
		formatFloat(r.MeanDiff), formatFloat(r.TStatistic), formatFloat(r.DF),
		formatFloat(r.PValue), formatFloat(r.CohensD),
		r.Significance(), "",
	}
}

func formatFloat(v float64) string {
	return strconv.FormatFloat(v, 'g', 8, 64)
}
