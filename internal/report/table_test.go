package report

import (
	"errors"
	"strings"
	"testing"

	"github.com/vchlab/voidmatch/internal/stats"
	"github.com/vchlab/voidmatch/internal/sweep"
)

func testEntries() []sweep.Entry {
	return []sweep.Entry{
		{
			Combination: sweep.Combination{ThresholdMpc: 15, RedshiftMax: 0.12},
			Observable:  "distance_residual",
			Result: &stats.TestResult{
				GroupA:     stats.GroupStats{Name: "void", N: 12, Mean: -0.0412},
				GroupB:     stats.GroupStats{Name: "cluster", N: 48, Mean: 0.0033},
				MeanDiff:   -0.0445,
				TStatistic: -2.21,
				DF:         17.3,
				PValue:     0.0407,
				CohensD:    -0.71,
			},
		},
		{
			Combination: sweep.Combination{ThresholdMpc: 25, RedshiftMax: 0.10},
			Observable:  "distance_residual",
			Err:         errors.New("no voids in the analysis redshift range"),
		},
	}
}

func TestTableRenderAlignment(t *testing.T) {
	tbl := NewTable("name", "value")
	tbl.AddRow("short", "1")
	tbl.AddRow("a-much-longer-name", "22")

	var buf strings.Builder
	tbl.Render(&buf)
	lines := strings.Split(strings.TrimRight(buf.String(), "\n"), "\n")

	if len(lines) != 4 {
		t.Fatalf("got %d lines, want 4 (header, rule, two rows)", len(lines))
	}
	// Every value cell must start at the same column.
	col := strings.Index(lines[0], "value")
	if col <= 0 {
		t.Fatalf("header line malformed: %q", lines[0])
	}
	if lines[2][col:col+1] != "1" {
		t.Errorf("row 1 misaligned: %q", lines[2])
	}
	if lines[3][col:col+2] != "22" {
		t.Errorf("row 2 misaligned: %q", lines[3])
	}
	if !strings.HasPrefix(lines[1], "----") {
		t.Errorf("rule line malformed: %q", lines[1])
	}
}

func TestTableShortRowsPadded(t *testing.T) {
	tbl := NewTable("a", "b", "c")
	tbl.AddRow("only")

	var buf strings.Builder
	tbl.Render(&buf)
	if !strings.Contains(buf.String(), "only") {
		t.Errorf("short row dropped: %q", buf.String())
	}
}

func TestSweepTable(t *testing.T) {
	tbl := SweepTable(testEntries(), false)

	var buf strings.Builder
	tbl.Render(&buf)
	out := buf.String()

	for _, want := range []string{
		"rank", "threshold_mpc", "p_value",
		"15.0", "0.12", "distance_residual",
		"0.040700", "*",
		"no voids in the analysis redshift range",
	} {
		if !strings.Contains(out, want) {
			t.Errorf("table output missing %q:\n%s", want, out)
		}
	}
	// The failed combination renders placeholders, not stale numbers.
	lines := strings.Split(out, "\n")
	var errLine string
	for _, line := range lines {
		if strings.Contains(line, "no voids") {
			errLine = line
		}
	}
	if errLine == "" {
		t.Fatal("failed entry not rendered")
	}
	if !strings.Contains(errLine, "-") {
		t.Errorf("failed entry should carry placeholder cells: %q", errLine)
	}
}

func TestSweepTableColored(t *testing.T) {
	entries := testEntries()[:1]
	plain := SweepTable(entries, false)
	colored := SweepTable(entries, true)

	var plainBuf, coloredBuf strings.Builder
	plain.Render(&plainBuf)
	colored.Render(&coloredBuf)

	// Color codes must not break column alignment: both variants place
	// the note column header at the same offset.
	plainLines := strings.Split(plainBuf.String(), "\n")
	coloredLines := strings.Split(coloredBuf.String(), "\n")
	if plainLines[0] != coloredLines[0] {
		t.Errorf("headers differ between plain and colored output")
	}
}

func TestSweepTableDegenerateNote(t *testing.T) {
	entries := []sweep.Entry{{
		Combination: sweep.Combination{ThresholdMpc: 10, RedshiftMax: 0.10},
		Observable:  "raw_redshift",
		Result: &stats.TestResult{
			GroupA:     stats.GroupStats{Name: "void", N: 3, Mean: 0.05},
			GroupB:     stats.GroupStats{Name: "cluster", N: 3, Mean: 0.05},
			PValue:     1.0,
			Degenerate: true,
		},
	}}

	var buf strings.Builder
	SweepTable(entries, false).Render(&buf)
	if !strings.Contains(buf.String(), "degenerate input") {
		t.Errorf("degenerate result not flagged:\n%s", buf.String())
	}
}
