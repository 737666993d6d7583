package catalog

import (
	"bufio"
	"encoding/csv"
	"os"
	"strings"
)

// table is a parsed text table: one header row plus data rows.
type table struct {
	headers []string
	rows    [][]string
}

// readTable parses a catalog file into rows of string fields. Lines
// beginning with '#' and blank lines are skipped. The first remaining
// line is the header. The delimiter is sniffed from the header line:
// commas mean CSV, anything else is split on whitespace runs.
func readTable(path string) (*table, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, &IOError{Path: path, Err: err}
	}
	defer f.Close()

	var lines []string
	scanner := bufio.NewScanner(f)
	scanner.Buffer(make([]byte, 0, 64*1024), 1024*1024)
	for scanner.Scan() {
		line := strings.TrimSpace(scanner.Text())
		if line == "" || strings.HasPrefix(line, "#") {
			continue
		}
		lines = append(lines, line)
	}
	if err := scanner.Err(); err != nil {
		return nil, &IOError{Path: path, Err: err}
	}
	if len(lines) == 0 {
		return &table{}, nil
	}

	if strings.Contains(lines[0], ",") {
		return parseCSV(path, lines)
	}
	return parseWhitespace(lines), nil
}

func parseCSV(path string, lines []string) (*table, error) {
	r := csv.NewReader(strings.NewReader(strings.Join(lines, "\n")))
	r.TrimLeadingSpace = true
	r.FieldsPerRecord = -1 // row length is validated per record downstream

	records, err := r.ReadAll()
	if err != nil {
		return nil, &IOError{Path: path, Err: err}
	}
	if len(records) == 0 {
		return &table{}, nil
	}
	return &table{headers: trimAll(records[0]), rows: records[1:]}, nil
}

func parseWhitespace(lines []string) *table {
	t := &table{headers: strings.Fields(lines[0])}
	for _, line := range lines[1:] {
		t.rows = append(t.rows, strings.Fields(line))
	}
	return t
}

func trimAll(fields []string) []string {
	out := make([]string, len(fields))
	for i, f := range fields {
		out[i] = strings.TrimSpace(f)
	}
	return out
}
