package catalog

import (
	"math"
	"strconv"
)

// Options controls catalog loading and row validation.
type Options struct {
	// MaxSkipFraction is the tolerated fraction of skipped rows before
	// the load fails with a RangeError. Zero means no bad row is
	// tolerated.
	MaxSkipFraction float64

	// ExtraAliases widens the schema's column alias table.
	ExtraAliases map[string][]string

	// LittleH is the dimensionless Hubble parameter used to convert void
	// radii from the catalog's h^-1 Mpc units to Mpc. Ignored for
	// supernova catalogs. Zero falls back to 0.674 (Planck 2018).
	LittleH float64
}

func (o Options) littleH() float64 {
	if o.LittleH > 0 {
		return o.LittleH
	}
	return 0.674
}

// LoadSupernovae reads and validates a supernova catalog. Malformed or
// physically implausible rows are skipped and counted in the report; the
// load fails only when the skipped fraction exceeds Options.MaxSkipFraction.
func LoadSupernovae(path string, opts Options) ([]Supernova, *LoadReport, error) {
	tbl, err := readTable(path)
	if err != nil {
		return nil, nil, err
	}

	schema := SupernovaSchema()
	schema.Extend(opts.ExtraAliases)
	cols, err := schema.Resolve(path, tbl.headers)
	if err != nil {
		return nil, nil, err
	}

	report := &LoadReport{Path: path, Kind: KindSupernova}
	var records []Supernova

	for _, row := range tbl.rows {
		report.RowsRead++

		if !rowHasColumns(row, cols) {
			report.skip(SkipFieldCount)
			continue
		}

		ra, okRA := parseFloat(row[cols[ColRA]])
		dec, okDec := parseFloat(row[cols[ColDec]])
		z, okZ := parseFloat(row[cols[ColRedshift]])
		mu, okMu := parseFloat(row[cols[ColModulus]])
		muErr, okErr := parseFloat(row[cols[ColModErr]])
		if !okRA || !okDec || !okZ || !okMu || !okErr {
			report.skip(SkipUnparseable)
			continue
		}

		if z <= 0 {
			report.skip(SkipRedshiftRange)
			continue
		}
		if ra < 0 || ra >= 360 || dec < -90 || dec > 90 {
			report.skip(SkipCoordinateRange)
			continue
		}
		if muErr < 0 {
			report.skip(SkipNegativeError)
			continue
		}

		report.observe(ra, dec, z)
		records = append(records, Supernova{
			ID:                 row[cols[ColID]],
			RA:                 ra,
			Dec:                dec,
			Redshift:           z,
			DistanceModulus:    mu,
			DistanceModulusErr: muErr,
		})
		report.Kept++
	}

	if err := checkSkipFraction(path, report, opts.MaxSkipFraction); err != nil {
		return nil, report, err
	}
	return records, report, nil
}

// LoadVoids reads and validates a void catalog. Radii are converted from
// h^-1 Mpc to Mpc at load time so downstream code never sees catalog
// units.
func LoadVoids(path string, opts Options) ([]Void, *LoadReport, error) {
	tbl, err := readTable(path)
	if err != nil {
		return nil, nil, err
	}

	schema := VoidSchema()
	schema.Extend(opts.ExtraAliases)
	cols, err := schema.Resolve(path, tbl.headers)
	if err != nil {
		return nil, nil, err
	}

	report := &LoadReport{Path: path, Kind: KindVoid}
	var records []Void
	h := opts.littleH()

	for _, row := range tbl.rows {
		report.RowsRead++

		if !rowHasColumns(row, cols) {
			report.skip(SkipFieldCount)
			continue
		}

		ra, okRA := parseFloat(row[cols[ColRA]])
		dec, okDec := parseFloat(row[cols[ColDec]])
		z, okZ := parseFloat(row[cols[ColRedshift]])
		radius, okR := parseFloat(row[cols[ColRadius]])
		if !okRA || !okDec || !okZ || !okR {
			report.skip(SkipUnparseable)
			continue
		}

		if z <= 0 {
			report.skip(SkipRedshiftRange)
			continue
		}
		if ra < 0 || ra >= 360 || dec < -90 || dec > 90 {
			report.skip(SkipCoordinateRange)
			continue
		}
		if radius <= 0 {
			report.skip(SkipNegativeRadius)
			continue
		}

		report.observe(ra, dec, z)
		records = append(records, Void{
			ID:        row[cols[ColID]],
			RA:        ra,
			Dec:       dec,
			Redshift:  z,
			RadiusMpc: radius * h,
		})
		report.Kept++
	}

	if err := checkSkipFraction(path, report, opts.MaxSkipFraction); err != nil {
		return nil, report, err
	}
	return records, report, nil
}

// Inspect loads a catalog of unknown kind for validation reporting. The
// kind is detected from the header row.
func Inspect(path string, opts Options) (*LoadReport, error) {
	tbl, err := readTable(path)
	if err != nil {
		return nil, err
	}
	kind, err := DetectKind(path, tbl.headers, opts.ExtraAliases)
	if err != nil {
		return nil, err
	}

	if kind == KindVoid {
		_, report, err := LoadVoids(path, opts)
		return report, err
	}
	_, report, err := LoadSupernovae(path, opts)
	return report, err
}

func checkSkipFraction(path string, report *LoadReport, maxFraction float64) error {
	if report.RowsRead == 0 {
		return nil
	}
	if report.SkipFraction() > maxFraction {
		return &RangeError{
			Path:        path,
			Skipped:     report.SkippedTotal(),
			RowsRead:    report.RowsRead,
			MaxFraction: maxFraction,
		}
	}
	return nil
}

func rowHasColumns(row []string, cols map[string]int) bool {
	for _, idx := range cols {
		if idx >= len(row) {
			return false
		}
	}
	return true
}

func parseFloat(s string) (float64, bool) {
	v, err := strconv.ParseFloat(s, 64)
	if err != nil || math.IsNaN(v) || math.IsInf(v, 0) {
		return 0, false
	}
	return v, true
}
