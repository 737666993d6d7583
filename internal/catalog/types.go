// Package catalog loads and validates tabular astronomical catalogs.
//
// Two catalog kinds are understood: supernova catalogs (Pantheon+-style
// distance/redshift tables) and cosmic-void catalogs (VoidFinder/VIDE-style
// position/radius tables). Column headers are resolved once per file
// through an ordered alias table, so the rest of the pipeline works with
// fixed record structs rather than by-name lookups.
package catalog

// Kind identifies which catalog schema a file is loaded against.
type Kind int

const (
	KindSupernova Kind = iota
	KindVoid
)

func (k Kind) String() string {
	switch k {
	case KindSupernova:
		return "supernova"
	case KindVoid:
		return "void"
	default:
		return "unknown"
	}
}

// Supernova is one validated supernova catalog row. Records are immutable
// after loading.
type Supernova struct {
	ID                 string
	RA                 float64 // degrees
	Dec                float64 // degrees
	Redshift           float64
	DistanceModulus    float64
	DistanceModulusErr float64
}

// Void is one validated void catalog row. RadiusMpc is the effective
// radius after unit conversion from the catalog's h^-1 Mpc values.
type Void struct {
	ID        string
	RA        float64 // degrees
	Dec       float64 // degrees
	Redshift  float64
	RadiusMpc float64
}

// Skip reasons counted in a LoadReport.
const (
	SkipUnparseable     = "unparseable"
	SkipFieldCount      = "wrong_field_count"
	SkipRedshiftRange   = "nonpositive_redshift"
	SkipCoordinateRange = "coordinate_out_of_range"
	SkipNegativeError   = "negative_uncertainty"
	SkipNegativeRadius  = "negative_radius"
)

// LoadReport aggregates diagnostics from a single catalog load. The
// validate command prints it; every excluded row is counted here so no
// data is dropped silently.
type LoadReport struct {
	Path     string
	Kind     Kind
	RowsRead int
	Kept     int
	Skipped  map[string]int

	RedshiftMin float64
	RedshiftMax float64
	RAMin       float64
	RAMax       float64
	DecMin      float64
	DecMax      float64
}

// SkippedTotal returns the total number of skipped rows across reasons.
func (r *LoadReport) SkippedTotal() int {
	total := 0
	for _, n := range r.Skipped {
		total += n
	}
	return total
}

// SkipFraction returns the fraction of read rows that were skipped.
func (r *LoadReport) SkipFraction() float64 {
	if r.RowsRead == 0 {
		return 0
	}
	return float64(r.SkippedTotal()) / float64(r.RowsRead)
}

func (r *LoadReport) observe(ra, dec, z float64) {
	if r.Kept == 0 {
		r.RAMin, r.RAMax = ra, ra
		r.DecMin, r.DecMax = dec, dec
		r.RedshiftMin, r.RedshiftMax = z, z
		return
	}
	if ra < r.RAMin {
		r.RAMin = ra
	}
	if ra > r.RAMax {
		r.RAMax = ra
	}
	if dec < r.DecMin {
		r.DecMin = dec
	}
	if dec > r.DecMax {
		r.DecMax = dec
	}
	if z < r.RedshiftMin {
		r.RedshiftMin = z
	}
	if z > r.RedshiftMax {
		r.RedshiftMax = z
	}
}

func (r *LoadReport) skip(reason string) {
	if r.Skipped == nil {
		r.Skipped = make(map[string]int)
	}
	r.Skipped[reason]++
}
