package catalog

import (
	"strings"

	"github.com/elliotchance/orderedmap/v2"
)

// Canonical column names. Each catalog kind requires all of its columns;
// files name them differently, so every canonical column carries an
// ordered candidate list and the first header match wins.
const (
	ColID       = "identifier"
	ColRA       = "ra"
	ColDec      = "dec"
	ColRedshift = "redshift"
	ColModulus  = "distance_modulus"
	ColModErr   = "distance_modulus_error"
	ColRadius   = "radius"
)

// Schema maps canonical columns to the ordered header aliases accepted
// for a catalog kind. Alias order is precedence order: when a file
// carries both "zCMB" and "z" headers, the earlier alias decides which
// column is read.
type Schema struct {
	kind    Kind
	aliases *orderedmap.OrderedMap[string, []string]
}

// SupernovaSchema returns the default schema for supernova catalogs,
// covering the Pantheon+ release headers and common plain-text variants.
func SupernovaSchema() *Schema {
	s := &Schema{kind: KindSupernova, aliases: orderedmap.NewOrderedMap[string, []string]()}
	s.aliases.Set(ColID, []string{"CID", "ID", "id", "name", "sn_id"})
	s.aliases.Set(ColRA, []string{"RA", "ra", "RA_deg", "RAdeg"})
	s.aliases.Set(ColDec, []string{"DEC", "Dec", "dec", "DEC_deg", "DEdeg"})
	s.aliases.Set(ColRedshift, []string{"zCMB", "zcmb", "z", "redshift", "zHD"})
	s.aliases.Set(ColModulus, []string{"MU_SH0ES", "mu", "MU", "distance_modulus", "m_b_corr"})
	s.aliases.Set(ColModErr, []string{"MU_SH0ES_ERR_DIAG", "mu_err", "MU_ERR", "distance_modulus_error", "dmu"})
	return s
}

// VoidSchema returns the default schema for void catalogs, covering the
// VoidFinder maximal-sphere table headers (Douglass et al. 2023) and
// common variants.
func VoidSchema() *Schema {
	s := &Schema{kind: KindVoid, aliases: orderedmap.NewOrderedMap[string, []string]()}
	s.aliases.Set(ColID, []string{"void_id", "ID", "id", "name"})
	s.aliases.Set(ColRA, []string{"RA_deg", "RAdeg", "RA", "ra"})
	s.aliases.Set(ColDec, []string{"Dec_deg", "DEdeg", "DEC", "Dec", "dec"})
	s.aliases.Set(ColRedshift, []string{"redshift", "z", "zobs"})
	s.aliases.Set(ColRadius, []string{"radius_hMpc", "Reff_hMpc", "radius", "Reff", "Rad"})
	return s
}

// SchemaFor returns the default schema for a catalog kind.
func SchemaFor(kind Kind) *Schema {
	if kind == KindVoid {
		return VoidSchema()
	}
	return SupernovaSchema()
}

// Kind returns the catalog kind this schema describes.
func (s *Schema) Kind() Kind { return s.kind }

// Extend appends user-configured aliases after the built-in ones, so
// defaults keep precedence and configuration only widens acceptance.
func (s *Schema) Extend(extra map[string][]string) {
	for canonical, names := range extra {
		existing, ok := s.aliases.Get(canonical)
		if !ok {
			continue // unknown canonical columns are ignored
		}
		s.aliases.Set(canonical, append(existing, names...))
	}
}

// Columns returns the canonical column names in schema order.
func (s *Schema) Columns() []string {
	return s.aliases.Keys()
}

// Resolve maps the canonical columns onto header positions. Matching is
// case-insensitive. The returned map is complete: a single unresolvable
// column fails the whole resolution.
func (s *Schema) Resolve(path string, headers []string) (map[string]int, error) {
	index := make(map[string]int, len(headers))
	for i, h := range headers {
		key := strings.ToLower(strings.TrimSpace(h))
		if _, taken := index[key]; !taken {
			index[key] = i
		}
	}

	resolved := make(map[string]int, s.aliases.Len())
	for el := s.aliases.Front(); el != nil; el = el.Next() {
		found := false
		for _, alias := range el.Value {
			if pos, ok := index[strings.ToLower(alias)]; ok {
				resolved[el.Key] = pos
				found = true
				break
			}
		}
		if !found {
			return nil, &FormatError{
				Path:    path,
				Kind:    s.kind,
				Column:  el.Key,
				Headers: headers,
			}
		}
	}
	return resolved, nil
}

// DetectKind resolves headers against both schemas, widened by the
// extra aliases, and reports which catalog kind the file looks like.
// Supernova wins ties because its schema is the stricter one (six
// required columns against five).
func DetectKind(path string, headers []string, extra map[string][]string) (Kind, error) {
	snSchema := SupernovaSchema()
	snSchema.Extend(extra)
	if _, err := snSchema.Resolve(path, headers); err == nil {
		return KindSupernova, nil
	}
	voidSchema := VoidSchema()
	voidSchema.Extend(extra)
	if _, err := voidSchema.Resolve(path, headers); err == nil {
		return KindVoid, nil
	}
	// Report the supernova resolution failure; it names the first
	// missing column and the available headers.
	_, err := snSchema.Resolve(path, headers)
	return KindSupernova, err
}
