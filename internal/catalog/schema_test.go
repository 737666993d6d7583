package catalog

import (
	"errors"
	"testing"
)

func TestResolveAliasPrecedence(t *testing.T) {
	// A file carrying both zCMB and z must be read through zCMB: earlier
	// aliases win.
	headers := []string{"CID", "z", "zCMB", "RA", "DEC", "MU_SH0ES", "MU_SH0ES_ERR_DIAG"}
	cols, err := SupernovaSchema().Resolve("test", headers)
	if err != nil {
		t.Fatalf("Resolve returned error: %v", err)
	}
	if cols[ColRedshift] != 2 {
		t.Errorf("redshift resolved to column %d, want 2 (zCMB)", cols[ColRedshift])
	}
}

func TestResolveCaseInsensitive(t *testing.T) {
	headers := []string{"cid", "ZCMB", "Ra", "Dec", "mu_sh0es", "mu_sh0es_err_diag"}
	cols, err := SupernovaSchema().Resolve("test", headers)
	if err != nil {
		t.Fatalf("Resolve returned error: %v", err)
	}
	if len(cols) != 6 {
		t.Errorf("resolved %d columns, want 6", len(cols))
	}
}

func TestResolveMissingColumn(t *testing.T) {
	headers := []string{"void_id", "RA_deg", "Dec_deg", "redshift"}
	_, err := VoidSchema().Resolve("test", headers)
	var formatErr *FormatError
	if !errors.As(err, &formatErr) {
		t.Fatalf("expected FormatError, got %v", err)
	}
	if formatErr.Column != ColRadius {
		t.Errorf("FormatError names %q, want %q", formatErr.Column, ColRadius)
	}
	if formatErr.Kind != KindVoid {
		t.Errorf("FormatError kind = %s, want void", formatErr.Kind)
	}
}

func TestExtendIgnoresUnknownCanonical(t *testing.T) {
	s := VoidSchema()
	s.Extend(map[string][]string{
		ColRadius:    {"R_v"},
		"not_a_real": {"whatever"},
	})
	cols, err := s.Resolve("test", []string{"void_id", "RA_deg", "Dec_deg", "redshift", "R_v"})
	if err != nil {
		t.Fatalf("Resolve returned error: %v", err)
	}
	if _, ok := cols[ColRadius]; !ok {
		t.Error("extended radius alias not resolved")
	}
	for _, col := range s.Columns() {
		if col == "not_a_real" {
			t.Error("unknown canonical column was added to the schema")
		}
	}
}

func TestDetectKind(t *testing.T) {
	snHeaders := []string{"CID", "zCMB", "RA", "DEC", "MU_SH0ES", "MU_SH0ES_ERR_DIAG"}
	kind, err := DetectKind("test", snHeaders, nil)
	if err != nil {
		t.Fatalf("DetectKind(supernova headers): %v", err)
	}
	if kind != KindSupernova {
		t.Errorf("detected %s, want supernova", kind)
	}

	voidHeaders := []string{"void_id", "RA_deg", "Dec_deg", "redshift", "radius_hMpc"}
	kind, err = DetectKind("test", voidHeaders, nil)
	if err != nil {
		t.Fatalf("DetectKind(void headers): %v", err)
	}
	if kind != KindVoid {
		t.Errorf("detected %s, want void", kind)
	}

	if _, err := DetectKind("test", []string{"foo", "bar"}, nil); err == nil {
		t.Error("DetectKind accepted unrecognizable headers")
	}
}

func TestDetectKindWithExtraAliases(t *testing.T) {
	// An ID column only a configured alias can resolve must still be
	// detectable as a supernova catalog.
	headers := []string{"SNID", "zCMB", "RA", "DEC", "MU_SH0ES", "MU_SH0ES_ERR_DIAG"}

	if _, err := DetectKind("test", headers, nil); err == nil {
		t.Fatal("headers should not resolve without the extra alias")
	}

	kind, err := DetectKind("test", headers, map[string][]string{ColID: {"SNID"}})
	if err != nil {
		t.Fatalf("DetectKind with extra alias: %v", err)
	}
	if kind != KindSupernova {
		t.Errorf("detected %s, want supernova", kind)
	}
}
