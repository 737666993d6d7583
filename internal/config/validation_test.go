package config

import (
	"strings"
	"testing"
)

func TestValidateDefaults(t *testing.T) {
	if err := DefaultConfig().Validate(); err != nil {
		t.Errorf("default config failed validation: %v", err)
	}
}

func TestValidateCollectsAllErrors(t *testing.T) {
	cfg := DefaultConfig()
	cfg.Cosmology.HubbleConstant = -1
	cfg.Cosmology.MatterDensity = 1.5
	cfg.Classification.VoidThresholdMpc = 0
	cfg.Sweep.MinGroupSize = 1

	err := cfg.Validate()
	if err == nil {
		t.Fatal("expected validation errors")
	}
	verrs, ok := err.(ValidationErrors)
	if !ok {
		t.Fatalf("expected ValidationErrors, got %T", err)
	}
	if len(verrs) != 4 {
		t.Errorf("got %d errors, want 4: %v", len(verrs), verrs)
	}

	fields := make(map[string]bool)
	for _, e := range verrs {
		fields[e.Field] = true
	}
	for _, want := range []string{
		"cosmology.hubble_constant",
		"cosmology.matter_density",
		"classification.void_threshold_mpc",
		"sweep.min_group_size",
	} {
		if !fields[want] {
			t.Errorf("missing error for %s", want)
		}
	}
}

func TestValidateRedshiftWindow(t *testing.T) {
	cases := []struct {
		name       string
		zMin, zMax float64
		wantErr    bool
	}{
		{"valid window", 0.01, 0.12, false},
		{"inverted window", 0.12, 0.01, true},
		{"equal bounds", 0.05, 0.05, true},
		{"negative min", -0.01, 0.12, true},
		{"max beyond inversion range", 0.01, 3.5, true},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			cfg := DefaultConfig()
			cfg.Classification.RedshiftMin = tc.zMin
			cfg.Classification.RedshiftMax = tc.zMax
			// keep the sweep grid consistent with the window
			cfg.Sweep.RedshiftMaxes = []float64{tc.zMax}

			err := cfg.Validate()
			if tc.wantErr && err == nil {
				t.Error("expected validation error")
			}
			if !tc.wantErr && err != nil {
				t.Errorf("unexpected validation error: %v", err)
			}
		})
	}
}

func TestValidateSweep(t *testing.T) {
	cfg := DefaultConfig()
	cfg.Sweep.Thresholds = nil
	if err := cfg.Validate(); err == nil || !strings.Contains(err.Error(), "sweep.thresholds") {
		t.Errorf("empty thresholds should fail: %v", err)
	}

	cfg = DefaultConfig()
	cfg.Sweep.Observables = []string{"distance_residual", "made_up"}
	err := cfg.Validate()
	if err == nil || !strings.Contains(err.Error(), "sweep.observables[1]") {
		t.Errorf("unknown observable should fail with its index: %v", err)
	}
	if !strings.Contains(err.Error(), "made_up") {
		t.Errorf("error should name the bad observable: %v", err)
	}

	cfg = DefaultConfig()
	cfg.Sweep.RedshiftMaxes = []float64{0.005} // below classification.redshift_min
	if err := cfg.Validate(); err == nil {
		t.Error("redshift_max below redshift_min should fail")
	}
}

func TestValidateEnums(t *testing.T) {
	cfg := DefaultConfig()
	cfg.Output.Format = "xml"
	if err := cfg.Validate(); err == nil || !strings.Contains(err.Error(), "output.format") {
		t.Errorf("bad output format should fail: %v", err)
	}

	cfg = DefaultConfig()
	cfg.Logging.Level = "verbose"
	if err := cfg.Validate(); err == nil || !strings.Contains(err.Error(), "logging.level") {
		t.Errorf("bad logging level should fail: %v", err)
	}

	cfg = DefaultConfig()
	cfg.Logging.Format = "xml"
	if err := cfg.Validate(); err == nil || !strings.Contains(err.Error(), "logging.format") {
		t.Errorf("bad logging format should fail: %v", err)
	}
}

func TestValidationErrorsMessage(t *testing.T) {
	errs := ValidationErrors{
		{Field: "a.b", Message: "must be positive"},
		{Field: "c.d", Message: "unknown value"},
	}
	msg := errs.Error()
	if !strings.Contains(msg, "a.b: must be positive") || !strings.Contains(msg, "c.d: unknown value") {
		t.Errorf("message missing entries: %q", msg)
	}
}
