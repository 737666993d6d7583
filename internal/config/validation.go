package config

import (
	"fmt"
	"strings"
)

// ValidationError represents a configuration validation error.
type ValidationError struct {
	Field   string
	Message string
}

func (e ValidationError) Error() string {
	return fmt.Sprintf("%s: %s", e.Field, e.Message)
}

// ValidationErrors is a collection of validation errors.
type ValidationErrors []ValidationError

func (e ValidationErrors) Error() string {
	if len(e) == 0 {
		return ""
	}
	var msgs []string
	for _, err := range e {
		msgs = append(msgs, err.Error())
	}
	return fmt.Sprintf("validation failed:\n  - %s", strings.Join(msgs, "\n  - "))
}

// Validate checks the configuration for required fields and valid values.
// It must be called before any computation begins; every error here is
// fatal to the process.
func (c *Config) Validate() error {
	var errors ValidationErrors

	errors = append(errors, c.validateCosmology()...)
	errors = append(errors, c.validateClassification("classification", &c.Classification)...)
	errors = append(errors, c.validateCatalogs()...)
	errors = append(errors, c.validateSweep()...)
	errors = append(errors, c.validateOutput()...)
	errors = append(errors, c.validateLogging()...)

	if len(errors) > 0 {
		return errors
	}
	return nil
}

func (c *Config) validateCosmology() ValidationErrors {
	var errors ValidationErrors

	if c.Cosmology.HubbleConstant <= 0 {
		errors = append(errors, ValidationError{
			Field:   "cosmology.hubble_constant",
			Message: "hubble_constant must be positive",
		})
	}

	if c.Cosmology.MatterDensity <= 0 || c.Cosmology.MatterDensity >= 1 {
		errors = append(errors, ValidationError{
			Field:   "cosmology.matter_density",
			Message: "matter_density must be in (0, 1) for a flat cosmology",
		})
	}

	return errors
}

func (c *Config) validateClassification(prefix string, cls *ClassificationConfig) ValidationErrors {
	var errors ValidationErrors

	if cls.VoidThresholdMpc <= 0 {
		errors = append(errors, ValidationError{
			Field:   prefix + ".void_threshold_mpc",
			Message: "void_threshold_mpc must be positive",
		})
	}

	if cls.RedshiftMin < 0 {
		errors = append(errors, ValidationError{
			Field:   prefix + ".redshift_min",
			Message: "redshift_min cannot be negative",
		})
	}

	if cls.RedshiftMin >= cls.RedshiftMax {
		errors = append(errors, ValidationError{
			Field:   prefix + ".redshift_min",
			Message: "redshift_min must be less than redshift_max",
		})
	}

	if cls.RedshiftMax > 3 {
		errors = append(errors, ValidationError{
			Field:   prefix + ".redshift_max",
			Message: "redshift_max must not exceed 3 (supported inversion range)",
		})
	}

	return errors
}

func (c *Config) validateCatalogs() ValidationErrors {
	var errors ValidationErrors

	if c.Catalogs.MaxSkipFraction < 0 || c.Catalogs.MaxSkipFraction > 1 {
		errors = append(errors, ValidationError{
			Field:   "catalogs.max_skip_fraction",
			Message: "max_skip_fraction must be between 0 and 1",
		})
	}

	return errors
}

func (c *Config) validateSweep() ValidationErrors {
	var errors ValidationErrors

	if len(c.Sweep.Thresholds) == 0 {
		errors = append(errors, ValidationError{
			Field:   "sweep.thresholds",
			Message: "at least one threshold must be defined",
		})
	}
	for i, th := range c.Sweep.Thresholds {
		if th <= 0 {
			errors = append(errors, ValidationError{
				Field:   fmt.Sprintf("sweep.thresholds[%d]", i),
				Message: "threshold must be positive",
			})
		}
	}

	if len(c.Sweep.RedshiftMaxes) == 0 {
		errors = append(errors, ValidationError{
			Field:   "sweep.redshift_maxes",
			Message: "at least one redshift_max must be defined",
		})
	}
	for i, z := range c.Sweep.RedshiftMaxes {
		if z <= c.Classification.RedshiftMin || z > 3 {
			errors = append(errors, ValidationError{
				Field:   fmt.Sprintf("sweep.redshift_maxes[%d]", i),
				Message: "redshift_max must be greater than redshift_min and at most 3",
			})
		}
	}

	if len(c.Sweep.Observables) == 0 {
		errors = append(errors, ValidationError{
			Field:   "sweep.observables",
			Message: "at least one observable must be defined",
		})
	}
	for i, obs := range c.Sweep.Observables {
		if !isKnownObservable(obs) {
			errors = append(errors, ValidationError{
				Field:   fmt.Sprintf("sweep.observables[%d]", i),
				Message: fmt.Sprintf("unknown observable %q (valid: %s)", obs, strings.Join(KnownObservables, ", ")),
			})
		}
	}

	if c.Sweep.MinGroupSize < 2 {
		errors = append(errors, ValidationError{
			Field:   "sweep.min_group_size",
			Message: "min_group_size must be at least 2",
		})
	}

	if c.Sweep.Workers < 1 {
		errors = append(errors, ValidationError{
			Field:   "sweep.workers",
			Message: "workers must be at least 1",
		})
	}

	return errors
}

func (c *Config) validateOutput() ValidationErrors {
	var errors ValidationErrors

	validFormats := map[string]bool{"table": true, "tsv": true, "csv": true, "": true}
	if !validFormats[c.Output.Format] {
		errors = append(errors, ValidationError{
			Field:   "output.format",
			Message: "format must be 'table', 'tsv', or 'csv'",
		})
	}

	return errors
}

func (c *Config) validateLogging() ValidationErrors {
	var errors ValidationErrors

	validLevels := map[string]bool{"debug": true, "info": true, "warn": true, "error": true, "": true}
	if !validLevels[c.Logging.Level] {
		errors = append(errors, ValidationError{
			Field:   "logging.level",
			Message: "level must be 'debug', 'info', 'warn', or 'error'",
		})
	}

	validFormats := map[string]bool{"json": true, "text": true, "": true}
	if !validFormats[c.Logging.Format] {
		errors = append(errors, ValidationError{
			Field:   "logging.format",
			Message: "format must be 'json' or 'text'",
		})
	}

	return errors
}

func isKnownObservable(name string) bool {
	for _, known := range KnownObservables {
		if name == known {
			return true
		}
	}
	return false
}
