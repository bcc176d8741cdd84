package config

import (
	"fmt"
	"strings"

	"github.com/kannan/roxl/internal/rotation"
)

// ValidationError represents a configuration validation error.
type ValidationError struct {
	Field   string
	Message string
}

func (e ValidationError) Error() string {
	return fmt.Sprintf("%s: %s", e.Field, e.Message)
}

// ValidationResult holds the result of configuration validation.
type ValidationResult struct {
	Valid    bool
	Errors   []ValidationError
	Warnings []string
}

// Validate checks the configuration for errors and warnings.
func (c *Config) Validate() *ValidationResult {
	result := &ValidationResult{
		Valid:    true,
		Errors:   []ValidationError{},
		Warnings: []string{},
	}

	if c.Shift < 0 || c.Shift > rotation.ShiftMax {
		result.addError("shift", fmt.Sprintf("shifting speed must be between 0 and %d", rotation.ShiftMax))
	}
	if c.Truncation < 0 || c.Truncation > rotation.TruncationMax {
		result.addError("truncation", fmt.Sprintf("truncation must be between 0 and %d", rotation.TruncationMax))
	}

	if c.Timer.TickMs < 1 {
		result.addError("timer.tick_ms", "tick interval must be at least 1ms")
	}
	if c.Timer.ThresholdMs < 1 {
		result.addError("timer.threshold_ms", "threshold must be at least 1ms")
	} else if c.Timer.ThresholdMs < c.Timer.TickMs {
		result.addWarning("timer.threshold_ms is below timer.tick_ms; every tick will rotate the title")
	}

	if strings.TrimSpace(c.Text) == "" {
		result.addWarning("text is empty; the title stays blank until something is typed")
	}
	if c.Truncation == 0 {
		result.addWarning("truncation is 0; the title is always blank")
	}

	validLevels := map[string]bool{
		"debug": true, "info": true, "warn": true, "warning": true, "error": true,
	}
	if c.Logging.Level != "" && !validLevels[strings.ToLower(c.Logging.Level)] {
		result.addWarning(fmt.Sprintf("unrecognized log level '%s'; consider using: debug, info, warn, error", c.Logging.Level))
	}

	return result
}

// addError adds an error and marks the result as invalid.
func (r *ValidationResult) addError(field, message string) {
	r.Valid = false
	r.Errors = append(r.Errors, ValidationError{Field: field, Message: message})
}

// addWarning adds a warning without invalidating the result.
func (r *ValidationResult) addWarning(message string) {
	r.Warnings = append(r.Warnings, message)
}

// String returns a human-readable validation summary.
func (r *ValidationResult) String() string {
	var sb strings.Builder

	if r.Valid {
		sb.WriteString("Configuration is valid\n")
	} else {
		sb.WriteString("Configuration has errors:\n")
		for _, err := range r.Errors {
			sb.WriteString(fmt.Sprintf("  ✗ %s: %s\n", err.Field, err.Message))
		}
	}

	if len(r.Warnings) > 0 {
		sb.WriteString("Warnings:\n")
		for _, warn := range r.Warnings {
			sb.WriteString(fmt.Sprintf("  ⚠ %s\n", warn))
		}
	}

	return sb.String()
}

// MustValidate validates the config and returns an error if invalid.
func (c *Config) MustValidate() error {
	result := c.Validate()
	if !result.Valid {
		var errMsgs []string
		for _, e := range result.Errors {
			errMsgs = append(errMsgs, e.Error())
		}
		return fmt.Errorf("configuration validation failed: %s", strings.Join(errMsgs, "; "))
	}
	return nil
}
