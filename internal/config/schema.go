// Package config provides YAML configuration loading and validation for roxl.
package config

import (
	"time"

	"github.com/kannan/roxl/internal/rotation"
)

// Config represents the main configuration structure for roxl.
type Config struct {
	// Text is the initial content of the input box.
	Text       string  `yaml:"text"`
	Shift      int     `yaml:"shift"`
	Truncation int     `yaml:"truncation"`
	Timer      Timer   `yaml:"timer"`
	Logging    Logging `yaml:"logging"`
}

// Timer defines the rotation timer.
type Timer struct {
	TickMs      int `yaml:"tick_ms"`
	ThresholdMs int `yaml:"threshold_ms"`
}

// Logging defines logging configuration.
type Logging struct {
	Path  string `yaml:"path"`
	Level string `yaml:"level"`
}

// DefaultConfig returns a configuration with sensible defaults.
func DefaultConfig() *Config {
	return &Config{
		Text:       "Window Title",
		Shift:      0,
		Truncation: rotation.TruncationMax,
		Timer: Timer{
			TickMs:      int(rotation.TickGranularity / time.Millisecond),
			ThresholdMs: int(rotation.Threshold / time.Millisecond),
		},
		Logging: Logging{
			Path:  "",
			Level: "info",
		},
	}
}

// Granularity returns the timer interval.
func (t Timer) Granularity() time.Duration {
	return time.Duration(t.TickMs) * time.Millisecond
}

// Threshold returns the tick accumulator limit.
func (t Timer) Threshold() time.Duration {
	return time.Duration(t.ThresholdMs) * time.Millisecond
}
