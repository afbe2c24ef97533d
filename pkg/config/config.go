// Package config handles JSON configuration loading and parsing
package config

import (
	"encoding/json"
	"fmt"
	"os"
	"strconv"
	"strings"

	"github.com/decimal_throughput/pkg/throughput"
)

// Config represents the root JSON configuration
type Config struct {
	Schema      string          `json:"$schema,omitempty"`
	Name        string          `json:"name,omitempty"`
	Description string          `json:"description,omitempty"`
	Settings    Settings        `json:"settings,omitempty"`
	Output      OutputConfig    `json:"output,omitempty"`
	Thresholds  ThresholdConfig `json:"thresholds,omitempty"`
}

// Settings contains global formatting settings
type Settings struct {
	Precision     int   `json:"precision,omitempty"`     // Significant digits in rendered rates
	Percentiles   []int `json:"percentiles,omitempty"`   // Percentiles to report in summaries
	ShowHistogram bool  `json:"showHistogram,omitempty"` // Show ASCII rate histogram in summary
	Summary       bool  `json:"summary,omitempty"`       // Emit a summary of converted rates
}

// OutputConfig defines summary output settings
type OutputConfig struct {
	Format string `json:"format,omitempty"` // console, json, csv or html
	File   string `json:"file,omitempty"`   // Summary destination (default: stdout)
}

// ThresholdConfig defines pass/fail criteria for CI/CD integration.
// Rates are human-readable throughput strings (e.g. "100MB/s", "1.5 GB/s").
type ThresholdConfig struct {
	MinMeanRate string `json:"minMeanRate,omitempty"` // Minimum mean throughput
	MaxMeanRate string `json:"maxMeanRate,omitempty"` // Maximum mean throughput (regression canaries)
	MinP10Rate  string `json:"minP10Rate,omitempty"`  // Minimum P10 throughput (slow tail)
	MinP50Rate  string `json:"minP50Rate,omitempty"`  // Minimum median throughput
	MinP90Rate  string `json:"minP90Rate,omitempty"`  // Minimum P90 throughput
}

// HasThresholds returns true if any thresholds are defined
func (t *ThresholdConfig) HasThresholds() bool {
	return t.MinMeanRate != "" ||
		t.MaxMeanRate != "" ||
		t.MinP10Rate != "" ||
		t.MinP50Rate != "" ||
		t.MinP90Rate != ""
}

// ParseRate parses a threshold rate string and returns bytes per second
func ParseRate(rateStr string) (float64, error) {
	if rateStr == "" {
		return 0, nil
	}
	rate, err := throughput.ParseRate(rateStr)
	if err != nil {
		return 0, fmt.Errorf("invalid rate format: %w", err)
	}
	return rate, nil
}

// IntSliceFlag is a custom flag type for handling multiple integers (percentiles)
type IntSliceFlag []int

func (i *IntSliceFlag) String() string {
	return fmt.Sprintf("%v", *i)
}

func (i *IntSliceFlag) Set(value string) error {
	// Parse comma-separated values
	parts := strings.Split(value, ",")
	for _, p := range parts {
		p = strings.TrimSpace(p)
		if p == "" {
			continue
		}
		val, err := strconv.Atoi(p)
		if err != nil {
			return fmt.Errorf("invalid percentile value: %s", p)
		}
		if val < 0 || val > 100 {
			return fmt.Errorf("percentile must be between 0 and 100: %d", val)
		}
		*i = append(*i, val)
	}
	return nil
}

// Load loads configuration from a JSON file
func Load(filename string) (*Config, error) {
	data, err := os.ReadFile(filename)
	if err != nil {
		return nil, fmt.Errorf("failed to read config file: %w", err)
	}

	var config Config
	if err := json.Unmarshal(data, &config); err != nil {
		return nil, fmt.Errorf("failed to parse config file: %w", err)
	}

	// Set defaults
	config.SetDefaults()

	return &config, nil
}

// SetDefaults sets default values for the configuration
func (c *Config) SetDefaults() {
	if c.Settings.Precision == 0 {
		c.Settings.Precision = throughput.DefaultPrecision
	}

	// Set default percentiles if not specified
	if len(c.Settings.Percentiles) == 0 {
		c.Settings.Percentiles = []int{10, 50, 90, 99}
	}

	// Thresholds imply a summary: there is nothing to evaluate otherwise
	if c.Thresholds.HasThresholds() {
		c.Settings.Summary = true
	}
}

// NewFromCLI creates a Config from command-line arguments
func NewFromCLI(precision int, percentiles []int, showHistogram, summary bool,
	outputFormat, outputFile string) *Config {

	config := &Config{
		Settings: Settings{
			Precision:     precision,
			Percentiles:   percentiles,
			ShowHistogram: showHistogram,
			Summary:       summary,
		},
		Output: OutputConfig{
			Format: outputFormat,
			File:   outputFile,
		},
	}

	config.SetDefaults()

	return config
}
