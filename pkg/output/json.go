// Package output handles throughput summary output in various formats
package output

import (
	"encoding/json"
	"fmt"
	"time"

	"github.com/decimal_throughput/pkg/config"
	"github.com/decimal_throughput/pkg/stats"
)

// Result represents the JSON output format for a throughput summary
type Result struct {
	Name        string               `json:"name,omitempty"`
	Timestamp   string               `json:"timestamp"`
	Samples     int64                `json:"samples"`
	Mean        RateValue            `json:"mean"`
	StdDev      RateValue            `json:"std_dev"`
	Min         RateValue            `json:"min"`
	Max         RateValue            `json:"max"`
	Percentiles map[string]RateValue `json:"percentiles"`
}

// RateValue pairs a raw bytes-per-second rate with its decimal rendering
type RateValue struct {
	BytesPerSecond float64 `json:"bytes_per_second"`
	Display        string  `json:"display"`
}

// ToResult converts a throughput collector to a Result for structured output
func ToResult(t *stats.Throughput, cfg *config.Config) *Result {
	f := rateFormatter(cfg)
	rateValue := func(rate float64) RateValue {
		return RateValue{BytesPerSecond: rate, Display: f.FormatRate(rate)}
	}

	// Build percentiles map using custom percentiles from config
	percentiles := cfg.Settings.Percentiles
	if len(percentiles) == 0 {
		percentiles = []int{10, 50, 90, 99}
	}

	percentilesMap := make(map[string]RateValue)
	for _, p := range percentiles {
		key := fmt.Sprintf("p%d", p)
		percentilesMap[key] = rateValue(t.Percentile(float64(p)))
	}

	return &Result{
		Name:        cfg.Name,
		Timestamp:   time.Now().UTC().Format(time.RFC3339),
		Samples:     t.Count(),
		Mean:        rateValue(t.Mean()),
		StdDev:      rateValue(t.StdDev()),
		Min:         rateValue(t.Min()),
		Max:         rateValue(t.Max()),
		Percentiles: percentilesMap,
	}
}

// WriteJSON outputs the summary in JSON format
func WriteJSON(t *stats.Throughput, cfg *config.Config) error {
	result := ToResult(t, cfg)

	output, closeFn, err := summaryWriter(cfg)
	if err != nil {
		return err
	}
	defer closeFn()

	encoder := json.NewEncoder(output)
	encoder.SetIndent("", "  ")
	if err := encoder.Encode(result); err != nil {
		return fmt.Errorf("error encoding JSON: %w", err)
	}

	return nil
}
