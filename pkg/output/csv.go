// Package output handles throughput summary output in various formats
package output

import (
	"encoding/csv"
	"fmt"
	"strconv"
	"time"

	"github.com/decimal_throughput/pkg/config"
	"github.com/decimal_throughput/pkg/stats"
)

// WriteCSV outputs the summary in CSV format
func WriteCSV(t *stats.Throughput, cfg *config.Config) error {
	output, closeFn, err := summaryWriter(cfg)
	if err != nil {
		return err
	}
	defer closeFn()

	writer := csv.NewWriter(output)
	defer writer.Flush()

	// Write header
	header := []string{
		"timestamp",
		"name",
		"samples",
		"mean_bytes_per_sec",
		"std_dev_bytes_per_sec",
		"min_bytes_per_sec",
		"max_bytes_per_sec",
	}

	// Add percentile headers
	percentiles := cfg.Settings.Percentiles
	for _, p := range percentiles {
		header = append(header, fmt.Sprintf("p%d_bytes_per_sec", p))
	}

	if err := writer.Write(header); err != nil {
		return fmt.Errorf("error writing CSV header: %w", err)
	}

	formatRate := func(rate float64) string {
		return strconv.FormatFloat(rate, 'f', 2, 64)
	}

	record := []string{
		time.Now().UTC().Format(time.RFC3339),
		cfg.Name,
		strconv.FormatInt(t.Count(), 10),
		formatRate(t.Mean()),
		formatRate(t.StdDev()),
		formatRate(t.Min()),
		formatRate(t.Max()),
	}

	for _, p := range percentiles {
		record = append(record, formatRate(t.Percentile(float64(p))))
	}

	if err := writer.Write(record); err != nil {
		return fmt.Errorf("error writing CSV record: %w", err)
	}

	return nil
}
