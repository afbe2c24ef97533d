// Package output handles throughput summary output in various formats
package output

import (
	"fmt"

	"github.com/decimal_throughput/pkg/config"
	"github.com/decimal_throughput/pkg/stats"
)

// WriteConsole outputs a throughput summary to console
func WriteConsole(t *stats.Throughput, cfg *config.Config) {
	f := rateFormatter(cfg)

	fmt.Println("\nThroughput            Mean      Stdev        Max")
	fmt.Printf("  Rate        %10s   %8s   %9s\n",
		f.FormatRate(t.Mean()),
		f.FormatRate(t.StdDev()),
		f.FormatRate(t.Max()))

	fmt.Printf("  Samples: %d, Min: %s\n", t.Count(), f.FormatRate(t.Min()))

	// Use custom percentiles from config
	percentiles := cfg.Settings.Percentiles
	if len(percentiles) == 0 {
		percentiles = []int{10, 50, 90, 99}
	}

	fmt.Println("  Rate Distribution")
	for _, p := range percentiles {
		fmt.Printf("     %d%%    %s\n", p, f.FormatRate(t.Percentile(float64(p))))
	}

	if cfg.Settings.ShowHistogram {
		fmt.Print(stats.RenderASCIIHistogram(t.Buckets(), 40))
	}
}

// WriteConsoleQuiet outputs a minimal summary to console (quiet mode)
func WriteConsoleQuiet(t *stats.Throughput, cfg *config.Config) {
	f := rateFormatter(cfg)
	fmt.Printf("Samples: %d, Mean: %s, Min: %s, Max: %s\n",
		t.Count(),
		f.FormatRate(t.Mean()),
		f.FormatRate(t.Min()),
		f.FormatRate(t.Max()))
}
