// Package main is the entry point for the decimal-throughput tool
package main

import (
	"flag"
	"fmt"
	"os"
	"path/filepath"

	"github.com/decimal_throughput/pkg/config"
	"github.com/decimal_throughput/pkg/output"
	"github.com/decimal_throughput/pkg/rewrite"
	"github.com/decimal_throughput/pkg/stats"
	"github.com/decimal_throughput/pkg/throughput"
)

const version = "1.0.0"

func main() {
	// Parse command line flags
	flags := parseFlags()

	// Handle version and help flags
	if handleSpecialFlags(flags) {
		return
	}

	// Validate flags
	if err := validateFlags(flags); err != nil {
		exitWithError("%v", err)
	}

	// Load or create configuration
	cfg, err := loadConfiguration(flags)
	if err != nil {
		exitWithError("%v", err)
	}

	if flags.VerboseMode {
		printConfiguration(cfg, flags)
	}

	formatter := throughput.New(throughput.WithPrecision(cfg.Settings.Precision))
	rewriter := rewrite.New(formatter)

	collector := stats.NewThroughput()
	if cfg.Settings.Summary {
		rewriter.SetCollector(collector)
	}

	// Criterion report directories are formatted directly; otherwise the
	// report stream is rewritten line by line.
	if flag.NArg() > 0 {
		if err := convertCriterionReports(rewriter, flag.Args()); err != nil {
			exitWithError("%v", err)
		}
	} else {
		if err := processStream(rewriter, flags.Input); err != nil {
			exitWithError("%v", err)
		}
	}

	if cfg.Settings.Summary {
		writeSummary(collector, cfg, flags.QuietMode)
	}

	// Evaluate thresholds for CI gating
	if cfg.Thresholds.HasThresholds() {
		results, err := stats.EvaluateThresholds(collector, &cfg.Thresholds)
		if err != nil {
			exitWithError("%v", err)
		}
		if !flags.QuietMode {
			fmt.Print(results.FormatResults())
		}
		if !results.Passed {
			os.Exit(1)
		}
	}
}

// processStream rewrites the report stream from the input file or stdin to stdout
func processStream(rewriter *rewrite.Rewriter, input string) error {
	in := os.Stdin
	if input != "" {
		file, err := os.Open(input)
		if err != nil {
			return fmt.Errorf("failed to open input file: %w", err)
		}
		defer file.Close()
		in = file
	}

	return rewriter.Process(in, os.Stdout)
}

// convertCriterionReports formats the throughput estimates of criterion
// report directories (each holding benchmark.json and estimates.json)
func convertCriterionReports(rewriter *rewrite.Rewriter, dirs []string) error {
	for _, dir := range dirs {
		benchmark, err := os.ReadFile(filepath.Join(dir, "benchmark.json"))
		if err != nil {
			return fmt.Errorf("failed to read benchmark file: %w", err)
		}
		estimates, err := os.ReadFile(filepath.Join(dir, "estimates.json"))
		if err != nil {
			return fmt.Errorf("failed to read estimates file: %w", err)
		}

		est, err := rewriter.ConvertEstimates(benchmark, estimates)
		if err != nil {
			return err
		}
		fmt.Printf("%-40s thrpt: %s (median %s)\n", est.ID, est.Mean, est.Median)
	}
	return nil
}

// writeSummary writes the rate summary in the configured format
func writeSummary(collector *stats.Throughput, cfg *config.Config, quietMode bool) {
	switch cfg.Output.Format {
	case "json":
		if err := output.WriteJSON(collector, cfg); err != nil {
			exitWithError("%v", err)
		}
	case "csv":
		if err := output.WriteCSV(collector, cfg); err != nil {
			exitWithError("%v", err)
		}
	case "html":
		if err := output.WriteHTML(collector, cfg); err != nil {
			exitWithError("%v", err)
		}
	default:
		if quietMode {
			output.WriteConsoleQuiet(collector, cfg)
		} else {
			output.WriteConsole(collector, cfg)
		}
	}
}
