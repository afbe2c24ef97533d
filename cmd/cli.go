// Package main is the entry point for the decimal-throughput tool
package main

import (
	"flag"
	"fmt"
	"os"

	"github.com/decimal_throughput/pkg/config"
	"github.com/decimal_throughput/pkg/throughput"
)

// CLIFlags holds all command line flags
type CLIFlags struct {
	Input        string
	ConfigFile   string
	OutputFormat string
	OutputFile   string
	Precision    int
	Percentiles  config.IntSliceFlag
	Histogram    bool
	Summary      bool
	QuietMode    bool
	VerboseMode  bool
	ShowHelp     bool
	ShowVersion  bool
}

// parseFlags parses command line arguments and returns CLIFlags
func parseFlags() *CLIFlags {
	flags := &CLIFlags{}

	flag.StringVar(&flags.Input, "input", "", "Report file to convert (default: stdin)")
	flag.StringVar(&flags.Input, "i", "", "Report file to convert (shorthand)")

	flag.StringVar(&flags.ConfigFile, "config", "", "Path to JSON configuration file")

	flag.StringVar(&flags.OutputFormat, "output", "", "Summary format: json, csv, html, or empty for console")
	flag.StringVar(&flags.OutputFormat, "o", "", "Summary format (shorthand)")

	flag.StringVar(&flags.OutputFile, "output-file", "", "Summary file path (default: stdout)")

	flag.IntVar(&flags.Precision, "precision", throughput.DefaultPrecision, "Significant digits in converted rates")

	flag.Var(&flags.Percentiles, "percentiles", "Summary percentiles (comma-separated, e.g., '10,50,90,99')")
	flag.Var(&flags.Percentiles, "p", "Summary percentiles (shorthand)")

	flag.BoolVar(&flags.Histogram, "histogram", false, "Show ASCII rate histogram in the summary")

	flag.BoolVar(&flags.Summary, "summary", false, "Summarize converted rates after the stream")
	flag.BoolVar(&flags.Summary, "s", false, "Summarize converted rates (shorthand)")

	flag.BoolVar(&flags.QuietMode, "quiet", false, "Quiet mode - minimal summary output")
	flag.BoolVar(&flags.QuietMode, "q", false, "Quiet mode (shorthand)")

	flag.BoolVar(&flags.VerboseMode, "verbose", false, "Verbose mode - print the active configuration")
	flag.BoolVar(&flags.VerboseMode, "V", false, "Verbose mode (shorthand)")

	flag.BoolVar(&flags.ShowHelp, "help", false, "Display help message")
	flag.BoolVar(&flags.ShowHelp, "h", false, "Display help message (shorthand)")

	flag.BoolVar(&flags.ShowVersion, "version", false, "Display version")
	flag.BoolVar(&flags.ShowVersion, "v", false, "Display version (shorthand)")

	flag.Parse()

	return flags
}

// validateFlags validates the parsed flags and returns any errors
func validateFlags(flags *CLIFlags) error {
	// Verbose and quiet are mutually exclusive
	if flags.VerboseMode && flags.QuietMode {
		return fmt.Errorf("--verbose and --quiet cannot be used together")
	}

	if flags.Precision < 1 || flags.Precision > 10 {
		return fmt.Errorf("--precision must be between 1 and 10")
	}

	switch flags.OutputFormat {
	case "", "json", "csv", "html":
	default:
		return fmt.Errorf("unknown output format %q", flags.OutputFormat)
	}

	return nil
}

// loadConfiguration loads or creates configuration from flags
func loadConfiguration(flags *CLIFlags) (*config.Config, error) {
	var cfg *config.Config
	var err error

	if flags.ConfigFile != "" {
		cfg, err = config.Load(flags.ConfigFile)
		if err != nil {
			return nil, err
		}
		applyConfigOverrides(cfg, flags)
	} else {
		cfg = config.NewFromCLI(
			flags.Precision, flags.Percentiles, flags.Histogram, flags.Summary,
			flags.OutputFormat, flags.OutputFile,
		)
	}

	return cfg, nil
}

// applyConfigOverrides applies CLI flag overrides to config loaded from file
func applyConfigOverrides(cfg *config.Config, flags *CLIFlags) {
	if flags.Precision != throughput.DefaultPrecision {
		cfg.Settings.Precision = flags.Precision
	}
	if len(flags.Percentiles) > 0 {
		cfg.Settings.Percentiles = flags.Percentiles
	}
	if flags.Histogram {
		cfg.Settings.ShowHistogram = true
	}
	if flags.Summary {
		cfg.Settings.Summary = true
	}
	if flags.OutputFormat != "" {
		cfg.Output.Format = flags.OutputFormat
	}
	if flags.OutputFile != "" {
		cfg.Output.File = flags.OutputFile
	}
}

// printConfiguration prints the active configuration to console
func printConfiguration(cfg *config.Config, flags *CLIFlags) {
	if cfg.Name != "" {
		fmt.Fprintf(os.Stderr, "Report: %s\n", cfg.Name)
	}
	if flags.Input != "" {
		fmt.Fprintf(os.Stderr, "Input: %s\n", flags.Input)
	} else {
		fmt.Fprintln(os.Stderr, "Input: stdin")
	}
	fmt.Fprintf(os.Stderr, "Precision: %d significant digits\n", cfg.Settings.Precision)
	if cfg.Settings.Summary {
		fmt.Fprintf(os.Stderr, "Percentiles: %v\n", cfg.Settings.Percentiles)
	}
	if cfg.Thresholds.HasThresholds() {
		fmt.Fprintln(os.Stderr, "Thresholds: enabled")
	}
	fmt.Fprintln(os.Stderr)
}

// displayHelp shows command-line help information
func displayHelp() {
	fmt.Println("decimal-throughput - benchmark throughput in decimal byte multiples")
	fmt.Println("Usage: decimal-throughput [options] [criterion-dir ...]")
	fmt.Println()
	fmt.Println("Rewrites binary byte-multiple throughput figures (KiB/s, MiB/s, ...) in a")
	fmt.Println("benchmark report stream to decimal multiples (KB/s, MB/s, ...). With")
	fmt.Println("criterion report directories as arguments, formats their throughput")
	fmt.Println("estimates instead.")
	fmt.Println()
	fmt.Println("Options:")
	fmt.Println("  -i, --input <file>          Report file to convert (default: stdin)")
	fmt.Println("  --config <file>             JSON configuration file")
	fmt.Println("  -o, --output <format>       Summary format: json, csv, html (default: console)")
	fmt.Println("  --output-file <file>        Summary file path (default: stdout)")
	fmt.Println("  --precision <digits>        Significant digits in converted rates (default: 4)")
	fmt.Println("  -p, --percentiles <list>    Summary percentiles (e.g., '10,50,90,99')")
	fmt.Println("  --histogram                 Show ASCII rate histogram in the summary")
	fmt.Println("  -s, --summary               Summarize converted rates after the stream")
	fmt.Println("  -q, --quiet                 Quiet mode - minimal summary output")
	fmt.Println("  -V, --verbose               Verbose mode - print the active configuration")
	fmt.Println("  -h, --help                  Display this help message")
	fmt.Println()
	fmt.Println("Examples:")
	fmt.Println("  cargo bench | decimal-throughput")
	fmt.Println("  decimal-throughput -i bench.log -s --histogram")
	fmt.Println("  decimal-throughput -s -o json --output-file summary.json < bench.log")
	fmt.Println("  decimal-throughput target/criterion/example_name/base")
}

// handleSpecialFlags handles version and help flags
func handleSpecialFlags(flags *CLIFlags) bool {
	if flags.ShowVersion {
		fmt.Printf("decimal-throughput version %s\n", version)
		return true
	}

	if flags.ShowHelp {
		displayHelp()
		return true
	}

	return false
}

// exitWithError prints an error message and exits
func exitWithError(format string, args ...interface{}) {
	fmt.Fprintf(os.Stderr, "Error: "+format+"\n", args...)
	os.Exit(1)
}
