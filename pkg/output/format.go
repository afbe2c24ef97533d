// Package output handles throughput summary output in various formats
package output

import (
	"fmt"
	"io"
	"os"

	"github.com/decimal_throughput/pkg/config"
	"github.com/decimal_throughput/pkg/throughput"
)

// rateFormatter builds a throughput formatter honoring the configured precision
func rateFormatter(cfg *config.Config) *throughput.Formatter {
	return throughput.New(throughput.WithPrecision(cfg.Settings.Precision))
}

// summaryWriter opens the configured summary destination, defaulting to stdout.
// The returned closer is a no-op for stdout.
func summaryWriter(cfg *config.Config) (io.Writer, func() error, error) {
	if cfg.Output.File == "" {
		return os.Stdout, func() error { return nil }, nil
	}
	file, err := os.Create(cfg.Output.File)
	if err != nil {
		return nil, nil, fmt.Errorf("error creating output file: %w", err)
	}
	return file, file.Close, nil
}
