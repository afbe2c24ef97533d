// Package rewrite converts binary byte-multiple throughput figures in
// benchmark reports to decimal byte multiples.
package rewrite

import (
	"bufio"
	"fmt"
	"io"
	"regexp"

	"github.com/decimal_throughput/pkg/stats"
	"github.com/decimal_throughput/pkg/throughput"
)

// ratePattern matches throughput figures like "123.45 MiB/s", "12MB/s" or "900 B/s"
var ratePattern = regexp.MustCompile(`(\d+(?:\.\d+)?) ?([KMGTPE]i?B|B)/s`)

// Rewriter rewrites throughput figures in a report stream
type Rewriter struct {
	formatter *throughput.Formatter
	collector *stats.Throughput
}

// New creates a Rewriter rendering with the given formatter
func New(formatter *throughput.Formatter) *Rewriter {
	return &Rewriter{formatter: formatter}
}

// SetCollector makes the rewriter record every recognized rate into c
func (rw *Rewriter) SetCollector(c *stats.Throughput) {
	rw.collector = c
}

// RewriteLine replaces binary-unit throughput figures in one line with
// their decimal rendering. Decimal figures pass through untouched but are
// still recorded. Anything unrecognized is left as-is.
func (rw *Rewriter) RewriteLine(line string) string {
	return ratePattern.ReplaceAllStringFunc(line, func(match string) string {
		rate, err := throughput.ParseRate(match)
		if err != nil {
			return match
		}
		if rw.collector != nil {
			rw.collector.RecordRate(rate)
		}
		suffix := ratePattern.FindStringSubmatch(match)[2]
		if !throughput.IsBinarySuffix(suffix) {
			return match
		}
		return rw.formatter.FormatRate(rate)
	})
}

// Process rewrites an entire report stream line by line
func (rw *Rewriter) Process(r io.Reader, w io.Writer) error {
	scanner := bufio.NewScanner(r)
	scanner.Buffer(make([]byte, 0, 64*1024), 1024*1024)

	for scanner.Scan() {
		if _, err := fmt.Fprintln(w, rw.RewriteLine(scanner.Text())); err != nil {
			return fmt.Errorf("failed to write output: %w", err)
		}
	}
	if err := scanner.Err(); err != nil {
		return fmt.Errorf("failed to read input: %w", err)
	}
	return nil
}
