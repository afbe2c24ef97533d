// Package rewrite converts binary byte-multiple throughput figures in
// benchmark reports to decimal byte multiples.
package rewrite

import (
	"fmt"

	"github.com/tidwall/gjson"

	"github.com/decimal_throughput/pkg/throughput"
)

// Estimate is the decimal rendering of one benchmark's throughput estimates,
// derived from a criterion-style JSON report pair.
type Estimate struct {
	ID         string  // Benchmark identifier
	Mean       string  // Formatted mean throughput
	Median     string  // Formatted median throughput
	MeanRate   float64 // Mean rate in items per second
	MedianRate float64 // Median rate in items per second
}

// ConvertEstimates reads a benchmark declaration (throughput counts) and its
// timing estimates (nanoseconds per iteration) and returns the decimal
// throughput rendering. Field layout follows criterion's benchmark.json and
// estimates.json files.
func (rw *Rewriter) ConvertEstimates(benchmark, estimates []byte) (*Estimate, error) {
	if !gjson.ValidBytes(benchmark) {
		return nil, fmt.Errorf("invalid benchmark JSON")
	}
	if !gjson.ValidBytes(estimates) {
		return nil, fmt.Errorf("invalid estimates JSON")
	}

	var count uint64
	var kind throughput.Kind
	if b := gjson.GetBytes(benchmark, "throughput.Bytes"); b.Exists() {
		count = b.Uint()
		kind = throughput.Bytes
	} else if e := gjson.GetBytes(benchmark, "throughput.Elements"); e.Exists() {
		count = e.Uint()
		kind = throughput.Elements
	} else {
		return nil, fmt.Errorf("benchmark declares no throughput")
	}

	id := gjson.GetBytes(benchmark, "full_id").String()
	if id == "" {
		id = gjson.GetBytes(benchmark, "group_id").String()
	}

	meanNs := gjson.GetBytes(estimates, "mean.point_estimate").Float()
	medianNs := gjson.GetBytes(estimates, "median.point_estimate").Float()
	if meanNs <= 0 || medianNs <= 0 {
		return nil, fmt.Errorf("estimates for %q: %w", id, throughput.ErrInvalidDuration)
	}

	formatter := throughput.New(
		throughput.WithPrecision(rw.formatter.Precision()),
		throughput.WithKind(kind),
	)

	meanRate := float64(count) * 1e9 / meanNs
	medianRate := float64(count) * 1e9 / medianNs
	if rw.collector != nil && kind == throughput.Bytes {
		rw.collector.RecordRate(meanRate)
	}

	return &Estimate{
		ID:         id,
		Mean:       formatter.FormatRate(meanRate),
		Median:     formatter.FormatRate(medianRate),
		MeanRate:   meanRate,
		MedianRate: medianRate,
	}, nil
}
