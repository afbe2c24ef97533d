// Package stats aggregates observed throughput rates for summary reporting
package stats

import (
	"fmt"
	"math"
	"strings"

	"github.com/decimal_throughput/pkg/throughput"
)

// RateBucket represents a bucket in the ASCII rate histogram
type RateBucket struct {
	RangeStart float64 // Start of range in bytes per second
	RangeEnd   float64 // End of range, -1 for "and above"
	Count      int64   // Number of rates in this bucket
	Percentage float64 // Percentage of total
}

// defaultRateBoundaries covers the decades most benchmark throughputs land in
var defaultRateBoundaries = []float64{
	1e3,  // 1 KB/s
	1e4,  // 10 KB/s
	1e5,  // 100 KB/s
	1e6,  // 1 MB/s
	1e7,  // 10 MB/s
	1e8,  // 100 MB/s
	1e9,  // 1 GB/s
	1e10, // 10 GB/s
	1e11, // 100 GB/s
	1e12, // 1 TB/s
}

// Buckets returns histogram buckets over the default decade boundaries
func (t *Throughput) Buckets() []RateBucket {
	return t.CustomBuckets(nil)
}

// CustomBuckets returns histogram buckets with custom rate boundaries.
// If boundaries is nil, the default decade boundaries are used.
func (t *Throughput) CustomBuckets(boundaries []float64) []RateBucket {
	if boundaries == nil {
		boundaries = defaultRateBoundaries
	}

	t.mutex.Lock()
	defer t.mutex.Unlock()

	totalCount := t.histogram.TotalCount()
	if totalCount == 0 {
		return nil
	}

	boundaryCounts := make([]int64, len(boundaries))
	var overflowCount int64

	for _, bar := range t.histogram.Distribution() {
		value := float64(bar.To)
		count := bar.Count

		assigned := false
		for i, boundary := range boundaries {
			if value <= boundary {
				boundaryCounts[i] += count
				assigned = true
				break
			}
		}
		if !assigned {
			overflowCount += count
		}
	}

	buckets := make([]RateBucket, 0, len(boundaries)+1)
	prevBoundary := 0.0
	for i, boundary := range boundaries {
		count := boundaryCounts[i]
		if count > 0 {
			buckets = append(buckets, RateBucket{
				RangeStart: prevBoundary,
				RangeEnd:   boundary,
				Count:      count,
				Percentage: float64(count) / float64(totalCount) * 100,
			})
		}
		prevBoundary = boundary
	}

	if overflowCount > 0 {
		buckets = append(buckets, RateBucket{
			RangeStart: prevBoundary,
			RangeEnd:   -1,
			Count:      overflowCount,
			Percentage: float64(overflowCount) / float64(totalCount) * 100,
		})
	}

	return buckets
}

// RenderASCIIHistogram renders an ASCII histogram of throughput rates
func RenderASCIIHistogram(buckets []RateBucket, maxBarWidth int) string {
	if len(buckets) == 0 {
		return "  No throughput recorded\n"
	}

	var sb strings.Builder
	sb.WriteString("\nThroughput Histogram:\n")

	maxPct := float64(0)
	for _, b := range buckets {
		if b.Percentage > maxPct {
			maxPct = b.Percentage
		}
	}
	if maxPct == 0 {
		maxPct = 1
	}

	for _, bucket := range buckets {
		var rangeLabel string
		if bucket.RangeStart == 0 {
			rangeLabel = fmt.Sprintf("  < %s", throughput.FormatRate(bucket.RangeEnd))
		} else if bucket.RangeEnd == -1 {
			rangeLabel = fmt.Sprintf("  > %s", throughput.FormatRate(bucket.RangeStart))
		} else {
			rangeLabel = fmt.Sprintf("  %s - %s",
				throughput.FormatRate(bucket.RangeStart), throughput.FormatRate(bucket.RangeEnd))
		}

		rangeLabel = fmt.Sprintf("%-24s", rangeLabel)

		barWidth := int(math.Round(bucket.Percentage / maxPct * float64(maxBarWidth)))
		if barWidth < 0 {
			barWidth = 0
		}
		if barWidth > maxBarWidth {
			barWidth = maxBarWidth
		}

		bar := strings.Repeat("#", barWidth)
		padding := strings.Repeat(" ", maxBarWidth-barWidth)

		sb.WriteString(fmt.Sprintf("%s [%s%s] %6.2f%% (%d)\n",
			rangeLabel, bar, padding, bucket.Percentage, bucket.Count))
	}

	return sb.String()
}
