// Package stats aggregates observed throughput rates for summary reporting
package stats

import (
	"math"
	"sync"
	"time"

	"github.com/HdrHistogram/hdrhistogram-go"

	"github.com/decimal_throughput/pkg/throughput"
)

// Histogram value bounds in bytes per second. Rates are tracked to three
// significant figures, which is plenty for percentile reporting.
const (
	minTrackableRate = 1
	maxTrackableRate = int64(1) << 50
	histogramSigFigs = 3
)

// Throughput collects observed throughput rates and summarizes them
type Throughput struct {
	mutex     sync.Mutex
	histogram *hdrhistogram.Histogram
	count     int64
	sum       float64
	sumSq     float64
	minRate   float64
	maxRate   float64
}

// NewThroughput creates an empty throughput collector
func NewThroughput() *Throughput {
	return &Throughput{
		histogram: hdrhistogram.New(minTrackableRate, maxTrackableRate, histogramSigFigs),
		minRate:   math.MaxFloat64,
	}
}

// RecordRate records a rate in bytes per second
func (t *Throughput) RecordRate(bytesPerSec float64) {
	t.mutex.Lock()
	defer t.mutex.Unlock()

	// Sub-histogram-range rates still count toward the moment statistics
	v := int64(bytesPerSec)
	if v < minTrackableRate {
		v = minTrackableRate
	}
	if v > maxTrackableRate {
		v = maxTrackableRate
	}
	_ = t.histogram.RecordValue(v)

	t.count++
	t.sum += bytesPerSec
	t.sumSq += bytesPerSec * bytesPerSec
	if bytesPerSec < t.minRate {
		t.minRate = bytesPerSec
	}
	if bytesPerSec > t.maxRate {
		t.maxRate = bytesPerSec
	}
}

// RecordSample records count items processed in elapsed time.
// The elapsed duration must be positive.
func (t *Throughput) RecordSample(count uint64, elapsed time.Duration) error {
	if elapsed <= 0 {
		return throughput.ErrInvalidDuration
	}
	t.RecordRate(float64(count) / elapsed.Seconds())
	return nil
}

// Count returns the number of recorded rates
func (t *Throughput) Count() int64 {
	t.mutex.Lock()
	defer t.mutex.Unlock()

	return t.count
}

// Mean returns the mean rate in bytes per second
func (t *Throughput) Mean() float64 {
	t.mutex.Lock()
	defer t.mutex.Unlock()

	if t.count == 0 {
		return 0
	}
	return t.sum / float64(t.count)
}

// StdDev returns the sample standard deviation of recorded rates
func (t *Throughput) StdDev() float64 {
	t.mutex.Lock()
	defer t.mutex.Unlock()

	if t.count <= 1 {
		return 0
	}
	mean := t.sum / float64(t.count)
	variance := (t.sumSq - t.sum*mean) / float64(t.count-1)
	if variance < 0 {
		variance = 0
	}
	return math.Sqrt(variance)
}

// Min returns the minimum recorded rate
func (t *Throughput) Min() float64 {
	t.mutex.Lock()
	defer t.mutex.Unlock()

	if t.count == 0 {
		return 0
	}
	return t.minRate
}

// Max returns the maximum recorded rate
func (t *Throughput) Max() float64 {
	t.mutex.Lock()
	defer t.mutex.Unlock()

	return t.maxRate
}

// Percentile returns the rate at the given percentile (0-100)
func (t *Throughput) Percentile(percentile float64) float64 {
	t.mutex.Lock()
	defer t.mutex.Unlock()

	if t.count == 0 {
		return 0
	}
	return float64(t.histogram.ValueAtQuantile(percentile))
}

// Merge merges another collector into this one
func (t *Throughput) Merge(other *Throughput) {
	other.mutex.Lock()
	defer other.mutex.Unlock()
	t.mutex.Lock()
	defer t.mutex.Unlock()

	t.histogram.Merge(other.histogram)
	t.count += other.count
	t.sum += other.sum
	t.sumSq += other.sumSq
	if other.minRate < t.minRate {
		t.minRate = other.minRate
	}
	if other.maxRate > t.maxRate {
		t.maxRate = other.maxRate
	}
}

// Reset clears all recorded rates
func (t *Throughput) Reset() {
	t.mutex.Lock()
	defer t.mutex.Unlock()

	t.histogram.Reset()
	t.count = 0
	t.sum = 0
	t.sumSq = 0
	t.minRate = math.MaxFloat64
	t.maxRate = 0
}
