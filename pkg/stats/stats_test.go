package stats

import (
	"errors"
	"math"
	"strings"
	"testing"
	"time"

	"github.com/decimal_throughput/pkg/throughput"
)

// within reports whether got is within tolerance (fraction) of want
func within(got, want, tolerance float64) bool {
	if want == 0 {
		return math.Abs(got) <= tolerance
	}
	return math.Abs(got-want)/want <= tolerance
}

func TestThroughputMoments(t *testing.T) {
	c := NewThroughput()

	if c.Count() != 0 || c.Mean() != 0 || c.Min() != 0 || c.StdDev() != 0 {
		t.Fatal("empty collector should report zeros")
	}

	c.RecordRate(1e6)
	c.RecordRate(3e6)

	if c.Count() != 2 {
		t.Errorf("Count() = %d, want 2", c.Count())
	}
	if c.Mean() != 2e6 {
		t.Errorf("Mean() = %g, want 2e6", c.Mean())
	}
	if c.Min() != 1e6 {
		t.Errorf("Min() = %g, want 1e6", c.Min())
	}
	if c.Max() != 3e6 {
		t.Errorf("Max() = %g, want 3e6", c.Max())
	}

	// Sample standard deviation of {1e6, 3e6}
	want := math.Sqrt(2) * 1e6
	if !within(c.StdDev(), want, 1e-9) {
		t.Errorf("StdDev() = %g, want %g", c.StdDev(), want)
	}
}

func TestThroughputPercentile(t *testing.T) {
	c := NewThroughput()
	for i := 1; i <= 100; i++ {
		c.RecordRate(float64(i) * 1e6)
	}

	// The histogram tracks three significant figures
	if got := c.Percentile(50); !within(got, 50e6, 0.01) {
		t.Errorf("Percentile(50) = %g, want ~50e6", got)
	}
	if got := c.Percentile(99); !within(got, 99e6, 0.01) {
		t.Errorf("Percentile(99) = %g, want ~99e6", got)
	}
}

func TestThroughputRecordSample(t *testing.T) {
	c := NewThroughput()

	if err := c.RecordSample(1_000_000, time.Second); err != nil {
		t.Fatalf("RecordSample error: %v", err)
	}
	if c.Mean() != 1e6 {
		t.Errorf("Mean() = %g, want 1e6", c.Mean())
	}

	err := c.RecordSample(1000, 0)
	if !errors.Is(err, throughput.ErrInvalidDuration) {
		t.Errorf("RecordSample(_, 0) error = %v, want ErrInvalidDuration", err)
	}
	err = c.RecordSample(1000, -time.Second)
	if !errors.Is(err, throughput.ErrInvalidDuration) {
		t.Errorf("RecordSample(_, -1s) error = %v, want ErrInvalidDuration", err)
	}
	if c.Count() != 1 {
		t.Errorf("invalid samples must not be recorded, Count() = %d", c.Count())
	}
}

func TestThroughputMerge(t *testing.T) {
	a := NewThroughput()
	b := NewThroughput()
	a.RecordRate(1e6)
	b.RecordRate(3e6)

	a.Merge(b)

	if a.Count() != 2 {
		t.Errorf("Count() = %d, want 2", a.Count())
	}
	if a.Mean() != 2e6 {
		t.Errorf("Mean() = %g, want 2e6", a.Mean())
	}
	if a.Min() != 1e6 || a.Max() != 3e6 {
		t.Errorf("Min/Max = %g/%g, want 1e6/3e6", a.Min(), a.Max())
	}
}

func TestThroughputReset(t *testing.T) {
	c := NewThroughput()
	c.RecordRate(5e6)
	c.Reset()

	if c.Count() != 0 || c.Mean() != 0 || c.Max() != 0 {
		t.Error("Reset did not clear the collector")
	}

	c.RecordRate(2e6)
	if c.Min() != 2e6 {
		t.Errorf("Min() after reset = %g, want 2e6", c.Min())
	}
}

func TestBuckets(t *testing.T) {
	c := NewThroughput()

	if c.Buckets() != nil {
		t.Error("empty collector should have no buckets")
	}

	c.RecordRate(5e5)  // 500 KB/s
	c.RecordRate(5e6)  // 5 MB/s
	c.RecordRate(5e6)  // 5 MB/s
	c.RecordRate(5e13) // 50 TB/s, past the largest default boundary

	buckets := c.Buckets()
	if len(buckets) != 3 {
		t.Fatalf("got %d buckets, want 3", len(buckets))
	}

	var total int64
	for _, b := range buckets {
		total += b.Count
	}
	if total != 4 {
		t.Errorf("bucket counts sum to %d, want 4", total)
	}

	// The overflow bucket is open-ended
	last := buckets[len(buckets)-1]
	if last.RangeEnd != -1 || last.Count != 1 {
		t.Errorf("overflow bucket = %+v", last)
	}
}

func TestRenderASCIIHistogram(t *testing.T) {
	if got := RenderASCIIHistogram(nil, 40); got != "  No throughput recorded\n" {
		t.Errorf("empty histogram rendering = %q", got)
	}

	c := NewThroughput()
	c.RecordRate(5e5)
	c.RecordRate(5e6)

	out := RenderASCIIHistogram(c.Buckets(), 40)
	for _, want := range []string{"Throughput Histogram", "#", "50.00%"} {
		if !strings.Contains(out, want) {
			t.Errorf("histogram rendering missing %q:\n%s", want, out)
		}
	}
}
