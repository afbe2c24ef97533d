package throughput

import (
	"errors"
	"testing"
	"time"
)

func TestFormat(t *testing.T) {
	tests := []struct {
		name    string
		count   uint64
		elapsed time.Duration
		want    string
	}{
		{"zero bytes", 0, time.Second, "0 B/s"},
		{"sub kilobyte", 999, time.Second, "999 B/s"},
		{"exactly one kilobyte", 1000, time.Second, "1 KB/s"},
		{"fractional kilobytes", 12800, time.Second, "12.8 KB/s"},
		{"one megabyte", 1_000_000, time.Second, "1 MB/s"},
		{"one gigabyte", 1_000_000_000, time.Second, "1 GB/s"},
		{"one and a half gigabytes", 1_500_000_000, time.Second, "1.5 GB/s"},
		{"one terabyte", 1_000_000_000_000, time.Second, "1 TB/s"},
		{"half duration doubles rate", 1_000_000, 500 * time.Millisecond, "2 MB/s"},
		{"long duration", 3_000_000_000, 2 * time.Second, "1.5 GB/s"},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := Format(tt.count, tt.elapsed)
			if err != nil {
				t.Fatalf("Format(%d, %v) error: %v", tt.count, tt.elapsed, err)
			}
			if got != tt.want {
				t.Errorf("Format(%d, %v) = %q, want %q", tt.count, tt.elapsed, got, tt.want)
			}
		})
	}
}

func TestFormatInvalidDuration(t *testing.T) {
	for _, elapsed := range []time.Duration{0, -time.Second} {
		_, err := Format(1000, elapsed)
		if !errors.Is(err, ErrInvalidDuration) {
			t.Errorf("Format(1000, %v) error = %v, want ErrInvalidDuration", elapsed, err)
		}
	}
}

func TestFormatRateSaturatesAtEB(t *testing.T) {
	// Rates past the largest unit stay in EB with a large numeric value
	got := FormatRate(2.5e21)
	if got != "2500 EB/s" {
		t.Errorf("FormatRate(2.5e21) = %q, want %q", got, "2500 EB/s")
	}
}

func TestFormatRateBelowOne(t *testing.T) {
	got := FormatRate(0.5)
	if got != "0.5 B/s" {
		t.Errorf("FormatRate(0.5) = %q, want %q", got, "0.5 B/s")
	}
}

func TestScaleRateBounds(t *testing.T) {
	// The chosen unit keeps the scaled value in [1, 1000) for every rate
	// expressible within the unit table
	rates := []float64{1, 5, 999, 1000, 1001, 5e4, 1e6 - 1, 1e6, 123456789, 1e9, 1e12, 1e15, 1e18 - 1, 1e18}
	for _, rate := range rates {
		scaled, unit := ScaleRate(rate)
		if scaled < 1 || scaled >= 1000 {
			t.Errorf("ScaleRate(%g) = %g %s, scaled value out of [1, 1000)", rate, scaled, unit)
		}
	}

	// Below one byte per second the base unit holds
	if _, unit := ScaleRate(0.25); unit != B {
		t.Errorf("ScaleRate(0.25) unit = %s, want B", unit)
	}
}

func TestUnitMonotonicity(t *testing.T) {
	// Increasing rates never pick a smaller unit
	prev := B
	for _, rate := range []float64{0, 1, 999, 1000, 1e5, 1e6, 1e8, 1e9, 1e12, 1e15, 1e18, 1e21} {
		unit := UnitFor(rate)
		if unit < prev {
			t.Errorf("UnitFor(%g) = %s, smaller than previous unit %s", rate, unit, prev)
		}
		prev = unit
	}
}

func TestFormatterPrecision(t *testing.T) {
	f := New(WithPrecision(3))
	got := f.FormatRate(1.2345e6)
	if got != "1.23 MB/s" {
		t.Errorf("FormatRate(1.2345e6) with precision 3 = %q, want %q", got, "1.23 MB/s")
	}

	// Out-of-range precision falls back to the default
	f = New(WithPrecision(0))
	if f.Precision() != DefaultPrecision {
		t.Errorf("precision = %d, want default %d", f.Precision(), DefaultPrecision)
	}
}

func TestFormatterElements(t *testing.T) {
	f := New(WithKind(Elements))
	tests := []struct {
		rate float64
		want string
	}{
		{500, "500 elem/s"},
		{2500, "2.5 Kelem/s"},
		{2.5e6, "2.5 Melem/s"},
		{1e9, "1 Gelem/s"},
	}
	for _, tt := range tests {
		if got := f.FormatRate(tt.rate); got != tt.want {
			t.Errorf("FormatRate(%g) = %q, want %q", tt.rate, got, tt.want)
		}
	}
}

func TestUnitFactor(t *testing.T) {
	tests := []struct {
		unit Unit
		want float64
	}{
		{B, 1},
		{KB, 1e3},
		{MB, 1e6},
		{GB, 1e9},
		{TB, 1e12},
		{PB, 1e15},
		{EB, 1e18},
	}
	for _, tt := range tests {
		if got := tt.unit.Factor(); got != tt.want {
			t.Errorf("%s.Factor() = %g, want %g", tt.unit, got, tt.want)
		}
	}
}
