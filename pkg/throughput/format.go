// Package throughput formats benchmark throughput using decimal byte multiples
package throughput

import (
	"errors"
	"strconv"
	"time"
)

// ErrInvalidDuration is returned when the elapsed duration is zero or negative
var ErrInvalidDuration = errors.New("throughput: elapsed duration must be positive")

// DefaultPrecision is the number of significant digits in rendered values.
// Values are rounded to nearest, ties to even.
const DefaultPrecision = 4

// Formatter renders throughput figures with decimal byte-multiple units
type Formatter struct {
	precision int
	kind      Kind
}

// Option configures a Formatter
type Option func(*Formatter)

// WithPrecision sets the number of significant digits (1-10)
func WithPrecision(digits int) Option {
	return func(f *Formatter) {
		if digits >= 1 && digits <= 10 {
			f.precision = digits
		}
	}
}

// WithKind sets what the formatter counts (bytes or elements)
func WithKind(kind Kind) Option {
	return func(f *Formatter) {
		f.kind = kind
	}
}

// New creates a Formatter with default options applied
func New(opts ...Option) *Formatter {
	f := &Formatter{
		precision: DefaultPrecision,
		kind:      Bytes,
	}
	for _, opt := range opts {
		opt(f)
	}
	return f
}

// defaultFormatter backs the package-level convenience functions
var defaultFormatter = New()

// Format renders the throughput of count items processed in elapsed time.
// The elapsed duration must be positive.
func (f *Formatter) Format(count uint64, elapsed time.Duration) (string, error) {
	if elapsed <= 0 {
		return "", ErrInvalidDuration
	}
	return f.FormatRate(float64(count) / elapsed.Seconds()), nil
}

// FormatRate renders a precomputed per-second rate
func (f *Formatter) FormatRate(rate float64) string {
	scaled, unit := ScaleRate(rate)
	return strconv.FormatFloat(scaled, 'g', f.precision, 64) + " " + unit.Suffix(f.kind) + "/s"
}

// Precision returns the configured number of significant digits
func (f *Formatter) Precision() int {
	return f.precision
}

// Kind returns what the formatter counts
func (f *Formatter) Kind() Kind {
	return f.kind
}

// ScaleRate scales a per-second rate to its display unit
func ScaleRate(rate float64) (float64, Unit) {
	unit := UnitFor(rate)
	return rate / unit.Factor(), unit
}

// Format renders throughput with the default formatter (bytes, 4 significant digits)
func Format(count uint64, elapsed time.Duration) (string, error) {
	return defaultFormatter.Format(count, elapsed)
}

// FormatRate renders a per-second byte rate with the default formatter
func FormatRate(rate float64) string {
	return defaultFormatter.FormatRate(rate)
}
