// Package measurement defines the pluggable measurement contract a
// benchmarking harness consumes, plus a wall-clock implementation.
package measurement

import (
	"time"

	"github.com/decimal_throughput/pkg/throughput"
)

// Measurement abstracts how a harness measures a benchmark iteration.
// Values are elapsed nanoseconds carried as float64.
type Measurement interface {
	// Start begins a measurement and returns its intermediate state
	Start() time.Time
	// End completes a measurement started with Start
	End(start time.Time) float64
	// Add combines two measured values
	Add(v1, v2 float64) float64
	// Zero returns the identity value for Add
	Zero() float64
	// ToFloat converts a measured value to a float for analysis
	ToFloat(v float64) float64
	// Formatter returns the value formatter for this measurement
	Formatter() ValueFormatter
}

// ValueFormatter scales measured values for display. Scale methods rescale
// values in place and return the unit suffix the harness should print.
type ValueFormatter interface {
	// ScaleValues scales raw timing values, choosing a unit from the typical value
	ScaleValues(typical float64, values []float64) string
	// ScaleThroughputs converts timing values to per-second rates for the
	// given throughput, choosing a unit from the typical value
	ScaleThroughputs(typical float64, t Throughput, values []float64) string
	// ScaleForMachines scales values for machine-readable output
	ScaleForMachines(values []float64) string
}

// WallTime measures elapsed wall-clock time in nanoseconds
type WallTime struct{}

// Start implements Measurement
func (WallTime) Start() time.Time {
	return time.Now()
}

// End implements Measurement
func (WallTime) End(start time.Time) float64 {
	return float64(time.Since(start).Nanoseconds())
}

// Add implements Measurement
func (WallTime) Add(v1, v2 float64) float64 {
	return v1 + v2
}

// Zero implements Measurement
func (WallTime) Zero() float64 {
	return 0
}

// ToFloat implements Measurement
func (WallTime) ToFloat(v float64) float64 {
	return v
}

// Formatter implements Measurement
func (w WallTime) Formatter() ValueFormatter {
	return timeFormatter{}
}

// timeFormatter scales nanosecond timings to ns/us/ms/s
type timeFormatter struct{}

func (timeFormatter) ScaleValues(typical float64, values []float64) string {
	divisor, unit := 1.0, "ns"
	switch {
	case typical >= 1e9:
		divisor, unit = 1e9, "s"
	case typical >= 1e6:
		divisor, unit = 1e6, "ms"
	case typical >= 1e3:
		divisor, unit = 1e3, "us"
	}
	for i := range values {
		values[i] /= divisor
	}
	return unit
}

func (f timeFormatter) ScaleThroughputs(typical float64, t Throughput, values []float64) string {
	// Without a unit policy of its own, wall time reports raw per-second rates
	for i := range values {
		values[i] = t.PerSecond(values[i])
	}
	if t.Kind() == throughput.Elements {
		return "elem/s"
	}
	return "B/s"
}

func (timeFormatter) ScaleForMachines(values []float64) string {
	return "ns"
}
