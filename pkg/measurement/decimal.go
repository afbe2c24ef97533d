// Package measurement defines the pluggable measurement contract a
// benchmarking harness consumes, plus a wall-clock implementation.
package measurement

import (
	"time"

	"github.com/decimal_throughput/pkg/throughput"
)

// Throughput declares how much work one measured iteration performs
type Throughput struct {
	kind  throughput.Kind
	count uint64
}

// Bytes declares an iteration that processes n bytes
func Bytes(n uint64) Throughput {
	return Throughput{kind: throughput.Bytes, count: n}
}

// Elements declares an iteration that processes n elements
func Elements(n uint64) Throughput {
	return Throughput{kind: throughput.Elements, count: n}
}

// Kind returns what the throughput counts
func (t Throughput) Kind() throughput.Kind {
	return t.kind
}

// Count returns the per-iteration work count
func (t Throughput) Count() uint64 {
	return t.count
}

// PerSecond converts an elapsed iteration time in nanoseconds to a per-second rate
func (t Throughput) PerSecond(elapsedNs float64) float64 {
	return float64(t.count) * (1e9 / elapsedNs)
}

// DecimalByte is a wall-clock measurement whose throughput figures are
// formatted with decimal byte multiples (KB/s, MB/s, ...) instead of the
// binary multiples most harnesses default to. It is a drop-in value
// wherever a harness accepts a custom Measurement.
type DecimalByte struct {
	inner WallTime
}

// NewDecimalByte creates a DecimalByte measurement
func NewDecimalByte() *DecimalByte {
	return &DecimalByte{}
}

// Start implements Measurement
func (m *DecimalByte) Start() time.Time {
	return m.inner.Start()
}

// End implements Measurement
func (m *DecimalByte) End(start time.Time) float64 {
	return m.inner.End(start)
}

// Add implements Measurement
func (m *DecimalByte) Add(v1, v2 float64) float64 {
	return m.inner.Add(v1, v2)
}

// Zero implements Measurement
func (m *DecimalByte) Zero() float64 {
	return m.inner.Zero()
}

// ToFloat implements Measurement
func (m *DecimalByte) ToFloat(v float64) float64 {
	return m.inner.ToFloat(v)
}

// Formatter implements Measurement
func (m *DecimalByte) Formatter() ValueFormatter {
	return m
}

// ScaleValues delegates timing display to the wall-clock formatter
func (m *DecimalByte) ScaleValues(typical float64, values []float64) string {
	return m.inner.Formatter().ScaleValues(typical, values)
}

// ScaleThroughputs rescales timing values to per-second rates in the
// decimal unit chosen from the typical value
func (m *DecimalByte) ScaleThroughputs(typical float64, t Throughput, values []float64) string {
	unit := throughput.UnitFor(t.PerSecond(typical))
	denominator := unit.Factor()
	for i := range values {
		values[i] = t.PerSecond(values[i]) / denominator
	}
	return unit.Suffix(t.Kind()) + "/s"
}

// ScaleForMachines delegates to the wall-clock formatter
func (m *DecimalByte) ScaleForMachines(values []float64) string {
	return m.inner.Formatter().ScaleForMachines(values)
}
