// Package throughput formats benchmark throughput using decimal byte multiples
package throughput

// Unit is a decimal byte-multiple unit (powers of 1000)
type Unit int

// Decimal units in ascending order
const (
	B Unit = iota
	KB
	MB
	GB
	TB
	PB
	EB
)

// Kind selects what a throughput figure counts
type Kind int

// Supported throughput kinds
const (
	Bytes Kind = iota
	Elements
)

var byteSuffixes = [...]string{"B", "KB", "MB", "GB", "TB", "PB", "EB"}

var elementSuffixes = [...]string{"elem", "Kelem", "Melem", "Gelem", "Telem", "Pelem", "Eelem"}

// Factor returns the scale factor of the unit (1000^k)
func (u Unit) Factor() float64 {
	f := 1.0
	for i := Unit(0); i < u; i++ {
		f *= 1000
	}
	return f
}

// String returns the byte suffix of the unit
func (u Unit) String() string {
	if u < B || u > EB {
		return "?"
	}
	return byteSuffixes[u]
}

// Suffix returns the unit suffix for the given kind, without the "/s" part
func (u Unit) Suffix(kind Kind) string {
	if u < B || u > EB {
		return "?"
	}
	if kind == Elements {
		return elementSuffixes[u]
	}
	return byteSuffixes[u]
}

// UnitFor returns the largest unit for which rate scales to a value >= 1.
// Rates below 1000 stay in the base unit; rates past EB saturate at EB.
func UnitFor(rate float64) Unit {
	u := B
	for u < EB && rate >= 1000 {
		rate /= 1000
		u++
	}
	return u
}
