// Package throughput formats benchmark throughput using decimal byte multiples
package throughput

import (
	"fmt"
	"strconv"
	"strings"
)

// suffixScale maps byte-rate suffixes (without the "/s" part) to bytes.
// Binary multiples scale by 1024, decimal multiples by 1000.
var suffixScale = map[string]float64{
	"B":   1,
	"KB":  1e3,
	"MB":  1e6,
	"GB":  1e9,
	"TB":  1e12,
	"PB":  1e15,
	"EB":  1e18,
	"KiB": 1 << 10,
	"MiB": 1 << 20,
	"GiB": 1 << 30,
	"TiB": 1 << 40,
	"PiB": 1 << 50,
	"EiB": 1 << 60,
}

// IsBinarySuffix reports whether suffix is a binary byte multiple (KiB, MiB, ...)
func IsBinarySuffix(suffix string) bool {
	if _, ok := suffixScale[suffix]; !ok {
		return false
	}
	return strings.HasSuffix(suffix, "iB")
}

// ParseRate parses a throughput figure like "12.5 MiB/s", "12.5MB/s" or
// "900 B/s" and returns the rate in bytes per second.
func ParseRate(s string) (float64, error) {
	trimmed := strings.TrimSpace(s)
	body, ok := strings.CutSuffix(trimmed, "/s")
	if !ok {
		return 0, fmt.Errorf("invalid throughput %q: missing /s suffix", s)
	}

	// Split the numeric part from the unit suffix
	i := len(body)
	for i > 0 {
		c := body[i-1]
		if c >= '0' && c <= '9' || c == '.' || c == ' ' {
			break
		}
		i--
	}
	number := strings.TrimSpace(body[:i])
	suffix := body[i:]

	if number == "" {
		return 0, fmt.Errorf("invalid throughput %q: missing value", s)
	}
	scale, ok := suffixScale[suffix]
	if !ok {
		return 0, fmt.Errorf("invalid throughput %q: unrecognized unit %q", s, suffix)
	}
	value, err := strconv.ParseFloat(number, 64)
	if err != nil {
		return 0, fmt.Errorf("invalid throughput %q: %w", s, err)
	}
	if value < 0 {
		return 0, fmt.Errorf("invalid throughput %q: negative value", s)
	}
	return value * scale, nil
}
