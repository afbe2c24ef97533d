// Package stats aggregates observed throughput rates for summary reporting
package stats

import (
	"fmt"
	"strings"

	"github.com/decimal_throughput/pkg/config"
	"github.com/decimal_throughput/pkg/throughput"
)

// ThresholdResult represents the result of a single threshold check
type ThresholdResult struct {
	Name     string // Name of the threshold (e.g., "Min Mean Throughput")
	Passed   bool   // Whether the threshold passed
	Expected string // Expected value
	Actual   string // Actual value
	Message  string // Human-readable message
}

// ThresholdResults represents all threshold check results
type ThresholdResults struct {
	Results []ThresholdResult
	Passed  bool // Overall pass/fail
}

// EvaluateThresholds checks if the observed throughput meets the defined thresholds
func EvaluateThresholds(t *Throughput, thresholds *config.ThresholdConfig) (*ThresholdResults, error) {
	results := &ThresholdResults{
		Results: make([]ThresholdResult, 0),
		Passed:  true,
	}

	if thresholds == nil || !thresholds.HasThresholds() {
		return results, nil
	}

	// Check minimum mean throughput
	if thresholds.MinMeanRate != "" {
		result, err := checkRate("Min Mean Throughput", t.Mean(), thresholds.MinMeanRate, false)
		if err != nil {
			return nil, err
		}
		results.add(result)
	}

	// Check maximum mean throughput
	if thresholds.MaxMeanRate != "" {
		result, err := checkRate("Max Mean Throughput", t.Mean(), thresholds.MaxMeanRate, true)
		if err != nil {
			return nil, err
		}
		results.add(result)
	}

	// Check percentile floors
	percentileGates := []struct {
		percentile float64
		rateStr    string
	}{
		{10, thresholds.MinP10Rate},
		{50, thresholds.MinP50Rate},
		{90, thresholds.MinP90Rate},
	}
	for _, gate := range percentileGates {
		if gate.rateStr == "" {
			continue
		}
		name := fmt.Sprintf("Min P%.0f Throughput", gate.percentile)
		result, err := checkRate(name, t.Percentile(gate.percentile), gate.rateStr, false)
		if err != nil {
			return nil, err
		}
		results.add(result)
	}

	return results, nil
}

func (r *ThresholdResults) add(result ThresholdResult) {
	r.Results = append(r.Results, result)
	if !result.Passed {
		r.Passed = false
	}
}

// checkRate compares an observed rate against a threshold rate string.
// With isMax set the check is an upper bound, otherwise a lower bound.
func checkRate(name string, actualRate float64, rateStr string, isMax bool) (ThresholdResult, error) {
	limit, err := config.ParseRate(rateStr)
	if err != nil {
		return ThresholdResult{}, err
	}

	var passed bool
	var bound string
	if isMax {
		passed = actualRate <= limit
		bound = "<="
	} else {
		passed = actualRate >= limit
		bound = ">="
	}

	actual := throughput.FormatRate(actualRate)
	expected := fmt.Sprintf("%s %s", bound, rateStr)
	return ThresholdResult{
		Name:     name,
		Passed:   passed,
		Expected: expected,
		Actual:   actual,
		Message:  formatResultMessage(name, passed, actual, expected),
	}, nil
}

// formatResultMessage formats a threshold result message
func formatResultMessage(name string, passed bool, actual, expected string) string {
	status := "✓ PASS"
	if !passed {
		status = "✗ FAIL"
	}
	return fmt.Sprintf("%s: %s (actual: %s, expected: %s)", status, name, actual, expected)
}

// FormatResults returns a formatted string of all threshold results
func (r *ThresholdResults) FormatResults() string {
	if len(r.Results) == 0 {
		return ""
	}

	var sb strings.Builder
	sb.WriteString("\n  Threshold Results:\n")

	for _, result := range r.Results {
		sb.WriteString("    ")
		sb.WriteString(result.Message)
		sb.WriteString("\n")
	}

	if r.Passed {
		sb.WriteString("\n  ✓ All thresholds passed\n")
	} else {
		sb.WriteString("\n  ✗ Some thresholds failed\n")
	}

	return sb.String()
}

// FailedCount returns the number of failed thresholds
func (r *ThresholdResults) FailedCount() int {
	count := 0
	for _, result := range r.Results {
		if !result.Passed {
			count++
		}
	}
	return count
}

// PassedCount returns the number of passed thresholds
func (r *ThresholdResults) PassedCount() int {
	count := 0
	for _, result := range r.Results {
		if result.Passed {
			count++
		}
	}
	return count
}
