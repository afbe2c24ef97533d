package stats

import (
	"strings"
	"testing"

	"github.com/decimal_throughput/pkg/config"
)

func collectorWithMean(rate float64) *Throughput {
	c := NewThroughput()
	c.RecordRate(rate)
	return c
}

func TestEvaluateThresholdsEmpty(t *testing.T) {
	c := collectorWithMean(1e8)

	results, err := EvaluateThresholds(c, nil)
	if err != nil {
		t.Fatalf("EvaluateThresholds error: %v", err)
	}
	if !results.Passed || len(results.Results) != 0 {
		t.Errorf("no thresholds should pass trivially, got %+v", results)
	}

	results, err = EvaluateThresholds(c, &config.ThresholdConfig{})
	if err != nil {
		t.Fatalf("EvaluateThresholds error: %v", err)
	}
	if !results.Passed || len(results.Results) != 0 {
		t.Errorf("empty thresholds should pass trivially, got %+v", results)
	}
}

func TestEvaluateThresholdsMinMean(t *testing.T) {
	c := collectorWithMean(1e8) // 100 MB/s

	results, err := EvaluateThresholds(c, &config.ThresholdConfig{MinMeanRate: "50MB/s"})
	if err != nil {
		t.Fatalf("EvaluateThresholds error: %v", err)
	}
	if !results.Passed || results.PassedCount() != 1 {
		t.Errorf("100 MB/s should pass a 50MB/s floor, got %+v", results)
	}

	results, err = EvaluateThresholds(c, &config.ThresholdConfig{MinMeanRate: "200MB/s"})
	if err != nil {
		t.Fatalf("EvaluateThresholds error: %v", err)
	}
	if results.Passed || results.FailedCount() != 1 {
		t.Errorf("100 MB/s should fail a 200MB/s floor, got %+v", results)
	}
}

func TestEvaluateThresholdsMaxMean(t *testing.T) {
	c := collectorWithMean(1e8)

	results, err := EvaluateThresholds(c, &config.ThresholdConfig{MaxMeanRate: "200MB/s"})
	if err != nil {
		t.Fatalf("EvaluateThresholds error: %v", err)
	}
	if !results.Passed {
		t.Errorf("100 MB/s should pass a 200MB/s ceiling, got %+v", results)
	}

	results, err = EvaluateThresholds(c, &config.ThresholdConfig{MaxMeanRate: "50MB/s"})
	if err != nil {
		t.Fatalf("EvaluateThresholds error: %v", err)
	}
	if results.Passed {
		t.Errorf("100 MB/s should fail a 50MB/s ceiling, got %+v", results)
	}
}

func TestEvaluateThresholdsPercentiles(t *testing.T) {
	c := NewThroughput()
	for i := 1; i <= 100; i++ {
		c.RecordRate(float64(i) * 1e6)
	}

	thresholds := &config.ThresholdConfig{
		MinP10Rate: "5MB/s",   // p10 is ~10 MB/s
		MinP50Rate: "40MB/s",  // p50 is ~50 MB/s
		MinP90Rate: "100MB/s", // p90 is ~90 MB/s, fails
	}
	results, err := EvaluateThresholds(c, thresholds)
	if err != nil {
		t.Fatalf("EvaluateThresholds error: %v", err)
	}
	if len(results.Results) != 3 {
		t.Fatalf("got %d results, want 3", len(results.Results))
	}
	if results.Passed || results.FailedCount() != 1 || results.PassedCount() != 2 {
		t.Errorf("unexpected results: %+v", results)
	}
}

func TestEvaluateThresholdsBadRate(t *testing.T) {
	c := collectorWithMean(1e8)

	_, err := EvaluateThresholds(c, &config.ThresholdConfig{MinMeanRate: "fast"})
	if err == nil {
		t.Error("expected error for malformed threshold rate")
	}
}

func TestFormatResults(t *testing.T) {
	c := collectorWithMean(1e8)

	results, err := EvaluateThresholds(c, &config.ThresholdConfig{
		MinMeanRate: "50MB/s",
		MaxMeanRate: "75MB/s",
	})
	if err != nil {
		t.Fatalf("EvaluateThresholds error: %v", err)
	}

	out := results.FormatResults()
	for _, want := range []string{"Threshold Results", "✓ PASS", "✗ FAIL", "Some thresholds failed"} {
		if !strings.Contains(out, want) {
			t.Errorf("FormatResults missing %q:\n%s", want, out)
		}
	}

	if (&ThresholdResults{}).FormatResults() != "" {
		t.Error("empty results should format to an empty string")
	}
}
