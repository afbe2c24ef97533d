// Package bench reports decimal throughput metrics for Go benchmarks.
//
// The standard harness reports custom metrics verbatim, so publishing a
// rate already scaled to a decimal unit gives `go test -bench` output in
// MB/s without touching the harness itself.
package bench

import "testing"

// ReportThroughput reports the benchmark's byte throughput in decimal MB/s
func ReportThroughput(b *testing.B, totalBytes int64) {
	b.Helper()
	elapsed := b.Elapsed().Seconds()
	if elapsed <= 0 {
		return
	}
	b.ReportMetric(float64(totalBytes)/elapsed/1e6, "MB/s")
}

// ReportElements reports the benchmark's element throughput in elem/s
func ReportElements(b *testing.B, totalElements int64) {
	b.Helper()
	elapsed := b.Elapsed().Seconds()
	if elapsed <= 0 {
		return
	}
	b.ReportMetric(float64(totalElements)/elapsed, "elem/s")
}
