// Package output handles throughput summary output in various formats
package output

import (
	"fmt"
	"html/template"
	"os"
	"time"

	"github.com/decimal_throughput/pkg/config"
	"github.com/decimal_throughput/pkg/stats"
)

// HTMLReport represents data for the HTML report template
type HTMLReport struct {
	Title       string
	Timestamp   string
	Samples     int64
	Mean        string
	StdDev      string
	Min         string
	Max         string
	Percentiles []PercentileData
	Buckets     []BucketData
	Precision   int
}

// PercentileData holds one percentile row
type PercentileData struct {
	Percentile int
	Value      string
}

// BucketData holds one rate histogram bar
type BucketData struct {
	Range      string
	Count      int64
	Percentage float64
	BarWidth   int
}

// WriteHTML generates an HTML report from the throughput summary
func WriteHTML(t *stats.Throughput, cfg *config.Config) error {
	report := buildHTMLReport(t, cfg)

	// Determine output destination
	outputFile := cfg.Output.File
	if outputFile == "" {
		outputFile = "throughput-report.html"
	}

	f, err := os.Create(outputFile)
	if err != nil {
		return fmt.Errorf("error creating HTML file: %w", err)
	}
	defer f.Close()

	tmpl, err := template.New("report").Parse(htmlTemplate)
	if err != nil {
		return fmt.Errorf("error parsing HTML template: %w", err)
	}

	if err := tmpl.Execute(f, report); err != nil {
		return fmt.Errorf("error executing HTML template: %w", err)
	}

	fmt.Printf("HTML report saved to: %s\n", outputFile)
	return nil
}

func buildHTMLReport(t *stats.Throughput, cfg *config.Config) HTMLReport {
	f := rateFormatter(cfg)

	percentiles := cfg.Settings.Percentiles
	if len(percentiles) == 0 {
		percentiles = []int{10, 50, 90, 99}
	}

	percData := make([]PercentileData, len(percentiles))
	for i, p := range percentiles {
		percData[i] = PercentileData{
			Percentile: p,
			Value:      f.FormatRate(t.Percentile(float64(p))),
		}
	}

	var bucketData []BucketData
	for _, b := range t.Buckets() {
		var rateRange string
		if b.RangeStart == 0 {
			rateRange = "< " + f.FormatRate(b.RangeEnd)
		} else if b.RangeEnd == -1 {
			rateRange = "> " + f.FormatRate(b.RangeStart)
		} else {
			rateRange = f.FormatRate(b.RangeStart) + " - " + f.FormatRate(b.RangeEnd)
		}
		bucketData = append(bucketData, BucketData{
			Range:      rateRange,
			Count:      b.Count,
			Percentage: b.Percentage,
			BarWidth:   int(b.Percentage),
		})
	}

	title := cfg.Name
	if title == "" {
		title = "Throughput Report"
	}

	return HTMLReport{
		Title:       title,
		Timestamp:   time.Now().Format(time.RFC1123),
		Samples:     t.Count(),
		Mean:        f.FormatRate(t.Mean()),
		StdDev:      f.FormatRate(t.StdDev()),
		Min:         f.FormatRate(t.Min()),
		Max:         f.FormatRate(t.Max()),
		Percentiles: percData,
		Buckets:     bucketData,
		Precision:   cfg.Settings.Precision,
	}
}

const htmlTemplate = `<!DOCTYPE html>
<html lang="en">
<head>
    <meta charset="UTF-8">
    <meta name="viewport" content="width=device-width, initial-scale=1.0">
    <title>{{.Title}}</title>
    <style>
        :root {
            --bg: #0f1117;
            --bg-secondary: #1a1d27;
            --border: #2a2e3d;
            --text: #e4e6eb;
            --text-secondary: #9ca0ab;
            --accent: #4f8ef7;
        }

        * { margin: 0; padding: 0; box-sizing: border-box; }

        body {
            font-family: -apple-system, BlinkMacSystemFont, 'Segoe UI', Roboto, sans-serif;
            background: var(--bg);
            color: var(--text);
            padding: 2rem;
        }

        .container { max-width: 900px; margin: 0 auto; }

        header {
            text-align: center;
            margin-bottom: 2rem;
            padding-bottom: 1rem;
            border-bottom: 1px solid var(--border);
        }

        h1 { font-size: 2rem; font-weight: 600; margin-bottom: 0.5rem; }
        h2 { font-size: 1.1rem; font-weight: 600; margin: 1.5rem 0 0.75rem; }

        .timestamp { color: var(--text-secondary); font-size: 0.9rem; }

        .summary-grid {
            display: grid;
            grid-template-columns: repeat(auto-fit, minmax(180px, 1fr));
            gap: 1rem;
            margin-bottom: 1rem;
        }

        .summary-card {
            background: var(--bg-secondary);
            border: 1px solid var(--border);
            border-radius: 8px;
            padding: 1.25rem;
        }

        .summary-card h3 {
            font-size: 0.8rem;
            color: var(--text-secondary);
            text-transform: uppercase;
            letter-spacing: 0.05em;
            margin-bottom: 0.5rem;
        }

        .summary-card .value { font-size: 1.5rem; font-weight: 600; }
        .summary-card .value.accent { color: var(--accent); }

        table {
            width: 100%;
            border-collapse: collapse;
            background: var(--bg-secondary);
            border: 1px solid var(--border);
            border-radius: 8px;
        }

        th, td {
            text-align: left;
            padding: 0.6rem 1rem;
            border-bottom: 1px solid var(--border);
            font-size: 0.9rem;
        }

        th { color: var(--text-secondary); font-weight: 500; }

        .bar {
            display: inline-block;
            height: 0.75rem;
            background: var(--accent);
            border-radius: 2px;
            vertical-align: middle;
        }
    </style>
</head>
<body>
    <div class="container">
        <header>
            <h1>{{.Title}}</h1>
            <div class="timestamp">{{.Timestamp}} &middot; {{.Samples}} samples &middot; {{.Precision}} significant digits</div>
        </header>

        <div class="summary-grid">
            <div class="summary-card">
                <h3>Mean</h3>
                <div class="value accent">{{.Mean}}</div>
            </div>
            <div class="summary-card">
                <h3>Std Dev</h3>
                <div class="value">{{.StdDev}}</div>
            </div>
            <div class="summary-card">
                <h3>Min</h3>
                <div class="value">{{.Min}}</div>
            </div>
            <div class="summary-card">
                <h3>Max</h3>
                <div class="value">{{.Max}}</div>
            </div>
        </div>

        <h2>Rate Distribution</h2>
        <table>
            <tr><th>Percentile</th><th>Throughput</th></tr>
            {{range .Percentiles}}
            <tr><td>{{.Percentile}}%</td><td>{{.Value}}</td></tr>
            {{end}}
        </table>

        {{if .Buckets}}
        <h2>Histogram</h2>
        <table>
            <tr><th>Range</th><th>Count</th><th>Share</th></tr>
            {{range .Buckets}}
            <tr>
                <td>{{.Range}}</td>
                <td>{{.Count}}</td>
                <td><span class="bar" style="width: {{.BarWidth}}px"></span> {{printf "%.2f" .Percentage}}%</td>
            </tr>
            {{end}}
        </table>
        {{end}}
    </div>
</body>
</html>
`
