package report

import (
	"bytes"
	"fmt"
	"html/template"
	"os"
	"path/filepath"
	"time"

	"github.com/lanternsec/secsweep/internal/schema"
	"github.com/lanternsec/secsweep/internal/stats"
)

const reportHTMLTemplate = `<!DOCTYPE html>
<html lang="en">
<head>
<meta charset="utf-8">
<title>Security Scan Report</title>
<style>
  body { font-family: -apple-system, "Segoe UI", sans-serif; margin: 2rem auto; max-width: 70rem; color: #1f2933; }
  h1 { border-bottom: 3px solid #334e68; padding-bottom: .5rem; }
  .buckets { display: flex; gap: 1rem; margin: 1.5rem 0; }
  .bucket { flex: 1; border-radius: 8px; padding: 1rem; color: #fff; text-align: center; }
  .bucket .count { font-size: 2rem; font-weight: bold; }
  .bucket.high { background: #c0392b; }
  .bucket.medium { background: #e67e22; }
  .bucket.low { background: #27ae60; }
  .charts img { max-width: 48%; border: 1px solid #d9e2ec; }
  table { border-collapse: collapse; width: 100%; margin-top: 1rem; }
  th, td { border: 1px solid #d9e2ec; padding: .5rem .6rem; text-align: left; font-size: .9rem; }
  th { background: #334e68; color: #fff; }
  tr:nth-child(even) { background: #f5f7fa; }
  .sev-Critical { color: #7b1113; font-weight: bold; }
  .sev-High { color: #c0392b; font-weight: bold; }
  .sev-Medium { color: #b9770e; }
  .sev-Low { color: #1e8449; }
  footer { margin-top: 2rem; color: #829ab1; font-size: .8rem; }
</style>
</head>
<body>
<h1>Security Scan Report</h1>
<p>Generated {{.GeneratedAt}} &middot; {{.Total}} finding(s)</p>

<div class="buckets">
  <div class="bucket high"><div class="count">{{.HighCount}}</div>High &amp; Critical</div>
  <div class="bucket medium"><div class="count">{{.MediumCount}}</div>Medium</div>
  <div class="bucket low"><div class="count">{{.LowCount}}</div>Low</div>
</div>

<div class="charts">
  <img src="{{.SeverityChart}}" alt="Findings by severity">
  <img src="{{.ToolChart}}" alt="Findings by tool">
</div>

<h2>Findings by Tool</h2>
<table>
<tr><th>Tool</th><th>Count</th></tr>
{{range $tool, $count := .ByTool}}<tr><td>{{$tool}}</td><td>{{$count}}</td></tr>
{{end}}
</table>

{{if .ByType}}
<h2>Recurring Finding Types</h2>
<table>
<tr><th>Type</th><th>Count</th></tr>
{{range $type, $count := .ByType}}<tr><td>{{$type}}</td><td>{{$count}}</td></tr>
{{end}}
</table>
{{end}}

<h2>All Findings</h2>
<table>
<tr><th>Severity</th><th>Tool</th><th>Type</th><th>File</th><th>Line</th><th>Description</th><th>CWE</th><th>Fix</th></tr>
{{range .Findings}}<tr>
<td class="sev-{{.Severity}}">{{.Severity}}</td>
<td>{{.Tool}}</td><td>{{.Type}}</td><td>{{.File}}</td><td>{{.Line}}</td>
<td>{{.Description}}</td><td>{{.CWE}}</td><td>{{.Fix}}</td>
</tr>
{{end}}
</table>

<footer>secsweep &middot; {{.Year}}</footer>
</body>
</html>
`

type htmlView struct {
	GeneratedAt   string
	Total         int
	HighCount     int
	MediumCount   int
	LowCount      int
	ByTool        map[string]int
	ByType        map[string]int
	SeverityChart string
	ToolChart     string
	Findings      []schema.Finding
	Year          int
}

// HTML renders the findings table and summary buckets into a timestamped
// HTML file and returns its path.
func (g *Generator) HTML(findings []schema.Finding, st stats.Stats, charts Charts) (string, error) {
	now := time.Now()
	view := htmlView{
		GeneratedAt: now.Format(time.RFC1123),
		Total:       st.Total,
		HighCount:   st.BySeverity[schema.SeverityHigh] + st.BySeverity[schema.SeverityCritical],
		MediumCount: st.BySeverity[schema.SeverityMedium],
		LowCount:    st.BySeverity[schema.SeverityLow],
		ByTool:      st.ByTool,
		ByType:      st.ByType,
		// Chart paths are relative so the report directory can move as a unit.
		SeverityChart: filepath.ToSlash(charts.Severity),
		ToolChart:     filepath.ToSlash(charts.Tools),
		Findings:      sortBySeverity(findings),
		Year:          now.Year(),
	}

	tmpl, err := template.New("report").Parse(reportHTMLTemplate)
	if err != nil {
		return "", fmt.Errorf("parse template: %w", err)
	}

	var buf bytes.Buffer
	if err := tmpl.Execute(&buf, view); err != nil {
		return "", fmt.Errorf("execute template: %w", err)
	}

	path := filepath.Join(g.outputDir, fmt.Sprintf("security_report_%s.html", reportStamp()))
	if err := os.WriteFile(path, buf.Bytes(), 0644); err != nil {
		return "", fmt.Errorf("write report: %w", err)
	}
	return path, nil
}
