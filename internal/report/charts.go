package report

import (
	"fmt"
	"os"
	"path/filepath"
	"sort"

	"github.com/wcharczuk/go-chart/v2"

	"github.com/lanternsec/secsweep/internal/stats"
)

// Charts holds the rendered image paths relative to the report output
// directory, as referenced from the HTML template.
type Charts struct {
	Severity string
	Tools    string
}

// RenderCharts writes the severity-distribution and per-tool bar charts as
// PNG files under charts/. Rendering errors abort the report run.
func (g *Generator) RenderCharts(st stats.Stats) (Charts, error) {
	chartDir := filepath.Join(g.outputDir, "charts")
	if err := os.MkdirAll(chartDir, 0755); err != nil {
		return Charts{}, fmt.Errorf("create chart dir: %w", err)
	}

	sevBars := make([]chart.Value, 0, len(severityOrder))
	for _, sev := range severityOrder {
		sevBars = append(sevBars, chart.Value{
			Label: sev,
			Value: float64(st.BySeverity[sev]),
		})
	}
	if err := renderBarChart("Findings by Severity", sevBars, filepath.Join(chartDir, "severity_distribution.png")); err != nil {
		return Charts{}, err
	}

	tools := make([]string, 0, len(st.ByTool))
	for tool := range st.ByTool {
		tools = append(tools, tool)
	}
	sort.Strings(tools)

	var toolBars []chart.Value
	for _, tool := range tools {
		toolBars = append(toolBars, chart.Value{
			Label: tool,
			Value: float64(st.ByTool[tool]),
		})
	}
	if len(toolBars) == 0 {
		toolBars = []chart.Value{{Label: "none", Value: 0}}
	}
	if err := renderBarChart("Findings by Tool", toolBars, filepath.Join(chartDir, "tool_counts.png")); err != nil {
		return Charts{}, err
	}

	return Charts{
		Severity: filepath.Join("charts", "severity_distribution.png"),
		Tools:    filepath.Join("charts", "tool_counts.png"),
	}, nil
}

func renderBarChart(title string, bars []chart.Value, path string) error {
	maxVal := 1.0
	for _, b := range bars {
		if b.Value > maxVal {
			maxVal = b.Value
		}
	}

	graph := chart.BarChart{
		Title:    title,
		Width:    640,
		Height:   400,
		BarWidth: 60,
		Background: chart.Style{
			Padding: chart.Box{Top: 40},
		},
		XAxis: chart.Style{},
		YAxis: chart.YAxis{
			Range: &chart.ContinuousRange{Min: 0, Max: maxVal},
		},
		Bars: bars,
	}

	f, err := os.Create(path)
	if err != nil {
		return fmt.Errorf("create chart file: %w", err)
	}
	defer f.Close()

	if err := graph.Render(chart.PNG, f); err != nil {
		return fmt.Errorf("render %s: %w", filepath.Base(path), err)
	}
	return nil
}
