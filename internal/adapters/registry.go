// Package adapters converts tool-specific JSON result files into the
// canonical Finding shape.
package adapters

import (
	"os"
	"path/filepath"
	"strings"

	"go.uber.org/zap"

	"github.com/lanternsec/secsweep/internal/schema"
)

// Tool identifies a supported scanner output format.
type Tool string

const (
	ToolTrivy    Tool = "trivy"
	ToolSemgrep  Tool = "semgrep"
	ToolNuclei   Tool = "nuclei"
	ToolKICS     Tool = "kics"
	ToolGitleaks Tool = "gitleaks"
)

// ParseFunc turns one tool's raw JSON into findings.
type ParseFunc func(data []byte) ([]schema.Finding, error)

// Collector walks a results directory and normalizes every recognized file.
// Parse failures are isolated per file: a broken file contributes zero
// findings and the pass continues.
type Collector struct {
	log     *zap.SugaredLogger
	parsers map[Tool]ParseFunc
}

func NewCollector(log *zap.SugaredLogger) *Collector {
	return &Collector{
		log: log,
		parsers: map[Tool]ParseFunc{
			ToolTrivy:    ParseTrivy,
			ToolSemgrep:  ParseSemgrep,
			ToolNuclei:   ParseNuclei,
			ToolKICS:     ParseKICS,
			ToolGitleaks: ParseGitleaks,
		},
	}
}

// toolOrder fixes resolution order; map iteration would make a name matching
// two tool substrings resolve differently between runs.
var toolOrder = []Tool{ToolTrivy, ToolSemgrep, ToolNuclei, ToolKICS, ToolGitleaks}

// Identify resolves a result file name to its tool by case-insensitive
// substring match. When several tools match, the one appearing earliest in
// the name wins: result files are named "{tool}_...", so the prefix is the
// producing tool even if a path fragment later in the name echoes another.
func (c *Collector) Identify(name string) (Tool, bool) {
	lower := strings.ToLower(name)
	var best Tool
	bestIdx := -1
	for _, tool := range toolOrder {
		idx := strings.Index(lower, string(tool))
		if idx >= 0 && (bestIdx == -1 || idx < bestIdx) {
			best, bestIdx = tool, idx
		}
	}
	return best, bestIdx >= 0
}

// Collect returns the union of findings across all recognized files under
// resultsDir, in file-iteration order.
func (c *Collector) Collect(resultsDir string) ([]schema.Finding, error) {
	var findings []schema.Finding

	err := filepath.WalkDir(resultsDir, func(path string, d os.DirEntry, err error) error {
		if err != nil {
			return err
		}
		if d.IsDir() {
			return nil
		}

		tool, ok := c.Identify(d.Name())
		if !ok {
			c.log.Warnf("unrecognized result file %s, skipping", d.Name())
			return nil
		}

		data, err := os.ReadFile(path)
		if err != nil {
			c.log.Errorw("cannot read result file", "file", path, "error", err)
			return nil
		}

		parsed, err := c.parsers[tool](data)
		if err != nil {
			c.log.Errorw("cannot parse result file", "file", path, "tool", tool, "error", err)
			return nil
		}
		findings = append(findings, parsed...)
		return nil
	})
	if err != nil {
		return nil, err
	}
	return findings, nil
}

// orUnknown substitutes the literal "Unknown" for empty fields.
func orUnknown(s string) string {
	if strings.TrimSpace(s) == "" {
		return "Unknown"
	}
	return s
}

// normalizeSeverity maps a tool severity onto the canonical set.
func normalizeSeverity(s string) string {
	switch strings.ToUpper(strings.TrimSpace(s)) {
	case "CRITICAL":
		return schema.SeverityCritical
	case "HIGH":
		return schema.SeverityHigh
	case "MEDIUM":
		return schema.SeverityMedium
	case "LOW", "INFO":
		return schema.SeverityLow
	default:
		return schema.SeverityUnknown
	}
}

func safeLine(n int) int {
	if n < 0 {
		return 0
	}
	return n
}
