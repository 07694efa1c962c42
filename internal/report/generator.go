// Package report renders normalized findings as HTML or Markdown documents,
// with chart images alongside.
package report

import (
	"sort"
	"time"

	"go.uber.org/zap"

	"github.com/lanternsec/secsweep/internal/schema"
)

// Generator writes report artifacts into a single output directory.
type Generator struct {
	log       *zap.SugaredLogger
	outputDir string
}

func NewGenerator(log *zap.SugaredLogger, outputDir string) *Generator {
	return &Generator{log: log, outputDir: outputDir}
}

// severityOrder is the fixed bucket ordering used in summaries and charts.
var severityOrder = []string{
	schema.SeverityCritical,
	schema.SeverityHigh,
	schema.SeverityMedium,
	schema.SeverityLow,
	schema.SeverityUnknown,
}

// sortBySeverity returns a copy ordered Critical first, Unknown after Low,
// anything else last. The sort is stable so file-iteration order is kept
// within a bucket.
func sortBySeverity(findings []schema.Finding) []schema.Finding {
	sorted := make([]schema.Finding, len(findings))
	copy(sorted, findings)
	sort.SliceStable(sorted, func(i, j int) bool {
		return schema.SeverityRank(sorted[i].Severity) < schema.SeverityRank(sorted[j].Severity)
	})
	return sorted
}

func reportStamp() string {
	return time.Now().Format("2006-01-02_15-04-05")
}
