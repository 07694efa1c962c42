// Package stats derives aggregate counts from a finding collection.
package stats

import (
	"github.com/lanternsec/secsweep/internal/schema"
)

// minTypeCount is the threshold below which a finding type is dropped from
// the by-type grouping.
const minTypeCount = 3

// Stats is a recomputed-on-demand aggregate. It carries no state between
// report runs.
type Stats struct {
	Total      int            `json:"total_findings"`
	BySeverity map[string]int `json:"by_severity"`
	ByTool     map[string]int `json:"by_tool"`
	ByType     map[string]int `json:"by_type"`
}

// Compute recalculates everything from scratch over the full collection.
func Compute(findings []schema.Finding) Stats {
	st := Stats{
		Total:      len(findings),
		BySeverity: map[string]int{},
		ByTool:     map[string]int{},
		ByType:     map[string]int{},
	}

	typeCounts := map[string]int{}
	for _, f := range findings {
		st.BySeverity[f.Severity]++
		st.ByTool[f.Tool]++
		typeCounts[f.Type]++
	}
	for t, n := range typeCounts {
		if n >= minTypeCount {
			st.ByType[t] = n
		}
	}
	return st
}
