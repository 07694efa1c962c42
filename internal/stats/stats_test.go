package stats

import (
	"testing"

	"github.com/lanternsec/secsweep/internal/schema"
)

func TestSeverityCountsSumToTotal(t *testing.T) {
	findings := []schema.Finding{
		{Tool: "trivy", Severity: schema.SeverityCritical, Type: "Vulnerable Package"},
		{Tool: "trivy", Severity: schema.SeverityHigh, Type: "Vulnerable Package"},
		{Tool: "semgrep", Severity: schema.SeverityHigh, Type: "rule.a"},
		{Tool: "gitleaks", Severity: schema.SeverityCritical, Type: "Hardcoded Secret"},
		{Tool: "kics", Severity: "Bogus", Type: "query"},
	}

	st := Compute(findings)
	if st.Total != len(findings) {
		t.Fatalf("Total = %d, want %d", st.Total, len(findings))
	}

	sum := 0
	for _, n := range st.BySeverity {
		sum += n
	}
	if sum != st.Total {
		t.Errorf("severity counts sum to %d, want %d", sum, st.Total)
	}

	sum = 0
	for _, n := range st.ByTool {
		sum += n
	}
	if sum != st.Total {
		t.Errorf("tool counts sum to %d, want %d", sum, st.Total)
	}
}

func TestByTypeThreshold(t *testing.T) {
	var findings []schema.Finding
	add := func(typ string, n int) {
		for i := 0; i < n; i++ {
			findings = append(findings, schema.Finding{Tool: "t", Severity: schema.SeverityLow, Type: typ})
		}
	}
	add("A", 2)
	add("B", 3)
	add("C", 5)

	st := Compute(findings)
	if _, ok := st.ByType["A"]; ok {
		t.Error("type A with 2 occurrences should be excluded")
	}
	if st.ByType["B"] != 3 {
		t.Errorf("ByType[B] = %d, want 3", st.ByType["B"])
	}
	if st.ByType["C"] != 5 {
		t.Errorf("ByType[C] = %d, want 5", st.ByType["C"])
	}
	if len(st.ByType) != 2 {
		t.Errorf("ByType has %d entries, want 2", len(st.ByType))
	}
}

func TestComputeEmpty(t *testing.T) {
	st := Compute(nil)
	if st.Total != 0 {
		t.Errorf("Total = %d, want 0", st.Total)
	}
	if len(st.BySeverity) != 0 || len(st.ByTool) != 0 || len(st.ByType) != 0 {
		t.Error("expected empty groupings for empty input")
	}
}
