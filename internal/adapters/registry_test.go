package adapters

import (
	"os"
	"path/filepath"
	"testing"

	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"
	"go.uber.org/zap/zaptest/observer"
)

func testCollector() *Collector {
	return NewCollector(zap.NewNop().Sugar())
}

func TestIdentify(t *testing.T) {
	c := testCollector()

	tests := []struct {
		name     string
		file     string
		wantTool Tool
		wantOK   bool
	}{
		{"trivy_result", "trivy_results_20250101_120000.json", ToolTrivy, true},
		{"trivy_per_manifest", "trivy_requirements_txt_results_20250101_120000.json", ToolTrivy, true},
		{"case_insensitive", "SEMGREP_results_20250101_120000.json", ToolSemgrep, true},
		{"gitleaks", "gitleaks_results_20250101_120000.json", ToolGitleaks, true},
		{"unrecognized", "random_notes.json", "", false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			tool, ok := c.Identify(tt.file)
			if ok != tt.wantOK {
				t.Fatalf("Identify(%q) ok = %v, want %v", tt.file, ok, tt.wantOK)
			}
			if ok && tool != tt.wantTool {
				t.Errorf("Identify(%q) = %q, want %q", tt.file, tool, tt.wantTool)
			}
		})
	}
}

func TestIdentifyPrefersEarliestMatch(t *testing.T) {
	c := testCollector()

	// The producing tool is always the name prefix; a path fragment later in
	// the name (here an IaC dir called "trivy") must not win.
	tests := []struct {
		file string
		want Tool
	}{
		{"kics_trivy_results_20250101_120000.json", ToolKICS},
		{"trivy_kics_results_20250101_120000.json", ToolTrivy},
		{"gitleaks_semgrep_rules_results_20250101_120000.json", ToolGitleaks},
	}

	for _, tt := range tests {
		tool, ok := c.Identify(tt.file)
		if !ok {
			t.Fatalf("Identify(%q) not recognized", tt.file)
		}
		if tool != tt.want {
			t.Errorf("Identify(%q) = %q, want %q", tt.file, tool, tt.want)
		}
	}
}

func TestCollectWarnsOnUnrecognized(t *testing.T) {
	dir := t.TempDir()
	for _, name := range []string{"notes.json", "scan.log"} {
		if err := os.WriteFile(filepath.Join(dir, name), []byte("x"), 0644); err != nil {
			t.Fatal(err)
		}
	}

	core, logs := observer.New(zapcore.DebugLevel)
	c := NewCollector(zap.New(core).Sugar())

	findings, err := c.Collect(dir)
	if err != nil {
		t.Fatalf("Collect: %v", err)
	}
	if len(findings) != 0 {
		t.Fatalf("expected 0 findings, got %d", len(findings))
	}
	if warns := logs.FilterLevelExact(zapcore.WarnLevel).Len(); warns != 2 {
		t.Errorf("expected a warning per unrecognized file, got %d", warns)
	}
}

func TestCollectInvalidJSON(t *testing.T) {
	dir := t.TempDir()
	bad := filepath.Join(dir, "semgrep_results_20250101_120000.json")
	if err := os.WriteFile(bad, []byte("{not valid json"), 0644); err != nil {
		t.Fatal(err)
	}

	findings, err := testCollector().Collect(dir)
	if err != nil {
		t.Fatalf("Collect returned error for malformed file: %v", err)
	}
	if len(findings) != 0 {
		t.Errorf("expected 0 findings from malformed file, got %d", len(findings))
	}
}

func TestCollectSkipsUnrecognized(t *testing.T) {
	dir := t.TempDir()
	files := map[string]string{
		"notes.json": `{"whatever": true}`,
		"gitleaks_results_20250101_120000.json": `[
			{"Description": "AWS key", "File": "config.py", "StartLine": 3, "RuleID": "aws-access-key"}
		]`,
	}
	for name, content := range files {
		if err := os.WriteFile(filepath.Join(dir, name), []byte(content), 0644); err != nil {
			t.Fatal(err)
		}
	}

	findings, err := testCollector().Collect(dir)
	if err != nil {
		t.Fatalf("Collect: %v", err)
	}
	if len(findings) != 1 {
		t.Fatalf("expected 1 finding, got %d", len(findings))
	}
	if findings[0].Tool != "gitleaks" {
		t.Errorf("unexpected tool %q", findings[0].Tool)
	}
}

func TestCollectRecursive(t *testing.T) {
	dir := t.TempDir()
	sub := filepath.Join(dir, "nested")
	if err := os.MkdirAll(sub, 0755); err != nil {
		t.Fatal(err)
	}
	content := `{"results": [{"check_id": "rule.a", "path": "a.go", "start": {"line": 1},
		"extra": {"message": "m", "severity": "ERROR"}}]}`
	if err := os.WriteFile(filepath.Join(sub, "semgrep_results_20250101_120000.json"), []byte(content), 0644); err != nil {
		t.Fatal(err)
	}

	findings, err := testCollector().Collect(dir)
	if err != nil {
		t.Fatalf("Collect: %v", err)
	}
	if len(findings) != 1 {
		t.Errorf("expected nested result file to be collected, got %d findings", len(findings))
	}
}
