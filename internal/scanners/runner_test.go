package scanners

import (
	"os"
	"regexp"
	"testing"

	"go.uber.org/zap"
)

var resultNameRx = regexp.MustCompile(`_results_\d{8}_\d{6}\.json$`)

func testRunner(t *testing.T) *Runner {
	t.Helper()
	return NewRunner(zap.NewNop().Sugar(), t.TempDir(), t.TempDir())
}

func TestRunUnsupportedType(t *testing.T) {
	tests := []string{"bogus", "SAST", "", "static-analysis"}

	for _, typ := range tests {
		t.Run("type_"+typ, func(t *testing.T) {
			if ok := testRunner(t).Run(typ); ok {
				t.Errorf("Run(%q) = true, want false", typ)
			}
		})
	}
}

func TestRunRecognizedTypes(t *testing.T) {
	// With an empty target tree and no tools on PATH every category is a
	// soft skip, so dispatch must still report success.
	for _, typ := range []string{"sast", "dast", "sca", "iac", "container", "secret", "all"} {
		t.Run("type_"+typ, func(t *testing.T) {
			if ok := testRunner(t).Run(typ); !ok {
				t.Errorf("Run(%q) = false, want true", typ)
			}
		})
	}
}

func TestDependencyScanNoManifests(t *testing.T) {
	r := testRunner(t)
	// Must return quietly without writing anything.
	r.runDependencyScan()

	entries, err := os.ReadDir(r.outputDir)
	if err != nil {
		t.Fatal(err)
	}
	if len(entries) != 0 {
		t.Errorf("expected empty output dir, found %d entries", len(entries))
	}
}

func TestResultPath(t *testing.T) {
	r := NewRunner(zap.NewNop().Sugar(), ".", "/tmp/out")

	got := r.resultPath("semgrep", "")
	if matched := resultNameRx.MatchString(got); !matched {
		t.Errorf("resultPath = %q, want tool_results_timestamp.json form", got)
	}

	got = r.resultPath("trivy", "requirements_txt")
	if !resultNameRx.MatchString(got) {
		t.Errorf("resultPath with suffix = %q", got)
	}
}

func TestSanitizeName(t *testing.T) {
	tests := []struct {
		in   string
		want string
	}{
		{"requirements.txt", "requirements_txt"},
		{"Dockerfile", "Dockerfile"},
		{"a/b:c", "a_b_c"},
	}
	for _, tt := range tests {
		if got := sanitizeName(tt.in); got != tt.want {
			t.Errorf("sanitizeName(%q) = %q, want %q", tt.in, got, tt.want)
		}
	}
}
