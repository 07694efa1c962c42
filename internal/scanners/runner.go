// Package scanners invokes external security tools as child processes and
// writes their native JSON output into a results directory.
package scanners

import (
	"fmt"
	"os"
	"os/exec"
	"path/filepath"
	"time"

	"go.uber.org/zap"
)

// Category is a requested scan category.
type Category string

const (
	CategorySAST      Category = "sast"
	CategoryDAST      Category = "dast"
	CategorySCA       Category = "sca"
	CategoryIaC       Category = "iac"
	CategoryContainer Category = "container"
	CategorySecret    Category = "secret"
	CategoryAll       Category = "all"
)

// Runner dispatches scan categories to tool invocations. Individual tool and
// file failures are logged and skipped; only an unknown category fails the run.
type Runner struct {
	log       *zap.SugaredLogger
	target    string
	outputDir string
}

func NewRunner(log *zap.SugaredLogger, target, outputDir string) *Runner {
	return &Runner{log: log, target: target, outputDir: outputDir}
}

// Run executes all tools for the given category. It returns false only for
// an unrecognized category; tool failures are soft.
func (r *Runner) Run(category string) bool {
	var steps []func()
	switch Category(category) {
	case CategorySAST:
		steps = []func(){r.runSemgrep}
	case CategoryDAST:
		steps = []func(){r.runNuclei}
	case CategorySCA:
		steps = []func(){r.runDependencyScan}
	case CategoryIaC:
		steps = []func(){r.runKICS}
	case CategoryContainer:
		steps = []func(){r.runContainerScan}
	case CategorySecret:
		steps = []func(){r.runGitleaks}
	case CategoryAll:
		steps = []func(){
			r.runSemgrep,
			r.runNuclei,
			r.runDependencyScan,
			r.runKICS,
			r.runContainerScan,
			r.runGitleaks,
		}
	default:
		r.log.Errorf("unsupported scan type %q", category)
		return false
	}

	if err := os.MkdirAll(r.outputDir, 0755); err != nil {
		r.log.Errorw("failed to create output directory", "dir", r.outputDir, "error", err)
		return false
	}
	for _, step := range steps {
		step()
	}
	return true
}

// resultPath builds the timestamped output file name for a tool. An optional
// suffix distinguishes per-manifest runs of the same tool.
func (r *Runner) resultPath(tool, suffix string) string {
	stamp := time.Now().Format("20060102_150405")
	name := tool
	if suffix != "" {
		name = tool + "_" + suffix
	}
	return filepath.Join(r.outputDir, fmt.Sprintf("%s_results_%s.json", name, stamp))
}

// toolAvailable checks PATH for the executable and logs a remediation hint
// when it is missing.
func (r *Runner) toolAvailable(name, hint string) bool {
	if _, err := exec.LookPath(name); err != nil {
		r.log.Warnf("%s not found in PATH; %s", name, hint)
		return false
	}
	return true
}

// sanitizeName replaces path characters so a file name can be embedded in
// another file name.
func sanitizeName(s string) string {
	rs := []rune(s)
	for i, c := range rs {
		switch c {
		case '/', '\\', ':', '*', '?', '"', '<', '>', '|', '.':
			rs[i] = '_'
		}
	}
	return string(rs)
}
