package scanners

import (
	"os/exec"
)

// runSemgrep performs static analysis over the target tree with semgrep's
// default ruleset, writing JSON straight to the results directory.
func (r *Runner) runSemgrep() {
	if !r.toolAvailable("semgrep", "install it with 'pip install semgrep' to enable static analysis") {
		return
	}

	out := r.resultPath("semgrep", "")
	r.log.Infof("running semgrep against %s", r.target)

	cmd := exec.Command("semgrep", "scan",
		"--config=auto",
		"--json",
		"--output", out,
		r.target,
	)
	if output, err := cmd.CombinedOutput(); err != nil {
		r.log.Errorw("semgrep scan failed", "error", err, "output", string(output))
		return
	}
	r.log.Infow("semgrep scan complete", "results", out)
}
