package scanners

import (
	"errors"
	"os/exec"
)

// runGitleaks scans the target tree for hardcoded secrets. Gitleaks exits
// with status 1 when leaks are found; that is a successful scan, not a
// failure.
func (r *Runner) runGitleaks() {
	if !r.toolAvailable("gitleaks", "install it (e.g. 'brew install gitleaks') to enable secret detection") {
		return
	}

	out := r.resultPath("gitleaks", "")
	r.log.Infof("running gitleaks against %s", r.target)

	cmd := exec.Command("gitleaks", "detect",
		"--source", r.target,
		"--report-path", out,
		"--no-banner",
	)
	output, err := cmd.CombinedOutput()
	if err != nil && !leaksFound(err) {
		r.log.Errorw("gitleaks scan failed", "error", err, "output", string(output))
		return
	}
	r.log.Infow("secret scan complete", "results", out)
}

// leaksFound reports whether gitleaks exited with status 1, its code for
// "leaks detected". Any other exit status is a real failure.
func leaksFound(err error) bool {
	var ee *exec.ExitError
	return errors.As(err, &ee) && ee.ExitCode() == 1
}
