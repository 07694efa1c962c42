package scanners

import (
	"os/exec"
)

// runNuclei performs the dynamic-analysis scan. The target is passed through
// as-is; nuclei accepts URLs and hostnames.
func (r *Runner) runNuclei() {
	if !r.toolAvailable("nuclei", "install it from https://github.com/projectdiscovery/nuclei to enable dynamic analysis") {
		return
	}

	out := r.resultPath("nuclei", "")
	r.log.Infof("running nuclei against %s", r.target)

	cmd := exec.Command("nuclei",
		"-target", r.target,
		"-json-export", out,
	)
	if output, err := cmd.CombinedOutput(); err != nil {
		r.log.Errorw("nuclei scan failed", "error", err, "output", string(output))
		return
	}
	r.log.Infow("nuclei scan complete", "results", out)
}
