package scanners

import (
	"os"
	"os/exec"
	"path/filepath"

	"github.com/lanternsec/secsweep/internal/discovery"
)

// runKICS scans every infrastructure-as-code directory under the target with
// KICS via its Docker image. KICS exits non-zero when it finds issues, so the
// result file is collected regardless of exit status.
func (r *Runner) runKICS() {
	dirs, err := discovery.IaCDirs(r.target)
	if err != nil {
		r.log.Errorw("IaC discovery failed", "error", err)
		return
	}
	if len(dirs) == 0 {
		r.log.Warnf("no IaC directories found under %s, skipping IaC scan", r.target)
		return
	}

	for _, dir := range dirs {
		if !r.toolAvailable("docker", "install Docker to enable IaC scanning (KICS runs via checkmarx/kics)") {
			return
		}

		scanPath, err := filepath.Abs(dir)
		if err != nil {
			r.log.Errorw("cannot resolve IaC directory", "dir", dir, "error", err)
			continue
		}
		outDir, err := filepath.Abs(r.outputDir)
		if err != nil {
			r.log.Errorw("cannot resolve output directory", "error", err)
			return
		}

		r.log.Infof("running KICS against %s", dir)
		cmd := exec.Command("docker", "run", "--rm",
			"-v", scanPath+":/scan",
			"-v", outDir+":/output",
			"checkmarx/kics:latest",
			"scan", "-p", "/scan",
			"--report-formats", "json",
			"--output-path", "/output",
		)
		if output, err := cmd.CombinedOutput(); err != nil {
			r.log.Warnw("KICS exited with error", "dir", dir, "error", err, "output", string(output))
		}

		// KICS always writes results.json into the output path.
		raw := filepath.Join(r.outputDir, "results.json")
		if _, err := os.Stat(raw); err != nil {
			r.log.Errorw("KICS produced no results file", "dir", dir)
			continue
		}
		out := r.resultPath("kics", sanitizeName(filepath.Base(dir)))
		if err := os.Rename(raw, out); err != nil {
			r.log.Errorw("failed to move KICS results", "error", err)
			continue
		}
		r.log.Infow("IaC scan complete", "dir", dir, "results", out)
	}
}
