package scanners

import (
	"fmt"
	"os/exec"
	"path/filepath"

	"github.com/lanternsec/secsweep/internal/discovery"
)

// runDependencyScan checks every dependency manifest under the target with
// trivy. Finding no manifests is a skip, not a failure.
func (r *Runner) runDependencyScan() {
	manifests, err := discovery.Manifests(r.target)
	if err != nil {
		r.log.Errorw("manifest discovery failed", "error", err)
		return
	}
	if len(manifests) == 0 {
		r.log.Warnf("no dependency manifests found under %s, skipping dependency scan", r.target)
		return
	}

	for _, manifest := range manifests {
		// A missing binary will not come back on the next manifest.
		if !r.toolAvailable("trivy", "install it from https://trivy.dev to enable dependency scanning") {
			return
		}

		out := r.resultPath("trivy", sanitizeName(filepath.Base(manifest)))
		r.log.Infof("scanning dependencies in %s", manifest)

		cmd := exec.Command("trivy", "fs",
			"--scanners", "vuln",
			"--format", "json",
			"--output", out,
			filepath.Dir(manifest),
		)
		if output, err := cmd.CombinedOutput(); err != nil {
			r.log.Errorw("trivy dependency scan failed", "manifest", manifest, "error", err, "output", string(output))
			continue
		}
		r.log.Infow("dependency scan complete", "manifest", manifest, "results", out)
	}
}

// runContainerScan builds each Dockerfile into a throwaway image and scans it
// with trivy. A failed build aborts that Dockerfile only.
func (r *Runner) runContainerScan() {
	dockerfiles, err := discovery.Dockerfiles(r.target)
	if err != nil {
		r.log.Errorw("dockerfile discovery failed", "error", err)
		return
	}
	if len(dockerfiles) == 0 {
		r.log.Warnf("no Dockerfiles found under %s, skipping container scan", r.target)
		return
	}

	for i, dockerfile := range dockerfiles {
		if !r.toolAvailable("docker", "install Docker to enable container scanning") {
			return
		}
		if !r.toolAvailable("trivy", "install it from https://trivy.dev to enable container scanning") {
			return
		}

		tag := fmt.Sprintf("secsweep-scan-%d", i)
		r.log.Infof("building image from %s", dockerfile)

		build := exec.Command("docker", "build",
			"-f", dockerfile,
			"-t", tag,
			filepath.Dir(dockerfile),
		)
		if output, err := build.CombinedOutput(); err != nil {
			r.log.Errorw("image build failed", "dockerfile", dockerfile, "error", err, "output", string(output))
			continue
		}

		out := r.resultPath("trivy", sanitizeName(filepath.Base(dockerfile)))
		scan := exec.Command("trivy", "image",
			"--format", "json",
			"--output", out,
			tag,
		)
		if output, err := scan.CombinedOutput(); err != nil {
			r.log.Errorw("trivy image scan failed", "image", tag, "error", err, "output", string(output))
			continue
		}
		r.log.Infow("container scan complete", "dockerfile", dockerfile, "results", out)
	}
}
