// Package discovery locates scan inputs on disk: dependency manifests,
// Dockerfiles, and infrastructure-as-code directories.
package discovery

import (
	"bufio"
	"os"
	"path/filepath"
	"strings"
)

// manifestNames are dependency manifests recognized for SCA scans.
var manifestNames = map[string]bool{
	"requirements.txt": true,
	"package.json":     true,
	"go.mod":           true,
	"Gemfile.lock":     true,
	"pom.xml":          true,
}

// skipDirs are directories never worth descending into.
var skipDirs = map[string]bool{
	"node_modules": true,
	".git":         true,
	"vendor":       true,
}

// Manifests returns all dependency manifest files under root.
func Manifests(root string) ([]string, error) {
	return walk(root, func(path string, name string) bool {
		return manifestNames[name]
	})
}

// Dockerfiles returns all Dockerfiles under root. Both the plain name and
// the "Dockerfile.<variant>" convention are matched.
func Dockerfiles(root string) ([]string, error) {
	return walk(root, func(path string, name string) bool {
		return name == "Dockerfile" || strings.HasPrefix(name, "Dockerfile.")
	})
}

// IaCDirs returns directories under root that contain Terraform files or
// Kubernetes manifests. Each directory is listed once.
func IaCDirs(root string) ([]string, error) {
	seen := map[string]bool{}
	var dirs []string

	files, err := walk(root, func(path string, name string) bool {
		if strings.HasSuffix(name, ".tf") {
			return true
		}
		if strings.HasSuffix(name, ".yaml") || strings.HasSuffix(name, ".yml") {
			return isKubernetesManifest(path)
		}
		return false
	})
	if err != nil {
		return nil, err
	}

	for _, f := range files {
		dir := filepath.Dir(f)
		if !seen[dir] {
			seen[dir] = true
			dirs = append(dirs, dir)
		}
	}
	return dirs, nil
}

func walk(root string, match func(path, name string) bool) ([]string, error) {
	var out []string
	err := filepath.WalkDir(root, func(path string, d os.DirEntry, err error) error {
		if err != nil {
			return nil
		}
		if d.IsDir() {
			if skipDirs[d.Name()] {
				return filepath.SkipDir
			}
			return nil
		}
		if match(path, d.Name()) {
			out = append(out, path)
		}
		return nil
	})
	if err != nil {
		return nil, err
	}
	return out, nil
}

// isKubernetesManifest reports whether a YAML file looks like a Kubernetes
// manifest, by scanning for a top-level apiVersion line.
func isKubernetesManifest(path string) bool {
	f, err := os.Open(path)
	if err != nil {
		return false
	}
	defer f.Close()

	scanner := bufio.NewScanner(f)
	for scanner.Scan() {
		line := strings.TrimSpace(scanner.Text())
		if strings.HasPrefix(line, "apiVersion:") {
			return true
		}
	}
	return false
}
