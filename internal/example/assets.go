package example

import (
	"os"
	"path/filepath"
	"regexp"
)

var (
	// assets_folder / "mesh.obj"
	assetJoinPattern = regexp.MustCompile(`assets_folder\s*/\s*["']([^"']+)["']`)
	// "assets/mesh.obj" or "figures/plot.png"
	assetPathPattern = regexp.MustCompile(`["'](?:assets|figures)/([^"']+)["']`)
)

// Probe order: assets wins over figures when a filename exists in both.
var assetDirs = []string{"assets", "figures"}

// ResolveAssets scans example source text for asset references and resolves
// each candidate filename against the known asset subdirectories of srcDir.
// The result is deduplicated by resolved path, in first-seen order.
// References that do not exist on disk are dropped without complaint; asset
// copying is best-effort, not authoritative.
func ResolveAssets(srcDir, content string) []string {
	var resolved []string
	seen := make(map[string]struct{})

	add := func(name string) {
		for _, sub := range assetDirs {
			path := filepath.Join(srcDir, sub, name)
			if _, err := os.Stat(path); err != nil {
				continue
			}
			if _, ok := seen[path]; !ok {
				seen[path] = struct{}{}
				resolved = append(resolved, path)
			}
			return
		}
	}

	for _, m := range assetJoinPattern.FindAllStringSubmatch(content, -1) {
		add(m[1])
	}
	for _, m := range assetPathPattern.FindAllStringSubmatch(content, -1) {
		add(m[1])
	}
	return resolved
}
