// Package materialize synthesizes a self-contained repository directory for
// one example: entry point, README, assets, dependency manifest, ignore file.
package materialize

import (
	"fmt"
	"os"
	"path/filepath"

	"github.com/vuer-ai/vuer-split/internal/clean"
	"github.com/vuer-ai/vuer-split/internal/example"
)

const (
	entryPointName = "main.py"
	readmeName     = "README.md"
	assetsDirName  = "assets"
	manifestName   = "requirements.txt"
	ignoreName     = ".gitignore"
)

// Result reports what Build produced.
type Result struct {
	RepoDir     string
	ReadmeTitle string
	AssetCount  int
}

// Build materializes ex into repoDir. srcDir is the examples directory the
// source was discovered in; asset references resolve relative to it.
// Directory creation is idempotent, so reruns overwrite a previous layout.
func Build(repoDir, srcDir string, ex example.Example) (Result, error) {
	res := Result{RepoDir: repoDir}

	if err := os.MkdirAll(repoDir, 0o755); err != nil {
		return res, fmt.Errorf("create repo dir: %w", err)
	}

	src, err := os.ReadFile(ex.SourcePath)
	if err != nil {
		return res, fmt.Errorf("read example source: %w", err)
	}

	cleaned := clean.Strip(string(src))
	if err := os.WriteFile(filepath.Join(repoDir, entryPointName), []byte(cleaned), 0o644); err != nil {
		return res, fmt.Errorf("write %s: %w", entryPointName, err)
	}

	readme, err := buildReadme(ex)
	if err != nil {
		return res, err
	}
	if err := os.WriteFile(filepath.Join(repoDir, readmeName), []byte(readme), 0o644); err != nil {
		return res, fmt.Errorf("write %s: %w", readmeName, err)
	}
	res.ReadmeTitle = Title([]byte(readme))

	assets := example.ResolveAssets(srcDir, string(src))
	if len(assets) > 0 {
		dir := filepath.Join(repoDir, assetsDirName)
		if err := os.MkdirAll(dir, 0o755); err != nil {
			return res, fmt.Errorf("create assets dir: %w", err)
		}
		for _, asset := range assets {
			// Collisions between identical filenames from distinct
			// source paths are last-write-wins.
			if err := copyFile(asset, filepath.Join(dir, filepath.Base(asset))); err != nil {
				return res, err
			}
		}
	}
	res.AssetCount = len(assets)

	if err := os.WriteFile(filepath.Join(repoDir, manifestName), []byte(Manifest(string(src))), 0o644); err != nil {
		return res, fmt.Errorf("write %s: %w", manifestName, err)
	}
	if err := os.WriteFile(filepath.Join(repoDir, ignoreName), []byte(gitignoreBody), 0o644); err != nil {
		return res, fmt.Errorf("write %s: %w", ignoreName, err)
	}
	return res, nil
}

func copyFile(src, dst string) error {
	data, err := os.ReadFile(src)
	if err != nil {
		return fmt.Errorf("read asset %s: %w", src, err)
	}
	if err := os.WriteFile(dst, data, 0o644); err != nil {
		return fmt.Errorf("copy asset to %s: %w", dst, err)
	}
	return nil
}
