// Package config resolves tool settings from environment variables and an
// optional .vuer-split.yaml overlay. Flags override both at the CLI layer.
package config

import (
	"fmt"
	"os"
	"path/filepath"

	"gopkg.in/yaml.v3"
)

// OverlayFile is looked up in the directory the tool runs from.
const OverlayFile = ".vuer-split.yaml"

type Config struct {
	// Source is the examples directory to scan.
	Source string `yaml:"source"`
	// Target is the root under which per-example repos are created.
	Target string `yaml:"target"`
	// GitBin is the version-control binary to invoke.
	GitBin string `yaml:"git"`
	// RepoPrefix prefixes every generated repository directory name.
	RepoPrefix string `yaml:"repo_prefix"`
}

// Load builds the configuration for a run started in dir: env-var defaults
// first, then the yaml overlay when present. A missing overlay file is fine;
// an unreadable or malformed one is not.
func Load(dir string) (Config, error) {
	cfg := Config{
		Source:     envOr("VUER_SPLIT_SOURCE", filepath.Join("..", "vuer", "docs", "examples")),
		Target:     envOr("VUER_SPLIT_TARGET", "."),
		GitBin:     envOr("VUER_SPLIT_GIT", "git"),
		RepoPrefix: envOr("VUER_SPLIT_REPO_PREFIX", "vuer-example-"),
	}

	path := filepath.Join(dir, OverlayFile)
	data, err := os.ReadFile(path)
	if err != nil {
		if os.IsNotExist(err) {
			return cfg, nil
		}
		return cfg, fmt.Errorf("read %s: %w", path, err)
	}
	if err := yaml.Unmarshal(data, &cfg); err != nil {
		return cfg, fmt.Errorf("parse %s: %w", path, err)
	}
	if cfg.GitBin == "" {
		cfg.GitBin = "git"
	}
	if cfg.RepoPrefix == "" {
		cfg.RepoPrefix = "vuer-example-"
	}
	return cfg, nil
}

func envOr(key, fallback string) string {
	if v := os.Getenv(key); v != "" {
		return v
	}
	return fallback
}
