// Package example discovers runnable documentation examples and the assets
// they reference.
package example

import (
	"fmt"
	"os"
	"path/filepath"
	"strings"
)

// Example is one runnable source file plus its optional paired markdown doc,
// destined to become one standalone repository.
type Example struct {
	Name       string
	SourcePath string
	DocPath    string // empty when the example has no companion markdown
}

// Discover returns the examples in dir, ordered lexicographically by
// filename. Files whose names begin with "_" are internal helpers and are
// skipped. Subdirectories are not descended into.
func Discover(dir string) ([]Example, error) {
	entries, err := os.ReadDir(dir)
	if err != nil {
		return nil, fmt.Errorf("read source directory: %w", err)
	}

	var examples []Example
	for _, entry := range entries {
		if entry.IsDir() {
			continue
		}
		name := entry.Name()
		if !strings.HasSuffix(name, ".py") || strings.HasPrefix(name, "_") {
			continue
		}
		stem := strings.TrimSuffix(name, ".py")
		ex := Example{Name: stem, SourcePath: filepath.Join(dir, name)}
		docPath := filepath.Join(dir, stem+".md")
		if _, err := os.Stat(docPath); err == nil {
			ex.DocPath = docPath
		}
		examples = append(examples, ex)
	}
	return examples, nil
}

// Filter restricts examples to the one named name. An empty name keeps the
// full list.
func Filter(examples []Example, name string) ([]Example, error) {
	if name == "" {
		return examples, nil
	}
	for _, ex := range examples {
		if ex.Name == name {
			return []Example{ex}, nil
		}
	}
	return nil, fmt.Errorf("example %q not found", name)
}
