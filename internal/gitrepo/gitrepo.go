// Package gitrepo turns a materialized directory into a git repository with
// a single commit by shelling out to the git binary.
package gitrepo

import (
	"bytes"
	"fmt"
	"os/exec"
	"strings"
)

// Runner executes one version-control command rooted at dir and returns its
// stdout. Implementations must not mutate the process working directory;
// scoping to dir is the runner's job.
type Runner interface {
	Run(dir, name string, args ...string) (string, error)
}

// ExecRunner runs commands via os/exec with cmd.Dir set to the target
// directory, so the working-directory scope begins and ends with each call.
type ExecRunner struct{}

func (ExecRunner) Run(dir, name string, args ...string) (string, error) {
	var stdout, stderr bytes.Buffer
	cmd := exec.Command(name, args...)
	cmd.Dir = dir
	cmd.Stdout = &stdout
	cmd.Stderr = &stderr
	if err := cmd.Run(); err != nil {
		msg := strings.TrimSpace(stderr.String())
		if msg == "" {
			msg = err.Error()
		}
		return stdout.String(), fmt.Errorf("%s %s failed: %s", name, strings.Join(args, " "), msg)
	}
	return stdout.String(), nil
}

// Init initializes a fresh repository in dir, stages everything, and creates
// the initial commit for exampleName. The first failing step aborts the
// sequence; nothing is retried or rolled back, so a partially-initialized
// repository may remain on disk.
func Init(r Runner, gitBin, dir, exampleName string) error {
	steps := [][]string{
		{"init"},
		{"add", "."},
		{"commit", "-m", fmt.Sprintf("Initial commit for %s example", exampleName)},
	}
	for _, args := range steps {
		if _, err := r.Run(dir, gitBin, args...); err != nil {
			return err
		}
	}
	return nil
}
