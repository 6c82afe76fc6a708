// Package splitter drives the pipeline: discover examples, materialize one
// repository per example, commit each. Processing is sequential and
// single-threaded; the first git failure aborts the run.
package splitter

import (
	"fmt"
	"io"
	"log/slog"
	"os"
	"path/filepath"
	"strings"

	"github.com/charmbracelet/lipgloss"
	"github.com/google/uuid"

	"github.com/vuer-ai/vuer-split/internal/example"
	"github.com/vuer-ai/vuer-split/internal/gitrepo"
	"github.com/vuer-ai/vuer-split/internal/materialize"
)

var successMark = lipgloss.NewStyle().Foreground(lipgloss.Color("42")).Render("✓")

type Options struct {
	Source     string
	Target     string
	RepoPrefix string
	GitBin     string
	Example    string // restrict to one example when non-empty
	DryRun     bool
}

type Splitter struct {
	opts Options
	git  gitrepo.Runner
	out  io.Writer
	log  *slog.Logger
}

func New(opts Options, git gitrepo.Runner, out io.Writer, log *slog.Logger) *Splitter {
	if log == nil {
		log = slog.New(slog.NewJSONHandler(io.Discard, nil))
	}
	return &Splitter{opts: opts, git: git, out: out, log: log}
}

// Plan validates the source directory and resolves the examples a run would
// process. Configuration problems (missing source directory, unmatched
// example name) surface here, before anything on disk is touched.
func Plan(opts Options) ([]example.Example, error) {
	if info, err := os.Stat(opts.Source); err != nil || !info.IsDir() {
		return nil, fmt.Errorf("source directory not found: %s", opts.Source)
	}

	examples, err := example.Discover(opts.Source)
	if err != nil {
		return nil, err
	}
	return example.Filter(examples, opts.Example)
}

// Run plans and then processes every discovered example in order.
func (s *Splitter) Run() error {
	examples, err := Plan(s.opts)
	if err != nil {
		return err
	}
	return s.Execute(examples)
}

// Execute materializes and commits the planned examples sequentially. Git
// failures abort the run; missing assets and missing doc files do not.
func (s *Splitter) Execute(examples []example.Example) error {
	runID := uuid.NewString()
	s.log.Info("run.start",
		"run_id", runID,
		"source", s.opts.Source,
		"target", s.opts.Target,
		"examples", len(examples),
		"dry_run", s.opts.DryRun,
	)

	fmt.Fprintf(s.out, "Found %d example(s)\n\n", len(examples))

	created := 0
	for _, ex := range examples {
		fmt.Fprintf(s.out, "Processing: %s\n", ex.Name)
		repoDir := filepath.Join(s.opts.Target, s.opts.RepoPrefix+ex.Name)

		if s.opts.DryRun {
			fmt.Fprintf(s.out, "[DRY RUN] Would create repo at: %s\n\n", repoDir)
			created++
			continue
		}

		res, err := materialize.Build(repoDir, s.opts.Source, ex)
		if err != nil {
			return fmt.Errorf("materialize %s: %w", ex.Name, err)
		}
		if err := gitrepo.Init(s.git, s.opts.GitBin, repoDir, ex.Name); err != nil {
			return fmt.Errorf("commit %s: %w", ex.Name, err)
		}
		fmt.Fprintf(s.out, "  %s Initialized git repo and committed files\n", successMark)
		fmt.Fprintf(s.out, "%s Created example repo: %s\n\n", successMark, repoDir)

		s.log.Info("example.created",
			"run_id", runID,
			"example", ex.Name,
			"repo", res.RepoDir,
			"readme_title", res.ReadmeTitle,
			"assets", res.AssetCount,
		)
		created++
	}

	s.printSummary(created)
	s.log.Info("run.done", "run_id", runID, "created", created)
	return nil
}

func (s *Splitter) printSummary(created int) {
	line := strings.Repeat("=", 60)
	fmt.Fprintf(s.out, "\n%s\n", line)
	fmt.Fprintln(s.out, "Summary")
	fmt.Fprintln(s.out, line)
	fmt.Fprintf(s.out, "Created %d example repositories\n", created)
	fmt.Fprintln(s.out, "\nNext steps:")
	fmt.Fprintln(s.out, "1. Review each example repository")
	fmt.Fprintln(s.out, "2. Create GitHub repositories for each example")
	fmt.Fprintln(s.out, "3. Push each example to its remote repository")
	fmt.Fprintln(s.out, "4. Add each as a git submodule:")
	fmt.Fprintln(s.out, "   git submodule add <remote-url> <local-path>")
}
