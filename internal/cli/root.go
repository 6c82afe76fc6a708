// Package cli wires the cobra command surface to the split pipeline.
package cli

import (
	"fmt"
	"io"
	"os"
	"strings"

	"github.com/spf13/cobra"
	cobradoc "github.com/spf13/cobra/doc"

	"github.com/vuer-ai/vuer-split/internal/buildinfo"
	"github.com/vuer-ai/vuer-split/internal/config"
	"github.com/vuer-ai/vuer-split/internal/gitrepo"
	"github.com/vuer-ai/vuer-split/internal/logger"
	"github.com/vuer-ai/vuer-split/internal/splitter"
)

const rootLongDesc = `
vuer-split converts the vuer documentation examples into individual git
repositories, one per example. Each generated repository contains a runnable
main.py (with the docs-build wrapper stripped out), a cleaned README.md, any
assets the example references, a requirements.txt, and a .gitignore, and is
committed as a fresh single-commit git repository.

Defaults come from the environment (VUER_SPLIT_SOURCE, VUER_SPLIT_TARGET,
VUER_SPLIT_GIT, VUER_SPLIT_REPO_PREFIX) and an optional .vuer-split.yaml in
the working directory; flags override both.
`

// Run executes the CLI with the given arguments, writing output to stdout.
func Run(argv []string, stdout io.Writer) error {
	cmd := newRootCmd(stdout)
	cmd.SetArgs(argv)
	return cmd.Execute()
}

func newRootCmd(stdout io.Writer) *cobra.Command {
	var (
		dryRun      bool
		exampleName string
		source      string
		target      string
		debug       bool
	)

	cmd := &cobra.Command{
		Use:           "vuer-split [flags]",
		Short:         "Split vuer documentation examples into standalone repositories",
		Long:          strings.TrimSpace(rootLongDesc),
		Args:          cobra.NoArgs,
		SilenceUsage:  true,
		SilenceErrors: true,
	}
	cmd.DisableAutoGenTag = true
	cmd.Version = buildinfo.Version
	cmd.SetVersionTemplate(buildinfo.String() + "\n")
	cmd.SetOut(stdout)
	cmd.SetErr(io.Discard)
	cmd.CompletionOptions.DisableDefaultCmd = true

	flags := cmd.Flags()
	flags.BoolVar(&dryRun, "dry-run", false, "show what would be done without actually doing it")
	flags.StringVar(&exampleName, "example", "", `process only a specific example (e.g. "01_trimesh")`)
	flags.StringVar(&source, "source", "", "source directory containing examples")
	flags.StringVar(&target, "target", "", "target directory for example repos")
	flags.BoolVar(&debug, "debug", false, "enable verbose logging to <target>/.vuer-split/logs")

	cmd.RunE = func(cmd *cobra.Command, _ []string) error {
		cfg, err := config.Load(".")
		if err != nil {
			return err
		}
		if source != "" {
			cfg.Source = source
		}
		if target != "" {
			cfg.Target = target
		}

		opts := splitter.Options{
			Source:     cfg.Source,
			Target:     cfg.Target,
			RepoPrefix: cfg.RepoPrefix,
			GitBin:     cfg.GitBin,
			Example:    exampleName,
			DryRun:     dryRun,
		}

		// Configuration errors must leave the target untouched, so the
		// plan is resolved before anything opens a log file.
		plan, err := splitter.Plan(opts)
		if err != nil {
			return err
		}

		// Dry runs must not touch the filesystem, log files included.
		if !dryRun {
			cleanup, _ := logger.Setup(logger.Config{Root: cfg.Target, Debug: debug})
			if cleanup != nil {
				defer func() { _ = cleanup() }()
			}
		}

		s := splitter.New(opts, gitrepo.ExecRunner{}, stdout, logger.L())
		return s.Execute(plan)
	}

	cmd.AddCommand(newCompletionCmd(cmd))
	cmd.AddCommand(newDocsCmd(cmd))
	return cmd
}

func newCompletionCmd(root *cobra.Command) *cobra.Command {
	const longDesc = `Generate shell completion scripts for vuer-split.

The output should be evaluated by your shell. For example:

  # bash
  vuer-split completion bash > /usr/local/etc/bash_completion.d/vuer-split

  # zsh
  vuer-split completion zsh > "${fpath[1]}/_vuer-split"

  # fish
  vuer-split completion fish | source

  # PowerShell
  vuer-split completion powershell | Out-String | Invoke-Expression
`
	cmd := &cobra.Command{
		Use:                   "completion [bash|zsh|fish|powershell]",
		Short:                 "Generate shell completion scripts",
		Long:                  longDesc,
		Args:                  cobra.ExactValidArgs(1),
		ValidArgs:             []string{"bash", "zsh", "fish", "powershell"},
		SilenceUsage:          true,
		SilenceErrors:         true,
		DisableFlagsInUseLine: true,
	}
	cmd.RunE = func(cmd *cobra.Command, args []string) error {
		switch args[0] {
		case "bash":
			return root.GenBashCompletion(cmd.OutOrStdout())
		case "zsh":
			return root.GenZshCompletion(cmd.OutOrStdout())
		case "fish":
			return root.GenFishCompletion(cmd.OutOrStdout(), true)
		case "powershell":
			return root.GenPowerShellCompletion(cmd.OutOrStdout())
		default:
			return fmt.Errorf("unsupported shell %q", args[0])
		}
	}
	return cmd
}

func newDocsCmd(root *cobra.Command) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "gen-docs [directory]",
		Short: "Generate Markdown reference docs for the CLI",
		Long: strings.TrimSpace(`
Write a Markdown file per command (suitable for publishing CLI docs).

Example:

  vuer-split gen-docs ./docs/cli
`),
		Args:          cobra.ExactArgs(1),
		SilenceUsage:  true,
		SilenceErrors: true,
	}
	cmd.RunE = func(cmd *cobra.Command, args []string) error {
		target := args[0]
		if target == "" {
			return fmt.Errorf("target directory is required")
		}
		if err := os.MkdirAll(target, 0o755); err != nil {
			return err
		}
		return cobradoc.GenMarkdownTree(root, target)
	}
	return cmd
}
