// Package clean rewrites example source text to remove the cmx documentation
// wrapper that the vuer docs build wraps runnable examples in.
package clean

import "strings"

// Scanner states. The with-block state drops its entry line but otherwise
// behaves like normal; the docs build never indented code under it.
type state int

const (
	stateNormal state = iota
	stateDocBlock
	stateWithBlock
)

// Strip removes cmx doc imports, MAKE_DOCS plumbing, `doc @` docstring blocks,
// and `with doc` entry lines from src, then trims leading blank lines and
// applies a one-level dedent when most of the remaining code is indented.
//
// The rules are substring matches over single lines. They can misfire on
// trigger text appearing inside string literals; examples in the docs tree do
// not do that, so this stays a line scanner rather than a Python parser.
func Strip(src string) string {
	lines := strings.Split(src, "\n")
	kept := make([]string, 0, len(lines))

	st := stateNormal
	withEntered := false

	for _, line := range lines {
		trimmed := strings.TrimSpace(line)

		if strings.Contains(line, "from cmx import doc") || strings.Contains(line, "MAKE_DOCS") {
			continue
		}
		if strings.HasPrefix(trimmed, "MAKE_DOCS =") {
			continue
		}
		if strings.HasPrefix(trimmed, "doc @") {
			st = stateDocBlock
			continue
		}
		if st == stateDocBlock {
			if strings.Contains(line, `"""`) {
				if withEntered {
					st = stateWithBlock
				} else {
					st = stateNormal
				}
			}
			continue
		}
		if strings.Contains(line, "with doc") {
			st = stateWithBlock
			withEntered = true
			continue
		}
		if strings.Contains(line, "from contextlib import nullcontext") {
			continue
		}
		kept = append(kept, line)
	}

	for len(kept) > 0 && strings.TrimSpace(kept[0]) == "" {
		kept = kept[1:]
	}

	return strings.Join(dedent(kept), "\n")
}

// dedent removes one four-space indent level from every line carrying it,
// but only when more than half of the non-blank lines are indented that way.
// Anything indented by another amount is left alone.
func dedent(lines []string) []string {
	indented, total := 0, 0
	for _, line := range lines {
		if strings.TrimSpace(line) == "" {
			continue
		}
		total++
		if strings.HasPrefix(line, "    ") {
			indented++
		}
	}
	if total == 0 || indented*2 <= total {
		return lines
	}

	out := make([]string, len(lines))
	for i, line := range lines {
		if strings.HasPrefix(line, "    ") {
			out[i] = line[4:]
		} else {
			out[i] = line
		}
	}
	return out
}
