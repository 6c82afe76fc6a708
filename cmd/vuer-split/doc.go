// # vuer-split
//
// `vuer-split` converts the vuer documentation examples into individual git
// repositories, one per example file, ready to be pushed and added back as
// submodules.
//
// For every `NN_name.py` under the source directory (files starting with `_`
// are treated as internal helpers and skipped) the tool creates
// `<target>/vuer-example-NN_name/` containing:
//
//   - `main.py` — the example source with the cmx docs wrapper stripped
//   - `README.md` — the paired `NN_name.md` with its python code fence
//     removed and a usage section appended, or a minimal synthesized README
//   - `assets/` — any referenced assets that exist under the source tree's
//     `assets/` or `figures/` directories
//   - `requirements.txt` — `vuer` plus dependencies detected in the source
//   - `.gitignore`
//
// and commits everything as the repository's initial commit.
//
// ## Usage
//
//	vuer-split [--dry-run] [--example NAME] [--source PATH] [--target PATH]
//
// Examples:
//
//   - Preview what would be generated:
//
//     vuer-split --dry-run --source ../vuer/docs/examples
//
//   - Split a single example into the current directory:
//
//     vuer-split --example 01_trimesh --source ../vuer/docs/examples
//
// Defaults come from VUER_SPLIT_* environment variables and an optional
// `.vuer-split.yaml` in the working directory; flags always win.
//
// Exit status is 0 on success (including runs that matched zero examples)
// and 1 when the source directory is missing, an `--example` name matches
// nothing, or a git invocation fails.
package main
