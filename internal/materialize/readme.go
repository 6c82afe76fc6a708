package materialize

import (
	"fmt"
	"os"
	"strings"

	"github.com/yuin/goldmark"
	"github.com/yuin/goldmark/ast"
	"github.com/yuin/goldmark/text"

	"github.com/vuer-ai/vuer-split/internal/example"
)

// Usage instructions appended to every README built from a doc file.
var usageSection = []string{
	"",
	"## Usage",
	"",
	"```bash",
	"pip install -r requirements.txt",
	"python main.py",
	"```",
	"",
	"Then open your browser to `http://localhost:8012`",
}

// buildReadme produces the README content for ex. When the example has a
// paired doc file, its python code fence is stripped and the usage section
// appended; otherwise a minimal README is synthesized from the example name.
func buildReadme(ex example.Example) (string, error) {
	if ex.DocPath == "" {
		return fmt.Sprintf("# %s\n\nVuer example: %s\n", ex.Name, ex.Name), nil
	}

	content, err := os.ReadFile(ex.DocPath)
	if err != nil {
		return "", fmt.Errorf("read doc file: %w", err)
	}

	lines := stripPythonFences(string(content))
	lines = append(lines, usageSection...)
	return strings.Join(lines, "\n"), nil
}

// stripPythonFences drops every line between a line that is exactly
// ```python and the next line that is exactly ```, markers included. The
// markers must be whole trimmed lines; indented or tilde fences are left in
// place on purpose, matching how the docs build embeds example code.
func stripPythonFences(content string) []string {
	var kept []string
	inFence := false
	for _, line := range strings.Split(content, "\n") {
		trimmed := strings.TrimSpace(line)
		if !inFence && trimmed == "```python" {
			inFence = true
			continue
		}
		if inFence {
			if trimmed == "```" {
				inFence = false
			}
			continue
		}
		kept = append(kept, line)
	}
	return kept
}

// Title returns the text of the first level-1 heading in md, or "" when the
// document has none.
func Title(md []byte) string {
	doc := goldmark.New().Parser().Parse(text.NewReader(md))
	for n := doc.FirstChild(); n != nil; n = n.NextSibling() {
		if h, ok := n.(*ast.Heading); ok && h.Level == 1 {
			return string(h.Text(md))
		}
	}
	return ""
}
