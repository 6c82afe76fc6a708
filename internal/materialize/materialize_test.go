package materialize

import (
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/vuer-ai/vuer-split/internal/example"
)

const trimeshSource = `from cmx import doc

MAKE_DOCS = os.getenv("MAKE_DOCS")

doc @ """
# Trimesh

Load and render a mesh.
"""
with doc:
    import trimesh
    from vuer import Vuer

    mesh = trimesh.load(assets_folder / "mesh.obj")
    app = Vuer()
    app.run()
`

const trimeshDoc = "# Trimesh Example\n\nRenders a wireframe mesh.\n\n```python\nimport trimesh\n```\n\nEnjoy.\n"

func writeExample(t *testing.T) (srcDir string, ex example.Example) {
	t.Helper()
	srcDir = t.TempDir()
	require.NoError(t, os.MkdirAll(filepath.Join(srcDir, "assets"), 0o755))
	require.NoError(t, os.WriteFile(filepath.Join(srcDir, "assets", "mesh.obj"), []byte("obj data"), 0o644))
	require.NoError(t, os.WriteFile(filepath.Join(srcDir, "01_trimesh.py"), []byte(trimeshSource), 0o644))
	require.NoError(t, os.WriteFile(filepath.Join(srcDir, "01_trimesh.md"), []byte(trimeshDoc), 0o644))

	examples, err := example.Discover(srcDir)
	require.NoError(t, err)
	require.Len(t, examples, 1)
	return srcDir, examples[0]
}

func TestBuildMaterializesFullExample(t *testing.T) {
	srcDir, ex := writeExample(t)
	repoDir := filepath.Join(t.TempDir(), "vuer-example-01_trimesh")

	res, err := Build(repoDir, srcDir, ex)
	require.NoError(t, err)
	assert.Equal(t, repoDir, res.RepoDir)
	assert.Equal(t, 1, res.AssetCount)
	assert.Equal(t, "Trimesh Example", res.ReadmeTitle)

	mainPy, err := os.ReadFile(filepath.Join(repoDir, "main.py"))
	require.NoError(t, err)
	code := string(mainPy)
	assert.NotContains(t, code, "cmx")
	assert.NotContains(t, code, "MAKE_DOCS")
	assert.NotContains(t, code, "with doc")
	assert.True(t, strings.HasPrefix(code, "import trimesh"), "expected dedented code, got %q", code)

	readme, err := os.ReadFile(filepath.Join(repoDir, "README.md"))
	require.NoError(t, err)
	md := string(readme)
	assert.NotContains(t, md, "```python")
	assert.Contains(t, md, "## Usage")
	assert.Contains(t, md, "pip install -r requirements.txt")
	assert.True(t, strings.HasSuffix(md, "Then open your browser to `http://localhost:8012`"))
	assert.Contains(t, md, "Enjoy.")

	asset, err := os.ReadFile(filepath.Join(repoDir, "assets", "mesh.obj"))
	require.NoError(t, err)
	assert.Equal(t, "obj data", string(asset))

	reqs, err := os.ReadFile(filepath.Join(repoDir, "requirements.txt"))
	require.NoError(t, err)
	assert.Equal(t, "vuer\ntrimesh\n", string(reqs))

	ignore, err := os.ReadFile(filepath.Join(repoDir, ".gitignore"))
	require.NoError(t, err)
	assert.Contains(t, string(ignore), "__pycache__/")
}

func TestBuildSynthesizesReadmeWithoutDoc(t *testing.T) {
	srcDir := t.TempDir()
	require.NoError(t, os.WriteFile(filepath.Join(srcDir, "02_scene.py"), []byte("print('hi')\n"), 0o644))
	repoDir := filepath.Join(t.TempDir(), "vuer-example-02_scene")

	res, err := Build(repoDir, srcDir, example.Example{
		Name:       "02_scene",
		SourcePath: filepath.Join(srcDir, "02_scene.py"),
	})
	require.NoError(t, err)
	assert.Equal(t, "02_scene", res.ReadmeTitle)
	assert.Equal(t, 0, res.AssetCount)

	readme, err := os.ReadFile(filepath.Join(repoDir, "README.md"))
	require.NoError(t, err)
	assert.Equal(t, "# 02_scene\n\nVuer example: 02_scene\n", string(readme))

	assert.NoDirExists(t, filepath.Join(repoDir, "assets"))
}

func TestBuildIsIdempotentOnRepoDir(t *testing.T) {
	srcDir, ex := writeExample(t)
	repoDir := filepath.Join(t.TempDir(), "repo")

	_, err := Build(repoDir, srcDir, ex)
	require.NoError(t, err)
	_, err = Build(repoDir, srcDir, ex)
	require.NoError(t, err)
}

func TestManifestTable(t *testing.T) {
	cases := []struct {
		name   string
		source string
		want   string
	}{
		{"baseline only", "print('hi')", "vuer\n"},
		{"trimesh", "import trimesh", "vuer\ntrimesh\n"},
		{"numpy via np dot", "x = np.zeros(3)", "vuer\nnumpy\n"},
		{"pillow", "from PIL import Image", "vuer\nPillow\n"},
		{"all in declaration order", "trimesh numpy mujoco PIL", "vuer\ntrimesh\nnumpy\nmujoco\nPillow\n"},
	}
	for _, c := range cases {
		t.Run(c.name, func(t *testing.T) {
			assert.Equal(t, c.want, Manifest(c.source))
		})
	}
}

func TestStripPythonFences(t *testing.T) {
	input := "intro\n```python\ncode\nmore code\n```\noutro"
	got := strings.Join(stripPythonFences(input), "\n")
	assert.Equal(t, "intro\noutro", got)
}

func TestStripPythonFencesLeavesOtherFences(t *testing.T) {
	input := "```bash\npip install vuer\n```"
	got := strings.Join(stripPythonFences(input), "\n")
	assert.Equal(t, input, got)
}

func TestTitle(t *testing.T) {
	assert.Equal(t, "Hello World", Title([]byte("# Hello World\n\nbody\n")))
	assert.Equal(t, "", Title([]byte("no headings here\n")))
	assert.Equal(t, "First", Title([]byte("## skip\n\n# First\n\n# Second\n")))
}
