package materialize

import "strings"

// requirement maps source-text triggers to one manifest entry.
type requirement struct {
	pkg      string
	triggers []string
}

// Manifest line order follows declaration order here.
var requirementTable = []requirement{
	{pkg: "trimesh", triggers: []string{"trimesh"}},
	{pkg: "numpy", triggers: []string{"numpy", "np."}},
	{pkg: "mujoco", triggers: []string{"mujoco"}},
	{pkg: "Pillow", triggers: []string{"PIL"}},
}

const baselinePackage = "vuer"

// Manifest synthesizes requirements.txt content for source by keyword
// sniffing. The baseline package is always present; each table entry is added
// when any of its trigger substrings appears in the source text.
func Manifest(source string) string {
	pkgs := []string{baselinePackage}
	for _, req := range requirementTable {
		for _, trigger := range req.triggers {
			if strings.Contains(source, trigger) {
				pkgs = append(pkgs, req.pkg)
				break
			}
		}
	}
	return strings.Join(pkgs, "\n") + "\n"
}
