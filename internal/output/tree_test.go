package output

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestRenderFileTree(t *testing.T) {
	out := RenderFileTree("demo-app", map[string]string{
		"package.json": "Package manifest",
		"src/main.ts":  "Source file",
		"src/App.tsx":  "",
		"README.md":    "",
	})

	assert.Contains(t, out, "demo-app/")
	assert.Contains(t, out, "src/")
	assert.Contains(t, out, "main.ts")
	assert.Contains(t, out, "Package manifest")

	// Directories sort before files.
	srcIdx := strings.Index(out, "src/")
	pkgIdx := strings.Index(out, "package.json")
	require.GreaterOrEqual(t, srcIdx, 0)
	require.GreaterOrEqual(t, pkgIdx, 0)
	assert.Less(t, srcIdx, pkgIdx)

	// Files inside a directory sort alphabetically.
	appIdx := strings.Index(out, "App.tsx")
	mainIdx := strings.Index(out, "main.ts")
	assert.Less(t, appIdx, mainIdx)
}

func TestRenderFileTreeEmpty(t *testing.T) {
	assert.Equal(t, "", RenderFileTree("demo-app", nil))
}

func TestRenderFileTreeConnectors(t *testing.T) {
	out := RenderFileTree("demo-app", map[string]string{
		"a.txt": "",
		"b.txt": "",
	})

	lines := strings.Split(strings.TrimRight(out, "\n"), "\n")
	require.Len(t, lines, 3)
	assert.Contains(t, lines[1], treeEdge)
	assert.Contains(t, lines[2], treeLast)
}

func TestRenderSimpleTree(t *testing.T) {
	out := RenderSimpleTree("demo-app", []string{"src/main.ts", "README.md"})

	assert.Contains(t, out, "demo-app/")
	assert.Contains(t, out, "README.md")
	assert.Contains(t, out, "main.ts")
}
