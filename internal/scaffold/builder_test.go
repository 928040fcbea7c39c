package scaffold

import (
	"fmt"
	"path/filepath"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/stencilhq/cli/internal/testutil"
)

// failingWriter fails on the first write whose path contains failOn.
type failingWriter struct {
	failOn  string
	written []string
}

func (w *failingWriter) MkdirAll(path string) error {
	if w.failOn != "" && strings.Contains(path, w.failOn) {
		return fmt.Errorf("mkdir %s: permission denied", path)
	}
	return nil
}

func (w *failingWriter) WriteFile(path string, _ []byte) error {
	if w.failOn != "" && strings.Contains(path, w.failOn) {
		return fmt.Errorf("write %s: disk full", path)
	}
	w.written = append(w.written, path)
	return nil
}

func buildTestRegistry(t *testing.T, fs TreeWriter) *Builder {
	t.Helper()
	r := NewRegistry(fs)
	require.NoError(t, r.Register(&Blueprint{
		Family:  "demo",
		Aliases: []string{"demo"},
		Schema: Schema{
			{Key: "greeting", Kind: KindString, Default: "hello"},
		},
		Features: []Feature{
			{Name: "base", Files: func(ctx Context) []FileNode {
				return []FileNode{
					{RelPath: "main.txt", Content: ctx.Options.String("greeting") + "\n"},
					{RelPath: "src/app.txt", Content: ctx.Project + "\n"},
				}
			}},
		},
	}))

	b, err := r.Lookup("demo")
	require.NoError(t, err)
	return b
}

func TestBuildWritesTree(t *testing.T) {
	dir, cleanup := testutil.TempDir(t)
	defer cleanup()

	b := buildTestRegistry(t, OSWriter{})
	outcome := b.Build(ProjectRequest{Name: "demo-app", FamilyID: "demo", TargetRoot: dir})

	require.True(t, outcome.Success, "build failed: %s", outcome.Failure)
	assert.Equal(t, []string{"main.txt", "src/app.txt"}, outcome.ProducedPaths)
	assert.Contains(t, outcome.Message, "demo-app")
	assert.Empty(t, outcome.Failure)

	root := filepath.Join(dir, "demo-app")
	assert.Equal(t, "hello\n", testutil.ReadFile(t, filepath.Join(root, "main.txt")))
	assert.Equal(t, "demo-app\n", testutil.ReadFile(t, filepath.Join(root, "src", "app.txt")))
}

func TestBuildRerunOverwrites(t *testing.T) {
	dir, cleanup := testutil.TempDir(t)
	defer cleanup()

	b := buildTestRegistry(t, OSWriter{})
	req := ProjectRequest{Name: "demo-app", FamilyID: "demo", TargetRoot: dir}

	first := b.Build(req)
	require.True(t, first.Success)

	req.DeclaredOptions = map[string]any{"greeting": "bonjour"}
	second := b.Build(req)
	require.True(t, second.Success)

	content := testutil.ReadFile(t, filepath.Join(dir, "demo-app", "main.txt"))
	assert.Equal(t, "bonjour\n", content)
}

func TestBuildWriteFailureIsCaught(t *testing.T) {
	fs := &failingWriter{failOn: "app.txt"}
	b := buildTestRegistry(t, fs)

	outcome := b.Build(ProjectRequest{Name: "demo-app", FamilyID: "demo", TargetRoot: "/tmp"})

	assert.False(t, outcome.Success)
	assert.Contains(t, outcome.Message, "Failed")
	assert.Contains(t, outcome.Failure, "app.txt")
	// The file before the failing one was written: no rollback.
	require.Len(t, fs.written, 1)
	assert.Contains(t, fs.written[0], "main.txt")
}

func TestBuildRootCreationFailureIsCaught(t *testing.T) {
	fs := &failingWriter{failOn: "demo-app"}
	b := buildTestRegistry(t, fs)

	outcome := b.Build(ProjectRequest{Name: "demo-app", FamilyID: "demo", TargetRoot: "/tmp"})

	assert.False(t, outcome.Success)
	assert.Contains(t, outcome.Failure, "permission denied")
	assert.Empty(t, fs.written)
}

func TestBuildEmptyTargetRootUsesWorkingDirectory(t *testing.T) {
	dir, cleanup := testutil.TempDir(t)
	defer cleanup()
	t.Chdir(dir)

	b := buildTestRegistry(t, OSWriter{})
	outcome := b.Build(ProjectRequest{Name: "demo-app", FamilyID: "demo"})

	require.True(t, outcome.Success, "build failed: %s", outcome.Failure)
	assert.FileExists(t, filepath.Join(dir, "demo-app", "main.txt"))
}
