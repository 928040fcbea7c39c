package frameworks

import (
	"path/filepath"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/stencilhq/cli/internal/scaffold"
	"github.com/stencilhq/cli/internal/testutil"
)

func compose(t *testing.T, bp *scaffold.Blueprint, declared map[string]any) []scaffold.FileNode {
	t.Helper()
	return bp.Compose(bp.Resolve(declared), "demo-app")
}

func paths(nodes []scaffold.FileNode) []string {
	out := make([]string, len(nodes))
	for i, n := range nodes {
		out[i] = n.RelPath
	}
	return out
}

func find(nodes []scaffold.FileNode, relPath string) (scaffold.FileNode, bool) {
	for _, n := range nodes {
		if n.RelPath == relPath {
			return n, true
		}
	}
	return scaffold.FileNode{}, false
}

func TestRegisterAll(t *testing.T) {
	r := scaffold.NewRegistry(scaffold.OSWriter{})
	require.NoError(t, RegisterAll(r))

	assert.Len(t, r.Builders(), len(All()))
	assert.Contains(t, r.Identifiers(), "react")
	assert.Contains(t, r.Identifiers(), "spring-boot")
}

func TestAliasesDisjointAcrossFamilies(t *testing.T) {
	claimed := make(map[string]string)
	for _, bp := range All() {
		require.NotEmpty(t, bp.Aliases, "family %s has no aliases", bp.Family)
		for _, alias := range bp.Aliases {
			key := strings.ToLower(alias)
			other, exists := claimed[key]
			assert.False(t, exists, "alias %q claimed by both %s and %s", alias, other, bp.Family)
			claimed[key] = bp.Family
		}
	}
}

func TestBlueprintsWellFormed(t *testing.T) {
	runtimes := map[string]bool{"node": true, "python": true, "jvm": true}

	for _, bp := range All() {
		t.Run(bp.Family, func(t *testing.T) {
			assert.NotEmpty(t, bp.Description)
			assert.True(t, runtimes[bp.Runtime], "unknown runtime %q", bp.Runtime)
			assert.Equal(t, strings.ToLower(bp.Aliases[0]), bp.Aliases[0],
				"canonical alias should be lowercase")
			assert.NotEmpty(t, bp.Features)

			// Every family produces a non-empty tree with defaults.
			nodes := compose(t, bp, nil)
			assert.NotEmpty(t, nodes)
			_, ok := find(nodes, "README.md")
			assert.True(t, ok, "missing README.md")
			seen := make(map[string]bool, len(nodes))
			for _, n := range nodes {
				// Python package markers are legitimately empty.
				if filepath.Base(n.RelPath) != "__init__.py" {
					assert.NotEmpty(t, n.Content, "empty content for %s", n.RelPath)
				}
				assert.False(t, strings.HasPrefix(n.RelPath, "/"), "absolute path %s", n.RelPath)
				assert.False(t, seen[n.RelPath], "duplicate path %s", n.RelPath)
				seen[n.RelPath] = true
			}
		})
	}
}

func TestComposeDeterministicAcrossFamilies(t *testing.T) {
	optionSets := []map[string]any{
		nil,
		{"typescript": false},
		{"docker": true, "testing": true},
		{"styling": "tailwind", "state": "redux"},
		{"database": "postgres", "buildTool": "gradle"},
	}

	for _, bp := range All() {
		t.Run(bp.Family, func(t *testing.T) {
			for _, declared := range optionSets {
				first := compose(t, bp, declared)
				second := compose(t, bp, declared)
				assert.Equal(t, first, second, "options %v", declared)
			}
		})
	}
}

func TestViteDefaultTree(t *testing.T) {
	nodes := compose(t, Vite(), nil)

	got := paths(nodes)
	assert.Contains(t, got, "package.json")
	assert.Contains(t, got, "index.html")
	assert.Contains(t, got, "src/main.ts")
	assert.Contains(t, got, "src/style.css")
	assert.Contains(t, got, "tsconfig.json")

	pkg, ok := find(nodes, "package.json")
	require.True(t, ok)
	assert.Contains(t, pkg.Content, `"name": "demo-app"`)
	assert.Contains(t, pkg.Content, `"vite"`)
}

func TestViteJavaScriptVariant(t *testing.T) {
	nodes := compose(t, Vite(), map[string]any{"typescript": false})

	got := paths(nodes)
	assert.Contains(t, got, "src/main.js")
	assert.NotContains(t, got, "src/main.ts")
	assert.NotContains(t, got, "tsconfig.json")

	pkg, _ := find(nodes, "package.json")
	assert.NotContains(t, pkg.Content, `"typescript"`)
}

func TestReactDefaultTree(t *testing.T) {
	nodes := compose(t, React(), nil)

	got := paths(nodes)
	assert.Contains(t, got, "src/main.tsx")
	assert.Contains(t, got, "src/App.tsx")
	assert.Contains(t, got, "vite.config.ts")
	assert.Contains(t, got, "tsconfig.json")
	assert.NotContains(t, got, "Dockerfile")
	assert.NotContains(t, got, "src/store/index.ts")
}

func TestReactJavaScriptVariant(t *testing.T) {
	nodes := compose(t, React(), map[string]any{"typescript": false})

	got := paths(nodes)
	assert.Contains(t, got, "src/main.jsx")
	assert.Contains(t, got, "src/App.jsx")
	for _, p := range got {
		assert.False(t, strings.HasSuffix(p, ".tsx"), "TypeScript file %s in JavaScript variant", p)
		assert.False(t, strings.HasSuffix(p, ".ts"), "TypeScript file %s in JavaScript variant", p)
	}
	assert.NotContains(t, got, "tsconfig.json")
}

func TestReactTailwind(t *testing.T) {
	nodes := compose(t, React(), map[string]any{"styling": "tailwind"})

	got := paths(nodes)
	assert.Contains(t, got, "tailwind.config.ts")
	assert.Contains(t, got, "postcss.config.ts")

	css, ok := find(nodes, "src/index.css")
	require.True(t, ok)
	assert.Contains(t, css.Content, "@tailwind base;")

	pkg, _ := find(nodes, "package.json")
	assert.Contains(t, pkg.Content, `"tailwindcss"`)
}

func TestReactStateManagement(t *testing.T) {
	redux := compose(t, React(), map[string]any{"state": "redux"})
	store, ok := find(redux, "src/store/index.ts")
	require.True(t, ok)
	assert.Contains(t, store.Content, "configureStore")
	main, _ := find(redux, "src/main.tsx")
	assert.Contains(t, main.Content, "react-redux")

	zustand := compose(t, React(), map[string]any{"state": "zustand"})
	store, ok = find(zustand, "src/store/index.ts")
	require.True(t, ok)
	assert.Contains(t, store.Content, "zustand")
}

func TestReactFeatureUnion(t *testing.T) {
	base := compose(t, React(), nil)
	full := compose(t, React(), map[string]any{
		"styling": "tailwind",
		"state":   "redux",
		"testing": true,
		"docker":  true,
	})

	basePaths := paths(base)
	fullPaths := paths(full)
	for _, p := range basePaths {
		assert.Contains(t, fullPaths, p, "enabling features removed %s", p)
	}
	assert.Greater(t, len(fullPaths), len(basePaths))
}

func TestExpressDatabaseFeature(t *testing.T) {
	nodes := compose(t, Express(), map[string]any{"database": "postgres"})

	got := paths(nodes)
	assert.Contains(t, got, "src/db.js")

	pkg, _ := find(nodes, "package.json")
	assert.Contains(t, pkg.Content, `"pg"`)

	env, ok := find(nodes, ".env.example")
	require.True(t, ok)
	assert.Contains(t, env.Content, "DATABASE_URL")
}

func TestFastAPIDefaultTree(t *testing.T) {
	nodes := compose(t, FastAPI(), nil)

	got := paths(nodes)
	assert.Contains(t, got, "requirements.txt")
	assert.Contains(t, got, "app/main.py")
	assert.NotContains(t, got, "app/database.py")

	reqs, _ := find(nodes, "requirements.txt")
	assert.Contains(t, reqs.Content, "fastapi")
	assert.Contains(t, reqs.Content, "uvicorn")
}

func TestSpringBuildTools(t *testing.T) {
	maven := paths(compose(t, Spring(), nil))
	assert.Contains(t, maven, "pom.xml")
	assert.NotContains(t, maven, "build.gradle")

	gradle := paths(compose(t, Spring(), map[string]any{"buildTool": "gradle"}))
	assert.Contains(t, gradle, "build.gradle")
	assert.Contains(t, gradle, "settings.gradle")
	assert.NotContains(t, gradle, "pom.xml")
}

func TestSpringDatabaseCompose(t *testing.T) {
	nodes := compose(t, Spring(), map[string]any{"database": "postgres"})

	got := paths(nodes)
	assert.Contains(t, got, "docker-compose.yml")

	props, ok := find(nodes, "src/main/resources/application.properties")
	require.True(t, ok)
	assert.Contains(t, props.Content, "postgresql")
}

func TestDockerFeatureAcrossFamilies(t *testing.T) {
	for _, bp := range All() {
		hasDocker := false
		for _, spec := range bp.Schema {
			if spec.Key == "docker" {
				hasDocker = true
			}
		}
		if !hasDocker {
			continue
		}

		t.Run(bp.Family, func(t *testing.T) {
			got := paths(compose(t, bp, map[string]any{"docker": true}))
			assert.Contains(t, got, "Dockerfile")
		})
	}
}

func TestEndToEndBuildOnDisk(t *testing.T) {
	dir, cleanup := testutil.TempDir(t)
	defer cleanup()

	r := scaffold.NewRegistry(scaffold.OSWriter{})
	require.NoError(t, RegisterAll(r))

	b, err := r.Lookup("react")
	require.NoError(t, err)

	outcome := b.Build(scaffold.ProjectRequest{
		Name:            "web",
		FamilyID:        "react",
		DeclaredOptions: map[string]any{"typescript": "false"},
		TargetRoot:      dir,
	})
	require.True(t, outcome.Success, "build failed: %s", outcome.Failure)

	root := filepath.Join(dir, "web")
	assert.FileExists(t, filepath.Join(root, "package.json"))
	assert.FileExists(t, filepath.Join(root, "src", "main.jsx"))
	assert.NoFileExists(t, filepath.Join(root, "tsconfig.json"))

	// Rebuilding with different options overwrites in place.
	outcome = b.Build(scaffold.ProjectRequest{
		Name:            "web",
		FamilyID:        "react",
		DeclaredOptions: map[string]any{"styling": "tailwind"},
		TargetRoot:      dir,
	})
	require.True(t, outcome.Success, "rebuild failed: %s", outcome.Failure)

	css := testutil.ReadFile(t, filepath.Join(root, "src", "index.css"))
	assert.Contains(t, css, "@tailwind base;")
	assert.FileExists(t, filepath.Join(root, "src", "main.tsx"))
}
