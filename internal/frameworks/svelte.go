package frameworks

import (
	"fmt"

	"github.com/stencilhq/cli/internal/scaffold"
)

// Pinned svelte stack versions.
const (
	svelteVersion    = "^4.2.19"
	vitePluginSvelte = "^3.1.2"
	svelteCheck      = "^4.0.2"
)

// Svelte returns the blueprint for Svelte projects built with Vite.
func Svelte() *scaffold.Blueprint {
	return &scaffold.Blueprint{
		Family:      "svelte",
		Aliases:     []string{"svelte", "sveltekit"},
		Description: "Svelte single-page application built with Vite",
		Runtime:     "node",
		Schema: scaffold.Schema{
			{Key: "typescript", Kind: scaffold.KindBool, Default: true, Doc: "Use TypeScript"},
			{Key: "testing", Kind: scaffold.KindBool, Default: false, Doc: "Include Vitest scaffolding"},
		},
		Features: []scaffold.Feature{
			{Name: "base", Files: svelteBase},
			{Name: "typescript", When: whenBool("typescript"), Files: svelteTSConfig},
			{Name: "testing", When: whenBool("testing"), Files: svelteTesting},
		},
	}
}

func svelteBase(ctx scaffold.Context) []scaffold.FileNode {
	o := ctx.Options
	e := ext(o)

	devDeps := []dep{
		{"@sveltejs/vite-plugin-svelte", vitePluginSvelte},
		{"svelte", svelteVersion},
		{"vite", viteVersion},
	}
	if o.Bool("typescript") {
		devDeps = append(devDeps, dep{"svelte-check", svelteCheck}, dep{"typescript", typescriptVersion})
	}
	if o.Bool("testing") {
		devDeps = append(devDeps, dep{"vitest", vitestVersion})
	}

	scripts := []dep{
		{"dev", "vite"},
		{"build", "vite build"},
		{"preview", "vite preview"},
	}
	if o.Bool("testing") {
		scripts = append(scripts, dep{"test", "vitest"})
	}

	return []scaffold.FileNode{
		file("package.json", packageJSON(ctx.Project, scripts, nil, devDeps)),
		file("index.html", render("svelte-index", `<!doctype html>
<html lang="en">
  <head>
    <meta charset="UTF-8" />
    <meta name="viewport" content="width=device-width, initial-scale=1.0" />
    <title>{{.Project}}</title>
  </head>
  <body>
    <div id="app"></div>
    <script type="module" src="/src/main.`+e+`"></script>
  </body>
</html>
`, ctx)),
		file("vite.config."+e, `import { defineConfig } from 'vite'
import { svelte } from '@sveltejs/vite-plugin-svelte'

export default defineConfig({
  plugins: [svelte()],
})
`),
		file("src/main."+e, `import App from './App.svelte'

const app = new App({
  target: document.getElementById('app')`+nonNullAssert(o)+`,
})

export default app
`),
		file("src/App.svelte", fmt.Sprintf(`<script%s>
  const title = '%s'
</script>

<h1>{title}</h1>
`, svelteLangAttr(o), ctx.Project)),
		file(".gitignore", nodeGitignore),
		file("README.md", readme(ctx.Project, "Svelte", "npm install\nnpm run dev")),
	}
}

func svelteLangAttr(o scaffold.ResolvedOptions) string {
	if o.Bool("typescript") {
		return ` lang="ts"`
	}
	return ""
}

func svelteTSConfig(ctx scaffold.Context) []scaffold.FileNode {
	return []scaffold.FileNode{
		file("tsconfig.json", `{
  "compilerOptions": {
    "target": "ES2022",
    "module": "ESNext",
    "moduleResolution": "bundler",
    "strict": true,
    "skipLibCheck": true,
    "noEmit": true
  },
  "include": ["src/**/*.ts", "src/**/*.svelte"]
}
`),
	}
}

func svelteTesting(ctx scaffold.Context) []scaffold.FileNode {
	e := ext(ctx.Options)
	return []scaffold.FileNode{
		file("src/App.test."+e, `import { describe, expect, it } from 'vitest'
import App from './App.svelte'

describe('App', () => {
  it('is defined', () => {
    expect(App).toBeDefined()
  })
})
`),
	}
}
