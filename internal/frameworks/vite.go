package frameworks

import (
	"fmt"

	"github.com/stencilhq/cli/internal/scaffold"
)

// Pinned vite toolchain versions.
const (
	viteVersion       = "^5.4.8"
	typescriptVersion = "^5.6.2"
)

// Vite returns the blueprint for vanilla Vite projects.
func Vite() *scaffold.Blueprint {
	return &scaffold.Blueprint{
		Family:      "vite",
		Aliases:     []string{"vite", "vite-vanilla"},
		Description: "Vanilla JavaScript or TypeScript project built with Vite",
		Runtime:     "node",
		Schema: scaffold.Schema{
			{Key: "typescript", Kind: scaffold.KindBool, Default: true, Doc: "Use TypeScript"},
		},
		Features: []scaffold.Feature{
			{Name: "base", Files: viteBase},
			{Name: "typescript", When: whenBool("typescript"), Files: viteTSConfig},
		},
	}
}

func viteBase(ctx scaffold.Context) []scaffold.FileNode {
	e := ext(ctx.Options)

	devDeps := []dep{{"vite", viteVersion}}
	if ctx.Options.Bool("typescript") {
		devDeps = append(devDeps, dep{"typescript", typescriptVersion})
	}

	return []scaffold.FileNode{
		file("package.json", packageJSON(ctx.Project,
			[]dep{
				{"dev", "vite"},
				{"build", "vite build"},
				{"preview", "vite preview"},
			},
			nil, devDeps)),
		file("index.html", render("vite-index", `<!doctype html>
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
		file("src/main."+e, fmt.Sprintf(`import './style.css'

const app = document.querySelector%s('#app')
if (app) {
  app.innerHTML = '<h1>%s</h1>'
}
`, viteQueryGeneric(ctx.Options), ctx.Project)),
		file("src/style.css", `:root {
  font-family: system-ui, sans-serif;
}

#app {
  max-width: 1280px;
  margin: 0 auto;
  padding: 2rem;
}
`),
		file(".gitignore", nodeGitignore),
		file("README.md", readme(ctx.Project, "Vite", "npm install\nnpm run dev")),
	}
}

// viteQueryGeneric adds the element type parameter only for TypeScript.
func viteQueryGeneric(o scaffold.ResolvedOptions) string {
	if o.Bool("typescript") {
		return "<HTMLDivElement>"
	}
	return ""
}

func viteTSConfig(ctx scaffold.Context) []scaffold.FileNode {
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
  "include": ["src"]
}
`),
	}
}
