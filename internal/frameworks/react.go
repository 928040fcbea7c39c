package frameworks

import (
	"fmt"

	"github.com/stencilhq/cli/internal/scaffold"
)

// Pinned react stack versions.
const (
	reactVersion        = "^18.3.1"
	reactDOMVersion     = "^18.3.1"
	reactTypesVersion   = "^18.3.5"
	vitePluginReact     = "^4.3.1"
	tailwindVersion     = "^3.4.10"
	reduxToolkitVersion = "^2.2.7"
	reactReduxVersion   = "^9.1.2"
	zustandVersion      = "^4.5.5"
	vitestVersion       = "^2.1.1"
)

// React returns the blueprint for React projects built with Vite.
func React() *scaffold.Blueprint {
	return &scaffold.Blueprint{
		Family:      "react",
		Aliases:     []string{"react", "react-vite"},
		Description: "React single-page application built with Vite",
		Runtime:     "node",
		Schema: scaffold.Schema{
			{Key: "typescript", Kind: scaffold.KindBool, Default: true, Doc: "Use TypeScript"},
			{Key: "styling", Kind: scaffold.KindString, Default: "css", Enum: []string{"css", "tailwind"}, Doc: "Styling approach"},
			{Key: "state", Kind: scaffold.KindString, Default: "none", Enum: []string{"none", "redux", "zustand"}, Doc: "State management library"},
			{Key: "testing", Kind: scaffold.KindBool, Default: false, Doc: "Include Vitest scaffolding"},
			{Key: "docker", Kind: scaffold.KindBool, Default: false, Doc: "Include a Dockerfile"},
		},
		Features: []scaffold.Feature{
			{Name: "base", Files: reactBase},
			{Name: "typescript", When: whenBool("typescript"), Files: reactTSConfig},
			{Name: "tailwind", When: whenString("styling", "tailwind"), Files: reactTailwind},
			{Name: "redux", When: whenString("state", "redux"), Files: reactRedux},
			{Name: "zustand", When: whenString("state", "zustand"), Files: reactZustand},
			{Name: "testing", When: whenBool("testing"), Files: reactTesting},
			{Name: "docker", When: whenBool("docker"), Files: nodeDockerfile},
		},
	}
}

func reactBase(ctx scaffold.Context) []scaffold.FileNode {
	o := ctx.Options
	e := extJSX(o)

	deps := []dep{
		{"react", reactVersion},
		{"react-dom", reactDOMVersion},
	}
	switch o.String("state") {
	case "redux":
		deps = append(deps, dep{"@reduxjs/toolkit", reduxToolkitVersion}, dep{"react-redux", reactReduxVersion})
	case "zustand":
		deps = append(deps, dep{"zustand", zustandVersion})
	}

	devDeps := []dep{
		{"@vitejs/plugin-react", vitePluginReact},
		{"vite", viteVersion},
	}
	if o.Bool("typescript") {
		devDeps = append(devDeps,
			dep{"@types/react", reactTypesVersion},
			dep{"@types/react-dom", reactTypesVersion},
			dep{"typescript", typescriptVersion})
	}
	if o.String("styling") == "tailwind" {
		devDeps = append(devDeps, dep{"tailwindcss", tailwindVersion})
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

	// The entry imports the store only when state management is enabled.
	appBody := fmt.Sprintf(`export default function App() {
  return <h1>%s</h1>
}
`, ctx.Project)

	mainImports := "import React from 'react'\nimport ReactDOM from 'react-dom/client'\nimport App from './App'\nimport './index.css'\n"
	mainRender := `ReactDOM.createRoot(document.getElementById('root')` + nonNullAssert(o) + `).render(
  <React.StrictMode>
    <App />
  </React.StrictMode>,
)
`
	if o.String("state") == "redux" {
		mainImports += "import { Provider } from 'react-redux'\nimport { store } from './store'\n"
		mainRender = `ReactDOM.createRoot(document.getElementById('root')` + nonNullAssert(o) + `).render(
  <React.StrictMode>
    <Provider store={store}>
      <App />
    </Provider>
  </React.StrictMode>,
)
`
	}

	return []scaffold.FileNode{
		file("package.json", packageJSON(ctx.Project, scripts, deps, devDeps)),
		file("index.html", render("react-index", `<!doctype html>
<html lang="en">
  <head>
    <meta charset="UTF-8" />
    <meta name="viewport" content="width=device-width, initial-scale=1.0" />
    <title>{{.Project}}</title>
  </head>
  <body>
    <div id="root"></div>
    <script type="module" src="/src/main.`+e+`"></script>
  </body>
</html>
`, ctx)),
		file("vite.config."+ext(o), `import { defineConfig } from 'vite'
import react from '@vitejs/plugin-react'

export default defineConfig({
  plugins: [react()],
})
`),
		file("src/main."+e, mainImports+"\n"+mainRender),
		file("src/App."+e, appBody),
		file("src/index.css", reactIndexCSS(o)),
		file(".gitignore", nodeGitignore),
		file("README.md", readme(ctx.Project, "React", "npm install\nnpm run dev")),
	}
}

// nonNullAssert emits the TypeScript non-null assertion on the root lookup.
func nonNullAssert(o scaffold.ResolvedOptions) string {
	if o.Bool("typescript") {
		return "!"
	}
	return ""
}

func reactIndexCSS(o scaffold.ResolvedOptions) string {
	if o.String("styling") == "tailwind" {
		return "@tailwind base;\n@tailwind components;\n@tailwind utilities;\n"
	}
	return `:root {
  font-family: system-ui, sans-serif;
}

body {
  margin: 0;
}
`
}

func reactTSConfig(ctx scaffold.Context) []scaffold.FileNode {
	return []scaffold.FileNode{
		file("tsconfig.json", `{
  "compilerOptions": {
    "target": "ES2022",
    "module": "ESNext",
    "moduleResolution": "bundler",
    "jsx": "react-jsx",
    "strict": true,
    "skipLibCheck": true,
    "noEmit": true
  },
  "include": ["src"]
}
`),
	}
}

func reactTailwind(ctx scaffold.Context) []scaffold.FileNode {
	return []scaffold.FileNode{
		file("tailwind.config."+ext(ctx.Options), `/** @type {import('tailwindcss').Config} */
export default {
  content: ['./index.html', './src/**/*.{js,ts,jsx,tsx}'],
  theme: {
    extend: {},
  },
  plugins: [],
}
`),
		file("postcss.config."+ext(ctx.Options), `export default {
  plugins: {
    tailwindcss: {},
    autoprefixer: {},
  },
}
`),
	}
}

func reactRedux(ctx scaffold.Context) []scaffold.FileNode {
	e := ext(ctx.Options)

	store := `import { configureStore } from '@reduxjs/toolkit'

export const store = configureStore({
  reducer: {},
})
`
	if ctx.Options.Bool("typescript") {
		store += `
export type RootState = ReturnType<typeof store.getState>
export type AppDispatch = typeof store.dispatch
`
	}

	return []scaffold.FileNode{
		file("src/store/index."+e, store),
	}
}

func reactZustand(ctx scaffold.Context) []scaffold.FileNode {
	e := ext(ctx.Options)

	store := `import { create } from 'zustand'

`
	if ctx.Options.Bool("typescript") {
		store += `interface AppState {
  count: number
  increment: () => void
}

export const useAppStore = create<AppState>((set) => ({
`
	} else {
		store += `export const useAppStore = create((set) => ({
`
	}
	store += `  count: 0,
  increment: () => set((state) => ({ count: state.count + 1 })),
}))
`

	return []scaffold.FileNode{
		file("src/store/index."+e, store),
	}
}

func reactTesting(ctx scaffold.Context) []scaffold.FileNode {
	e := extJSX(ctx.Options)
	return []scaffold.FileNode{
		file("src/App.test."+e, `import { describe, expect, it } from 'vitest'
import App from './App'

describe('App', () => {
  it('is defined', () => {
    expect(App).toBeDefined()
  })
})
`),
	}
}

// nodeDockerfile is shared by node-based families that build static or
// server bundles with npm.
func nodeDockerfile(ctx scaffold.Context) []scaffold.FileNode {
	return []scaffold.FileNode{
		file("Dockerfile", `FROM node:20-alpine AS build
WORKDIR /app
COPY package.json ./
RUN npm install
COPY . .
RUN npm run build

FROM node:20-alpine
WORKDIR /app
COPY --from=build /app ./
EXPOSE 3000
CMD ["npm", "start"]
`),
		file(".dockerignore", `node_modules
dist
.git
`),
	}
}
