package frameworks

import (
	"fmt"

	"github.com/stencilhq/cli/internal/scaffold"
)

// Pinned vue stack versions.
const (
	vueVersion       = "^3.5.6"
	vitePluginVue    = "^5.1.3"
	piniaVersion     = "^2.2.2"
	vueRouterVersion = "^4.4.5"
	vueTSCVersion    = "^2.1.6"
)

// Vue returns the blueprint for Vue 3 projects built with Vite.
func Vue() *scaffold.Blueprint {
	return &scaffold.Blueprint{
		Family:      "vue",
		Aliases:     []string{"vue", "vuejs", "vue3"},
		Description: "Vue 3 single-page application built with Vite",
		Runtime:     "node",
		Schema: scaffold.Schema{
			{Key: "typescript", Kind: scaffold.KindBool, Default: true, Doc: "Use TypeScript"},
			{Key: "state", Kind: scaffold.KindString, Default: "none", Enum: []string{"none", "pinia"}, Doc: "State management library"},
			{Key: "router", Kind: scaffold.KindBool, Default: false, Doc: "Include vue-router"},
			{Key: "testing", Kind: scaffold.KindBool, Default: false, Doc: "Include Vitest scaffolding"},
		},
		Features: []scaffold.Feature{
			{Name: "base", Files: vueBase},
			{Name: "typescript", When: whenBool("typescript"), Files: vueTSConfig},
			{Name: "pinia", When: whenString("state", "pinia"), Files: vuePinia},
			{Name: "router", When: whenBool("router"), Files: vueRouter},
			{Name: "testing", When: whenBool("testing"), Files: vueTesting},
		},
	}
}

func vueBase(ctx scaffold.Context) []scaffold.FileNode {
	o := ctx.Options
	e := ext(o)

	deps := []dep{{"vue", vueVersion}}
	if o.String("state") == "pinia" {
		deps = append(deps, dep{"pinia", piniaVersion})
	}
	if o.Bool("router") {
		deps = append(deps, dep{"vue-router", vueRouterVersion})
	}

	devDeps := []dep{
		{"@vitejs/plugin-vue", vitePluginVue},
		{"vite", viteVersion},
	}
	if o.Bool("typescript") {
		devDeps = append(devDeps, dep{"typescript", typescriptVersion}, dep{"vue-tsc", vueTSCVersion})
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

	main := "import { createApp } from 'vue'\nimport App from './App.vue'\n"
	setup := "const app = createApp(App)\n"
	if o.String("state") == "pinia" {
		main += "import { createPinia } from 'pinia'\n"
		setup += "app.use(createPinia())\n"
	}
	if o.Bool("router") {
		main += "import { router } from './router'\n"
		setup += "app.use(router)\n"
	}
	setup += "app.mount('#app')\n"

	return []scaffold.FileNode{
		file("package.json", packageJSON(ctx.Project, scripts, deps, devDeps)),
		file("index.html", render("vue-index", `<!doctype html>
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
import vue from '@vitejs/plugin-vue'

export default defineConfig({
  plugins: [vue()],
})
`),
		file("src/main."+e, main+"\n"+setup),
		file("src/App.vue", fmt.Sprintf(`<script setup%s>
const title = '%s'
</script>

<template>
  <h1>{{ title }}</h1>
</template>
`, vueLangAttr(o), ctx.Project)),
		file(".gitignore", nodeGitignore),
		file("README.md", readme(ctx.Project, "Vue", "npm install\nnpm run dev")),
	}
}

func vueLangAttr(o scaffold.ResolvedOptions) string {
	if o.Bool("typescript") {
		return ` lang="ts"`
	}
	return ""
}

func vueTSConfig(ctx scaffold.Context) []scaffold.FileNode {
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
  "include": ["src/**/*.ts", "src/**/*.vue"]
}
`),
	}
}

func vuePinia(ctx scaffold.Context) []scaffold.FileNode {
	e := ext(ctx.Options)
	return []scaffold.FileNode{
		file("src/stores/app."+e, `import { defineStore } from 'pinia'

export const useAppStore = defineStore('app', {
  state: () => ({
    count: 0,
  }),
  actions: {
    increment() {
      this.count++
    },
  },
})
`),
	}
}

func vueRouter(ctx scaffold.Context) []scaffold.FileNode {
	e := ext(ctx.Options)
	return []scaffold.FileNode{
		file("src/router/index."+e, `import { createRouter, createWebHistory } from 'vue-router'
import App from '../App.vue'

export const router = createRouter({
  history: createWebHistory(),
  routes: [{ path: '/', component: App }],
})
`),
	}
}

func vueTesting(ctx scaffold.Context) []scaffold.FileNode {
	e := ext(ctx.Options)
	return []scaffold.FileNode{
		file("src/App.test."+e, `import { describe, expect, it } from 'vitest'
import App from './App.vue'

describe('App', () => {
  it('is defined', () => {
    expect(App).toBeDefined()
  })
})
`),
	}
}
