package frameworks

import (
	"fmt"

	"github.com/stencilhq/cli/internal/scaffold"
)

// Pinned next.js stack versions.
const (
	nextVersion       = "^14.2.13"
	eslintVersion     = "^8.57.0"
	eslintNextVersion = "^14.2.13"
)

// NextJS returns the blueprint for Next.js app-router projects.
func NextJS() *scaffold.Blueprint {
	return &scaffold.Blueprint{
		Family:      "nextjs",
		Aliases:     []string{"nextjs", "next", "next.js"},
		Description: "Next.js application using the app router",
		Runtime:     "node",
		Schema: scaffold.Schema{
			{Key: "typescript", Kind: scaffold.KindBool, Default: true, Doc: "Use TypeScript"},
			{Key: "styling", Kind: scaffold.KindString, Default: "css", Enum: []string{"css", "tailwind"}, Doc: "Styling approach"},
			{Key: "eslint", Kind: scaffold.KindBool, Default: true, Doc: "Include ESLint configuration"},
			{Key: "docker", Kind: scaffold.KindBool, Default: false, Doc: "Include a Dockerfile"},
		},
		Features: []scaffold.Feature{
			{Name: "base", Files: nextBase},
			{Name: "typescript", When: whenBool("typescript"), Files: nextTSConfig},
			{Name: "tailwind", When: whenString("styling", "tailwind"), Files: nextTailwind},
			{Name: "eslint", When: whenBool("eslint"), Files: nextESLint},
			{Name: "docker", When: whenBool("docker"), Files: nodeDockerfile},
		},
	}
}

func nextBase(ctx scaffold.Context) []scaffold.FileNode {
	o := ctx.Options
	e := extJSX(o)

	deps := []dep{
		{"next", nextVersion},
		{"react", reactVersion},
		{"react-dom", reactDOMVersion},
	}

	var devDeps []dep
	if o.Bool("typescript") {
		devDeps = append(devDeps,
			dep{"@types/react", reactTypesVersion},
			dep{"@types/react-dom", reactTypesVersion},
			dep{"typescript", typescriptVersion})
	}
	if o.String("styling") == "tailwind" {
		devDeps = append(devDeps, dep{"tailwindcss", tailwindVersion})
	}
	if o.Bool("eslint") {
		devDeps = append(devDeps,
			dep{"eslint", eslintVersion},
			dep{"eslint-config-next", eslintNextVersion})
	}

	scripts := []dep{
		{"dev", "next dev"},
		{"build", "next build"},
		{"start", "next start"},
	}
	if o.Bool("eslint") {
		scripts = append(scripts, dep{"lint", "next lint"})
	}

	layoutProps := "{ children }"
	if o.Bool("typescript") {
		layoutProps = "{ children }: { children: React.ReactNode }"
	}

	return []scaffold.FileNode{
		file("package.json", packageJSON(ctx.Project, scripts, deps, devDeps)),
		file("next.config.mjs", `/** @type {import('next').NextConfig} */
const nextConfig = {}

export default nextConfig
`),
		file("app/layout."+e, fmt.Sprintf(`import './globals.css'

export const metadata = {
  title: '%s',
}

export default function RootLayout(%s) {
  return (
    <html lang="en">
      <body>{children}</body>
    </html>
  )
}
`, ctx.Project, layoutProps)),
		file("app/page."+e, fmt.Sprintf(`export default function Home() {
  return <main><h1>%s</h1></main>
}
`, ctx.Project)),
		file("app/globals.css", reactIndexCSS(o)),
		file(".gitignore", nodeGitignore+".next/\n"),
		file("README.md", readme(ctx.Project, "Next.js", "npm install\nnpm run dev")),
	}
}

func nextTSConfig(ctx scaffold.Context) []scaffold.FileNode {
	return []scaffold.FileNode{
		file("tsconfig.json", `{
  "compilerOptions": {
    "target": "ES2022",
    "module": "ESNext",
    "moduleResolution": "bundler",
    "jsx": "preserve",
    "strict": true,
    "skipLibCheck": true,
    "noEmit": true,
    "plugins": [{ "name": "next" }]
  },
  "include": ["app", "next-env.d.ts"]
}
`),
	}
}

func nextTailwind(ctx scaffold.Context) []scaffold.FileNode {
	return []scaffold.FileNode{
		file("tailwind.config."+ext(ctx.Options), `/** @type {import('tailwindcss').Config} */
export default {
  content: ['./app/**/*.{js,ts,jsx,tsx}'],
  theme: {
    extend: {},
  },
  plugins: [],
}
`),
	}
}

func nextESLint(ctx scaffold.Context) []scaffold.FileNode {
	return []scaffold.FileNode{
		file(".eslintrc.json", `{
  "extends": "next/core-web-vitals"
}
`),
	}
}
