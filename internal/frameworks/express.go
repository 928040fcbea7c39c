package frameworks

import (
	"fmt"

	"github.com/stencilhq/cli/internal/scaffold"
)

// Pinned express stack versions.
const (
	expressVersion      = "^4.21.0"
	dotenvVersion       = "^16.4.5"
	pgVersion           = "^8.13.0"
	mongooseVersion     = "^8.6.3"
	nodemonVersion      = "^3.1.5"
	tsNodeVersion       = "^10.9.2"
	nodeTypesVersion    = "^22.5.5"
	expressTypesVersion = "^4.17.21"
	jestVersion         = "^29.7.0"
	supertestVersion    = "^7.0.0"
)

// Express returns the blueprint for Express HTTP services.
func Express() *scaffold.Blueprint {
	return &scaffold.Blueprint{
		Family:      "express",
		Aliases:     []string{"express", "expressjs"},
		Description: "Express HTTP service",
		Runtime:     "node",
		Schema: scaffold.Schema{
			{Key: "typescript", Kind: scaffold.KindBool, Default: false, Doc: "Use TypeScript"},
			{Key: "database", Kind: scaffold.KindString, Default: "none", Enum: []string{"none", "postgres", "mongodb"}, Doc: "Database integration"},
			{Key: "testing", Kind: scaffold.KindBool, Default: false, Doc: "Include Jest scaffolding"},
			{Key: "docker", Kind: scaffold.KindBool, Default: false, Doc: "Include a Dockerfile"},
		},
		Features: []scaffold.Feature{
			{Name: "base", Files: expressBase},
			{Name: "typescript", When: whenBool("typescript"), Files: expressTSConfig},
			{Name: "database", When: whenNotString("database", "none"), Files: expressDatabase},
			{Name: "testing", When: whenBool("testing"), Files: expressTesting},
			{Name: "docker", When: whenBool("docker"), Files: nodeDockerfile},
		},
	}
}

func expressBase(ctx scaffold.Context) []scaffold.FileNode {
	o := ctx.Options
	e := ext(o)

	deps := []dep{
		{"dotenv", dotenvVersion},
		{"express", expressVersion},
	}
	switch o.String("database") {
	case "postgres":
		deps = append(deps, dep{"pg", pgVersion})
	case "mongodb":
		deps = append(deps, dep{"mongoose", mongooseVersion})
	}

	devDeps := []dep{{"nodemon", nodemonVersion}}
	if o.Bool("typescript") {
		devDeps = append(devDeps,
			dep{"@types/express", expressTypesVersion},
			dep{"@types/node", nodeTypesVersion},
			dep{"ts-node", tsNodeVersion},
			dep{"typescript", typescriptVersion})
	}
	if o.Bool("testing") {
		devDeps = append(devDeps, dep{"jest", jestVersion}, dep{"supertest", supertestVersion})
	}

	var scripts []dep
	if o.Bool("typescript") {
		scripts = []dep{
			{"dev", "nodemon --exec ts-node src/index.ts"},
			{"build", "tsc"},
			{"start", "node dist/index.js"},
		}
	} else {
		scripts = []dep{
			{"dev", "nodemon src/index.js"},
			{"start", "node src/index.js"},
		}
	}
	if o.Bool("testing") {
		scripts = append(scripts, dep{"test", "jest"})
	}

	dbImport := ""
	if o.String("database") != "none" {
		dbImport = "import { connect } from './db'\n"
	}

	entry := render("express-entry", `import 'dotenv/config'
import express from 'express'
`+dbImport+`
const app = express()
const port = process.env.PORT || 3000

app.use(express.json())

app.get('/health', (req, res) => {
  res.json({ status: 'ok', service: '{{.Project}}' })
})
`+expressListen(o), ctx)

	return []scaffold.FileNode{
		file("package.json", packageJSON(ctx.Project, scripts, deps, devDeps)),
		file("src/index."+e, entry),
		file(".env.example", "PORT=3000\n"+dbEnvExample(o.String("database"))),
		file(".gitignore", nodeGitignore),
		file("README.md", readme(ctx.Project, "Express", "npm install\nnpm run dev")),
	}
}

func expressListen(o scaffold.ResolvedOptions) string {
	if o.String("database") != "none" {
		return `
connect().then(() => {
  app.listen(port, () => console.log('{{.Project}} listening on port ' + port))
})
`
	}
	return `
app.listen(port, () => console.log('{{.Project}} listening on port ' + port))
`
}

func dbEnvExample(database string) string {
	switch database {
	case "postgres":
		return "DATABASE_URL=postgres://localhost:5432/app\n"
	case "mongodb":
		return "MONGODB_URI=mongodb://localhost:27017/app\n"
	case "sqlite":
		return "DATABASE_PATH=./app.sqlite3\n"
	case "mysql":
		return "DATABASE_URL=mysql://localhost:3306/app\n"
	default:
		return ""
	}
}

func expressTSConfig(ctx scaffold.Context) []scaffold.FileNode {
	return []scaffold.FileNode{
		file("tsconfig.json", `{
  "compilerOptions": {
    "target": "ES2022",
    "module": "CommonJS",
    "moduleResolution": "node",
    "outDir": "dist",
    "strict": true,
    "esModuleInterop": true,
    "skipLibCheck": true
  },
  "include": ["src"]
}
`),
	}
}

func expressDatabase(ctx scaffold.Context) []scaffold.FileNode {
	e := ext(ctx.Options)

	var body string
	switch ctx.Options.String("database") {
	case "postgres":
		body = `import pg from 'pg'

const pool = new pg.Pool({ connectionString: process.env.DATABASE_URL })

export async function connect() {
  await pool.query('SELECT 1')
  return pool
}
`
	case "mongodb":
		body = `import mongoose from 'mongoose'

export async function connect() {
  return mongoose.connect(process.env.MONGODB_URI` + nonNullAssert(ctx.Options) + `)
}
`
	}

	return []scaffold.FileNode{
		file("src/db."+e, body),
	}
}

func expressTesting(ctx scaffold.Context) []scaffold.FileNode {
	e := ext(ctx.Options)
	return []scaffold.FileNode{
		file("src/health.test."+e, fmt.Sprintf(`describe('%s', () => {
  it('runs the test suite', () => {
    expect(true).toBe(true)
  })
})
`, ctx.Project)),
	}
}
