package frameworks

import (
	"fmt"

	"github.com/stencilhq/cli/internal/scaffold"
)

// Pinned angular stack versions.
const (
	angularVersion    = "^18.2.0"
	angularCLIVersion = "^18.2.0"
	zoneJSVersion     = "~0.14.10"
	rxjsVersion       = "~7.8.1"
)

// Angular returns the blueprint for Angular projects. Angular is always
// TypeScript; the schema varies styling and routing only.
func Angular() *scaffold.Blueprint {
	return &scaffold.Blueprint{
		Family:      "angular",
		Aliases:     []string{"angular"},
		Description: "Angular standalone-component application",
		Runtime:     "node",
		Schema: scaffold.Schema{
			{Key: "styling", Kind: scaffold.KindString, Default: "css", Enum: []string{"css", "scss"}, Doc: "Stylesheet format"},
			{Key: "routing", Kind: scaffold.KindBool, Default: true, Doc: "Include router scaffolding"},
		},
		Features: []scaffold.Feature{
			{Name: "base", Files: angularBase},
			{Name: "routing", When: whenBool("routing"), Files: angularRouting},
		},
	}
}

func angularBase(ctx scaffold.Context) []scaffold.FileNode {
	o := ctx.Options
	styleExt := o.String("styling")

	deps := []dep{
		{"@angular/common", angularVersion},
		{"@angular/compiler", angularVersion},
		{"@angular/core", angularVersion},
		{"@angular/platform-browser", angularVersion},
		{"rxjs", rxjsVersion},
		{"zone.js", zoneJSVersion},
	}
	if o.Bool("routing") {
		deps = append(deps, dep{"@angular/router", angularVersion})
	}

	devDeps := []dep{
		{"@angular/cli", angularCLIVersion},
		{"@angular-devkit/build-angular", angularCLIVersion},
		{"typescript", typescriptVersion},
	}

	scripts := []dep{
		{"start", "ng serve"},
		{"build", "ng build"},
	}

	bootstrapImports := "import { bootstrapApplication } from '@angular/platform-browser'\nimport { AppComponent } from './app/app.component'\n"
	bootstrapCall := "bootstrapApplication(AppComponent)"
	if o.Bool("routing") {
		bootstrapImports += "import { provideRouter } from '@angular/router'\nimport { routes } from './app/app.routes'\n"
		bootstrapCall = "bootstrapApplication(AppComponent, {\n  providers: [provideRouter(routes)],\n})"
	}

	return []scaffold.FileNode{
		file("package.json", packageJSON(ctx.Project, scripts, deps, devDeps)),
		file("angular.json", render("angular-json", `{
  "$schema": "./node_modules/@angular/cli/lib/config/schema.json",
  "version": 1,
  "projects": {
    "{{.Project}}": {
      "projectType": "application",
      "root": "",
      "sourceRoot": "src",
      "architect": {
        "build": {
          "builder": "@angular-devkit/build-angular:application",
          "options": {
            "outputPath": "dist",
            "index": "src/index.html",
            "browser": "src/main.ts",
            "styles": ["src/styles.`+styleExt+`"]
          }
        }
      }
    }
  }
}
`, ctx)),
		file("tsconfig.json", `{
  "compilerOptions": {
    "target": "ES2022",
    "module": "ES2022",
    "moduleResolution": "bundler",
    "strict": true,
    "experimentalDecorators": true,
    "skipLibCheck": true
  },
  "include": ["src"]
}
`),
		file("src/index.html", render("angular-index", `<!doctype html>
<html lang="en">
  <head>
    <meta charset="utf-8" />
    <title>{{.Project}}</title>
    <meta name="viewport" content="width=device-width, initial-scale=1" />
  </head>
  <body>
    <app-root></app-root>
  </body>
</html>
`, ctx)),
		file("src/main.ts", bootstrapImports+"\n"+bootstrapCall+"\n  .catch((err) => console.error(err))\n"),
		file("src/app/app.component.ts", fmt.Sprintf(`import { Component } from '@angular/core'

@Component({
  selector: 'app-root',
  standalone: true,
  template: '<h1>{{ title }}</h1>',
})
export class AppComponent {
  title = '%s'
}
`, ctx.Project)),
		file("src/styles."+styleExt, `html, body {
  margin: 0;
  font-family: system-ui, sans-serif;
}
`),
		file(".gitignore", nodeGitignore),
		file("README.md", readme(ctx.Project, "Angular", "npm install\nnpm start")),
	}
}

func angularRouting(ctx scaffold.Context) []scaffold.FileNode {
	return []scaffold.FileNode{
		file("src/app/app.routes.ts", `import { Routes } from '@angular/router'

export const routes: Routes = []
`),
	}
}
