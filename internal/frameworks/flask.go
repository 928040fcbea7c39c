package frameworks

import (
	"fmt"

	"github.com/stencilhq/cli/internal/scaffold"
)

// Pinned flask stack versions.
const (
	flaskVersion     = "3.0.3"
	flaskSQLAlchemyV = "3.1.1"
	psycopg2Version  = "2.9.9"
	gunicornVersion  = "23.0.0"
)

// Flask returns the blueprint for Flask services.
func Flask() *scaffold.Blueprint {
	return &scaffold.Blueprint{
		Family:      "flask",
		Aliases:     []string{"flask"},
		Description: "Flask web application",
		Runtime:     "python",
		Schema: scaffold.Schema{
			{Key: "database", Kind: scaffold.KindString, Default: "none", Enum: []string{"none", "sqlite", "postgres"}, Doc: "Database integration via Flask-SQLAlchemy"},
			{Key: "docker", Kind: scaffold.KindBool, Default: false, Doc: "Include a Dockerfile"},
		},
		Features: []scaffold.Feature{
			{Name: "base", Files: flaskBase},
			{Name: "database", When: whenNotString("database", "none"), Files: flaskDatabase},
			{Name: "docker", When: whenBool("docker"), Files: pythonDockerfile(`CMD ["gunicorn", "-b", "0.0.0.0:8000", "app:create_app()"]`)},
		},
	}
}

func flaskBase(ctx scaffold.Context) []scaffold.FileNode {
	o := ctx.Options

	requirements := fmt.Sprintf("flask==%s\ngunicorn==%s\n", flaskVersion, gunicornVersion)
	switch o.String("database") {
	case "sqlite":
		requirements += fmt.Sprintf("flask-sqlalchemy==%s\n", flaskSQLAlchemyV)
	case "postgres":
		requirements += fmt.Sprintf("flask-sqlalchemy==%s\npsycopg2-binary==%s\n", flaskSQLAlchemyV, psycopg2Version)
	}

	appInit := `from flask import Flask
`
	if o.String("database") != "none" {
		appInit += `
from app.database import db
`
	}
	appInit += render("flask-create-app", `

def create_app() -> Flask:
    app = Flask("{{.Project}}")
`, ctx)
	if o.String("database") != "none" {
		appInit += `    app.config.setdefault("SQLALCHEMY_DATABASE_URI", "` + flaskDatabaseURL(o) + `")
    db.init_app(app)
`
	}
	appInit += `
    @app.get("/health")
    def health() -> dict[str, str]:
        return {"status": "ok"}

    return app
`

	return []scaffold.FileNode{
		file("requirements.txt", requirements),
		file("app/__init__.py", appInit),
		file("wsgi.py", `from app import create_app

app = create_app()

if __name__ == "__main__":
    app.run(debug=True)
`),
		file(".gitignore", pythonGitignore),
		file("README.md", readme(ctx.Project, "Flask", "pip install -r requirements.txt\nflask --app wsgi run --debug")),
	}
}

func flaskDatabaseURL(o scaffold.ResolvedOptions) string {
	if o.String("database") == "postgres" {
		return "postgresql://localhost:5432/app"
	}
	return "sqlite:///app.sqlite3"
}

func flaskDatabase(ctx scaffold.Context) []scaffold.FileNode {
	return []scaffold.FileNode{
		file("app/database.py", `from flask_sqlalchemy import SQLAlchemy

db = SQLAlchemy()
`),
	}
}
