package frameworks

import (
	"fmt"

	"github.com/stencilhq/cli/internal/scaffold"
)

// Pinned fastapi stack versions.
const (
	fastapiVersion  = "0.115.0"
	uvicornVersion  = "0.30.6"
	sqlalchemyV     = "2.0.35"
	psycopgVersion  = "3.2.2"
	pytestVersion   = "8.3.3"
	httpxVersion    = "0.27.2"
	pydanticVersion = "2.9.2"
)

// FastAPI returns the blueprint for FastAPI services.
func FastAPI() *scaffold.Blueprint {
	return &scaffold.Blueprint{
		Family:      "fastapi",
		Aliases:     []string{"fastapi"},
		Description: "FastAPI HTTP service",
		Runtime:     "python",
		Schema: scaffold.Schema{
			{Key: "database", Kind: scaffold.KindString, Default: "none", Enum: []string{"none", "postgres", "sqlite"}, Doc: "Database integration via SQLAlchemy"},
			{Key: "docker", Kind: scaffold.KindBool, Default: false, Doc: "Include a Dockerfile"},
			{Key: "testing", Kind: scaffold.KindBool, Default: false, Doc: "Include pytest scaffolding"},
		},
		Features: []scaffold.Feature{
			{Name: "base", Files: fastapiBase},
			{Name: "database", When: whenNotString("database", "none"), Files: fastapiDatabase},
			{Name: "testing", When: whenBool("testing"), Files: fastapiTesting},
			{Name: "docker", When: whenBool("docker"), Files: pythonDockerfile(`CMD ["python", "-m", "uvicorn", "app.main:app", "--host", "0.0.0.0"]`)},
		},
	}
}

func fastapiBase(ctx scaffold.Context) []scaffold.FileNode {
	o := ctx.Options

	requirements := fmt.Sprintf("fastapi==%s\npydantic==%s\nuvicorn[standard]==%s\n", fastapiVersion, pydanticVersion, uvicornVersion)
	switch o.String("database") {
	case "postgres":
		requirements += fmt.Sprintf("psycopg[binary]==%s\nsqlalchemy==%s\n", psycopgVersion, sqlalchemyV)
	case "sqlite":
		requirements += fmt.Sprintf("sqlalchemy==%s\n", sqlalchemyV)
	}
	if o.Bool("testing") {
		requirements += fmt.Sprintf("httpx==%s\npytest==%s\n", httpxVersion, pytestVersion)
	}

	main := render("fastapi-main", `from fastapi import FastAPI

app = FastAPI(title="{{.Project}}")


@app.get("/health")
def health() -> dict[str, str]:
    return {"status": "ok", "service": "{{.Project}}"}
`, ctx)

	return []scaffold.FileNode{
		file("requirements.txt", requirements),
		file("app/__init__.py", ""),
		file("app/main.py", main),
		file(".gitignore", pythonGitignore),
		file("README.md", readme(ctx.Project, "FastAPI", "pip install -r requirements.txt\nuvicorn app.main:app --reload")),
	}
}

func fastapiDatabase(ctx scaffold.Context) []scaffold.FileNode {
	url := "sqlite:///./app.sqlite3"
	if ctx.Options.String("database") == "postgres" {
		url = "postgresql+psycopg://localhost:5432/app"
	}

	return []scaffold.FileNode{
		file("app/database.py", fmt.Sprintf(`import os

from sqlalchemy import create_engine
from sqlalchemy.orm import DeclarativeBase, sessionmaker

DATABASE_URL = os.environ.get("DATABASE_URL", "%s")

engine = create_engine(DATABASE_URL)
SessionLocal = sessionmaker(bind=engine, autoflush=False)


class Base(DeclarativeBase):
    pass
`, url)),
	}
}

func fastapiTesting(ctx scaffold.Context) []scaffold.FileNode {
	return []scaffold.FileNode{
		file("tests/__init__.py", ""),
		file("tests/test_health.py", `from fastapi.testclient import TestClient

from app.main import app

client = TestClient(app)


def test_health() -> None:
    response = client.get("/health")
    assert response.status_code == 200
    assert response.json()["status"] == "ok"
`),
	}
}

// pythonDockerfile builds the shared python Dockerfile contribution with a
// family-specific run command.
func pythonDockerfile(cmd string) func(scaffold.Context) []scaffold.FileNode {
	return func(scaffold.Context) []scaffold.FileNode {
		return []scaffold.FileNode{
			file("Dockerfile", `FROM python:3.12-slim
WORKDIR /app
COPY requirements.txt ./
RUN pip install --no-cache-dir -r requirements.txt
COPY . .
EXPOSE 8000
`+cmd+"\n"),
			file(".dockerignore", `.venv
__pycache__
.git
`),
		}
	}
}
