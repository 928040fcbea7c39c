package frameworks

import (
	"fmt"
	"strings"

	"github.com/stencilhq/cli/internal/scaffold"
)

// Pinned django stack versions.
const (
	djangoVersion = "5.1.1"
	djangoRESTV   = "3.15.2"
)

// Django returns the blueprint for Django projects.
func Django() *scaffold.Blueprint {
	return &scaffold.Blueprint{
		Family:      "django",
		Aliases:     []string{"django"},
		Description: "Django web project",
		Runtime:     "python",
		Schema: scaffold.Schema{
			{Key: "database", Kind: scaffold.KindString, Default: "sqlite", Enum: []string{"sqlite", "postgres"}, Doc: "Database backend"},
			{Key: "rest", Kind: scaffold.KindBool, Default: false, Doc: "Include Django REST framework"},
			{Key: "docker", Kind: scaffold.KindBool, Default: false, Doc: "Include a Dockerfile"},
		},
		Features: []scaffold.Feature{
			{Name: "base", Files: djangoBase},
			{Name: "docker", When: whenBool("docker"), Files: pythonDockerfile(`CMD ["python", "manage.py", "runserver", "0.0.0.0:8000"]`)},
		},
	}
}

// djangoPackage converts the project name to a valid python package name.
func djangoPackage(project string) string {
	pkg := strings.ToLower(strings.NewReplacer("-", "_", ".", "_").Replace(project))
	if pkg == "" {
		return "project"
	}
	return pkg
}

func djangoBase(ctx scaffold.Context) []scaffold.FileNode {
	o := ctx.Options
	pkg := djangoPackage(ctx.Project)

	requirements := fmt.Sprintf("django==%s\n", djangoVersion)
	if o.String("database") == "postgres" {
		requirements += fmt.Sprintf("psycopg2-binary==%s\n", psycopg2Version)
	}
	if o.Bool("rest") {
		requirements += fmt.Sprintf("djangorestframework==%s\n", djangoRESTV)
	}

	installedApps := `    "django.contrib.admin",
    "django.contrib.auth",
    "django.contrib.contenttypes",
    "django.contrib.sessions",
    "django.contrib.staticfiles",
`
	if o.Bool("rest") {
		installedApps += `    "rest_framework",
`
	}

	databases := `DATABASES = {
    "default": {
        "ENGINE": "django.db.backends.sqlite3",
        "NAME": BASE_DIR / "db.sqlite3",
    }
}
`
	if o.String("database") == "postgres" {
		databases = `DATABASES = {
    "default": {
        "ENGINE": "django.db.backends.postgresql",
        "NAME": os.environ.get("POSTGRES_DB", "app"),
        "HOST": os.environ.get("POSTGRES_HOST", "localhost"),
        "PORT": os.environ.get("POSTGRES_PORT", "5432"),
    }
}
`
	}

	settings := fmt.Sprintf(`import os
from pathlib import Path

BASE_DIR = Path(__file__).resolve().parent.parent

SECRET_KEY = os.environ.get("DJANGO_SECRET_KEY", "dev-only-insecure-key")
DEBUG = os.environ.get("DJANGO_DEBUG", "true") == "true"
ALLOWED_HOSTS: list[str] = []

INSTALLED_APPS = [
%s]

ROOT_URLCONF = "%s.urls"
WSGI_APPLICATION = "%s.wsgi.application"

MIDDLEWARE = [
    "django.middleware.security.SecurityMiddleware",
    "django.contrib.sessions.middleware.SessionMiddleware",
    "django.middleware.common.CommonMiddleware",
]

%s
STATIC_URL = "static/"
DEFAULT_AUTO_FIELD = "django.db.models.BigAutoField"
`, installedApps, pkg, pkg, databases)

	manage := fmt.Sprintf(`#!/usr/bin/env python
import os
import sys


def main() -> None:
    os.environ.setdefault("DJANGO_SETTINGS_MODULE", "%s.settings")
    from django.core.management import execute_from_command_line

    execute_from_command_line(sys.argv)


if __name__ == "__main__":
    main()
`, pkg)

	wsgi := fmt.Sprintf(`import os

from django.core.wsgi import get_wsgi_application

os.environ.setdefault("DJANGO_SETTINGS_MODULE", "%s.settings")

application = get_wsgi_application()
`, pkg)

	return []scaffold.FileNode{
		file("requirements.txt", requirements),
		file("manage.py", manage),
		file(pkg+"/__init__.py", ""),
		file(pkg+"/settings.py", settings),
		file(pkg+"/urls.py", `from django.contrib import admin
from django.urls import path

urlpatterns = [
    path("admin/", admin.site.urls),
]
`),
		file(pkg+"/wsgi.py", wsgi),
		file(".gitignore", pythonGitignore),
		file("README.md", readme(ctx.Project, "Django", "pip install -r requirements.txt\npython manage.py migrate\npython manage.py runserver")),
	}
}
