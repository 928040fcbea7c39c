package frameworks

import (
	"bytes"
	"fmt"
	"strings"
	"text/template"

	"github.com/stencilhq/cli/internal/scaffold"
)

// render executes a file template against data. Templates here are static
// package data validated by the composition tests, so a parse or execute
// failure is a programming error, not a runtime condition.
func render(name, tmpl string, data any) string {
	t, err := template.New(name).Parse(tmpl)
	if err != nil {
		panic(fmt.Sprintf("frameworks: parsing template %s: %v", name, err))
	}

	var buf bytes.Buffer
	if err := t.Execute(&buf, data); err != nil {
		panic(fmt.Sprintf("frameworks: executing template %s: %v", name, err))
	}
	return buf.String()
}

// dep is one dependency pin: package name and version constraint.
type dep struct {
	Name    string
	Version string
}

// packageJSON assembles a manifest for node-based families. Sections are
// emitted in the order given so output is byte-deterministic.
func packageJSON(name string, scripts, deps, devDeps []dep) string {
	var b strings.Builder
	b.WriteString("{\n")
	fmt.Fprintf(&b, "  %q: %q,\n", "name", name)
	fmt.Fprintf(&b, "  %q: %q,\n", "version", "0.1.0")
	fmt.Fprintf(&b, "  %q: true", "private")

	writeSection := func(section string, entries []dep) {
		if len(entries) == 0 {
			return
		}
		fmt.Fprintf(&b, ",\n  %q: {\n", section)
		for i, e := range entries {
			fmt.Fprintf(&b, "    %q: %q", e.Name, e.Version)
			if i < len(entries)-1 {
				b.WriteString(",")
			}
			b.WriteString("\n")
		}
		b.WriteString("  }")
	}

	writeSection("scripts", scripts)
	writeSection("dependencies", deps)
	writeSection("devDependencies", devDeps)

	b.WriteString("\n}\n")
	return b.String()
}

// file is shorthand for a single FileNode.
func file(relPath, content string) scaffold.FileNode {
	return scaffold.FileNode{RelPath: relPath, Content: content}
}

// whenBool gates a feature on a boolean option.
func whenBool(key string) func(scaffold.ResolvedOptions) bool {
	return func(o scaffold.ResolvedOptions) bool { return o.Bool(key) }
}

// whenString gates a feature on a string option taking a specific value.
func whenString(key, value string) func(scaffold.ResolvedOptions) bool {
	return func(o scaffold.ResolvedOptions) bool { return o.String(key) == value }
}

// whenNotString gates a feature on a string option not taking a value
// (typically "none").
func whenNotString(key, value string) func(scaffold.ResolvedOptions) bool {
	return func(o scaffold.ResolvedOptions) bool { return o.String(key) != value }
}

// ext returns the source extension for the typescript option.
func ext(o scaffold.ResolvedOptions) string {
	if o.Bool("typescript") {
		return "ts"
	}
	return "js"
}

// extJSX returns the JSX source extension for the typescript option.
func extJSX(o scaffold.ResolvedOptions) string {
	if o.Bool("typescript") {
		return "tsx"
	}
	return "jsx"
}

// readme produces the standard project README.
func readme(project, family, runCmd string) string {
	return fmt.Sprintf("# %s\n\nA %s project scaffolded with stencil.\n\n## Getting started\n\n```sh\n%s\n```\n", project, family, runCmd)
}

// nodeGitignore is shared by all node-based families.
const nodeGitignore = `node_modules/
dist/
.env
*.log
`

// pythonGitignore is shared by all python-based families.
const pythonGitignore = `__pycache__/
*.py[cod]
.venv/
.env
*.sqlite3
`
