package cmd

import (
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/spf13/cobra"

	serrors "github.com/stencilhq/cli/internal/errors"
	"github.com/stencilhq/cli/internal/output"
	"github.com/stencilhq/cli/internal/scaffold"
	"github.com/stencilhq/cli/internal/version"
)

var (
	newDir   string
	newSet   []string
	newForce bool
)

// NewNewCmd creates the new command.
func NewNewCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "new <framework> <name>",
		Short: "Create a new project from a framework blueprint",
		Long: `Create a new project from a framework blueprint.

Options are declared with repeated --set flags; anything not set falls
back to the configured family defaults, then to the blueprint defaults.

Examples:
  # Create a React project with the default options
  stencil new react my-app

  # Create a JavaScript React project with Tailwind
  stencil new react my-app --set typescript=false --set styling=tailwind

  # Create a Spring Boot service in a specific directory
  stencil new spring billing --dir ./services`,
		Args: cobra.ExactArgs(2),
		RunE: runNew,
	}

	cmd.Flags().StringVarP(&newDir, "dir", "d", "", "Directory to create the project in (defaults to the working directory)")
	cmd.Flags().StringArrayVarP(&newSet, "set", "s", nil, "Set a framework option as key=value (repeatable)")
	cmd.Flags().BoolVarP(&newForce, "force", "f", false, "Allow scaffolding into a non-empty directory")

	return cmd
}

func runNew(cmd *cobra.Command, args []string) error {
	familyID, name := args[0], args[1]

	targetRoot := newDir
	if targetRoot == "" {
		targetRoot = appConfig.OutputDir
	}

	req := scaffold.ProjectRequest{
		Name:            name,
		FamilyID:        familyID,
		DeclaredOptions: parseSetFlags(newSet),
		TargetRoot:      targetRoot,
	}

	if err := scaffold.ValidateRequest(req); err != nil {
		return err
	}

	builder, err := registry.Lookup(req.FamilyID)
	if err != nil {
		return err
	}
	bp := builder.Blueprint()

	// Configured family defaults sit beneath declared options.
	req.DeclaredOptions = appConfig.MergeOptions(bp.Family, req.DeclaredOptions)

	if !newForce {
		if err := checkTargetDir(req); err != nil {
			return err
		}
	}

	var outcome scaffold.BuildOutcome
	err = output.RunWithSpinner(cmd.Context(), func() error {
		outcome = builder.Build(req)
		return nil
	}, output.WithTitle(fmt.Sprintf("Scaffolding %s project %s...", bp.Family, name)))
	if err != nil {
		return err
	}

	if !outcome.Success {
		return serrors.Wrap(serrors.ErrFilesystem,
			fmt.Sprintf("%s: %s", outcome.Message, outcome.Failure))
	}

	output.Println(output.FormatCheckmark(outcome.Message) + "\n")

	files := make(map[string]string, len(outcome.ProducedPaths))
	for _, p := range outcome.ProducedPaths {
		files[p] = describeFile(p)
	}
	output.Print(output.RenderFileTree(name, files))

	if tc := version.DetectToolchain(bp.Runtime); tc.Name != "" && !tc.Found {
		output.Warn("toolchain not found on PATH, the generated project needs it",
			"runtime", bp.Runtime,
			"binary", tc.Name)
	}

	return nil
}

// parseSetFlags converts repeated key=value flags to a declared option
// map. Values stay strings; the option resolver coerces them. A bare key
// without '=' declares a boolean true.
func parseSetFlags(flags []string) map[string]any {
	if len(flags) == 0 {
		return nil
	}

	declared := make(map[string]any, len(flags))
	for _, f := range flags {
		key, value, found := strings.Cut(f, "=")
		key = strings.TrimSpace(key)
		if key == "" {
			continue
		}
		if !found {
			declared[key] = "true"
			continue
		}
		declared[key] = strings.TrimSpace(value)
	}
	return declared
}

// checkTargetDir rejects a non-empty project directory unless --force is
// set. The core deliberately overwrites; this guard is CLI-level UX.
func checkTargetDir(req scaffold.ProjectRequest) error {
	root := req.TargetRoot
	if root == "" {
		wd, err := os.Getwd()
		if err != nil {
			return err
		}
		root = wd
	}
	projectDir := filepath.Join(root, req.Name)

	entries, err := os.ReadDir(projectDir)
	if err != nil {
		// Missing directory is the normal case.
		return nil
	}
	if len(entries) > 0 {
		return &serrors.DetailError{
			Type:     "invalid request",
			Message:  fmt.Sprintf("directory %s is not empty", projectDir),
			Location: projectDir,
			Hint:     "Use --force to overwrite existing files.",
			Cause:    serrors.ErrInvalidRequest,
		}
	}
	return nil
}

// describeFile returns a short description for well-known generated files.
func describeFile(path string) string {
	base := filepath.Base(path)

	descriptions := map[string]string{
		"package.json":       "Package manifest",
		"requirements.txt":   "Python dependencies",
		"pom.xml":            "Maven build",
		"build.gradle":       "Gradle build",
		"tsconfig.json":      "TypeScript configuration",
		"Dockerfile":         "Container image build",
		"docker-compose.yml": "Local service dependencies",
		"README.md":          "Project readme",
		".gitignore":         "Ignore rules",
		".env.example":       "Environment template",
		"index.html":         "Entry page",
		"manage.py":          "Django management entry",
	}
	if desc, ok := descriptions[base]; ok {
		return desc
	}

	switch {
	case strings.HasPrefix(path, "src/"), strings.HasPrefix(path, "app/"):
		return "Source file"
	case strings.Contains(path, "test"):
		return "Test scaffolding"
	}
	return ""
}
