package scaffold

import (
	"fmt"
	"os"
	"path/filepath"

	"github.com/stencilhq/cli/internal/output"
)

// Builder binds one family blueprint to the filesystem capability and
// orchestrates a build: directory creation, option resolution,
// composition, and file writes. Builders are created by the Registry and
// are stateless across invocations.
type Builder struct {
	bp *Blueprint
	fs TreeWriter
}

// Blueprint returns the family blueprint the builder was registered with.
func (b *Builder) Blueprint() *Blueprint {
	return b.bp
}

// Build runs the scaffold pipeline for one request and always returns a
// terminal outcome. Structural validation happens before this point; any
// I/O error past it is caught here and reported through the outcome, so
// a failed build never destabilizes the process. No rollback is
// performed: a failed build may leave a partially populated tree.
func (b *Builder) Build(req ProjectRequest) BuildOutcome {
	root := req.TargetRoot
	if root == "" {
		wd, err := os.Getwd()
		if err != nil {
			return b.failure(req, fmt.Errorf("resolving working directory: %w", err))
		}
		root = wd
	}
	projectRoot := filepath.Join(root, req.Name)

	// A pre-existing directory is accepted; files are overwritten.
	if err := b.fs.MkdirAll(projectRoot); err != nil {
		return b.failure(req, fmt.Errorf("creating project root %s: %w", projectRoot, err))
	}

	opts := b.bp.Resolve(req.DeclaredOptions)
	nodes := b.bp.Compose(opts, req.Name)

	output.Debug("composed file tree",
		"family", b.bp.Family,
		"project", req.Name,
		"files", len(nodes))

	produced := make([]string, 0, len(nodes))
	for _, node := range nodes {
		target := filepath.Join(projectRoot, filepath.FromSlash(node.RelPath))

		if err := b.fs.MkdirAll(filepath.Dir(target)); err != nil {
			return b.failure(req, fmt.Errorf("creating directory for %s: %w", node.RelPath, err))
		}
		if err := b.fs.WriteFile(target, []byte(node.Content)); err != nil {
			return b.failure(req, fmt.Errorf("writing %s: %w", node.RelPath, err))
		}
		produced = append(produced, node.RelPath)
	}

	return BuildOutcome{
		Success:       true,
		Message:       fmt.Sprintf("Created %s project %q in %s", b.bp.Family, req.Name, projectRoot),
		ProducedPaths: produced,
	}
}

// failure converts a pipeline error into a failed outcome.
func (b *Builder) failure(req ProjectRequest, err error) BuildOutcome {
	output.Error("scaffold failed",
		"family", b.bp.Family,
		"project", req.Name,
		"error", err)

	return BuildOutcome{
		Success: false,
		Message: fmt.Sprintf("Failed to create %s project %q", b.bp.Family, req.Name),
		Failure: err.Error(),
	}
}
