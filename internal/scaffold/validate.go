package scaffold

import (
	"fmt"
	"unicode"

	serrors "github.com/stencilhq/cli/internal/errors"
)

// ValidateRequest checks the structural requirements of a request:
// a non-empty, well-formed name and a non-empty family identifier.
// Violations are rejected before any filesystem activity.
func ValidateRequest(req ProjectRequest) error {
	if req.FamilyID == "" {
		return serrors.NewInvalidRequestError("framework identifier is required", "")
	}
	if err := ValidateProjectName(req.Name); err != nil {
		return serrors.NewInvalidRequestError(err.Error(),
			"Project names start with a letter and contain only letters, digits, '-', '_' and '.'")
	}
	return nil
}

// ValidateProjectName checks that a name is usable as a directory name
// across platforms. Hyphens, underscores, and dots are allowed.
func ValidateProjectName(name string) error {
	if name == "" {
		return fmt.Errorf("project name cannot be empty")
	}

	for _, r := range name {
		if !unicode.IsLetter(r) && !unicode.IsDigit(r) && r != '-' && r != '_' && r != '.' {
			return fmt.Errorf("invalid project name %q: contains invalid character %q", name, r)
		}
	}

	if !unicode.IsLetter(rune(name[0])) {
		return fmt.Errorf("invalid project name %q: must start with a letter", name)
	}

	return nil
}
