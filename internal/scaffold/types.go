package scaffold

// ProjectRequest describes a single scaffold invocation. It is created by
// a dispatcher per request and never mutated by the core.
type ProjectRequest struct {
	// Name is the project name and the name of the directory created
	// under the target root.
	Name string

	// FamilyID is the requested framework identifier, matched
	// case-insensitively against registered aliases.
	FamilyID string

	// DeclaredOptions is the caller-supplied open option map. Unrecognized
	// keys are carried through but ignored by composition.
	DeclaredOptions map[string]any

	// TargetRoot is the directory the project is created under. Empty
	// means the process working directory.
	TargetRoot string
}

// FileNode is one file produced by composition: a slash-separated path
// relative to the project root, and its full content.
type FileNode struct {
	RelPath string
	Content string
}

// BuildOutcome is the terminal result of one build invocation.
type BuildOutcome struct {
	// Success reports whether every file was written.
	Success bool

	// Message is a human-readable confirmation or failure description.
	Message string

	// ProducedPaths lists the written relative paths in composition order.
	ProducedPaths []string

	// Failure carries the underlying error text when Success is false.
	Failure string
}

// Context carries the identity data composition may substitute into
// generated content. Options travel separately so feature predicates can
// gate on them.
type Context struct {
	// Project is the project name as given in the request.
	Project string

	// Options is the fully resolved option set for the family.
	Options ResolvedOptions
}
