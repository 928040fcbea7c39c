package scaffold

// Feature is one independent contribution to a family's file tree. Its
// files are included when the predicate holds over the resolved options.
type Feature struct {
	// Name identifies the feature in logs and tests.
	Name string

	// When gates the contribution. A nil predicate always applies.
	When func(ResolvedOptions) bool

	// Files produces the feature's file nodes. It must be pure: the same
	// context always yields the same nodes, byte for byte.
	Files func(Context) []FileNode
}

// Blueprint is the static description of one framework family: the
// aliases it claims, its option schema, and the ordered feature table the
// composer walks. Blueprints are built once at process start and never
// mutated, so concurrent reads need no synchronization.
type Blueprint struct {
	// Family is the canonical family name, used for grouping.
	Family string

	// Aliases are the identifiers the family claims, in declaration
	// order. The first alias is the canonical identifier.
	Aliases []string

	// Description is a one-line summary surfaced by discovery.
	Description string

	// Runtime names the toolchain the generated project targets
	// (node, python, jvm). Dispatchers use it for post-create hints.
	Runtime string

	// Schema is the family's option table.
	Schema Schema

	// Features is the ordered contribution table. Composition is the
	// union of all enabled features' files.
	Features []Feature
}

// Compose maps resolved options and a project identity to the family's
// file nodes. It is a single-pass pure transform: contributions are
// unioned in table order, enabling one feature never removes another's
// files, and identical inputs yield byte-identical output. Compose is
// total over well-typed options; all failure handling lives in Build.
func (b *Blueprint) Compose(opts ResolvedOptions, project string) []FileNode {
	ctx := Context{Project: project, Options: opts}

	var nodes []FileNode
	for _, f := range b.Features {
		if f.When != nil && !f.When(opts) {
			continue
		}
		nodes = append(nodes, f.Files(ctx)...)
	}
	return nodes
}

// Resolve applies the family schema to declared options.
func (b *Blueprint) Resolve(declared map[string]any) ResolvedOptions {
	return ResolveOptions(declared, b.Schema)
}
