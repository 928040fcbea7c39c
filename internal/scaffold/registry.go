package scaffold

import (
	"fmt"
	"strings"

	serrors "github.com/stencilhq/cli/internal/errors"
)

// Registry holds every registered framework builder and resolves
// identifiers to them. Construct one explicitly at process entry and
// inject it into dispatchers; there is no package-level instance, so
// tests get fresh, isolated registries.
//
// Registration happens once at startup. After that the registry is
// read-only and safe for unsynchronized concurrent lookups.
type Registry struct {
	fs       TreeWriter
	builders []*Builder
	byAlias  map[string]*Builder
	order    []string
}

// NewRegistry creates an empty registry whose builders write through fs.
func NewRegistry(fs TreeWriter) *Registry {
	return &Registry{
		fs:      fs,
		byAlias: make(map[string]*Builder),
	}
}

// Register adds a family blueprint. Identifiers are claimed
// case-insensitively; a duplicate claim is a startup configuration fault
// reported as an error, never a per-request condition.
func (r *Registry) Register(bp *Blueprint) error {
	if len(bp.Aliases) == 0 {
		return fmt.Errorf("blueprint %q declares no aliases", bp.Family)
	}

	b := &Builder{bp: bp, fs: r.fs}
	for _, alias := range bp.Aliases {
		key := strings.ToLower(alias)
		if other, exists := r.byAlias[key]; exists {
			return fmt.Errorf("%w: %q claimed by both %s and %s",
				serrors.ErrConflict, alias, other.bp.Family, bp.Family)
		}
		r.byAlias[key] = b
		r.order = append(r.order, alias)
	}
	r.builders = append(r.builders, b)
	return nil
}

// Resolve returns the builder claiming the identifier. Matching is a
// case-insensitive exact match, no prefix or fuzzy matching.
func (r *Registry) Resolve(identifier string) (*Builder, bool) {
	b, ok := r.byAlias[strings.ToLower(strings.TrimSpace(identifier))]
	return b, ok
}

// Lookup resolves an identifier or returns an unknown-framework error
// carrying the full identifier list.
func (r *Registry) Lookup(identifier string) (*Builder, error) {
	b, ok := r.Resolve(identifier)
	if !ok {
		return nil, serrors.NewUnknownFrameworkError(identifier, r.Identifiers())
	}
	return b, nil
}

// Identifiers returns every registered identifier in stable order:
// registration order, then alias declaration order within a builder.
func (r *Registry) Identifiers() []string {
	out := make([]string, len(r.order))
	copy(out, r.order)
	return out
}

// Builders returns every registered builder in registration order.
func (r *Registry) Builders() []*Builder {
	out := make([]*Builder, len(r.builders))
	copy(out, r.builders)
	return out
}

// FamilyGroup is one family and the identifiers it claims.
type FamilyGroup struct {
	Family      string
	Description string
	Runtime     string
	Aliases     []string
}

// Families returns the registered identifiers grouped by family, in
// registration order. It is a pure derived view over the registry.
func (r *Registry) Families() []FamilyGroup {
	groups := make([]FamilyGroup, 0, len(r.builders))
	for _, b := range r.builders {
		aliases := make([]string, len(b.bp.Aliases))
		copy(aliases, b.bp.Aliases)
		groups = append(groups, FamilyGroup{
			Family:      b.bp.Family,
			Description: b.bp.Description,
			Runtime:     b.bp.Runtime,
			Aliases:     aliases,
		})
	}
	return groups
}
