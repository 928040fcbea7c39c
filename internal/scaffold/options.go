package scaffold

import (
	"strconv"
	"strings"

	"github.com/stencilhq/cli/internal/output"
)

// Kind is the value type of an option.
type Kind int

const (
	// KindBool options resolve to true or false.
	KindBool Kind = iota

	// KindString options resolve to a string, optionally constrained
	// to an enumeration.
	KindString
)

// String returns the schema-facing name of the kind.
func (k Kind) String() string {
	switch k {
	case KindBool:
		return "bool"
	case KindString:
		return "string"
	default:
		return "unknown"
	}
}

// OptionSpec declares one recognized option key for a family: its type,
// its default, and, for string options, the accepted values.
type OptionSpec struct {
	Key     string
	Kind    Kind
	Default any

	// Enum lists the accepted values for a KindString option. Empty
	// means free-form.
	Enum []string

	// Doc is a one-line description surfaced by discovery.
	Doc string
}

// Schema is the ordered option table for one family. Resolution walks the
// table, so adding an option is additive and never touches existing keys.
type Schema []OptionSpec

// ResolvedOptions is a fully-defaulted option set. Every key in the
// family schema has a concrete, type-valid value; unrecognized declared
// keys are retained but inert.
type ResolvedOptions struct {
	values map[string]any
	extra  map[string]any
}

// Bool returns the value of a boolean option. Unknown keys return false.
func (o ResolvedOptions) Bool(key string) bool {
	v, _ := o.values[key].(bool)
	return v
}

// String returns the value of a string option. Unknown keys return "".
func (o ResolvedOptions) String(key string) string {
	v, _ := o.values[key].(string)
	return v
}

// Has reports whether key is a recognized option of the family.
func (o ResolvedOptions) Has(key string) bool {
	_, ok := o.values[key]
	return ok
}

// Extra returns the value of an unrecognized declared key, if present.
// Composition never reads these; they exist for forward compatibility.
func (o ResolvedOptions) Extra(key string) (any, bool) {
	v, ok := o.extra[key]
	return v, ok
}

// ResolveOptions merges declared options over the schema defaults. For each
// schema key the declared value is taken when present and type-valid,
// otherwise the default applies. A type mismatch is logged and never fails
// the build. Declared keys outside the schema pass through unused.
func ResolveOptions(declared map[string]any, schema Schema) ResolvedOptions {
	resolved := ResolvedOptions{
		values: make(map[string]any, len(schema)),
		extra:  make(map[string]any),
	}

	for _, spec := range schema {
		resolved.values[spec.Key] = spec.Default

		raw, ok := declared[spec.Key]
		if !ok {
			continue
		}

		v, ok := coerce(raw, spec)
		if !ok {
			output.Warn("option value has wrong type, using default",
				"key", spec.Key,
				"value", raw,
				"default", spec.Default)
			continue
		}
		resolved.values[spec.Key] = v
	}

	for key, raw := range declared {
		if !resolved.Has(key) {
			resolved.extra[key] = raw
		}
	}

	return resolved
}

// coerce converts a declared value to the spec's kind. CLI dispatchers
// deliver every value as a string, so string forms of booleans are
// accepted alongside native ones.
func coerce(raw any, spec OptionSpec) (any, bool) {
	switch spec.Kind {
	case KindBool:
		switch v := raw.(type) {
		case bool:
			return v, true
		case string:
			b, err := strconv.ParseBool(strings.ToLower(v))
			if err != nil {
				return nil, false
			}
			return b, true
		}
		return nil, false

	case KindString:
		s, ok := raw.(string)
		if !ok {
			return nil, false
		}
		s = strings.ToLower(strings.TrimSpace(s))
		if len(spec.Enum) == 0 {
			return s, true
		}
		for _, allowed := range spec.Enum {
			if s == allowed {
				return s, true
			}
		}
		return nil, false
	}
	return nil, false
}
