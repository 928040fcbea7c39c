// Package config provides configuration loading and management.
package config

// Config holds the user-level stencil configuration. Every field is
// optional; request-level values always win over configured ones.
type Config struct {
	// OutputDir is the default target root for generated projects.
	// Empty means the process working directory.
	OutputDir string `mapstructure:"outputDir" yaml:"outputDir"`

	// Verbose enables debug logging by default.
	Verbose bool `mapstructure:"verbose" yaml:"verbose"`

	// Defaults maps a family name to option overrides applied beneath
	// request options: declared > configured > schema default.
	Defaults map[string]map[string]any `mapstructure:"defaults" yaml:"defaults"`
}

// FamilyDefaults returns the configured option overrides for a family.
// A nil map means nothing is configured.
func (c *Config) FamilyDefaults(family string) map[string]any {
	if c == nil || c.Defaults == nil {
		return nil
	}
	return c.Defaults[family]
}

// MergeOptions layers declared options over the configured family
// defaults, returning a fresh map. Declared keys always win.
func (c *Config) MergeOptions(family string, declared map[string]any) map[string]any {
	configured := c.FamilyDefaults(family)
	if len(configured) == 0 {
		return declared
	}

	merged := make(map[string]any, len(configured)+len(declared))
	for k, v := range configured {
		merged[k] = v
	}
	for k, v := range declared {
		merged[k] = v
	}
	return merged
}
