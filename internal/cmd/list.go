package cmd

import (
	"encoding/json"
	"fmt"
	"strings"

	"github.com/spf13/cobra"
	"gopkg.in/yaml.v3"

	"github.com/stencilhq/cli/internal/output"
)

var listOutputFormat string

// familyListing is the discovery view of one framework family.
type familyListing struct {
	Family      string          `json:"family" yaml:"family"`
	Description string          `json:"description" yaml:"description"`
	Runtime     string          `json:"runtime" yaml:"runtime"`
	Identifiers []string        `json:"identifiers" yaml:"identifiers"`
	Options     []optionListing `json:"options" yaml:"options"`
}

// optionListing is the discovery view of one schema option.
type optionListing struct {
	Key     string   `json:"key" yaml:"key"`
	Type    string   `json:"type" yaml:"type"`
	Default any      `json:"default" yaml:"default"`
	Allowed []string `json:"allowed,omitempty" yaml:"allowed,omitempty"`
	Doc     string   `json:"doc,omitempty" yaml:"doc,omitempty"`
}

// NewListCmd creates the list command.
func NewListCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "list",
		Short: "List registered frameworks and their options",
		Long: `List every registered framework identifier, grouped by family,
with the options each family accepts. Listing never touches the
filesystem.`,
		Args: cobra.NoArgs,
		RunE: runList,
	}

	cmd.Flags().StringVarP(&listOutputFormat, "output", "o", "table", "Output format: table, json, yaml")

	return cmd
}

func runList(cmd *cobra.Command, _ []string) error {
	listings := collectListings()

	switch listOutputFormat {
	case "json":
		data, err := json.MarshalIndent(listings, "", "  ")
		if err != nil {
			return fmt.Errorf("encoding listing: %w", err)
		}
		fmt.Fprintln(cmd.OutOrStdout(), string(data))
	case "yaml":
		data, err := yaml.Marshal(listings)
		if err != nil {
			return fmt.Errorf("encoding listing: %w", err)
		}
		fmt.Fprint(cmd.OutOrStdout(), string(data))
	case "table":
		fmt.Fprint(cmd.OutOrStdout(), renderListingTable(listings))
	default:
		return fmt.Errorf("unknown output format %q (valid: table, json, yaml)", listOutputFormat)
	}

	return nil
}

// collectListings builds the discovery view from the registry.
func collectListings() []familyListing {
	builders := registry.Builders()
	listings := make([]familyListing, 0, len(builders))

	for _, b := range builders {
		bp := b.Blueprint()

		options := make([]optionListing, 0, len(bp.Schema))
		for _, spec := range bp.Schema {
			options = append(options, optionListing{
				Key:     spec.Key,
				Type:    spec.Kind.String(),
				Default: spec.Default,
				Allowed: spec.Enum,
				Doc:     spec.Doc,
			})
		}

		aliases := make([]string, len(bp.Aliases))
		copy(aliases, bp.Aliases)

		listings = append(listings, familyListing{
			Family:      bp.Family,
			Description: bp.Description,
			Runtime:     bp.Runtime,
			Identifiers: aliases,
			Options:     options,
		})
	}

	return listings
}

// familyColumnWidth aligns the identifier column across rows.
const familyColumnWidth = 34

// renderListingTable renders the human-readable listing.
func renderListingTable(listings []familyListing) string {
	styles := output.GetStyles()

	var sb strings.Builder
	for _, l := range listings {
		ids := strings.Join(l.Identifiers, ", ")

		line := styles.Noun.Render(ids)
		padding := familyColumnWidth - len(ids)
		if padding < 2 {
			padding = 2
		}
		line += strings.Repeat(" ", padding)
		line += styles.Muted.Render(l.Description)

		sb.WriteString(line)
		sb.WriteString("\n")

		for _, opt := range l.Options {
			detail := fmt.Sprintf("    --set %s=<%s>", opt.Key, opt.Type)
			if len(opt.Allowed) > 0 {
				detail = fmt.Sprintf("    --set %s=<%s>", opt.Key, strings.Join(opt.Allowed, "|"))
			}
			detail += fmt.Sprintf("  (default %v)", opt.Default)
			sb.WriteString(styles.Muted.Render(detail))
			sb.WriteString("\n")
		}
	}

	return sb.String()
}
