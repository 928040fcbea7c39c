// Package frameworks holds the static blueprint tables for every
// supported framework family: the aliases each family claims, its option
// schema, and the feature contributions that map resolved options to
// generated files.
//
// Everything in this package is template data. Dependency version strings
// are pinned per family and change only when the tables are updated,
// never per request.
package frameworks
