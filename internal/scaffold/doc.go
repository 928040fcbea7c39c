// Package scaffold implements the framework-agnostic scaffolding core:
// a registry of framework blueprints, a table-driven option resolver, a
// data-driven file composer, and the build orchestration that turns a
// project request into a file tree on disk.
//
// The package has no command-line or transport concerns. Dispatchers
// (the CLI and the MCP server) validate a request, resolve a Builder
// through the Registry, and invoke Build.
package scaffold
