package scaffold

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

var testSchema = Schema{
	{Key: "typescript", Kind: KindBool, Default: true},
	{Key: "styling", Kind: KindString, Default: "css", Enum: []string{"css", "tailwind"}},
	{Key: "database", Kind: KindString, Default: ""},
}

func TestResolveOptionsDefaults(t *testing.T) {
	resolved := ResolveOptions(nil, testSchema)

	assert.True(t, resolved.Bool("typescript"))
	assert.Equal(t, "css", resolved.String("styling"))
	assert.Equal(t, "", resolved.String("database"))
}

func TestResolveOptionsDeclaredWins(t *testing.T) {
	resolved := ResolveOptions(map[string]any{
		"typescript": false,
		"styling":    "tailwind",
	}, testSchema)

	assert.False(t, resolved.Bool("typescript"))
	assert.Equal(t, "tailwind", resolved.String("styling"))
}

func TestResolveOptionsBoolCoercion(t *testing.T) {
	tests := []struct {
		name     string
		declared any
		want     bool
	}{
		{"native bool", false, false},
		{"string false", "false", false},
		{"string true", "true", true},
		{"string mixed case", "False", false},
		{"string numeric", "1", true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			resolved := ResolveOptions(map[string]any{"typescript": tt.declared}, testSchema)
			assert.Equal(t, tt.want, resolved.Bool("typescript"))
		})
	}
}

func TestResolveOptionsTypeMismatchFallsBackToDefault(t *testing.T) {
	tests := []struct {
		name     string
		declared map[string]any
	}{
		{"int for bool", map[string]any{"typescript": 42}},
		{"unparseable string for bool", map[string]any{"typescript": "maybe"}},
		{"int for string", map[string]any{"styling": 7}},
		{"value outside enum", map[string]any{"styling": "sass"}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			resolved := ResolveOptions(tt.declared, testSchema)
			assert.True(t, resolved.Bool("typescript"))
			assert.Equal(t, "css", resolved.String("styling"))
		})
	}
}

func TestResolveOptionsNormalizesStrings(t *testing.T) {
	resolved := ResolveOptions(map[string]any{"styling": "  Tailwind "}, testSchema)
	assert.Equal(t, "tailwind", resolved.String("styling"))
}

func TestResolveOptionsUnrecognizedKeysAreInert(t *testing.T) {
	resolved := ResolveOptions(map[string]any{
		"turbo":      true,
		"typescript": false,
	}, testSchema)

	assert.False(t, resolved.Has("turbo"))
	v, ok := resolved.Extra("turbo")
	assert.True(t, ok)
	assert.Equal(t, true, v)

	// Recognized keys still resolve normally alongside extras.
	assert.False(t, resolved.Bool("typescript"))
}

func TestResolveOptionsUnknownKeyAccessors(t *testing.T) {
	resolved := ResolveOptions(nil, testSchema)

	assert.False(t, resolved.Bool("missing"))
	assert.Equal(t, "", resolved.String("missing"))
	assert.False(t, resolved.Has("missing"))
}

func TestKindString(t *testing.T) {
	assert.Equal(t, "bool", KindBool.String())
	assert.Equal(t, "string", KindString.String())
	assert.Equal(t, "unknown", Kind(99).String())
}
