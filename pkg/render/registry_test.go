// Copyright 2026, the SpacemanDMM Authors.  All rights reserved.

package render

import (
	"fmt"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func configuredNames(t *testing.T, include, exclude string) []string {
	passes, err := Configure(include, exclude)
	require.NoError(t, err)
	names := make([]string, 0, len(passes))
	for _, pass := range passes {
		names = append(names, nameOf(pass))
	}
	return names
}

func nameOf(pass Pass) string {
	switch pass.(type) {
	case *HideSpace:
		return "hide-space"
	case *HideAreas:
		return "hide-areas"
	case *HideInvisible:
		return "hide-invisible"
	case *Pretty:
		return "pretty"
	case *FakeGlass:
		return "fake-glass"
	case *Wires:
		return "wires"
	case *Pipes:
		return "pipes"
	case *FancyLayers:
		return "fancy-layers"
	}
	return fmt.Sprintf("%T", pass)
}

func TestConfigureDefaults(t *testing.T) {
	names := configuredNames(t, "", "")
	assert.Equal(t, []string{"hide-space", "hide-areas", "hide-invisible", "pretty", "fake-glass", "fancy-layers"}, names)
}

// TestConfigureIncludeWires checks that including a default-disabled pass leaves the defaults standing.
func TestConfigureIncludeWires(t *testing.T) {
	names := configuredNames(t, "wires", "")
	assert.Equal(t, []string{"hide-space", "hide-areas", "hide-invisible", "pretty", "fake-glass", "wires", "fancy-layers"}, names)
}

// TestConfigureAllExceptWires checks wildcard inclusion with an explicit exclusion.
func TestConfigureAllExceptWires(t *testing.T) {
	names := configuredNames(t, "all", "wires")
	assert.Equal(t, []string{"hide-space", "hide-areas", "hide-invisible", "pretty", "fake-glass", "pipes", "fancy-layers"}, names)
}

func TestConfigureExplicitBeatsWildcard(t *testing.T) {
	// Explicit inclusion beats wildcard exclusion.
	names := configuredNames(t, "pretty", "all")
	assert.Equal(t, []string{"pretty"}, names)

	// Wildcard exclusion beats the default-enabled flag.
	names = configuredNames(t, "", "all")
	assert.Empty(t, names)

	// Explicit exclusion beats wildcard inclusion.
	names = configuredNames(t, "all", "pretty")
	assert.NotContains(t, names, "pretty")
	assert.Contains(t, names, "wires")

	// But an explicit inclusion wins even against an explicit exclusion of "all".
	names = configuredNames(t, "wires", "all")
	assert.Equal(t, []string{"wires"}, names)
}

func TestConfigureUnknownPass(t *testing.T) {
	_, err := Configure("wires,bogus", "")
	require.Error(t, err)
	assert.True(t, IsUnknownPass(err))
	assert.Contains(t, err.Error(), "bogus")

	_, err = Configure("", "nonsense")
	require.Error(t, err)
	assert.True(t, IsUnknownPass(err))
}

func TestConfigureListParsing(t *testing.T) {
	// Empty tokens and whitespace are tolerated; order of tokens does not matter.
	names := configuredNames(t, " wires , pipes ,", "hide-space,,")
	assert.Contains(t, names, "wires")
	assert.Contains(t, names, "pipes")
	assert.NotContains(t, names, "hide-space")
}

func TestRegistryShape(t *testing.T) {
	seen := make(map[string]bool)
	for _, info := range Passes {
		assert.NotEmpty(t, info.Name)
		assert.NotEmpty(t, info.Desc)
		require.NotNil(t, info.New)
		assert.NotNil(t, info.New())
		assert.False(t, seen[info.Name], "duplicate pass name %s", info.Name)
		seen[info.Name] = true
	}
	// Factories return fresh instances.
	assert.NotSame(t, Passes[0].New(), Passes[0].New())
}
