// Copyright 2026, the SpacemanDMM Authors.  All rights reserved.

package render

import (
	"fmt"
	"strings"
)

// PassInfo describes one registered pass: its configuration name, a human-readable description, whether it
// participates by default, and a factory producing a fresh instance.
type PassInfo struct {
	Name    string
	Desc    string
	Default bool
	New     func() Pass
}

// Passes is the ordered pass registry.  It is assembled once at startup and read-only afterward; pipeline
// order is registry order.
var Passes = []PassInfo{
	{
		Name:    "hide-space",
		Desc:    "Do not render space tiles, instead leaving transparency.",
		Default: true,
		New:     func() Pass { return &HideSpace{} },
	},
	{
		Name:    "hide-areas",
		Desc:    "Do not render area icons.",
		Default: true,
		New:     func() Pass { return &HideAreas{} },
	},
	{
		Name:    "hide-invisible",
		Desc:    "Do not render invisible or ephemeral objects such as mapping helpers.",
		Default: true,
		New:     func() Pass { return &HideInvisible{} },
	},
	{
		Name:    "pretty",
		Desc:    "Add the minor cosmetic overlays for various objects.",
		Default: true,
		New:     func() Pass { return &Pretty{} },
	},
	{
		Name:    "fake-glass",
		Desc:    "Add underlays to fake glass turfs.",
		Default: true,
		New:     func() Pass { return &FakeGlass{} },
	},
	{
		Name:    "wires",
		Desc:    "Render only power cables.",
		Default: false,
		New:     func() Pass { return &Wires{} },
	},
	{
		Name:    "pipes",
		Desc:    "Render only atmospheric pipes.",
		Default: false,
		New:     func() Pass { return &Pipes{} },
	},
	{
		Name:    "fancy-layers",
		Desc:    "Layer atoms according to in-game rules.",
		Default: true,
		New:     func() Pass { return &FancyLayers{} },
	},
}

// UnknownPassError is returned when a configuration names a pass not present in the registry.
type UnknownPassError struct {
	Name string
}

func (err *UnknownPassError) Error() string {
	return fmt.Sprintf("unknown render pass %q", err.Name)
}

// IsUnknownPass reports whether an error is an UnknownPassError.
func IsUnknownPass(err error) bool {
	_, is := err.(*UnknownPassError)
	return is
}

// Configure builds the enabled pass list from two comma-separated name lists.  Either list may contain the
// wildcard token "all".  Resolution, strongest first: explicit inclusion, explicit exclusion, wildcard
// inclusion, wildcard exclusion, the pass's own default flag.  Any name that is neither "all" nor a
// registered pass is an error.
func Configure(include, exclude string) ([]Pass, error) {
	includes, includeAll, err := splitNames(include)
	if err != nil {
		return nil, err
	}
	excludes, excludeAll, err := splitNames(exclude)
	if err != nil {
		return nil, err
	}

	var output []Pass
	for _, info := range Passes {
		var enabled bool
		switch {
		case includes[info.Name]:
			enabled = true
		case excludes[info.Name]:
			enabled = false
		case includeAll:
			enabled = true
		case excludeAll:
			enabled = false
		default:
			enabled = info.Default
		}
		if enabled {
			output = append(output, info.New())
		}
	}
	return output, nil
}

func splitNames(list string) (names map[string]bool, all bool, err error) {
	names = make(map[string]bool)
	for _, name := range strings.Split(list, ",") {
		name = strings.TrimSpace(name)
		if name == "" {
			continue
		}
		if name == "all" {
			all = true
			continue
		}
		if !registered(name) {
			return nil, false, &UnknownPassError{Name: name}
		}
		names[name] = true
	}
	return names, all, nil
}

func registered(name string) bool {
	for _, info := range Passes {
		if info.Name == name {
			return true
		}
	}
	return false
}
