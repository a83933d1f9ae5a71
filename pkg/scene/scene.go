// Copyright 2026, the SpacemanDMM Authors.  All rights reserved.

// Package scene loads the YAML scene format the CLI renders from: type declarations with default
// variables, global defines, and per-cell placed instances.  It stands in at the tool boundary for the map
// formats the full toolchain parses.
package scene

import (
	"io"
	"strconv"
	"strings"

	"github.com/hashicorp/go-multierror"
	"github.com/pkg/errors"
	"gopkg.in/yaml.v3"

	"github.com/out-of-phaze/SpacemanDMM/pkg/ast"
	"github.com/out-of-phaze/SpacemanDMM/pkg/constant"
	"github.com/out-of-phaze/SpacemanDMM/pkg/minimap"
	"github.com/out-of-phaze/SpacemanDMM/pkg/objtree"
)

// Scene is a parsed scene file.
type Scene struct {
	Types   []TypeDecl `yaml:"types"`
	Defines yaml.Node  `yaml:"defines"`
	Cells   []CellDecl `yaml:"cells"`
}

// TypeDecl declares one object type and the variables it defines or overrides.
type TypeDecl struct {
	Path string    `yaml:"path"`
	Vars yaml.Node `yaml:"vars"`
}

// CellDecl is one map cell and the instances placed in it.
type CellDecl struct {
	Loc       LocDecl        `yaml:"loc"`
	Instances []InstanceDecl `yaml:"instances"`
}

// LocDecl is a map coordinate.
type LocDecl struct {
	X uint32 `yaml:"x"`
	Y uint32 `yaml:"y"`
	Z uint32 `yaml:"z"`
}

// InstanceDecl places a prefab: a type path plus instance-level variable overrides.
type InstanceDecl struct {
	Path string    `yaml:"path"`
	Vars yaml.Node `yaml:"vars"`
}

// Load parses a scene file.  Unknown fields are rejected.
func Load(r io.Reader) (*Scene, error) {
	dec := yaml.NewDecoder(r)
	dec.KnownFields(true)
	var s Scene
	if err := dec.Decode(&s); err != nil {
		return nil, errors.Wrap(err, "decoding scene")
	}
	return &s, nil
}

// Build resolves the scene into a frozen object tree and the per-cell atoms ready for rendering.
// Instance resolution errors are accumulated rather than aborting on the first bad placement.
func (s *Scene) Build() (*objtree.Tree, [][]*minimap.Atom, error) {
	tree := objtree.New()

	defines, err := mappingPairs(&s.Defines)
	if err != nil {
		return nil, nil, errors.Wrap(err, "defines")
	}
	eval := &constant.Evaluator{Resolver: tree}
	for _, pair := range defines {
		expr, err := exprFromNode(pair.value)
		if err != nil {
			return nil, nil, errors.Wrapf(err, "define %s", pair.key)
		}
		value, err := eval.Expression(expr)
		if err != nil {
			return nil, nil, errors.Wrapf(err, "define %s", pair.key)
		}
		tree.Define(pair.key, value)
	}

	for _, decl := range s.Types {
		typ, err := tree.Register(decl.Path)
		if err != nil {
			return nil, nil, err
		}
		vars, err := mappingPairs(&decl.Vars)
		if err != nil {
			return nil, nil, errors.Wrapf(err, "type %s", decl.Path)
		}
		for _, pair := range vars {
			expr, err := exprFromNode(pair.value)
			if err != nil {
				return nil, nil, errors.Wrapf(err, "type %s var %s", decl.Path, pair.key)
			}
			value, err := eval.Expression(expr)
			if err != nil {
				return nil, nil, errors.Wrapf(err, "type %s var %s", decl.Path, pair.key)
			}
			typ.SetVar(pair.key, value)
		}
	}
	tree.Freeze()

	var result *multierror.Error
	cells := make([][]*minimap.Atom, len(s.Cells))
	for i, cell := range s.Cells {
		loc := minimap.Location{X: cell.Loc.X, Y: cell.Loc.Y, Z: cell.Loc.Z}
		for _, inst := range cell.Instances {
			prefab, err := inst.prefab()
			if err != nil {
				result = multierror.Append(result, err)
				continue
			}
			atom, err := minimap.FromPrefab(tree, prefab, loc)
			if err != nil {
				result = multierror.Append(result, err)
				continue
			}
			cells[i] = append(cells[i], atom)
		}
	}
	return tree, cells, result.ErrorOrNil()
}

func (inst *InstanceDecl) prefab() (*ast.Prefab, error) {
	path, err := ast.ParseTypePath(inst.Path)
	if err != nil {
		return nil, err
	}
	prefab := ast.NewPrefab(path)
	vars, err := mappingPairs(&inst.Vars)
	if err != nil {
		return nil, errors.Wrapf(err, "instance %s", inst.Path)
	}
	for _, pair := range vars {
		expr, err := exprFromNode(pair.value)
		if err != nil {
			return nil, errors.Wrapf(err, "instance %s var %s", inst.Path, pair.key)
		}
		prefab.Vars.Set(pair.key, expr)
	}
	return prefab, nil
}

type pair struct {
	key   string
	value *yaml.Node
}

// mappingPairs flattens a YAML mapping node into ordered key/value pairs, preserving document order so
// prefab variable ordering survives the trip through YAML.
func mappingPairs(node *yaml.Node) ([]pair, error) {
	if node == nil || node.Kind == 0 || node.Tag == "!!null" {
		return nil, nil
	}
	if node.Kind != yaml.MappingNode {
		return nil, errors.Errorf("expected a mapping, got %s", node.Tag)
	}
	pairs := make([]pair, 0, len(node.Content)/2)
	for i := 0; i+1 < len(node.Content); i += 2 {
		pairs = append(pairs, pair{key: node.Content[i].Value, value: node.Content[i+1]})
	}
	return pairs, nil
}

// exprFromNode converts a YAML value into a literal expression.  Scalars map to the obvious terms; a
// single-quoted !!str written as 'path.dmi' in the source arrives as a plain string, so resource paths use
// an explicit "res('...')" spelling instead: any string of the form res(p) becomes a resource term.
// Sequences become set-like list literals and nested mappings become associative ones.
func exprFromNode(node *yaml.Node) (ast.Expression, error) {
	term, err := termFromNode(node)
	if err != nil {
		return nil, err
	}
	return ast.TermExpression(term), nil
}

func termFromNode(node *yaml.Node) (ast.Term, error) {
	switch node.Kind {
	case yaml.ScalarNode:
		return scalarTerm(node)
	case yaml.SequenceNode:
		entries := make([]ast.ListEntry, 0, len(node.Content))
		for _, item := range node.Content {
			key, err := exprFromNode(item)
			if err != nil {
				return nil, err
			}
			entries = append(entries, ast.ListEntry{Key: key})
		}
		return &ast.ListTerm{Entries: entries}, nil
	case yaml.MappingNode:
		entries := make([]ast.ListEntry, 0, len(node.Content)/2)
		for i := 0; i+1 < len(node.Content); i += 2 {
			key, err := exprFromNode(node.Content[i])
			if err != nil {
				return nil, err
			}
			value, err := exprFromNode(node.Content[i+1])
			if err != nil {
				return nil, err
			}
			entries = append(entries, ast.ListEntry{Key: key, Value: value})
		}
		return &ast.ListTerm{Entries: entries}, nil
	}
	return nil, errors.Errorf("unsupported YAML node kind %v", node.Kind)
}

func scalarTerm(node *yaml.Node) (ast.Term, error) {
	switch node.Tag {
	case "!!null":
		return &ast.NullTerm{}, nil
	case "!!bool":
		if node.Value == "true" {
			return &ast.IntTerm{Value: 1}, nil
		}
		return &ast.IntTerm{Value: 0}, nil
	case "!!int":
		n, err := strconv.Atoi(node.Value)
		if err != nil {
			return nil, errors.Wrapf(err, "bad integer %q", node.Value)
		}
		return &ast.IntTerm{Value: n}, nil
	case "!!float":
		f, err := strconv.ParseFloat(node.Value, 64)
		if err != nil {
			return nil, errors.Wrapf(err, "bad float %q", node.Value)
		}
		return &ast.FloatTerm{Value: f}, nil
	case "!!str":
		if path, ok := resourceString(node.Value); ok {
			return &ast.ResourceTerm{Path: path}, nil
		}
		if name, ok := identString(node.Value); ok {
			return &ast.IdentTerm{Name: name}, nil
		}
		return &ast.StringTerm{Value: node.Value}, nil
	}
	return nil, errors.Errorf("unsupported YAML scalar %s", node.Tag)
}

// resourceString recognizes the res(path) spelling for resource literals.
func resourceString(s string) (string, bool) {
	if strings.HasPrefix(s, "res(") && strings.HasSuffix(s, ")") {
		return s[len("res(") : len(s)-1], true
	}
	return "", false
}

// identString recognizes the def(NAME) spelling for references to global defines.
func identString(s string) (string, bool) {
	if strings.HasPrefix(s, "def(") && strings.HasSuffix(s, ")") {
		return s[len("def(") : len(s)-1], true
	}
	return "", false
}
