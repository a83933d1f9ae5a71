// Copyright 2026, the SpacemanDMM Authors.  All rights reserved.

// Package constant defines the evaluated literal form of object-language expressions: the runtime value
// space variable lookups return, and the evaluator that folds expression trees into it.
package constant

import (
	"fmt"
	"strconv"
	"strings"

	"github.com/out-of-phaze/SpacemanDMM/pkg/ast"
	"github.com/out-of-phaze/SpacemanDMM/pkg/util/contract"
)

// Constant is the value of an evaluated expression, limited to a select few types (see below).  The zero
// value is null.
type Constant struct {
	v interface{}
}

// resource distinguishes resource-path values from plain strings inside the wrapper.
type resource string

// Entry is one element of a list constant: a key with an optional associated value.
type Entry struct {
	Key Constant
	// Value is nil for set-like entries.
	Value *Constant
}

// PrefabRef is a typed-prefab-reference constant: a type path plus its evaluated variable overrides.
type PrefabRef struct {
	Path ast.TypePath
	Vars map[string]Constant
}

// Null returns the null constant.
func Null() Constant { return Constant{} }

// NewInt returns an integer constant.
func NewInt(v int) Constant { return Constant{v: v} }

// NewFloat returns a floating-point constant.
func NewFloat(v float64) Constant { return Constant{v: v} }

// NewString returns a string constant.
func NewString(v string) Constant { return Constant{v: v} }

// NewResource returns a resource-path constant.
func NewResource(path string) Constant { return Constant{v: resource(path)} }

// NewList returns a list constant.
func NewList(entries []Entry) Constant { return Constant{v: entries} }

// NewPrefab returns a typed-prefab-reference constant.
func NewPrefab(ref *PrefabRef) Constant {
	contract.Require(ref != nil, "ref")
	return Constant{v: ref}
}

// IsNull returns true if the constant is null.
func (c Constant) IsNull() bool { return c.v == nil }

// IsInt returns true if the constant is an integer.
func (c Constant) IsInt() bool { _, is := c.v.(int); return is }

// IsFloat returns true if the constant is a float.
func (c Constant) IsFloat() bool { _, is := c.v.(float64); return is }

// IsString returns true if the constant is a string.
func (c Constant) IsString() bool { _, is := c.v.(string); return is }

// IsResource returns true if the constant is a resource path.
func (c Constant) IsResource() bool { _, is := c.v.(resource); return is }

// IsList returns true if the constant is a list.
func (c Constant) IsList() bool { _, is := c.v.([]Entry); return is }

// IsPrefab returns true if the constant is a typed-prefab-reference.
func (c Constant) IsPrefab() bool { _, is := c.v.(*PrefabRef); return is }

// IntValue fetches the underlying integer value, panicking if IsInt() returns false.
func (c Constant) IntValue() int { return c.v.(int) }

// FloatValue fetches the underlying float value, panicking if IsFloat() returns false.
func (c Constant) FloatValue() float64 { return c.v.(float64) }

// StringValue fetches the underlying string value, panicking if IsString() returns false.
func (c Constant) StringValue() string { return c.v.(string) }

// ResourceValue fetches the underlying resource path, panicking if IsResource() returns false.
func (c Constant) ResourceValue() string { return string(c.v.(resource)) }

// ListValue fetches the underlying list entries, panicking if IsList() returns false.
func (c Constant) ListValue() []Entry { return c.v.([]Entry) }

// PrefabValue fetches the underlying prefab reference, panicking if IsPrefab() returns false.
func (c Constant) PrefabValue() *PrefabRef { return c.v.(*PrefabRef) }

// ToFloat coerces a numeric constant to a float.
func (c Constant) ToFloat() (float64, bool) {
	switch v := c.v.(type) {
	case int:
		return float64(v), true
	case float64:
		return v, true
	}
	return 0, false
}

// ToInt coerces a numeric constant to an integer, truncating floats.
func (c Constant) ToInt() (int, bool) {
	switch v := c.v.(type) {
	case int:
		return v, true
	case float64:
		return int(v), true
	}
	return 0, false
}

// StringEquals reports whether the constant is the given string or resource path.
func (c Constant) StringEquals(s string) bool {
	switch v := c.v.(type) {
	case string:
		return v == s
	case resource:
		return string(v) == s
	}
	return false
}

// IsTruthy reports the language's truthiness rule: null, zero, and the empty string are false; everything
// else is true.
func (c Constant) IsTruthy() bool {
	switch v := c.v.(type) {
	case nil:
		return false
	case int:
		return v != 0
	case float64:
		return v != 0
	case string:
		return v != ""
	}
	return true
}

// Equal reports deep equality of two constants.  Ints and floats compare equal only to their own kind.
func (c Constant) Equal(other Constant) bool {
	switch v := c.v.(type) {
	case nil:
		return other.v == nil
	case int:
		o, is := other.v.(int)
		return is && v == o
	case float64:
		o, is := other.v.(float64)
		return is && v == o
	case string:
		o, is := other.v.(string)
		return is && v == o
	case resource:
		o, is := other.v.(resource)
		return is && v == o
	case []Entry:
		o, is := other.v.([]Entry)
		if !is || len(v) != len(o) {
			return false
		}
		for i, entry := range v {
			if !entry.Key.Equal(o[i].Key) {
				return false
			}
			if (entry.Value == nil) != (o[i].Value == nil) {
				return false
			}
			if entry.Value != nil && !entry.Value.Equal(*o[i].Value) {
				return false
			}
		}
		return true
	case *PrefabRef:
		o, is := other.v.(*PrefabRef)
		if !is || !v.Path.Equal(o.Path) || len(v.Vars) != len(o.Vars) {
			return false
		}
		for name, value := range v.Vars {
			ov, has := o.Vars[name]
			if !has || !value.Equal(ov) {
				return false
			}
		}
		return true
	}
	return false
}

func (c Constant) String() string {
	switch v := c.v.(type) {
	case nil:
		return "null"
	case int:
		return strconv.Itoa(v)
	case float64:
		return strconv.FormatFloat(v, 'g', -1, 64)
	case string:
		return strconv.Quote(v)
	case resource:
		return "'" + string(v) + "'"
	case []Entry:
		var b strings.Builder
		b.WriteString("list(")
		for i, entry := range v {
			if i > 0 {
				b.WriteString(", ")
			}
			b.WriteString(entry.Key.String())
			if entry.Value != nil {
				b.WriteString(" = ")
				b.WriteString(entry.Value.String())
			}
		}
		b.WriteString(")")
		return b.String()
	case *PrefabRef:
		return v.Path.String()
	}
	return fmt.Sprintf("<bad-constant %T>", c.v)
}
