// Copyright 2026, the SpacemanDMM Authors.  All rights reserved.

package ast

import (
	"strings"

	"github.com/pkg/errors"
)

// PathOp is the operator preceding a single segment of a type path.  `/` continues an absolute or relative
// path; `.` and `:` are reserved for scoped member access in the broader language and never appear in the
// paths of map-placed types.
type PathOp int

const (
	// Slash is the `/` path operator.
	Slash PathOp = iota
	// Dot is the `.` path operator.
	Dot
	// Colon is the `:` path operator.
	Colon
)

func (op PathOp) String() string {
	switch op {
	case Slash:
		return "/"
	case Dot:
		return "."
	case Colon:
		return ":"
	}
	return "<bad-pathop>"
}

// PathSeg is a single segment of a type path: the operator that introduced it plus its name.
type PathSeg struct {
	Op   PathOp
	Name string
}

// TypePath is an ordered sequence of path segments forming the inheritance key for a type.  A path with
// zero segments denotes the root type, the ancestor of everything.
type TypePath []PathSeg

// ParseTypePath parses the textual form of a type path, e.g. `/obj/structure/bookcase`.  The empty string
// and the bare `/` both denote the root type.
func ParseTypePath(s string) (TypePath, error) {
	var path TypePath
	rest := s
	op := Slash
	for rest != "" {
		switch rest[0] {
		case '/':
			op, rest = Slash, rest[1:]
		case '.':
			op, rest = Dot, rest[1:]
		case ':':
			op, rest = Colon, rest[1:]
		default:
			// A leading bare name is treated as a relative `/` continuation.
		}
		if rest == "" {
			break
		}
		end := strings.IndexAny(rest, "/.:")
		if end == -1 {
			end = len(rest)
		}
		if end == 0 {
			return nil, errors.Errorf("empty segment in type path %q", s)
		}
		path = append(path, PathSeg{Op: op, Name: rest[:end]})
		rest = rest[end:]
	}
	return path, nil
}

func (p TypePath) String() string {
	if len(p) == 0 {
		return "/"
	}
	var b strings.Builder
	for _, seg := range p {
		b.WriteString(seg.Op.String())
		b.WriteString(seg.Name)
	}
	return b.String()
}

// IsRoot reports whether this is the zero-segment root path.
func (p TypePath) IsRoot() bool {
	return len(p) == 0
}

// Parent returns the path with its last segment removed.  The root is its own parent.
func (p TypePath) Parent() TypePath {
	if len(p) == 0 {
		return p
	}
	return p[:len(p)-1]
}

// Child returns the path extended by one `/` segment.
func (p TypePath) Child(name string) TypePath {
	out := make(TypePath, len(p), len(p)+1)
	copy(out, p)
	return append(out, PathSeg{Op: Slash, Name: name})
}

// Equal reports segment-wise equality of two paths.
func (p TypePath) Equal(other TypePath) bool {
	if len(p) != len(other) {
		return false
	}
	for i, seg := range p {
		if seg != other[i] {
			return false
		}
	}
	return true
}

// IsSubtypeOf reports whether p's segment sequence begins with prefix's full segment sequence.  This is the
// single subtype test of the language: comparison is over whole segments, never substrings, so
// `/obj/structures` is not a subtype of `/obj/structure`.  Every path is a subtype of itself and of the
// root path.
func (p TypePath) IsSubtypeOf(prefix TypePath) bool {
	if len(prefix) > len(p) {
		return false
	}
	for i, seg := range prefix {
		if p[i] != seg {
			return false
		}
	}
	return true
}
