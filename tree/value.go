// Copyright (C) 2021 Michael J. Fromberger. All Rights Reserved.

// Package tree builds and tears down an in-memory JSON value tree from a
// judo.Scanner, without ever recursing: both construction and teardown
// drive an explicit stack bounded by the scanner's own nesting limit, so
// neither can overflow the goroutine stack on deeply nested or adversarial
// input.
package tree

import "github.com/railgunlabs/judo"

// Kind identifies which alternative a Value holds.
type Kind uint8

// Constants defining the valid Kind values.
const (
	KindNull Kind = iota
	KindBool
	KindNumber
	KindString
	KindArray
	KindObject
)

// Value is one node of a parsed JSON tree. Arrays and objects are singly
// linked lists of Value and Member respectively, not slices: teardown
// walks them with Free, which needs O(1) append-to-worklist and never
// needs random access or a length up front.
type Value struct {
	next *Value // next sibling, set when this Value is an array element

	Span Span

	kind Kind
	flag bool // the decoded bool, valid when kind == KindBool

	arrayHead *Value
	arrayLen  int32

	objectHead *Member
	objectLen  int32
}

// Span is an alias of judo.Span so callers need not import both packages
// to work with located tree nodes.
type Span = judo.Span

// Member is one key/value pair of an object, linked to its siblings
// through next.
type Member struct {
	next *Member

	NameSpan Span
	value    *Value
}

// Type reports which alternative v holds.
func (v *Value) Type() Kind { return v.kind }

// AsBool returns the decoded boolean. It is only meaningful when
// v.Type() == KindBool.
func (v *Value) AsBool() bool { return v.flag }

// Len returns the number of elements in an array or members in an object.
// It returns -1 for any other Kind.
func (v *Value) Len() int {
	switch v.kind {
	case KindArray:
		return int(v.arrayLen)
	case KindObject:
		return int(v.objectLen)
	default:
		return -1
	}
}

// FirstElement returns the first element of an array, or nil if v is not a
// non-empty array.
func (v *Value) FirstElement() *Value {
	if v.kind != KindArray {
		return nil
	}
	return v.arrayHead
}

// NextElement returns the array element following v, or nil if v is the
// last element (or not an array element at all).
func (v *Value) NextElement() *Value { return v.next }

// FirstMember returns the first member of an object, or nil if v is not a
// non-empty object.
func (v *Value) FirstMember() *Member {
	if v.kind != KindObject {
		return nil
	}
	return v.objectHead
}

// NextMember returns the member following m, or nil if m is the last
// member of its object.
func (m *Member) NextMember() *Member { return m.next }

// Value returns the member's value.
func (m *Member) Value() *Value { return m.value }
