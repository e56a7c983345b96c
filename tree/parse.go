// Copyright (C) 2021 Michael J. Fromberger. All Rights Reserved.

package tree

import "github.com/railgunlabs/judo"

// frame tracks the compound value currently being built at one nesting
// depth, along with the tail pointers needed to append in O(1) without
// walking the list, mirroring struct compound in the reference parser.
type frame struct {
	value       *Value
	elementTail *Value
	memberTail  *Member
}

// link attaches value as the next child of the compound value on top of
// the stack, or records it as the tree root if the stack is empty.
func link(root **Value, stack []frame, depth int, value *Value) {
	if *root == nil {
		*root = value
	}
	if depth == 0 {
		return
	}
	top := &stack[depth-1]
	switch top.value.kind {
	case KindArray:
		if top.elementTail == nil {
			top.value.arrayHead = value
		} else {
			top.elementTail.next = value
		}
		top.elementTail = value
		top.value.arrayLen++
	case KindObject:
		top.memberTail.value = value
	}
}

// Parse scans src with sc until EOF and builds the corresponding value
// tree, allocating nodes from alloc. On a scanning error, any nodes
// already allocated are released through alloc before Parse returns.
func Parse(sc *judo.Scanner, alloc Allocator) (*Value, error) {
	var root *Value
	var stack []frame

	for {
		if err := sc.Step(); err != nil {
			freeFrames(root, alloc)
			return nil, err
		}

		switch sc.Token {
		case judo.ArrayBegin:
			v := alloc.NewValue()
			v.kind = KindArray
			v.Span = sc.Span
			link(&root, stack, len(stack), v)
			stack = append(stack, frame{value: v})

		case judo.ObjectBegin:
			v := alloc.NewValue()
			v.kind = KindObject
			v.Span = sc.Span
			link(&root, stack, len(stack), v)
			stack = append(stack, frame{value: v})

		case judo.ArrayEnd, judo.ObjectEnd:
			top := stack[len(stack)-1]
			top.value.Span.Length = sc.Span.End() - top.value.Span.Offset
			stack = stack[:len(stack)-1]

		case judo.Null:
			v := alloc.NewValue()
			v.kind = KindNull
			v.Span = sc.Span
			link(&root, stack, len(stack), v)

		case judo.True, judo.False:
			v := alloc.NewValue()
			v.kind = KindBool
			v.Span = sc.Span
			v.flag = sc.Token == judo.True
			link(&root, stack, len(stack), v)

		case judo.Number:
			v := alloc.NewValue()
			v.kind = KindNumber
			v.Span = sc.Span
			link(&root, stack, len(stack), v)

		case judo.String:
			v := alloc.NewValue()
			v.kind = KindString
			v.Span = sc.Span
			link(&root, stack, len(stack), v)

		case judo.ObjectName:
			top := &stack[len(stack)-1]
			m := alloc.NewMember()
			m.NameSpan = sc.Span
			if top.memberTail == nil {
				top.value.objectHead = m
			} else {
				top.memberTail.next = m
			}
			top.memberTail = m
			top.value.objectLen++

		case judo.EOF:
			return root, nil
		}
	}
}

// freeFrames releases whatever part of the tree was built before a parse
// error, using the same non-recursive teardown as Free.
func freeFrames(root *Value, alloc Allocator) {
	if root != nil {
		Free(root, alloc)
	}
}
