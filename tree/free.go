// Copyright (C) 2021 Michael J. Fromberger. All Rights Reserved.

package tree

// freeFrame is one entry of the explicit worklist Free walks instead of
// recursing: value is a node not yet visited, element/member are the
// remaining unvisited children of a compound node already being torn
// down.
type freeFrame struct {
	value   *Value
	element *Value
	member  *Member
}

// Free releases root and every node reachable from it back to alloc. It
// never recurses, so it cannot overflow the call stack regardless of how
// deeply root is nested; the reference implementation's judo_free uses
// the same explicit-stack technique for the same reason.
func Free(root *Value, alloc Allocator) {
	if root == nil {
		return
	}

	stack := make([]freeFrame, 1, 16)
	stack[0].value = root

	for len(stack) > 0 {
		top := &stack[len(stack)-1]

		switch {
		case top.element != nil:
			next := top.element.next
			if next == nil {
				top.value = top.element
			} else {
				stack = append(stack, freeFrame{value: top.element})
				top = &stack[len(stack)-2]
			}
			top.element = next

		case top.member != nil:
			member := top.member
			next := member.next
			if next == nil {
				top.value = member.value
			} else {
				stack = append(stack, freeFrame{value: member.value})
				top = &stack[len(stack)-2]
			}
			alloc.ReleaseMember(member)
			top.member = next

		case top.value == nil:
			stack = stack[:len(stack)-1]

		default:
			value := top.value
			*top = freeFrame{}
			stack = stack[:len(stack)-1]

			switch value.kind {
			case KindArray:
				if value.arrayHead != nil {
					stack = append(stack, freeFrame{element: value.arrayHead})
				}
			case KindObject:
				if value.objectHead != nil {
					stack = append(stack, freeFrame{member: value.objectHead})
				}
			}
			alloc.ReleaseValue(value)
		}
	}
}
