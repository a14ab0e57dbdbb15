// Package soll provides a self-organizing, dually-ordered linked list.
//
// A List keeps its values in two orders at once. The sequence order
// is positional: values keep the place they were inserted at, and are
// addressed by a zero based position. The sort order links the same
// elements from the smallest to the largest value, so the minimum
// and maximum are always available in constant time.
//
// Reading a value by position (Get) or finding it by value (Search)
// moves the element one step toward the front of the sequence. Over
// time frequently accessed values gather near the front, where
// positional access and search are cheapest.
//
// Lists are not safe for concurrent use: every operation, including
// Get and Search, may relink elements. Callers that share a list
// between goroutines must provide their own synchronization.
package soll

import "github.com/tychoish/soll/cmp"

// List is a doubly linked list threaded twice through the same
// elements: once in sequence (positional) order and once in
// ascending value order. Construct lists with New or NewFunc; the
// zero value is an empty list that panics when values are added,
// because it has no ordering function.
type List[T comparable] struct {
	head   *Element[T]
	tail   *Element[T]
	min    *Element[T]
	max    *Element[T]
	length int
	lt     cmp.LessThan[T]
}

// Len returns the number of values in the list. Because all
// operations track the length, this is an O(1) operation.
func (l *List[T]) Len() int {
	if l == nil {
		return 0
	}
	return l.length
}

// Clear removes every element from the list. Elements held by callers
// are detached and report false from Ok. Clearing an empty list is
// a no-op.
func (l *List[T]) Clear() {
	if l == nil {
		return
	}

	for e := l.head; e != nil; {
		next := e.next
		e.detach()
		e = next
	}

	l.head, l.tail = nil, nil
	l.min, l.max = nil, nil
	l.length = 0
}

func (l *List[T]) init() {
	if l == nil || l.lt == nil {
		panic(ErrUninitializedContainer)
	}
}

func (l *List[T]) makeElem(v T) *Element[T] { return &Element[T]{item: v, list: l} }
