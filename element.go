package soll

import "fmt"

// Element is one value in a List, and doubles as a cursor over both
// of the list's orders: Next and Previous follow the sequence order,
// Ascend and Descend follow the sort order. At either end of an
// order the neighbor is nil, which reports false for Ok:
//
//	for e := list.Front(); e.Ok(); e = e.Next() {
//		// sequence order
//	}
//
//	for e := list.Min(); e.Ok(); e = e.Ascend() {
//		// ascending order
//	}
//
// Elements remain valid while they are in the list. Structural
// changes move elements relative to each other, so a cursor held
// across a Get, Search, Insert or Remove may land somewhere
// unexpected; removed elements are detached and report false for Ok.
type Element[T comparable] struct {
	next *Element[T]
	prev *Element[T]
	asc  *Element[T]
	desc *Element[T]
	list *List[T]
	item T
}

// Ok reports whether the element is a member of a list. Returns false
// when the element is nil.
func (e *Element[T]) Ok() bool { return e != nil && e.list != nil }

// In reports whether the element is a member of the specified
// list. Because elements hold a pointer to their list, this is an
// O(1) operation.
func (e *Element[T]) In(l *List[T]) bool { return e.Ok() && e.list == l }

// Value returns the element's value, or the zero value for nil
// elements.
func (e *Element[T]) Value() (out T) {
	if e != nil {
		out = e.item
	}
	return
}

// Ref exposes the element's value by reference. Writing through the
// pointer changes the value without moving the element in the sort
// order; use Set or List.Set when the sort order must follow the new
// value.
func (e *Element[T]) Ref() *T {
	if e == nil {
		return nil
	}
	return &e.item
}

// Set replaces the value of the element and moves it to its new
// place in the sort order. The sequence position does not
// change. Returns false if the element is not a member of a list.
func (e *Element[T]) Set(v T) bool {
	if !e.Ok() {
		return false
	}
	e.list.replace(e, v)
	return true
}

// String returns the string form of the element's value.
func (e *Element[T]) String() string { return fmt.Sprint(e.Value()) }

// Next returns the following element in sequence order.
func (e *Element[T]) Next() *Element[T] {
	if e == nil {
		return nil
	}
	return e.next
}

// Previous returns the preceding element in sequence order.
func (e *Element[T]) Previous() *Element[T] {
	if e == nil {
		return nil
	}
	return e.prev
}

// Ascend returns the next larger (or equal) element in sort order.
func (e *Element[T]) Ascend() *Element[T] {
	if e == nil {
		return nil
	}
	return e.asc
}

// Descend returns the next smaller (or equal) element in sort order.
func (e *Element[T]) Descend() *Element[T] {
	if e == nil {
		return nil
	}
	return e.desc
}

func (e *Element[T]) detach() {
	e.next, e.prev = nil, nil
	e.asc, e.desc = nil, nil
	e.list = nil
}
