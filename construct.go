package soll

import "github.com/tychoish/soll/cmp"

// New constructs a list ordered by the < operator, holding the
// provided values in sequence order.
func New[T cmp.Ordered](items ...T) *List[T] { return NewFunc(cmp.Native[T], items...) }

// NewFunc constructs a list whose sort order is defined by lt, holding
// the provided values in sequence order. Equality for Search and
// Contains is always Go's == operator, so lt should treat values that
// are == as equal. NewFunc panics with ErrUninitializedContainer if
// lt is nil.
func NewFunc[T comparable](lt cmp.LessThan[T], items ...T) *List[T] {
	if lt == nil {
		panic(ErrUninitializedContainer)
	}

	out := &List[T]{lt: lt}
	out.Append(items...)
	return out
}

// Filled constructs a list ordered by the < operator that holds n
// copies of v.
func Filled[T cmp.Ordered](n int, v T) *List[T] { return FilledFunc(cmp.Native[T], n, v) }

// FilledFunc constructs a list ordered by lt that holds n copies of v.
func FilledFunc[T comparable](lt cmp.LessThan[T], n int, v T) *List[T] {
	out := NewFunc(lt)
	for i := 0; i < n; i++ {
		out.PushBack(v)
	}
	return out
}

// Copy duplicates the list. The copy has the same sequence order and
// ordering function; its sort order is rebuilt by inserting every
// value again, so ties among equal values are ordered by their
// sequence position in the copy. The elements are distinct, though if
// the values are themselves references, both lists share them.
func (l *List[T]) Copy() *List[T] {
	if l == nil {
		return nil
	}

	out := &List[T]{lt: l.lt}
	for e := l.head; e != nil; e = e.next {
		out.PushBack(e.item)
	}
	return out
}

// Swap exchanges the entire contents of two lists, including their
// ordering functions. Elements move with their values: an element
// taken from l before the swap is a member of other afterwards.
func (l *List[T]) Swap(other *List[T]) {
	if l == other {
		return
	}

	if l == nil || other == nil {
		panic(ErrUninitializedContainer)
	}

	l.head, other.head = other.head, l.head
	l.tail, other.tail = other.tail, l.tail
	l.min, other.min = other.min, l.min
	l.max, other.max = other.max, l.max
	l.length, other.length = other.length, l.length
	l.lt, other.lt = other.lt, l.lt

	l.adopt()
	other.adopt()
}

// Take moves the contents of src into l, leaving src empty. Any
// values l held before are removed. The list adopts the ordering
// function of src, since the moved elements are sorted by it; src
// keeps its ordering function and remains usable.
func (l *List[T]) Take(src *List[T]) {
	if src == nil || l == src {
		return
	}
	if l == nil {
		panic(ErrUninitializedContainer)
	}

	l.Clear()
	l.head, l.tail = src.head, src.tail
	l.min, l.max = src.min, src.max
	l.length = src.length
	l.lt = src.lt
	l.adopt()

	src.head, src.tail = nil, nil
	src.min, src.max = nil, nil
	src.length = 0
}

// Assign replaces the contents of l with a copy of src. Assigning a
// nil list clears l.
func (l *List[T]) Assign(src *List[T]) {
	if l == src {
		return
	}
	if src == nil {
		l.Clear()
		return
	}

	tmp := src.Copy()
	if tmp.lt == nil {
		// src is an uninitialized, and therefore empty, list
		l.Clear()
		return
	}

	l.Swap(tmp)
	tmp.Clear()
}

func (l *List[T]) adopt() {
	for e := l.head; e != nil; e = e.next {
		e.list = l
	}
}
