package soll

import (
	"iter"
	"slices"
)

// Front returns the first element in sequence order, or nil when the
// list is empty.
func (l *List[T]) Front() *Element[T] {
	if l == nil {
		return nil
	}
	return l.head
}

// Back returns the last element in sequence order, or nil when the
// list is empty.
func (l *List[T]) Back() *Element[T] {
	if l == nil {
		return nil
	}
	return l.tail
}

// Min returns the first element in sort order, holding the smallest
// value, or nil when the list is empty.
func (l *List[T]) Min() *Element[T] {
	if l == nil {
		return nil
	}
	return l.min
}

// Max returns the last element in sort order, holding the largest
// value, or nil when the list is empty.
func (l *List[T]) Max() *Element[T] {
	if l == nil {
		return nil
	}
	return l.max
}

// All returns an iterator over the values in sequence order. None of
// the iterators promote elements.
//
// The iterator reads the next element before yielding the current
// one, so the loop body may remove the current value. Other
// structural changes during iteration are allowed but may cause
// values to be skipped or visited twice.
func (l *List[T]) All() iter.Seq[T] { return values(l.Front, (*Element[T]).Next) }

// Backward returns an iterator over the values from the back of the
// list to the front.
func (l *List[T]) Backward() iter.Seq[T] { return values(l.Back, (*Element[T]).Previous) }

// Ascending returns an iterator over the values from smallest to
// largest.
func (l *List[T]) Ascending() iter.Seq[T] { return values(l.Min, (*Element[T]).Ascend) }

// Descending returns an iterator over the values from largest to
// smallest.
func (l *List[T]) Descending() iter.Seq[T] { return values(l.Max, (*Element[T]).Descend) }

// Enumerate returns an iterator over positions and values in sequence
// order.
func (l *List[T]) Enumerate() iter.Seq2[int, T] {
	return func(yield func(int, T) bool) {
		idx := 0
		for v := range l.All() {
			if !yield(idx, v) {
				return
			}
			idx++
		}
	}
}

// Slice exports the values in sequence order.
func (l *List[T]) Slice() []T { return collect(l.Len(), l.All()) }

// ReverseSlice exports the values from the back of the list to the front.
func (l *List[T]) ReverseSlice() []T { return collect(l.Len(), l.Backward()) }

// AscendingSlice exports the values from smallest to largest.
func (l *List[T]) AscendingSlice() []T { return collect(l.Len(), l.Ascending()) }

// DescendingSlice exports the values from largest to smallest.
func (l *List[T]) DescendingSlice() []T { return collect(l.Len(), l.Descending()) }

func values[T comparable](first func() *Element[T], step func(*Element[T]) *Element[T]) iter.Seq[T] {
	return func(yield func(T) bool) {
		for e := first(); e.Ok(); {
			next := step(e)
			if !yield(e.item) {
				return
			}
			e = next
		}
	}
}

func collect[T any](size int, seq iter.Seq[T]) []T {
	return slices.AppendSeq(make([]T, 0, size), seq)
}
