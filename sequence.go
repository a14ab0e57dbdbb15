package soll

import "fmt"

// Append adds a variadic sequence of values to the end of the list.
func (l *List[T]) Append(items ...T) {
	for idx := range items {
		l.PushBack(items[idx])
	}
}

// PushBack adds a value to the end of the list.
func (l *List[T]) PushBack(v T) {
	l.init()

	e := l.makeElem(v)
	if l.tail == nil {
		l.head, l.tail = e, e
	} else {
		e.prev = l.tail
		l.tail.next = e
		l.tail = e
	}

	l.insertSorted(e)
	l.length++
}

// PushFront adds a value to the front of the list. The performance of
// PushFront and PushBack are the same: both are bounded by the linear
// scan that places the value in sort order.
func (l *List[T]) PushFront(v T) {
	l.init()

	e := l.makeElem(v)
	if l.head == nil {
		l.head, l.tail = e, e
	} else {
		e.next = l.head
		l.head.prev = e
		l.head = e
	}

	l.insertSorted(e)
	l.length++
}

// Insert adds a value so that it occupies position pos, shifting the
// element previously at pos (and all after it) back by one. Valid
// positions are 0 through Len() inclusive; any other position returns
// an error wrapping ErrOutOfRange and leaves the list unchanged. The
// range is checked first, so an out of range position on a nil or
// zero-value list is an error rather than a panic.
func (l *List[T]) Insert(pos int, v T) error {
	if n := l.Len(); pos < 0 || pos > n {
		return fmt.Errorf("insert: %w", rangeError(pos, n))
	}

	l.init()

	switch {
	case pos == 0:
		l.PushFront(v)
	case pos == l.length:
		l.PushBack(v)
	default:
		at := l.walk(pos)
		e := l.makeElem(v)
		e.next = at
		e.prev = at.prev
		at.prev.next = e
		at.prev = e

		l.insertSorted(e)
		l.length++
	}

	return nil
}

// PopFront removes the first value of the list and returns it. The
// second return value is false when the list is empty.
func (l *List[T]) PopFront() (out T, ok bool) {
	switch l.Len() {
	case 0:
		return out, false
	case 1:
		out = l.head.item
		l.Clear()
		return out, true
	}

	e := l.head
	l.removeSorted(e)
	l.head = e.next
	l.head.prev = nil
	l.length--

	out = e.item
	e.detach()
	return out, true
}

// PopBack removes the last value of the list and returns it. The
// second return value is false when the list is empty.
func (l *List[T]) PopBack() (out T, ok bool) {
	switch l.Len() {
	case 0:
		return out, false
	case 1:
		out = l.tail.item
		l.Clear()
		return out, true
	}

	e := l.tail
	l.removeSorted(e)
	l.tail = e.prev
	l.tail.next = nil
	l.length--

	out = e.item
	e.detach()
	return out, true
}

// Remove deletes the value at position pos and returns it. Valid
// positions are 0 through Len()-1; any other position returns an
// error wrapping ErrOutOfRange and leaves the list unchanged.
func (l *List[T]) Remove(pos int) (out T, err error) {
	switch n := l.Len(); {
	case pos < 0 || pos >= n:
		return out, fmt.Errorf("remove: %w", rangeError(pos, n))
	case pos == 0:
		out, _ = l.PopFront()
		return out, nil
	case pos == n-1:
		out, _ = l.PopBack()
		return out, nil
	}

	e := l.walk(pos)
	l.removeSorted(e)
	e.prev.next = e.next
	e.next.prev = e.prev
	l.length--

	out = e.item
	e.detach()
	return out, nil
}

// getNode resolves a position to its element without promoting it.
func (l *List[T]) getNode(pos int) (*Element[T], error) {
	if n := l.Len(); pos < 0 || pos >= n {
		return nil, rangeError(pos, n)
	}
	return l.walk(pos), nil
}

// walk starts from whichever end of the sequence is closer to
// pos. The caller must have checked that pos is in range.
func (l *List[T]) walk(pos int) *Element[T] {
	if pos < l.length/2 {
		e := l.head
		for ; pos > 0; pos-- {
			e = e.next
		}
		return e
	}

	e := l.tail
	for steps := l.length - 1 - pos; steps > 0; steps-- {
		e = e.prev
	}
	return e
}
