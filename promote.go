package soll

import "fmt"

// Get returns the value at position pos and promotes its element one
// step toward the front of the list: after Get(pos) with pos > 0 the
// value is at pos-1, and the value previously at pos-1 is at
// pos. Valid positions are 0 through Len()-1; any other position
// returns an error wrapping ErrOutOfRange and leaves the list
// unchanged.
func (l *List[T]) Get(pos int) (out T, err error) {
	e, err := l.getNode(pos)
	if err != nil {
		return out, fmt.Errorf("get element: %w", err)
	}

	return l.promote(e).item, nil
}

// Search finds the first value (in sequence order) equal to v,
// promotes it one step toward the front, and returns its position
// after the promotion. A match found at position i > 0 is therefore
// reported at i-1, and a match at the front at 0. Search returns
// NotFound when no value matches.
func (l *List[T]) Search(v T) int {
	if l == nil {
		return NotFound
	}

	idx := 0
	for e := l.head; e != nil; e = e.next {
		if e.item == v {
			l.promote(e)
			if idx > 0 {
				idx--
			}
			return idx
		}
		idx++
	}

	return NotFound
}

// promote swaps e with its sequence predecessor. Only e, its
// predecessor, and their outer neighbors are relinked; the sort order
// is not affected.
func (l *List[T]) promote(e *Element[T]) *Element[T] {
	switch {
	case e == l.head:
	case l.length == 2:
		h := l.head
		h.prev, h.next = e, nil
		e.prev, e.next = nil, h
		l.head, l.tail = e, h
	case e == l.head.next:
		h := l.head
		h.next = e.next
		h.next.prev = h
		h.prev = e
		e.next = h
		e.prev = nil
		l.head = e
	case e == l.tail:
		p := e.prev
		p.prev.next = e
		e.prev = p.prev
		e.next = p
		p.prev = e
		p.next = nil
		l.tail = p
	default:
		p, n := e.prev, e.next
		p.prev.next = e
		e.prev = p.prev
		e.next = p
		p.prev = e
		p.next = n
		n.prev = p
	}

	return e
}
