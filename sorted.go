package soll

import "fmt"

// Set replaces the value at position pos and moves the element to the
// place in the sort order that the new value requires. The element
// keeps its sequence position and identity, and Set does not promote
// it. Valid positions are 0 through Len()-1; any other position
// returns an error wrapping ErrOutOfRange.
func (l *List[T]) Set(pos int, v T) error {
	e, err := l.getNode(pos)
	if err != nil {
		return fmt.Errorf("set element: %w", err)
	}

	l.replace(e, v)
	return nil
}

// Contains reports whether the list holds a value equal to v. Unlike
// Search, Contains does not reorder the list. The scan follows the
// sort order and stops at the first value larger than v.
func (l *List[T]) Contains(v T) bool {
	if l.Len() == 0 {
		return false
	}

	for e := l.min; e != nil && !l.lt(v, e.item); e = e.asc {
		if e.item == v {
			return true
		}
	}
	return false
}

// replace re-derives the sort position of e around a value change
// without ever changing the length of the list.
func (l *List[T]) replace(e *Element[T], v T) {
	l.removeSorted(e)
	e.item = v
	l.insertSorted(e)
}

// insertSorted places e before the first element whose value is not
// less than e's value. A value equal to existing values therefore
// sorts before them: among equal values, the most recently placed
// comes first.
func (l *List[T]) insertSorted(e *Element[T]) {
	if l.min == nil {
		l.min, l.max = e, e
		return
	}

	at := l.min
	for at != nil && l.lt(at.item, e.item) {
		at = at.asc
	}

	switch at {
	case nil:
		e.desc = l.max
		l.max.asc = e
		l.max = e
	case l.min:
		e.asc = l.min
		l.min.desc = e
		l.min = e
	default:
		e.asc = at
		e.desc = at.desc
		at.desc.asc = e
		at.desc = e
	}
}

// removeSorted unlinks e from the sort order only; callers handle the
// sequence order and the length.
func (l *List[T]) removeSorted(e *Element[T]) {
	switch {
	case l.min == e && l.max == e:
		l.min, l.max = nil, nil
	case l.min == e:
		l.min = e.asc
		l.min.desc = nil
	case l.max == e:
		l.max = e.desc
		l.max.asc = nil
	default:
		e.desc.asc = e.asc
		e.asc.desc = e.desc
	}

	e.asc, e.desc = nil, nil
}
