package soll

import (
	"errors"
	"fmt"
)

// Validate walks both orders of the list and reports every broken
// structural invariant: inconsistent ends, asymmetric links, cycles,
// elements owned by another list, a sort order that decreases, or
// orders that disagree on length or membership. The returned error
// wraps ErrCorrupted and each individual problem. A nil or empty
// list is valid.
//
// Validate is O(n) and intended for tests and debugging tools.
func (l *List[T]) Validate() error {
	if l == nil {
		return nil
	}

	var errs []error
	report := func(format string, args ...any) { errs = append(errs, fmt.Errorf(format, args...)) }

	if (l.length == 0) != (l.head == nil && l.tail == nil && l.min == nil && l.max == nil) {
		report("length %d disagrees with list ends", l.length)
	}
	if l.length < 0 {
		report("negative length %d", l.length)
	}

	members := make(map[*Element[T]]struct{}, l.length)

	var last *Element[T]
	seen := 0
	for e := l.head; e != nil; e = e.next {
		if seen > l.length {
			report("sequence order is longer than length %d (cycle?)", l.length)
			break
		}
		if e.prev != last {
			report("sequence position %d: previous link is inconsistent", seen)
		}
		if e.list != l {
			report("sequence position %d: element belongs to another list", seen)
		}
		members[e] = struct{}{}
		last = e
		seen++
	}
	if last != l.tail {
		report("sequence order does not end at the tail")
	}
	if seen != l.length {
		report("sequence order has %d elements, length is %d", seen, l.length)
	}

	last = nil
	seen = 0
	for e := l.min; e != nil; e = e.asc {
		if seen > l.length {
			report("sort order is longer than length %d (cycle?)", l.length)
			break
		}
		if e.desc != last {
			report("sort position %d: descending link is inconsistent", seen)
		}
		if last != nil && l.lt != nil && l.lt(e.item, last.item) {
			report("sort position %d: %v sorts before %v", seen, e.item, last.item)
		}
		if _, ok := members[e]; !ok {
			report("sort position %d: element is not in the sequence order", seen)
		}
		last = e
		seen++
	}
	if last != l.max {
		report("sort order does not end at the maximum")
	}
	if seen != l.length {
		report("sort order has %d elements, length is %d", seen, l.length)
	}

	if len(errs) == 0 {
		return nil
	}
	return fmt.Errorf("%w: %w", ErrCorrupted, errors.Join(errs...))
}
