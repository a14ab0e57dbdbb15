// Package cmp provides the ordering functions that place values in
// the sort chain of a soll.List.
package cmp

import (
	"time"

	"golang.org/x/exp/constraints"
)

// Ordered describes every type that supports the < operator. To
// order other types, provide a LessThan function or implement
// Orderable.
type Ordered interface{ constraints.Ordered }

// Orderable allows user types to declare their own strict ordering.
type Orderable[T any] interface{ LessThan(T) bool }

// LessThan reports whether a sorts strictly before b. Implementations
// must be a strict weak ordering: irreflexive, and transitive.
type LessThan[T any] func(a, b T) bool

// Native wraps the < operator.
func Native[T Ordered](a, b T) bool { return a < b }

// Custom orders types that implement Orderable.
func Custom[T Orderable[T]](a, b T) bool { return a.LessThan(b) }

// By orders values by an Ordered key derived from each value, as in
// sorting records by one of their fields.
func By[T any, K Ordered](key func(T) K) LessThan[T] {
	return func(a, b T) bool { return key(a) < key(b) }
}

// Time orders timestamps chronologically.
func Time(a, b time.Time) bool { return a.Before(b) }

// Reverse flips the direction of an ordering so that the sort chain
// runs from the largest to the smallest value.
func Reverse[T any](fn LessThan[T]) LessThan[T] { return func(a, b T) bool { return fn(b, a) } }
