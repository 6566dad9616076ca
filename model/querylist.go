// Copyright (c) 2026 Michael D Henderson. All rights reserved.

package model

// QueryList is an ordered list of items that can be filtered by predicate.
type QueryList[T any] struct {
	items []T
}

// NewQueryList returns a QueryList holding a copy of items.
func NewQueryList[T any](items ...T) QueryList[T] {
	return QueryList[T]{items: append([]T(nil), items...)}
}

// Len returns the number of items.
func (q QueryList[T]) Len() int {
	return len(q.items)
}

// All returns a copy of the items in order.
func (q QueryList[T]) All() []T {
	return append([]T(nil), q.items...)
}

// Query returns the items for which match returns true, in order.
func (q QueryList[T]) Query(match func(T) bool) QueryList[T] {
	var out QueryList[T]
	for _, item := range q.items {
		if match(item) {
			out.items = append(out.items, item)
		}
	}
	return out
}

// First returns the first item for which match returns true.
func (q QueryList[T]) First(match func(T) bool) (T, bool) {
	for _, item := range q.items {
		if match(item) {
			return item, true
		}
	}
	var zero T
	return zero, false
}

// Append returns a new list with items added to the end.
func (q QueryList[T]) Append(items ...T) QueryList[T] {
	out := make([]T, 0, len(q.items)+len(items))
	out = append(out, q.items...)
	return QueryList[T]{items: append(out, items...)}
}
