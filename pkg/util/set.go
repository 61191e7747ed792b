// Copyright (c) 2025, 2026, Oracle and/or its affiliates.
// Licensed under the Universal Permissive License v 1.0 as shown at https://oss.oracle.com/licenses/upl.

package util

import (
	"cmp"
	"slices"
)

// Set is a generic set with fast membership tests.
type Set[T comparable] struct {
	items map[T]struct{}
}

// NewSet creates a set populated from the given elements.
func NewSet[T comparable](elems ...T) *Set[T] {
	set := &Set[T]{items: make(map[T]struct{}, len(elems))}
	for _, elem := range elems {
		set.items[elem] = struct{}{}
	}
	return set
}

// NewSetFromMapKeys creates a set populated from the keys of the given map.
func NewSetFromMapKeys[T comparable, V any](m map[T]V) *Set[T] {
	set := &Set[T]{items: make(map[T]struct{}, len(m))}
	for key := range m {
		set.items[key] = struct{}{}
	}
	return set
}

// Add inserts an element into the set.  It returns false if the element
// was already there.
func (s *Set[T]) Add(elem T) bool {
	if s.Contains(elem) {
		return false
	}
	s.items[elem] = struct{}{}
	return true
}

// Contains tests if an element is in the set.
func (s *Set[T]) Contains(elem T) bool {
	_, exists := s.items[elem]
	return exists
}

// Size returns the number of elements in the set.
func (s *Set[T]) Size() int {
	return len(s.items)
}

// Sorted returns the elements of an ordered set in ascending order.
func Sorted[T cmp.Ordered](s *Set[T]) []T {
	ret := make([]T, 0, len(s.items))
	for elem := range s.items {
		ret = append(ret, elem)
	}
	slices.Sort(ret)
	return ret
}
