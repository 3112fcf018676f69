/*
Copyright 2022 TrainCfg Authors

Licensed under the Apache License, Version 2.0 (the "License");
you may not use this file except in compliance with the License.
You may obtain a copy of the License at

    http://www.apache.org/licenses/LICENSE-2.0

Unless required by applicable law or agreed to in writing, software
distributed under the License is distributed on an "AS IS" BASIS,
WITHOUT WARRANTIES OR CONDITIONS OF ANY KIND, either express or implied.
See the License for the specific language governing permissions and
limitations under the License.
*/

package intset

import (
	"sort"
)

type Set map[int]struct{}

var _keyExists = struct{}{}

// New creates and initializes a new Set.
func New(ts ...int) Set {
	s := make(Set)
	s.Add(ts...)
	return s
}

func FromSlice(items []int) Set {
	return New(items...)
}

// Add includes the specified items (one or more) to the Set. The underlying
// Set s is modified. If passed nothing it silently returns.
func (s Set) Add(items ...int) {
	for _, item := range items {
		s[item] = _keyExists
	}
}

// Remove deletes the specified items from the Set. The underlying Set s is
// modified. If passed nothing it silently returns.
func (s Set) Remove(items ...int) {
	for _, item := range items {
		delete(s, item)
	}
}

// Has looks for the existence of items passed. It returns false if nothing is
// passed. For multiple items it returns true only if all of the items exist.
func (s Set) Has(items ...int) bool {
	has := false
	for _, item := range items {
		if _, has = s[item]; !has {
			break
		}
	}
	return has
}

func (s Set) IsEmpty() bool {
	return len(s) == 0
}

// Size returns the number of items in a Set.
func (s Set) Size() int {
	return len(s)
}

// Copy returns a new Set with a copy of s.
func (s Set) Copy() Set {
	copied := make(Set, len(s))
	for item := range s {
		copied[item] = _keyExists
	}
	return copied
}

// Slice returns the items in the Set as an int slice (in no particular order).
func (s Set) Slice() []int {
	items := make([]int, 0, len(s))
	for item := range s {
		items = append(items, item)
	}
	return items
}

// SliceSorted returns the items in the Set as a sorted int slice.
func (s Set) SliceSorted() []int {
	items := s.Slice()
	sort.Ints(items)
	return items
}

// Equal tests whether s and s2 contain the same items.
func (s Set) Equal(s2 Set) bool {
	if len(s) != len(s2) {
		return false
	}
	for item := range s2 {
		if _, has := s[item]; !has {
			return false
		}
	}
	return true
}

// Subtract returns a new Set with the items of s that are not in s2.
func (s Set) Subtract(s2 Set) Set {
	diff := New()
	for item := range s {
		if _, has := s2[item]; !has {
			diff.Add(item)
		}
	}
	return diff
}
