package model

import (
	"encoding/json"
	"slices"
)

// OptionSet is an unordered multi-select field. Selecting a member that is
// already present removes it again, so repeated toggles can never produce
// duplicates. JSON form is an array; unmarshalling collapses duplicates.
type OptionSet[T ~string] map[T]struct{}

// NewOptionSet builds a set from the given members.
func NewOptionSet[T ~string](members ...T) OptionSet[T] {
	s := make(OptionSet[T], len(members))
	for _, m := range members {
		s[m] = struct{}{}
	}
	return s
}

// Toggle flips membership of v.
func (s OptionSet[T]) Toggle(v T) {
	if _, ok := s[v]; ok {
		delete(s, v)
		return
	}
	s[v] = struct{}{}
}

// Has reports whether v is a member.
func (s OptionSet[T]) Has(v T) bool {
	_, ok := s[v]
	return ok
}

// Len returns the number of members.
func (s OptionSet[T]) Len() int { return len(s) }

// Values returns the members in sorted order, so prompt text and JSON
// output are deterministic.
func (s OptionSet[T]) Values() []T {
	vals := make([]T, 0, len(s))
	for v := range s {
		vals = append(vals, v)
	}
	slices.Sort(vals)
	return vals
}

// MarshalJSON encodes the set as a sorted array.
func (s OptionSet[T]) MarshalJSON() ([]byte, error) {
	return json.Marshal(s.Values())
}

// UnmarshalJSON decodes an array, dropping duplicates.
func (s *OptionSet[T]) UnmarshalJSON(data []byte) error {
	var vals []T
	if err := json.Unmarshal(data, &vals); err != nil {
		return err
	}
	*s = NewOptionSet(vals...)
	return nil
}
