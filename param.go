package airfoil

import (
	"fmt"
	"math"
	"slices"
)

// A Field declares one named scalar shape parameter: its bounds, its
// default value, and a line of help text. Field tables are declared once
// per airfoil family and never change at runtime.
type Field struct {
	Name    string
	Min     float64
	Max     float64
	Default float64
	Integer bool // only whole values are accepted
	Help    string
}

// contains reports whether value lies within the field's bounds and, for
// integer fields, is a whole number.
func (f Field) contains(value float64) bool {
	if f.Integer && value != math.Trunc(value) {
		return false
	}
	return value >= f.Min && value <= f.Max
}

// A Store holds the current values of a declared set of fields. Writes are
// range-checked against the field's bounds before anything is committed, so
// a failed write leaves the store untouched. A field that has never been
// written reads as its declared default.
type Store struct {
	fields []Field
	index  map[string]int
	values []float64
	set    []bool
}

// NewStore returns a store over the given field declarations.
func NewStore(fields []Field) *Store {
	s := &Store{
		fields: fields,
		index:  make(map[string]int, len(fields)),
		values: make([]float64, len(fields)),
		set:    make([]bool, len(fields)),
	}
	for i, f := range fields {
		if _, ok := s.index[f.Name]; ok {
			panic("airfoil: duplicate field " + f.Name)
		}
		s.index[f.Name] = i
	}
	return s
}

// Fields returns the field declarations, in declaration order.
func (s *Store) Fields() []Field {
	return slices.Clone(s.fields)
}

// Has reports whether the store declares a field with the given name.
func (s *Store) Has(name string) bool {
	_, ok := s.index[name]
	return ok
}

// Get returns the current value of the named field, or its default if it
// has never been written. It panics on an unknown name, as field names are
// fixed at declaration time and a wrong one is a programmer error.
func (s *Store) Get(name string) float64 {
	i, ok := s.index[name]
	if !ok {
		panic("airfoil: unknown field " + name)
	}
	if !s.set[i] {
		return s.fields[i].Default
	}
	return s.values[i]
}

// GetInt returns the current value of an integer field.
func (s *Store) GetInt(name string) int {
	return int(s.Get(name))
}

// Set validates value against the named field's bounds and commits it.
// Out-of-range values, non-integral values for integer fields, and unknown
// names are rejected with a *ValidationError, leaving the previous value
// in effect.
func (s *Store) Set(name string, value float64) error {
	i, ok := s.index[name]
	if !ok {
		return &ValidationError{
			Param:  name,
			Value:  fmt.Sprintf("%g", value),
			Reason: "unknown parameter",
		}
	}
	if f := s.fields[i]; !f.contains(value) {
		return outOfRange(f, value)
	}
	s.values[i] = value
	s.set[i] = true
	return nil
}

// Update validates every entry of values and then commits them all. If any
// entry fails validation, nothing is committed. It returns the names of the
// written fields in a deterministic order.
func (s *Store) Update(values map[string]float64) ([]string, error) {
	names := make([]string, 0, len(values))
	for name := range values {
		names = append(names, name)
	}
	slices.Sort(names)
	for _, name := range names {
		i, ok := s.index[name]
		if !ok {
			return nil, &ValidationError{
				Param:  name,
				Value:  fmt.Sprintf("%g", values[name]),
				Reason: "unknown parameter",
			}
		}
		if f := s.fields[i]; !f.contains(values[name]) {
			return nil, outOfRange(f, values[name])
		}
	}
	for _, name := range names {
		i := s.index[name]
		s.values[i] = values[name]
		s.set[i] = true
	}
	return names, nil
}
