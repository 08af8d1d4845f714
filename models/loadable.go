package models

// Loadable is the result of a remote query that may still be in flight.
//
// A Loaded value may itself be empty; callers distinguish "not yet known"
// from "known to be empty" through Loaded alone.
type Loadable[T any] struct {
	value  T
	loaded bool
}

// Loading returns a Loadable that has no value yet.
func Loading[T any]() Loadable[T] {
	return Loadable[T]{}
}

// Loaded wraps a value that has arrived.
func Loaded[T any](v T) Loadable[T] {
	return Loadable[T]{value: v, loaded: true}
}

// Loaded reports whether the value has arrived.
func (l Loadable[T]) Loaded() bool {
	return l.loaded
}

// Get returns the value and whether it has arrived.
func (l Loadable[T]) Get() (T, bool) {
	return l.value, l.loaded
}
