// Package maybe provides an explicit optional value. A trie node's
// payload is a Maybe so that "no value stored" is never conflated with
// an empty value or with a failed lookup.
package maybe

import "fmt"

// Maybe represents a value that may or may not be present.
// The zero value is Nothing.
type Maybe[T any] struct {
	hasValue bool
	value    T
}

// Some returns a new Maybe[T] with the value val.
func Some[T any](val T) Maybe[T] {
	return Maybe[T]{
		value:    val,
		hasValue: true,
	}
}

// Nothing returns a new Maybe[T] with no value.
func Nothing[T any]() Maybe[T] {
	return Maybe[T]{}
}

// IsNothing returns false iff [m] has a value.
func (m Maybe[T]) IsNothing() bool {
	return !m.hasValue
}

// HasValue returns true iff [m] has a value.
func (m Maybe[T]) HasValue() bool {
	return m.hasValue
}

// Value returns the value of [m], or the zero value of T if [m] is Nothing.
func (m Maybe[T]) Value() T {
	return m.value
}

func (m Maybe[T]) String() string {
	if !m.hasValue {
		return "Nothing"
	}
	return fmt.Sprintf("Some(%v)", m.value)
}

// Bind returns Nothing iff [m] is Nothing.
// Otherwise applies [f] to the value of [m] and returns the result as Some.
func Bind[T, U any](m Maybe[T], f func(T) U) Maybe[U] {
	if m.IsNothing() {
		return Nothing[U]()
	}
	return Some(f(m.Value()))
}

// Equal returns true if both m1 and m2 are nothing or have the same value
// according to [equality].
func Equal[T any](m1 Maybe[T], m2 Maybe[T], equality func(T, T) bool) bool {
	if m1.IsNothing() {
		return m2.IsNothing()
	}
	if m2.IsNothing() {
		return false
	}
	return equality(m1.Value(), m2.Value())
}
