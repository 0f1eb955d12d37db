package borsh

import (
	"cmp"
	"slices"
	"strconv"
)

// --------------------------------------------------------------------------
// Bytes
// --------------------------------------------------------------------------

// Bytes is a byte slice whose text form is a list of numbers instead of base64
type Bytes []byte

func (b Bytes) MarshalJSON() ([]byte, error) {
	out := make([]byte, 0, 2+len(b)*4)
	out = append(out, '[')
	for i, v := range b {
		if i > 0 {
			out = append(out, ',')
		}
		out = strconv.AppendUint(out, uint64(v), 10)
	}
	return append(out, ']'), nil
}

func (b Bytes) MarshalYAML() (any, error) {
	out := make([]int, len(b))
	for i, v := range b {
		out[i] = int(v)
	}
	return out, nil
}

// --------------------------------------------------------------------------
// Option
// --------------------------------------------------------------------------

// Option is a value that may be absent
type Option[T any] struct {
	value T
	ok    bool
}

// Some creates a present option
func Some[T any](v T) Option[T] {
	return Option[T]{value: v, ok: true}
}

// None creates an absent option
func None[T any]() Option[T] {
	return Option[T]{}
}

// Get returns the value and whether it is present
func (o Option[T]) Get() (T, bool) {
	return o.value, o.ok
}

// IsSome reports whether the value is present
func (o Option[T]) IsSome() bool {
	return o.ok
}

func (o Option[T]) MarshalJSON() ([]byte, error) {
	if !o.ok {
		return []byte("null"), nil
	}
	return EncodeJSON(o.value)
}

func (o Option[T]) MarshalYAML() (any, error) {
	if !o.ok {
		return nil, nil
	}
	return o.value, nil
}

// --------------------------------------------------------------------------
// Tuples
// --------------------------------------------------------------------------

// Tuple2 is a pair rendered as a two element list
type Tuple2[A, B any] struct {
	First  A
	Second B
}

// T2 creates a Tuple2
func T2[A, B any](a A, b B) Tuple2[A, B] {
	return Tuple2[A, B]{First: a, Second: b}
}

func (t Tuple2[A, B]) MarshalJSON() ([]byte, error) {
	return EncodeJSON([]any{t.First, t.Second})
}

func (t Tuple2[A, B]) MarshalYAML() (any, error) {
	return []any{t.First, t.Second}, nil
}

// Tuple3 is a triple rendered as a three element list
type Tuple3[A, B, C any] struct {
	First  A
	Second B
	Third  C
}

// T3 creates a Tuple3
func T3[A, B, C any](a A, b B, c C) Tuple3[A, B, C] {
	return Tuple3[A, B, C]{First: a, Second: b, Third: c}
}

func (t Tuple3[A, B, C]) MarshalJSON() ([]byte, error) {
	return EncodeJSON([]any{t.First, t.Second, t.Third})
}

func (t Tuple3[A, B, C]) MarshalYAML() (any, error) {
	return []any{t.First, t.Second, t.Third}, nil
}

// --------------------------------------------------------------------------
// Set
// --------------------------------------------------------------------------

// Set is an unordered collection of unique elements. It is encoded and
// rendered in ascending element order.
type Set[T cmp.Ordered] map[T]struct{}

// NewSet creates a set from the given elements
func NewSet[T cmp.Ordered](xs ...T) Set[T] {
	s := make(Set[T], len(xs))
	for _, x := range xs {
		s[x] = struct{}{}
	}
	return s
}

// Sorted returns the elements in ascending order (never nil)
func (s Set[T]) Sorted() []T {
	out := make([]T, 0, len(s))
	for x := range s {
		out = append(out, x)
	}
	slices.Sort(out)
	return out
}

// elements returns the sorted elements as a list of values. A []uint8 would be
// rendered as a base64 string by encoding/json.
func (s Set[T]) elements() []any {
	sorted := s.Sorted()
	out := make([]any, len(sorted))
	for i, x := range sorted {
		out[i] = x
	}
	return out
}

func (s Set[T]) MarshalJSON() ([]byte, error) {
	return EncodeJSON(s.elements())
}

func (s Set[T]) MarshalYAML() (any, error) {
	return s.elements(), nil
}
