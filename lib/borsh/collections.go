package borsh

import (
	"cmp"
	"slices"

	"github.com/pkg/errors"
)

// --------------------------------------------------------------------------
// Vec and fixed size arrays
// --------------------------------------------------------------------------

// Vec creates a codec for a length prefixed sequence of elements
func Vec[T any](c ICodec[T]) ICodec[[]T] {
	return funcCodec[[]T]{
		enc: func(w *Writer, xs []T) error {
			if err := w.WriteLength(len(xs)); err != nil {
				return err
			}
			return encodeElements(w, c, xs)
		},
		dec: func(r *Reader) ([]T, error) {
			n, err := r.ReadLength()
			if err != nil {
				return nil, errors.Wrap(err, "vec")
			}
			return decodeElements(r, c, n)
		},
	}
}

// Array creates a codec for exactly n elements without a length prefix.
// Encoding a slice of any other length fails.
func Array[T any](c ICodec[T], n int) ICodec[[]T] {
	return funcCodec[[]T]{
		enc: func(w *Writer, xs []T) error {
			if len(xs) != n {
				return errors.Errorf("array expects %d elements, got %d", n, len(xs))
			}
			return encodeElements(w, c, xs)
		},
		dec: func(r *Reader) ([]T, error) {
			return decodeElements(r, c, n)
		},
	}
}

// ByteVec encodes Bytes as Vec<u8>
var ByteVec ICodec[Bytes] = funcCodec[Bytes]{
	enc: func(w *Writer, b Bytes) error {
		if err := w.WriteLength(len(b)); err != nil {
			return err
		}
		w.WriteBytes(b)
		return nil
	},
	dec: func(r *Reader) (Bytes, error) {
		n, err := r.ReadLength()
		if err != nil {
			return nil, errors.Wrap(err, "byte vec")
		}
		return r.ReadBytes(n)
	},
}

// FixedBytes encodes Bytes as [u8; n]
func FixedBytes(n int) ICodec[Bytes] {
	return funcCodec[Bytes]{
		enc: func(w *Writer, b Bytes) error {
			if len(b) != n {
				return errors.Errorf("fixed bytes expects %d bytes, got %d", n, len(b))
			}
			w.WriteBytes(b)
			return nil
		},
		dec: func(r *Reader) (Bytes, error) {
			return r.ReadBytes(n)
		},
	}
}

// --------------------------------------------------------------------------
// Maps and Sets
// --------------------------------------------------------------------------

// Map creates a codec for a map. Entries are written in ascending key order
// which makes the encoding of HashMap and BTreeMap identical.
func Map[K cmp.Ordered, V any](kc ICodec[K], vc ICodec[V]) ICodec[map[K]V] {
	return funcCodec[map[K]V]{
		enc: func(w *Writer, m map[K]V) error {
			if err := w.WriteLength(len(m)); err != nil {
				return err
			}
			for _, k := range sortedKeys(m) {
				if err := kc.Encode(w, k); err != nil {
					return errors.Wrapf(err, "map key %v", k)
				}
				if err := vc.Encode(w, m[k]); err != nil {
					return errors.Wrapf(err, "map value for key %v", k)
				}
			}
			return nil
		},
		dec: func(r *Reader) (map[K]V, error) {
			n, err := r.ReadLength()
			if err != nil {
				return nil, errors.Wrap(err, "map")
			}
			m := make(map[K]V, min(n, r.Remaining()))
			for i := 0; i < n; i++ {
				k, err := kc.Decode(r)
				if err != nil {
					return nil, errors.Wrapf(err, "map key %d", i)
				}
				v, err := vc.Decode(r)
				if err != nil {
					return nil, errors.Wrapf(err, "map value %d", i)
				}
				if _, dup := m[k]; dup {
					return nil, errors.Errorf("duplicate map key %v", k)
				}
				m[k] = v
			}
			return m, nil
		},
	}
}

// SetOf creates a codec for a Set. Elements are written in ascending order.
func SetOf[T cmp.Ordered](c ICodec[T]) ICodec[Set[T]] {
	return funcCodec[Set[T]]{
		enc: func(w *Writer, s Set[T]) error {
			if err := w.WriteLength(len(s)); err != nil {
				return err
			}
			return encodeElements(w, c, s.Sorted())
		},
		dec: func(r *Reader) (Set[T], error) {
			n, err := r.ReadLength()
			if err != nil {
				return nil, errors.Wrap(err, "set")
			}
			s := make(Set[T], min(n, r.Remaining()))
			for i := 0; i < n; i++ {
				x, err := c.Decode(r)
				if err != nil {
					return nil, errors.Wrapf(err, "set element %d", i)
				}
				if _, dup := s[x]; dup {
					return nil, errors.Errorf("duplicate set element %v", x)
				}
				s[x] = struct{}{}
			}
			return s, nil
		},
	}
}

// --------------------------------------------------------------------------
// Helper
// --------------------------------------------------------------------------

func encodeElements[T any](w *Writer, c ICodec[T], xs []T) error {
	for i, x := range xs {
		if err := c.Encode(w, x); err != nil {
			return errors.Wrapf(err, "element %d", i)
		}
	}
	return nil
}

// decodeElements reads n elements, the initial capacity is bounded by the
// remaining input
func decodeElements[T any](r *Reader, c ICodec[T], n int) ([]T, error) {
	xs := make([]T, 0, min(n, r.Remaining()))
	for i := 0; i < n; i++ {
		x, err := c.Decode(r)
		if err != nil {
			return nil, errors.Wrapf(err, "element %d", i)
		}
		xs = append(xs, x)
	}
	return xs, nil
}

func sortedKeys[K cmp.Ordered, V any](m map[K]V) []K {
	keys := make([]K, 0, len(m))
	for k := range m {
		keys = append(keys, k)
	}
	slices.Sort(keys)
	return keys
}
