package borsh

import (
	"fmt"
	"math"

	"github.com/pkg/errors"
)

// --------------------------------------------------------------------------
// Scalar enums
// --------------------------------------------------------------------------

// ScalarEnum creates a codec for an enum without data. The encoded byte is the
// position of the value in variants, not the numeric value of the constant, so
// enums with explicit discriminants encode the same as plain ones.
func ScalarEnum[T comparable](variants ...T) ICodec[T] {
	if len(variants) == 0 || len(variants) > math.MaxUint8+1 {
		panic(fmt.Sprintf("scalar enum needs between 1 and 256 variants, got %d", len(variants)))
	}
	return funcCodec[T]{
		enc: func(w *Writer, v T) error {
			for i, variant := range variants {
				if variant == v {
					w.WriteU8(uint8(i))
					return nil
				}
			}
			return errors.Errorf("%v is not a variant of %T", v, v)
		},
		dec: func(r *Reader) (T, error) {
			idx, err := r.ReadU8()
			if err != nil {
				var zero T
				return zero, errors.Wrap(err, "enum variant")
			}
			if int(idx) >= len(variants) {
				var zero T
				return zero, errors.Errorf("invalid enum variant %d (have %d)", idx, len(variants))
			}
			return variants[idx], nil
		},
	}
}

// --------------------------------------------------------------------------
// Data enums
// --------------------------------------------------------------------------

// Variant is one variant of a data enum whose values share the interface type T
type Variant[T any] interface {
	matches(v T) bool
	encodeVariant(w *Writer, v T) error
	decodeVariant(r *Reader) (T, error)
}

// VariantOf creates a data enum variant for the concrete type V, encoded by c.
// V must implement T.
func VariantOf[T, V any](c ICodec[V]) Variant[T] {
	return variant[T, V]{codec: c}
}

type variant[T, V any] struct {
	codec ICodec[V]
}

func (vr variant[T, V]) matches(v T) bool {
	_, ok := any(v).(V)
	return ok
}

func (vr variant[T, V]) encodeVariant(w *Writer, v T) error {
	return vr.codec.Encode(w, any(v).(V))
}

func (vr variant[T, V]) decodeVariant(r *Reader) (T, error) {
	x, err := vr.codec.Decode(r)
	if err != nil {
		var zero T
		return zero, err
	}
	t, ok := any(x).(T)
	if !ok {
		var zero T
		return zero, errors.Errorf("%T does not implement the enum type", x)
	}
	return t, nil
}

// DataEnum creates a codec for an enum whose variants carry data. The encoded
// variant index is the position of the matching variant.
//
// Usage:
//
//	borsh.DataEnum[Simple](
//		borsh.VariantOf[Simple](firstCodec),
//		borsh.VariantOf[Simple](secondCodec),
//	)
func DataEnum[T any](variants ...Variant[T]) ICodec[T] {
	if len(variants) == 0 || len(variants) > math.MaxUint8+1 {
		panic(fmt.Sprintf("data enum needs between 1 and 256 variants, got %d", len(variants)))
	}
	return funcCodec[T]{
		enc: func(w *Writer, v T) error {
			for i, vr := range variants {
				if vr.matches(v) {
					w.WriteU8(uint8(i))
					return errors.Wrapf(vr.encodeVariant(w, v), "variant %d", i)
				}
			}
			return errors.Errorf("%T is not a known variant", v)
		},
		dec: func(r *Reader) (T, error) {
			idx, err := r.ReadU8()
			if err != nil {
				var zero T
				return zero, errors.Wrap(err, "enum variant")
			}
			if int(idx) >= len(variants) {
				var zero T
				return zero, errors.Errorf("invalid enum variant %d (have %d)", idx, len(variants))
			}
			v, err := variants[idx].decodeVariant(r)
			return v, errors.Wrapf(err, "variant %d", idx)
		},
	}
}
