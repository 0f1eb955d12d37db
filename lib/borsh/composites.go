package borsh

import "github.com/pkg/errors"

// --------------------------------------------------------------------------
// Option
// --------------------------------------------------------------------------

// OptionOf creates a codec for an Option: 0 for None, 1 followed by the value for Some
func OptionOf[T any](c ICodec[T]) ICodec[Option[T]] {
	return funcCodec[Option[T]]{
		enc: func(w *Writer, o Option[T]) error {
			v, ok := o.Get()
			if !ok {
				w.WriteU8(0)
				return nil
			}
			w.WriteU8(1)
			return c.Encode(w, v)
		},
		dec: func(r *Reader) (Option[T], error) {
			tag, err := r.ReadU8()
			if err != nil {
				return None[T](), errors.Wrap(err, "option tag")
			}
			switch tag {
			case 0:
				return None[T](), nil
			case 1:
				v, err := c.Decode(r)
				if err != nil {
					return None[T](), errors.Wrap(err, "option value")
				}
				return Some(v), nil
			default:
				return None[T](), errors.Errorf("invalid option tag %d", tag)
			}
		},
	}
}

// --------------------------------------------------------------------------
// Tuples
// --------------------------------------------------------------------------

// Tuple2Of creates a codec for a pair
func Tuple2Of[A, B any](ca ICodec[A], cb ICodec[B]) ICodec[Tuple2[A, B]] {
	return funcCodec[Tuple2[A, B]]{
		enc: func(w *Writer, t Tuple2[A, B]) error {
			if err := ca.Encode(w, t.First); err != nil {
				return errors.Wrap(err, "tuple item 0")
			}
			if err := cb.Encode(w, t.Second); err != nil {
				return errors.Wrap(err, "tuple item 1")
			}
			return nil
		},
		dec: func(r *Reader) (Tuple2[A, B], error) {
			var t Tuple2[A, B]
			var err error
			if t.First, err = ca.Decode(r); err != nil {
				return t, errors.Wrap(err, "tuple item 0")
			}
			if t.Second, err = cb.Decode(r); err != nil {
				return t, errors.Wrap(err, "tuple item 1")
			}
			return t, nil
		},
	}
}

// Tuple3Of creates a codec for a triple
func Tuple3Of[A, B, C any](ca ICodec[A], cb ICodec[B], cc ICodec[C]) ICodec[Tuple3[A, B, C]] {
	return funcCodec[Tuple3[A, B, C]]{
		enc: func(w *Writer, t Tuple3[A, B, C]) error {
			if err := ca.Encode(w, t.First); err != nil {
				return errors.Wrap(err, "tuple item 0")
			}
			if err := cb.Encode(w, t.Second); err != nil {
				return errors.Wrap(err, "tuple item 1")
			}
			if err := cc.Encode(w, t.Third); err != nil {
				return errors.Wrap(err, "tuple item 2")
			}
			return nil
		},
		dec: func(r *Reader) (Tuple3[A, B, C], error) {
			var t Tuple3[A, B, C]
			var err error
			if t.First, err = ca.Decode(r); err != nil {
				return t, errors.Wrap(err, "tuple item 0")
			}
			if t.Second, err = cb.Decode(r); err != nil {
				return t, errors.Wrap(err, "tuple item 1")
			}
			if t.Third, err = cc.Decode(r); err != nil {
				return t, errors.Wrap(err, "tuple item 2")
			}
			return t, nil
		},
	}
}

// --------------------------------------------------------------------------
// Structs
// --------------------------------------------------------------------------

// Field describes one field of a struct of type T
type Field[T any] interface {
	Name() string
	encodeField(w *Writer, v *T) error
	decodeField(r *Reader, v *T) error
}

// FieldOf creates a struct field. ref must return a pointer to the field inside the struct.
//
// Usage:
//
//	borsh.FieldOf("first_field", borsh.U32, func(s *First) *uint32 { return &s.FirstField })
func FieldOf[T, F any](name string, c ICodec[F], ref func(*T) *F) Field[T] {
	return &field[T, F]{name: name, codec: c, ref: ref}
}

type field[T, F any] struct {
	name  string
	codec ICodec[F]
	ref   func(*T) *F
}

func (f *field[T, F]) Name() string {
	return f.name
}

func (f *field[T, F]) encodeField(w *Writer, v *T) error {
	return f.codec.Encode(w, *f.ref(v))
}

func (f *field[T, F]) decodeField(r *Reader, v *T) error {
	x, err := f.codec.Decode(r)
	if err != nil {
		return err
	}
	*f.ref(v) = x
	return nil
}

// Struct creates a codec that writes the given fields in order
func Struct[T any](fields ...Field[T]) ICodec[T] {
	return funcCodec[T]{
		enc: func(w *Writer, v T) error {
			for _, f := range fields {
				if err := f.encodeField(w, &v); err != nil {
					return errors.Wrapf(err, "field %s", f.Name())
				}
			}
			return nil
		},
		dec: func(r *Reader) (T, error) {
			var v T
			for _, f := range fields {
				if err := f.decodeField(r, &v); err != nil {
					return v, errors.Wrapf(err, "field %s", f.Name())
				}
			}
			return v, nil
		},
	}
}
