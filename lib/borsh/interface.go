package borsh

import "github.com/pkg/errors"

// ICodec is the interface for all Borsh codecs
type ICodec[T any] interface {
	// Encode writes the Borsh encoding of v to w
	// It returns an error if v cannot be represented (e.g. out of range)
	Encode(w *Writer, v T) error
	// Decode reads one value from r
	// It returns an error if the data is truncated or malformed
	Decode(r *Reader) (T, error)
}

// Serialize encodes v with the given codec and returns a copy of the encoded bytes
func Serialize[T any](c ICodec[T], v T) ([]byte, error) {
	w := newWriter()
	defer w.release()

	if err := c.Encode(w, v); err != nil {
		return nil, err
	}
	return w.Bytes(), nil
}

// Deserialize decodes a single value from data. All bytes must be consumed.
func Deserialize[T any](c ICodec[T], data []byte) (T, error) {
	r := NewReader(data)
	v, err := c.Decode(r)
	if err != nil {
		var zero T
		return zero, err
	}
	if r.Remaining() != 0 {
		var zero T
		return zero, errors.Errorf("%d trailing bytes after value", r.Remaining())
	}
	return v, nil
}

// --------------------------------------------------------------------------
// Function based codec
// --------------------------------------------------------------------------

// funcCodec implements ICodec from a pair of functions
type funcCodec[T any] struct {
	enc func(w *Writer, v T) error
	dec func(r *Reader) (T, error)
}

func (c funcCodec[T]) Encode(w *Writer, v T) error {
	return c.enc(w, v)
}

func (c funcCodec[T]) Decode(r *Reader) (T, error) {
	return c.dec(r)
}
