package borsh

import (
	"math/big"
	"unicode/utf8"

	"github.com/pkg/errors"
)

// --------------------------------------------------------------------------
// Unsigned integers
// --------------------------------------------------------------------------

var (
	// U8 encodes a uint8 as one byte
	U8 ICodec[uint8] = funcCodec[uint8]{
		enc: func(w *Writer, v uint8) error { w.WriteU8(v); return nil },
		dec: (*Reader).ReadU8,
	}
	// U16 encodes a uint16 as two little-endian bytes
	U16 ICodec[uint16] = funcCodec[uint16]{
		enc: func(w *Writer, v uint16) error { w.WriteU16(v); return nil },
		dec: (*Reader).ReadU16,
	}
	// U32 encodes a uint32 as four little-endian bytes
	U32 ICodec[uint32] = funcCodec[uint32]{
		enc: func(w *Writer, v uint32) error { w.WriteU32(v); return nil },
		dec: (*Reader).ReadU32,
	}
	// U64 encodes a uint64 as eight little-endian bytes
	U64 ICodec[uint64] = funcCodec[uint64]{
		enc: func(w *Writer, v uint64) error { w.WriteU64(v); return nil },
		dec: (*Reader).ReadU64,
	}
)

// --------------------------------------------------------------------------
// Signed integers (two's complement)
// --------------------------------------------------------------------------

var (
	I8 ICodec[int8] = funcCodec[int8]{
		enc: func(w *Writer, v int8) error { w.WriteU8(uint8(v)); return nil },
		dec: func(r *Reader) (int8, error) {
			v, err := r.ReadU8()
			return int8(v), err
		},
	}
	I16 ICodec[int16] = funcCodec[int16]{
		enc: func(w *Writer, v int16) error { w.WriteU16(uint16(v)); return nil },
		dec: func(r *Reader) (int16, error) {
			v, err := r.ReadU16()
			return int16(v), err
		},
	}
	I32 ICodec[int32] = funcCodec[int32]{
		enc: func(w *Writer, v int32) error { w.WriteU32(uint32(v)); return nil },
		dec: func(r *Reader) (int32, error) {
			v, err := r.ReadU32()
			return int32(v), err
		},
	}
	I64 ICodec[int64] = funcCodec[int64]{
		enc: func(w *Writer, v int64) error { w.WriteU64(uint64(v)); return nil },
		dec: func(r *Reader) (int64, error) {
			v, err := r.ReadU64()
			return int64(v), err
		},
	}
)

// --------------------------------------------------------------------------
// Bool and String
// --------------------------------------------------------------------------

var (
	// Bool encodes false as 0 and true as 1, any other byte fails to decode
	Bool ICodec[bool] = funcCodec[bool]{
		enc: func(w *Writer, v bool) error {
			if v {
				w.WriteU8(1)
			} else {
				w.WriteU8(0)
			}
			return nil
		},
		dec: func(r *Reader) (bool, error) {
			v, err := r.ReadU8()
			if err != nil {
				return false, err
			}
			switch v {
			case 0:
				return false, nil
			case 1:
				return true, nil
			default:
				return false, errors.Errorf("invalid bool byte %d", v)
			}
		},
	}

	// String encodes a u32 byte length followed by the UTF-8 bytes
	String ICodec[string] = funcCodec[string]{
		enc: func(w *Writer, v string) error {
			if !utf8.ValidString(v) {
				return errors.Errorf("string %q is not valid UTF-8", v)
			}
			if err := w.WriteLength(len(v)); err != nil {
				return err
			}
			w.WriteBytes([]byte(v))
			return nil
		},
		dec: func(r *Reader) (string, error) {
			n, err := r.ReadLength()
			if err != nil {
				return "", errors.Wrap(err, "string")
			}
			b, err := r.next(n, "string data")
			if err != nil {
				return "", err
			}
			if !utf8.Valid(b) {
				return "", errors.New("string data is not valid UTF-8")
			}
			return string(b), nil
		},
	}
)

// --------------------------------------------------------------------------
// 128 bit integers
// --------------------------------------------------------------------------

const u128Size = 16

var maxU128 = new(big.Int).Sub(new(big.Int).Lsh(big.NewInt(1), 128), big.NewInt(1))

// MaxU128 returns 2^128-1
func MaxU128() *big.Int {
	return new(big.Int).Set(maxU128)
}

// U128 encodes a non-negative big.Int below 2^128 as 16 little-endian bytes
var U128 ICodec[*big.Int] = funcCodec[*big.Int]{
	enc: func(w *Writer, v *big.Int) error {
		if v == nil {
			return errors.New("u128 value is nil")
		}
		if v.Sign() < 0 || v.Cmp(maxU128) > 0 {
			return errors.Errorf("u128 value %s out of range", v.String())
		}
		var b [u128Size]byte
		v.FillBytes(b[:])
		reverse(b[:])
		w.WriteBytes(b[:])
		return nil
	},
	dec: func(r *Reader) (*big.Int, error) {
		b, err := r.ReadBytes(u128Size)
		if err != nil {
			return nil, errors.Wrap(err, "u128")
		}
		reverse(b)
		return new(big.Int).SetBytes(b), nil
	},
}

// reverse converts between big-endian and little-endian in place
func reverse(b []byte) {
	for i, j := 0, len(b)-1; i < j; i, j = i+1, j-1 {
		b[i], b[j] = b[j], b[i]
	}
}
