package borsh

import (
	"encoding/binary"
	"math"

	"github.com/pkg/errors"
	"github.com/valyala/bytebufferpool"
)

// Writer accumulates the encoded bytes of a value. Its buffer is taken from a
// pool and returned when the top level Serialize call finishes.
type Writer struct {
	buf *bytebufferpool.ByteBuffer
}

func newWriter() *Writer {
	return &Writer{buf: bytebufferpool.Get()}
}

// release returns the buffer to the pool, the writer must not be used afterwards
func (w *Writer) release() {
	bytebufferpool.Put(w.buf)
	w.buf = nil
}

// Len returns the number of bytes written so far
func (w *Writer) Len() int {
	return w.buf.Len()
}

// Bytes returns a copy of the written bytes (never nil)
func (w *Writer) Bytes() []byte {
	out := make([]byte, w.buf.Len())
	copy(out, w.buf.B)
	return out
}

func (w *Writer) WriteU8(v uint8) {
	_ = w.buf.WriteByte(v)
}

func (w *Writer) WriteU16(v uint16) {
	var b [2]byte
	binary.LittleEndian.PutUint16(b[:], v)
	_, _ = w.buf.Write(b[:])
}

func (w *Writer) WriteU32(v uint32) {
	var b [4]byte
	binary.LittleEndian.PutUint32(b[:], v)
	_, _ = w.buf.Write(b[:])
}

func (w *Writer) WriteU64(v uint64) {
	var b [8]byte
	binary.LittleEndian.PutUint64(b[:], v)
	_, _ = w.buf.Write(b[:])
}

// WriteBytes writes raw bytes without a length prefix
func (w *Writer) WriteBytes(b []byte) {
	_, _ = w.buf.Write(b)
}

// WriteLength writes a u32 length prefix
func (w *Writer) WriteLength(n int) error {
	if n < 0 || uint64(n) > math.MaxUint32 {
		return errors.Errorf("length %d does not fit into u32", n)
	}
	w.WriteU32(uint32(n))
	return nil
}
