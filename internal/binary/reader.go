// Package binary provides low-level binary I/O operations for GWY file
// parsing and serialization. All multi-byte values are little-endian and
// doubles are IEEE 754, as required by the GWY wire format.
package binary

import (
	"bytes"
	"encoding/binary"
	"fmt"
	"math"
	"unsafe"
)

// nativeLittleEndian reports whether the host stores integers little-endian.
// When it does, bulk double arrays are transferred with a single memory copy
// instead of an element-wise decode.
var nativeLittleEndian = func() bool {
	var x uint16 = 1
	return *(*byte)(unsafe.Pointer(&x)) == 1
}()

// Reader provides methods for reading GWY binary data from an in-memory
// buffer. Reads are bounds-checked; a failed read reports the structure
// that could not be satisfied.
type Reader struct {
	buf []byte
	pos int
}

// NewReader creates a reader over the given buffer.
func NewReader(buf []byte) *Reader {
	return &Reader{buf: buf}
}

// Pos returns the current read position.
func (r *Reader) Pos() int {
	return r.pos
}

// Remaining returns the number of unread bytes.
func (r *Reader) Remaining() int {
	return len(r.buf) - r.pos
}

// ReadBytes reads exactly n bytes from the current position.
func (r *Reader) ReadBytes(n int) ([]byte, error) {
	if n < 0 {
		return nil, fmt.Errorf("negative read of %d bytes at offset %d", n, r.pos)
	}
	if r.pos+n > len(r.buf) {
		return nil, fmt.Errorf("truncated data: need %d bytes at offset %d, have %d", n, r.pos, len(r.buf)-r.pos)
	}
	out := r.buf[r.pos : r.pos+n]
	r.pos += n
	return out, nil
}

// Sub returns a new reader over the next n bytes and advances past them.
// Used for sized object payloads.
func (r *Reader) Sub(n int) (*Reader, error) {
	buf, err := r.ReadBytes(n)
	if err != nil {
		return nil, err
	}
	return NewReader(buf), nil
}

// ReadUint8 reads an unsigned 8-bit integer.
func (r *Reader) ReadUint8() (uint8, error) {
	buf, err := r.ReadBytes(1)
	if err != nil {
		return 0, err
	}
	return buf[0], nil
}

// ReadUint32 reads an unsigned 32-bit integer.
func (r *Reader) ReadUint32() (uint32, error) {
	buf, err := r.ReadBytes(4)
	if err != nil {
		return 0, err
	}
	return binary.LittleEndian.Uint32(buf), nil
}

// ReadInt32 reads a signed 32-bit integer.
func (r *Reader) ReadInt32() (int32, error) {
	v, err := r.ReadUint32()
	return int32(v), err
}

// ReadInt64 reads a signed 64-bit integer.
func (r *Reader) ReadInt64() (int64, error) {
	buf, err := r.ReadBytes(8)
	if err != nil {
		return 0, err
	}
	return int64(binary.LittleEndian.Uint64(buf)), nil
}

// ReadBool reads a single byte; any nonzero value is true.
func (r *Reader) ReadBool() (bool, error) {
	v, err := r.ReadUint8()
	return v != 0, err
}

// ReadDouble reads one IEEE 754 double.
func (r *Reader) ReadDouble() (float64, error) {
	buf, err := r.ReadBytes(8)
	if err != nil {
		return 0, err
	}
	return math.Float64frombits(binary.LittleEndian.Uint64(buf)), nil
}

// ReadDoubles reads n packed doubles. On little-endian hosts the transfer is
// a single contiguous copy; otherwise each element is decoded individually.
func (r *Reader) ReadDoubles(n int) ([]float64, error) {
	buf, err := r.ReadBytes(n * 8)
	if err != nil {
		return nil, err
	}
	out := make([]float64, n)
	if n == 0 {
		return out, nil
	}
	if nativeLittleEndian {
		copy(unsafe.Slice((*byte)(unsafe.Pointer(unsafe.SliceData(out))), n*8), buf)
		return out, nil
	}
	for i := range out {
		out[i] = math.Float64frombits(binary.LittleEndian.Uint64(buf[i*8:]))
	}
	return out, nil
}

// ReadCString reads a NUL-terminated UTF-8 string and consumes the NUL.
func (r *Reader) ReadCString() (string, error) {
	i := bytes.IndexByte(r.buf[r.pos:], 0)
	if i < 0 {
		return "", fmt.Errorf("unterminated string at offset %d", r.pos)
	}
	s := string(r.buf[r.pos : r.pos+i])
	r.pos += i + 1
	return s, nil
}
