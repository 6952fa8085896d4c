package fit

import (
	"encoding/binary"
	"io"
	"math"
	"unicode/utf8"
)

// byteReader is a cursored view over a byte slice with an endian flag
// that can be flipped per FIT definition message (architecture byte).
type byteReader struct {
	data []byte
	pos  int
	order binary.ByteOrder
}

func newByteReader(data []byte) *byteReader {
	return &byteReader{data: data, order: binary.LittleEndian}
}

func (r *byteReader) setByteOrder(order binary.ByteOrder) {
	r.order = order
}

func (r *byteReader) position() int { return r.pos }

func (r *byteReader) remaining() int { return len(r.data) - r.pos }

func (r *byteReader) readBytes(n int) ([]byte, error) {
	if n < 0 || r.remaining() < n {
		return nil, ErrUnexpectedEOF
	}
	b := r.data[r.pos : r.pos+n]
	r.pos += n
	return b, nil
}

func (r *byteReader) readU8() (uint8, error) {
	b, err := r.readBytes(1)
	if err != nil {
		return 0, err
	}
	return b[0], nil
}

func (r *byteReader) readI8() (int8, error) {
	v, err := r.readU8()
	return int8(v), err
}

func (r *byteReader) readU16() (uint16, error) {
	b, err := r.readBytes(2)
	if err != nil {
		return 0, err
	}
	return r.order.Uint16(b), nil
}

func (r *byteReader) readI16() (int16, error) {
	v, err := r.readU16()
	return int16(v), err
}

func (r *byteReader) readU32() (uint32, error) {
	b, err := r.readBytes(4)
	if err != nil {
		return 0, err
	}
	return r.order.Uint32(b), nil
}

func (r *byteReader) readI32() (int32, error) {
	v, err := r.readU32()
	return int32(v), err
}

func (r *byteReader) readU64() (uint64, error) {
	b, err := r.readBytes(8)
	if err != nil {
		return 0, err
	}
	return r.order.Uint64(b), nil
}

func (r *byteReader) readI64() (int64, error) {
	v, err := r.readU64()
	return int64(v), err
}

func (r *byteReader) readF32() (float32, error) {
	v, err := r.readU32()
	if err != nil {
		return 0, err
	}
	return math.Float32frombits(v), nil
}

func (r *byteReader) readF64() (float64, error) {
	v, err := r.readU64()
	if err != nil {
		return 0, err
	}
	return math.Float64frombits(v), nil
}

// readString reads n raw bytes, trims at the first NUL, and validates
// UTF-8. Invalid UTF-8 is reported via ok=false rather than an error: it
// degrades to DataValue invalid, never aborts the parse.
func (r *byteReader) readString(n int) (s string, ok bool, err error) {
	b, err := r.readBytes(n)
	if err != nil {
		return "", false, err
	}
	if idx := indexByte(b, 0x00); idx >= 0 {
		b = b[:idx]
	}
	if len(b) == 0 {
		return "", false, nil
	}
	if !utf8.Valid(b) {
		return "", false, nil
	}
	return string(b), true, nil
}

func indexByte(b []byte, c byte) int {
	for i, v := range b {
		if v == c {
			return i
		}
	}
	return -1
}

var _ io.ByteReader = (*byteReader)(nil)

// ReadByte implements io.ByteReader so byteReader can be used wherever a
// single-byte cursor is expected (e.g. CRC scanning helpers).
func (r *byteReader) ReadByte() (byte, error) {
	return r.readU8()
}
