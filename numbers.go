package angstrom

import (
	"encoding/binary"
	"math"
)

// Endian binds fixed-width numeric parsers for one byte order. Each reader
// takes the width and decodes it; there is no alignment requirement.
type Endian struct {
	order binary.ByteOrder
}

var (
	// BE reads big-endian values.
	BE = Endian{binary.BigEndian}
	// LE reads little-endian values.
	LE = Endian{binary.LittleEndian}
	// Native reads values in the host byte order.
	Native = Endian{binary.NativeEndian}
)

// Uint8 reads one byte.
func (e Endian) Uint8() Parser[uint8] {
	return Map(Take(1), func(b []byte) uint8 { return b[0] })
}

// Int8 reads one byte as a signed integer.
func (e Endian) Int8() Parser[int8] {
	return Map(Take(1), func(b []byte) int8 { return int8(b[0]) })
}

// Uint16 reads two bytes.
func (e Endian) Uint16() Parser[uint16] {
	return Map(Take(2), e.order.Uint16)
}

// Int16 reads two bytes as a signed integer.
func (e Endian) Int16() Parser[int16] {
	return Map(Take(2), func(b []byte) int16 { return int16(e.order.Uint16(b)) })
}

// Uint32 reads four bytes.
func (e Endian) Uint32() Parser[uint32] {
	return Map(Take(4), e.order.Uint32)
}

// Int32 reads four bytes as a signed integer.
func (e Endian) Int32() Parser[int32] {
	return Map(Take(4), func(b []byte) int32 { return int32(e.order.Uint32(b)) })
}

// Uint64 reads eight bytes.
func (e Endian) Uint64() Parser[uint64] {
	return Map(Take(8), e.order.Uint64)
}

// Int64 reads eight bytes as a signed integer.
func (e Endian) Int64() Parser[int64] {
	return Map(Take(8), func(b []byte) int64 { return int64(e.order.Uint64(b)) })
}

// Float32 reads an IEEE 754 single-precision float.
func (e Endian) Float32() Parser[float32] {
	return Map(Take(4), func(b []byte) float32 { return math.Float32frombits(e.order.Uint32(b)) })
}

// Float64 reads an IEEE 754 double-precision float.
func (e Endian) Float64() Parser[float64] {
	return Map(Take(8), func(b []byte) float64 { return math.Float64frombits(e.order.Uint64(b)) })
}
