package format_v6

import (
	"encoding/binary"
	"fmt"

	saveerrors "github.com/danielrab/save-monger/pkg/save/errors"
)

// Point is a grid coordinate or displacement.
type Point struct {
	X int16 `json:"x" yaml:"x" cbor:"x" msgpack:"x"`
	Y int16 `json:"y" yaml:"y" cbor:"y" msgpack:"y"`
}

// Add returns p translated by q.
func (p Point) Add(q Point) Point {
	return Point{X: p.X + q.X, Y: p.Y + q.Y}
}

// Scale returns p with both coordinates multiplied by n.
func (p Point) Scale(n int16) Point {
	return Point{X: p.X * n, Y: p.Y * n}
}

func (p Point) String() string {
	return fmt.Sprintf("(%d,%d)", p.X, p.Y)
}

// Cursor reads a decompressed payload front to back. Every read is
// bounds-checked; a Cursor is owned by a single decode call.
type Cursor struct {
	data []byte
	pos  int
}

// NewCursor creates a cursor positioned at the start of data.
func NewCursor(data []byte) *Cursor {
	return &Cursor{data: data}
}

// Offset returns the number of bytes consumed so far.
func (c *Cursor) Offset() int { return c.pos }

// Len returns the total length of the underlying buffer.
func (c *Cursor) Len() int { return len(c.data) }

// Remaining returns bytes left to read.
func (c *Cursor) Remaining() int { return len(c.data) - c.pos }

// Read returns the next n bytes and advances past them. The returned
// slice aliases the buffer; callers that keep it must copy.
func (c *Cursor) Read(n int) ([]byte, error) {
	if n < 0 || n > c.Remaining() {
		return nil, fmt.Errorf("%w: need %d bytes at offset %d, %d left",
			saveerrors.ErrTruncatedInput, n, c.pos, c.Remaining())
	}
	b := c.data[c.pos : c.pos+n]
	c.pos += n
	return b, nil
}

// ReadU8 reads a uint8.
func (c *Cursor) ReadU8() (uint8, error) {
	b, err := c.Read(1)
	if err != nil {
		return 0, err
	}
	return b[0], nil
}

// ReadU16 reads a little-endian uint16.
func (c *Cursor) ReadU16() (uint16, error) {
	b, err := c.Read(2)
	if err != nil {
		return 0, err
	}
	return binary.LittleEndian.Uint16(b), nil
}

// ReadU32 reads a little-endian uint32.
func (c *Cursor) ReadU32() (uint32, error) {
	b, err := c.Read(4)
	if err != nil {
		return 0, err
	}
	return binary.LittleEndian.Uint32(b), nil
}

// ReadU64 reads a little-endian uint64.
func (c *Cursor) ReadU64() (uint64, error) {
	b, err := c.Read(8)
	if err != nil {
		return 0, err
	}
	return binary.LittleEndian.Uint64(b), nil
}

func (c *Cursor) ReadI8() (int8, error) {
	v, err := c.ReadU8()
	return int8(v), err
}

func (c *Cursor) ReadI16() (int16, error) {
	v, err := c.ReadU16()
	return int16(v), err
}

func (c *Cursor) ReadI32() (int32, error) {
	v, err := c.ReadU32()
	return int32(v), err
}

func (c *Cursor) ReadI64() (int64, error) {
	v, err := c.ReadU64()
	return int64(v), err
}

// ReadBool reads one byte; any non-zero value is true.
func (c *Cursor) ReadBool() (bool, error) {
	v, err := c.ReadU8()
	return v != 0, err
}

// ReadPoint reads x then y as little-endian int16.
func (c *Cursor) ReadPoint() (Point, error) {
	b, err := c.Read(pointSize)
	if err != nil {
		return Point{}, err
	}
	return Point{
		X: int16(binary.LittleEndian.Uint16(b[0:2])),
		Y: int16(binary.LittleEndian.Uint16(b[2:4])),
	}, nil
}
