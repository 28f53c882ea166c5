// Package bindecode provides fixed-layout little-endian struct
// deserialization from in-memory byte slices.
package bindecode

import (
	"encoding/binary"
	"errors"
)

// ErrShortRead is returned when the backing slice has fewer bytes left
// than the field or structure being decoded requires.
var ErrShortRead = errors.New("bindecode: short read")

// Cursor reads typed little-endian fields out of a byte slice in sequence,
// tracking position. It never reslices its backing array.
type Cursor struct {
	data []byte
	pos  int
}

// NewCursor returns a Cursor over data starting at offset 0.
func NewCursor(data []byte) *Cursor {
	return &Cursor{data: data}
}

// Position reports how many bytes have been consumed so far.
func (c *Cursor) Position() int {
	return c.pos
}

// Remaining reports how many unread bytes are left.
func (c *Cursor) Remaining() int {
	return len(c.data) - c.pos
}

func (c *Cursor) require(n int) error {
	if c.Remaining() < n {
		return ErrShortRead
	}
	return nil
}

// Skip advances the cursor n bytes without interpreting them.
func (c *Cursor) Skip(n int) error {
	if err := c.require(n); err != nil {
		return err
	}
	c.pos += n
	return nil
}

// ReadBytes returns the next n bytes verbatim.
func (c *Cursor) ReadBytes(n int) ([]byte, error) {
	if err := c.require(n); err != nil {
		return nil, err
	}
	b := c.data[c.pos : c.pos+n]
	c.pos += n
	return b, nil
}

// ReadUint8 reads a single byte.
func (c *Cursor) ReadUint8() (uint8, error) {
	if err := c.require(1); err != nil {
		return 0, err
	}
	v := c.data[c.pos]
	c.pos++
	return v, nil
}

// ReadUint16 reads a 16-bit little-endian integer.
func (c *Cursor) ReadUint16() (uint16, error) {
	if err := c.require(2); err != nil {
		return 0, err
	}
	v := binary.LittleEndian.Uint16(c.data[c.pos : c.pos+2])
	c.pos += 2
	return v, nil
}

// ReadUint32 reads a 32-bit little-endian integer.
func (c *Cursor) ReadUint32() (uint32, error) {
	if err := c.require(4); err != nil {
		return 0, err
	}
	v := binary.LittleEndian.Uint32(c.data[c.pos : c.pos+4])
	c.pos += 4
	return v, nil
}

// ReadUint64 reads a 64-bit little-endian integer.
func (c *Cursor) ReadUint64() (uint64, error) {
	if err := c.require(8); err != nil {
		return 0, err
	}
	v := binary.LittleEndian.Uint64(c.data[c.pos : c.pos+8])
	c.pos += 8
	return v, nil
}
