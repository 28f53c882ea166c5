package bindecode

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestCursor_SequentialReads(t *testing.T) {
	data := []byte{
		0x01,
		0x02, 0x00,
		0x03, 0x00, 0x00, 0x00,
		0x04, 0x00, 0x00, 0x00, 0x00, 0x00, 0x00, 0x00,
	}
	c := NewCursor(data)

	b, err := c.ReadUint8()
	require.NoError(t, err)
	assert.Equal(t, uint8(0x01), b)

	u16, err := c.ReadUint16()
	require.NoError(t, err)
	assert.Equal(t, uint16(0x02), u16)

	u32, err := c.ReadUint32()
	require.NoError(t, err)
	assert.Equal(t, uint32(0x03), u32)

	u64, err := c.ReadUint64()
	require.NoError(t, err)
	assert.Equal(t, uint64(0x04), u64)

	assert.Equal(t, len(data), c.Position())
	assert.Equal(t, 0, c.Remaining())
}

func TestCursor_ReadBytes(t *testing.T) {
	c := NewCursor([]byte{0xAA, 0xBB, 0xCC, 0xDD})
	b, err := c.ReadBytes(3)
	require.NoError(t, err)
	assert.Equal(t, []byte{0xAA, 0xBB, 0xCC}, b)
	assert.Equal(t, 1, c.Remaining())
}

func TestCursor_Skip(t *testing.T) {
	c := NewCursor([]byte{0, 0, 0, 0, 0xFF})
	require.NoError(t, c.Skip(4))
	v, err := c.ReadUint8()
	require.NoError(t, err)
	assert.Equal(t, uint8(0xFF), v)
}

func TestCursor_ShortRead(t *testing.T) {
	tests := []struct {
		name string
		fn   func(c *Cursor) error
	}{
		{"uint8", func(c *Cursor) error { _, err := c.ReadUint8(); return err }},
		{"uint16", func(c *Cursor) error { _, err := c.ReadUint16(); return err }},
		{"uint32", func(c *Cursor) error { _, err := c.ReadUint32(); return err }},
		{"uint64", func(c *Cursor) error { _, err := c.ReadUint64(); return err }},
		{"bytes", func(c *Cursor) error { _, err := c.ReadBytes(1); return err }},
		{"skip", func(c *Cursor) error { return c.Skip(1) }},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			c := NewCursor(nil)
			assert.ErrorIs(t, tt.fn(c), ErrShortRead)
		})
	}
}

func TestCursor_PartialShortRead(t *testing.T) {
	// Three bytes available is not enough for a uint64.
	c := NewCursor([]byte{1, 2, 3})
	_, err := c.ReadUint64()
	assert.ErrorIs(t, err, ErrShortRead)
	// The cursor must not have advanced on a failed read.
	assert.Equal(t, 0, c.Position())
}
