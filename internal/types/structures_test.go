package types_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	. "github.com/yamaru/ntfs-forensics/internal/types"
	"github.com/yamaru/ntfs-forensics/test/fixtures"
)

func TestDecodeRSTRHeader(t *testing.T) {
	page := fixtures.RSTRPage(0xABCDEF)

	h, err := DecodeRSTRHeader(page)
	require.NoError(t, err)
	assert.True(t, h.IsValid())
	assert.Equal(t, uint64(0xABCDEF), h.CurrentLSN)
}

func TestDecodeRSTRHeader_InvalidMagic(t *testing.T) {
	page := fixtures.EmptyPage()
	h, err := DecodeRSTRHeader(page)
	require.NoError(t, err)
	assert.False(t, h.IsValid())
}

func TestDecodeRSTRHeader_ShortRead(t *testing.T) {
	_, err := DecodeRSTRHeader(make([]byte, 4))
	assert.ErrorIs(t, err, ErrShortRead)
}

func TestDecodeRCRDHeader(t *testing.T) {
	record := fixtures.LogRecordBytes(fixtures.DefaultLogRecordSpec(), []byte{1, 2, 3, 4}, nil)
	page := fixtures.RCRDPage(0x200, record)

	h, err := DecodeRCRDHeader(page)
	require.NoError(t, err)
	assert.True(t, h.IsValid())
	assert.Equal(t, uint64(0x200), h.LastLSN)
	assert.EqualValues(t, 0x30+len(record), h.NextRecordOffset)
}

func TestDecodeLogRecordHeader_RoundTrip(t *testing.T) {
	spec := fixtures.DefaultLogRecordSpec()
	spec.ThisLSN = 0x9999
	spec.RedoOp = UpdateResidentValue
	record := fixtures.LogRecordBytes(spec, fixtures.QuadPayload(1, 2, 3, 4), fixtures.QuadPayload(5, 6, 7, 8))

	h, err := DecodeLogRecordHeader(record)
	require.NoError(t, err)
	assert.Equal(t, uint64(0x9999), h.ThisLSN)
	assert.Equal(t, UpdateResidentValue, h.RedoOp)
	assert.True(t, h.IsZeroAlignment())
	assert.EqualValues(t, 0x28, h.RedoOffset)
	assert.EqualValues(t, 32, h.RedoLength)
	assert.EqualValues(t, 32, h.UndoLength)
}

func TestLogRecordHeader_IsZeroAlignment(t *testing.T) {
	h := LogRecordHeader{AlignmentOrReserved1: [6]byte{0, 0, 0, 0, 0, 0}}
	assert.True(t, h.IsZeroAlignment())

	h.AlignmentOrReserved1[3] = 1
	assert.False(t, h.IsZeroAlignment())
}

func TestMFTEntryHeader_InUse(t *testing.T) {
	h := MFTEntryHeader{Signature: MFTSignature, Flags: MFTInUseFlag}
	assert.True(t, h.InUse())

	h.Flags = 0
	assert.False(t, h.InUse())

	h = MFTEntryHeader{Signature: 0, Flags: MFTInUseFlag}
	assert.False(t, h.InUse())
}

func TestDecodeSIFNTime(t *testing.T) {
	payload := fixtures.QuadPayload(
		fixtures.FILETIME(1000),
		fixtures.FILETIME(2000),
		fixtures.FILETIME(3000),
		fixtures.FILETIME(4000),
	)

	tm, err := DecodeSIFNTime(payload)
	require.NoError(t, err)
	assert.Equal(t, fixtures.FILETIME(1000), tm.CreationTime)
	assert.Equal(t, fixtures.FILETIME(2000), tm.MFTModifiedTime)
	assert.Equal(t, fixtures.FILETIME(3000), tm.ModifiedTime)
	assert.Equal(t, fixtures.FILETIME(4000), tm.AccessTime)
}
