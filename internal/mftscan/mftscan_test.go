package mftscan

import (
	"encoding/binary"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/yamaru/ntfs-forensics/internal/types"
	"github.com/yamaru/ntfs-forensics/test/fixtures"
)

// buildEntry constructs one MFTEntrySize-byte in-use MFT entry with a
// resident STANDARD_INFORMATION attribute immediately followed by a
// resident FILE_NAME attribute, both carrying the supplied time
// quadruples.
func buildEntry(inUse bool, siTimes, fnTimes [4]uint64) []byte {
	entry := make([]byte, types.MFTEntrySize)

	binary.LittleEndian.PutUint32(entry[0:4], types.MFTSignature)
	flags := uint16(0)
	if inUse {
		flags = types.MFTInUseFlag
	}
	binary.LittleEndian.PutUint16(entry[22:24], flags) // Flags field offset within MFTEntryHeader

	siHeaderStart := types.MFTEntryHeaderLen
	siBodyStart := siHeaderStart + types.AttributeHeaderLen
	siLength := types.AttributeHeaderLen + types.SIFNTimeBlockLen
	binary.LittleEndian.PutUint32(entry[siHeaderStart:siHeaderStart+4], types.AttrTypeStandardInformation)
	binary.LittleEndian.PutUint32(entry[siHeaderStart+4:siHeaderStart+8], uint32(siLength))
	entry[siHeaderStart+8] = types.ResidentFlagResident
	copy(entry[siBodyStart:], fixtures.QuadPayload(siTimes[0], siTimes[1], siTimes[2], siTimes[3]))

	fnHeaderStart := siHeaderStart + siLength
	fnBodyStart := fnHeaderStart + types.AttributeHeaderLen
	binary.LittleEndian.PutUint32(entry[fnHeaderStart:fnHeaderStart+4], types.AttrTypeFileName)
	binary.LittleEndian.PutUint32(entry[fnHeaderStart+4:fnHeaderStart+8], uint32(types.AttributeHeaderLen+0x08+types.SIFNTimeBlockLen))
	entry[fnHeaderStart+8] = types.ResidentFlagResident
	// FILE_NAME's resident body carries an 8-byte parent reference before
	// the time quadruple.
	copy(entry[fnBodyStart+0x08:], fixtures.QuadPayload(fnTimes[0], fnTimes[1], fnTimes[2], fnTimes[3]))

	return entry
}

func TestScan_FlagsSINewerOnAllAxes(t *testing.T) {
	si := [4]uint64{fixtures.FILETIME(5000), fixtures.FILETIME(5000), fixtures.FILETIME(5000), fixtures.FILETIME(5000)}
	fn := [4]uint64{fixtures.FILETIME(1000), fixtures.FILETIME(1000), fixtures.FILETIME(1000), fixtures.FILETIME(1000)}
	entry := buildEntry(true, si, fn)

	rows := Scan(entry, 0)
	require.Len(t, rows, 1)
	assert.True(t, rows[0].IsTimestomped)
	assert.EqualValues(t, 0, rows[0].MFTEntry)
}

func TestScan_DoesNotFlagWhenOnlyOneAxisNewer(t *testing.T) {
	si := [4]uint64{fixtures.FILETIME(5000), fixtures.FILETIME(1000), fixtures.FILETIME(1000), fixtures.FILETIME(1000)}
	fn := [4]uint64{fixtures.FILETIME(1000), fixtures.FILETIME(1000), fixtures.FILETIME(1000), fixtures.FILETIME(1000)}
	entry := buildEntry(true, si, fn)

	rows := Scan(entry, 0)
	assert.Empty(t, rows)
}

func TestScan_SkipsEntriesNotInUse(t *testing.T) {
	si := [4]uint64{fixtures.FILETIME(5000), fixtures.FILETIME(5000), fixtures.FILETIME(5000), fixtures.FILETIME(5000)}
	fn := [4]uint64{fixtures.FILETIME(1000), fixtures.FILETIME(1000), fixtures.FILETIME(1000), fixtures.FILETIME(1000)}
	entry := buildEntry(false, si, fn)

	rows := Scan(entry, 0)
	assert.Empty(t, rows)
}

func TestScan_SkipsEntriesWithoutFileSignature(t *testing.T) {
	entry := make([]byte, types.MFTEntrySize)
	rows := Scan(entry, 0)
	assert.Empty(t, rows)
}

func TestScan_MultipleEntries(t *testing.T) {
	si := [4]uint64{fixtures.FILETIME(5000), fixtures.FILETIME(5000), fixtures.FILETIME(5000), fixtures.FILETIME(5000)}
	fn := [4]uint64{fixtures.FILETIME(1000), fixtures.FILETIME(1000), fixtures.FILETIME(1000), fixtures.FILETIME(1000)}

	flagged := buildEntry(true, si, fn)
	notFlagged := buildEntry(true, fn, fn) // SI == FN, not strictly newer

	mft := append(append([]byte{}, flagged...), notFlagged...)
	rows := Scan(mft, 0)
	require.Len(t, rows, 1)
	assert.EqualValues(t, 0, rows[0].MFTEntry)
}
