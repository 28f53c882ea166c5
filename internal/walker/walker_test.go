package walker

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/yamaru/ntfs-forensics/internal/types"
	"github.com/yamaru/ntfs-forensics/test/fixtures"
)

func TestWalk_ShortFile(t *testing.T) {
	_, err := Walk(make([]byte, 100))
	assert.ErrorIs(t, err, types.ErrShortRead)
}

func TestWalk_InvalidRestartMagic(t *testing.T) {
	data := make([]byte, types.PageSize*5)
	_, err := Walk(data)
	assert.ErrorIs(t, err, types.ErrInvalidRestart)
}

func TestWalk_EmptyJournal(t *testing.T) {
	// Only the restart page and its buffer pages, nothing past page 4.
	data := fixtures.RSTRPage(0x1000)
	for i := 0; i < 3; i++ {
		data = append(data, fixtures.EmptyPage()...)
	}

	pages, err := Walk(data)
	require.NoError(t, err)
	assert.Nil(t, pages)
}

func TestWalk_LSNNotFound(t *testing.T) {
	record := fixtures.LogRecordBytes(fixtures.DefaultLogRecordSpec(), []byte{1, 2, 3, 4}, nil)
	page := fixtures.RCRDPage(0x200, record)

	// currentLSN never appears in the record page.
	data := fixtures.LogFile(0xDEADBEEF00, page)
	pages, err := Walk(data)
	require.NoError(t, err)
	assert.Nil(t, pages)
}

func TestWalk_SinglePageAnchor(t *testing.T) {
	currentLSN := uint64(0x4000)
	spec := fixtures.DefaultLogRecordSpec()
	spec.ThisLSN = currentLSN
	record := fixtures.LogRecordBytes(spec, []byte{1, 2, 3, 4}, nil)
	page := fixtures.RCRDPage(currentLSN, record)

	data := fixtures.LogFile(currentLSN, page)
	pages, err := Walk(data)
	require.NoError(t, err)
	require.Len(t, pages, 1)
	assert.Equal(t, types.FirstRecordPage, pages[0].Index)
	assert.Equal(t, currentLSN, pages[0].Header.LastLSN)
}

func TestWalk_CircularTraversalWrapsOnceAroundAnchor(t *testing.T) {
	currentLSN := uint64(0x9000)

	specA := fixtures.DefaultLogRecordSpec()
	specA.ThisLSN = 0x1000
	pageA := fixtures.RCRDPage(0x1000, fixtures.LogRecordBytes(specA, []byte{1, 2, 3, 4}, nil))

	specB := fixtures.DefaultLogRecordSpec()
	specB.ThisLSN = currentLSN
	pageB := fixtures.RCRDPage(currentLSN, fixtures.LogRecordBytes(specB, []byte{5, 6, 7, 8}, nil))

	specC := fixtures.DefaultLogRecordSpec()
	specC.ThisLSN = 0x2000
	pageC := fixtures.RCRDPage(0x2000, fixtures.LogRecordBytes(specC, []byte{9, 10, 11, 12}, nil))

	// Anchor is the middle page (B); traversal must visit B, C, then wrap
	// back to A, and stop exactly one circuit later without repeating B.
	data := fixtures.LogFile(currentLSN, pageA, pageB, pageC)
	pages, err := Walk(data)
	require.NoError(t, err)
	require.Len(t, pages, 3)

	assert.Equal(t, types.FirstRecordPage+1, pages[0].Index) // B: the anchor
	assert.Equal(t, types.FirstRecordPage+2, pages[1].Index) // C
	assert.Equal(t, types.FirstRecordPage, pages[2].Index)   // A: wrapped around
}

func TestWalk_SkipsPagesWithInvalidRCRDMagic(t *testing.T) {
	currentLSN := uint64(0x5000)
	spec := fixtures.DefaultLogRecordSpec()
	spec.ThisLSN = currentLSN
	goodPage := fixtures.RCRDPage(currentLSN, fixtures.LogRecordBytes(spec, []byte{1, 2, 3, 4}, nil))
	corruptPage := fixtures.EmptyPage() // no RCRD magic: must be skipped, not returned

	data := fixtures.LogFile(currentLSN, goodPage, corruptPage)
	pages, err := Walk(data)
	require.NoError(t, err)
	require.Len(t, pages, 1)
	assert.Equal(t, types.FirstRecordPage, pages[0].Index)
}
