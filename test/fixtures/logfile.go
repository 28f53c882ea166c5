// Package fixtures builds synthetic NTFS $LogFile and $MFT byte slices
// for use in package tests, mirroring the teacher's hand-rolled
// binary.LittleEndian construction style rather than loading real
// captured artifacts.
package fixtures

import (
	"encoding/binary"

	"github.com/yamaru/ntfs-forensics/internal/types"
)

// RSTRPage builds a page-sized RSTR restart page whose current_lsn field
// is currentLSN.
func RSTRPage(currentLSN uint64) []byte {
	page := make([]byte, types.PageSize)
	copy(page[0:4], types.MagicRSTR[:])
	binary.LittleEndian.PutUint16(page[4:6], 0x30)   // update_sequence_offset
	binary.LittleEndian.PutUint16(page[6:8], 0x01)   // update_sequence_count
	binary.LittleEndian.PutUint64(page[8:16], 0)     // check_disk_lsn
	binary.LittleEndian.PutUint32(page[16:20], types.PageSize)
	binary.LittleEndian.PutUint32(page[20:24], types.PageSize)
	binary.LittleEndian.PutUint16(page[24:26], 0x40) // restart_offset
	binary.LittleEndian.PutUint16(page[26:28], 1)    // minor_version
	binary.LittleEndian.PutUint16(page[28:30], 1)    // major_version
	// bytes [30:48) are the update_sequence_array, left zero.
	binary.LittleEndian.PutUint64(page[48:56], currentLSN)
	binary.LittleEndian.PutUint16(page[56:58], 0x40) // log_client_offset
	binary.LittleEndian.PutUint16(page[58:60], 0)    // client_list_offset
	binary.LittleEndian.PutUint32(page[60:64], 0)    // flags
	return page
}

// EmptyPage builds a page-sized all-zero buffer page.
func EmptyPage() []byte {
	return make([]byte, types.PageSize)
}

// LogRecordSpec describes the fields of one synthetic log record. Offsets
// not set explicitly default to the values that satisfy the seven
// validation predicates, so tests only need to override what they care
// about.
type LogRecordSpec struct {
	ThisLSN         uint64
	PreviousLSN     uint64
	ClientUndoLSN   uint64
	RecordType      uint32
	TransactionID   uint32
	RedoOp          uint16
	UndoOp          uint16
	TargetAttribute uint16
	LCNToFollow     uint16
	RecordOffset    uint16
	AttrOffset      uint16
	ClusterNumber   uint16
	TargetVCN       uint64
	TargetLCN       uint64
}

// DefaultLogRecordSpec returns a spec already populated with values that
// pass every validation predicate; callers override individual fields.
func DefaultLogRecordSpec() LogRecordSpec {
	return LogRecordSpec{
		ThisLSN:       0x1000,
		PreviousLSN:   0x0800,
		ClientUndoLSN: 0,
		RecordType:    0x01,
		TransactionID: 0x01,
		RedoOp:        0x07,
		UndoOp:        0x07,
		ClusterNumber: 0x00,
		RecordOffset:  0x38,
		AttrOffset:    0x18,
		TargetVCN:     0,
		TargetLCN:     0,
	}
}

// LogRecordBytes renders spec, plus redo/undo payloads, into the 0x58-byte
// header followed immediately by redo then undo data — the layout that
// results when redo_offset == 0x28 and undo_offset == 0x28+len(redo).
func LogRecordBytes(spec LogRecordSpec, redo, undo []byte) []byte {
	redoOffset := uint16(0x28)
	undoOffset := redoOffset + uint16(len(redo))

	buf := make([]byte, types.LogRecordHeaderLen+len(redo)+len(undo))
	binary.LittleEndian.PutUint64(buf[0:8], spec.ThisLSN)
	binary.LittleEndian.PutUint64(buf[8:16], spec.PreviousLSN)
	binary.LittleEndian.PutUint64(buf[16:24], spec.ClientUndoLSN)
	binary.LittleEndian.PutUint32(buf[24:28], uint32(len(redo)+len(undo))) // client_data_length
	binary.LittleEndian.PutUint32(buf[28:32], 0x01)                       // client_id
	binary.LittleEndian.PutUint32(buf[32:36], spec.RecordType)
	binary.LittleEndian.PutUint32(buf[36:40], spec.TransactionID)
	binary.LittleEndian.PutUint16(buf[40:42], 0) // flags
	// buf[42:48) is the 6-byte reserved alignment, left zero.
	binary.LittleEndian.PutUint16(buf[48:50], spec.RedoOp)
	binary.LittleEndian.PutUint16(buf[50:52], spec.UndoOp)
	binary.LittleEndian.PutUint16(buf[52:54], redoOffset)
	binary.LittleEndian.PutUint16(buf[54:56], uint16(len(redo)))
	binary.LittleEndian.PutUint16(buf[56:58], undoOffset)
	binary.LittleEndian.PutUint16(buf[58:60], uint16(len(undo)))
	binary.LittleEndian.PutUint16(buf[60:62], spec.TargetAttribute)
	binary.LittleEndian.PutUint16(buf[62:64], spec.LCNToFollow)
	binary.LittleEndian.PutUint16(buf[64:66], spec.RecordOffset)
	binary.LittleEndian.PutUint16(buf[66:68], spec.AttrOffset)
	binary.LittleEndian.PutUint16(buf[68:70], spec.ClusterNumber)
	binary.LittleEndian.PutUint16(buf[70:72], 0x02) // page_size
	binary.LittleEndian.PutUint64(buf[72:80], spec.TargetVCN)
	binary.LittleEndian.PutUint64(buf[80:88], spec.TargetLCN)

	copy(buf[types.LogRecordHeaderLen:], redo)
	copy(buf[types.LogRecordHeaderLen+len(redo):], undo)
	return buf
}

// RCRDPage builds a page-sized record page containing record at offset
// 0x30 (the first legal candidate position) and sets next_record_offset
// just past the end of record.
func RCRDPage(lastLSN uint64, record []byte) []byte {
	page := make([]byte, types.PageSize)
	copy(page[0:4], types.MagicRCRD[:])
	binary.LittleEndian.PutUint16(page[4:6], 0x28) // update_sequence_offset
	binary.LittleEndian.PutUint16(page[6:8], 0x01) // update_sequence_count
	binary.LittleEndian.PutUint64(page[8:16], lastLSN)
	binary.LittleEndian.PutUint32(page[16:20], 0) // flags
	binary.LittleEndian.PutUint16(page[20:22], 1) // page_count
	binary.LittleEndian.PutUint16(page[22:24], 1) // page_position

	nextRecordOffset := uint16(0x30 + len(record))
	binary.LittleEndian.PutUint16(page[24:26], nextRecordOffset)
	binary.LittleEndian.PutUint16(page[26:28], 0) // word_align
	binary.LittleEndian.PutUint32(page[28:32], 0) // dword_align
	binary.LittleEndian.PutUint64(page[32:40], lastLSN)

	copy(page[0x30:], record)
	return page
}

// FILETIME converts seconds since the Unix epoch (UTC) into a raw
// Windows FILETIME value, the inverse of internal/filetime.Convert.
func FILETIME(unixSeconds int64) uint64 {
	return uint64(unixSeconds*types.FiletimeTicksPerSecond + types.FiletimeEpochDelta)
}

// QuadPayload packs up to four FILETIME values back to back, the shape
// every SI/FN log-record payload and MFT time block takes.
func QuadPayload(values ...uint64) []byte {
	buf := make([]byte, 8*len(values))
	for i, v := range values {
		binary.LittleEndian.PutUint64(buf[i*8:i*8+8], v)
	}
	return buf
}

// LogFile assembles a full $LogFile byte slice: an RSTR page at index 0,
// empty pages at 1-3, then one RCRD page per entry of pages starting at
// index 4. currentLSN must appear inside one of the supplied pages for
// the walker to find an anchor.
func LogFile(currentLSN uint64, pages ...[]byte) []byte {
	buf := make([]byte, 0, types.PageSize*(types.FirstRecordPage+len(pages)))
	buf = append(buf, RSTRPage(currentLSN)...)
	for i := 0; i < types.FirstRecordPage-1; i++ {
		buf = append(buf, EmptyPage()...)
	}
	for _, p := range pages {
		buf = append(buf, p...)
	}
	return buf
}
