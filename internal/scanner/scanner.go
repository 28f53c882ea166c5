// Package scanner implements the Record Scanner: heuristic discovery of
// log record headers inside one RCRD page, followed by validation and
// redo/undo payload extraction.
package scanner

import (
	"github.com/yamaru/ntfs-forensics/internal/search"
	"github.com/yamaru/ntfs-forensics/internal/types"
)

// candidateStartFloor is the smallest byte offset a candidate record can
// start at; anything before it would overlap the RCRD page header.
const candidateStartFloor = 0x30

var recordTypePatterns = [][]byte{{0x01, 0x00}, {0x02, 0x00}}

// Scan searches pageBytes for candidate log records, validates each
// against the seven header predicates, and returns the accepted records
// with their redo/undo payloads sliced out. Scan takes no page index;
// callers that want to attribute records to a page keep track of it
// themselves.
func Scan(pageBytes []byte, header types.RCRDHeader) []types.LogRecord {
	upperBound := int(header.NextRecordOffset)
	if upperBound > len(pageBytes) {
		upperBound = len(pageBytes)
	}
	if upperBound <= candidateStartFloor {
		return nil
	}

	searchRegion := pageBytes[candidateStartFloor:upperBound]
	hits := search.FindPattern(searchRegion, 2, recordTypePatterns...)

	var records []types.LogRecord
	for _, relHit := range hits {
		h := candidateStartFloor + relHit
		start := h - 0x20
		if start < candidateStartFloor {
			continue
		}
		if start+types.LogRecordHeaderLen > len(pageBytes) {
			continue
		}

		rh, err := types.DecodeLogRecordHeader(pageBytes[start:])
		if err != nil {
			continue
		}
		if !validate(rh, start, int(header.NextRecordOffset)) {
			continue
		}

		redoStart := start + types.RecordHeaderSize + int(rh.RedoOffset)
		undoStart := start + types.RecordHeaderSize + int(rh.UndoOffset)

		redoData := boundedSlice(pageBytes, redoStart, int(rh.RedoLength), int(header.NextRecordOffset))
		undoData := boundedSlice(pageBytes, undoStart, int(rh.UndoLength), int(header.NextRecordOffset))

		records = append(records, types.LogRecord{
			Header:   rh,
			RedoData: redoData,
			UndoData: undoData,
		})
	}
	return records
}

// validate applies the seven predicates a discovered header must satisfy
// simultaneously to be accepted as a real log record (spec §3/§4.3).
func validate(h types.LogRecordHeader, start, nextRecordOffset int) bool {
	if !h.IsZeroAlignment() {
		return false
	}
	if h.RedoOffset != 0x28 {
		return false
	}
	if h.RedoOp > 0x21 || h.UndoOp > 0x21 {
		return false
	}
	switch h.ClusterNumber {
	case 0x00, 0x02, 0x04, 0x06:
	default:
		return false
	}
	if h.PageSize != 0x02 {
		return false
	}
	if h.RedoLength == 0 {
		return false
	}
	if start+types.LogRecordHeaderLen+int(h.RedoLength) > nextRecordOffset {
		return false
	}
	return true
}

// boundedSlice returns length bytes starting at start, clamped so it
// never reads past bound or the end of data.
func boundedSlice(data []byte, start, length, bound int) []byte {
	if start < 0 || start >= len(data) || length <= 0 {
		return nil
	}
	end := start + length
	if end > bound {
		end = bound
	}
	if end > len(data) {
		end = len(data)
	}
	if end <= start {
		return nil
	}
	out := make([]byte, end-start)
	copy(out, data[start:end])
	return out
}
