package reasoner

import (
	"encoding/binary"
)

// timeQuadruple holds up to four raw FILETIME values in {Creation,
// Modified, MFT-Modified, Last-Access} order, any of which may be absent
// because the payload that produced it didn't cover that field.
type timeQuadruple [4]*uint64

var siFieldMap = map[uint16][]int{
	0x18: {0, 1, 2, 3},
	0x20: {1, 2, 3},
	0x28: {2, 3},
	0x30: {3},
}

var fnFieldMap = map[uint16][]int{
	0x18: {0, 1, 2, 3},
	0x20: {0, 1, 2, 3},
	0x28: {1, 2, 3},
	0x30: {2, 3},
	0x38: {3},
}

// extractStandardInformationTimes reads the tail-of-quadruple payload an
// Update Resident Value opcode leaves behind when it targets a resident
// STANDARD_INFORMATION attribute at attrOffset (spec §4.5 SI table).
func extractStandardInformationTimes(data []byte, attrOffset uint16) timeQuadruple {
	return extractTimes(data, siFieldMap, attrOffset, 0)
}

// extractFileNameTimes does the same for a FILE_NAME attribute. A payload
// starting at attr_offset 0x18 carries an 8-byte file-reference prefix
// that must be skipped before the timestamps begin.
func extractFileNameTimes(data []byte, attrOffset uint16) timeQuadruple {
	skip := 0
	if attrOffset == 0x18 {
		skip = 8
	}
	return extractTimes(data, fnFieldMap, attrOffset, skip)
}

func extractTimes(data []byte, fieldMap map[uint16][]int, attrOffset uint16, skipBytes int) timeQuadruple {
	var out timeQuadruple
	positions, ok := fieldMap[attrOffset]
	if !ok {
		return out
	}
	for i, fieldIdx := range positions {
		start := skipBytes + i*8
		if start+8 > len(data) {
			continue
		}
		v := binary.LittleEndian.Uint64(data[start : start+8])
		if v != 0 {
			vv := v
			out[fieldIdx] = &vv
		}
	}
	return out
}
