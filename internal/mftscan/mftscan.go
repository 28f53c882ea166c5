// Package mftscan implements the MFT Cross-Checker: for each in-use MFT
// entry it compares resident STANDARD_INFORMATION and FILE_NAME
// timestamps and flags entries where SI postdates FN on every axis.
package mftscan

import (
	"github.com/yamaru/ntfs-forensics/internal/filetime"
	"github.com/yamaru/ntfs-forensics/internal/store"
	"github.com/yamaru/ntfs-forensics/internal/types"
)

// Scan walks mftBytes MFTEntrySize bytes at a time and returns one
// SIFNRow per entry whose SI timestamps strictly exceed its FN
// timestamps on all four axes (spec §4.6). Any entry that is not in use,
// or whose attribute layout doesn't match expectations, contributes no
// row — this is a silent skip by design (spec's failure model for this
// component), not an error.
func Scan(mftBytes []byte, utcOffsetHours int) []store.SIFNRow {
	entryCount := len(mftBytes) / types.MFTEntrySize

	var rows []store.SIFNRow
	for i := 0; i < entryCount; i++ {
		entry := mftBytes[i*types.MFTEntrySize : (i+1)*types.MFTEntrySize]

		header, err := types.DecodeMFTEntryHeader(entry)
		if err != nil || !header.InUse() {
			continue
		}

		siAttr, err := types.DecodeAttributeHeader(entry[types.MFTEntryHeaderLen:])
		if err != nil || siAttr.AttrType != types.AttrTypeStandardInformation {
			continue
		}

		siTimesOffset, ok := standardInformationTimesOffset(types.MFTEntryHeaderLen+types.AttributeHeaderLen, siAttr.ResidentFlag)
		if !ok || siTimesOffset+types.SIFNTimeBlockLen > len(entry) {
			continue
		}
		siTimes, err := types.DecodeSIFNTime(entry[siTimesOffset:])
		if err != nil {
			continue
		}

		fnHeaderOffset := types.MFTEntryHeaderLen + int(siAttr.AttrLength)
		if fnHeaderOffset+types.AttributeHeaderLen > len(entry) {
			continue
		}
		fnAttr, err := types.DecodeAttributeHeader(entry[fnHeaderOffset:])
		if err != nil || fnAttr.AttrType != types.AttrTypeFileName {
			continue
		}

		fnTimesOffset, ok := fileNameTimesOffset(fnHeaderOffset+types.AttributeHeaderLen, fnAttr.ResidentFlag)
		if !ok || fnTimesOffset+types.SIFNTimeBlockLen > len(entry) {
			continue
		}
		fnTimes, err := types.DecodeSIFNTime(entry[fnTimesOffset:])
		if err != nil {
			continue
		}

		if !isSINewerOnAllAxes(siTimes, fnTimes) {
			continue
		}

		rows = append(rows, store.SIFNRow{
			MFTEntry:          uint64(i),
			SICreateTime:      filetime.Convert(siTimes.CreationTime, utcOffsetHours),
			SIModifiedTime:    filetime.Convert(siTimes.ModifiedTime, utcOffsetHours),
			SIMFTModifiedTime: filetime.Convert(siTimes.MFTModifiedTime, utcOffsetHours),
			SILastAccessTime:  filetime.Convert(siTimes.AccessTime, utcOffsetHours),
			FNCreateTime:      filetime.Convert(fnTimes.CreationTime, utcOffsetHours),
			FNModifiedTime:    filetime.Convert(fnTimes.ModifiedTime, utcOffsetHours),
			FNMFTModifiedTime: filetime.Convert(fnTimes.MFTModifiedTime, utcOffsetHours),
			FNLastAccessTime:  filetime.Convert(fnTimes.AccessTime, utcOffsetHours),
			IsTimestomped:     true,
		})
	}
	return rows
}

// standardInformationTimesOffset locates the SIFNTime quadruple within a
// resident or non-resident STANDARD_INFORMATION attribute. A resident
// attribute carries the times immediately after its header; a
// non-resident one has a further 0x28 bytes of mapping-pair fields first.
func standardInformationTimesOffset(attrBodyStart int, residentFlag uint8) (int, bool) {
	switch residentFlag {
	case types.ResidentFlagResident:
		return attrBodyStart, true
	case types.ResidentFlagNonResident:
		return attrBodyStart + 0x28, true
	default:
		return 0, false
	}
}

// fileNameTimesOffset does the same for FILE_NAME: a resident attribute
// has an 8-byte parent file reference before the times; a non-resident
// one has 0x30 bytes of mapping-pair fields first.
func fileNameTimesOffset(attrBodyStart int, residentFlag uint8) (int, bool) {
	switch residentFlag {
	case types.ResidentFlagResident:
		return attrBodyStart + 0x08, true
	case types.ResidentFlagNonResident:
		return attrBodyStart + 0x30, true
	default:
		return 0, false
	}
}

func isSINewerOnAllAxes(si, fn types.SIFNTime) bool {
	return si.CreationTime > fn.CreationTime &&
		si.MFTModifiedTime > fn.MFTModifiedTime &&
		si.ModifiedTime > fn.ModifiedTime &&
		si.AccessTime > fn.AccessTime
}
