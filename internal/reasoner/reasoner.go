// Package reasoner implements the Timestomp Reasoner: it re-reads
// accepted Update Resident Value records targeting STANDARD_INFORMATION
// or FILE_NAME attributes, decodes the undo/redo timestamp quadruples,
// and flags backdating.
package reasoner

import (
	"github.com/yamaru/ntfs-forensics/internal/filetime"
	"github.com/yamaru/ntfs-forensics/internal/store"
)

const (
	attrNameStandardInformation = "STANDARD_INFORMATION"
	attrNameFileName            = "FILE_NAME"
)

// Run executes both the STANDARD_INFORMATION and FILE_NAME passes. Both
// are enabled per the decision recorded in SPEC_FULL.md §6.1 — the
// reference tool leaves the FILE_NAME pass dormant, but nothing about
// this system's scope excludes it.
func Run(st store.ReasonerStore, utcOffsetHours int) error {
	siRows, err := st.QuerySI()
	if err != nil {
		return err
	}
	if err := reasonAndInsert(st, siRows, utcOffsetHours, attrNameStandardInformation, extractStandardInformationTimes); err != nil {
		return err
	}

	fnRows, err := st.QueryFN()
	if err != nil {
		return err
	}
	return reasonAndInsert(st, fnRows, utcOffsetHours, attrNameFileName, extractFileNameTimes)
}

func reasonAndInsert(st store.ReasonerStore, rows []store.QueryRow, utcOffsetHours int, attrName string, extract func([]byte, uint16) timeQuadruple) error {
	verdicts := make([]store.TimeStompRow, 0, len(rows))
	for _, r := range rows {
		undo := extract(r.UndoData, r.AttrOffset)
		redo := extract(r.RedoData, r.AttrOffset)

		verdicts = append(verdicts, buildVerdict(r, attrName, undo, redo, utcOffsetHours))
	}
	return st.InsertTimeStompRows(verdicts)
}

// buildVerdict applies the verdict rule (spec §4.5): flagged if any axis
// with both sides present has undo > redo, comparing the raw FILETIME
// values rather than their formatted strings.
func buildVerdict(r store.QueryRow, attrName string, undo, redo timeQuadruple, utcOffsetHours int) store.TimeStompRow {
	isTimestomped := false
	for i := 0; i < 4; i++ {
		if undo[i] != nil && redo[i] != nil && *undo[i] > *redo[i] {
			isTimestomped = true
			break
		}
	}

	return store.TimeStompRow{
		ThisLSN:             r.ThisLSN,
		UndoCreateTime:      convertOrNil(undo[0], utcOffsetHours),
		UndoModifiedTime:    convertOrNil(undo[1], utcOffsetHours),
		UndoMFTModifiedTime: convertOrNil(undo[2], utcOffsetHours),
		UndoLastAccessTime:  convertOrNil(undo[3], utcOffsetHours),
		RedoCreateTime:      convertOrNil(redo[0], utcOffsetHours),
		RedoModifiedTime:    convertOrNil(redo[1], utcOffsetHours),
		RedoMFTModifiedTime: convertOrNil(redo[2], utcOffsetHours),
		RedoLastAccessTime:  convertOrNil(redo[3], utcOffsetHours),
		IsTimestomped:       isTimestomped,
		AttrName:            attrName,
		TargetVCN:           r.TargetVCN,
		ClusterNumber:       r.ClusterNumber,
		RecordOffset:        r.RecordOffset,
		AttrOffset:          r.AttrOffset,
	}
}

func convertOrNil(v *uint64, utcOffsetHours int) *string {
	if v == nil {
		return nil
	}
	return filetime.Convert(*v, utcOffsetHours)
}
