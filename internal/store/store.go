// Package store persists decoded log records, timestomp verdicts, and MFT
// cross-check results, and answers the two predicate queries the
// Timestomp Reasoner needs.
package store

import (
	"database/sql"
	"encoding/hex"
	"fmt"
	"os"

	_ "modernc.org/sqlite"

	"github.com/yamaru/ntfs-forensics/internal/types"
)

// batchSize is the number of buffered rows flushed together, matching
// the "order of 10^5" batching the reference tool uses.
const batchSize = 100_000

// LogRecordRow is one accepted log record in the internal representation
// used throughout the pipeline: native integers, raw payload bytes. It is
// only formatted to hex text at the moment it is written to LogFile.
type LogRecordRow struct {
	ThisLSN       uint64
	PreviousLSN   uint64
	RecordType    uint32
	RedoOpValue   uint16
	UndoOpValue   uint16
	RedoData      []byte
	UndoData      []byte
	TargetVCN     uint64
	TargetLCN     uint64
	ClusterNumber uint16
	RecordOffset  uint16
	AttrOffset    uint16
}

// LogRecordRowFrom converts a decoded, validated log record into its
// store representation.
func LogRecordRowFrom(r types.LogRecord) LogRecordRow {
	h := r.Header
	return LogRecordRow{
		ThisLSN:       h.ThisLSN,
		PreviousLSN:   h.PreviousLSN,
		RecordType:    h.RecordType,
		RedoOpValue:   h.RedoOp,
		UndoOpValue:   h.UndoOp,
		RedoData:      r.RedoData,
		UndoData:      r.UndoData,
		TargetVCN:     h.TargetVCN,
		TargetLCN:     h.TargetLCN,
		ClusterNumber: h.ClusterNumber,
		RecordOffset:  h.RecordOffset,
		AttrOffset:    h.AttrOffset,
	}
}

// QueryRow is a row returned by QuerySI/QueryFN: just enough to let the
// Reasoner decode timestamp payloads and attribute a verdict back to its
// originating record.
type QueryRow struct {
	ThisLSN       uint64
	RedoData      []byte
	UndoData      []byte
	TargetVCN     uint64
	ClusterNumber uint16
	RecordOffset  uint16
	AttrOffset    uint16
}

// TimeStompRow is one verdict produced by the Timestomp Reasoner.
type TimeStompRow struct {
	ThisLSN             uint64
	UndoCreateTime      *string
	UndoModifiedTime    *string
	UndoMFTModifiedTime *string
	UndoLastAccessTime  *string
	RedoCreateTime      *string
	RedoModifiedTime    *string
	RedoMFTModifiedTime *string
	RedoLastAccessTime  *string
	IsTimestomped       bool
	AttrName            string
	TargetVCN           uint64
	ClusterNumber       uint16
	RecordOffset        uint16
	AttrOffset          uint16
}

// SIFNRow is one flagged entry produced by the MFT Cross-Checker.
type SIFNRow struct {
	MFTEntry            uint64
	SICreateTime        *string
	SIModifiedTime      *string
	SIMFTModifiedTime   *string
	SILastAccessTime    *string
	FNCreateTime        *string
	FNModifiedTime      *string
	FNMFTModifiedTime   *string
	FNLastAccessTime    *string
	IsTimestomped       bool
}

// Store wraps a SQLite database holding the three output tables.
type Store struct {
	db *sql.DB

	logBuf []LogRecordRow
}

// Open creates (overwriting any existing file) the SQLite database at
// path and initializes the LogFile, TimeStomp, and si_fn tables.
func Open(path string) (*Store, error) {
	if _, err := os.Stat(path); err == nil {
		if err := os.Remove(path); err != nil {
			return nil, fmt.Errorf("%w: removing existing database: %v", types.ErrStore, err)
		}
	}

	db, err := sql.Open("sqlite", path)
	if err != nil {
		return nil, fmt.Errorf("%w: opening database: %v", types.ErrStore, err)
	}

	for _, ddl := range []string{schemaLogFile, schemaTimeStomp, schemaSIFN} {
		if _, err := db.Exec(ddl); err != nil {
			db.Close()
			return nil, fmt.Errorf("%w: creating schema: %v", types.ErrStore, err)
		}
	}

	return &Store{db: db}, nil
}

// Close flushes nothing (callers must Flush explicitly) and releases the
// underlying database handle.
func (s *Store) Close() error {
	return s.db.Close()
}

// InsertLogRecord buffers a row for later flush, flushing automatically
// once the buffer reaches batchSize.
func (s *Store) InsertLogRecord(row LogRecordRow) error {
	s.logBuf = append(s.logBuf, row)
	if len(s.logBuf) >= batchSize {
		return s.FlushLogRecords()
	}
	return nil
}

// FlushLogRecords writes any buffered LogFile rows and clears the buffer.
func (s *Store) FlushLogRecords() error {
	if len(s.logBuf) == 0 {
		return nil
	}

	tx, err := s.db.Begin()
	if err != nil {
		return fmt.Errorf("%w: %v", types.ErrStore, err)
	}
	stmt, err := tx.Prepare(insertLogFile)
	if err != nil {
		tx.Rollback()
		return fmt.Errorf("%w: %v", types.ErrStore, err)
	}
	defer stmt.Close()

	for _, r := range s.logBuf {
		_, err := stmt.Exec(
			formatHex(r.ThisLSN),
			formatHex(r.PreviousLSN),
			formatHex(uint64(r.RecordType)),
			formatHex(uint64(r.RedoOpValue)),
			types.OpcodeName(r.RedoOpValue),
			hex.EncodeToString(r.RedoData),
			formatHex(uint64(len(r.RedoData))),
			formatHex(uint64(r.UndoOpValue)),
			types.OpcodeName(r.UndoOpValue),
			hex.EncodeToString(r.UndoData),
			formatHex(uint64(len(r.UndoData))),
			formatHex(r.TargetVCN),
			formatHex(r.TargetLCN),
			formatHex(uint64(r.ClusterNumber)),
			formatHex(uint64(r.RecordOffset)),
			formatHex(uint64(r.AttrOffset)),
		)
		if err != nil {
			tx.Rollback()
			return fmt.Errorf("%w: inserting log record: %v", types.ErrStore, err)
		}
	}

	if err := tx.Commit(); err != nil {
		return fmt.Errorf("%w: %v", types.ErrStore, err)
	}
	s.logBuf = s.logBuf[:0]
	return nil
}

// QuerySI returns LogFile rows matching the STANDARD_INFORMATION
// predicate (spec §4.4).
func (s *Store) QuerySI() ([]QueryRow, error) {
	return s.queryRows(querySIRows)
}

// QueryFN returns LogFile rows matching the FILE_NAME predicate.
func (s *Store) QueryFN() ([]QueryRow, error) {
	return s.queryRows(queryFNRows)
}

func (s *Store) queryRows(query string) ([]QueryRow, error) {
	rows, err := s.db.Query(query)
	if err != nil {
		return nil, fmt.Errorf("%w: %v", types.ErrStore, err)
	}
	defer rows.Close()

	var out []QueryRow
	for rows.Next() {
		var lsnHex, redoHex, undoHex, vcnHex, clusterHex, recordOffsetHex, attrOffsetHex string
		if err := rows.Scan(&lsnHex, &redoHex, &undoHex, &vcnHex, &clusterHex, &recordOffsetHex, &attrOffsetHex); err != nil {
			return nil, fmt.Errorf("%w: %v", types.ErrStore, err)
		}

		redoData, err := hex.DecodeString(redoHex)
		if err != nil {
			continue
		}
		undoData, err := hex.DecodeString(undoHex)
		if err != nil {
			continue
		}

		lsn, err := parseHex(lsnHex)
		if err != nil {
			continue
		}
		vcn, err := parseHex(vcnHex)
		if err != nil {
			continue
		}
		cluster, err := parseHex(clusterHex)
		if err != nil {
			continue
		}
		recordOffset, err := parseHex(recordOffsetHex)
		if err != nil {
			continue
		}
		attrOffset, err := parseHex(attrOffsetHex)
		if err != nil {
			continue
		}

		out = append(out, QueryRow{
			ThisLSN:       lsn,
			RedoData:      redoData,
			UndoData:      undoData,
			TargetVCN:     vcn,
			ClusterNumber: uint16(cluster),
			RecordOffset:  uint16(recordOffset),
			AttrOffset:    uint16(attrOffset),
		})
	}
	return out, rows.Err()
}

// InsertTimeStompRows writes verdict rows produced by the Reasoner.
func (s *Store) InsertTimeStompRows(rows []TimeStompRow) error {
	if len(rows) == 0 {
		return nil
	}
	tx, err := s.db.Begin()
	if err != nil {
		return fmt.Errorf("%w: %v", types.ErrStore, err)
	}
	stmt, err := tx.Prepare(insertTimeStomp)
	if err != nil {
		tx.Rollback()
		return fmt.Errorf("%w: %v", types.ErrStore, err)
	}
	defer stmt.Close()

	for _, r := range rows {
		_, err := stmt.Exec(
			formatHex(r.ThisLSN),
			r.UndoCreateTime, r.UndoModifiedTime, r.UndoMFTModifiedTime, r.UndoLastAccessTime,
			r.RedoCreateTime, r.RedoModifiedTime, r.RedoMFTModifiedTime, r.RedoLastAccessTime,
			r.IsTimestomped, r.AttrName,
			formatHex(r.TargetVCN), formatHex(uint64(r.ClusterNumber)),
			formatHex(uint64(r.RecordOffset)), formatHex(uint64(r.AttrOffset)),
		)
		if err != nil {
			tx.Rollback()
			return fmt.Errorf("%w: inserting timestomp row: %v", types.ErrStore, err)
		}
	}
	if err := tx.Commit(); err != nil {
		return fmt.Errorf("%w: %v", types.ErrStore, err)
	}
	return nil
}

// InsertSIFNRows writes flagged MFT cross-check rows.
func (s *Store) InsertSIFNRows(rows []SIFNRow) error {
	if len(rows) == 0 {
		return nil
	}
	tx, err := s.db.Begin()
	if err != nil {
		return fmt.Errorf("%w: %v", types.ErrStore, err)
	}
	stmt, err := tx.Prepare(insertSIFN)
	if err != nil {
		tx.Rollback()
		return fmt.Errorf("%w: %v", types.ErrStore, err)
	}
	defer stmt.Close()

	for _, r := range rows {
		_, err := stmt.Exec(
			r.MFTEntry,
			r.SICreateTime, r.SIModifiedTime, r.SIMFTModifiedTime, r.SILastAccessTime,
			r.FNCreateTime, r.FNModifiedTime, r.FNMFTModifiedTime, r.FNLastAccessTime,
			r.IsTimestomped,
		)
		if err != nil {
			tx.Rollback()
			return fmt.Errorf("%w: inserting si_fn row: %v", types.ErrStore, err)
		}
	}
	if err := tx.Commit(); err != nil {
		return fmt.Errorf("%w: %v", types.ErrStore, err)
	}
	return nil
}
