// Package pipeline wires the Page Walker, Record Scanner, Record Store,
// Timestomp Reasoner, and MFT Cross-Checker into the three-phase run a
// command-line invocation performs.
package pipeline

import (
	"fmt"
	"os"

	"github.com/sirupsen/logrus"

	"github.com/yamaru/ntfs-forensics/internal/mftscan"
	"github.com/yamaru/ntfs-forensics/internal/reasoner"
	"github.com/yamaru/ntfs-forensics/internal/scanner"
	"github.com/yamaru/ntfs-forensics/internal/store"
	"github.com/yamaru/ntfs-forensics/internal/walker"
)

// Pipeline holds the one Store instance shared by all three phases of a
// run: the log scan writes it, the reasoner reads and writes it, the MFT
// cross-checker writes to it independently.
type Pipeline struct {
	Store *store.Store
	Log   *logrus.Logger
}

// New opens (creating fresh) the output database at dbPath.
func New(dbPath string, log *logrus.Logger) (*Pipeline, error) {
	st, err := store.Open(dbPath)
	if err != nil {
		return nil, err
	}
	return &Pipeline{Store: st, Log: log}, nil
}

// Close releases the underlying database handle.
func (p *Pipeline) Close() error {
	return p.Store.Close()
}

// ParseLogFile runs the Page Walker and Record Scanner over the raw
// $LogFile at path and persists every accepted record.
func (p *Pipeline) ParseLogFile(path string) error {
	data, err := os.ReadFile(path)
	if err != nil {
		return fmt.Errorf("reading logfile: %w", err)
	}

	pages, err := walker.Walk(data)
	if err != nil {
		return err
	}

	for _, pg := range pages {
		records := scanner.Scan(pg.Bytes, pg.Header)
		for _, r := range records {
			if err := p.Store.InsertLogRecord(store.LogRecordRowFrom(r)); err != nil {
				return err
			}
		}
	}
	if err := p.Store.FlushLogRecords(); err != nil {
		return err
	}

	p.Log.WithField("component", "logfile").Info("LogFile parsing completed successfully.")
	return nil
}

// ReasonTimestomps runs both the STANDARD_INFORMATION and FILE_NAME
// passes of the Timestomp Reasoner against the records just persisted.
func (p *Pipeline) ReasonTimestomps(utcOffsetHours int) error {
	if err := reasoner.Run(p.Store, utcOffsetHours); err != nil {
		return err
	}
	p.Log.WithField("component", "timestamp").Info("Timestamp analysis completed successfully.")
	return nil
}

// CrossCheckMFT runs the MFT Cross-Checker against the raw $MFT at path.
func (p *Pipeline) CrossCheckMFT(path string, utcOffsetHours int) error {
	data, err := os.ReadFile(path)
	if err != nil {
		return fmt.Errorf("reading mft: %w", err)
	}

	rows := mftscan.Scan(data, utcOffsetHours)
	if err := p.Store.InsertSIFNRows(rows); err != nil {
		return err
	}

	p.Log.WithField("component", "mft").Info("MFT parsing completed successfully.")
	return nil
}
