package pipeline

import (
	"database/sql"
	"io"
	"os"
	"path/filepath"
	"testing"

	"github.com/sirupsen/logrus"
	"github.com/stretchr/testify/require"
	"github.com/stretchr/testify/suite"

	"github.com/yamaru/ntfs-forensics/internal/types"
	"github.com/yamaru/ntfs-forensics/test/fixtures"
)

type PipelineTestSuite struct {
	suite.Suite
	dir string
	log *logrus.Logger
}

func (s *PipelineTestSuite) SetupTest() {
	s.dir = s.T().TempDir()
	s.log = logrus.New()
	s.log.SetOutput(io.Discard)
}

func (s *PipelineTestSuite) writeLogFile(data []byte) string {
	path := filepath.Join(s.dir, "LogFile")
	s.Require().NoError(os.WriteFile(path, data, 0o600))
	return path
}

func (s *PipelineTestSuite) TestEndToEndFlagsBackdatedRecord() {
	undoCreate := fixtures.FILETIME(2000)
	redoCreate := fixtures.FILETIME(1000) // backdated relative to undo

	spec := fixtures.DefaultLogRecordSpec()
	spec.ThisLSN = 0x1000
	spec.RecordOffset = 0x38 // STANDARD_INFORMATION
	spec.AttrOffset = 0x18
	record := fixtures.LogRecordBytes(spec,
		fixtures.QuadPayload(redoCreate, 0, 0, 0),
		fixtures.QuadPayload(undoCreate, 0, 0, 0),
	)
	page := fixtures.RCRDPage(spec.ThisLSN, record)
	logfile := fixtures.LogFile(spec.ThisLSN, page)
	logPath := s.writeLogFile(logfile)

	dbPath := filepath.Join(s.dir, "out.db")
	p, err := New(dbPath, s.log)
	s.Require().NoError(err)
	defer p.Close()

	s.Require().NoError(p.ParseLogFile(logPath))
	s.Require().NoError(p.ReasonTimestomps(0))

	rows, err := p.Store.QuerySI()
	s.Require().NoError(err)
	s.Require().Len(rows, 1)
	s.Equal(spec.ThisLSN, rows[0].ThisLSN)

	db, err := sql.Open("sqlite", dbPath)
	s.Require().NoError(err)
	defer db.Close()
	var isTimestomped bool
	var attrName string
	s.Require().NoError(db.QueryRow(`SELECT is_timestomped, attr_name FROM TimeStomp WHERE this_lsn = '0x1000'`).Scan(&isTimestomped, &attrName))
	s.True(isTimestomped)
	s.Equal("STANDARD_INFORMATION", attrName)
}

func (s *PipelineTestSuite) TestParseLogFile_PropagatesInvalidRestartError() {
	logPath := s.writeLogFile(make([]byte, 4096*5))

	dbPath := filepath.Join(s.dir, "out.db")
	p, err := New(dbPath, s.log)
	s.Require().NoError(err)
	defer p.Close()

	err = p.ParseLogFile(logPath)
	s.ErrorIs(err, types.ErrInvalidRestart)
}

func TestPipelineSuite(t *testing.T) {
	suite.Run(t, new(PipelineTestSuite))
}

func TestNew_FailsOnUnwritableDBPath(t *testing.T) {
	log := logrus.New()
	log.SetOutput(io.Discard)

	_, err := New(filepath.Join(t.TempDir(), "missing-dir", "out.db"), log)
	require.Error(t, err)
}
