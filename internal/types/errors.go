package types

import (
	"errors"

	"github.com/yamaru/ntfs-forensics/internal/bindecode"
)

// Error kinds per the component error-handling contract. ErrShortRead is
// defined in bindecode and re-exported here so callers outside bindecode
// only need to import this package.
var (
	ErrShortRead = bindecode.ErrShortRead

	ErrInvalidRestart    = errors.New("ntfs-forensics: invalid RSTR magic number")
	ErrInvalidRecordPage = errors.New("ntfs-forensics: invalid RCRD magic number")
	ErrFailedValidation  = errors.New("ntfs-forensics: record failed header validation")
	ErrTimestampDecode   = errors.New("ntfs-forensics: malformed FILETIME value")
	ErrStore             = errors.New("ntfs-forensics: persistent store error")
)
