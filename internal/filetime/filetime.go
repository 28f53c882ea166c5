// Package filetime converts Windows FILETIME values into the timestamp
// strings the Timestomp Reasoner and MFT Cross-Checker both persist.
package filetime

import (
	"math"
	"time"

	"github.com/yamaru/ntfs-forensics/internal/types"
)

// Convert turns a raw FILETIME into a UTC-offset-shifted timestamp
// string. A zero FILETIME decodes to nil (spec §8 invariant 7); there is
// no error return because an out-of-range value (one too large for a
// signed 64-bit tick count, or one whose shifted time falls outside years
// 1-9999) also decodes to nil rather than aborting the scan (spec §7,
// TimestampDecodeError is always local).
func Convert(v uint64, utcOffsetHours int) *string {
	if v == 0 || v > math.MaxInt64 {
		return nil
	}
	seconds := (int64(v) - types.FiletimeEpochDelta) / types.FiletimeTicksPerSecond
	t := time.Unix(seconds, 0).UTC().Add(time.Duration(utcOffsetHours) * time.Hour)
	if t.Year() < 1 || t.Year() > 9999 {
		return nil
	}
	s := t.Format(types.TimestampLayout)
	return &s
}
