package types

// Geometry constants shared across the Page Walker, Record Scanner, and
// MFT Cross-Checker.
const (
	PageSize           = 0x1000
	RecordHeaderSize   = 0x30 // distance from candidate start to payload area
	LogRecordHeaderLen = 0x58
	RCRDHeaderLen      = 0x28
	RSTRHeaderLen      = 0x40
	MFTEntrySize       = 0x400
	MFTEntryHeaderLen  = 0x38
	AttributeHeaderLen = 0x18
	SIFNTimeBlockLen   = 0x20

	// FirstRecordPage is the first page index that can hold log records;
	// pages 0-3 are the restart page and its mirror/buffer pages.
	FirstRecordPage = 4
)

// Magic numbers identifying page and MFT entry kinds.
var (
	MagicRSTR = [4]byte{'R', 'S', 'T', 'R'}
	MagicRCRD = [4]byte{'R', 'C', 'R', 'D'}
)

// MFTSignature is the little-endian uint32 encoding of "FILE" as it
// appears at the start of every in-use MFT entry header.
const MFTSignature uint32 = 0x454C4946

// MFTInUseFlag is set in MFTEntryHeader.Flags when the entry is active.
const MFTInUseFlag uint16 = 0x01

// Attribute type codes inside an MFT entry.
const (
	AttrTypeStandardInformation uint32 = 0x10
	AttrTypeFileName            uint32 = 0x30
)

// Resident-flag values for an attribute header.
const (
	ResidentFlagResident    uint8 = 0x00
	ResidentFlagNonResident uint8 = 0x40
)

// Record-type discriminator values the Record Scanner searches for.
const (
	RecordTypeUpdateOrCommit uint32 = 0x01
	RecordTypeCheckpoint     uint32 = 0x02
)

// UpdateResidentValue is the only opcode the Timestomp Reasoner acts on.
const UpdateResidentValue uint16 = 0x07

// FiletimeEpochDelta is the number of 100-nanosecond FILETIME ticks
// between the Windows epoch (1601-01-01) and the Unix epoch (1970-01-01).
const FiletimeEpochDelta = 116_444_736_000_000_000

// FiletimeTicksPerSecond is the number of 100-nanosecond FILETIME ticks
// in one second.
const FiletimeTicksPerSecond = 10_000_000

// TimestampLayout is the format the Reasoner and MFT Cross-Checker emit
// converted timestamps in.
const TimestampLayout = "2006-01-02 15:04:05"
