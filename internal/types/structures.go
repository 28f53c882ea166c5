package types

import "github.com/yamaru/ntfs-forensics/internal/bindecode"

// RSTRHeader is the 0x40-byte header of a restart page.
type RSTRHeader struct {
	MagicNumber          [4]byte
	UpdateSequenceOffset uint16
	UpdateSequenceCount  uint16
	CheckDiskLSN         uint64
	SystemPageSize       uint32
	LogPageSize          uint32
	RestartOffset        uint16
	MinorVersion         uint16
	MajorVersion         uint16
	UpdateSequenceArray  [18]byte
	CurrentLSN           uint64
	LogClientOffset      uint16
	ClientListOffset     uint16
	Flags                uint32
}

// DecodeRSTRHeader reads an RSTRHeader from the start of page.
func DecodeRSTRHeader(page []byte) (RSTRHeader, error) {
	var h RSTRHeader
	c := bindecode.NewCursor(page)
	magic, err := c.ReadBytes(4)
	if err != nil {
		return h, err
	}
	copy(h.MagicNumber[:], magic)
	if h.UpdateSequenceOffset, err = c.ReadUint16(); err != nil {
		return h, err
	}
	if h.UpdateSequenceCount, err = c.ReadUint16(); err != nil {
		return h, err
	}
	if h.CheckDiskLSN, err = c.ReadUint64(); err != nil {
		return h, err
	}
	if h.SystemPageSize, err = c.ReadUint32(); err != nil {
		return h, err
	}
	if h.LogPageSize, err = c.ReadUint32(); err != nil {
		return h, err
	}
	if h.RestartOffset, err = c.ReadUint16(); err != nil {
		return h, err
	}
	if h.MinorVersion, err = c.ReadUint16(); err != nil {
		return h, err
	}
	if h.MajorVersion, err = c.ReadUint16(); err != nil {
		return h, err
	}
	usa, err := c.ReadBytes(18)
	if err != nil {
		return h, err
	}
	copy(h.UpdateSequenceArray[:], usa)
	if h.CurrentLSN, err = c.ReadUint64(); err != nil {
		return h, err
	}
	if h.LogClientOffset, err = c.ReadUint16(); err != nil {
		return h, err
	}
	if h.ClientListOffset, err = c.ReadUint16(); err != nil {
		return h, err
	}
	if h.Flags, err = c.ReadUint32(); err != nil {
		return h, err
	}
	return h, nil
}

// IsValid reports whether the magic number reads "RSTR".
func (h RSTRHeader) IsValid() bool {
	return h.MagicNumber == MagicRSTR
}

// RCRDHeader is the 0x28-byte header of a record page.
type RCRDHeader struct {
	MagicNumber          [4]byte
	UpdateSequenceOffset uint16
	UpdateSequenceCount  uint16
	LastLSN              uint64
	Flags                uint32
	PageCount            uint16
	PagePosition         uint16
	NextRecordOffset     uint16
	WordAlign            uint16
	DWordAlign           uint32
	LastEndLSN           uint64
}

// DecodeRCRDHeader reads an RCRDHeader from the start of page.
func DecodeRCRDHeader(page []byte) (RCRDHeader, error) {
	var h RCRDHeader
	c := bindecode.NewCursor(page)
	magic, err := c.ReadBytes(4)
	if err != nil {
		return h, err
	}
	copy(h.MagicNumber[:], magic)
	if h.UpdateSequenceOffset, err = c.ReadUint16(); err != nil {
		return h, err
	}
	if h.UpdateSequenceCount, err = c.ReadUint16(); err != nil {
		return h, err
	}
	if h.LastLSN, err = c.ReadUint64(); err != nil {
		return h, err
	}
	if h.Flags, err = c.ReadUint32(); err != nil {
		return h, err
	}
	if h.PageCount, err = c.ReadUint16(); err != nil {
		return h, err
	}
	if h.PagePosition, err = c.ReadUint16(); err != nil {
		return h, err
	}
	if h.NextRecordOffset, err = c.ReadUint16(); err != nil {
		return h, err
	}
	if h.WordAlign, err = c.ReadUint16(); err != nil {
		return h, err
	}
	if h.DWordAlign, err = c.ReadUint32(); err != nil {
		return h, err
	}
	if h.LastEndLSN, err = c.ReadUint64(); err != nil {
		return h, err
	}
	return h, nil
}

// IsValid reports whether the magic number reads "RCRD".
func (h RCRDHeader) IsValid() bool {
	return h.MagicNumber == MagicRCRD
}

// LogRecordHeader is the 0x58-byte header preceding a log record's redo
// and undo payloads.
type LogRecordHeader struct {
	ThisLSN             uint64
	PreviousLSN          uint64
	ClientUndoLSN        uint64
	ClientDataLength     uint32
	ClientID             uint32
	RecordType           uint32
	TransactionID        uint32
	Flags                uint16
	AlignmentOrReserved1 [6]byte
	RedoOp               uint16
	UndoOp               uint16
	RedoOffset           uint16
	RedoLength           uint16
	UndoOffset           uint16
	UndoLength           uint16
	TargetAttribute      uint16
	LCNToFollow          uint16
	RecordOffset         uint16
	AttrOffset           uint16
	ClusterNumber        uint16
	PageSize             uint16
	TargetVCN            uint64
	TargetLCN            uint64
}

// DecodeLogRecordHeader reads a LogRecordHeader from the start of data.
func DecodeLogRecordHeader(data []byte) (LogRecordHeader, error) {
	var h LogRecordHeader
	c := bindecode.NewCursor(data)
	var err error
	if h.ThisLSN, err = c.ReadUint64(); err != nil {
		return h, err
	}
	if h.PreviousLSN, err = c.ReadUint64(); err != nil {
		return h, err
	}
	if h.ClientUndoLSN, err = c.ReadUint64(); err != nil {
		return h, err
	}
	if h.ClientDataLength, err = c.ReadUint32(); err != nil {
		return h, err
	}
	if h.ClientID, err = c.ReadUint32(); err != nil {
		return h, err
	}
	if h.RecordType, err = c.ReadUint32(); err != nil {
		return h, err
	}
	if h.TransactionID, err = c.ReadUint32(); err != nil {
		return h, err
	}
	if h.Flags, err = c.ReadUint16(); err != nil {
		return h, err
	}
	reserved, err := c.ReadBytes(6)
	if err != nil {
		return h, err
	}
	copy(h.AlignmentOrReserved1[:], reserved)
	if h.RedoOp, err = c.ReadUint16(); err != nil {
		return h, err
	}
	if h.UndoOp, err = c.ReadUint16(); err != nil {
		return h, err
	}
	if h.RedoOffset, err = c.ReadUint16(); err != nil {
		return h, err
	}
	if h.RedoLength, err = c.ReadUint16(); err != nil {
		return h, err
	}
	if h.UndoOffset, err = c.ReadUint16(); err != nil {
		return h, err
	}
	if h.UndoLength, err = c.ReadUint16(); err != nil {
		return h, err
	}
	if h.TargetAttribute, err = c.ReadUint16(); err != nil {
		return h, err
	}
	if h.LCNToFollow, err = c.ReadUint16(); err != nil {
		return h, err
	}
	if h.RecordOffset, err = c.ReadUint16(); err != nil {
		return h, err
	}
	if h.AttrOffset, err = c.ReadUint16(); err != nil {
		return h, err
	}
	if h.ClusterNumber, err = c.ReadUint16(); err != nil {
		return h, err
	}
	if h.PageSize, err = c.ReadUint16(); err != nil {
		return h, err
	}
	if h.TargetVCN, err = c.ReadUint64(); err != nil {
		return h, err
	}
	if h.TargetLCN, err = c.ReadUint64(); err != nil {
		return h, err
	}
	return h, nil
}

// IsZeroAlignment reports whether the 6 reserved alignment bytes are all
// zero, the first of the seven record-validation predicates.
func (h LogRecordHeader) IsZeroAlignment() bool {
	for _, b := range h.AlignmentOrReserved1 {
		if b != 0 {
			return false
		}
	}
	return true
}

// LogRecord is a fully decoded, validated log record together with its
// redo and undo payload slices.
type LogRecord struct {
	Header   LogRecordHeader
	RedoData []byte
	UndoData []byte
}

// MFTEntryHeader is the 0x38-byte header at the start of every MFT entry.
type MFTEntryHeader struct {
	Signature         uint32
	FixupArrayOffset  uint16
	FixupEntryCount   uint16
	LSN               uint64
	SequenceNumber    uint16
	HardLinkCount     uint16
	FirstAttrOffset   uint16
	Flags             uint16
	RealSize          uint32
	AllocatedSize     uint32
	FileReferenceEntry uint64
	NextAttrID        uint16
	AlignTo4          uint16
	MFTEntryNumber    uint32
	Unknown           uint64
}

// DecodeMFTEntryHeader reads an MFTEntryHeader from the start of entry.
func DecodeMFTEntryHeader(entry []byte) (MFTEntryHeader, error) {
	var h MFTEntryHeader
	c := bindecode.NewCursor(entry)
	var err error
	if h.Signature, err = c.ReadUint32(); err != nil {
		return h, err
	}
	if h.FixupArrayOffset, err = c.ReadUint16(); err != nil {
		return h, err
	}
	if h.FixupEntryCount, err = c.ReadUint16(); err != nil {
		return h, err
	}
	if h.LSN, err = c.ReadUint64(); err != nil {
		return h, err
	}
	if h.SequenceNumber, err = c.ReadUint16(); err != nil {
		return h, err
	}
	if h.HardLinkCount, err = c.ReadUint16(); err != nil {
		return h, err
	}
	if h.FirstAttrOffset, err = c.ReadUint16(); err != nil {
		return h, err
	}
	if h.Flags, err = c.ReadUint16(); err != nil {
		return h, err
	}
	if h.RealSize, err = c.ReadUint32(); err != nil {
		return h, err
	}
	if h.AllocatedSize, err = c.ReadUint32(); err != nil {
		return h, err
	}
	if h.FileReferenceEntry, err = c.ReadUint64(); err != nil {
		return h, err
	}
	if h.NextAttrID, err = c.ReadUint16(); err != nil {
		return h, err
	}
	if h.AlignTo4, err = c.ReadUint16(); err != nil {
		return h, err
	}
	if h.MFTEntryNumber, err = c.ReadUint32(); err != nil {
		return h, err
	}
	if h.Unknown, err = c.ReadUint64(); err != nil {
		return h, err
	}
	return h, nil
}

// InUse reports whether the entry's in-use bit is set.
func (h MFTEntryHeader) InUse() bool {
	return h.Signature == MFTSignature && h.Flags&MFTInUseFlag != 0
}

// AttributeHeader is the 0x18-byte header preceding a resident or
// non-resident MFT attribute body.
type AttributeHeader struct {
	AttrType       uint32
	AttrLength     uint32
	ResidentFlag   uint8
	NameLength     uint8
	NameOffset     uint16
	Flag           uint16
	AttrIdentifier uint16
	Unknown        uint64
}

// DecodeAttributeHeader reads an AttributeHeader from the start of data.
func DecodeAttributeHeader(data []byte) (AttributeHeader, error) {
	var h AttributeHeader
	c := bindecode.NewCursor(data)
	var err error
	if h.AttrType, err = c.ReadUint32(); err != nil {
		return h, err
	}
	if h.AttrLength, err = c.ReadUint32(); err != nil {
		return h, err
	}
	if h.ResidentFlag, err = c.ReadUint8(); err != nil {
		return h, err
	}
	if h.NameLength, err = c.ReadUint8(); err != nil {
		return h, err
	}
	if h.NameOffset, err = c.ReadUint16(); err != nil {
		return h, err
	}
	if h.Flag, err = c.ReadUint16(); err != nil {
		return h, err
	}
	if h.AttrIdentifier, err = c.ReadUint16(); err != nil {
		return h, err
	}
	if h.Unknown, err = c.ReadUint64(); err != nil {
		return h, err
	}
	return h, nil
}

// SIFNTime is the raw 0x20-byte FILETIME quadruple carried inline by a
// resident STANDARD_INFORMATION or FILE_NAME attribute. Field order
// matches the on-disk MFT layout, which differs from the log-payload
// order used by the reasoner's field maps (see internal/reasoner).
type SIFNTime struct {
	CreationTime     uint64
	MFTModifiedTime  uint64
	ModifiedTime     uint64
	AccessTime       uint64
}

// DecodeSIFNTime reads an SIFNTime quadruple from the start of data.
func DecodeSIFNTime(data []byte) (SIFNTime, error) {
	var t SIFNTime
	c := bindecode.NewCursor(data)
	var err error
	if t.CreationTime, err = c.ReadUint64(); err != nil {
		return t, err
	}
	if t.MFTModifiedTime, err = c.ReadUint64(); err != nil {
		return t, err
	}
	if t.ModifiedTime, err = c.ReadUint64(); err != nil {
		return t, err
	}
	if t.AccessTime, err = c.ReadUint64(); err != nil {
		return t, err
	}
	return t, nil
}
