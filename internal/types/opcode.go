package types

// opcodeNames maps a log record opcode to its human-readable label. Gaps
// (0x10, 0x11, 0x17, 0x18, 0x1E) have no named operation in the NTFS log
// client and are intentionally absent.
var opcodeNames = map[uint16]string{
	0x00: "Noop",
	0x01: "Compensation Log Record",
	0x02: "Initialize File Record Segment",
	0x03: "Deallocate File Record Segment",
	0x04: "Write End Of File Record Segment",
	0x05: "Create Attribute",
	0x06: "Delete Attribute",
	0x07: "Update Resident Value",
	0x08: "Update Non Resident Value",
	0x09: "Update Mapping Pairs",
	0x0A: "Delete Dirty Clusters",
	0x0B: "Set New Attribute Size",
	0x0C: "Add Index Entry Root",
	0x0D: "Delete Index Entry Root",
	0x0E: "Add Index Entry Allocation",
	0x0F: "Delete Index Entry Allocation",
	0x12: "Set Index Entry Ven Allocation",
	0x13: "Update File Name Root",
	0x14: "Update File Name Allocation",
	0x15: "Set Bits In Non Resident Bitmap",
	0x16: "Clear Bits In Non Resident Bitmap",
	0x19: "Prepare Transaction",
	0x1A: "Commit Transaction",
	0x1B: "Forget Transaction",
	0x1C: "Open Non Resident Attribute",
	0x1D: "Open Attribute Table Dump",
	0x1F: "Dirty Page Table Dump",
	0x20: "Transaction Table Dump",
	0x21: "Update Record Data Root",
}

// OpcodeName returns the human-readable label for a redo/undo opcode, or
// "UNKNOWN" if the opcode is not in the table.
func OpcodeName(op uint16) string {
	if name, ok := opcodeNames[op]; ok {
		return name
	}
	return "UNKNOWN"
}
