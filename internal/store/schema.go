package store

const schemaLogFile = `
CREATE TABLE LogFile (
	this_lsn TEXT,
	previous_lsn TEXT,
	record_type TEXT,
	redo_op_value TEXT,
	redo_op_name TEXT,
	redo_data_hex TEXT,
	redo_data_length TEXT,
	undo_op_value TEXT,
	undo_op_name TEXT,
	undo_data_hex TEXT,
	undo_data_length TEXT,
	target_vcn TEXT,
	target_lcn TEXT,
	cluster_number TEXT,
	record_offset TEXT,
	attr_offset TEXT
)`

const schemaTimeStomp = `
CREATE TABLE IF NOT EXISTS TimeStomp (
	this_lsn TEXT,
	undo_create_time TEXT,
	undo_modified_time TEXT,
	undo_mft_modified_time TEXT,
	undo_last_access_time TEXT,
	redo_create_time TEXT,
	redo_modified_time TEXT,
	redo_mft_modified_time TEXT,
	redo_last_access_time TEXT,
	is_timestomped BOOLEAN,
	attr_name TEXT,
	target_vcn TEXT,
	cluster_number TEXT,
	record_offset TEXT,
	attr_offset TEXT
)`

const schemaSIFN = `
CREATE TABLE IF NOT EXISTS si_fn (
	mft_entry INTEGER,
	si_create_time TEXT,
	si_modified_time TEXT,
	si_mft_modified_time TEXT,
	si_last_access_time TEXT,
	fn_create_time TEXT,
	fn_modified_time TEXT,
	fn_mft_modified_time TEXT,
	fn_last_access_time TEXT,
	is_timestomped BOOLEAN
)`

const insertLogFile = `
INSERT INTO LogFile (
	this_lsn, previous_lsn, record_type,
	redo_op_value, redo_op_name, redo_data_hex, redo_data_length,
	undo_op_value, undo_op_name, undo_data_hex, undo_data_length,
	target_vcn, target_lcn, cluster_number,
	record_offset, attr_offset
) VALUES (?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?)`

const insertTimeStomp = `
INSERT INTO TimeStomp (
	this_lsn,
	undo_create_time, undo_modified_time, undo_mft_modified_time, undo_last_access_time,
	redo_create_time, redo_modified_time, redo_mft_modified_time, redo_last_access_time,
	is_timestomped, attr_name,
	target_vcn, cluster_number, record_offset, attr_offset
) VALUES (?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?)`

const insertSIFN = `
INSERT INTO si_fn (
	mft_entry,
	si_create_time, si_modified_time, si_mft_modified_time, si_last_access_time,
	fn_create_time, fn_modified_time, fn_mft_modified_time, fn_last_access_time,
	is_timestomped
) VALUES (?, ?, ?, ?, ?, ?, ?, ?, ?, ?)`

const querySIRows = `
SELECT this_lsn, redo_data_hex, undo_data_hex, target_vcn, cluster_number, record_offset, attr_offset
FROM LogFile
WHERE record_offset = '0x38'
AND redo_op_value = '0x7'
AND undo_op_value = '0x7'
AND attr_offset IN ('0x18', '0x20', '0x28', '0x30')`

const queryFNRows = `
SELECT this_lsn, redo_data_hex, undo_data_hex, target_vcn, cluster_number, record_offset, attr_offset
FROM LogFile
WHERE record_offset = '0x98'
AND redo_op_value = '0x7'
AND undo_op_value = '0x7'
AND attr_offset IN ('0x18', '0x20', '0x28', '0x30', '0x38')`
