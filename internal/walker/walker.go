// Package walker implements the Page Walker: it locates the restart page,
// anchors on the current LSN, and traverses the circular journal exactly
// once starting from that anchor.
package walker

import (
	"encoding/binary"

	"github.com/yamaru/ntfs-forensics/internal/search"
	"github.com/yamaru/ntfs-forensics/internal/types"
)

// Page is one emitted record page: its index, decoded RCRD header, and
// the raw page-sized byte slice for the Record Scanner to search.
type Page struct {
	Index  int
	Header types.RCRDHeader
	Bytes  []byte
}

// Walk reads the restart page at offset 0, anchors on the current LSN,
// and returns the record pages of one full circuit starting at the
// anchor page. Pages whose RCRD magic fails to validate are omitted
// (soft-fail, per spec) rather than returned as zero-value Pages.
//
// If the current LSN cannot be located anywhere on a record page (for
// example an empty journal with no data past the restart pages), Walk
// returns a nil, nil result: there is nothing to walk, not an error.
func Walk(logBytes []byte) ([]Page, error) {
	if len(logBytes) < types.PageSize {
		return nil, types.ErrShortRead
	}

	rstr, err := types.DecodeRSTRHeader(logBytes[:types.PageSize])
	if err != nil {
		return nil, err
	}
	if !rstr.IsValid() {
		return nil, types.ErrInvalidRestart
	}

	totalPages := len(logBytes) / types.PageSize
	if totalPages <= types.FirstRecordPage {
		return nil, nil
	}

	searchStart := types.FirstRecordPage * types.PageSize
	lsnPattern := make([]byte, 8)
	binary.LittleEndian.PutUint64(lsnPattern, rstr.CurrentLSN)

	matches := search.FindPattern(logBytes[searchStart:], 8, lsnPattern)
	if len(matches) == 0 {
		return nil, nil
	}
	anchorOffset := searchStart + matches[0]
	anchor := anchorOffset / types.PageSize

	var pages []Page
	idx := anchor
	for {
		start := idx * types.PageSize
		pageBytes := logBytes[start : start+types.PageSize]

		header, err := types.DecodeRCRDHeader(pageBytes)
		if err == nil && header.IsValid() {
			pages = append(pages, Page{Index: idx, Header: header, Bytes: pageBytes})
		}

		idx++
		if idx >= totalPages {
			idx = types.FirstRecordPage
		}
		if idx == anchor {
			break
		}
	}

	return pages, nil
}
