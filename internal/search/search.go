// Package search implements the heuristic byte-pattern scan shared by the
// Page Walker (anchoring on the current LSN) and the Record Scanner
// (discovering record_type discriminators). There is no index in either
// artifact telling a reader where the next interesting value starts, so
// both scans fall back to a fixed-stride brute-force search.
package search

// FindPattern scans data for any of patterns, each exactly byteSize bytes
// long, at a fixed 8-byte stride regardless of byteSize. The stride is
// always 8 because every structure both callers care about starts on an
// 8-byte boundary; it is not derived from byteSize.
func FindPattern(data []byte, byteSize int, patterns ...[]byte) []int {
	for _, p := range patterns {
		if len(p) != byteSize {
			panic("search: pattern length does not match byteSize")
		}
	}

	var matches []int
	for offset := 0; offset+byteSize <= len(data); offset += 8 {
		segment := data[offset : offset+byteSize]
		for _, p := range patterns {
			if equalBytes(segment, p) {
				matches = append(matches, offset)
				break
			}
		}
	}
	return matches
}

func equalBytes(a, b []byte) bool {
	if len(a) != len(b) {
		return false
	}
	for i := range a {
		if a[i] != b[i] {
			return false
		}
	}
	return true
}
