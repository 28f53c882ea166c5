package filetime

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/yamaru/ntfs-forensics/test/fixtures"
)

func TestConvert_ZeroIsNil(t *testing.T) {
	assert.Nil(t, Convert(0, 0))
}

func TestConvert_KnownValue(t *testing.T) {
	v := fixtures.FILETIME(0) // the Unix epoch itself
	got := Convert(v, 0)
	if assert.NotNil(t, got) {
		assert.Equal(t, "1970-01-01 00:00:00", *got)
	}
}

func TestConvert_AppliesUTCOffset(t *testing.T) {
	v := fixtures.FILETIME(0)
	got := Convert(v, 5)
	if assert.NotNil(t, got) {
		assert.Equal(t, "1970-01-01 05:00:00", *got)
	}

	got = Convert(v, -3)
	if assert.NotNil(t, got) {
		assert.Equal(t, "1969-12-31 21:00:00", *got)
	}
}

func TestConvert_ArbitraryTimestamp(t *testing.T) {
	// 2024-03-15 12:30:00 UTC
	v := fixtures.FILETIME(1710505800)
	got := Convert(v, 0)
	if assert.NotNil(t, got) {
		assert.Equal(t, "2024-03-15 12:30:00", *got)
	}
}
