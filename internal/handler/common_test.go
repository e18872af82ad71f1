package handler

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestParseFlag(t *testing.T) {
	for _, v := range []string{"y", "Y", "yes", "true", "1", "on", " y "} {
		assert.True(t, parseFlag(v), "value %q", v)
	}
	for _, v := range []string{"", "n", "no", "false", "0", "off", "maybe"} {
		assert.False(t, parseFlag(v), "value %q", v)
	}
}

func TestParseTimestampLayouts(t *testing.T) {
	want := time.Date(2024, 3, 1, 20, 0, 0, 0, time.UTC)

	got, err := parseTimestamp("2024-03-01 20:00:00")
	require.NoError(t, err)
	assert.Equal(t, want, got)

	got, err = parseTimestamp("2024-03-01T20:00:00Z")
	require.NoError(t, err)
	assert.True(t, want.Equal(got))

	_, err = parseTimestamp("March 1st, 8pm")
	assert.Error(t, err)
}

func TestParseDateLayouts(t *testing.T) {
	want := time.Date(2024, 3, 1, 0, 0, 0, 0, time.UTC)

	got, err := parseDate("2024-03-01")
	require.NoError(t, err)
	assert.Equal(t, want, got)

	// Legacy US form layout.
	got, err = parseDate("03/01/2024")
	require.NoError(t, err)
	assert.Equal(t, want, got)

	_, err = parseDate("01.03.2024")
	assert.Error(t, err)
}
