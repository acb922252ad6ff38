package issuelog

import (
	"os"
	"path/filepath"
	"strings"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func entry(ts time.Time, number, filename string) Entry {
	return Entry{
		Timestamp:  ts,
		Number:     number,
		Filename:   filename,
		TotalGross: "2628.51",
		Currency:   "USD",
	}
}

func TestAppendAndRead(t *testing.T) {
	dir := t.TempDir()
	ts := time.Date(2025, 3, 14, 0, 0, 0, 0, time.UTC)

	require.NoError(t, Append(dir, entry(ts, "ACM_1", "acme-bob-ACM_1--2025-03-14.html")))
	require.NoError(t, Append(dir, entry(ts, "ACM_2", "acme-bob-ACM_2--2025-03-14.html")))

	entries, err := Read(dir)
	require.NoError(t, err)
	require.Len(t, entries, 2)
	assert.Equal(t, "ACM_1", entries[0].Number)
	assert.Equal(t, "ACM_2", entries[1].Number)
	assert.Equal(t, "2628.51", entries[0].TotalGross)
	assert.True(t, entries[0].Timestamp.Equal(ts))
}

func TestAppendWritesHeaderOnce(t *testing.T) {
	dir := t.TempDir()
	ts := time.Date(2025, 3, 14, 0, 0, 0, 0, time.UTC)

	require.NoError(t, Append(dir, entry(ts, "ACM_1", "a.html")))
	require.NoError(t, Append(dir, entry(ts, "ACM_2", "b.html")))

	data, err := os.ReadFile(filepath.Join(dir, ".fakturo-log.csv"))
	require.NoError(t, err)
	assert.Equal(t, 1, strings.Count(string(data), Header))
}

func TestReadMissingLog(t *testing.T) {
	entries, err := Read(t.TempDir())
	require.NoError(t, err)
	assert.Empty(t, entries)
}

func TestUnmarshalEntryBadFieldCount(t *testing.T) {
	_, err := UnmarshalEntry([]string{"only", "three", "fields"})
	require.Error(t, err)
}

