package journal

import (
	"path/filepath"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func openTestJournal(t *testing.T) *Journal {
	t.Helper()
	j, err := Open(filepath.Join(t.TempDir(), "journal"))
	require.NoError(t, err)
	t.Cleanup(func() { j.Close() })
	return j
}

func TestJournal_RecordAndList(t *testing.T) {
	j := openTestJournal(t)

	id1, err := j.Record("encode", "cat.png", 16)
	require.NoError(t, err)
	id2, err := j.Record("decode", "cat.png", 16)
	require.NoError(t, err)
	assert.NotEqual(t, id1, id2)

	entries, err := j.List(0)
	require.NoError(t, err)
	require.Len(t, entries, 2)

	// Newest first.
	assert.Equal(t, "decode", entries[0].Op)
	assert.Equal(t, "encode", entries[1].Op)
	assert.Equal(t, "cat.png", entries[0].Image)
	assert.Equal(t, 16, entries[0].Bits)
	assert.WithinDuration(t, time.Now().UTC(), entries[0].CreatedAt, time.Minute)
}

func TestJournal_ListLimit(t *testing.T) {
	j := openTestJournal(t)

	for i := 0; i < 5; i++ {
		_, err := j.Record("encode", "img.png", i*8)
		require.NoError(t, err)
	}

	entries, err := j.List(3)
	require.NoError(t, err)
	assert.Len(t, entries, 3)
	// The newest entry carries the largest bit count.
	assert.Equal(t, 32, entries[0].Bits)
}

func TestJournal_EmptyList(t *testing.T) {
	j := openTestJournal(t)

	entries, err := j.List(10)
	require.NoError(t, err)
	assert.Empty(t, entries)
}
