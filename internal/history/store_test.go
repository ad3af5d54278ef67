package history

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/adl-tools/candex/pkg/types"
)

func newTestStore(t *testing.T) *Store {
	t.Helper()
	s, err := NewStore(types.HistoryConfig{DataDir: t.TempDir()})
	require.NoError(t, err)
	t.Cleanup(func() { s.Close() })
	return s
}

func TestStore_RecordAndList(t *testing.T) {
	s := newTestStore(t)

	created := time.Date(2024, 1, 15, 9, 30, 0, 0, time.UTC)
	id, err := s.Record(Run{
		CreatedAt:   created,
		PDFPath:     "results.pdf",
		OutputPath:  "output/admissibles.csv",
		Department:  "75",
		SessionDate: "2024-01-15",
		Stats: types.RunStats{
			Pages:         3,
			PagesFailed:   1,
			LinesSeen:     42,
			RecordsParsed: 10,
			Admissible:    6,
		},
	})
	require.NoError(t, err)
	assert.Positive(t, id)

	runs, err := s.List(10)
	require.NoError(t, err)
	require.Len(t, runs, 1)

	got := runs[0]
	assert.Equal(t, id, got.ID)
	assert.True(t, created.Equal(got.CreatedAt))
	assert.Equal(t, "results.pdf", got.PDFPath)
	assert.Equal(t, "output/admissibles.csv", got.OutputPath)
	assert.Equal(t, "75", got.Department)
	assert.Equal(t, "2024-01-15", got.SessionDate)
	assert.Equal(t, 3, got.Stats.Pages)
	assert.Equal(t, 1, got.Stats.PagesFailed)
	assert.Equal(t, 42, got.Stats.LinesSeen)
	assert.Equal(t, 10, got.Stats.RecordsParsed)
	assert.Equal(t, 6, got.Stats.Admissible)
}

func TestStore_ListNewestFirst(t *testing.T) {
	s := newTestStore(t)

	for _, dept := range []string{"75", "13", "69"} {
		_, err := s.Record(Run{PDFPath: "results.pdf", Department: dept})
		require.NoError(t, err)
	}

	runs, err := s.List(10)
	require.NoError(t, err)
	require.Len(t, runs, 3)
	assert.Equal(t, "69", runs[0].Department)
	assert.Equal(t, "13", runs[1].Department)
	assert.Equal(t, "75", runs[2].Department)
}

func TestStore_ListLimit(t *testing.T) {
	s := newTestStore(t)

	for i := 0; i < 5; i++ {
		_, err := s.Record(Run{PDFPath: "results.pdf"})
		require.NoError(t, err)
	}

	runs, err := s.List(2)
	require.NoError(t, err)
	assert.Len(t, runs, 2)
}

func TestStore_RecordStampsCreatedAt(t *testing.T) {
	s := newTestStore(t)

	_, err := s.Record(Run{PDFPath: "results.pdf"})
	require.NoError(t, err)

	runs, err := s.List(1)
	require.NoError(t, err)
	require.Len(t, runs, 1)
	assert.WithinDuration(t, time.Now().UTC(), runs[0].CreatedAt, time.Minute)
}

func TestStore_ReopenSeesExistingRuns(t *testing.T) {
	dir := t.TempDir()

	s, err := NewStore(types.HistoryConfig{DataDir: dir})
	require.NoError(t, err)
	_, err = s.Record(Run{PDFPath: "results.pdf"})
	require.NoError(t, err)
	require.NoError(t, s.Close())

	s2, err := NewStore(types.HistoryConfig{DataDir: dir})
	require.NoError(t, err)
	defer s2.Close()

	runs, err := s2.List(10)
	require.NoError(t, err)
	assert.Len(t, runs, 1)
}
