package store

import (
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"rf-heatmap.klederson.com/internal/coverage"
	"rf-heatmap.klederson.com/internal/emitter"
)

func testResult() *coverage.Result {
	return &coverage.Result{
		Params:   coverage.DefaultParams(),
		Emitters: []emitter.Emitter{{Name: "Tower_A"}},
		Stats: coverage.Statistics{
			TotalPoints: 400,
			MinStrength: 0,
			MaxStrength: 100,
			AvgStrength: 50,
			WeakCount:   120,
			MediumCount: 140,
			StrongCount: 140,
		},
	}
}

func TestRecordAndRecent(t *testing.T) {
	s, err := Open(filepath.Join(t.TempDir(), "runs.db"))
	require.NoError(t, err)
	defer s.Close()

	id, err := s.Record(testResult())
	require.NoError(t, err)
	assert.NotEmpty(t, id)

	records, err := s.Recent(10)
	require.NoError(t, err)
	require.Len(t, records, 1)

	r := records[0]
	assert.Equal(t, id, r.ID)
	assert.Equal(t, 400, r.TotalPoints)
	assert.Equal(t, 1, r.Emitters)
	assert.Equal(t, 5.0, r.MinRange)
	assert.Equal(t, 150.0, r.MaxRange)
	assert.Equal(t, 50.0, r.AvgStrength)
	assert.Equal(t, 140, r.StrongCount)
	assert.False(t, r.CreatedAt.IsZero())
}

func TestRecentLimit(t *testing.T) {
	s, err := Open(filepath.Join(t.TempDir(), "runs.db"))
	require.NoError(t, err)
	defer s.Close()

	for i := 0; i < 5; i++ {
		_, err := s.Record(testResult())
		require.NoError(t, err)
	}

	records, err := s.Recent(3)
	require.NoError(t, err)
	assert.Len(t, records, 3)

	// Non-positive limits fall back to the default.
	records, err = s.Recent(0)
	require.NoError(t, err)
	assert.Len(t, records, 5)
}

func TestRecentEmpty(t *testing.T) {
	s, err := Open(filepath.Join(t.TempDir(), "runs.db"))
	require.NoError(t, err)
	defer s.Close()

	records, err := s.Recent(10)
	require.NoError(t, err)
	assert.Empty(t, records)
}
