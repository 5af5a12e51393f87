package domain

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func mustRange(t *testing.T, start, end time.Time) TimeRange {
	t.Helper()
	r, err := NewTimeRange(start, end)
	require.NoError(t, err)
	return r
}

func TestNewTimeRange_Valid(t *testing.T) {
	start := time.Date(2026, 3, 10, 10, 0, 0, 0, time.UTC)
	end := start.Add(2 * time.Hour)

	r, err := NewTimeRange(start, end)

	require.NoError(t, err)
	assert.Equal(t, start, r.Start)
	assert.Equal(t, end, r.End)
	assert.Equal(t, 2*time.Hour, r.Duration())
}

func TestNewTimeRange_StartNotBeforeEnd(t *testing.T) {
	at := time.Date(2026, 3, 10, 10, 0, 0, 0, time.UTC)

	_, err := NewTimeRange(at, at)
	require.Error(t, err)
	assert.ErrorIs(t, err, ErrInvalidRange)

	_, err = NewTimeRange(at.Add(time.Hour), at)
	require.Error(t, err)
	assert.ErrorIs(t, err, ErrInvalidRange)
}

func TestNewTimeRange_ZeroInstants(t *testing.T) {
	at := time.Date(2026, 3, 10, 10, 0, 0, 0, time.UTC)

	_, err := NewTimeRange(time.Time{}, at)
	assert.ErrorIs(t, err, ErrInvalidRange)

	_, err = NewTimeRange(at, time.Time{})
	assert.ErrorIs(t, err, ErrInvalidRange)
}

func TestTimeRange_Overlaps(t *testing.T) {
	base := time.Date(2026, 3, 10, 10, 0, 0, 0, time.UTC)

	a := mustRange(t, base, base.Add(2*time.Hour))

	tests := []struct {
		name string
		b    TimeRange
		want bool
	}{
		{"identical", mustRange(t, base, base.Add(2*time.Hour)), true},
		{"partial overlap", mustRange(t, base.Add(time.Hour), base.Add(3*time.Hour)), true},
		{"contained", mustRange(t, base.Add(30*time.Minute), base.Add(time.Hour)), true},
		{"containing", mustRange(t, base.Add(-time.Hour), base.Add(3*time.Hour)), true},
		{"shared boundary after", mustRange(t, base.Add(2*time.Hour), base.Add(3*time.Hour)), false},
		{"shared boundary before", mustRange(t, base.Add(-time.Hour), base), false},
		{"disjoint", mustRange(t, base.Add(5*time.Hour), base.Add(6*time.Hour)), false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, a.Overlaps(tt.b))
			assert.Equal(t, tt.want, tt.b.Overlaps(a)) // symmetric
		})
	}
}

func TestTimeRange_Hours(t *testing.T) {
	base := time.Date(2026, 3, 10, 10, 0, 0, 0, time.UTC)

	two := mustRange(t, base, base.Add(2*time.Hour))
	assert.Equal(t, "2", two.Hours().String())

	ninety := mustRange(t, base, base.Add(90*time.Minute))
	assert.Equal(t, "1.5", ninety.Hours().String())

	quarter := mustRange(t, base, base.Add(15*time.Minute))
	assert.Equal(t, "0.25", quarter.Hours().String())
}
